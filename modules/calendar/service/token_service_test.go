package service

import (
	"context"
	stdErrors "errors"
	"testing"
	"time"

	"shoot-calendar-api/core/errors"
)

func newTestTokenService(repo *fakeRepo, refresher *fakeRefresher, tokens ...string) *tokenService {
	svc := NewTokenService(repo, nil, refresher, "https://shoots.example.com/").(*tokenService)
	i := 0
	svc.generate = func() (string, error) {
		tok := tokens[i]
		i++
		return tok, nil
	}
	return svc
}

func TestFeedURL(t *testing.T) {
	got := FeedURL("https://shoots.example.com/", "a+b/c")
	want := "https://shoots.example.com/calendar.ics?token=a%2Bb%2Fc"
	if got != want {
		t.Errorf("FeedURL() = %q, want %q", got, want)
	}
}

func TestGetOrCreateTokenIsStable(t *testing.T) {
	repo := newFakeRepo()
	refresher := &fakeRefresher{}
	svc := newTestTokenService(repo, refresher, "tok-first", "tok-second")
	ctx := context.Background()

	first, appErr := svc.GetOrCreateToken(ctx, "alice")
	if appErr != nil {
		t.Fatalf("GetOrCreateToken() error = %v", appErr)
	}
	second, appErr := svc.GetOrCreateToken(ctx, "alice")
	if appErr != nil {
		t.Fatalf("GetOrCreateToken() second call error = %v", appErr)
	}

	if first.Token != "tok-first" || second.Token != "tok-first" {
		t.Errorf("tokens = %q, %q, want tok-first twice", first.Token, second.Token)
	}
	if first.FeedURL != "https://shoots.example.com/calendar.ics?token=tok-first" {
		t.Errorf("FeedURL = %q", first.FeedURL)
	}
	if len(refresher.userIDs) != 1 || refresher.userIDs[0] != "alice" {
		t.Errorf("regenerations requested = %v, want [alice]", refresher.userIDs)
	}
}

func TestGetOrCreateTokenLosesRace(t *testing.T) {
	repo := newFakeRepo()
	repo.concurrentToken = "tok-winner"
	refresher := &fakeRefresher{}
	svc := newTestTokenService(repo, refresher, "tok-loser")

	res, appErr := svc.GetOrCreateToken(context.Background(), "alice")
	if appErr != nil {
		t.Fatalf("GetOrCreateToken() error = %v", appErr)
	}
	if res.Token != "tok-winner" {
		t.Errorf("Token = %q, want the stored tok-winner", res.Token)
	}
	if _, ok := repo.tokens["tok-loser"]; ok {
		t.Error("losing token was stored")
	}
	if len(refresher.userIDs) != 0 {
		t.Errorf("regenerations requested = %v, want none from the losing request", refresher.userIDs)
	}
}

func TestGetOrCreateTokenCreateFails(t *testing.T) {
	repo := newFakeRepo()
	repo.createErr = stdErrors.New("disk full")
	svc := newTestTokenService(repo, &fakeRefresher{}, "tok")

	_, appErr := svc.GetOrCreateToken(context.Background(), "alice")
	if appErr == nil || appErr.Code != errors.ErrCreateFailed {
		t.Fatalf("GetOrCreateToken() error = %v, want %s", appErr, errors.ErrCreateFailed)
	}
}

func TestRotateToken(t *testing.T) {
	c, mr := newRedisCache(t)
	repo := newFakeRepo()
	repo.addToken("tok-old", "alice")
	if err := c.SetCalendarToken(context.Background(), "tok-old", "alice", time.Minute); err != nil {
		t.Fatalf("SetCalendarToken() error = %v", err)
	}

	svc := newTestTokenService(repo, &fakeRefresher{}, "tok-new")
	svc.cache = c

	rotated, appErr := svc.RotateToken(context.Background(), "alice")
	if appErr != nil {
		t.Fatalf("RotateToken() error = %v", appErr)
	}
	if rotated.Token != "tok-new" {
		t.Errorf("Token = %q, want tok-new", rotated.Token)
	}
	if _, ok := repo.tokens["tok-old"]; ok {
		t.Error("old token still resolves")
	}
	if mr.Exists("calendar:token:tok-old") {
		t.Error("old token still cached")
	}
}

func TestRotateTokenWithoutToken(t *testing.T) {
	svc := newTestTokenService(newFakeRepo(), &fakeRefresher{})

	_, appErr := svc.RotateToken(context.Background(), "alice")
	if appErr == nil || appErr.Code != errors.ErrNotFound {
		t.Fatalf("RotateToken() error = %v, want %s", appErr, errors.ErrNotFound)
	}
}
