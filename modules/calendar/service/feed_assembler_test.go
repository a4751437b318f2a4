package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"shoot-calendar-api/modules/calendar/entity"
)

func TestFeedFilename(t *testing.T) {
	tests := map[string]string{
		"Marked Shoots":     "marked-shoots.ics",
		"My Shoots 2026!":   "my-shoots-2026.ics",
		"":                  "calendar.ics",
		"   ":               "calendar.ics",
		"Sporting Clays/US": "sporting-clays-us.ics",
	}
	for name, want := range tests {
		if got := FeedFilename(name); got != want {
			t.Errorf("FeedFilename(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestAssembleHeadersShareTTL(t *testing.T) {
	for _, ttl := range []time.Duration{time.Minute, 5 * time.Minute, time.Hour} {
		repo := newFakeRepo()
		repo.documents["alice"] = entity.CalendarDocument{UserID: "alice", Document: []byte("doc")}
		assembler := NewFeedAssembler(repo, "Marked Shoots", ttl)

		feed, appErr := assembler.Assemble(context.Background(), &fakeConn{}, "alice")
		if appErr != nil {
			t.Fatalf("Assemble() error = %v", appErr)
		}

		n := int(ttl.Seconds())
		if want := fmt.Sprintf("public, max-age=%d, s-maxage=%d", n, n); feed.CacheControl() != want {
			t.Errorf("CacheControl() = %q, want %q", feed.CacheControl(), want)
		}
		if want := fmt.Sprintf("PT%dS", n); feed.PublishedTTL() != want {
			t.Errorf("PublishedTTL() = %q, want %q", feed.PublishedTTL(), want)
		}
	}
}

func TestAssembleDefaultsTTL(t *testing.T) {
	repo := newFakeRepo()
	repo.documents["alice"] = entity.CalendarDocument{UserID: "alice", Document: []byte("doc")}

	feed, appErr := NewFeedAssembler(repo, "", 0).Assemble(context.Background(), &fakeConn{}, "alice")
	if appErr != nil {
		t.Fatalf("Assemble() error = %v", appErr)
	}
	if feed.TTL != 5*time.Minute {
		t.Errorf("TTL = %v, want 5m", feed.TTL)
	}
	if feed.ContentDisposition() != `attachment; filename="calendar.ics"` {
		t.Errorf("ContentDisposition() = %q", feed.ContentDisposition())
	}
}
