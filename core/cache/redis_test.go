package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) (Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c := NewCache(client)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestCalendarTokenRoundTrip(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	if _, found, err := c.GetCalendarToken(ctx, "tok"); err != nil || found {
		t.Fatalf("GetCalendarToken() on empty cache = found %v, err %v", found, err)
	}

	if err := c.SetCalendarToken(ctx, "tok", "user-1", time.Minute); err != nil {
		t.Fatalf("SetCalendarToken() error = %v", err)
	}

	userID, found, err := c.GetCalendarToken(ctx, "tok")
	if err != nil || !found || userID != "user-1" {
		t.Fatalf("GetCalendarToken() = %q, %v, %v; want user-1, true, nil", userID, found, err)
	}

	mr.FastForward(2 * time.Minute)
	if _, found, _ := c.GetCalendarToken(ctx, "tok"); found {
		t.Error("token entry should expire after its ttl")
	}
}

func TestDeleteCalendarToken(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	if err := c.SetCalendarToken(ctx, "tok", "user-1", time.Minute); err != nil {
		t.Fatalf("SetCalendarToken() error = %v", err)
	}
	if err := c.DeleteCalendarToken(ctx, "tok"); err != nil {
		t.Fatalf("DeleteCalendarToken() error = %v", err)
	}
	if _, found, _ := c.GetCalendarToken(ctx, "tok"); found {
		t.Error("token entry should be gone after delete")
	}
}

func TestTokensAreCaseSensitiveKeys(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	if err := c.SetCalendarToken(ctx, "AbC", "user-1", time.Minute); err != nil {
		t.Fatalf("SetCalendarToken() error = %v", err)
	}
	if _, found, _ := c.GetCalendarToken(ctx, "abc"); found {
		t.Error("lookup must not normalize token case")
	}
}
