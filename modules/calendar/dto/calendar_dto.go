package dto

import (
	"fmt"
	"time"
)

// CalendarFeed is a ready to send calendar document with its transport
// metadata. Cache lifetime and freshness hint both derive from TTL.
type CalendarFeed struct {
	Document    []byte
	ContentType string
	Filename    string
	TTL         time.Duration
	UpdatedAt   time.Time
}

// MaxAgeSeconds is the TTL in whole seconds.
func (f *CalendarFeed) MaxAgeSeconds() int {
	return int(f.TTL / time.Second)
}

// CacheControl lets shared caches and clients keep the feed for TTL.
func (f *CalendarFeed) CacheControl() string {
	n := f.MaxAgeSeconds()
	return fmt.Sprintf("public, max-age=%d, s-maxage=%d", n, n)
}

// PublishedTTL is the freshness hint as an iCalendar duration.
func (f *CalendarFeed) PublishedTTL() string {
	return fmt.Sprintf("PT%dS", f.MaxAgeSeconds())
}

func (f *CalendarFeed) ContentDisposition() string {
	return fmt.Sprintf("attachment; filename=%q", f.Filename)
}

type CalendarTokenResponse struct {
	Token     string    `json:"token"`
	FeedURL   string    `json:"feed_url"`
	CreatedAt time.Time `json:"created_at"`
}
