// Package generator renders a user's marked shoots as an iCalendar document.
package generator

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"shoot-calendar-api/core/constants"
	"shoot-calendar-api/modules/shoot/entity"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

const productID = "-//shoot-calendar//calendar feed//EN"

// uidNamespace seeds the per-shoot UIDs so an event keeps its UID across
// regenerations and calendar clients update it in place.
var uidNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("shoot-calendar:shoot"))

type Options struct {
	Name string
	TTL  time.Duration
	Now  time.Time
}

// EventUID is the stable UID of the VEVENT for a shoot.
func EventUID(shootID int64) string {
	return uuid.NewSHA1(uidNamespace, []byte(strconv.FormatInt(shootID, 10))).String() + "@shoot-calendar"
}

// Build serializes shoots as one all-day VEVENT each, in input order.
func Build(shoots []entity.Shoot, opts Options) []byte {
	name := opts.Name
	if name == "" {
		name = constants.DefaultCalendarName
	}
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = constants.DefaultCalendarFeedTTL
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)
	cal.SetXWRCalName(name)
	cal.SetXPublishedTTL(fmt.Sprintf("PT%dS", int(ttl/time.Second)))

	for i := range shoots {
		addEvent(cal, &shoots[i], now.UTC())
	}

	return []byte(cal.Serialize())
}

func addEvent(cal *ical.Calendar, s *entity.Shoot, stamp time.Time) {
	event := cal.AddEvent(EventUID(s.ID))
	event.SetDtStampTime(stamp)
	event.SetAllDayStartAt(s.StartDate)
	// DTEND is exclusive for all-day events.
	event.SetAllDayEndAt(s.LastDay().AddDate(0, 0, 1))
	event.SetSummary(s.Name)

	if loc := location(s); loc != "" {
		event.SetLocation(loc)
	}
	if desc := description(s); desc != "" {
		event.SetDescription(desc)
	}
	if s.Website != nil && strings.TrimSpace(*s.Website) != "" {
		event.SetURL(strings.TrimSpace(*s.Website))
	}
	if s.HasCoordinates() {
		event.SetProperty(ical.ComponentPropertyGeo,
			strconv.FormatFloat(*s.Latitude, 'f', -1, 64)+";"+strconv.FormatFloat(*s.Longitude, 'f', -1, 64))
	}
}

func location(s *entity.Shoot) string {
	if s.FullAddress != nil && strings.TrimSpace(*s.FullAddress) != "" {
		return strings.TrimSpace(*s.FullAddress)
	}
	parts := []string{}
	if s.ClubName != "" {
		parts = append(parts, s.ClubName)
	}
	if label := s.LocationLabel(); label != "" {
		parts = append(parts, label)
	}
	return strings.Join(parts, ", ")
}

func description(s *entity.Shoot) string {
	lines := []string{}
	add := func(label string, v *string) {
		if v != nil && strings.TrimSpace(*v) != "" {
			lines = append(lines, label+": "+strings.TrimSpace(*v))
		}
	}

	if s.EventType != "" {
		lines = append(lines, "Affiliation: "+s.EventType)
	}
	add("Category", s.Category)
	if s.ClubName != "" {
		lines = append(lines, "Club: "+s.ClubName)
	}
	add("Contact", s.Contact)
	add("Phone", s.Phone)
	add("Email", s.Email)

	return strings.Join(lines, "\n")
}
