package entity

import (
	"strings"
	"time"

	"shoot-calendar-api/core/entity"
)

// noneCategory is the category value the source data uses for "no category".
const noneCategory = "none"

// Shoot is one scheduled competition.
type Shoot struct {
	ID          int64      `db:"id" json:"id" validate:"required,gt=0"`
	Name        string     `db:"name" json:"name" validate:"required"`
	Category    *string    `db:"category" json:"category,omitempty"`
	StartDate   time.Time  `db:"start_date" json:"start_date" validate:"required"`
	EndDate     *time.Time `db:"end_date" json:"end_date,omitempty"`
	ClubName    string     `db:"club_name" json:"club_name"`
	Address1    *string    `db:"address1" json:"address1,omitempty"`
	Address2    *string    `db:"address2" json:"address2,omitempty"`
	City        string     `db:"city" json:"city" validate:"required"`
	State       string     `db:"state" json:"state"`
	PostalCode  *string    `db:"postal_code" json:"postal_code,omitempty"`
	Country     *string    `db:"country" json:"country,omitempty"`
	Zone        *string    `db:"zone" json:"zone,omitempty"`
	Phone       *string    `db:"phone" json:"phone,omitempty"`
	Email       *string    `db:"email" json:"email,omitempty" validate:"omitempty,email"`
	Website     *string    `db:"website" json:"website,omitempty"`
	Contact     *string    `db:"contact" json:"contact,omitempty"`
	ClubID      *int64     `db:"club_id" json:"club_id,omitempty"`
	EventType   string     `db:"event_type" json:"event_type" validate:"required"`
	Region      *string    `db:"region" json:"region,omitempty"`
	FullAddress *string    `db:"full_address" json:"full_address,omitempty"`
	Latitude    *float64   `db:"latitude" json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude   *float64   `db:"longitude" json:"longitude,omitempty" validate:"omitempty,longitude"`
}

type PaginatedShootEntity = entity.Pagination[Shoot]

// IsFuture reports whether the shoot starts strictly after now.
func (s *Shoot) IsFuture(now time.Time) bool {
	return s.StartDate.After(now)
}

// IsNotable reports whether the shoot carries a real category.
func (s *Shoot) IsNotable() bool {
	if s.Category == nil {
		return false
	}
	c := strings.TrimSpace(*s.Category)
	return c != "" && !strings.EqualFold(c, noneCategory)
}

// HasCoordinates is true only for a complete latitude/longitude pair.
func (s *Shoot) HasCoordinates() bool {
	return s.Latitude != nil && s.Longitude != nil
}

// NormalizeCoordinates drops a half coordinate pair and reports whether it
// had to.
func (s *Shoot) NormalizeCoordinates() bool {
	if (s.Latitude == nil) == (s.Longitude == nil) {
		return false
	}
	s.Latitude = nil
	s.Longitude = nil
	return true
}

// LastDay is the end date, or the start date for single day shoots.
func (s *Shoot) LastDay() time.Time {
	if s.EndDate != nil && s.EndDate.After(s.StartDate) {
		return *s.EndDate
	}
	return s.StartDate
}

// DateLabel formats the date range, collapsing the shared month and year:
// "Jun 7, 2026", "Jun 7 - 9, 2026", "Jun 30 - Jul 2, 2026",
// "Dec 30, 2026 - Jan 2, 2027".
func (s *Shoot) DateLabel() string {
	start, end := s.StartDate, s.LastDay()
	switch {
	case sameDay(start, end):
		return start.Format("Jan 2, 2006")
	case start.Year() != end.Year():
		return start.Format("Jan 2, 2006") + " - " + end.Format("Jan 2, 2006")
	case start.Month() != end.Month():
		return start.Format("Jan 2") + " - " + end.Format("Jan 2, 2006")
	default:
		return start.Format("Jan 2") + " - " + end.Format("2, 2006")
	}
}

// LocationLabel is "City, ST", or just the city when the state is unknown.
func (s *Shoot) LocationLabel() string {
	if s.State == "" {
		return s.City
	}
	return s.City + ", " + s.State
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
