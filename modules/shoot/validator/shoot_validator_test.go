package validator

import (
	"testing"
	"time"

	"shoot-calendar-api/core/errors"
	"shoot-calendar-api/modules/shoot/entity"
)

func ptr[T any](v T) *T { return &v }

func validShoot(id int64) entity.Shoot {
	return entity.Shoot{
		ID:        id,
		Name:      "Spring Classic",
		StartDate: time.Date(2026, time.May, 2, 0, 0, 0, 0, time.UTC),
		City:      "Boise",
		State:     "ID",
		EventType: "NSCA",
	}
}

func TestValidateShoot(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *entity.Shoot)
		ok     bool
	}{
		{"valid", func(s *entity.Shoot) {}, true},
		{"empty state allowed", func(s *entity.Shoot) { s.State = "" }, true},
		{"full coordinates", func(s *entity.Shoot) { s.Latitude, s.Longitude = ptr(43.6), ptr(-116.2) }, true},
		{"end after start", func(s *entity.Shoot) { s.EndDate = ptr(s.StartDate.AddDate(0, 0, 2)) }, true},
		{"missing name", func(s *entity.Shoot) { s.Name = "" }, false},
		{"missing city", func(s *entity.Shoot) { s.City = "" }, false},
		{"missing event type", func(s *entity.Shoot) { s.EventType = "" }, false},
		{"missing start", func(s *entity.Shoot) { s.StartDate = time.Time{} }, false},
		{"zero id", func(s *entity.Shoot) { s.ID = 0 }, false},
		{"latitude only", func(s *entity.Shoot) { s.Latitude = ptr(43.6) }, false},
		{"longitude only", func(s *entity.Shoot) { s.Longitude = ptr(-116.2) }, false},
		{"latitude out of range", func(s *entity.Shoot) { s.Latitude, s.Longitude = ptr(123.0), ptr(-116.2) }, false},
		{"end before start", func(s *entity.Shoot) { s.EndDate = ptr(s.StartDate.AddDate(0, 0, -1)) }, false},
		{"bad email", func(s *entity.Shoot) { s.Email = ptr("not-an-email") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validShoot(1)
			tt.mutate(&s)
			appErr := ValidateShoot(&s)
			if tt.ok && appErr != nil {
				t.Fatalf("ValidateShoot() = %v, want nil", appErr)
			}
			if !tt.ok {
				if appErr == nil {
					t.Fatal("ValidateShoot() = nil, want error")
				}
				if appErr.Code != errors.ErrInvalidInput {
					t.Errorf("code = %s, want %s", appErr.Code, errors.ErrInvalidInput)
				}
			}
		})
	}
}

func TestValidateCollection(t *testing.T) {
	bad := validShoot(2)
	bad.Latitude = ptr(43.6)
	dup := validShoot(1)
	dup.Name = "Duplicate"

	valid, rejected := ValidateCollection([]entity.Shoot{validShoot(1), bad, validShoot(3), dup})

	if len(valid) != 2 || valid[0].ID != 1 || valid[1].ID != 3 {
		t.Fatalf("valid = %+v, want ids [1 3]", valid)
	}
	if valid[0].Name != "Spring Classic" {
		t.Error("the first record with an id must win")
	}
	if len(rejected) != 2 || rejected[0].ID != 2 || rejected[1].ID != 1 {
		t.Fatalf("rejected = %+v, want ids [2 1]", rejected)
	}
	if rejected[1].Reason != "duplicate id" {
		t.Errorf("duplicate reason = %q", rejected[1].Reason)
	}
}
