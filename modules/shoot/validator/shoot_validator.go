package validator

import (
	"fmt"
	"strings"
	"sync"

	"shoot-calendar-api/core/errors"
	"shoot-calendar-api/modules/shoot/entity"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func get() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterStructValidation(shootStructLevel, entity.Shoot{})
	})
	return validate
}

func shootStructLevel(sl validator.StructLevel) {
	s := sl.Current().Interface().(entity.Shoot)

	if (s.Latitude == nil) != (s.Longitude == nil) {
		if s.Latitude == nil {
			sl.ReportError(s.Latitude, "Latitude", "Latitude", "coordinate_pair", "")
		} else {
			sl.ReportError(s.Longitude, "Longitude", "Longitude", "coordinate_pair", "")
		}
	}
	if s.EndDate != nil && s.EndDate.Before(s.StartDate) {
		sl.ReportError(s.EndDate, "EndDate", "EndDate", "end_after_start", "")
	}
}

// ValidateShoot checks a single record. A half coordinate pair is rejected.
func ValidateShoot(s *entity.Shoot) *errors.AppError {
	if err := get().Struct(s); err != nil {
		return errors.NewAppError(errors.ErrInvalidInput, describe(err), err)
	}
	return nil
}

// Rejection explains why a record was left out of a collection.
type Rejection struct {
	ID     int64
	Reason string
}

// ValidateCollection keeps the valid records in their original order. The
// first record with a given id wins, later duplicates are rejected.
func ValidateCollection(shoots []entity.Shoot) ([]entity.Shoot, []Rejection) {
	valid := make([]entity.Shoot, 0, len(shoots))
	var rejected []Rejection
	seen := make(map[int64]struct{}, len(shoots))

	for i := range shoots {
		s := &shoots[i]
		if appErr := ValidateShoot(s); appErr != nil {
			rejected = append(rejected, Rejection{ID: s.ID, Reason: appErr.Message})
			continue
		}
		if _, dup := seen[s.ID]; dup {
			rejected = append(rejected, Rejection{ID: s.ID, Reason: "duplicate id"})
			continue
		}
		seen[s.ID] = struct{}{}
		valid = append(valid, *s)
	}
	return valid, rejected
}

func describe(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return "invalid shoot"
	}
	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		parts = append(parts, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
