package filter

import (
	"strings"
	"time"

	"shoot-calendar-api/modules/shoot/entity"
)

// Apply returns the shoots that pass every facet of spec, in input order.
// Facets combine with AND; values inside one facet combine with OR. The
// input slice and its elements are never modified.
func Apply(shoots []entity.Shoot, spec Spec, marked MarkedSet, now time.Time) []entity.Shoot {
	out := make([]entity.Shoot, 0, len(shoots))
	if spec.IsDefault() {
		return append(out, shoots...)
	}

	preds := compile(spec, marked, now)
	for i := range shoots {
		if matchAll(preds, &shoots[i]) {
			out = append(out, shoots[i])
		}
	}
	return out
}

type predicate func(s *entity.Shoot) bool

func matchAll(preds []predicate, s *entity.Shoot) bool {
	for _, p := range preds {
		if !p(s) {
			return false
		}
	}
	return true
}

// compile turns the active facets into predicates, cheapest first. Order
// only affects speed, never the result.
func compile(spec Spec, marked MarkedSet, now time.Time) []predicate {
	var preds []predicate

	if spec.MarkedOnly {
		preds = append(preds, func(s *entity.Shoot) bool {
			return marked.Has(s.ID)
		})
	}
	if spec.FutureOnly {
		preds = append(preds, func(s *entity.Shoot) bool {
			return s.IsFuture(now)
		})
	}
	if spec.NotableOnly {
		preds = append(preds, func(s *entity.Shoot) bool {
			return s.IsNotable()
		})
	}
	if len(spec.Months) > 0 {
		months := make(map[time.Month]struct{}, len(spec.Months))
		for _, m := range spec.Months {
			months[m] = struct{}{}
		}
		preds = append(preds, func(s *entity.Shoot) bool {
			_, ok := months[s.StartDate.Month()]
			return ok
		})
	}
	if len(spec.States) > 0 {
		states := make(map[string]struct{}, len(spec.States))
		for _, st := range spec.States {
			states[st] = struct{}{}
		}
		preds = append(preds, func(s *entity.Shoot) bool {
			_, ok := states[s.State]
			return ok
		})
	}
	if len(spec.Affiliations) > 0 {
		// Substring match: a tag like "NSCA-Regional" counts as NSCA.
		affiliations := spec.Affiliations
		preds = append(preds, func(s *entity.Shoot) bool {
			for _, a := range affiliations {
				if strings.Contains(s.EventType, string(a)) {
					return true
				}
			}
			return false
		})
	}
	if spec.Search != "" {
		needle := strings.ToLower(spec.Search)
		preds = append(preds, func(s *entity.Shoot) bool {
			return containsFold(s.Name, needle) ||
				containsFold(s.ClubName, needle) ||
				containsFold(s.City, needle) ||
				containsFold(s.State, needle)
		})
	}
	return preds
}

func containsFold(haystack, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(haystack), lowerNeedle)
}
