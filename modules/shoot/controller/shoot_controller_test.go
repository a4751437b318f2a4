package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shoot-calendar-api/core/errors"
	"shoot-calendar-api/modules/shoot/filter"

	"github.com/labstack/echo/v4"
)

func newContext(target string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestSpecFromQuery(t *testing.T) {
	ctx := newContext("/shoots?search=+Boise+&affiliation=nsca,ATA&month=6&month=7&state=ID&future=true&notable=1&marked=false")

	spec, appErr := SpecFromQuery(ctx)
	if appErr != nil {
		t.Fatalf("SpecFromQuery() error = %v", appErr)
	}
	if spec.Search != " Boise " {
		t.Errorf("Search = %q", spec.Search)
	}
	if len(spec.Affiliations) != 2 || spec.Affiliations[0] != filter.AffiliationNSCA || spec.Affiliations[1] != filter.AffiliationATA {
		t.Errorf("Affiliations = %v", spec.Affiliations)
	}
	if len(spec.Months) != 2 || spec.Months[0] != time.June || spec.Months[1] != time.July {
		t.Errorf("Months = %v", spec.Months)
	}
	if len(spec.States) != 1 || spec.States[0] != "ID" {
		t.Errorf("States = %v", spec.States)
	}
	if !spec.FutureOnly || !spec.NotableOnly || spec.MarkedOnly {
		t.Errorf("toggles = %+v", spec)
	}
}

func TestSpecFromQueryEmptyIsDefault(t *testing.T) {
	spec, appErr := SpecFromQuery(newContext("/shoots"))
	if appErr != nil {
		t.Fatalf("SpecFromQuery() error = %v", appErr)
	}
	if !spec.IsDefault() {
		t.Errorf("spec = %+v, want default", spec)
	}
}

func TestSpecFromQueryRejects(t *testing.T) {
	for _, target := range []string{
		"/shoots?affiliation=IPSC",
		"/shoots?month=june",
	} {
		_, appErr := SpecFromQuery(newContext(target))
		if appErr == nil || appErr.Code != errors.ErrInvalidInput {
			t.Errorf("SpecFromQuery(%s) error = %v, want %s", target, appErr, errors.ErrInvalidInput)
		}
	}
}

func TestSpecFromQueryKeepsOutOfRangeMonth(t *testing.T) {
	spec, appErr := SpecFromQuery(newContext("/shoots?month=13"))
	if appErr != nil {
		t.Fatalf("SpecFromQuery() error = %v", appErr)
	}
	if len(spec.Months) != 1 || spec.Months[0] != 13 {
		t.Errorf("Months = %v, want [13]", spec.Months)
	}
}

func TestSpecFromQueryKeepsSearchVerbatim(t *testing.T) {
	spec, appErr := SpecFromQuery(newContext("/shoots?search=+"))
	if appErr != nil {
		t.Fatalf("SpecFromQuery() error = %v", appErr)
	}
	if spec.Search != " " {
		t.Errorf("Search = %q, want a single space", spec.Search)
	}
	if spec.IsDefault() {
		t.Error("a whitespace search still restricts results")
	}
}
