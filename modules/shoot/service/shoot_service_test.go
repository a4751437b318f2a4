package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"shoot-calendar-api/core/errors"
	"shoot-calendar-api/core/params"
	"shoot-calendar-api/modules/shoot/entity"
	"shoot-calendar-api/modules/shoot/filter"
)

type fakeShootRepo struct {
	shoots []entity.Shoot
}

func (r *fakeShootRepo) ListAll(ctx context.Context) ([]entity.Shoot, error) {
	return r.shoots, nil
}

func (r *fakeShootRepo) GetByID(ctx context.Context, id int64) (*entity.Shoot, error) {
	for i := range r.shoots {
		if r.shoots[i].ID == id {
			s := r.shoots[i]
			return &s, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r *fakeShootRepo) ListByIDs(ctx context.Context, ids []int64) ([]entity.Shoot, error) {
	return nil, nil
}

type fakeMarkRepo struct {
	marked map[string][]int64
}

func (r *fakeMarkRepo) ListShootIDs(ctx context.Context, userID string) ([]int64, error) {
	return r.marked[userID], nil
}

func (r *fakeMarkRepo) Mark(ctx context.Context, userID string, shootID int64) error   { return nil }
func (r *fakeMarkRepo) Unmark(ctx context.Context, userID string, shootID int64) error { return nil }

var now = time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

func shoot(id int64, state string, month time.Month) entity.Shoot {
	return entity.Shoot{
		ID:        id,
		Name:      "Shoot",
		StartDate: time.Date(2026, month, 10, 0, 0, 0, 0, time.UTC),
		ClubName:  "Club",
		City:      "City",
		State:     state,
		EventType: "NSCA",
	}
}

func newTestService() *shootService {
	repo := &fakeShootRepo{shoots: []entity.Shoot{
		shoot(1, "ID", time.May),
		shoot(2, "CA", time.July),
		shoot(3, "ID", time.August),
		shoot(3, "ID", time.September), // duplicate id, dropped on load
	}}
	marks := &fakeMarkRepo{marked: map[string][]int64{"alice": {2}}}
	svc := NewShootService(repo, marks).(*shootService)
	svc.now = func() time.Time { return now }
	return svc
}

func defaultParams() params.QueryParams {
	return params.QueryParams{PageNumber: 1, PageSize: 20}
}

func TestListShootsMarkedRequiresUser(t *testing.T) {
	svc := newTestService()

	_, appErr := svc.ListShoots(context.Background(), "", filter.Spec{MarkedOnly: true}, defaultParams())
	if appErr == nil || appErr.Code != errors.ErrUnauthorized {
		t.Fatalf("ListShoots() error = %v, want %s", appErr, errors.ErrUnauthorized)
	}
}

func TestListShootsFiltersAndFlagsMarked(t *testing.T) {
	svc := newTestService()

	res, appErr := svc.ListShoots(context.Background(), "alice", filter.Spec{FutureOnly: true}, defaultParams())
	if appErr != nil {
		t.Fatalf("ListShoots() error = %v", appErr)
	}
	if res.TotalItems != 2 {
		t.Fatalf("TotalItems = %d, want 2", res.TotalItems)
	}
	if res.Items[0].ID != 2 || !res.Items[0].IsMarked {
		t.Errorf("first item = %+v, want marked shoot 2", res.Items[0])
	}
	if res.Items[1].ID != 3 || res.Items[1].IsMarked {
		t.Errorf("second item = %+v, want unmarked shoot 3", res.Items[1])
	}
}

func TestListShootsPaginates(t *testing.T) {
	svc := newTestService()

	res, appErr := svc.ListShoots(context.Background(), "", filter.Spec{}, params.QueryParams{PageNumber: 2, PageSize: 2})
	if appErr != nil {
		t.Fatalf("ListShoots() error = %v", appErr)
	}
	if res.TotalItems != 3 || res.TotalPages != 2 || len(res.Items) != 1 {
		t.Errorf("page = %+v", res)
	}
}

func TestGetShootNotFound(t *testing.T) {
	_, appErr := newTestService().GetShoot(context.Background(), "", 99)
	if appErr == nil || appErr.Code != errors.ErrNotFound {
		t.Fatalf("GetShoot() error = %v, want %s", appErr, errors.ErrNotFound)
	}
}

func TestGetFacets(t *testing.T) {
	res, appErr := newTestService().GetFacets(context.Background())
	if appErr != nil {
		t.Fatalf("GetFacets() error = %v", appErr)
	}
	if len(res.States) != 2 || res.States[0] != "CA" || res.States[1] != "ID" {
		t.Errorf("States = %v, want [CA ID]", res.States)
	}
	if len(res.Affiliations) != 3 || len(res.Months) != 12 {
		t.Errorf("facets = %+v", res)
	}
}
