package service

import (
	"context"
	"database/sql"
	stdErrors "errors"
	"testing"

	"shoot-calendar-api/core/errors"
	"shoot-calendar-api/modules/shoot/entity"
)

type fakeMarkRepo struct {
	marked map[string]map[int64]bool
	err    error
}

func newFakeMarkRepo() *fakeMarkRepo {
	return &fakeMarkRepo{marked: map[string]map[int64]bool{}}
}

func (r *fakeMarkRepo) ListShootIDs(ctx context.Context, userID string) ([]int64, error) {
	ids := []int64{}
	for id := range r.marked[userID] {
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *fakeMarkRepo) Mark(ctx context.Context, userID string, shootID int64) error {
	if r.err != nil {
		return r.err
	}
	if r.marked[userID] == nil {
		r.marked[userID] = map[int64]bool{}
	}
	r.marked[userID][shootID] = true
	return nil
}

func (r *fakeMarkRepo) Unmark(ctx context.Context, userID string, shootID int64) error {
	delete(r.marked[userID], shootID)
	return nil
}

type fakeShootRepo struct {
	ids map[int64]bool
}

func (r *fakeShootRepo) ListAll(ctx context.Context) ([]entity.Shoot, error) { return nil, nil }

func (r *fakeShootRepo) GetByID(ctx context.Context, id int64) (*entity.Shoot, error) {
	if !r.ids[id] {
		return nil, sql.ErrNoRows
	}
	return &entity.Shoot{ID: id}, nil
}

func (r *fakeShootRepo) ListByIDs(ctx context.Context, ids []int64) ([]entity.Shoot, error) {
	return nil, nil
}

type fakeRefresher struct {
	userIDs []string
	err     error
}

func (f *fakeRefresher) RequestRegenerate(ctx context.Context, userID string) error {
	f.userIDs = append(f.userIDs, userID)
	return f.err
}

func TestMarkAndUnmarkRequestRegeneration(t *testing.T) {
	repo := newFakeMarkRepo()
	refresher := &fakeRefresher{}
	svc := NewMarkService(repo, &fakeShootRepo{ids: map[int64]bool{7: true}}, refresher)
	ctx := context.Background()

	res, appErr := svc.Mark(ctx, "alice", 7)
	if appErr != nil || !res.Marked {
		t.Fatalf("Mark() = %+v, %v", res, appErr)
	}
	list, _ := svc.ListMarked(ctx, "alice")
	if len(list.ShootIDs) != 1 || list.ShootIDs[0] != 7 {
		t.Errorf("ListMarked() = %v, want [7]", list.ShootIDs)
	}

	res, appErr = svc.Unmark(ctx, "alice", 7)
	if appErr != nil || res.Marked {
		t.Fatalf("Unmark() = %+v, %v", res, appErr)
	}
	if len(refresher.userIDs) != 2 {
		t.Errorf("regenerations requested = %v, want 2", refresher.userIDs)
	}
}

func TestMarkUnknownShoot(t *testing.T) {
	refresher := &fakeRefresher{}
	svc := NewMarkService(newFakeMarkRepo(), &fakeShootRepo{}, refresher)

	_, appErr := svc.Mark(context.Background(), "alice", 99)
	if appErr == nil || appErr.Code != errors.ErrNotFound {
		t.Fatalf("Mark() error = %v, want %s", appErr, errors.ErrNotFound)
	}
	if len(refresher.userIDs) != 0 {
		t.Error("no regeneration expected for a failed mark")
	}
}

func TestMarkSucceedsWhenRefreshFails(t *testing.T) {
	refresher := &fakeRefresher{err: stdErrors.New("queue down")}
	svc := NewMarkService(newFakeMarkRepo(), &fakeShootRepo{ids: map[int64]bool{7: true}}, refresher)

	if _, appErr := svc.Mark(context.Background(), "alice", 7); appErr != nil {
		t.Fatalf("Mark() error = %v, want nil", appErr)
	}
}

func TestMarkStoreFailure(t *testing.T) {
	repo := newFakeMarkRepo()
	repo.err = stdErrors.New("down")
	svc := NewMarkService(repo, &fakeShootRepo{ids: map[int64]bool{7: true}}, nil)

	_, appErr := svc.Mark(context.Background(), "alice", 7)
	if appErr == nil || appErr.Code != errors.ErrCreateFailed {
		t.Fatalf("Mark() error = %v, want %s", appErr, errors.ErrCreateFailed)
	}
}
