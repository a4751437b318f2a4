package repository

import (
	"context"

	"shoot-calendar-api/core/database"
	"shoot-calendar-api/core/logger"
)

type MarkRepository interface {
	ListShootIDs(ctx context.Context, userID string) ([]int64, error)
	Mark(ctx context.Context, userID string, shootID int64) error
	Unmark(ctx context.Context, userID string, shootID int64) error
}

type markRepository struct {
	db database.Database
}

func NewMarkRepository(db database.Database) MarkRepository {
	return &markRepository{db: db}
}

func (r *markRepository) ListShootIDs(ctx context.Context, userID string) ([]int64, error) {
	query := `SELECT shoot_id FROM marked_shoots WHERE user_id = $1 ORDER BY shoot_id`

	ids := []int64{}
	if err := r.db.SelectContext(ctx, &ids, query, userID); err != nil {
		logger.Error("MarkRepository:ListShootIDs:Error", "user_id", userID, "error", err)
		return nil, err
	}
	return ids, nil
}

// Mark is idempotent: marking a marked shoot is a no-op.
func (r *markRepository) Mark(ctx context.Context, userID string, shootID int64) error {
	query := `
		INSERT INTO marked_shoots (user_id, shoot_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, shoot_id) DO NOTHING
	`
	if err := r.db.ExecContext(ctx, query, userID, shootID); err != nil {
		logger.Error("MarkRepository:Mark:Error", "user_id", userID, "shoot_id", shootID, "error", err)
		return err
	}
	return nil
}

func (r *markRepository) Unmark(ctx context.Context, userID string, shootID int64) error {
	query := `DELETE FROM marked_shoots WHERE user_id = $1 AND shoot_id = $2`
	if err := r.db.ExecContext(ctx, query, userID, shootID); err != nil {
		logger.Error("MarkRepository:Unmark:Error", "user_id", userID, "shoot_id", shootID, "error", err)
		return err
	}
	return nil
}
