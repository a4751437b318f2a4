package service

import (
	"context"
	"database/sql"

	"shoot-calendar-api/core/errors"
	"shoot-calendar-api/core/logger"
	"shoot-calendar-api/modules/mark/dto"
	"shoot-calendar-api/modules/mark/repository"
	shootRepository "shoot-calendar-api/modules/shoot/repository"
)

// DocumentRefresher schedules a rebuild of a user's calendar document.
type DocumentRefresher interface {
	RequestRegenerate(ctx context.Context, userID string) error
}

type MarkService interface {
	ListMarked(ctx context.Context, userID string) (*dto.MarkedShootsResponse, *errors.AppError)
	Mark(ctx context.Context, userID string, shootID int64) (*dto.MarkResponse, *errors.AppError)
	Unmark(ctx context.Context, userID string, shootID int64) (*dto.MarkResponse, *errors.AppError)
}

type markService struct {
	repo      repository.MarkRepository
	shootRepo shootRepository.ShootRepository
	refresher DocumentRefresher
}

func NewMarkService(repo repository.MarkRepository, shootRepo shootRepository.ShootRepository, refresher DocumentRefresher) MarkService {
	return &markService{
		repo:      repo,
		shootRepo: shootRepo,
		refresher: refresher,
	}
}

func (s *markService) ListMarked(ctx context.Context, userID string) (*dto.MarkedShootsResponse, *errors.AppError) {
	ids, err := s.repo.ListShootIDs(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to get marked shoots", err)
	}
	return &dto.MarkedShootsResponse{ShootIDs: ids}, nil
}

func (s *markService) Mark(ctx context.Context, userID string, shootID int64) (*dto.MarkResponse, *errors.AppError) {
	if _, err := s.shootRepo.GetByID(ctx, shootID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.NewAppError(errors.ErrNotFound, "shoot not found", nil)
		}
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to get shoot", err)
	}

	if err := s.repo.Mark(ctx, userID, shootID); err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "failed to mark shoot", err)
	}
	s.refresh(ctx, userID)

	logger.Info("MarkService:Mark:Success", "user_id", userID, "shoot_id", shootID)
	return &dto.MarkResponse{ShootID: shootID, Marked: true}, nil
}

func (s *markService) Unmark(ctx context.Context, userID string, shootID int64) (*dto.MarkResponse, *errors.AppError) {
	if err := s.repo.Unmark(ctx, userID, shootID); err != nil {
		return nil, errors.NewAppError(errors.ErrDeleteFailed, "failed to unmark shoot", err)
	}
	s.refresh(ctx, userID)

	logger.Info("MarkService:Unmark:Success", "user_id", userID, "shoot_id", shootID)
	return &dto.MarkResponse{ShootID: shootID, Marked: false}, nil
}

// refresh failures are logged only; the periodic sweep rebuilds the
// document later.
func (s *markService) refresh(ctx context.Context, userID string) {
	if s.refresher == nil {
		return
	}
	if err := s.refresher.RequestRegenerate(ctx, userID); err != nil {
		logger.Warn("MarkService:refresh:Error", "user_id", userID, "error", err)
	}
}
