package service

import (
	"context"
	"time"

	"shoot-calendar-api/core/errors"
	"shoot-calendar-api/core/logger"
	"shoot-calendar-api/modules/calendar/entity"
	"shoot-calendar-api/modules/calendar/generator"
	"shoot-calendar-api/modules/calendar/repository"
	markRepository "shoot-calendar-api/modules/mark/repository"
	shootRepository "shoot-calendar-api/modules/shoot/repository"
	"shoot-calendar-api/modules/shoot/validator"
)

// DocumentService rebuilds the stored calendar document from the user's
// marked shoots.
type DocumentService interface {
	Regenerate(ctx context.Context, userID string) *errors.AppError
}

type documentService struct {
	repo      repository.CalendarRepository
	markRepo  markRepository.MarkRepository
	shootRepo shootRepository.ShootRepository
	name      string
	ttl       time.Duration
	now       func() time.Time
}

func NewDocumentService(
	repo repository.CalendarRepository,
	markRepo markRepository.MarkRepository,
	shootRepo shootRepository.ShootRepository,
	calendarName string,
	ttl time.Duration,
) DocumentService {
	return &documentService{
		repo:      repo,
		markRepo:  markRepo,
		shootRepo: shootRepo,
		name:      calendarName,
		ttl:       ttl,
		now:       time.Now,
	}
}

func (s *documentService) Regenerate(ctx context.Context, userID string) *errors.AppError {
	ids, err := s.markRepo.ListShootIDs(ctx, userID)
	if err != nil {
		return errors.NewAppError(errors.ErrGetFailed, "failed to get marked shoots", err)
	}

	shoots, err := s.shootRepo.ListByIDs(ctx, ids)
	if err != nil {
		return errors.NewAppError(errors.ErrGetFailed, "failed to get shoots", err)
	}

	valid, rejected := validator.ValidateCollection(shoots)
	for _, r := range rejected {
		logger.Warn("DocumentService:Regenerate:InvalidShoot", "user_id", userID, "shoot_id", r.ID, "reason", r.Reason)
	}

	now := s.now()
	doc := &entity.CalendarDocument{
		UserID: userID,
		Document: generator.Build(valid, generator.Options{
			Name: s.name,
			TTL:  s.ttl,
			Now:  now,
		}),
		UpdatedAt: now.UTC(),
	}
	if err := s.repo.UpsertDocument(ctx, doc); err != nil {
		return errors.NewAppError(errors.ErrUpdateFailed, "failed to store calendar document", err)
	}

	logger.Info("DocumentService:Regenerate:Success", "user_id", userID, "events", len(valid))
	return nil
}
