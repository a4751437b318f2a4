package service

import (
	"context"
	"database/sql"
	"net/url"
	"strings"

	"shoot-calendar-api/core/cache"
	"shoot-calendar-api/core/errors"
	"shoot-calendar-api/core/logger"
	"shoot-calendar-api/core/utils"
	"shoot-calendar-api/modules/calendar/dto"
	"shoot-calendar-api/modules/calendar/entity"
	"shoot-calendar-api/modules/calendar/repository"
)

// DocumentRefresher schedules a rebuild of a user's calendar document.
type DocumentRefresher interface {
	RequestRegenerate(ctx context.Context, userID string) error
}

// TokenService issues the calendar token a user subscribes with.
type TokenService interface {
	GetOrCreateToken(ctx context.Context, userID string) (*dto.CalendarTokenResponse, *errors.AppError)
	RotateToken(ctx context.Context, userID string) (*dto.CalendarTokenResponse, *errors.AppError)
}

type tokenService struct {
	repo      repository.CalendarRepository
	cache     cache.Cache
	refresher DocumentRefresher
	baseURL   string
	generate  func() (string, error)
}

func NewTokenService(repo repository.CalendarRepository, c cache.Cache, refresher DocumentRefresher, publicBaseURL string) TokenService {
	return &tokenService{
		repo:      repo,
		cache:     c,
		refresher: refresher,
		baseURL:   strings.TrimRight(publicBaseURL, "/"),
		generate:  utils.GenerateCalendarToken,
	}
}

// FeedURL is the subscription URL for a token.
func FeedURL(baseURL string, token string) string {
	return strings.TrimRight(baseURL, "/") + "/calendar.ics?token=" + url.QueryEscape(token)
}

func (s *tokenService) GetOrCreateToken(ctx context.Context, userID string) (*dto.CalendarTokenResponse, *errors.AppError) {
	existing, err := s.repo.GetTokenByUserID(ctx, userID)
	if err == nil {
		return s.toResponse(existing), nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to get calendar token", err)
	}

	value, err := s.generate()
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to generate calendar token", err)
	}

	created, err := s.repo.CreateToken(ctx, &entity.CalendarToken{Token: value, UserID: userID})
	if errors.Is(err, sql.ErrNoRows) {
		// A concurrent request created it first.
		existing, err = s.repo.GetTokenByUserID(ctx, userID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrGetFailed, "failed to get calendar token", err)
		}
		return s.toResponse(existing), nil
	}
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "failed to create calendar token", err)
	}
	s.refresh(ctx, userID)

	logger.Info("TokenService:GetOrCreateToken:Created", "user_id", userID)
	return s.toResponse(created), nil
}

// RotateToken replaces the caller's token; the old feed URL stops working.
func (s *tokenService) RotateToken(ctx context.Context, userID string) (*dto.CalendarTokenResponse, *errors.AppError) {
	existing, err := s.repo.GetTokenByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.NewAppError(errors.ErrNotFound, "calendar token not found", nil)
		}
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to get calendar token", err)
	}

	value, err := s.generate()
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to generate calendar token", err)
	}

	rotated, err := s.repo.ReplaceToken(ctx, userID, value)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "failed to rotate calendar token", err)
	}

	if s.cache != nil {
		if err := s.cache.DeleteCalendarToken(ctx, existing.Token); err != nil {
			logger.Warn("TokenService:RotateToken:CacheDelete", "user_id", userID, "error", err)
		}
	}

	logger.Info("TokenService:RotateToken:Success", "user_id", userID)
	return s.toResponse(rotated), nil
}

func (s *tokenService) toResponse(t *entity.CalendarToken) *dto.CalendarTokenResponse {
	return &dto.CalendarTokenResponse{
		Token:     t.Token,
		FeedURL:   FeedURL(s.baseURL, t.Token),
		CreatedAt: t.CreatedAt,
	}
}

func (s *tokenService) refresh(ctx context.Context, userID string) {
	if s.refresher == nil {
		return
	}
	if err := s.refresher.RequestRegenerate(ctx, userID); err != nil {
		logger.Warn("TokenService:Refresh:Error", "user_id", userID, "error", err)
	}
}
