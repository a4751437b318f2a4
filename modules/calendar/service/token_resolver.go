package service

import (
	"context"
	"database/sql"
	"time"

	"shoot-calendar-api/core/cache"
	"shoot-calendar-api/core/database"
	"shoot-calendar-api/core/errors"
	"shoot-calendar-api/core/logger"
	"shoot-calendar-api/modules/calendar/repository"
)

const msgInvalidCalendarToken = "invalid calendar token"

// TokenResolver maps an opaque calendar token to the owning user.
type TokenResolver interface {
	Resolve(ctx context.Context, conn database.Conn, token string) (string, *errors.AppError)
}

type tokenResolver struct {
	repo  repository.CalendarRepository
	cache cache.Cache
	ttl   time.Duration
}

// NewTokenResolver builds a resolver. The cache is consulted only when both
// c is non-nil and ttl is positive.
func NewTokenResolver(repo repository.CalendarRepository, c cache.Cache, ttl time.Duration) TokenResolver {
	return &tokenResolver{
		repo:  repo,
		cache: c,
		ttl:   ttl,
	}
}

func (r *tokenResolver) cacheEnabled() bool {
	return r.cache != nil && r.ttl > 0
}

func (r *tokenResolver) Resolve(ctx context.Context, conn database.Conn, token string) (string, *errors.AppError) {
	if r.cacheEnabled() {
		userID, found, err := r.cache.GetCalendarToken(ctx, token)
		if err != nil {
			logger.Warn("TokenResolver:Resolve:CacheGet", "error", err)
		} else if found {
			return userID, nil
		}
	}

	userID, err := r.repo.GetUserIDByToken(ctx, conn, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", errors.NewAppError(errors.ErrUnauthorizedToken, msgInvalidCalendarToken, nil)
		}
		return "", errors.NewAppError(errors.ErrUpstreamUnavailable, "calendar store unavailable", err)
	}

	if r.cacheEnabled() {
		if err := r.cache.SetCalendarToken(ctx, token, userID, r.ttl); err != nil {
			logger.Warn("TokenResolver:Resolve:CacheSet", "error", err)
		}
	}
	return userID, nil
}
