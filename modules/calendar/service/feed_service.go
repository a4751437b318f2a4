package service

import (
	"context"
	"fmt"
	"sync"

	"shoot-calendar-api/core/database"
	"shoot-calendar-api/core/errors"
	"shoot-calendar-api/core/logger"
	"shoot-calendar-api/modules/calendar/dto"
)

type feedState string

const (
	stateAwaitingToken feedState = "awaiting_token"
	stateResolving     feedState = "resolving"
	stateAssembling    feedState = "assembling"
	stateResponding    feedState = "responding"
)

// FeedService serves one calendar feed request: token in, document out.
type FeedService interface {
	Serve(ctx context.Context, token string) (*dto.CalendarFeed, *errors.AppError)
}

type feedService struct {
	pool      database.Pool
	resolver  TokenResolver
	assembler FeedAssembler
}

func NewFeedService(pool database.Pool, resolver TokenResolver, assembler FeedAssembler) FeedService {
	return &feedService{
		pool:      pool,
		resolver:  resolver,
		assembler: assembler,
	}
}

// Serve borrows exactly one connection for the token and document lookups
// and returns it on every exit path, panics included.
func (s *feedService) Serve(ctx context.Context, token string) (feed *dto.CalendarFeed, appErr *errors.AppError) {
	state := stateAwaitingToken
	if token == "" {
		logger.Info("FeedService:Serve:MissingToken", "state", state)
		return nil, errors.NewAppError(errors.ErrInvalidRequest, "missing calendar token", nil)
	}

	state = stateResolving
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		logger.Error("FeedService:Serve:Acquire", "error", err)
		return nil, errors.NewAppError(errors.ErrUpstreamUnavailable, "calendar store unavailable", err)
	}

	var once sync.Once
	release := func() {
		once.Do(func() {
			if cerr := conn.Close(); cerr != nil {
				logger.Warn("FeedService:Serve:Release", "error", cerr)
			}
		})
	}
	defer func() {
		if r := recover(); r != nil {
			release()
			logger.Error("FeedService:Serve:Panic", "state", state, "panic", r)
			feed = nil
			appErr = errors.NewAppError(errors.ErrInternalServer, "internal server error", fmt.Errorf("panic: %v", r))
			return
		}
		release()
	}()

	userID, appErr := s.resolver.Resolve(ctx, conn, token)
	if appErr != nil {
		logger.Info("FeedService:Serve:Resolve", "state", state, "code", appErr.Code)
		return nil, appErr
	}

	state = stateAssembling
	feed, appErr = s.assembler.Assemble(ctx, conn, userID)
	if appErr != nil {
		logger.Info("FeedService:Serve:Assemble", "state", state, "user_id", userID, "code", appErr.Code)
		return nil, appErr
	}

	state = stateResponding
	logger.Debug("FeedService:Serve:Success", "state", state, "user_id", userID, "bytes", len(feed.Document))
	return feed, nil
}
