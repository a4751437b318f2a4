package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"shoot-calendar-api/core/errors"
	"shoot-calendar-api/core/logger"

	"github.com/hibiken/asynq"
)

// Regenerator rebuilds and stores one user's calendar document.
type Regenerator interface {
	Regenerate(ctx context.Context, userID string) *errors.AppError
}

type Handler struct {
	regenerator Regenerator
}

func NewHandler(regenerator Regenerator) *Handler {
	return &Handler{regenerator: regenerator}
}

func (h *Handler) Register(mux *asynq.ServeMux) {
	mux.Handle(TypeCalendarRegenerate, h)
}

func (h *Handler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload RegeneratePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Error("CalendarWorker:ProcessTask:Decode", "error", err)
		return fmt.Errorf("decode payload: %v: %w", err, asynq.SkipRetry)
	}
	if payload.UserID == "" {
		return fmt.Errorf("empty user id: %w", asynq.SkipRetry)
	}

	if appErr := h.regenerator.Regenerate(ctx, payload.UserID); appErr != nil {
		return appErr
	}
	return nil
}
