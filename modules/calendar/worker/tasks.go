package worker

import (
	"context"
	"encoding/json"
	"errors"

	"shoot-calendar-api/core/constants"
	"shoot-calendar-api/core/logger"

	"github.com/hibiken/asynq"
)

const TypeCalendarRegenerate = "calendar:regenerate"

type RegeneratePayload struct {
	UserID string `json:"user_id"`
}

func NewRegenerateTask(userID string) (*asynq.Task, error) {
	payload, err := json.Marshal(RegeneratePayload{UserID: userID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeCalendarRegenerate, payload,
		asynq.Queue(constants.QueueCalendar),
		asynq.MaxRetry(constants.RegenerateTaskMaxRetry),
		asynq.Timeout(constants.RegenerateTaskTimeout),
	), nil
}

// Enqueuer is the part of *asynq.Client the scheduler needs.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Scheduler queues document rebuilds. Bursts of requests for the same user
// collapse into one task.
type Scheduler struct {
	client Enqueuer
}

func NewScheduler(client Enqueuer) *Scheduler {
	return &Scheduler{client: client}
}

func (s *Scheduler) RequestRegenerate(ctx context.Context, userID string) error {
	task, err := NewRegenerateTask(userID)
	if err != nil {
		return err
	}

	info, err := s.client.EnqueueContext(ctx, task, asynq.Unique(constants.RegenerateTaskUniqueFor))
	if err != nil {
		if errors.Is(err, asynq.ErrDuplicateTask) {
			logger.Debug("Scheduler:RequestRegenerate:Duplicate", "user_id", userID)
			return nil
		}
		logger.Error("Scheduler:RequestRegenerate:Enqueue", "user_id", userID, "error", err)
		return err
	}

	logger.Debug("Scheduler:RequestRegenerate:Enqueued", "user_id", userID, "task_id", info.ID)
	return nil
}
