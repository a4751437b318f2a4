package queue

import (
	"context"

	"shoot-calendar-api/core/config"
	"shoot-calendar-api/core/constants"
	"shoot-calendar-api/core/logger"

	"github.com/hibiken/asynq"
)

func RedisOpt(cfg config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

func NewClient(cfg config.RedisConfig) *asynq.Client {
	return asynq.NewClient(RedisOpt(cfg))
}

// NewServer builds the background worker server. Handler errors are logged
// here; asynq takes care of retries.
func NewServer(cfg config.RedisConfig) *asynq.Server {
	return asynq.NewServer(RedisOpt(cfg), asynq.Config{
		Concurrency: constants.WorkerConcurrency,
		Queues: map[string]int{
			constants.QueueCalendar: 1,
		},
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			logger.Error("Queue:Task:Error", "type", task.Type(), "error", err)
		}),
	})
}
