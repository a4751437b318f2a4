package calendar

import (
	"shoot-calendar-api/core/cache"
	"shoot-calendar-api/core/config"
	"shoot-calendar-api/core/database"
	"shoot-calendar-api/core/middleware"
	"shoot-calendar-api/modules/calendar/controller"
	"shoot-calendar-api/modules/calendar/repository"
	"shoot-calendar-api/modules/calendar/router"
	"shoot-calendar-api/modules/calendar/service"
	"shoot-calendar-api/modules/calendar/worker"
	markRepository "shoot-calendar-api/modules/mark/repository"
	shootRepository "shoot-calendar-api/modules/shoot/repository"

	"github.com/labstack/echo/v4"
)

// Module exposes the calendar pieces other modules and the server start.
type Module struct {
	Scheduler *worker.Scheduler
	Handler   *worker.Handler
	Sweeper   *worker.Sweeper
}

func Init(e *echo.Echo, v1 *echo.Group, db *database.Database, c cache.Cache, enqueuer worker.Enqueuer, mw *middleware.Middleware, cfg config.CalendarConfig, publicBaseURL string) *Module {
	repo := repository.NewCalendarRepository(*db)
	markRepo := markRepository.NewMarkRepository(*db)
	shootRepo := shootRepository.NewShootRepository(*db)

	scheduler := worker.NewScheduler(enqueuer)

	resolver := service.NewTokenResolver(repo, c, cfg.TokenCacheTTL)
	assembler := service.NewFeedAssembler(repo, cfg.Name, cfg.FeedTTL)
	feedService := service.NewFeedService(db, resolver, assembler)
	tokenService := service.NewTokenService(repo, c, scheduler, publicBaseURL)
	documentService := service.NewDocumentService(repo, markRepo, shootRepo, cfg.Name, cfg.FeedTTL)

	ctrl := controller.NewCalendarController(feedService, tokenService)
	router.NewCalendarRouter(ctrl).Setup(e, v1, mw)

	return &Module{
		Scheduler: scheduler,
		Handler:   worker.NewHandler(documentService),
		Sweeper:   worker.NewSweeper(repo, scheduler, cfg.RegenerateCron),
	}
}
