package mark

import (
	"shoot-calendar-api/core/database"
	"shoot-calendar-api/core/middleware"
	"shoot-calendar-api/modules/mark/controller"
	"shoot-calendar-api/modules/mark/repository"
	"shoot-calendar-api/modules/mark/router"
	"shoot-calendar-api/modules/mark/service"
	shootRepository "shoot-calendar-api/modules/shoot/repository"

	"github.com/labstack/echo/v4"
)

func Init(v1 *echo.Group, db database.Database, mw *middleware.Middleware, refresher service.DocumentRefresher) service.MarkService {
	repo := repository.NewMarkRepository(db)
	shootRepo := shootRepository.NewShootRepository(db)
	svc := service.NewMarkService(repo, shootRepo, refresher)
	ctrl := controller.NewMarkController(svc)

	router.NewMarkRouter(ctrl).Setup(v1, mw)

	return svc
}
