package shoot

import (
	"shoot-calendar-api/core/database"
	"shoot-calendar-api/core/middleware"
	markRepository "shoot-calendar-api/modules/mark/repository"
	"shoot-calendar-api/modules/shoot/controller"
	"shoot-calendar-api/modules/shoot/repository"
	"shoot-calendar-api/modules/shoot/router"
	"shoot-calendar-api/modules/shoot/service"

	"github.com/labstack/echo/v4"
)

func Init(v1 *echo.Group, db database.Database, mw *middleware.Middleware) service.ShootService {
	repo := repository.NewShootRepository(db)
	markRepo := markRepository.NewMarkRepository(db)
	svc := service.NewShootService(repo, markRepo)
	ctrl := controller.NewShootController(svc)

	router.NewShootRouter(ctrl).Setup(v1, mw)

	return svc
}
