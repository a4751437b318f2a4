package router

import (
	"shoot-calendar-api/core/middleware"
	"shoot-calendar-api/modules/shoot/controller"

	"github.com/labstack/echo/v4"
)

type ShootRouter struct {
	controller *controller.ShootController
}

func NewShootRouter(controller *controller.ShootController) *ShootRouter {
	return &ShootRouter{controller: controller}
}

func (r *ShootRouter) Setup(v1 *echo.Group, mw *middleware.Middleware) {
	group := v1.Group("/shoots", mw.OptionalAuth())
	group.GET("", r.controller.ListShoots)
	group.GET("/facets", r.controller.GetFacets)
	group.GET("/:id", r.controller.GetShoot)
}
