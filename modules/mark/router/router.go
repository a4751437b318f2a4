package router

import (
	"shoot-calendar-api/core/middleware"
	"shoot-calendar-api/modules/mark/controller"

	"github.com/labstack/echo/v4"
)

type MarkRouter struct {
	controller *controller.MarkController
}

func NewMarkRouter(controller *controller.MarkController) *MarkRouter {
	return &MarkRouter{controller: controller}
}

func (r *MarkRouter) Setup(v1 *echo.Group, mw *middleware.Middleware) {
	group := v1.Group("/private/marks", mw.AuthMiddleware())
	group.GET("", r.controller.ListMarked)
	group.PUT("/:shootId", r.controller.Mark)
	group.DELETE("/:shootId", r.controller.Unmark)
}
