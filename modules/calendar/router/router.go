package router

import (
	"shoot-calendar-api/core/middleware"
	"shoot-calendar-api/modules/calendar/controller"

	"github.com/labstack/echo/v4"
)

type CalendarRouter struct {
	controller *controller.CalendarController
}

func NewCalendarRouter(controller *controller.CalendarController) *CalendarRouter {
	return &CalendarRouter{controller: controller}
}

// Setup mounts the feed at the site root, where calendar clients
// subscribe, and again under the API group.
func (r *CalendarRouter) Setup(e *echo.Echo, v1 *echo.Group, mw *middleware.Middleware) {
	e.GET("/calendar.ics", r.controller.GetFeed)
	v1.GET("/public/calendar/feed", r.controller.GetFeed)

	private := v1.Group("/private/calendar", mw.AuthMiddleware())
	private.POST("/token", r.controller.IssueToken)
	private.POST("/token/rotate", r.controller.RotateToken)
}
