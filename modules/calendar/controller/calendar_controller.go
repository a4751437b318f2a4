package controller

import (
	"net/http"

	"shoot-calendar-api/core/constants"
	"shoot-calendar-api/core/controller"
	"shoot-calendar-api/core/errors"
	"shoot-calendar-api/core/utils"
	"shoot-calendar-api/modules/calendar/service"

	"github.com/labstack/echo/v4"
)

type CalendarController struct {
	controller.BaseController
	feedService  service.FeedService
	tokenService service.TokenService
}

func NewCalendarController(feedService service.FeedService, tokenService service.TokenService) *CalendarController {
	return &CalendarController{
		BaseController: controller.NewBaseController(),
		feedService:    feedService,
		tokenService:   tokenService,
	}
}

// GetFeed serves the subscribed calendar document
// @Summary Calendar feed
// @Description Returns the iCalendar document of the user the token belongs to
// @Tags Calendar
// @Produce text/calendar
// @Param token query string true "Calendar token"
// @Success 200 {string} string "iCalendar document"
// @Failure 400 {object} controller.ErrorResponse
// @Failure 401 {object} controller.ErrorResponse
// @Failure 404 {object} controller.ErrorResponse
// @Failure 503 {object} controller.ErrorResponse
// @Router /calendar.ics [get]
func (c *CalendarController) GetFeed(ctx echo.Context) error {
	feed, appErr := c.feedService.Serve(ctx.Request().Context(), ctx.QueryParam("token"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	h := ctx.Response().Header()
	h.Set(echo.HeaderContentDisposition, feed.ContentDisposition())
	h.Set("Cache-Control", feed.CacheControl())
	h.Set(constants.HeaderPublishedTTL, feed.PublishedTTL())
	if !feed.UpdatedAt.IsZero() {
		h.Set(echo.HeaderLastModified, feed.UpdatedAt.UTC().Format(http.TimeFormat))
	}
	return ctx.Blob(http.StatusOK, feed.ContentType, feed.Document)
}

// IssueToken returns the caller's calendar token, creating it on first use
// @Summary Issue calendar token
// @Tags Calendar
// @Security BearerAuth
// @Produce json
// @Success 200 {object} controller.SuccessResponse
// @Failure 401 {object} controller.ErrorResponse
// @Router /private/calendar/token [post]
func (c *CalendarController) IssueToken(ctx echo.Context) error {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	result, appErr := c.tokenService.GetOrCreateToken(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Calendar token retrieved successfully")
}

// RotateToken replaces the caller's calendar token
// @Summary Rotate calendar token
// @Tags Calendar
// @Security BearerAuth
// @Produce json
// @Success 200 {object} controller.SuccessResponse
// @Failure 404 {object} controller.ErrorResponse
// @Router /private/calendar/token/rotate [post]
func (c *CalendarController) RotateToken(ctx echo.Context) error {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	result, appErr := c.tokenService.RotateToken(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Calendar token rotated")
}
