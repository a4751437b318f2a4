package controller

import (
	"strconv"

	"shoot-calendar-api/core/controller"
	"shoot-calendar-api/core/errors"
	"shoot-calendar-api/core/utils"
	"shoot-calendar-api/modules/mark/service"

	"github.com/labstack/echo/v4"
)

type MarkController struct {
	controller.BaseController
	service service.MarkService
}

func NewMarkController(service service.MarkService) *MarkController {
	return &MarkController{
		BaseController: controller.NewBaseController(),
		service:        service,
	}
}

// ListMarked returns the caller's marked shoot ids
// @Summary List marked shoots
// @Tags Mark
// @Security BearerAuth
// @Produce json
// @Success 200 {object} controller.SuccessResponse
// @Failure 401 {object} controller.ErrorResponse
// @Router /private/marks [get]
func (c *MarkController) ListMarked(ctx echo.Context) error {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	result, appErr := c.service.ListMarked(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Marked shoots retrieved successfully")
}

// Mark flags a shoot for the caller
// @Summary Mark shoot
// @Tags Mark
// @Security BearerAuth
// @Produce json
// @Param shootId path int true "Shoot ID"
// @Success 200 {object} controller.SuccessResponse
// @Failure 404 {object} controller.ErrorResponse
// @Router /private/marks/{shootId} [put]
func (c *MarkController) Mark(ctx echo.Context) error {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}
	shootID, err := strconv.ParseInt(ctx.Param("shootId"), 10, 64)
	if err != nil || shootID <= 0 {
		return c.BadRequest(errors.ErrInvalidInput, "invalid shoot id")
	}

	result, appErr := c.service.Mark(ctx.Request().Context(), userID, shootID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Shoot marked")
}

// Unmark removes the caller's flag from a shoot
// @Summary Unmark shoot
// @Tags Mark
// @Security BearerAuth
// @Produce json
// @Param shootId path int true "Shoot ID"
// @Success 200 {object} controller.SuccessResponse
// @Router /private/marks/{shootId} [delete]
func (c *MarkController) Unmark(ctx echo.Context) error {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}
	shootID, err := strconv.ParseInt(ctx.Param("shootId"), 10, 64)
	if err != nil || shootID <= 0 {
		return c.BadRequest(errors.ErrInvalidInput, "invalid shoot id")
	}

	result, appErr := c.service.Unmark(ctx.Request().Context(), userID, shootID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Shoot unmarked")
}
