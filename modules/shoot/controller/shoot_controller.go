package controller

import (
	"strconv"
	"time"

	"shoot-calendar-api/core/controller"
	"shoot-calendar-api/core/errors"
	"shoot-calendar-api/core/params"
	"shoot-calendar-api/core/utils"
	"shoot-calendar-api/modules/shoot/filter"
	"shoot-calendar-api/modules/shoot/service"

	"github.com/labstack/echo/v4"
)

type ShootController struct {
	controller.BaseController
	service service.ShootService
}

func NewShootController(service service.ShootService) *ShootController {
	return &ShootController{
		BaseController: controller.NewBaseController(),
		service:        service,
	}
}

// ListShoots returns the shoots matching the filter facets
// @Summary List shoots
// @Description Filters the shoot collection. Facets combine with AND, repeated values of one facet with OR.
// @Tags Shoot
// @Produce json
// @Param search query string false "Text matched against name, club, city and state"
// @Param affiliation query []string false "NSCA, NSSA or ATA" collectionFormat(multi)
// @Param month query []int false "Start month 1-12" collectionFormat(multi)
// @Param state query []string false "State code" collectionFormat(multi)
// @Param future query bool false "Only shoots starting after now"
// @Param notable query bool false "Only shoots with a category"
// @Param marked query bool false "Only shoots the caller marked (requires auth)"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} controller.SuccessResponse
// @Failure 400 {object} controller.ErrorResponse
// @Router /shoots [get]
func (c *ShootController) ListShoots(ctx echo.Context) error {
	spec, appErr := SpecFromQuery(ctx)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	userID, _ := utils.GetUserIDFromContext(ctx)
	queryParams := params.NewQueryParams(ctx)

	result, appErr := c.service.ListShoots(ctx.Request().Context(), userID, spec, *queryParams)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Shoots retrieved successfully")
}

// GetShoot returns one shoot
// @Summary Get shoot
// @Tags Shoot
// @Produce json
// @Param id path int true "Shoot ID"
// @Success 200 {object} controller.SuccessResponse
// @Failure 404 {object} controller.ErrorResponse
// @Router /shoots/{id} [get]
func (c *ShootController) GetShoot(ctx echo.Context) error {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.ErrorResponse(ctx, errors.NewAppError(errors.ErrInvalidInput, "invalid shoot id", nil))
	}

	userID, _ := utils.GetUserIDFromContext(ctx)
	result, appErr := c.service.GetShoot(ctx.Request().Context(), userID, id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Shoot retrieved successfully")
}

// GetFacets returns the values available to each filter facet
// @Summary Filter facets
// @Tags Shoot
// @Produce json
// @Success 200 {object} controller.SuccessResponse
// @Router /shoots/facets [get]
func (c *ShootController) GetFacets(ctx echo.Context) error {
	result, appErr := c.service.GetFacets(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Facets retrieved successfully")
}

// SpecFromQuery builds a filter spec from query parameters. Unknown
// affiliations and non numeric months are rejected; numeric months outside
// 1-12 are kept and simply match nothing.
func SpecFromQuery(ctx echo.Context) (filter.Spec, *errors.AppError) {
	spec := filter.Spec{
		Search:      ctx.QueryParam("search"),
		States:      params.List(ctx, "state"),
		FutureOnly:  params.Bool(ctx, "future"),
		NotableOnly: params.Bool(ctx, "notable"),
		MarkedOnly:  params.Bool(ctx, "marked"),
	}

	for _, raw := range params.List(ctx, "affiliation") {
		a, ok := filter.ParseAffiliation(raw)
		if !ok {
			return filter.Spec{}, errors.NewAppError(errors.ErrInvalidInput, "unknown affiliation: "+raw, nil)
		}
		spec.Affiliations = append(spec.Affiliations, a)
	}

	for _, raw := range params.List(ctx, "month") {
		m, err := strconv.Atoi(raw)
		if err != nil {
			return filter.Spec{}, errors.NewAppError(errors.ErrInvalidInput, "invalid month: "+raw, nil)
		}
		spec.Months = append(spec.Months, time.Month(m))
	}

	return spec, nil
}
