package middleware

import (
	"net/http"

	"shoot-calendar-api/core/constants"
	"shoot-calendar-api/core/controller"
	"shoot-calendar-api/core/errors"
	"shoot-calendar-api/core/logger"
	"shoot-calendar-api/core/utils"

	"github.com/labstack/echo/v4"
)

type Middleware struct {
	secret string
}

func NewMiddleware(secret string) *Middleware {
	return &Middleware{secret: secret}
}

// AuthMiddleware rejects requests without a valid bearer token.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := utils.GetTokenFromHeader(c)
			if err != nil {
				return reject(c, err)
			}

			claims, err := utils.ValidateAndParseToken(token, m.secret)
			if err != nil {
				logger.Warn("Middleware:AuthMiddleware:InvalidToken", "path", c.Path(), "error", err)
				return reject(c, err)
			}

			c.Set(constants.ContextTokenData, claims)
			return next(c)
		}
	}
}

// OptionalAuth stores the claims when a valid bearer token is present and
// lets anonymous requests through untouched.
func (m *Middleware) OptionalAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := utils.GetTokenFromHeader(c)
			if err != nil {
				return next(c)
			}
			claims, err := utils.ValidateAndParseToken(token, m.secret)
			if err != nil {
				return reject(c, err)
			}
			c.Set(constants.ContextTokenData, claims)
			return next(c)
		}
	}
}

func reject(c echo.Context, err error) error {
	code := errors.ErrUnauthorized
	var appErr *errors.AppError
	if errors.As(err, &appErr) {
		code = appErr.Code
	}
	return c.JSON(http.StatusUnauthorized, controller.NewErrorBody(code, "unauthorized"))
}
