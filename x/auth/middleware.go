package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"

	"github.com/totegamma/longrest/core"
)

// IdentifyIdentity attaches the bearer token's user to the request.
// Requests without a valid token pass through anonymous.
func (s *service) IdentifyIdentity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, span := tracer.Start(c.Request().Context(), "Auth.IdentifyIdentity")
		defer span.End()

		authHeader := c.Request().Header.Get("authorization")

		if authHeader != "" {
			split := strings.Split(authHeader, " ")
			if len(split) != 2 {
				span.RecordError(fmt.Errorf("invalid authentication header"))
				goto skip
			}

			authType, token := split[0], split[1]
			if authType != "Bearer" {
				span.RecordError(fmt.Errorf("only Bearer is acceptable"))
				goto skip
			}

			principal, err := s.Validate(ctx, token)
			if err != nil {
				span.RecordError(err)
				goto skip
			}

			c.Set(core.RequesterIdCtxKey, principal.UserID)
			ctx = context.WithValue(ctx, core.RequesterIdCtxKey, principal.UserID)
			span.SetAttributes(attribute.String("RequesterId", principal.UserID))
		}
	skip:
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

func Restrict(level Level) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, span := tracer.Start(c.Request().Context(), "Auth.Restrict")
			defer span.End()

			requester, _ := c.Get(core.RequesterIdCtxKey).(string)

			switch level {
			case ISKNOWN:
				if requester == "" {
					return c.JSON(http.StatusUnauthorized, echo.Map{
						"status": "error",
						"error":  "authentication required",
					})
				}
			}

			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
