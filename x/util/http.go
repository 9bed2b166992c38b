package util

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/totegamma/longrest/core"
)

// Principal returns the identity IdentifyIdentity attached to ctx.
// It is anonymous when the request carried no valid token.
func Principal(ctx context.Context) core.Principal {
	id, _ := ctx.Value(core.RequesterIdCtxKey).(string)
	return core.Principal{UserID: id}
}

// ErrorStatus maps a service error onto an HTTP status and response body.
func ErrorStatus(err error) (int, echo.Map) {
	body := echo.Map{"status": "error", "error": err.Error()}

	var validation core.ErrorValidation
	var conflict core.ErrorAlreadyExists
	var inflight core.ErrorInFlight

	switch {
	case errors.As(err, &validation):
		body["reason"] = validation.Reason
		if validation.Hint != "" {
			body["hint"] = validation.Hint
		}
		return http.StatusBadRequest, body
	case errors.Is(err, core.ErrorUnauthenticated{}):
		return http.StatusUnauthorized, body
	case errors.Is(err, core.ErrorPermissionDenied{}):
		return http.StatusForbidden, body
	case errors.Is(err, core.ErrorNotFound{}):
		return http.StatusNotFound, body
	case errors.As(err, &conflict):
		body["reason"] = conflict.Reason
		return http.StatusConflict, body
	case errors.As(err, &inflight):
		body["reason"] = "in_flight"
		return http.StatusConflict, body
	}

	return http.StatusInternalServerError, body
}

// ErrorJSON writes err as a JSON error response.
func ErrorJSON(c echo.Context, err error) error {
	status, body := ErrorStatus(err)
	return c.JSON(status, body)
}
