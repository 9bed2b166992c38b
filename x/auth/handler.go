// Package auth resolves bearer tokens into request principals
package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/totegamma/longrest/x/util"
)

// Handler answers identity queries
type Handler interface {
	Me(c echo.Context) error
}

type handler struct{}

// NewHandler is used for wire.go
func NewHandler() Handler {
	return &handler{}
}

// Me echoes back the principal the request was authenticated as
func (h *handler) Me(c echo.Context) error {
	principal := util.Principal(c.Request().Context())
	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": echo.Map{"userId": principal.UserID}})
}
