package response

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	"github.com/totegamma/longrest/core"
	"github.com/totegamma/longrest/x/util"
)

var tracer = otel.Tracer("response")

// Handler is the interface for handling HTTP requests
type Handler interface {
	Upsert(c echo.Context) error
	List(c echo.Context) error
	Summary(c echo.Context) error
	Mine(c echo.Context) error
}

type handler struct {
	service core.ResponseService
}

// NewHandler creates a new handler
func NewHandler(service core.ResponseService) Handler {
	return &handler{service: service}
}

type upsertRequest struct {
	Response core.ResponseValue `json:"response"`
}

func (h handler) Upsert(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Response.Handler.Upsert")
	defer span.End()

	var request upsertRequest
	if err := c.Bind(&request); err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": "invalid request"})
	}

	saved, err := h.service.Upsert(ctx, util.Principal(ctx), c.Param("id"), request.Response)
	if err != nil {
		span.RecordError(err)
		return util.ErrorJSON(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": saved})
}

func (h handler) List(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Response.Handler.List")
	defer span.End()

	responses, err := h.service.List(ctx, util.Principal(ctx), c.Param("id"))
	if err != nil {
		span.RecordError(err)
		return util.ErrorJSON(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": responses})
}

// Summary handles GET /responses/summary?sessions=a,b
func (h handler) Summary(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Response.Handler.Summary")
	defer span.End()

	summary, err := h.service.Summary(ctx, util.Principal(ctx), splitQuery(c.QueryParam("sessions")))
	if err != nil {
		span.RecordError(err)
		return util.ErrorJSON(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": summary})
}

// Mine handles GET /responses/mine?sessions=a,b
func (h handler) Mine(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Response.Handler.Mine")
	defer span.End()

	mine, err := h.service.MyResponseMap(ctx, util.Principal(ctx), splitQuery(c.QueryParam("sessions")))
	if err != nil {
		span.RecordError(err)
		return util.ErrorJSON(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": mine})
}

func splitQuery(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}
