package recap

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	"github.com/totegamma/longrest/core"
	"github.com/totegamma/longrest/x/util"
)

var tracer = otel.Tracer("recap")

// Handler is the interface for handling HTTP requests
type Handler interface {
	Get(c echo.Context) error
	Upsert(c echo.Context) error
}

type handler struct {
	service core.RecapService
}

// NewHandler creates a new handler
func NewHandler(service core.RecapService) Handler {
	return &handler{service: service}
}

type upsertRequest struct {
	Content     string `json:"content"`
	IsPublished bool   `json:"isPublished"`
}

func (h handler) Get(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Recap.Handler.Get")
	defer span.End()

	recap, err := h.service.Get(ctx, util.Principal(ctx), c.Param("id"))
	if err != nil {
		span.RecordError(err)
		return util.ErrorJSON(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": recap})
}

func (h handler) Upsert(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Recap.Handler.Upsert")
	defer span.End()

	var request upsertRequest
	if err := c.Bind(&request); err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": "invalid request"})
	}

	recap, err := h.service.Upsert(ctx, util.Principal(ctx), c.Param("id"), request.Content, request.IsPublished)
	if err != nil {
		span.RecordError(err)
		return util.ErrorJSON(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": recap})
}
