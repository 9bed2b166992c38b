package packet

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	"github.com/totegamma/longrest/core"
	"github.com/totegamma/longrest/x/util"
)

var tracer = otel.Tracer("packet")

const IdempotencyKeyHeader = "Idempotency-Key"

// Handler is the interface for handling HTTP requests
type Handler interface {
	Send(c echo.Context) error
	ListSent(c echo.Context) error
}

type handler struct {
	service core.PacketService
}

// NewHandler creates a new handler
func NewHandler(service core.PacketService) Handler {
	return &handler{service: service}
}

// Send handles POST /campaign/:id/packets
func (h handler) Send(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Packet.Handler.Send")
	defer span.End()

	var request core.SendPacketRequest
	if err := c.Bind(&request); err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": "invalid request"})
	}

	request.CampaignID = c.Param("id")
	if request.IdempotencyKey == "" {
		request.IdempotencyKey = c.Request().Header.Get(IdempotencyKeyHeader)
	}

	delivery, err := h.service.Send(ctx, util.Principal(ctx), request)
	if err != nil {
		span.RecordError(err)
		return util.ErrorJSON(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"status": "ok", "content": delivery})
}

// ListSent handles GET /campaign/:id/packets
func (h handler) ListSent(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Packet.Handler.ListSent")
	defer span.End()

	packets, err := h.service.ListSent(ctx, util.Principal(ctx), c.Param("id"))
	if err != nil {
		span.RecordError(err)
		return util.ErrorJSON(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": packets})
}
