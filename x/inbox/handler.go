package inbox

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	"github.com/totegamma/longrest/core"
	"github.com/totegamma/longrest/x/util"
)

var tracer = otel.Tracer("inbox")

// Handler is the interface for handling HTTP requests
type Handler interface {
	Get(c echo.Context) error
	Unread(c echo.Context) error
	MarkRead(c echo.Context) error
}

type handler struct {
	service core.InboxService
}

// NewHandler creates a new handler
func NewHandler(service core.InboxService) Handler {
	return &handler{service: service}
}

// Get handles GET /campaign/:id/inbox
func (h handler) Get(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Inbox.Handler.Get")
	defer span.End()

	rows, err := h.service.GetInbox(ctx, util.Principal(ctx), c.Param("id"))
	if err != nil {
		span.RecordError(err)
		return util.ErrorJSON(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": rows})
}

// Unread handles GET /campaign/:id/inbox/unread
func (h handler) Unread(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Inbox.Handler.Unread")
	defer span.End()

	count, err := h.service.UnreadCount(ctx, util.Principal(ctx), c.Param("id"))
	if err != nil {
		span.RecordError(err)
		return util.ErrorJSON(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": count})
}

// MarkRead handles POST /packet/:id/read
func (h handler) MarkRead(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Inbox.Handler.MarkRead")
	defer span.End()

	row, err := h.service.MarkRead(ctx, util.Principal(ctx), c.Param("id"))
	if err != nil {
		span.RecordError(err)
		return util.ErrorJSON(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": row})
}
