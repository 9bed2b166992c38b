package session

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	"github.com/totegamma/longrest/core"
	"github.com/totegamma/longrest/x/util"
)

var tracer = otel.Tracer("session")

// Handler is the interface for handling HTTP requests
type Handler interface {
	Create(c echo.Context) error
	List(c echo.Context) error
	Get(c echo.Context) error
	SetProposedTime(c echo.Context) error
	Finalize(c echo.Context) error
	Reopen(c echo.Context) error
	UpdateStatus(c echo.Context) error
}

type handler struct {
	service core.SessionService
}

// NewHandler creates a new handler
func NewHandler(service core.SessionService) Handler {
	return &handler{service: service}
}

type createRequest struct {
	Title         string  `json:"title"`
	ProposedStart string  `json:"proposedStart"`
	Location      *string `json:"location"`
}

type proposedRequest struct {
	ProposedStart string `json:"proposedStart"`
}

type statusRequest struct {
	Status core.SessionStatus `json:"status"`
}

// Create schedules a session in the campaign given by :id
func (h handler) Create(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Session.Handler.Create")
	defer span.End()

	var request createRequest
	if err := c.Bind(&request); err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": "invalid request"})
	}

	created, err := h.service.Create(ctx, util.Principal(ctx), c.Param("id"), request.Title, request.ProposedStart, request.Location)
	if err != nil {
		span.RecordError(err)
		return util.ErrorJSON(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"status": "ok", "content": created})
}

func (h handler) List(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Session.Handler.List")
	defer span.End()

	sessions, err := h.service.List(ctx, util.Principal(ctx), c.Param("id"))
	if err != nil {
		span.RecordError(err)
		return util.ErrorJSON(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": sessions})
}

func (h handler) Get(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Session.Handler.Get")
	defer span.End()

	session, err := h.service.Get(ctx, util.Principal(ctx), c.Param("id"))
	if err != nil {
		span.RecordError(err)
		return util.ErrorJSON(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": session})
}

func (h handler) SetProposedTime(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Session.Handler.SetProposedTime")
	defer span.End()

	var request proposedRequest
	if err := c.Bind(&request); err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": "invalid request"})
	}

	session, err := h.service.SetProposedTime(ctx, util.Principal(ctx), c.Param("id"), request.ProposedStart)
	if err != nil {
		span.RecordError(err)
		return util.ErrorJSON(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": session})
}

func (h handler) Finalize(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Session.Handler.Finalize")
	defer span.End()

	session, err := h.service.Finalize(ctx, util.Principal(ctx), c.Param("id"))
	if err != nil {
		span.RecordError(err)
		return util.ErrorJSON(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": session})
}

func (h handler) Reopen(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Session.Handler.Reopen")
	defer span.End()

	session, err := h.service.Reopen(ctx, util.Principal(ctx), c.Param("id"))
	if err != nil {
		span.RecordError(err)
		return util.ErrorJSON(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": session})
}

func (h handler) UpdateStatus(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Session.Handler.UpdateStatus")
	defer span.End()

	var request statusRequest
	if err := c.Bind(&request); err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": "invalid request"})
	}

	session, err := h.service.UpdateStatus(ctx, util.Principal(ctx), c.Param("id"), request.Status)
	if err != nil {
		span.RecordError(err)
		return util.ErrorJSON(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": session})
}
