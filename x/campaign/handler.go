package campaign

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	"github.com/totegamma/longrest/core"
	"github.com/totegamma/longrest/x/util"
)

var tracer = otel.Tracer("campaign")

// Handler is the interface for handling HTTP requests
type Handler interface {
	Create(c echo.Context) error
	Get(c echo.Context) error
	ListMine(c echo.Context) error
	ListMembers(c echo.Context) error
	AddMember(c echo.Context) error
}

type handler struct {
	service core.CampaignService
}

// NewHandler creates a new handler
func NewHandler(service core.CampaignService) Handler {
	return &handler{service: service}
}

type createRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type addMemberRequest struct {
	UserID string          `json:"userId"`
	Role   core.MemberRole `json:"role"`
}

func (h handler) Create(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Campaign.Handler.Create")
	defer span.End()

	var request createRequest
	if err := c.Bind(&request); err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": "invalid request"})
	}

	created, err := h.service.Create(ctx, util.Principal(ctx), request.Name, request.Description)
	if err != nil {
		span.RecordError(err)
		return util.ErrorJSON(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"status": "ok", "content": created})
}

func (h handler) Get(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Campaign.Handler.Get")
	defer span.End()

	campaign, err := h.service.Get(ctx, util.Principal(ctx), c.Param("id"))
	if err != nil {
		span.RecordError(err)
		return util.ErrorJSON(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": campaign})
}

func (h handler) ListMine(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Campaign.Handler.ListMine")
	defer span.End()

	campaigns, err := h.service.ListMine(ctx, util.Principal(ctx))
	if err != nil {
		span.RecordError(err)
		return util.ErrorJSON(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": campaigns})
}

func (h handler) ListMembers(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Campaign.Handler.ListMembers")
	defer span.End()

	members, err := h.service.ListMembers(ctx, util.Principal(ctx), c.Param("id"))
	if err != nil {
		span.RecordError(err)
		return util.ErrorJSON(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": members})
}

func (h handler) AddMember(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Campaign.Handler.AddMember")
	defer span.End()

	var request addMemberRequest
	if err := c.Bind(&request); err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": "invalid request"})
	}

	member, err := h.service.AddMember(ctx, util.Principal(ctx), c.Param("id"), request.UserID, request.Role)
	if err != nil {
		span.RecordError(err)
		return util.ErrorJSON(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"status": "ok", "content": member})
}
