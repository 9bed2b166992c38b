//go:generate go run go.uber.org/mock/mockgen -source=client.go -destination=mock/client.go
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"

	"github.com/totegamma/longrest/core"
)

const (
	defaultTimeout = 10 * time.Second
)

var tracer = otel.Tracer("client")

type Client interface {
	CreateCampaign(ctx context.Context, name, description string) (core.CampaignMembership, error)
	ListCampaigns(ctx context.Context) ([]core.CampaignMembership, error)
	GetCampaign(ctx context.Context, campaignID string) (core.Campaign, error)
	ListMembers(ctx context.Context, campaignID string) ([]core.CampaignMember, error)
	AddMember(ctx context.Context, campaignID, userID string, role core.MemberRole) (core.CampaignMember, error)

	CreateSession(ctx context.Context, campaignID, title, proposedStart string, location *string) (core.Session, error)
	ListSessions(ctx context.Context, campaignID string) ([]core.Session, error)
	GetSession(ctx context.Context, sessionID string) (core.Session, error)
	SetProposedTime(ctx context.Context, sessionID, proposedStart string) (core.Session, error)
	Finalize(ctx context.Context, sessionID string) (core.Session, error)
	Reopen(ctx context.Context, sessionID string) (core.Session, error)
	UpdateStatus(ctx context.Context, sessionID string, status core.SessionStatus) (core.Session, error)

	Respond(ctx context.Context, sessionID string, value core.ResponseValue) (core.SessionResponse, error)
	ListResponses(ctx context.Context, sessionID string) ([]core.SessionResponse, error)
	Summary(ctx context.Context, sessionIDs []string) (map[string]core.ResponseCounts, error)
	MyResponses(ctx context.Context, sessionIDs []string) (map[string]core.ResponseValue, error)

	GetRecap(ctx context.Context, sessionID string) (core.SessionRecap, error)
	PutRecap(ctx context.Context, sessionID, content string, isPublished bool) (core.SessionRecap, error)

	SendPacket(ctx context.Context, request core.SendPacketRequest) (core.PacketDelivery, error)
	ListSentPackets(ctx context.Context, campaignID string) ([]core.EventPacket, error)
	Inbox(ctx context.Context, campaignID string) ([]core.EventPacketRecipient, error)
	UnreadCount(ctx context.Context, campaignID string) (int64, error)
	MarkRead(ctx context.Context, packetID string) (*core.EventPacketRecipient, error)
}

type client struct {
	endpoint string
	token    string
	http     *http.Client
}

// NewClient creates a client for the api at endpoint, e.g. "https://longrest.example.com".
// token is sent as a bearer token on every request.
func NewClient(endpoint, token string) Client {
	return &client{
		endpoint: strings.TrimRight(endpoint, "/"),
		token:    token,
		http: &http.Client{
			Timeout:   defaultTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func call[T any](ctx context.Context, c *client, method, path string, body interface{}, header http.Header) (T, error) {
	var zero T

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return zero, err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, reader)
	if err != nil {
		return zero, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	for k, v := range header {
		req.Header[k] = v
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return zero, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, err
	}

	var decoded core.ResponseBase[T]
	if err := json.Unmarshal(raw, &decoded); err != nil {
		if resp.StatusCode >= 400 {
			return zero, decodeError(resp.StatusCode, core.ResponseBase[T]{Error: strings.TrimSpace(string(raw))})
		}
		return zero, errors.Wrap(err, "failed to decode response")
	}

	if resp.StatusCode >= 400 || decoded.Status == "error" {
		return zero, decodeError(resp.StatusCode, decoded)
	}

	return decoded.Content, nil
}

// decodeError turns an error body back into the matching core error
func decodeError[T any](status int, body core.ResponseBase[T]) error {
	switch status {
	case http.StatusBadRequest:
		reason := body.Reason
		if reason == "" {
			reason = body.Error
		}
		return core.NewErrorValidation(reason, body.Hint)
	case http.StatusUnauthorized:
		return core.NewErrorUnauthenticated()
	case http.StatusForbidden:
		return core.NewErrorPermissionDenied(body.Error)
	case http.StatusNotFound:
		return core.NewErrorNotFound()
	case http.StatusConflict:
		if body.Reason == "in_flight" {
			return core.NewErrorInFlight("")
		}
		return core.NewErrorAlreadyExists(body.Reason)
	}

	if core.IsDuplicateError(errors.New(body.Error)) {
		return core.NewErrorAlreadyExists(body.Reason)
	}

	return fmt.Errorf("unexpected status %d: %s", status, body.Error)
}

func escape(id string) string {
	return url.PathEscape(id)
}

func (c *client) CreateCampaign(ctx context.Context, name, description string) (core.CampaignMembership, error) {
	ctx, span := tracer.Start(ctx, "Client.CreateCampaign")
	defer span.End()

	result, err := call[core.CampaignMembership](ctx, c, http.MethodPost, "/campaigns", map[string]string{
		"name":        name,
		"description": description,
	}, nil)
	if err != nil {
		span.RecordError(err)
	}
	return result, err
}

func (c *client) ListCampaigns(ctx context.Context) ([]core.CampaignMembership, error) {
	ctx, span := tracer.Start(ctx, "Client.ListCampaigns")
	defer span.End()

	return call[[]core.CampaignMembership](ctx, c, http.MethodGet, "/campaigns", nil, nil)
}

func (c *client) GetCampaign(ctx context.Context, campaignID string) (core.Campaign, error) {
	ctx, span := tracer.Start(ctx, "Client.GetCampaign")
	defer span.End()

	return call[core.Campaign](ctx, c, http.MethodGet, "/campaign/"+escape(campaignID), nil, nil)
}

func (c *client) ListMembers(ctx context.Context, campaignID string) ([]core.CampaignMember, error) {
	ctx, span := tracer.Start(ctx, "Client.ListMembers")
	defer span.End()

	return call[[]core.CampaignMember](ctx, c, http.MethodGet, "/campaign/"+escape(campaignID)+"/members", nil, nil)
}

func (c *client) AddMember(ctx context.Context, campaignID, userID string, role core.MemberRole) (core.CampaignMember, error) {
	ctx, span := tracer.Start(ctx, "Client.AddMember")
	defer span.End()

	member, err := call[core.CampaignMember](ctx, c, http.MethodPost, "/campaign/"+escape(campaignID)+"/members", map[string]string{
		"userId": userID,
		"role":   string(role),
	}, nil)
	if err != nil {
		span.RecordError(err)
	}
	return member, err
}

func (c *client) CreateSession(ctx context.Context, campaignID, title, proposedStart string, location *string) (core.Session, error) {
	ctx, span := tracer.Start(ctx, "Client.CreateSession")
	defer span.End()

	return call[core.Session](ctx, c, http.MethodPost, "/campaign/"+escape(campaignID)+"/sessions", map[string]interface{}{
		"title":         title,
		"proposedStart": proposedStart,
		"location":      location,
	}, nil)
}

func (c *client) ListSessions(ctx context.Context, campaignID string) ([]core.Session, error) {
	ctx, span := tracer.Start(ctx, "Client.ListSessions")
	defer span.End()

	return call[[]core.Session](ctx, c, http.MethodGet, "/campaign/"+escape(campaignID)+"/sessions", nil, nil)
}

func (c *client) GetSession(ctx context.Context, sessionID string) (core.Session, error) {
	ctx, span := tracer.Start(ctx, "Client.GetSession")
	defer span.End()

	return call[core.Session](ctx, c, http.MethodGet, "/session/"+escape(sessionID), nil, nil)
}

func (c *client) SetProposedTime(ctx context.Context, sessionID, proposedStart string) (core.Session, error) {
	ctx, span := tracer.Start(ctx, "Client.SetProposedTime")
	defer span.End()

	return call[core.Session](ctx, c, http.MethodPut, "/session/"+escape(sessionID)+"/proposed", map[string]string{
		"proposedStart": proposedStart,
	}, nil)
}

func (c *client) Finalize(ctx context.Context, sessionID string) (core.Session, error) {
	ctx, span := tracer.Start(ctx, "Client.Finalize")
	defer span.End()

	return call[core.Session](ctx, c, http.MethodPost, "/session/"+escape(sessionID)+"/finalize", nil, nil)
}

func (c *client) Reopen(ctx context.Context, sessionID string) (core.Session, error) {
	ctx, span := tracer.Start(ctx, "Client.Reopen")
	defer span.End()

	return call[core.Session](ctx, c, http.MethodPost, "/session/"+escape(sessionID)+"/reopen", nil, nil)
}

func (c *client) UpdateStatus(ctx context.Context, sessionID string, status core.SessionStatus) (core.Session, error) {
	ctx, span := tracer.Start(ctx, "Client.UpdateStatus")
	defer span.End()

	return call[core.Session](ctx, c, http.MethodPut, "/session/"+escape(sessionID)+"/status", map[string]string{
		"status": string(status),
	}, nil)
}

func (c *client) Respond(ctx context.Context, sessionID string, value core.ResponseValue) (core.SessionResponse, error) {
	ctx, span := tracer.Start(ctx, "Client.Respond")
	defer span.End()

	return call[core.SessionResponse](ctx, c, http.MethodPut, "/session/"+escape(sessionID)+"/response", map[string]string{
		"response": string(value),
	}, nil)
}

func (c *client) ListResponses(ctx context.Context, sessionID string) ([]core.SessionResponse, error) {
	ctx, span := tracer.Start(ctx, "Client.ListResponses")
	defer span.End()

	return call[[]core.SessionResponse](ctx, c, http.MethodGet, "/session/"+escape(sessionID)+"/responses", nil, nil)
}

func (c *client) Summary(ctx context.Context, sessionIDs []string) (map[string]core.ResponseCounts, error) {
	ctx, span := tracer.Start(ctx, "Client.Summary")
	defer span.End()

	query := url.Values{"sessions": {strings.Join(sessionIDs, ",")}}
	return call[map[string]core.ResponseCounts](ctx, c, http.MethodGet, "/responses/summary?"+query.Encode(), nil, nil)
}

func (c *client) MyResponses(ctx context.Context, sessionIDs []string) (map[string]core.ResponseValue, error) {
	ctx, span := tracer.Start(ctx, "Client.MyResponses")
	defer span.End()

	query := url.Values{"sessions": {strings.Join(sessionIDs, ",")}}
	return call[map[string]core.ResponseValue](ctx, c, http.MethodGet, "/responses/mine?"+query.Encode(), nil, nil)
}

func (c *client) GetRecap(ctx context.Context, sessionID string) (core.SessionRecap, error) {
	ctx, span := tracer.Start(ctx, "Client.GetRecap")
	defer span.End()

	return call[core.SessionRecap](ctx, c, http.MethodGet, "/session/"+escape(sessionID)+"/recap", nil, nil)
}

func (c *client) PutRecap(ctx context.Context, sessionID, content string, isPublished bool) (core.SessionRecap, error) {
	ctx, span := tracer.Start(ctx, "Client.PutRecap")
	defer span.End()

	return call[core.SessionRecap](ctx, c, http.MethodPut, "/session/"+escape(sessionID)+"/recap", map[string]interface{}{
		"content":     content,
		"isPublished": isPublished,
	}, nil)
}

// SendPacket posts a packet. A missing idempotency key is generated per call;
// set request.IdempotencyKey and reuse it to make resends deliver once.
func (c *client) SendPacket(ctx context.Context, request core.SendPacketRequest) (core.PacketDelivery, error) {
	ctx, span := tracer.Start(ctx, "Client.SendPacket")
	defer span.End()

	if request.IdempotencyKey == "" {
		request.IdempotencyKey = uuid.NewString()
	}

	header := http.Header{}
	header.Set("Idempotency-Key", request.IdempotencyKey)

	delivery, err := call[core.PacketDelivery](ctx, c, http.MethodPost, "/campaign/"+escape(request.CampaignID)+"/packets", request, header)
	if err != nil {
		span.RecordError(err)
	}
	return delivery, err
}

func (c *client) ListSentPackets(ctx context.Context, campaignID string) ([]core.EventPacket, error) {
	ctx, span := tracer.Start(ctx, "Client.ListSentPackets")
	defer span.End()

	return call[[]core.EventPacket](ctx, c, http.MethodGet, "/campaign/"+escape(campaignID)+"/packets", nil, nil)
}

func (c *client) Inbox(ctx context.Context, campaignID string) ([]core.EventPacketRecipient, error) {
	ctx, span := tracer.Start(ctx, "Client.Inbox")
	defer span.End()

	return call[[]core.EventPacketRecipient](ctx, c, http.MethodGet, "/campaign/"+escape(campaignID)+"/inbox", nil, nil)
}

func (c *client) UnreadCount(ctx context.Context, campaignID string) (int64, error) {
	ctx, span := tracer.Start(ctx, "Client.UnreadCount")
	defer span.End()

	return call[int64](ctx, c, http.MethodGet, "/campaign/"+escape(campaignID)+"/inbox/unread", nil, nil)
}

func (c *client) MarkRead(ctx context.Context, packetID string) (*core.EventPacketRecipient, error) {
	ctx, span := tracer.Start(ctx, "Client.MarkRead")
	defer span.End()

	return call[*core.EventPacketRecipient](ctx, c, http.MethodPost, "/packet/"+escape(packetID)+"/read", nil, nil)
}
