package packet

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"

	"github.com/totegamma/longrest/core"
	"github.com/totegamma/longrest/internal/clock"
)

const defaultIdempotencyTTL = 24 * time.Hour

type service struct {
	repository Repository
	campaign   core.CampaignService
	session    core.SessionService
	inflight   core.InFlightGuard
	clock      clock.Clock
	config     core.Config
}

// NewService creates a new packet service
func NewService(
	repository Repository,
	campaign core.CampaignService,
	session core.SessionService,
	inflight core.InFlightGuard,
	clock clock.Clock,
	config core.Config,
) core.PacketService {
	return &service{
		repository,
		campaign,
		session,
		inflight,
		clock,
		config,
	}
}

// Send creates a packet and fans it out to the given player members
func (s *service) Send(ctx context.Context, principal core.Principal, request core.SendPacketRequest) (core.PacketDelivery, error) {
	ctx, span := tracer.Start(ctx, "Packet.Service.Send")
	defer span.End()

	if principal.IsAnonymous() {
		return core.PacketDelivery{}, core.NewErrorUnauthenticated()
	}

	packet, recipientIDs, err := s.validate(request)
	if err != nil {
		span.RecordError(err)
		return core.PacketDelivery{}, err
	}

	if _, err := core.RequireGameMaster(ctx, s.campaign, principal, request.CampaignID); err != nil {
		span.RecordError(err)
		return core.PacketDelivery{}, err
	}

	idempotencyKey := strings.TrimSpace(request.IdempotencyKey)
	if idempotencyKey != "" {
		existing, err := s.replay(ctx, principal, request.CampaignID, idempotencyKey)
		if err != nil || existing != nil {
			return derefDelivery(existing), err
		}
	}

	release, err := s.inflight.Acquire(ctx, fmt.Sprintf("packet.send:%s:%s", request.CampaignID, principal.UserID))
	if err != nil {
		span.RecordError(err)
		return core.PacketDelivery{}, err
	}
	defer release()

	if packet.SessionID != nil {
		// a session the dm cannot see is, by definition, not one of this campaign
		session, err := s.session.Get(ctx, principal, *packet.SessionID)
		foreign := errors.Is(err, core.ErrorNotFound{}) || errors.Is(err, core.ErrorPermissionDenied{})
		if err != nil && !foreign {
			span.RecordError(err)
			return core.PacketDelivery{}, err
		}
		if foreign || session.CampaignID != request.CampaignID {
			return core.PacketDelivery{}, core.NewErrorValidation("session does not belong to this campaign", "")
		}
	}

	if err := s.checkRecipients(ctx, request.CampaignID, recipientIDs); err != nil {
		span.RecordError(err)
		return core.PacketDelivery{}, err
	}

	now := s.clock.Now()
	packet.CampaignID = request.CampaignID
	packet.CreatedBy = principal.UserID
	if packet.VisibleFrom.IsZero() {
		packet.VisibleFrom = now
	}

	var key *core.IdempotencyKey
	if idempotencyKey != "" {
		ttl := s.config.IdempotencyTTL
		if ttl <= 0 {
			ttl = defaultIdempotencyTTL
		}
		key = &core.IdempotencyKey{
			UserID:    principal.UserID,
			Scope:     core.IdempotencyScopePacketSend,
			Key:       idempotencyKey,
			CreatedAt: now,
			ExpiresAt: now.Add(ttl),
		}
	}

	delivery, err := s.repository.CreateWithRecipients(ctx, packet, recipientIDs, key)
	if err != nil {
		span.RecordError(err)
		if key != nil && errors.Is(err, core.ErrorAlreadyExists{}) {
			existing, err := s.replay(ctx, principal, request.CampaignID, idempotencyKey)
			if err != nil || existing != nil {
				return derefDelivery(existing), err
			}
		}
		return core.PacketDelivery{}, err
	}

	span.SetAttributes(
		attribute.String("packet", delivery.Packet.ID),
		attribute.Int("recipients", len(delivery.Recipients)),
	)

	return delivery, nil
}

// ListSent returns every packet of the campaign with its recipients. Only dms may look.
func (s *service) ListSent(ctx context.Context, principal core.Principal, campaignID string) ([]core.EventPacket, error) {
	ctx, span := tracer.Start(ctx, "Packet.Service.ListSent")
	defer span.End()

	if _, err := core.RequireGameMaster(ctx, s.campaign, principal, campaignID); err != nil {
		span.RecordError(err)
		return nil, err
	}

	return s.repository.ListByCampaign(ctx, campaignID)
}

func (s *service) PurgeIdempotencyKeys(ctx context.Context, before time.Time) (int64, error) {
	ctx, span := tracer.Start(ctx, "Packet.Service.PurgeIdempotencyKeys")
	defer span.End()

	return s.repository.PurgeIdempotencyKeys(ctx, before)
}

func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Packet.Service.Count")
	defer span.End()

	return s.repository.Count(ctx)
}

// validate checks the request without touching the store
func (s *service) validate(request core.SendPacketRequest) (core.EventPacket, []string, error) {
	if !request.Type.Valid() {
		return core.EventPacket{}, nil, core.NewErrorValidation("unknown packet type: "+string(request.Type), "Use one of xp, loot, secret, note, announcement")
	}

	title := strings.TrimSpace(request.Title)
	if title == "" {
		return core.EventPacket{}, nil, core.NewErrorValidation("title is required", "")
	}
	body := request.Body
	if strings.TrimSpace(body) == "" {
		return core.EventPacket{}, nil, core.NewErrorValidation("body is required", "")
	}

	recipients := core.DedupeIDs(request.RecipientMemberIDs)
	if len(recipients) == 0 {
		return core.EventPacket{}, nil, core.NewErrorValidation("at least one recipient is required", "")
	}

	isPublished := true
	if request.IsPublished != nil {
		isPublished = *request.IsPublished
	}

	var sessionID *string
	if request.SessionID != nil && strings.TrimSpace(*request.SessionID) != "" {
		id := strings.TrimSpace(*request.SessionID)
		sessionID = &id
	}

	packet := core.EventPacket{
		SessionID:          sessionID,
		Type:               request.Type,
		Title:              title,
		Body:               body,
		IsPublished:        isPublished,
		AddressedMemberIDs: recipients,
	}
	if request.VisibleFrom != nil {
		packet.VisibleFrom = request.VisibleFrom.UTC()
	}

	return packet, recipients, nil
}

// checkRecipients requires every id to be a player of the campaign
func (s *service) checkRecipients(ctx context.Context, campaignID string, ids []string) error {
	members, err := s.campaign.MembersByIDs(ctx, campaignID, ids)
	if err != nil {
		return err
	}

	byID := make(map[string]core.CampaignMember, len(members))
	for _, m := range members {
		byID[m.ID] = m
	}

	for _, id := range ids {
		member, ok := byID[id]
		if !ok {
			return core.NewErrorValidation(fmt.Sprintf("recipient %s is not a member of this campaign", id), "")
		}
		if member.Role != core.RolePlayer {
			return core.NewErrorValidation(fmt.Sprintf("recipient %s is not a player", id), "Packets can only be sent to players")
		}
	}

	return nil
}

func (s *service) replay(ctx context.Context, principal core.Principal, campaignID, key string) (*core.PacketDelivery, error) {
	existing, err := s.repository.FindByIdempotencyKey(ctx, principal.UserID, core.IdempotencyScopePacketSend, key, s.clock.Now())
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.Packet.CampaignID != campaignID {
		return nil, core.NewErrorValidation("idempotency key was already used for another campaign", "")
	}
	return existing, nil
}

func derefDelivery(d *core.PacketDelivery) core.PacketDelivery {
	if d == nil {
		return core.PacketDelivery{}
	}
	return *d
}
