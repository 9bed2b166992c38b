package inbox

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/totegamma/longrest/core"
	"github.com/totegamma/longrest/internal/clock"
)

type service struct {
	repository Repository
	campaign   core.CampaignService
	clock      clock.Clock
}

// NewService creates a new inbox service
func NewService(repository Repository, campaign core.CampaignService, clock clock.Clock) core.InboxService {
	return &service{
		repository,
		campaign,
		clock,
	}
}

// GetInbox returns the caller's delivered packets.
// Game masters see every recipient row of the campaign.
func (s *service) GetInbox(ctx context.Context, principal core.Principal, campaignID string) ([]core.EventPacketRecipient, error) {
	ctx, span := tracer.Start(ctx, "Inbox.Service.GetInbox")
	defer span.End()

	member, err := core.RequireMember(ctx, s.campaign, principal, campaignID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if member.Role.IsGameMaster() {
		return s.repository.ListForCampaign(ctx, campaignID)
	}

	return s.repository.ListForMember(ctx, member.ID, s.clock.Now())
}

// MarkRead marks the caller's copy of the packet as read.
// Game masters have no copy, so the call is a no-op for them.
func (s *service) MarkRead(ctx context.Context, principal core.Principal, packetID string) (*core.EventPacketRecipient, error) {
	ctx, span := tracer.Start(ctx, "Inbox.Service.MarkRead")
	defer span.End()

	if principal.IsAnonymous() {
		return nil, core.NewErrorUnauthenticated()
	}

	if !core.IsValidID(packetID) {
		return nil, core.NewErrorNotFound()
	}

	campaignID, err := s.repository.GetPacketCampaign(ctx, packetID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	member, err := s.campaign.Membership(ctx, campaignID, principal.UserID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if member.Role.IsGameMaster() {
		return nil, nil
	}

	span.SetAttributes(attribute.String("member", member.ID))

	return s.repository.MarkRead(ctx, packetID, member.ID, s.clock.Now())
}

func (s *service) UnreadCount(ctx context.Context, principal core.Principal, campaignID string) (int64, error) {
	ctx, span := tracer.Start(ctx, "Inbox.Service.UnreadCount")
	defer span.End()

	member, err := core.RequireMember(ctx, s.campaign, principal, campaignID)
	if err != nil {
		span.RecordError(err)
		return 0, err
	}

	if member.Role.IsGameMaster() {
		return 0, nil
	}

	return s.repository.CountUnread(ctx, member.ID, s.clock.Now())
}
