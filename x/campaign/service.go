package campaign

import (
	"context"
	"strings"

	"github.com/totegamma/longrest/core"
)

type service struct {
	repository Repository
}

// NewService creates a new campaign service
func NewService(repository Repository) core.CampaignService {
	return &service{repository: repository}
}

// Create makes a campaign owned by the principal as its dm
func (s *service) Create(ctx context.Context, principal core.Principal, name, description string) (core.CampaignMembership, error) {
	ctx, span := tracer.Start(ctx, "Campaign.Service.Create")
	defer span.End()

	if principal.IsAnonymous() {
		return core.CampaignMembership{}, core.NewErrorUnauthenticated()
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return core.CampaignMembership{}, core.NewErrorValidation("campaign name is required", "")
	}

	campaign, owner, err := s.repository.CreateWithMembership(
		ctx,
		core.Campaign{
			Name:        name,
			Description: strings.TrimSpace(description),
			CreatedBy:   principal.UserID,
		},
		core.CampaignMember{
			UserID: principal.UserID,
			Role:   core.RoleDM,
		},
	)
	if err != nil {
		span.RecordError(err)
		return core.CampaignMembership{}, err
	}

	return core.CampaignMembership{
		Campaign: campaign,
		MemberID: owner.ID,
		Role:     owner.Role,
	}, nil
}

func (s *service) Get(ctx context.Context, principal core.Principal, campaignID string) (core.Campaign, error) {
	ctx, span := tracer.Start(ctx, "Campaign.Service.Get")
	defer span.End()

	if _, err := core.RequireMember(ctx, s, principal, campaignID); err != nil {
		span.RecordError(err)
		return core.Campaign{}, err
	}

	return s.repository.Get(ctx, campaignID)
}

func (s *service) ListMine(ctx context.Context, principal core.Principal) ([]core.CampaignMembership, error) {
	ctx, span := tracer.Start(ctx, "Campaign.Service.ListMine")
	defer span.End()

	if principal.IsAnonymous() {
		return nil, core.NewErrorUnauthenticated()
	}

	return s.repository.ListByUser(ctx, principal.UserID)
}

func (s *service) ListMembers(ctx context.Context, principal core.Principal, campaignID string) ([]core.CampaignMember, error) {
	ctx, span := tracer.Start(ctx, "Campaign.Service.ListMembers")
	defer span.End()

	if _, err := core.RequireMember(ctx, s, principal, campaignID); err != nil {
		span.RecordError(err)
		return nil, err
	}

	return s.repository.ListMembers(ctx, campaignID)
}

// AddMember links a user to the campaign. Only a dm or co-dm may do this.
func (s *service) AddMember(ctx context.Context, principal core.Principal, campaignID, userID string, role core.MemberRole) (core.CampaignMember, error) {
	ctx, span := tracer.Start(ctx, "Campaign.Service.AddMember")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return core.CampaignMember{}, core.NewErrorValidation("user id is required", "")
	}
	if !role.Valid() {
		return core.CampaignMember{}, core.NewErrorValidation("unknown role: "+string(role), "")
	}

	requester, err := core.RequireMember(ctx, s, principal, campaignID)
	if err != nil {
		span.RecordError(err)
		return core.CampaignMember{}, err
	}
	if !requester.Role.IsGameMaster() {
		return core.CampaignMember{}, core.NewErrorPermissionDenied("only a dm can add members")
	}
	// a co-dm cannot promote someone above itself
	if role == core.RoleDM && requester.Role != core.RoleDM {
		return core.CampaignMember{}, core.NewErrorPermissionDenied("only a dm can add another dm")
	}

	return s.repository.AddMember(ctx, core.CampaignMember{
		CampaignID: campaignID,
		UserID:     userID,
		Role:       role,
	})
}

// Membership returns the membership of userID in campaignID or ErrorNotFound
func (s *service) Membership(ctx context.Context, campaignID, userID string) (core.CampaignMember, error) {
	ctx, span := tracer.Start(ctx, "Campaign.Service.Membership")
	defer span.End()

	if !core.IsValidID(campaignID) || userID == "" {
		return core.CampaignMember{}, core.NewErrorNotFound()
	}

	return s.repository.GetMembership(ctx, campaignID, userID)
}

func (s *service) MembersByIDs(ctx context.Context, campaignID string, ids []string) ([]core.CampaignMember, error) {
	ctx, span := tracer.Start(ctx, "Campaign.Service.MembersByIDs")
	defer span.End()

	valid := make([]string, 0, len(ids))
	for _, id := range ids {
		if core.IsValidID(id) {
			valid = append(valid, id)
		}
	}

	return s.repository.GetMembersByIDs(ctx, campaignID, valid)
}
