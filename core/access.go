package core

import (
	"context"

	"github.com/pkg/errors"
)

// RequireMember resolves the principal's membership in the campaign.
// A non-member gets ErrorPermissionDenied.
func RequireMember(ctx context.Context, campaigns CampaignService, principal Principal, campaignID string) (CampaignMember, error) {
	if principal.IsAnonymous() {
		return CampaignMember{}, NewErrorUnauthenticated()
	}

	member, err := campaigns.Membership(ctx, campaignID, principal.UserID)
	if err != nil {
		if errors.Is(err, ErrorNotFound{}) {
			return CampaignMember{}, NewErrorPermissionDenied("not a member of this campaign")
		}
		return CampaignMember{}, err
	}

	return member, nil
}

// RequireGameMaster is RequireMember restricted to dm and co-dm.
func RequireGameMaster(ctx context.Context, campaigns CampaignService, principal Principal, campaignID string) (CampaignMember, error) {
	member, err := RequireMember(ctx, campaigns, principal, campaignID)
	if err != nil {
		return CampaignMember{}, err
	}
	if !member.Role.IsGameMaster() {
		return CampaignMember{}, NewErrorPermissionDenied("requires dm or co-dm")
	}
	return member, nil
}
