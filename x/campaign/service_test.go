package campaign

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/totegamma/longrest/core"
	"github.com/totegamma/longrest/x/campaign/mock"
)

const testCampaignID = "c0ffee00-1234-4abc-9def-0123456789ab"

func setupService(t *testing.T) (*mock_campaign.MockRepository, core.CampaignService) {
	ctrl := gomock.NewController(t)
	mockRepo := mock_campaign.NewMockRepository(ctrl)

	roles := map[string]core.MemberRole{
		"user-dm":     core.RoleDM,
		"user-codm":   core.RoleCoDM,
		"user-player": core.RolePlayer,
	}
	for userID, role := range roles {
		mockRepo.EXPECT().GetMembership(gomock.Any(), testCampaignID, userID).Return(core.CampaignMember{
			CampaignID: testCampaignID, UserID: userID, Role: role,
		}, nil).AnyTimes()
	}
	mockRepo.EXPECT().GetMembership(gomock.Any(), testCampaignID, gomock.Any()).Return(core.CampaignMember{}, core.NewErrorNotFound()).AnyTimes()

	return mockRepo, NewService(mockRepo)
}

func TestAddMemberRoles(t *testing.T) {
	mockRepo, service := setupService(t)

	_, err := service.AddMember(ctx, core.Principal{UserID: "user-player"}, testCampaignID, "newcomer", core.RolePlayer)
	assert.ErrorIs(t, err, core.ErrorPermissionDenied{})

	_, err = service.AddMember(ctx, core.Principal{UserID: "user-codm"}, testCampaignID, "newcomer", core.RoleDM)
	assert.ErrorIs(t, err, core.ErrorPermissionDenied{})

	_, err = service.AddMember(ctx, core.Principal{UserID: "stranger"}, testCampaignID, "newcomer", core.RolePlayer)
	assert.ErrorIs(t, err, core.ErrorPermissionDenied{})

	_, err = service.AddMember(ctx, core.Principal{UserID: "user-dm"}, testCampaignID, "newcomer", core.MemberRole("bard"))
	assert.ErrorIs(t, err, core.ErrorValidation{})

	mockRepo.EXPECT().AddMember(gomock.Any(), core.CampaignMember{
		CampaignID: testCampaignID, UserID: "newcomer", Role: core.RolePlayer,
	}).Return(core.CampaignMember{ID: "member-new", UserID: "newcomer", Role: core.RolePlayer}, nil)

	added, err := service.AddMember(ctx, core.Principal{UserID: "user-codm"}, testCampaignID, " newcomer ", core.RolePlayer)
	if assert.NoError(t, err) {
		assert.Equal(t, "member-new", added.ID)
	}
}

func TestCreateValidation(t *testing.T) {
	_, service := setupService(t)

	_, err := service.Create(ctx, core.Principal{}, "Tomb of Annihilation", "")
	assert.ErrorIs(t, err, core.ErrorUnauthenticated{})

	_, err = service.Create(ctx, core.Principal{UserID: "user-dm"}, "  ", "")
	assert.ErrorIs(t, err, core.ErrorValidation{})
}

func TestMembershipInvalidCampaign(t *testing.T) {
	_, service := setupService(t)

	_, err := service.Membership(ctx, "not-a-uuid", "user-dm")
	assert.ErrorIs(t, err, core.ErrorNotFound{})
}
