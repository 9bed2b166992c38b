package packet

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/totegamma/longrest/core"
	"github.com/totegamma/longrest/core/mock"
	"github.com/totegamma/longrest/internal/clock"
	"github.com/totegamma/longrest/x/packet/mock"
)

const (
	campaignID  = "7c6b5a49-3827-4615-9a4b-3c2d1e0f9a8b"
	otherID     = "8d7c6b5a-4938-4726-8b5c-4d3e2f1a0b9c"
	sessionID   = "2b3c4d5e-6f70-4182-93a4-b5c6d7e8f901"
	dmUser      = "user-dm"
	playerUser  = "user-player"
	memberDM    = "a0000000-0000-4000-8000-000000000001"
	memberCoDM  = "a0000000-0000-4000-8000-000000000002"
	memberP1    = "a0000000-0000-4000-8000-000000000003"
	memberP2    = "a0000000-0000-4000-8000-000000000004"
	memberStray = "a0000000-0000-4000-8000-000000000005"
)

var (
	dm     = core.Principal{UserID: dmUser}
	player = core.Principal{UserID: playerUser}
	pivot  = time.Date(2025, 11, 30, 18, 0, 0, 0, time.UTC)
)

var members = map[string]core.CampaignMember{
	memberDM:   {ID: memberDM, CampaignID: campaignID, UserID: dmUser, Role: core.RoleDM},
	memberCoDM: {ID: memberCoDM, CampaignID: campaignID, UserID: "user-codm", Role: core.RoleCoDM},
	memberP1:   {ID: memberP1, CampaignID: campaignID, UserID: playerUser, Role: core.RolePlayer},
	memberP2:   {ID: memberP2, CampaignID: campaignID, UserID: "user-player2", Role: core.RolePlayer},
}

type fixture struct {
	repo     *mock_packet.MockRepository
	campaign *mock_core.MockCampaignService
	session  *mock_core.MockSessionService
	inflight *mock_core.MockInFlightGuard
	service  core.PacketService
}

func setup(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		repo:     mock_packet.NewMockRepository(ctrl),
		campaign: mock_core.NewMockCampaignService(ctrl),
		session:  mock_core.NewMockSessionService(ctrl),
		inflight: mock_core.NewMockInFlightGuard(ctrl),
	}
	f.service = NewService(f.repo, f.campaign, f.session, f.inflight, clock.NewManual(pivot), core.Config{IdempotencyTTL: time.Hour})

	f.campaign.EXPECT().Membership(gomock.Any(), campaignID, dmUser).Return(members[memberDM], nil).AnyTimes()
	f.campaign.EXPECT().Membership(gomock.Any(), campaignID, playerUser).Return(members[memberP1], nil).AnyTimes()
	f.campaign.EXPECT().MembersByIDs(gomock.Any(), campaignID, gomock.Any()).DoAndReturn(func(_ context.Context, _ string, ids []string) ([]core.CampaignMember, error) {
		var found []core.CampaignMember
		for _, id := range ids {
			if m, ok := members[id]; ok {
				found = append(found, m)
			}
		}
		return found, nil
	}).AnyTimes()

	return f
}

func request(recipients ...string) core.SendPacketRequest {
	return core.SendPacketRequest{
		CampaignID:         campaignID,
		Type:               core.PacketTypeLoot,
		Title:              "  Dragon hoard  ",
		Body:               "2000 gp and a +1 longsword\n",
		RecipientMemberIDs: recipients,
	}
}

func TestSendValidatesLocally(t *testing.T) {
	f := setup(t)

	bad := request(memberP1)
	bad.Type = core.PacketType("treasure")
	_, err := f.service.Send(ctx, dm, bad)
	assert.ErrorIs(t, err, core.ErrorValidation{})

	bad = request(memberP1)
	bad.Title = "   "
	_, err = f.service.Send(ctx, dm, bad)
	assert.ErrorIs(t, err, core.ErrorValidation{})

	bad = request(memberP1)
	bad.Body = "\n\t"
	_, err = f.service.Send(ctx, dm, bad)
	assert.ErrorIs(t, err, core.ErrorValidation{})

	_, err = f.service.Send(ctx, dm, request())
	assert.ErrorIs(t, err, core.ErrorValidation{})

	_, err = f.service.Send(ctx, core.Principal{}, request(memberP1))
	assert.ErrorIs(t, err, core.ErrorUnauthenticated{})
}

func TestSendRequiresGameMaster(t *testing.T) {
	f := setup(t)

	_, err := f.service.Send(ctx, player, request(memberP2))
	assert.ErrorIs(t, err, core.ErrorPermissionDenied{})
}

func TestSendRejectsNonPlayers(t *testing.T) {
	f := setup(t)
	f.inflight.EXPECT().Acquire(gomock.Any(), gomock.Any()).Return(func() {}, nil).Times(2)

	_, err := f.service.Send(ctx, dm, request(memberP1, memberCoDM))
	assert.ErrorIs(t, err, core.ErrorValidation{})

	_, err = f.service.Send(ctx, dm, request(memberP1, memberStray))
	assert.ErrorIs(t, err, core.ErrorValidation{})
}

func TestSendFansOut(t *testing.T) {
	f := setup(t)

	released := false
	f.inflight.EXPECT().Acquire(gomock.Any(), "packet.send:"+campaignID+":"+dmUser).Return(func() { released = true }, nil)
	f.repo.EXPECT().FindByIdempotencyKey(gomock.Any(), dmUser, core.IdempotencyScopePacketSend, "key-1", pivot).Return(nil, nil)
	f.repo.EXPECT().CreateWithRecipients(gomock.Any(), gomock.Any(), []string{memberP1, memberP2}, gomock.Any()).DoAndReturn(
		func(_ context.Context, packet core.EventPacket, ids []string, key *core.IdempotencyKey) (core.PacketDelivery, error) {
			assert.Equal(t, "Dragon hoard", packet.Title)
			assert.Equal(t, "2000 gp and a +1 longsword\n", packet.Body)
			assert.True(t, packet.IsPublished)
			assert.Equal(t, pivot, packet.VisibleFrom)
			assert.Equal(t, campaignID, packet.CampaignID)
			assert.Equal(t, dmUser, packet.CreatedBy)
			if assert.NotNil(t, key) {
				assert.Equal(t, "key-1", key.Key)
				assert.Equal(t, pivot, key.CreatedAt)
				assert.Equal(t, pivot.Add(time.Hour), key.ExpiresAt)
			}

			packet.ID = "packet-1"
			var recipients []core.EventPacketRecipient
			for _, id := range ids {
				recipients = append(recipients, core.EventPacketRecipient{PacketID: packet.ID, CampaignMemberID: id})
			}
			return core.PacketDelivery{Packet: packet, Recipients: recipients}, nil
		})

	req := request(memberP1, memberP2, memberP1)
	req.IdempotencyKey = "key-1"

	delivery, err := f.service.Send(ctx, dm, req)
	if assert.NoError(t, err) {
		assert.Equal(t, "packet-1", delivery.Packet.ID)
		assert.Len(t, delivery.Recipients, 2)
	}
	assert.True(t, released)
}

func TestSendReplaysIdempotencyKey(t *testing.T) {
	f := setup(t)

	existing := &core.PacketDelivery{
		Packet:     core.EventPacket{ID: "packet-1", CampaignID: campaignID},
		Recipients: []core.EventPacketRecipient{{PacketID: "packet-1", CampaignMemberID: memberP1}},
	}
	f.repo.EXPECT().FindByIdempotencyKey(gomock.Any(), dmUser, core.IdempotencyScopePacketSend, "key-1", pivot).Return(existing, nil)

	req := request(memberP1)
	req.IdempotencyKey = "key-1"

	delivery, err := f.service.Send(ctx, dm, req)
	if assert.NoError(t, err) {
		assert.Equal(t, *existing, delivery)
	}
}

func TestSendReplayAfterRace(t *testing.T) {
	f := setup(t)

	existing := &core.PacketDelivery{Packet: core.EventPacket{ID: "packet-1", CampaignID: campaignID}}
	gomock.InOrder(
		f.repo.EXPECT().FindByIdempotencyKey(gomock.Any(), dmUser, core.IdempotencyScopePacketSend, "key-1", pivot).Return(nil, nil),
		f.repo.EXPECT().FindByIdempotencyKey(gomock.Any(), dmUser, core.IdempotencyScopePacketSend, "key-1", pivot).Return(existing, nil),
	)
	f.inflight.EXPECT().Acquire(gomock.Any(), gomock.Any()).Return(func() {}, nil)
	f.repo.EXPECT().CreateWithRecipients(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(core.PacketDelivery{}, core.NewErrorAlreadyExists("idempotency_key"))

	req := request(memberP1)
	req.IdempotencyKey = "key-1"

	delivery, err := f.service.Send(ctx, dm, req)
	if assert.NoError(t, err) {
		assert.Equal(t, "packet-1", delivery.Packet.ID)
	}
}

func TestSendRejectsForeignSession(t *testing.T) {
	f := setup(t)

	f.inflight.EXPECT().Acquire(gomock.Any(), gomock.Any()).Return(func() {}, nil).Times(3)
	gomock.InOrder(
		f.session.EXPECT().Get(gomock.Any(), dm, sessionID).Return(core.Session{ID: sessionID, CampaignID: otherID}, nil),
		f.session.EXPECT().Get(gomock.Any(), dm, sessionID).Return(core.Session{}, core.NewErrorNotFound()),
		// the dm is not a member of the session's campaign
		f.session.EXPECT().Get(gomock.Any(), dm, sessionID).Return(core.Session{}, core.NewErrorPermissionDenied("not a member of this campaign")),
	)

	req := request(memberP1)
	id := sessionID
	req.SessionID = &id

	for i := 0; i < 3; i++ {
		_, err := f.service.Send(ctx, dm, req)
		assert.ErrorIs(t, err, core.ErrorValidation{})
		assert.NotErrorIs(t, err, core.ErrorPermissionDenied{})
	}
}

func TestSendInFlight(t *testing.T) {
	f := setup(t)

	f.inflight.EXPECT().Acquire(gomock.Any(), gomock.Any()).Return(nil, core.NewErrorInFlight("packet.send"))

	_, err := f.service.Send(ctx, dm, request(memberP1))
	assert.ErrorIs(t, err, core.ErrorInFlight{})
}

func TestListSentRequiresGameMaster(t *testing.T) {
	f := setup(t)

	_, err := f.service.ListSent(ctx, player, campaignID)
	assert.ErrorIs(t, err, core.ErrorPermissionDenied{})

	f.repo.EXPECT().ListByCampaign(gomock.Any(), campaignID).Return([]core.EventPacket{{ID: "packet-1"}}, nil)
	packets, err := f.service.ListSent(ctx, dm, campaignID)
	if assert.NoError(t, err) {
		assert.Len(t, packets, 1)
	}
}
