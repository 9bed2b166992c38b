package inbox

import (
	"context"
	"log"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/totegamma/longrest/core"
	"github.com/totegamma/longrest/internal/testutil"
)

var ctx = context.Background()
var repo Repository
var db *gorm.DB

func TestMain(m *testing.M) {
	log.Println("Test Start")

	var cleanup_db func()
	db, cleanup_db = testutil.CreateDB()
	defer cleanup_db()

	repo = NewRepository(db)

	m.Run()

	log.Println("Test End")
}

// seedPacket writes a packet and its recipient rows directly
func seedPacket(t *testing.T, campaign testutil.CampaignFixture, title string, published bool, visibleFrom time.Time, recipients ...core.CampaignMember) core.EventPacket {
	t.Helper()

	packet := core.EventPacket{
		ID:          uuid.NewString(),
		CampaignID:  campaign.Campaign.ID,
		CreatedBy:   campaign.DM.UserID,
		Type:        core.PacketTypeNote,
		Title:       title,
		Body:        "body of " + title,
		IsPublished: published,
		VisibleFrom: visibleFrom,
	}
	require.NoError(t, db.Omit("Recipients").Create(&packet).Error)

	for _, member := range recipients {
		require.NoError(t, db.Omit("Packet", "Member").Create(&core.EventPacketRecipient{
			ID:               uuid.NewString(),
			PacketID:         packet.ID,
			CampaignMemberID: member.ID,
		}).Error)
	}

	return packet
}

func TestListForMemberScoping(t *testing.T) {
	campaign := testutil.SeedCampaign(db, 2)
	alice, bob := campaign.Players[0], campaign.Players[1]
	now := time.Now()

	visible := seedPacket(t, campaign, "visible", true, now.Add(-time.Hour), alice, bob)
	seedPacket(t, campaign, "draft", false, now.Add(-time.Hour), alice)
	seedPacket(t, campaign, "scheduled", true, now.Add(time.Hour), alice)
	seedPacket(t, campaign, "bob only", true, now.Add(-time.Hour), bob)

	rows, err := repo.ListForMember(ctx, alice.ID, now)
	require.NoError(t, err)
	if assert.Len(t, rows, 1) {
		assert.Equal(t, visible.ID, rows[0].PacketID)
		assert.Equal(t, alice.ID, rows[0].CampaignMemberID)
		if assert.NotNil(t, rows[0].Packet) {
			assert.Equal(t, "visible", rows[0].Packet.Title)
		}
	}

	unread, err := repo.CountUnread(ctx, alice.ID, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)

	// once the scheduled packet is due it shows up
	later, err := repo.ListForMember(ctx, alice.ID, now.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Len(t, later, 2)

	all, err := repo.ListForCampaign(ctx, campaign.Campaign.ID)
	require.NoError(t, err)
	assert.Len(t, all, 5)
	for _, row := range all {
		assert.NotNil(t, row.Member)
	}
}

func TestMarkReadIdempotent(t *testing.T) {
	campaign := testutil.SeedCampaign(db, 1)
	alice := campaign.Players[0]
	now := time.Now()

	packet := seedPacket(t, campaign, "read me", true, now.Add(-time.Hour), alice)

	first, err := repo.MarkRead(ctx, packet.ID, alice.ID, now)
	require.NoError(t, err)
	assert.True(t, first.HasRead)
	require.NotNil(t, first.ReadAt)

	second, err := repo.MarkRead(ctx, packet.ID, alice.ID, now.Add(time.Minute))
	require.NoError(t, err)
	assert.True(t, second.HasRead)
	assert.True(t, first.ReadAt.Equal(*second.ReadAt))

	unread, err := repo.CountUnread(ctx, alice.ID, now)
	require.NoError(t, err)
	assert.Equal(t, int64(0), unread)
}

func TestMarkReadNotAddressed(t *testing.T) {
	campaign := testutil.SeedCampaign(db, 2)
	alice, bob := campaign.Players[0], campaign.Players[1]
	now := time.Now()

	packet := seedPacket(t, campaign, "for alice", true, now.Add(-time.Hour), alice)
	_, err := repo.MarkRead(ctx, packet.ID, bob.ID, now)
	assert.ErrorIs(t, err, core.ErrorNotFound{})

	hidden := seedPacket(t, campaign, "draft", false, now.Add(-time.Hour), alice)
	_, err = repo.MarkRead(ctx, hidden.ID, alice.ID, now)
	assert.ErrorIs(t, err, core.ErrorNotFound{})
}

func TestGetPacketCampaign(t *testing.T) {
	campaign := testutil.SeedCampaign(db, 1)
	packet := seedPacket(t, campaign, "where", true, time.Now(), campaign.Players[0])

	campaignID, err := repo.GetPacketCampaign(ctx, packet.ID)
	require.NoError(t, err)
	assert.Equal(t, campaign.Campaign.ID, campaignID)

	_, err = repo.GetPacketCampaign(ctx, uuid.NewString())
	assert.ErrorIs(t, err, core.ErrorNotFound{})
}
