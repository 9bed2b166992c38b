package packet

import (
	"context"
	"log"
	"testing"
	"time"

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

	mc, cleanup_mc := testutil.CreateMC()
	defer cleanup_mc()

	repo = NewRepository(db, mc)

	m.Run()

	log.Println("Test End")
}

func newPacket(campaign testutil.CampaignFixture) core.EventPacket {
	return core.EventPacket{
		CampaignID:         campaign.Campaign.ID,
		CreatedBy:          campaign.DM.UserID,
		Type:               core.PacketTypeSecret,
		Title:              "The innkeeper lies",
		Body:               "He works for the cult.",
		IsPublished:        true,
		VisibleFrom:        time.Now().Add(-time.Minute),
		AddressedMemberIDs: campaign.PlayerIDs(),
	}
}

func TestCreateWithRecipients(t *testing.T) {
	campaign := testutil.SeedCampaign(db, 3)

	delivery, err := repo.CreateWithRecipients(ctx, newPacket(campaign), campaign.PlayerIDs(), nil)
	require.NoError(t, err)
	assert.NotEmpty(t, delivery.Packet.ID)
	assert.Len(t, delivery.Recipients, 3)

	var rows []core.EventPacketRecipient
	require.NoError(t, db.Where("packet_id = ?", delivery.Packet.ID).Find(&rows).Error)
	assert.Len(t, rows, 3)
	for _, row := range rows {
		assert.False(t, row.HasRead)
		assert.Nil(t, row.ReadAt)
	}

	sent, err := repo.ListByCampaign(ctx, campaign.Campaign.ID)
	require.NoError(t, err)
	if assert.Len(t, sent, 1) {
		assert.Len(t, sent[0].Recipients, 3)
		assert.ElementsMatch(t, campaign.PlayerIDs(), []string(sent[0].AddressedMemberIDs))
	}
}

func TestCreateWithRecipientsRollsBack(t *testing.T) {
	campaign := testutil.SeedCampaign(db, 1)

	// an unknown member violates the foreign key, so the packet must not survive either
	ids := append(campaign.PlayerIDs(), "00000000-0000-4000-8000-000000000000")
	_, err := repo.CreateWithRecipients(ctx, newPacket(campaign), ids, nil)
	assert.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&core.EventPacket{}).Where("campaign_id = ?", campaign.Campaign.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestIdempotencyKey(t *testing.T) {
	campaign := testutil.SeedCampaign(db, 2)
	now := time.Now()

	key := func() *core.IdempotencyKey {
		return &core.IdempotencyKey{
			UserID:    campaign.DM.UserID,
			Scope:     core.IdempotencyScopePacketSend,
			Key:       "retry-me",
			ExpiresAt: now.Add(time.Hour),
		}
	}

	first, err := repo.CreateWithRecipients(ctx, newPacket(campaign), campaign.PlayerIDs(), key())
	require.NoError(t, err)

	_, err = repo.CreateWithRecipients(ctx, newPacket(campaign), campaign.PlayerIDs(), key())
	assert.ErrorIs(t, err, core.ErrorAlreadyExists{})

	var count int64
	require.NoError(t, db.Model(&core.EventPacket{}).Where("campaign_id = ?", campaign.Campaign.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	found, err := repo.FindByIdempotencyKey(ctx, campaign.DM.UserID, core.IdempotencyScopePacketSend, "retry-me", now)
	require.NoError(t, err)
	if assert.NotNil(t, found) {
		assert.Equal(t, first.Packet.ID, found.Packet.ID)
		assert.Len(t, found.Recipients, 2)
	}

	expired, err := repo.FindByIdempotencyKey(ctx, campaign.DM.UserID, core.IdempotencyScopePacketSend, "retry-me", now.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Nil(t, expired)

	purged, err := repo.PurgeIdempotencyKeys(ctx, now.Add(2*time.Hour))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, purged, int64(1))

	gone, err := repo.FindByIdempotencyKey(ctx, campaign.DM.UserID, core.IdempotencyScopePacketSend, "retry-me", now)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestIdempotencyKeyReusedAfterExpiry(t *testing.T) {
	campaign := testutil.SeedCampaign(db, 1)
	issued := time.Now().Add(-3 * time.Hour)

	first, err := repo.CreateWithRecipients(ctx, newPacket(campaign), campaign.PlayerIDs(), &core.IdempotencyKey{
		UserID:    campaign.DM.UserID,
		Scope:     core.IdempotencyScopePacketSend,
		Key:       "stale-key",
		CreatedAt: issued,
		ExpiresAt: issued.Add(time.Hour),
	})
	require.NoError(t, err)

	// no purge in between
	now := time.Now()
	stale, err := repo.FindByIdempotencyKey(ctx, campaign.DM.UserID, core.IdempotencyScopePacketSend, "stale-key", now)
	require.NoError(t, err)
	assert.Nil(t, stale)

	second, err := repo.CreateWithRecipients(ctx, newPacket(campaign), campaign.PlayerIDs(), &core.IdempotencyKey{
		UserID:    campaign.DM.UserID,
		Scope:     core.IdempotencyScopePacketSend,
		Key:       "stale-key",
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	})
	require.NoError(t, err)
	assert.NotEqual(t, first.Packet.ID, second.Packet.ID)

	found, err := repo.FindByIdempotencyKey(ctx, campaign.DM.UserID, core.IdempotencyScopePacketSend, "stale-key", now)
	require.NoError(t, err)
	if assert.NotNil(t, found) {
		assert.Equal(t, second.Packet.ID, found.Packet.ID)
	}
}
