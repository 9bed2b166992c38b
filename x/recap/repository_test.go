package recap

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

	repo = NewRepository(db)

	m.Run()

	log.Println("Test End")
}

func TestRecapUpsert(t *testing.T) {
	campaign := testutil.SeedCampaign(db, 1)
	session := testutil.SeedSession(db, campaign, "Session 1", time.Date(2025, 12, 1, 19, 0, 0, 0, time.UTC))

	_, err := repo.GetBySession(ctx, session.ID)
	assert.ErrorIs(t, err, core.ErrorNotFound{})

	first, err := repo.Upsert(ctx, core.SessionRecap{
		SessionID: session.ID,
		AuthorID:  campaign.DM.UserID,
		Content:   "draft",
	})
	require.NoError(t, err)
	assert.False(t, first.IsPublished)

	second, err := repo.Upsert(ctx, core.SessionRecap{
		SessionID:   session.ID,
		AuthorID:    campaign.CoDM.UserID,
		Content:     "final words",
		IsPublished: true,
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "final words", second.Content)
	assert.Equal(t, campaign.CoDM.UserID, second.AuthorID)
	assert.True(t, second.IsPublished)
}

func TestGetSessionCampaign(t *testing.T) {
	campaign := testutil.SeedCampaign(db, 1)
	session := testutil.SeedSession(db, campaign, "Session 2", time.Date(2025, 12, 8, 19, 0, 0, 0, time.UTC))

	campaignID, err := repo.GetSessionCampaign(ctx, session.ID)
	if assert.NoError(t, err) {
		assert.Equal(t, campaign.Campaign.ID, campaignID)
	}

	_, err = repo.GetSessionCampaign(ctx, "3d4e5f6a-7b8c-4d9e-8f0a-2b3c4d5e6f7a")
	assert.ErrorIs(t, err, core.ErrorNotFound{})
}
