package session

import (
	"context"
	"log"
	"sync"
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

func TestFinalizeCopiesStart(t *testing.T) {
	campaign := testutil.SeedCampaign(db, 1)
	start := time.Date(2025, 12, 1, 19, 0, 0, 0, time.UTC)
	seeded := testutil.SeedSession(db, campaign, "Session 1", start)

	finalized, err := repo.Finalize(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, core.ScheduleStatusFinal, finalized.ScheduleStatus)
	if assert.NotNil(t, finalized.FinalStartAt) {
		assert.True(t, start.Equal(*finalized.FinalStartAt))
	}

	// a second finalize leaves the row untouched
	again, err := repo.Finalize(ctx, seeded.ID)
	require.NoError(t, err)
	assert.True(t, finalized.FinalStartAt.Equal(*again.FinalStartAt))
}

func TestFinalizeConcurrent(t *testing.T) {
	campaign := testutil.SeedCampaign(db, 1)
	start := time.Date(2025, 12, 2, 19, 0, 0, 0, time.UTC)
	seeded := testutil.SeedSession(db, campaign, "Session 2", start)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Finalize(ctx, seeded.ID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := repo.Get(ctx, seeded.ID)
	require.NoError(t, err)
	assert.IsType(t, core.Final{}, got.Schedule())
	assert.True(t, start.Equal(*got.FinalStartAt))
}

func TestSetProposedTimeReopensFinal(t *testing.T) {
	campaign := testutil.SeedCampaign(db, 1)
	start := time.Date(2025, 12, 3, 19, 0, 0, 0, time.UTC)
	seeded := testutil.SeedSession(db, campaign, "Session 3", start)

	next := start.Add(7 * 24 * time.Hour)
	now := time.Date(2025, 11, 20, 9, 0, 0, 0, time.UTC)

	// moving a proposed session does not stamp a reopen
	moved, err := repo.SetProposedTime(ctx, seeded.ID, next, campaign.DM.UserID, now)
	require.NoError(t, err)
	assert.True(t, next.Equal(moved.StartAt))
	assert.Nil(t, moved.ReopenedAt)

	_, err = repo.Finalize(ctx, seeded.ID)
	require.NoError(t, err)

	later := next.Add(24 * time.Hour)
	reopened, err := repo.SetProposedTime(ctx, seeded.ID, later, campaign.CoDM.UserID, now)
	require.NoError(t, err)
	assert.Equal(t, core.ScheduleStatusProposed, reopened.ScheduleStatus)
	assert.Nil(t, reopened.FinalStartAt)
	assert.True(t, later.Equal(reopened.StartAt))
	if assert.NotNil(t, reopened.ReopenedAt) && assert.NotNil(t, reopened.ReopenedBy) {
		assert.True(t, now.Equal(*reopened.ReopenedAt))
		assert.Equal(t, campaign.CoDM.UserID, *reopened.ReopenedBy)
	}
}

func TestReopen(t *testing.T) {
	campaign := testutil.SeedCampaign(db, 1)
	start := time.Date(2025, 12, 4, 19, 0, 0, 0, time.UTC)
	seeded := testutil.SeedSession(db, campaign, "Session 4", start)

	_, err := repo.Finalize(ctx, seeded.ID)
	require.NoError(t, err)

	now := time.Date(2025, 11, 21, 9, 0, 0, 0, time.UTC)
	reopened, err := repo.Reopen(ctx, seeded.ID, campaign.DM.UserID, now)
	require.NoError(t, err)
	assert.Equal(t, core.Proposed{At: reopened.StartAt}, reopened.Schedule())
	assert.True(t, start.Equal(reopened.StartAt))
	assert.Equal(t, campaign.DM.UserID, *reopened.ReopenedBy)
}

func TestUpdateStatusAndGet(t *testing.T) {
	campaign := testutil.SeedCampaign(db, 1)
	seeded := testutil.SeedSession(db, campaign, "Session 5", time.Date(2025, 12, 5, 19, 0, 0, 0, time.UTC))

	updated, err := repo.UpdateStatus(ctx, seeded.ID, core.SessionStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, core.SessionStatusCancelled, updated.Status)

	_, err = repo.Get(ctx, "00000000-0000-4000-8000-000000000000")
	assert.ErrorIs(t, err, core.ErrorNotFound{})

	_, err = repo.UpdateStatus(ctx, "00000000-0000-4000-8000-000000000000", core.SessionStatusCompleted)
	assert.ErrorIs(t, err, core.ErrorNotFound{})
}

func TestListByCampaign(t *testing.T) {
	campaign := testutil.SeedCampaign(db, 1)
	other := testutil.SeedCampaign(db, 1)

	testutil.SeedSession(db, campaign, "A", time.Date(2025, 12, 6, 19, 0, 0, 0, time.UTC))
	testutil.SeedSession(db, campaign, "B", time.Date(2025, 12, 7, 19, 0, 0, 0, time.UTC))
	testutil.SeedSession(db, other, "C", time.Date(2025, 12, 8, 19, 0, 0, 0, time.UTC))

	sessions, err := repo.ListByCampaign(ctx, campaign.Campaign.ID)
	require.NoError(t, err)
	assert.Len(t, sessions, 2)
}

func TestSessionColumns(t *testing.T) {
	m := db.Migrator()
	for _, column := range []string{"start_at", "final_start_at", "schedule_status", "reopened_at", "reopened_by"} {
		assert.True(t, m.HasColumn(&core.Session{}, column), column)
	}
	assert.False(t, m.HasColumn(&core.Session{}, "scheduled_end"))
}
