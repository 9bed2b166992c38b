package test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/totegamma/longrest"
	"github.com/totegamma/longrest/client"
	"github.com/totegamma/longrest/core"
	"github.com/totegamma/longrest/internal/testutil"
	"github.com/totegamma/longrest/x/auth"
	"github.com/totegamma/longrest/x/campaign"
	"github.com/totegamma/longrest/x/inbox"
	"github.com/totegamma/longrest/x/packet"
	"github.com/totegamma/longrest/x/response"
	"github.com/totegamma/longrest/x/session"
)

var (
	db  *gorm.DB
	rdb *redis.Client
	mc  *memcache.Client
)

const secret = "integration-secret"

var config = core.Config{
	JWTSecret:      secret,
	InFlightTTL:    5 * time.Second,
	IdempotencyTTL: time.Hour,
}

func TestMain(m *testing.M) {

	var cleanup_db func()
	db, cleanup_db = testutil.CreateDB()
	defer cleanup_db()

	var cleanup_rdb func()
	rdb, cleanup_rdb = testutil.CreateRDB()
	defer cleanup_rdb()

	var cleanup_mc func()
	mc, cleanup_mc = testutil.CreateMC()
	defer cleanup_mc()

	m.Run()
}

func newServer(t *testing.T) *httptest.Server {
	authService := longrest.SetupAuthService(config)
	campaignHandler := campaign.NewHandler(longrest.SetupCampaignService(db))
	sessionHandler := session.NewHandler(longrest.SetupSessionService(db, rdb, mc, config))
	responseHandler := response.NewHandler(longrest.SetupResponseService(db, rdb, mc, config))
	packetHandler := packet.NewHandler(longrest.SetupPacketService(db, rdb, mc, config))
	inboxHandler := inbox.NewHandler(longrest.SetupInboxService(db))

	e := echo.New()
	g := e.Group("", authService.IdentifyIdentity, auth.Restrict(auth.ISKNOWN))
	g.POST("/campaigns", campaignHandler.Create)
	g.POST("/campaign/:id/members", campaignHandler.AddMember)
	g.POST("/campaign/:id/sessions", sessionHandler.Create)
	g.GET("/session/:id", sessionHandler.Get)
	g.POST("/session/:id/finalize", sessionHandler.Finalize)
	g.PUT("/session/:id/response", responseHandler.Upsert)
	g.GET("/responses/summary", responseHandler.Summary)
	g.POST("/campaign/:id/packets", packetHandler.Send)
	g.GET("/campaign/:id/inbox", inboxHandler.Get)
	g.GET("/campaign/:id/inbox/unread", inboxHandler.Unread)
	g.POST("/packet/:id/read", inboxHandler.MarkRead)

	server := httptest.NewServer(e)
	t.Cleanup(server.Close)
	return server
}

func clientFor(t *testing.T, server *httptest.Server, userID string) client.Client {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return client.NewClient(server.URL, signed)
}

func TestScheduleRespondFinalize(t *testing.T) {
	ctx := context.Background()
	server := newServer(t)

	dm := clientFor(t, server, "e2e-dm-1")
	alice := clientFor(t, server, "e2e-alice-1")
	bob := clientFor(t, server, "e2e-bob-1")

	created, err := dm.CreateCampaign(ctx, "Curse of Strahd", "")
	require.NoError(t, err)
	assert.Equal(t, core.RoleDM, created.Role)
	campaignID := created.Campaign.ID

	_, err = dm.AddMember(ctx, campaignID, "e2e-alice-1", core.RolePlayer)
	require.NoError(t, err)
	_, err = dm.AddMember(ctx, campaignID, "e2e-bob-1", core.RolePlayer)
	require.NoError(t, err)

	proposed := time.Date(2025, 12, 1, 19, 0, 0, 0, time.UTC)
	s, err := dm.CreateSession(ctx, campaignID, "Session 1", "2025-12-01T19:00:00Z", nil)
	require.NoError(t, err)
	assert.Equal(t, core.ScheduleStatusProposed, s.ScheduleStatus)
	assert.Nil(t, s.FinalStartAt)

	_, err = alice.Respond(ctx, s.ID, core.ResponseYes)
	require.NoError(t, err)
	_, err = bob.Respond(ctx, s.ID, core.ResponseNo)
	require.NoError(t, err)

	summary, err := dm.Summary(ctx, []string{s.ID})
	require.NoError(t, err)
	assert.Equal(t, core.ResponseCounts{Yes: 1, No: 1}, summary[s.ID])

	finalized, err := dm.Finalize(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, core.ScheduleStatusFinal, finalized.ScheduleStatus)
	assert.True(t, finalized.EffectiveStartAt().Equal(proposed))

	fetched, err := alice.GetSession(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, core.ScheduleStatusFinal, fetched.ScheduleStatus)
	require.NotNil(t, fetched.FinalStartAt)
	assert.True(t, fetched.FinalStartAt.Equal(proposed))

	// responding to a finalized session is refused
	_, err = bob.Respond(ctx, s.ID, core.ResponseYes)
	assert.ErrorIs(t, err, core.ErrorValidation{})

	// players cannot finalize
	_, err = alice.Finalize(ctx, s.ID)
	assert.ErrorIs(t, err, core.ErrorPermissionDenied{})
}

func TestSecretPacketReadTracking(t *testing.T) {
	ctx := context.Background()
	server := newServer(t)

	dm := clientFor(t, server, "e2e-dm-2")
	m1 := clientFor(t, server, "e2e-m1-2")
	m2 := clientFor(t, server, "e2e-m2-2")

	created, err := dm.CreateCampaign(ctx, "Tomb of Annihilation", "")
	require.NoError(t, err)
	campaignID := created.Campaign.ID

	member1, err := dm.AddMember(ctx, campaignID, "e2e-m1-2", core.RolePlayer)
	require.NoError(t, err)
	_, err = dm.AddMember(ctx, campaignID, "e2e-m2-2", core.RolePlayer)
	require.NoError(t, err)

	delivery, err := dm.SendPacket(ctx, core.SendPacketRequest{
		CampaignID:         campaignID,
		Type:               core.PacketTypeSecret,
		Title:              "A whisper",
		Body:               "The map is a forgery.",
		RecipientMemberIDs: []string{member1.ID},
	})
	require.NoError(t, err)
	require.Len(t, delivery.Recipients, 1)
	packetID := delivery.Packet.ID

	inboxRows, err := m1.Inbox(ctx, campaignID)
	require.NoError(t, err)
	require.Len(t, inboxRows, 1)
	assert.Equal(t, packetID, inboxRows[0].PacketID)
	assert.False(t, inboxRows[0].HasRead)
	assert.Nil(t, inboxRows[0].ReadAt)

	unread, err := m1.UnreadCount(ctx, campaignID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)

	// m2 was not addressed
	other, err := m2.Inbox(ctx, campaignID)
	require.NoError(t, err)
	assert.Len(t, other, 0)

	read, err := m1.MarkRead(ctx, packetID)
	require.NoError(t, err)
	require.NotNil(t, read)
	assert.True(t, read.HasRead)
	require.NotNil(t, read.ReadAt)

	inboxRows, err = m1.Inbox(ctx, campaignID)
	require.NoError(t, err)
	require.Len(t, inboxRows, 1)
	assert.True(t, inboxRows[0].HasRead)
	require.NotNil(t, inboxRows[0].ReadAt)
	firstRead := *inboxRows[0].ReadAt

	unread, err = m1.UnreadCount(ctx, campaignID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), unread)

	// the dm observes without mutating
	dmView, err := dm.Inbox(ctx, campaignID)
	require.NoError(t, err)
	require.Len(t, dmView, 1)
	assert.Equal(t, member1.ID, dmView[0].CampaignMemberID)
	assert.True(t, dmView[0].HasRead)

	dmRead, err := dm.MarkRead(ctx, packetID)
	require.NoError(t, err)
	assert.Nil(t, dmRead)

	// marking again keeps the first read_at
	again, err := m1.MarkRead(ctx, packetID)
	require.NoError(t, err)
	require.NotNil(t, again.ReadAt)
	assert.True(t, again.ReadAt.Equal(firstRead))

	_, err = m2.MarkRead(ctx, packetID)
	assert.ErrorIs(t, err, core.ErrorNotFound{})
}
