//go:build wireinject

package longrest

import (
	"github.com/bradfitz/gomemcache/memcache"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/totegamma/longrest/core"
	"github.com/totegamma/longrest/internal/clock"

	"github.com/totegamma/longrest/x/auth"
	"github.com/totegamma/longrest/x/campaign"
	"github.com/totegamma/longrest/x/inbox"
	"github.com/totegamma/longrest/x/inflight"
	"github.com/totegamma/longrest/x/job"
	"github.com/totegamma/longrest/x/packet"
	"github.com/totegamma/longrest/x/recap"
	"github.com/totegamma/longrest/x/response"
	"github.com/totegamma/longrest/x/session"
)

// Lv0
var campaignServiceProvider = wire.NewSet(campaign.NewService, campaign.NewRepository)
var inflightGuardProvider = wire.NewSet(inflight.NewGuard)
var jobServiceProvider = wire.NewSet(job.NewService, job.NewRepository, clock.NewDefault)

// Lv1
var sessionServiceProvider = wire.NewSet(session.NewService, session.NewRepository, SetupCampaignService, SetupInFlightGuard, clock.NewDefault)
var inboxServiceProvider = wire.NewSet(inbox.NewService, inbox.NewRepository, SetupCampaignService, clock.NewDefault)

// Lv2
var responseServiceProvider = wire.NewSet(response.NewService, response.NewRepository, SetupSessionService, clock.NewDefault)
var recapServiceProvider = wire.NewSet(recap.NewService, recap.NewRepository, SetupCampaignService)
var packetServiceProvider = wire.NewSet(packet.NewService, packet.NewRepository, SetupCampaignService, SetupSessionService, SetupInFlightGuard, clock.NewDefault)

// -----------

func SetupAuthService(config core.Config) core.AuthService {
	wire.Build(auth.NewService)
	return nil
}

func SetupInFlightGuard(rdb *redis.Client, config core.Config) core.InFlightGuard {
	wire.Build(inflightGuardProvider)
	return nil
}

func SetupJobService(db *gorm.DB) core.JobService {
	wire.Build(jobServiceProvider)
	return nil
}

func SetupCampaignService(db *gorm.DB) core.CampaignService {
	wire.Build(campaignServiceProvider)
	return nil
}

func SetupSessionService(db *gorm.DB, rdb *redis.Client, mc *memcache.Client, config core.Config) core.SessionService {
	wire.Build(sessionServiceProvider)
	return nil
}

func SetupInboxService(db *gorm.DB) core.InboxService {
	wire.Build(inboxServiceProvider)
	return nil
}

func SetupResponseService(db *gorm.DB, rdb *redis.Client, mc *memcache.Client, config core.Config) core.ResponseService {
	wire.Build(responseServiceProvider)
	return nil
}

func SetupRecapService(db *gorm.DB) core.RecapService {
	wire.Build(recapServiceProvider)
	return nil
}

func SetupPacketService(db *gorm.DB, rdb *redis.Client, mc *memcache.Client, config core.Config) core.PacketService {
	wire.Build(packetServiceProvider)
	return nil
}
