package testutil

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/totegamma/longrest/core"
)

// CampaignFixture is a seeded campaign with one dm, one co-dm and some players.
type CampaignFixture struct {
	Campaign core.Campaign
	DM       core.CampaignMember
	CoDM     core.CampaignMember
	Players  []core.CampaignMember
}

func (f CampaignFixture) PlayerIDs() []string {
	ids := make([]string, 0, len(f.Players))
	for _, p := range f.Players {
		ids = append(ids, p.ID)
	}
	return ids
}

// SeedCampaign inserts a campaign with the given number of players.
func SeedCampaign(db *gorm.DB, players int) CampaignFixture {
	suffix := uuid.NewString()[:8]

	campaign := core.Campaign{
		ID:        uuid.NewString(),
		Name:      "The Sunless Citadel " + suffix,
		CreatedBy: "dm-" + suffix,
	}
	if err := db.Create(&campaign).Error; err != nil {
		log.Fatalf("Could not seed campaign: %s", err)
	}

	member := func(userID string, role core.MemberRole) core.CampaignMember {
		m := core.CampaignMember{
			ID:         uuid.NewString(),
			CampaignID: campaign.ID,
			UserID:     userID,
			Role:       role,
		}
		if err := db.Create(&m).Error; err != nil {
			log.Fatalf("Could not seed member: %s", err)
		}
		return m
	}

	fixture := CampaignFixture{
		Campaign: campaign,
		DM:       member(campaign.CreatedBy, core.RoleDM),
		CoDM:     member("codm-"+suffix, core.RoleCoDM),
	}
	for i := 0; i < players; i++ {
		fixture.Players = append(fixture.Players, member(fmt.Sprintf("player%d-%s", i+1, suffix), core.RolePlayer))
	}

	return fixture
}

// SeedSession inserts a proposed session.
func SeedSession(db *gorm.DB, campaign CampaignFixture, title string, start time.Time) core.Session {
	session := core.Session{
		ID:             uuid.NewString(),
		CampaignID:     campaign.Campaign.ID,
		Title:          title,
		StartAt:        start,
		Status:         core.SessionStatusPlanned,
		ScheduleStatus: core.ScheduleStatusProposed,
		CreatedBy:      campaign.DM.UserID,
	}
	if err := db.Create(&session).Error; err != nil {
		log.Fatalf("Could not seed session: %s", err)
	}
	return session
}
