//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package campaign

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/totegamma/longrest/core"
)

// Repository is the interface for campaign repository
type Repository interface {
	CreateWithMembership(ctx context.Context, campaign core.Campaign, owner core.CampaignMember) (core.Campaign, core.CampaignMember, error)
	Get(ctx context.Context, id string) (core.Campaign, error)
	ListByUser(ctx context.Context, userID string) ([]core.CampaignMembership, error)
	ListMembers(ctx context.Context, campaignID string) ([]core.CampaignMember, error)
	AddMember(ctx context.Context, member core.CampaignMember) (core.CampaignMember, error)
	GetMembership(ctx context.Context, campaignID, userID string) (core.CampaignMember, error)
	GetMembersByIDs(ctx context.Context, campaignID string, ids []string) ([]core.CampaignMember, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new campaign repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CreateWithMembership inserts the campaign and its owning membership in one transaction
func (r *repository) CreateWithMembership(ctx context.Context, campaign core.Campaign, owner core.CampaignMember) (core.Campaign, core.CampaignMember, error) {
	ctx, span := tracer.Start(ctx, "Campaign.Repository.CreateWithMembership")
	defer span.End()

	if campaign.ID == "" {
		campaign.ID = uuid.NewString()
	}
	if owner.ID == "" {
		owner.ID = uuid.NewString()
	}
	owner.CampaignID = campaign.ID

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&campaign).Error; err != nil {
			return err
		}
		return tx.Create(&owner).Error
	})
	if err != nil {
		span.RecordError(err)
		return core.Campaign{}, core.CampaignMember{}, errors.Wrap(err, "failed to create campaign")
	}

	return campaign, owner, nil
}

func (r *repository) Get(ctx context.Context, id string) (core.Campaign, error) {
	ctx, span := tracer.Start(ctx, "Campaign.Repository.Get")
	defer span.End()

	var campaign core.Campaign
	err := r.db.WithContext(ctx).First(&campaign, "id = ?", id).Error
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Campaign{}, core.NewErrorNotFound()
		}
		return core.Campaign{}, err
	}

	return campaign, nil
}

// ListByUser returns every campaign the user is a member of, newest first
func (r *repository) ListByUser(ctx context.Context, userID string) ([]core.CampaignMembership, error) {
	ctx, span := tracer.Start(ctx, "Campaign.Repository.ListByUser")
	defer span.End()

	var members []core.CampaignMember
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&members).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if len(members) == 0 {
		return []core.CampaignMembership{}, nil
	}

	byCampaign := make(map[string]core.CampaignMember, len(members))
	ids := make([]string, 0, len(members))
	for _, m := range members {
		byCampaign[m.CampaignID] = m
		ids = append(ids, m.CampaignID)
	}

	var campaigns []core.Campaign
	err = r.db.WithContext(ctx).Where("id IN ?", ids).Order("created_at DESC").Find(&campaigns).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	result := make([]core.CampaignMembership, 0, len(campaigns))
	for _, c := range campaigns {
		m := byCampaign[c.ID]
		result = append(result, core.CampaignMembership{
			Campaign: c,
			MemberID: m.ID,
			Role:     m.Role,
		})
	}

	return result, nil
}

func (r *repository) ListMembers(ctx context.Context, campaignID string) ([]core.CampaignMember, error) {
	ctx, span := tracer.Start(ctx, "Campaign.Repository.ListMembers")
	defer span.End()

	var members []core.CampaignMember
	err := r.db.WithContext(ctx).Where("campaign_id = ?", campaignID).Order("created_at ASC").Find(&members).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return members, nil
}

func (r *repository) AddMember(ctx context.Context, member core.CampaignMember) (core.CampaignMember, error) {
	ctx, span := tracer.Start(ctx, "Campaign.Repository.AddMember")
	defer span.End()

	if member.ID == "" {
		member.ID = uuid.NewString()
	}

	err := r.db.WithContext(ctx).Create(&member).Error
	if err != nil {
		span.RecordError(err)
		if core.IsDuplicateError(err) {
			return core.CampaignMember{}, core.NewErrorAlreadyExists("already_member")
		}
		return core.CampaignMember{}, err
	}

	return member, nil
}

func (r *repository) GetMembership(ctx context.Context, campaignID, userID string) (core.CampaignMember, error) {
	ctx, span := tracer.Start(ctx, "Campaign.Repository.GetMembership")
	defer span.End()

	var member core.CampaignMember
	err := r.db.WithContext(ctx).
		Where("campaign_id = ? AND user_id = ?", campaignID, userID).
		First(&member).Error
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.CampaignMember{}, core.NewErrorNotFound()
		}
		return core.CampaignMember{}, err
	}

	return member, nil
}

func (r *repository) GetMembersByIDs(ctx context.Context, campaignID string, ids []string) ([]core.CampaignMember, error) {
	ctx, span := tracer.Start(ctx, "Campaign.Repository.GetMembersByIDs")
	defer span.End()

	if len(ids) == 0 {
		return []core.CampaignMember{}, nil
	}

	var members []core.CampaignMember
	err := r.db.WithContext(ctx).
		Where("campaign_id = ? AND id IN ?", campaignID, ids).
		Find(&members).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return members, nil
}
