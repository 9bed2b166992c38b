//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package inbox

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/totegamma/longrest/core"
)

// Repository is the interface for inbox repository
type Repository interface {
	ListForMember(ctx context.Context, memberID string, now time.Time) ([]core.EventPacketRecipient, error)
	ListForCampaign(ctx context.Context, campaignID string) ([]core.EventPacketRecipient, error)
	GetPacketCampaign(ctx context.Context, packetID string) (string, error)
	MarkRead(ctx context.Context, packetID, memberID string, now time.Time) (*core.EventPacketRecipient, error)
	CountUnread(ctx context.Context, memberID string, now time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new inbox repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) recipients(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&core.EventPacketRecipient{}).
		Joins("JOIN event_packets ON event_packets.id = event_packet_recipients.packet_id")
}

// visibleTo narrows recipient rows to published packets addressed to memberID
func visibleTo(db *gorm.DB, memberID string, now time.Time) *gorm.DB {
	return db.Where(
		"event_packet_recipients.campaign_member_id = ? AND event_packets.is_published = ? AND event_packets.visible_from <= ?",
		memberID, true, now,
	)
}

// ListForMember returns the member's own visible recipient rows, newest first
func (r *repository) ListForMember(ctx context.Context, memberID string, now time.Time) ([]core.EventPacketRecipient, error) {
	ctx, span := tracer.Start(ctx, "Inbox.Repository.ListForMember")
	defer span.End()

	var rows []core.EventPacketRecipient
	err := visibleTo(r.recipients(ctx), memberID, now).
		Select("event_packet_recipients.*").
		Preload("Packet").
		Order("event_packet_recipients.created_at DESC").
		Find(&rows).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return rows, nil
}

// ListForCampaign returns every recipient row of the campaign, drafts included
func (r *repository) ListForCampaign(ctx context.Context, campaignID string) ([]core.EventPacketRecipient, error) {
	ctx, span := tracer.Start(ctx, "Inbox.Repository.ListForCampaign")
	defer span.End()

	var rows []core.EventPacketRecipient
	err := r.recipients(ctx).
		Select("event_packet_recipients.*").
		Where("event_packets.campaign_id = ?", campaignID).
		Preload("Packet").
		Preload("Member").
		Order("event_packet_recipients.created_at DESC").
		Find(&rows).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return rows, nil
}

func (r *repository) GetPacketCampaign(ctx context.Context, packetID string) (string, error) {
	ctx, span := tracer.Start(ctx, "Inbox.Repository.GetPacketCampaign")
	defer span.End()

	var packet core.EventPacket
	err := r.db.WithContext(ctx).Select("id", "campaign_id").First(&packet, "id = ?", packetID).Error
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", core.NewErrorNotFound()
		}
		return "", err
	}

	return packet.CampaignID, nil
}

// MarkRead flips the member's row for the packet to read.
// The update only matches unread rows, so read_at keeps its first value.
func (r *repository) MarkRead(ctx context.Context, packetID, memberID string, now time.Time) (*core.EventPacketRecipient, error) {
	ctx, span := tracer.Start(ctx, "Inbox.Repository.MarkRead")
	defer span.End()

	var row core.EventPacketRecipient
	err := visibleTo(r.recipients(ctx), memberID, now).
		Select("event_packet_recipients.*").
		Where("event_packet_recipients.packet_id = ?", packetID).
		First(&row).Error
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, core.NewErrorNotFound()
		}
		return nil, err
	}

	err = r.db.WithContext(ctx).
		Model(&core.EventPacketRecipient{}).
		Where("id = ? AND has_read = ?", row.ID, false).
		Updates(map[string]interface{}{
			"has_read": true,
			"read_at":  now,
		}).Error
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "failed to mark packet read")
	}

	var updated core.EventPacketRecipient
	err = r.db.WithContext(ctx).Preload("Packet").First(&updated, "id = ?", row.ID).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return &updated, nil
}

func (r *repository) CountUnread(ctx context.Context, memberID string, now time.Time) (int64, error) {
	ctx, span := tracer.Start(ctx, "Inbox.Repository.CountUnread")
	defer span.End()

	var count int64
	err := visibleTo(r.recipients(ctx), memberID, now).
		Where("event_packet_recipients.has_read = ?", false).
		Count(&count).Error
	if err != nil {
		span.RecordError(err)
		return 0, err
	}

	return count, nil
}
