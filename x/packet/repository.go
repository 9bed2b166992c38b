//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package packet

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/totegamma/longrest/core"
)

// Repository is the interface for packet repository
type Repository interface {
	CreateWithRecipients(ctx context.Context, packet core.EventPacket, memberIDs []string, key *core.IdempotencyKey) (core.PacketDelivery, error)
	FindByIdempotencyKey(ctx context.Context, userID, scope, key string, now time.Time) (*core.PacketDelivery, error)
	ListByCampaign(ctx context.Context, campaignID string) ([]core.EventPacket, error)
	PurgeIdempotencyKeys(ctx context.Context, before time.Time) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
	mc *memcache.Client
}

// NewRepository creates a new packet repository
func NewRepository(db *gorm.DB, mc *memcache.Client) Repository {
	r := &repository{db: db, mc: mc}
	r.setCurrentCount()
	return r
}

func (r *repository) setCurrentCount() {
	var count int64
	err := r.db.Model(&core.EventPacket{}).Count(&count).Error
	if err != nil {
		slog.Error(
			"failed to count packets",
			slog.String("error", err.Error()),
		)
	}

	r.mc.Set(&memcache.Item{Key: "packet_count", Value: []byte(strconv.FormatInt(count, 10))})
}

// Count returns the total number of packets
func (r *repository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Packet.Repository.Count")
	defer span.End()

	item, err := r.mc.Get("packet_count")
	if err != nil {
		span.RecordError(err)

		if errors.Is(err, memcache.ErrCacheMiss) {
			r.setCurrentCount()
			return 0, errors.Wrap(err, "trying to fix...")
		}

		return 0, err
	}

	count, err := strconv.ParseInt(string(item.Value), 10, 64)
	if err != nil {
		span.RecordError(err)
		return 0, err
	}
	return count, nil
}

// CreateWithRecipients writes the packet, one recipient row per member and the
// optional idempotency key in a single transaction.
func (r *repository) CreateWithRecipients(ctx context.Context, packet core.EventPacket, memberIDs []string, key *core.IdempotencyKey) (core.PacketDelivery, error) {
	ctx, span := tracer.Start(ctx, "Packet.Repository.CreateWithRecipients")
	defer span.End()

	if packet.ID == "" {
		packet.ID = uuid.NewString()
	}
	packet.Recipients = nil

	recipients := make([]core.EventPacketRecipient, 0, len(memberIDs))
	for _, memberID := range memberIDs {
		recipients = append(recipients, core.EventPacketRecipient{
			ID:               uuid.NewString(),
			PacketID:         packet.ID,
			CampaignMemberID: memberID,
			HasRead:          false,
		})
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&packet).Error; err != nil {
			return errors.Wrap(err, "failed to create packet")
		}
		if err := tx.Omit(clause.Associations).Create(&recipients).Error; err != nil {
			return errors.Wrap(err, "failed to create packet recipients")
		}
		if key != nil {
			if key.ID == "" {
				key.ID = uuid.NewString()
			}
			key.ResourceID = packet.ID
			issuedAt := key.CreatedAt
			if issuedAt.IsZero() {
				issuedAt = time.Now()
			}
			// an expired key is free for reuse even before the purge job has run
			err := tx.Where("user_id = ? AND scope = ? AND key = ? AND expires_at <= ?", key.UserID, key.Scope, key.Key, issuedAt).
				Delete(&core.IdempotencyKey{}).Error
			if err != nil {
				return errors.Wrap(err, "failed to release expired idempotency key")
			}
			if err := tx.Create(key).Error; err != nil {
				if core.IsDuplicateError(err) {
					return core.NewErrorAlreadyExists("idempotency_key")
				}
				return errors.Wrap(err, "failed to record idempotency key")
			}
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return core.PacketDelivery{}, err
	}

	r.mc.Increment("packet_count", 1)

	return core.PacketDelivery{
		Packet:     packet,
		Recipients: recipients,
	}, nil
}

// FindByIdempotencyKey returns the delivery an unexpired key points at, or nil
func (r *repository) FindByIdempotencyKey(ctx context.Context, userID, scope, key string, now time.Time) (*core.PacketDelivery, error) {
	ctx, span := tracer.Start(ctx, "Packet.Repository.FindByIdempotencyKey")
	defer span.End()

	var record core.IdempotencyKey
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND scope = ? AND key = ? AND expires_at > ?", userID, scope, key, now).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		span.RecordError(err)
		return nil, err
	}

	var packet core.EventPacket
	err = r.db.WithContext(ctx).
		Preload("Recipients", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&packet, "id = ?", record.ResourceID).Error
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	recipients := packet.Recipients
	packet.Recipients = nil

	return &core.PacketDelivery{
		Packet:     packet,
		Recipients: recipients,
	}, nil
}

// ListByCampaign returns every packet of the campaign with its recipient rows, newest first
func (r *repository) ListByCampaign(ctx context.Context, campaignID string) ([]core.EventPacket, error) {
	ctx, span := tracer.Start(ctx, "Packet.Repository.ListByCampaign")
	defer span.End()

	var packets []core.EventPacket
	err := r.db.WithContext(ctx).
		Preload("Recipients", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("campaign_id = ?", campaignID).
		Order("created_at DESC").
		Find(&packets).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return packets, nil
}

func (r *repository) PurgeIdempotencyKeys(ctx context.Context, before time.Time) (int64, error) {
	ctx, span := tracer.Start(ctx, "Packet.Repository.PurgeIdempotencyKeys")
	defer span.End()

	result := r.db.WithContext(ctx).Where("expires_at < ?", before).Delete(&core.IdempotencyKey{})
	if result.Error != nil {
		span.RecordError(result.Error)
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
