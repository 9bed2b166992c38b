//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package session

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/totegamma/longrest/core"
)

// Repository is the interface for session repository
type Repository interface {
	Create(ctx context.Context, session core.Session) (core.Session, error)
	Get(ctx context.Context, id string) (core.Session, error)
	ListByCampaign(ctx context.Context, campaignID string) ([]core.Session, error)
	SetProposedTime(ctx context.Context, id string, start time.Time, actor string, now time.Time) (core.Session, error)
	Reopen(ctx context.Context, id, actor string, now time.Time) (core.Session, error)
	Finalize(ctx context.Context, id string) (core.Session, error)
	UpdateStatus(ctx context.Context, id string, status core.SessionStatus) (core.Session, error)
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
	mc *memcache.Client
}

// NewRepository creates a new session repository
func NewRepository(db *gorm.DB, mc *memcache.Client) Repository {
	r := &repository{db: db, mc: mc}
	r.setCurrentCount()
	return r
}

func (r *repository) setCurrentCount() {
	var count int64
	err := r.db.Model(&core.Session{}).Count(&count).Error
	if err != nil {
		slog.Error(
			"failed to count sessions",
			slog.String("error", err.Error()),
		)
	}

	r.mc.Set(&memcache.Item{Key: "session_count", Value: []byte(strconv.FormatInt(count, 10))})
}

// Count returns the total number of sessions
func (r *repository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Session.Repository.Count")
	defer span.End()

	item, err := r.mc.Get("session_count")
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

func (r *repository) Create(ctx context.Context, session core.Session) (core.Session, error) {
	ctx, span := tracer.Start(ctx, "Session.Repository.Create")
	defer span.End()

	if session.ID == "" {
		session.ID = uuid.NewString()
	}

	err := r.db.WithContext(ctx).Create(&session).Error
	if err != nil {
		span.RecordError(err)
		return core.Session{}, errors.Wrap(err, "failed to create session")
	}

	r.mc.Increment("session_count", 1)

	return session, nil
}

func (r *repository) Get(ctx context.Context, id string) (core.Session, error) {
	ctx, span := tracer.Start(ctx, "Session.Repository.Get")
	defer span.End()

	var session core.Session
	err := r.db.WithContext(ctx).First(&session, "id = ?", id).Error
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Session{}, core.NewErrorNotFound()
		}
		return core.Session{}, err
	}

	return session, nil
}

// ListByCampaign returns sessions in creation order. Callers re-sort by effective start.
func (r *repository) ListByCampaign(ctx context.Context, campaignID string) ([]core.Session, error) {
	ctx, span := tracer.Start(ctx, "Session.Repository.ListByCampaign")
	defer span.End()

	var sessions []core.Session
	err := r.db.WithContext(ctx).
		Where("campaign_id = ?", campaignID).
		Order("created_at ASC").
		Find(&sessions).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return sessions, nil
}

// SetProposedTime moves the proposed start and puts the session back to proposed.
// A final session is reopened by the same statement and the reopen is stamped.
func (r *repository) SetProposedTime(ctx context.Context, id string, start time.Time, actor string, now time.Time) (core.Session, error) {
	ctx, span := tracer.Start(ctx, "Session.Repository.SetProposedTime")
	defer span.End()

	final := string(core.ScheduleStatusFinal)
	result := r.db.WithContext(ctx).
		Model(&core.Session{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"start_at":        start,
			"final_start_at":  nil,
			"schedule_status": string(core.ScheduleStatusProposed),
			"reopened_at":     gorm.Expr("CASE WHEN schedule_status = ? THEN ?::timestamptz ELSE reopened_at END", final, now),
			"reopened_by":     gorm.Expr("CASE WHEN schedule_status = ? THEN ?::text ELSE reopened_by END", final, actor),
		})
	if result.Error != nil {
		span.RecordError(result.Error)
		return core.Session{}, errors.Wrap(result.Error, "failed to set proposed time")
	}
	if result.RowsAffected == 0 {
		return core.Session{}, core.NewErrorNotFound()
	}

	return r.Get(ctx, id)
}

// Reopen turns a final session back into a proposed one, keeping its proposed start.
func (r *repository) Reopen(ctx context.Context, id, actor string, now time.Time) (core.Session, error) {
	ctx, span := tracer.Start(ctx, "Session.Repository.Reopen")
	defer span.End()

	result := r.db.WithContext(ctx).
		Model(&core.Session{}).
		Where("id = ? AND schedule_status = ?", id, string(core.ScheduleStatusFinal)).
		Updates(map[string]interface{}{
			"final_start_at":  nil,
			"schedule_status": string(core.ScheduleStatusProposed),
			"reopened_at":     now,
			"reopened_by":     actor,
		})
	if result.Error != nil {
		span.RecordError(result.Error)
		return core.Session{}, errors.Wrap(result.Error, "failed to reopen session")
	}

	return r.Get(ctx, id)
}

// Finalize copies start_at into final_start_at and marks the session final in one statement.
// Finalizing a session that is already final leaves it untouched.
func (r *repository) Finalize(ctx context.Context, id string) (core.Session, error) {
	ctx, span := tracer.Start(ctx, "Session.Repository.Finalize")
	defer span.End()

	result := r.db.WithContext(ctx).
		Model(&core.Session{}).
		Where("id = ? AND schedule_status = ?", id, string(core.ScheduleStatusProposed)).
		Updates(map[string]interface{}{
			"final_start_at":  gorm.Expr("start_at"),
			"schedule_status": string(core.ScheduleStatusFinal),
		})
	if result.Error != nil {
		span.RecordError(result.Error)
		return core.Session{}, errors.Wrap(result.Error, "failed to finalize session")
	}

	return r.Get(ctx, id)
}

func (r *repository) UpdateStatus(ctx context.Context, id string, status core.SessionStatus) (core.Session, error) {
	ctx, span := tracer.Start(ctx, "Session.Repository.UpdateStatus")
	defer span.End()

	result := r.db.WithContext(ctx).
		Model(&core.Session{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		span.RecordError(result.Error)
		return core.Session{}, errors.Wrap(result.Error, "failed to update session status")
	}
	if result.RowsAffected == 0 {
		return core.Session{}, core.NewErrorNotFound()
	}

	return r.Get(ctx, id)
}
