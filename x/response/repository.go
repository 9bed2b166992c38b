//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package response

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/totegamma/longrest/core"
)

// Repository is the interface for session response repository
type Repository interface {
	Upsert(ctx context.Context, response core.SessionResponse) (core.SessionResponse, error)
	ListBySession(ctx context.Context, sessionID string) ([]core.SessionResponse, error)
	CountByValue(ctx context.Context, sessionIDs []string, viewerID string) (map[string]core.ResponseCounts, error)
	ListByUser(ctx context.Context, sessionIDs []string, userID string) ([]core.SessionResponse, error)
}

const (
	SessionLockedReason = "session_locked"
	SessionLockedHint   = "The session time has been finalized"
)

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new session response repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Upsert inserts the response or replaces the value of the existing (session, user) row.
// The session row is read FOR SHARE in the same transaction, so a concurrent finalize
// either commits first and the write is refused, or waits for the write to commit.
func (r *repository) Upsert(ctx context.Context, response core.SessionResponse) (core.SessionResponse, error) {
	ctx, span := tracer.Start(ctx, "Response.Repository.Upsert")
	defer span.End()

	if response.ID == "" {
		response.ID = uuid.NewString()
	}

	var stored core.SessionResponse
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var session core.Session
		err := tx.Clauses(clause.Locking{Strength: "SHARE"}).
			Select("id", "schedule_status").
			First(&session, "id = ?", response.SessionID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return core.NewErrorNotFound()
			}
			return err
		}
		if session.ScheduleStatus == core.ScheduleStatusFinal {
			return core.NewErrorValidation(SessionLockedReason, SessionLockedHint)
		}

		err = tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"response", "responded_at"}),
		}).Create(&response).Error
		if err != nil {
			return errors.Wrap(err, "failed to upsert response")
		}

		return tx.Where("session_id = ? AND user_id = ?", response.SessionID, response.UserID).
			First(&stored).Error
	})
	if err != nil {
		span.RecordError(err)
		return core.SessionResponse{}, err
	}

	return stored, nil
}

func (r *repository) ListBySession(ctx context.Context, sessionID string) ([]core.SessionResponse, error) {
	ctx, span := tracer.Start(ctx, "Response.Repository.ListBySession")
	defer span.End()

	var responses []core.SessionResponse
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at DESC").
		Find(&responses).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return responses, nil
}

// CountByValue groups responses by session and value.
// Only sessions of campaigns the viewer belongs to are counted.
// Sessions without responses have no entry.
func (r *repository) CountByValue(ctx context.Context, sessionIDs []string, viewerID string) (map[string]core.ResponseCounts, error) {
	ctx, span := tracer.Start(ctx, "Response.Repository.CountByValue")
	defer span.End()

	visible := r.db.
		Table("sessions").
		Select("sessions.id").
		Joins("JOIN campaign_members ON campaign_members.campaign_id = sessions.campaign_id").
		Where("campaign_members.user_id = ?", viewerID)

	var rows []struct {
		SessionID string
		Response  core.ResponseValue
		Count     int64
	}
	err := r.db.WithContext(ctx).
		Model(&core.SessionResponse{}).
		Select("session_id, response, COUNT(*) AS count").
		Where("session_id IN ?", sessionIDs).
		Where("session_id IN (?)", visible).
		Group("session_id, response").
		Scan(&rows).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	summary := make(map[string]core.ResponseCounts)
	for _, row := range rows {
		counts := summary[row.SessionID]
		switch row.Response {
		case core.ResponseYes:
			counts.Yes += row.Count
		case core.ResponseNo:
			counts.No += row.Count
		}
		summary[row.SessionID] = counts
	}

	return summary, nil
}

func (r *repository) ListByUser(ctx context.Context, sessionIDs []string, userID string) ([]core.SessionResponse, error) {
	ctx, span := tracer.Start(ctx, "Response.Repository.ListByUser")
	defer span.End()

	var responses []core.SessionResponse
	err := r.db.WithContext(ctx).
		Where("session_id IN ? AND user_id = ?", sessionIDs, userID).
		Find(&responses).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return responses, nil
}
