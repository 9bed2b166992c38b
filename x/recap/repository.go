//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package recap

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/totegamma/longrest/core"
)

// Repository is the interface for recap repository
type Repository interface {
	GetSessionCampaign(ctx context.Context, sessionID string) (string, error)
	GetBySession(ctx context.Context, sessionID string) (core.SessionRecap, error)
	Upsert(ctx context.Context, recap core.SessionRecap) (core.SessionRecap, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new recap repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// GetSessionCampaign returns the campaign the session belongs to
func (r *repository) GetSessionCampaign(ctx context.Context, sessionID string) (string, error) {
	ctx, span := tracer.Start(ctx, "Recap.Repository.GetSessionCampaign")
	defer span.End()

	var session core.Session
	err := r.db.WithContext(ctx).Select("id", "campaign_id").First(&session, "id = ?", sessionID).Error
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", core.NewErrorNotFound()
		}
		return "", err
	}

	return session.CampaignID, nil
}

func (r *repository) GetBySession(ctx context.Context, sessionID string) (core.SessionRecap, error) {
	ctx, span := tracer.Start(ctx, "Recap.Repository.GetBySession")
	defer span.End()

	var recap core.SessionRecap
	err := r.db.WithContext(ctx).First(&recap, "session_id = ?", sessionID).Error
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.SessionRecap{}, core.NewErrorNotFound()
		}
		return core.SessionRecap{}, err
	}

	return recap, nil
}

// Upsert keeps one recap per session; a second write replaces content and author.
func (r *repository) Upsert(ctx context.Context, recap core.SessionRecap) (core.SessionRecap, error) {
	ctx, span := tracer.Start(ctx, "Recap.Repository.Upsert")
	defer span.End()

	if recap.ID == "" {
		recap.ID = uuid.NewString()
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"author_id", "content", "is_published", "updated_at"}),
	}).Create(&recap).Error
	if err != nil {
		span.RecordError(err)
		return core.SessionRecap{}, errors.Wrap(err, "failed to upsert recap")
	}

	return r.GetBySession(ctx, recap.SessionID)
}
