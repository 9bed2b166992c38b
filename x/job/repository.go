//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package job

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/totegamma/longrest/core"
)

type Repository interface {
	List(ctx context.Context, authorID string) ([]core.Job, error)
	Enqueue(ctx context.Context, author, typ, payload string, scheduled time.Time) (core.Job, error)
	Dequeue(ctx context.Context, now time.Time) (*core.Job, error)
	Complete(ctx context.Context, id, status, result string) (core.Job, error)
	Cancel(ctx context.Context, id string) (core.Job, error)
	HasPending(ctx context.Context, typ string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) List(ctx context.Context, authorID string) ([]core.Job, error) {
	ctx, span := tracer.Start(ctx, "Job.Repository.List")
	defer span.End()

	var jobs []core.Job
	err := r.db.WithContext(ctx).Where("author = ?", authorID).Order("scheduled DESC").Find(&jobs).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return jobs, nil
}

func (r *repository) Enqueue(ctx context.Context, author, typ, payload string, scheduled time.Time) (core.Job, error) {
	ctx, span := tracer.Start(ctx, "Job.Repository.Enqueue")
	defer span.End()

	job := core.Job{
		Author:    author,
		Type:      typ,
		Payload:   payload,
		Scheduled: scheduled,
		Status:    "pending",
	}

	if err := r.db.WithContext(ctx).Create(&job).Error; err != nil {
		span.RecordError(err)
		return core.Job{}, err
	}

	return job, nil
}

// Dequeue claims the oldest due pending job. Concurrent workers skip rows already locked.
func (r *repository) Dequeue(ctx context.Context, now time.Time) (*core.Job, error) {
	ctx, span := tracer.Start(ctx, "Job.Repository.Dequeue")
	defer span.End()

	var job core.Job
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
			Where("status = ? AND scheduled <= ?", "pending", now).
			Order("scheduled ASC").
			First(&job).Error
		if err != nil {
			return err
		}

		job.Status = "running"
		job.TraceID = span.SpanContext().TraceID().String()
		return tx.Save(&job).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, core.NewErrorNotFound()
		}
		span.RecordError(err)
		return nil, err
	}

	return &job, nil
}

func (r *repository) Complete(ctx context.Context, id, status, result string) (core.Job, error) {
	ctx, span := tracer.Start(ctx, "Job.Repository.Complete")
	defer span.End()

	var job core.Job
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&job).Error
	if err != nil {
		span.RecordError(err)
		return core.Job{}, err
	}

	job.Status = status
	job.Result = result

	if err := r.db.WithContext(ctx).Save(&job).Error; err != nil {
		span.RecordError(err)
		return core.Job{}, err
	}

	return job, nil
}

func (r *repository) Cancel(ctx context.Context, id string) (core.Job, error) {
	ctx, span := tracer.Start(ctx, "Job.Repository.Cancel")
	defer span.End()

	var job core.Job
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&job).Error
	if err != nil {
		span.RecordError(err)
		return core.Job{}, err
	}

	job.Status = "canceled"

	if err := r.db.WithContext(ctx).Save(&job).Error; err != nil {
		span.RecordError(err)
		return core.Job{}, err
	}

	return job, nil
}

func (r *repository) HasPending(ctx context.Context, typ string) (bool, error) {
	ctx, span := tracer.Start(ctx, "Job.Repository.HasPending")
	defer span.End()

	var count int64
	err := r.db.WithContext(ctx).Model(&core.Job{}).
		Where("type = ? AND status IN ?", typ, []string{"pending", "running"}).
		Count(&count).Error
	if err != nil {
		span.RecordError(err)
		return false, err
	}

	return count > 0, nil
}
