package job

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/totegamma/longrest/core"
	"github.com/totegamma/longrest/internal/clock"
)

var tracer = otel.Tracer("job")

type service struct {
	repo  Repository
	clock clock.Clock
}

func NewService(repo Repository, clock clock.Clock) core.JobService {
	return &service{
		repo,
		clock,
	}
}

func (s *service) List(ctx context.Context, requester string) ([]core.Job, error) {
	ctx, span := tracer.Start(ctx, "Job.Service.List")
	defer span.End()

	return s.repo.List(ctx, requester)
}

func (s *service) Create(ctx context.Context, requester, typ, payload string, scheduled time.Time) (core.Job, error) {
	ctx, span := tracer.Start(ctx, "Job.Service.Create")
	defer span.End()

	switch typ {
	case core.JobTypeIdempotencyClean:
	default:
		return core.Job{}, core.NewErrorValidation("invalid job type: "+typ, "")
	}

	if payload == "" {
		payload = "{}"
	}

	job, err := s.repo.Enqueue(ctx, requester, typ, payload, scheduled)
	if err != nil {
		span.RecordError(err)
		return core.Job{}, err
	}

	return job, nil
}

func (s *service) Dequeue(ctx context.Context) (*core.Job, error) {
	ctx, span := tracer.Start(ctx, "Job.Service.Dequeue")
	defer span.End()

	return s.repo.Dequeue(ctx, s.clock.Now())
}

func (s *service) Complete(ctx context.Context, id, status, result string) (core.Job, error) {
	ctx, span := tracer.Start(ctx, "Job.Service.Complete")
	defer span.End()

	return s.repo.Complete(ctx, id, status, result)
}

func (s *service) Cancel(ctx context.Context, id string) (core.Job, error) {
	ctx, span := tracer.Start(ctx, "Job.Service.Cancel")
	defer span.End()

	return s.repo.Cancel(ctx, id)
}

func (s *service) HasPending(ctx context.Context, typ string) (bool, error) {
	ctx, span := tracer.Start(ctx, "Job.Service.HasPending")
	defer span.End()

	return s.repo.HasPending(ctx, typ)
}
