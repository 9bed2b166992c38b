package job

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"github.com/totegamma/longrest/core"
	"github.com/totegamma/longrest/internal/clock"
)

const systemAuthor = "system"

type reactor struct {
	packet core.PacketService
	job    core.JobService
	clock  clock.Clock
}

type Reactor interface {
	Start(ctx context.Context)
}

// NewReactor creates a new reactor
func NewReactor(
	packet core.PacketService,
	job core.JobService,
	clock clock.Clock,
) Reactor {
	return &reactor{
		packet,
		job,
		clock,
	}
}

// Start runs the dispatch and maintenance loops until ctx is done
func (r *reactor) Start(ctx context.Context) {
	slog.Info("reactor start!")

	ticker60 := time.NewTicker(60 * time.Second)
	tickerHourly := time.NewTicker(time.Hour)
	go func() {
		defer ticker60.Stop()
		defer tickerHourly.Stop()

		r.scheduleMaintenance(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker60.C:
				ctx, span := tracer.Start(ctx, "Reactor.Start.DispatchJobs")
				r.dispatchJobs(ctx)
				span.End()
			case <-tickerHourly.C:
				r.scheduleMaintenance(ctx)
			}
		}
	}()
}

// scheduleMaintenance enqueues an idempotency sweep unless one is already waiting
func (r *reactor) scheduleMaintenance(ctx context.Context) {
	ctx, span := tracer.Start(ctx, "Reactor.ScheduleMaintenance")
	defer span.End()

	pending, err := r.job.HasPending(ctx, core.JobTypeIdempotencyClean)
	if err != nil {
		span.RecordError(err)
		slog.ErrorContext(ctx, "failed to check pending jobs", slog.String("error", err.Error()))
		return
	}
	if pending {
		return
	}

	_, err = r.job.Create(ctx, systemAuthor, core.JobTypeIdempotencyClean, "{}", r.clock.Now())
	if err != nil {
		span.RecordError(err)
		slog.ErrorContext(ctx, "failed to enqueue job", slog.String("error", err.Error()))
	}
}

func (r *reactor) dispatchJobs(ctx context.Context) {
	ctx, span := tracer.Start(ctx, "Reactor.DispatchJobs")
	defer span.End()

	job, err := r.job.Dequeue(ctx)
	if err != nil {
		if !errors.Is(err, core.ErrorNotFound{}) {
			span.RecordError(err)
			slog.ErrorContext(ctx, "failed to dequeue job", slog.String("error", err.Error()))
		}
		return
	}

	switch job.Type {
	case core.JobTypeIdempotencyClean:
		r.dispatchJob(ctx, job, r.jobIdempotencyClean)
	default:
		slog.ErrorContext(ctx, "unknown job type",
			slog.String("type", job.Type),
		)
		r.job.Complete(ctx, job.ID, "failed", "unknown job type")
	}
}

func (r *reactor) dispatchJob(ctx context.Context, job *core.Job, fn func(context.Context, *core.Job) (string, error)) {
	ctx, span := tracer.Start(ctx, "Reactor.DispatchJob")
	defer span.End()

	status := "completed"
	result, err := fn(ctx, job)
	if err != nil {
		span.RecordError(err)
		slog.ErrorContext(ctx, "failed to process job", slog.String("error", err.Error()))
		status = "failed"
		result = err.Error()
	}

	_, err = r.job.Complete(ctx, job.ID, status, result)
	if err != nil {
		span.RecordError(err)
		slog.ErrorContext(ctx, "failed to complete job", slog.String("error", err.Error()))
	}
}

func (r *reactor) jobIdempotencyClean(ctx context.Context, job *core.Job) (string, error) {
	ctx, span := tracer.Start(ctx, "Reactor.JobIdempotencyClean")
	defer span.End()

	deleted, err := r.packet.PurgeIdempotencyKeys(ctx, r.clock.Now())
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("deleted %d idempotency keys", deleted), nil
}
