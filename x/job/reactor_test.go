package job

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/totegamma/longrest/core"
	"github.com/totegamma/longrest/core/mock"
	"github.com/totegamma/longrest/internal/clock"
)

var pivot = time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)

func setupReactor(t *testing.T) (*mock_core.MockPacketService, *mock_core.MockJobService, *reactor) {
	ctrl := gomock.NewController(t)
	mockPacket := mock_core.NewMockPacketService(ctrl)
	mockJob := mock_core.NewMockJobService(ctrl)

	r := NewReactor(mockPacket, mockJob, clock.NewManual(pivot)).(*reactor)
	return mockPacket, mockJob, r
}

func TestDispatchIdempotencyClean(t *testing.T) {
	mockPacket, mockJob, r := setupReactor(t)

	mockJob.EXPECT().Dequeue(gomock.Any()).Return(&core.Job{ID: "job-1", Type: core.JobTypeIdempotencyClean}, nil)
	mockPacket.EXPECT().PurgeIdempotencyKeys(gomock.Any(), pivot).Return(int64(4), nil)
	mockJob.EXPECT().Complete(gomock.Any(), "job-1", "completed", "deleted 4 idempotency keys").Return(core.Job{}, nil)

	r.dispatchJobs(context.Background())
}

func TestDispatchFailure(t *testing.T) {
	mockPacket, mockJob, r := setupReactor(t)

	mockJob.EXPECT().Dequeue(gomock.Any()).Return(&core.Job{ID: "job-1", Type: core.JobTypeIdempotencyClean}, nil)
	mockPacket.EXPECT().PurgeIdempotencyKeys(gomock.Any(), pivot).Return(int64(0), fmt.Errorf("db down"))
	mockJob.EXPECT().Complete(gomock.Any(), "job-1", "failed", "db down").Return(core.Job{}, nil).Times(1)

	r.dispatchJobs(context.Background())
}

func TestDispatchUnknownType(t *testing.T) {
	_, mockJob, r := setupReactor(t)

	mockJob.EXPECT().Dequeue(gomock.Any()).Return(&core.Job{ID: "job-2", Type: "hello"}, nil)
	mockJob.EXPECT().Complete(gomock.Any(), "job-2", "failed", "unknown job type").Return(core.Job{}, nil)

	r.dispatchJobs(context.Background())
}

func TestDispatchEmptyQueue(t *testing.T) {
	_, mockJob, r := setupReactor(t)

	mockJob.EXPECT().Dequeue(gomock.Any()).Return(nil, core.NewErrorNotFound())

	r.dispatchJobs(context.Background())
}

func TestScheduleMaintenance(t *testing.T) {
	_, mockJob, r := setupReactor(t)

	gomock.InOrder(
		mockJob.EXPECT().HasPending(gomock.Any(), core.JobTypeIdempotencyClean).Return(false, nil),
		mockJob.EXPECT().Create(gomock.Any(), systemAuthor, core.JobTypeIdempotencyClean, "{}", pivot).Return(core.Job{}, nil),
		mockJob.EXPECT().HasPending(gomock.Any(), core.JobTypeIdempotencyClean).Return(true, nil),
	)

	r.scheduleMaintenance(context.Background())
	// already queued: nothing new is enqueued
	r.scheduleMaintenance(context.Background())
}

func TestServiceRejectsUnknownJobType(t *testing.T) {
	s := NewService(nil, clock.NewManual(pivot))

	_, err := s.Create(context.Background(), systemAuthor, "hello", "", pivot)
	assert.ErrorIs(t, err, core.ErrorValidation{})
}
