package response

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/totegamma/longrest/core"
	"github.com/totegamma/longrest/core/mock"
	"github.com/totegamma/longrest/internal/clock"
	"github.com/totegamma/longrest/x/response/mock"
)

const (
	sessionA = "3a1c2b4d-5e6f-4a7b-8c9d-0e1f2a3b4c5d"
	sessionB = "4b2d3c5e-6f7a-4b8c-9d0e-1f2a3b4c5d6e"
)

var (
	player = core.Principal{UserID: "user-player"}
	pivot  = time.Date(2025, 11, 28, 10, 0, 0, 0, time.UTC)
)

func setup(t *testing.T) (*mock_response.MockRepository, *mock_core.MockSessionService, core.ResponseService) {
	ctrl := gomock.NewController(t)
	repo := mock_response.NewMockRepository(ctrl)
	sessions := mock_core.NewMockSessionService(ctrl)
	return repo, sessions, NewService(repo, sessions, clock.NewManual(pivot))
}

func TestUpsertUsesPrincipal(t *testing.T) {
	repo, sessions, service := setup(t)

	sessions.EXPECT().Get(gomock.Any(), player, sessionA).Return(core.Session{
		ID:             sessionA,
		ScheduleStatus: core.ScheduleStatusProposed,
	}, nil)
	repo.EXPECT().Upsert(gomock.Any(), core.SessionResponse{
		SessionID:   sessionA,
		UserID:      player.UserID,
		Response:    core.ResponseYes,
		RespondedAt: pivot,
	}).DoAndReturn(func(_ context.Context, r core.SessionResponse) (core.SessionResponse, error) {
		r.ID = "response-1"
		return r, nil
	})

	saved, err := service.Upsert(context.Background(), player, sessionA, core.ResponseYes)
	if assert.NoError(t, err) {
		assert.Equal(t, "response-1", saved.ID)
		assert.Equal(t, player.UserID, saved.UserID)
	}
}

func TestUpsertLockedWhenFinal(t *testing.T) {
	_, sessions, service := setup(t)

	start := pivot.Add(48 * time.Hour)
	sessions.EXPECT().Get(gomock.Any(), player, sessionA).Return(core.Session{
		ID:             sessionA,
		StartAt:        start,
		FinalStartAt:   &start,
		ScheduleStatus: core.ScheduleStatusFinal,
	}, nil)

	_, err := service.Upsert(context.Background(), player, sessionA, core.ResponseNo)
	var validation core.ErrorValidation
	if assert.ErrorAs(t, err, &validation) {
		assert.Equal(t, "session_locked", validation.Reason)
	}
}

func TestUpsertRejectsUnknownValue(t *testing.T) {
	_, _, service := setup(t)

	_, err := service.Upsert(context.Background(), player, sessionA, core.ResponseValue("maybe"))
	assert.ErrorIs(t, err, core.ErrorValidation{})

	_, err = service.Upsert(context.Background(), core.Principal{}, sessionA, core.ResponseYes)
	assert.ErrorIs(t, err, core.ErrorUnauthenticated{})
}

func TestListSortsYesFirst(t *testing.T) {
	repo, sessions, service := setup(t)

	sessions.EXPECT().Get(gomock.Any(), player, sessionA).Return(core.Session{ID: sessionA}, nil)
	repo.EXPECT().ListBySession(gomock.Any(), sessionA).Return([]core.SessionResponse{
		{ID: "no-new", Response: core.ResponseNo, CreatedAt: pivot},
		{ID: "yes-old", Response: core.ResponseYes, CreatedAt: pivot.Add(-time.Hour)},
		{ID: "yes-new", Response: core.ResponseYes, CreatedAt: pivot},
	}, nil)

	responses, err := service.List(context.Background(), player, sessionA)
	if assert.NoError(t, err) && assert.Len(t, responses, 3) {
		assert.Equal(t, "yes-new", responses[0].ID)
		assert.Equal(t, "yes-old", responses[1].ID)
		assert.Equal(t, "no-new", responses[2].ID)
	}
}

func TestSummaryEmptyInput(t *testing.T) {
	_, _, service := setup(t)

	summary, err := service.Summary(context.Background(), player, nil)
	if assert.NoError(t, err) {
		assert.Empty(t, summary)
	}

	// invalid ids are dropped before the store is asked
	summary, err = service.Summary(context.Background(), player, []string{"", "garbage"})
	if assert.NoError(t, err) {
		assert.Empty(t, summary)
	}
}

func TestSummaryDedupes(t *testing.T) {
	repo, _, service := setup(t)

	repo.EXPECT().CountByValue(gomock.Any(), []string{sessionA, sessionB}, player.UserID).Return(map[string]core.ResponseCounts{
		sessionA: {Yes: 2, No: 1},
	}, nil)

	summary, err := service.Summary(context.Background(), player, []string{sessionA, sessionB, sessionA})
	if assert.NoError(t, err) {
		assert.Equal(t, core.ResponseCounts{Yes: 2, No: 1}, summary[sessionA])
		_, ok := summary[sessionB]
		assert.False(t, ok)
	}
}

func TestMyResponseMap(t *testing.T) {
	repo, _, service := setup(t)

	repo.EXPECT().ListByUser(gomock.Any(), []string{sessionA, sessionB}, player.UserID).Return([]core.SessionResponse{
		{SessionID: sessionB, UserID: player.UserID, Response: core.ResponseNo},
	}, nil)

	mine, err := service.MyResponseMap(context.Background(), player, []string{sessionA, sessionB})
	if assert.NoError(t, err) {
		assert.Equal(t, map[string]core.ResponseValue{sessionB: core.ResponseNo}, mine)
	}
}
