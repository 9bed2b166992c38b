package response

import (
	"context"

	"github.com/totegamma/longrest/core"
	"github.com/totegamma/longrest/internal/clock"
)

type service struct {
	repository Repository
	session    core.SessionService
	clock      clock.Clock
}

// NewService creates a new session response service
func NewService(repository Repository, session core.SessionService, clock clock.Clock) core.ResponseService {
	return &service{
		repository,
		session,
		clock,
	}
}

// Upsert records the principal's attendance for the session.
// The user id always comes from the principal.
func (s *service) Upsert(ctx context.Context, principal core.Principal, sessionID string, value core.ResponseValue) (core.SessionResponse, error) {
	ctx, span := tracer.Start(ctx, "Response.Service.Upsert")
	defer span.End()

	if principal.IsAnonymous() {
		return core.SessionResponse{}, core.NewErrorUnauthenticated()
	}
	if !value.Valid() {
		return core.SessionResponse{}, core.NewErrorValidation("response must be yes or no", "")
	}

	session, err := s.session.Get(ctx, principal, sessionID)
	if err != nil {
		span.RecordError(err)
		return core.SessionResponse{}, err
	}

	if _, final := session.Schedule().(core.Final); final {
		return core.SessionResponse{}, core.NewErrorValidation(SessionLockedReason, SessionLockedHint)
	}

	saved, err := s.repository.Upsert(ctx, core.SessionResponse{
		SessionID:   session.ID,
		UserID:      principal.UserID,
		Response:    value,
		RespondedAt: s.clock.Now(),
	})
	if err != nil {
		span.RecordError(err)
		return core.SessionResponse{}, err
	}

	return saved, nil
}

// List returns the session's responses, yes before no and newest first within each
func (s *service) List(ctx context.Context, principal core.Principal, sessionID string) ([]core.SessionResponse, error) {
	ctx, span := tracer.Start(ctx, "Response.Service.List")
	defer span.End()

	if _, err := s.session.Get(ctx, principal, sessionID); err != nil {
		span.RecordError(err)
		return nil, err
	}

	responses, err := s.repository.ListBySession(ctx, sessionID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	core.SortResponses(responses)
	return responses, nil
}

// Summary tallies yes and no per session. Sessions without responses are absent.
func (s *service) Summary(ctx context.Context, principal core.Principal, sessionIDs []string) (map[string]core.ResponseCounts, error) {
	ctx, span := tracer.Start(ctx, "Response.Service.Summary")
	defer span.End()

	if principal.IsAnonymous() {
		return nil, core.NewErrorUnauthenticated()
	}

	ids := validIDs(sessionIDs)
	if len(ids) == 0 {
		return map[string]core.ResponseCounts{}, nil
	}

	summary, err := s.repository.CountByValue(ctx, ids, principal.UserID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return summary, nil
}

func (s *service) MyResponseMap(ctx context.Context, principal core.Principal, sessionIDs []string) (map[string]core.ResponseValue, error) {
	ctx, span := tracer.Start(ctx, "Response.Service.MyResponseMap")
	defer span.End()

	if principal.IsAnonymous() {
		return nil, core.NewErrorUnauthenticated()
	}

	result := map[string]core.ResponseValue{}

	ids := validIDs(sessionIDs)
	if len(ids) == 0 {
		return result, nil
	}

	responses, err := s.repository.ListByUser(ctx, ids, principal.UserID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	for _, r := range responses {
		result[r.SessionID] = r.Response
	}

	return result, nil
}

func validIDs(ids []string) []string {
	result := []string{}
	for _, id := range core.DedupeIDs(ids) {
		if core.IsValidID(id) {
			result = append(result, id)
		}
	}
	return result
}
