package session

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/totegamma/longrest/core"
	"github.com/totegamma/longrest/internal/clock"
)

type service struct {
	repository Repository
	campaign   core.CampaignService
	inflight   core.InFlightGuard
	clock      clock.Clock
}

// NewService creates a new session service
func NewService(
	repository Repository,
	campaign core.CampaignService,
	inflight core.InFlightGuard,
	clock clock.Clock,
) core.SessionService {
	return &service{
		repository,
		campaign,
		inflight,
		clock,
	}
}

// Create schedules a new proposed session. Input is validated before any store access.
func (s *service) Create(ctx context.Context, principal core.Principal, campaignID, title, proposedStart string, location *string) (core.Session, error) {
	ctx, span := tracer.Start(ctx, "Session.Service.Create")
	defer span.End()

	if principal.IsAnonymous() {
		return core.Session{}, core.NewErrorUnauthenticated()
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return core.Session{}, core.NewErrorValidation("title is required", "")
	}

	start, err := core.ParseProposedStart(proposedStart)
	if err != nil {
		span.RecordError(err)
		return core.Session{}, err
	}

	if location != nil {
		trimmed := strings.TrimSpace(*location)
		if trimmed == "" {
			location = nil
		} else {
			location = &trimmed
		}
	}

	_, err = core.RequireGameMaster(ctx, s.campaign, principal, campaignID)
	if err != nil {
		span.RecordError(err)
		return core.Session{}, err
	}

	created, err := s.repository.Create(ctx, core.Session{
		CampaignID:     campaignID,
		Title:          title,
		StartAt:        start,
		Location:       location,
		Status:         core.SessionStatusPlanned,
		ScheduleStatus: core.ScheduleStatusProposed,
		CreatedBy:      principal.UserID,
	})
	if err != nil {
		span.RecordError(err)
		return core.Session{}, err
	}

	span.SetAttributes(attribute.String("session", created.ID))
	return created, nil
}

// SetProposedTime moves the proposed start. A final session goes back to proposed.
func (s *service) SetProposedTime(ctx context.Context, principal core.Principal, sessionID, proposedStart string) (core.Session, error) {
	ctx, span := tracer.Start(ctx, "Session.Service.SetProposedTime")
	defer span.End()

	if principal.IsAnonymous() {
		return core.Session{}, core.NewErrorUnauthenticated()
	}

	start, err := core.ParseProposedStart(proposedStart)
	if err != nil {
		span.RecordError(err)
		return core.Session{}, err
	}

	if _, err := s.authorize(ctx, principal, sessionID, true); err != nil {
		span.RecordError(err)
		return core.Session{}, err
	}

	updated, err := s.repository.SetProposedTime(ctx, sessionID, start, principal.UserID, s.clock.Now())
	if err != nil {
		span.RecordError(err)
		return core.Session{}, err
	}

	return updated, nil
}

func (s *service) Reopen(ctx context.Context, principal core.Principal, sessionID string) (core.Session, error) {
	ctx, span := tracer.Start(ctx, "Session.Service.Reopen")
	defer span.End()

	current, err := s.authorize(ctx, principal, sessionID, true)
	if err != nil {
		span.RecordError(err)
		return core.Session{}, err
	}

	if current.ScheduleStatus == core.ScheduleStatusProposed {
		return current, nil
	}

	reopened, err := s.repository.Reopen(ctx, sessionID, principal.UserID, s.clock.Now())
	if err != nil {
		span.RecordError(err)
		return core.Session{}, err
	}

	return reopened, nil
}

// Finalize locks the proposed start as the final start
func (s *service) Finalize(ctx context.Context, principal core.Principal, sessionID string) (core.Session, error) {
	ctx, span := tracer.Start(ctx, "Session.Service.Finalize")
	defer span.End()

	if _, err := s.authorize(ctx, principal, sessionID, true); err != nil {
		span.RecordError(err)
		return core.Session{}, err
	}

	release, err := s.inflight.Acquire(ctx, "session.finalize:"+sessionID)
	if err != nil {
		span.RecordError(err)
		return core.Session{}, err
	}
	defer release()

	finalized, err := s.repository.Finalize(ctx, sessionID)
	if err != nil {
		span.RecordError(err)
		return core.Session{}, err
	}

	return finalized, nil
}

func (s *service) UpdateStatus(ctx context.Context, principal core.Principal, sessionID string, status core.SessionStatus) (core.Session, error) {
	ctx, span := tracer.Start(ctx, "Session.Service.UpdateStatus")
	defer span.End()

	if !status.Valid() {
		return core.Session{}, core.NewErrorValidation("unknown status: "+string(status), "")
	}

	if _, err := s.authorize(ctx, principal, sessionID, true); err != nil {
		span.RecordError(err)
		return core.Session{}, err
	}

	updated, err := s.repository.UpdateStatus(ctx, sessionID, status)
	if err != nil {
		span.RecordError(err)
		return core.Session{}, err
	}

	return updated, nil
}

func (s *service) Get(ctx context.Context, principal core.Principal, sessionID string) (core.Session, error) {
	ctx, span := tracer.Start(ctx, "Session.Service.Get")
	defer span.End()

	session, err := s.authorize(ctx, principal, sessionID, false)
	if err != nil {
		span.RecordError(err)
		return core.Session{}, err
	}

	return session, nil
}

// List returns the campaign's sessions ordered by effective start, ascending
func (s *service) List(ctx context.Context, principal core.Principal, campaignID string) ([]core.Session, error) {
	ctx, span := tracer.Start(ctx, "Session.Service.List")
	defer span.End()

	if _, err := core.RequireMember(ctx, s.campaign, principal, campaignID); err != nil {
		span.RecordError(err)
		return nil, err
	}

	sessions, err := s.repository.ListByCampaign(ctx, campaignID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	core.SortByEffectiveStart(sessions)
	return sessions, nil
}

func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Session.Service.Count")
	defer span.End()

	return s.repository.Count(ctx)
}

// authorize loads the session and checks the principal's role in its campaign
func (s *service) authorize(ctx context.Context, principal core.Principal, sessionID string, gameMaster bool) (core.Session, error) {
	if principal.IsAnonymous() {
		return core.Session{}, core.NewErrorUnauthenticated()
	}
	if !core.IsValidID(sessionID) {
		return core.Session{}, core.NewErrorNotFound()
	}

	session, err := s.repository.Get(ctx, sessionID)
	if err != nil {
		return core.Session{}, err
	}

	if gameMaster {
		_, err = core.RequireGameMaster(ctx, s.campaign, principal, session.CampaignID)
	} else {
		_, err = core.RequireMember(ctx, s.campaign, principal, session.CampaignID)
	}
	if err != nil {
		return core.Session{}, err
	}

	return session, nil
}
