package recap

import (
	"context"
	"strings"

	"github.com/totegamma/longrest/core"
)

type service struct {
	repository Repository
	campaign   core.CampaignService
}

// NewService creates a new recap service
func NewService(repository Repository, campaign core.CampaignService) core.RecapService {
	return &service{
		repository,
		campaign,
	}
}

// sessionMember resolves the session's campaign and the caller's membership in it
func (s *service) sessionMember(ctx context.Context, principal core.Principal, sessionID string) (core.CampaignMember, error) {
	if principal.IsAnonymous() {
		return core.CampaignMember{}, core.NewErrorUnauthenticated()
	}
	if !core.IsValidID(sessionID) {
		return core.CampaignMember{}, core.NewErrorNotFound()
	}

	campaignID, err := s.repository.GetSessionCampaign(ctx, sessionID)
	if err != nil {
		return core.CampaignMember{}, err
	}

	return core.RequireMember(ctx, s.campaign, principal, campaignID)
}

// Get returns the session recap. Drafts are only visible to game masters.
func (s *service) Get(ctx context.Context, principal core.Principal, sessionID string) (core.SessionRecap, error) {
	ctx, span := tracer.Start(ctx, "Recap.Service.Get")
	defer span.End()

	member, err := s.sessionMember(ctx, principal, sessionID)
	if err != nil {
		span.RecordError(err)
		return core.SessionRecap{}, err
	}

	recap, err := s.repository.GetBySession(ctx, sessionID)
	if err != nil {
		span.RecordError(err)
		return core.SessionRecap{}, err
	}

	if !recap.IsPublished && !member.Role.IsGameMaster() {
		return core.SessionRecap{}, core.NewErrorNotFound()
	}

	return recap, nil
}

func (s *service) Upsert(ctx context.Context, principal core.Principal, sessionID, content string, isPublished bool) (core.SessionRecap, error) {
	ctx, span := tracer.Start(ctx, "Recap.Service.Upsert")
	defer span.End()

	if principal.IsAnonymous() {
		return core.SessionRecap{}, core.NewErrorUnauthenticated()
	}

	if strings.TrimSpace(content) == "" {
		return core.SessionRecap{}, core.NewErrorValidation("content is required", "")
	}

	member, err := s.sessionMember(ctx, principal, sessionID)
	if err != nil {
		span.RecordError(err)
		return core.SessionRecap{}, err
	}

	if !member.Role.IsGameMaster() {
		return core.SessionRecap{}, core.NewErrorPermissionDenied("only the dm or a co-dm may write recaps")
	}

	return s.repository.Upsert(ctx, core.SessionRecap{
		SessionID:   sessionID,
		AuthorID:    principal.UserID,
		Content:     content,
		IsPublished: isPublished,
	})
}
