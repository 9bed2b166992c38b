//go:generate go run go.uber.org/mock/mockgen -source=interfaces.go -destination=mock/services.go
package core

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
)

type AuthService interface {
	Validate(ctx context.Context, token string) (Principal, error)
	IdentifyIdentity(next echo.HandlerFunc) echo.HandlerFunc
}

type CampaignService interface {
	Create(ctx context.Context, principal Principal, name, description string) (CampaignMembership, error)
	Get(ctx context.Context, principal Principal, campaignID string) (Campaign, error)
	ListMine(ctx context.Context, principal Principal) ([]CampaignMembership, error)
	ListMembers(ctx context.Context, principal Principal, campaignID string) ([]CampaignMember, error)
	AddMember(ctx context.Context, principal Principal, campaignID, userID string, role MemberRole) (CampaignMember, error)
	Membership(ctx context.Context, campaignID, userID string) (CampaignMember, error)
	MembersByIDs(ctx context.Context, campaignID string, ids []string) ([]CampaignMember, error)
}

type SessionService interface {
	Create(ctx context.Context, principal Principal, campaignID, title, proposedStart string, location *string) (Session, error)
	SetProposedTime(ctx context.Context, principal Principal, sessionID, proposedStart string) (Session, error)
	Reopen(ctx context.Context, principal Principal, sessionID string) (Session, error)
	Finalize(ctx context.Context, principal Principal, sessionID string) (Session, error)
	UpdateStatus(ctx context.Context, principal Principal, sessionID string, status SessionStatus) (Session, error)
	Get(ctx context.Context, principal Principal, sessionID string) (Session, error)
	List(ctx context.Context, principal Principal, campaignID string) ([]Session, error)
	Count(ctx context.Context) (int64, error)
}

type ResponseService interface {
	Upsert(ctx context.Context, principal Principal, sessionID string, value ResponseValue) (SessionResponse, error)
	List(ctx context.Context, principal Principal, sessionID string) ([]SessionResponse, error)
	Summary(ctx context.Context, principal Principal, sessionIDs []string) (map[string]ResponseCounts, error)
	MyResponseMap(ctx context.Context, principal Principal, sessionIDs []string) (map[string]ResponseValue, error)
}

type PacketService interface {
	Send(ctx context.Context, principal Principal, request SendPacketRequest) (PacketDelivery, error)
	ListSent(ctx context.Context, principal Principal, campaignID string) ([]EventPacket, error)
	PurgeIdempotencyKeys(ctx context.Context, before time.Time) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type InboxService interface {
	GetInbox(ctx context.Context, principal Principal, campaignID string) ([]EventPacketRecipient, error)
	MarkRead(ctx context.Context, principal Principal, packetID string) (*EventPacketRecipient, error)
	UnreadCount(ctx context.Context, principal Principal, campaignID string) (int64, error)
}

type RecapService interface {
	Get(ctx context.Context, principal Principal, sessionID string) (SessionRecap, error)
	Upsert(ctx context.Context, principal Principal, sessionID, content string, isPublished bool) (SessionRecap, error)
}

type InFlightGuard interface {
	Acquire(ctx context.Context, scope string) (release func(), err error)
}

type JobService interface {
	List(ctx context.Context, requester string) ([]Job, error)
	Create(ctx context.Context, requester, typ, payload string, scheduled time.Time) (Job, error)
	Dequeue(ctx context.Context) (*Job, error)
	Complete(ctx context.Context, id, status, result string) (Job, error)
	Cancel(ctx context.Context, id string) (Job, error)
	HasPending(ctx context.Context, typ string) (bool, error)
}
