package core

import (
	"time"
)

// Principal is the authenticated identity a request runs as.
type Principal struct {
	UserID string `json:"userId"`
}

func (p Principal) IsAnonymous() bool {
	return p.UserID == ""
}

type MemberRole string

const (
	RoleDM     MemberRole = "dm"
	RoleCoDM   MemberRole = "co_dm"
	RolePlayer MemberRole = "player"
)

func (r MemberRole) Valid() bool {
	switch r {
	case RoleDM, RoleCoDM, RolePlayer:
		return true
	}
	return false
}

// IsGameMaster reports whether the role may schedule sessions and author packets.
func (r MemberRole) IsGameMaster() bool {
	return r == RoleDM || r == RoleCoDM
}

type ScheduleStatus string

const (
	ScheduleStatusProposed ScheduleStatus = "proposed"
	ScheduleStatusFinal    ScheduleStatus = "final"
)

type SessionStatus string

const (
	SessionStatusPlanned   SessionStatus = "planned"
	SessionStatusCompleted SessionStatus = "completed"
	SessionStatusCancelled SessionStatus = "cancelled"
)

func (s SessionStatus) Valid() bool {
	switch s {
	case SessionStatusPlanned, SessionStatusCompleted, SessionStatusCancelled:
		return true
	}
	return false
}

type ResponseValue string

const (
	ResponseYes ResponseValue = "yes"
	ResponseNo  ResponseValue = "no"
)

func (v ResponseValue) Valid() bool {
	return v == ResponseYes || v == ResponseNo
}

type PacketType string

const (
	PacketTypeXP           PacketType = "xp"
	PacketTypeLoot         PacketType = "loot"
	PacketTypeSecret       PacketType = "secret"
	PacketTypeNote         PacketType = "note"
	PacketTypeAnnouncement PacketType = "announcement"
)

func (t PacketType) Valid() bool {
	switch t {
	case PacketTypeXP, PacketTypeLoot, PacketTypeSecret, PacketTypeNote, PacketTypeAnnouncement:
		return true
	}
	return false
}

// ScheduleState is either Proposed or Final.
type ScheduleState interface {
	Start() time.Time
	isScheduleState()
}

type Proposed struct {
	At time.Time
}

func (p Proposed) Start() time.Time { return p.At }
func (Proposed) isScheduleState()   {}

type Final struct {
	At time.Time
}

func (f Final) Start() time.Time { return f.At }
func (Final) isScheduleState()   {}

// ResponseCounts is the yes/no tally of one session.
type ResponseCounts struct {
	Yes int64 `json:"yes"`
	No  int64 `json:"no"`
}

// CampaignMembership is a campaign seen through one member's role.
type CampaignMembership struct {
	Campaign Campaign   `json:"campaign"`
	MemberID string     `json:"memberId"`
	Role     MemberRole `json:"role"`
}

type SendPacketRequest struct {
	CampaignID         string     `json:"campaignId"`
	SessionID          *string    `json:"sessionId,omitempty"`
	Type               PacketType `json:"type"`
	Title              string     `json:"title"`
	Body               string     `json:"body"`
	RecipientMemberIDs []string   `json:"recipientMemberIds"`
	IsPublished        *bool      `json:"isPublished,omitempty"`
	VisibleFrom        *time.Time `json:"visibleFrom,omitempty"`
	IdempotencyKey     string     `json:"idempotencyKey,omitempty"`
}

// PacketDelivery is a packet together with its recipient rows.
type PacketDelivery struct {
	Packet     EventPacket            `json:"packet"`
	Recipients []EventPacketRecipient `json:"recipients"`
}

type Config struct {
	JWTSecret      string        `yaml:"jwtSecret"`
	Audience       string        `yaml:"audience"`
	InFlightTTL    time.Duration `yaml:"inFlightTTL"`
	IdempotencyTTL time.Duration `yaml:"idempotencyTTL"`
}
