package core

import (
	"time"

	"github.com/lib/pq"
)

type Campaign struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid"`
	Name        string    `json:"name" gorm:"type:text;not null"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedBy   string    `json:"createdBy" gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"createdAt" gorm:"->;<-:create;autoCreateTime"`
}

type CampaignMember struct {
	ID         string     `json:"id" gorm:"primaryKey;type:uuid"`
	CampaignID string     `json:"campaignId" gorm:"type:uuid;not null;uniqueIndex:uniq_campaign_member"`
	UserID     string     `json:"userId" gorm:"type:text;not null;uniqueIndex:uniq_campaign_member;index"`
	Role       MemberRole `json:"role" gorm:"type:text;not null;check:chk_campaign_members_role,role IN ('dm', 'co_dm', 'player')"`
	CreatedAt  time.Time  `json:"createdAt" gorm:"->;<-:create;autoCreateTime"`
}

// Session is a scheduled play meeting.
// schedule_status = 'final' iff final_start_at is set.
type Session struct {
	ID             string         `json:"id" gorm:"primaryKey;type:uuid"`
	CampaignID     string         `json:"campaignId" gorm:"type:uuid;not null;index"`
	Title          string         `json:"title" gorm:"type:text;not null"`
	StartAt        time.Time      `json:"startAt" gorm:"type:timestamp with time zone;not null"`
	FinalStartAt   *time.Time     `json:"finalStartAt" gorm:"type:timestamp with time zone"`
	Location       *string        `json:"location,omitempty" gorm:"type:text"`
	Status         SessionStatus  `json:"status" gorm:"type:text;not null;check:chk_sessions_status,status IN ('planned', 'completed', 'cancelled')"`
	ScheduleStatus ScheduleStatus `json:"scheduleStatus" gorm:"type:text;not null;check:chk_sessions_schedule_final,(schedule_status = 'final') = (final_start_at IS NOT NULL)"`
	CreatedBy      string         `json:"createdBy" gorm:"type:text;not null"`
	ReopenedAt     *time.Time     `json:"reopenedAt,omitempty" gorm:"type:timestamp with time zone"`
	ReopenedBy     *string        `json:"reopenedBy,omitempty" gorm:"type:text"`
	CreatedAt      time.Time      `json:"createdAt" gorm:"->;<-:create;autoCreateTime"`
}

// Schedule returns the typed schedule state of the session.
func (s Session) Schedule() ScheduleState {
	if s.ScheduleStatus == ScheduleStatusFinal && s.FinalStartAt != nil {
		return Final{At: *s.FinalStartAt}
	}
	return Proposed{At: s.StartAt}
}

// EffectiveStartAt is the final start if set, otherwise the proposed start.
func (s Session) EffectiveStartAt() time.Time {
	if s.FinalStartAt != nil {
		return *s.FinalStartAt
	}
	return s.StartAt
}

type SessionResponse struct {
	ID          string        `json:"id" gorm:"primaryKey;type:uuid"`
	SessionID   string        `json:"sessionId" gorm:"type:uuid;not null;uniqueIndex:uniq_session_response"`
	UserID      string        `json:"userId" gorm:"type:text;not null;uniqueIndex:uniq_session_response"`
	Response    ResponseValue `json:"response" gorm:"type:text;not null;check:chk_session_responses_value,response IN ('yes', 'no')"`
	RespondedAt time.Time     `json:"respondedAt" gorm:"type:timestamp with time zone;not null"`
	CreatedAt   time.Time     `json:"createdAt" gorm:"->;<-:create;autoCreateTime"`
}

type EventPacket struct {
	ID                 string                 `json:"id" gorm:"primaryKey;type:uuid"`
	CampaignID         string                 `json:"campaignId" gorm:"type:uuid;not null;index"`
	SessionID          *string                `json:"sessionId,omitempty" gorm:"type:uuid"`
	CreatedBy          string                 `json:"createdBy" gorm:"type:text;not null"`
	Type               PacketType             `json:"type" gorm:"type:text;not null;check:chk_event_packets_type,type IN ('xp', 'loot', 'secret', 'note', 'announcement')"`
	Title              string                 `json:"title" gorm:"type:text;not null"`
	Body               string                 `json:"body" gorm:"type:text;not null"`
	IsPublished        bool                   `json:"isPublished" gorm:"not null"`
	VisibleFrom        time.Time              `json:"visibleFrom" gorm:"type:timestamp with time zone;not null"`
	AddressedMemberIDs pq.StringArray         `json:"addressedMemberIds" gorm:"type:text[]"`
	CreatedAt          time.Time              `json:"createdAt" gorm:"->;<-:create;autoCreateTime"`
	UpdatedAt          time.Time              `json:"updatedAt" gorm:"autoUpdateTime"`
	Recipients         []EventPacketRecipient `json:"recipients,omitempty" gorm:"foreignKey:PacketID"`
}

// EventPacketRecipient is the per-member delivery row of a packet.
// has_read = true iff read_at is set.
type EventPacketRecipient struct {
	ID               string          `json:"id" gorm:"primaryKey;type:uuid"`
	PacketID         string          `json:"packetId" gorm:"type:uuid;not null;uniqueIndex:uniq_packet_recipient"`
	CampaignMemberID string          `json:"campaignMemberId" gorm:"type:uuid;not null;uniqueIndex:uniq_packet_recipient;index"`
	HasRead          bool            `json:"hasRead" gorm:"not null;check:chk_recipient_read,has_read = (read_at IS NOT NULL)"`
	ReadAt           *time.Time      `json:"readAt" gorm:"type:timestamp with time zone"`
	CreatedAt        time.Time       `json:"createdAt" gorm:"->;<-:create;autoCreateTime"`
	Packet           *EventPacket    `json:"packet,omitempty" gorm:"foreignKey:PacketID"`
	Member           *CampaignMember `json:"member,omitempty" gorm:"foreignKey:CampaignMemberID"`
}

type SessionRecap struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid"`
	SessionID   string    `json:"sessionId" gorm:"type:uuid;not null;uniqueIndex"`
	AuthorID    string    `json:"authorId" gorm:"type:text;not null"`
	Content     string    `json:"content" gorm:"type:text;not null"`
	IsPublished bool      `json:"isPublished" gorm:"not null"`
	CreatedAt   time.Time `json:"createdAt" gorm:"->;<-:create;autoCreateTime"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

// IdempotencyKey remembers which resource a keyed submission created.
type IdempotencyKey struct {
	ID         string    `json:"id" gorm:"primaryKey;type:uuid"`
	UserID     string    `json:"userId" gorm:"type:text;not null;uniqueIndex:uniq_idempotency_key"`
	Scope      string    `json:"scope" gorm:"type:text;not null;uniqueIndex:uniq_idempotency_key"`
	Key        string    `json:"key" gorm:"type:text;not null;uniqueIndex:uniq_idempotency_key"`
	ResourceID string    `json:"resourceId" gorm:"type:text;not null"`
	CreatedAt  time.Time `json:"createdAt" gorm:"->;<-:create;autoCreateTime"`
	ExpiresAt  time.Time `json:"expiresAt" gorm:"type:timestamp with time zone;not null;index"`
}

type Job struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Author      string    `json:"author" gorm:"type:text"`
	Type        string    `json:"type" gorm:"type:text"`
	Payload     string    `json:"payload" gorm:"type:json"`
	Scheduled   time.Time `json:"scheduled" gorm:"type:timestamp with time zone"`
	Status      string    `json:"status" gorm:"type:text"` // pending, running, completed, failed
	Result      string    `json:"result" gorm:"type:text"`
	CreatedAt   time.Time `json:"createdAt" gorm:"autoCreateTime"`
	CompletedAt time.Time `json:"completedAt" gorm:"autoUpdateTime"`
	TraceID     string    `json:"traceID" gorm:"type:text"`
}
