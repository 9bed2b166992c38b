package core

const (
	RequesterIdCtxKey = "lr-requesterId"
)

const (
	ProposedStartHint = "Use this format: 2025-12-01 19:00"
)

const (
	IdempotencyScopePacketSend = "packet.send"
)

const (
	JobTypeIdempotencyClean = "idempotency.clean"
)
