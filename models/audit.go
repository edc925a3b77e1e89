package models

import "time"

// Audit actions recorded by the booking lifecycle.
const (
	AuditAccessLimited  = "access:limited"
	AuditAccessFull     = "access:full"
	AuditBookingCreated = "booking:created"
	AuditBookingDone    = "booking:completed"
	AuditBookingVoided  = "booking:cancelled"
	AuditBookingNoShow  = "booking:no_show"
	AuditMessageBlocked = "message:blocked"
)

// AuditEvent records who did what to which entity.
type AuditEvent struct {
	ID        string            `bson:"id" json:"id"`
	ActorID   string            `bson:"actor_id" json:"actor_id"`
	Action    string            `bson:"action" json:"action"`
	EntityID  string            `bson:"entity_id" json:"entity_id"`
	Metadata  map[string]string `bson:"metadata,omitempty" json:"metadata,omitempty"`
	CreatedAt time.Time         `bson:"created_at" json:"created_at"`
}
