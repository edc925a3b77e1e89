package audit

import (
	"context"
	"time"

	auditRepo "carelink/database/repository/audit"
	"carelink/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Recorder accepts audit events from the booking lifecycle and message
// pipeline.
type Recorder interface {
	Record(ctx context.Context, actorID, action, entityID string, metadata map[string]string)
}

// DefaultRecorder persists events and mirrors them to the log. Recording is
// best effort; a sink failure must not fail the operation being audited.
type DefaultRecorder struct {
	Repo   auditRepo.AuditRepository
	Logger *zap.Logger
}

func NewDefaultRecorder(repo auditRepo.AuditRepository, logger *zap.Logger) *DefaultRecorder {
	return &DefaultRecorder{Repo: repo, Logger: logger}
}

func (r *DefaultRecorder) Record(ctx context.Context, actorID, action, entityID string, metadata map[string]string) {
	event := &models.AuditEvent{
		ID:        uuid.New().String(),
		ActorID:   actorID,
		Action:    action,
		EntityID:  entityID,
		Metadata:  metadata,
		CreatedAt: time.Now(),
	}

	r.Logger.Info("audit",
		zap.String("actor", actorID),
		zap.String("action", action),
		zap.String("entity", entityID),
	)

	if err := r.Repo.Insert(ctx, event); err != nil {
		r.Logger.Error("failed to persist audit event", zap.Error(err))
	}
}
