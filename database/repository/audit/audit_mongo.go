package auditRepo

import (
	"context"
	"fmt"
	"time"

	"carelink/database"
	"carelink/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AuditRepository persists audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event *models.AuditEvent) error
}

// MongoAuditRepo writes audit events to the audit_events collection.
type MongoAuditRepo struct {
	coll *mongo.Collection
}

func NewMongoAuditRepo() *MongoAuditRepo {
	return &MongoAuditRepo{coll: database.Collection("audit_events")}
}

func (repo *MongoAuditRepo) Insert(ctx context.Context, event *models.AuditEvent) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, event); err != nil {
		return fmt.Errorf("error inserting audit event: %w", err)
	}
	return nil
}
