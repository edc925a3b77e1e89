package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"carelink/database"
	"carelink/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when a booking is absent or not in the expected
// state. Callers cannot distinguish the two cases.
var ErrNotFound = errors.New("booking not found")

// ErrSlotTaken is returned when a conflicting committed booking already
// occupies the requested window at commit time.
var ErrSlotTaken = errors.New("slot already taken")

// MongoBookingRepo is the production BookingRepository backed by MongoDB.
type MongoBookingRepo struct {
	coll   *mongo.Collection
	client *mongo.Client
}

// NewMongoBookingRepo constructs the repo and ensures indexes.
func NewMongoBookingRepo() *MongoBookingRepo {
	repo := &MongoBookingRepo{
		coll:   database.Collection("bookings"),
		client: database.MongoClient,
	}
	repo.ensureIndexes()
	return repo
}

func (repo *MongoBookingRepo) ensureIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "caregiver_id", Value: 1},
				{Key: "service_date", Value: 1},
				{Key: "status", Value: 1},
			},
		},
		{
			Keys: bson.D{{Key: "patient_id", Value: 1}},
		},
	}
	if _, err := repo.coll.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Printf("booking repo: failed to ensure indexes: %v", err)
	}
}

func committedStatuses() bson.A {
	return bson.A{"confirmed", "in_progress"}
}

// overlapFilter matches committed bookings of the caregiver on the date that
// overlap [start, end) using half-open interval overlap.
func overlapFilter(caregiverID, date string, start, end int) bson.M {
	return bson.M{
		"caregiver_id": caregiverID,
		"service_date": date,
		"status":       bson.M{"$in": committedStatuses()},
		"start":        bson.M{"$lt": end},
		"end":          bson.M{"$gt": start},
	}
}

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, 5*time.Second)
}

func (repo *MongoBookingRepo) GetByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var booking models.Booking
	err := repo.coll.FindOne(ctx, bson.M{"id": bookingID}).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching booking %s: %w", bookingID, err)
	}
	return &booking, nil
}
