package bookingRepo

import (
	"context"
	"fmt"

	"carelink/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FindCommitted returns confirmed and in_progress bookings for the caregiver
// within [fromDate, toDate], ordered by date then start minute.
func (repo *MongoBookingRepo) FindCommitted(ctx context.Context, caregiverID, fromDate, toDate string) ([]models.Booking, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	filter := bson.M{
		"caregiver_id": caregiverID,
		"status":       bson.M{"$in": committedStatuses()},
		"service_date": bson.M{"$gte": fromDate, "$lte": toDate},
	}
	opts := options.Find().SetSort(bson.D{{Key: "service_date", Value: 1}, {Key: "start", Value: 1}})

	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error querying committed bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding committed bookings: %w", err)
	}
	return bookings, nil
}

// FindConfirmedOnOrBefore returns confirmed bookings scheduled on or before
// the given date. Used by the no-show sweep.
func (repo *MongoBookingRepo) FindConfirmedOnOrBefore(ctx context.Context, date string) ([]models.Booking, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	filter := bson.M{
		"status":       "confirmed",
		"service_date": bson.M{"$lte": date},
	}
	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error querying confirmed bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding confirmed bookings: %w", err)
	}
	return bookings, nil
}
