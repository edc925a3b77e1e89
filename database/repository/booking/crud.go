package bookingRepo

import (
	"context"
	"errors"
	"fmt"

	"carelink/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateIfSlotFree inserts the booking inside a transaction that first
// re-checks for overlapping committed bookings. The resolver check upstream
// is optimistic; this is where conflicts are actually enforced.
func (repo *MongoBookingRepo) CreateIfSlotFree(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	session, err := repo.client.StartSession()
	if err != nil {
		return fmt.Errorf("error starting session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		filter := overlapFilter(booking.CaregiverID, booking.ServiceDate, booking.Start, booking.End)
		count, err := repo.coll.CountDocuments(sc, filter)
		if err != nil {
			return nil, fmt.Errorf("error checking slot conflicts: %w", err)
		}
		if count > 0 {
			return nil, ErrSlotTaken
		}
		if _, err := repo.coll.InsertOne(sc, booking); err != nil {
			return nil, fmt.Errorf("error creating booking: %w", err)
		}
		return nil, nil
	})
	return err
}

// UpdateStatusConditional performs a compare-and-set transition. The filter
// pins both the booking id and its current status (plus any extra ownership
// constraints), so a failed precondition leaves the record untouched.
func (repo *MongoBookingRepo) UpdateStatusConditional(ctx context.Context, bookingID, from string, extra bson.M, set bson.M) (*models.Booking, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	filter := bson.M{"id": bookingID, "status": from}
	for k, v := range extra {
		filter[k] = v
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Booking
	err := repo.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error updating booking %s: %w", bookingID, err)
	}
	return &updated, nil
}
