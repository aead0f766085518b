package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"dreamydestiny/models"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new BookingRepository over the bookings
// collection.
func NewMongoBookingRepo(db *mongo.Database) BookingRepository {
	return &MongoBookingRepo{coll: db.Collection("bookings")}
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Insert stores the document verbatim and returns the assigned id.
func (r *MongoBookingRepo) Insert(doc bson.M) (primitive.ObjectID, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to create booking: %w", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

// GetAll returns every booking document.
func (r *MongoBookingRepo) GetAll() ([]bson.M, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []bson.M
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// GetByEmail returns bookings whose email field matches exactly.
func (r *MongoBookingRepo) GetByEmail(email string) ([]bson.M, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings for %s: %w", email, err)
	}
	defer cursor.Close(ctx)

	var bookings []bson.M
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// UpdateDates replaces only the check-in/check-out pair on the booking.
func (r *MongoBookingRepo) UpdateDates(id primitive.ObjectID, dates models.BookingDates) (int64, int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"checkInDate":  dates.CheckInDate,
		"checkOutDate": dates.CheckOutDate,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to update booking with id %s: %w", id.Hex(), err)
	}
	return res.MatchedCount, res.ModifiedCount, nil
}

// Delete removes the booking with the given id. A zero count means no
// booking matched; callers surface that in the acknowledgment.
func (r *MongoBookingRepo) Delete(id primitive.ObjectID) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("failed to delete booking with id %s: %w", id.Hex(), err)
	}
	return res.DeletedCount, nil
}
