package bookingRepo

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"dreamydestiny/models"
)

// BookingRepository defines the operations over the bookings collection.
// Booking documents are stored exactly as submitted by the client.
type BookingRepository interface {
	// Insert stores the document verbatim and returns the assigned id.
	Insert(doc bson.M) (primitive.ObjectID, error)
	// GetAll returns every booking in the collection.
	GetAll() ([]bson.M, error)
	// GetByEmail returns bookings whose email field matches exactly.
	GetByEmail(email string) ([]bson.M, error)
	// UpdateDates replaces only the check-in/check-out pair on the booking
	// with the given id and reports matched/modified counts.
	UpdateDates(id primitive.ObjectID, dates models.BookingDates) (matched, modified int64, err error)
	// Delete removes the booking with the given id and reports how many
	// documents were removed (0 when nothing matched).
	Delete(id primitive.ObjectID) (int64, error)
}
