package roomRepo

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"dreamydestiny/models"
)

// RoomRepository defines the read operations over the Rooms collection.
// Room documents have no enforced schema; they are returned as raw
// documents so that externally written fields survive the round trip.
type RoomRepository interface {
	// GetAll returns every room in store-native order.
	GetAll() ([]bson.M, error)
	// GetByPriceRange returns rooms whose price_per_night falls inside the
	// inclusive range. Open bounds are omitted from the filter.
	GetByPriceRange(rng models.PriceRange) ([]bson.M, error)
	// GetByID returns the room with the given id, or nil when no room
	// matches.
	GetByID(id primitive.ObjectID) (bson.M, error)
}
