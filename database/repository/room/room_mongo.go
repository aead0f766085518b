package roomRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"dreamydestiny/models"
)

// MongoRoomRepo implements RoomRepository using MongoDB.
type MongoRoomRepo struct {
	coll *mongo.Collection
}

// NewMongoRoomRepo creates a new RoomRepository over the Rooms collection.
func NewMongoRoomRepo(db *mongo.Database) RoomRepository {
	return &MongoRoomRepo{coll: db.Collection("Rooms")}
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// GetAll returns every room document in store-native order.
func (r *MongoRoomRepo) GetAll() ([]bson.M, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve rooms: %w", err)
	}
	defer cursor.Close(ctx)

	var rooms []bson.M
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, fmt.Errorf("failed to decode rooms: %w", err)
	}
	return rooms, nil
}

// GetByPriceRange returns rooms whose price_per_night falls inside the
// inclusive range.
func (r *MongoRoomRepo) GetByPriceRange(rng models.PriceRange) ([]bson.M, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	price := bson.M{}
	if rng.Min != nil {
		price["$gte"] = *rng.Min
	}
	if rng.Max != nil {
		price["$lte"] = *rng.Max
	}
	if len(price) > 0 {
		filter["price_per_night"] = price
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve rooms by price: %w", err)
	}
	defer cursor.Close(ctx)

	var rooms []bson.M
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, fmt.Errorf("failed to decode rooms: %w", err)
	}
	return rooms, nil
}

// GetByID returns the room with the given id, or nil when no room matches.
func (r *MongoRoomRepo) GetByID(id primitive.ObjectID) (bson.M, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var room bson.M
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&room); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch room with id %s: %w", id.Hex(), err)
	}
	return room, nil
}
