package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// InsertAck mirrors the driver's insert acknowledgment returned to clients.
type InsertAck struct {
	Acknowledged bool               `json:"acknowledged"`
	InsertedID   primitive.ObjectID `json:"insertedId"`
}

// UpdateAck mirrors the driver's update acknowledgment returned to clients.
type UpdateAck struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteAck mirrors the driver's delete acknowledgment returned to clients.
// DeletedCount is 0 when nothing matched; that is not an error.
type DeleteAck struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}
