package reviewRepo

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReviewRepository defines the operations over the reviews collection.
// Reviews are write-only through this API; no endpoint reads them back.
type ReviewRepository interface {
	// Insert stores the document verbatim and returns the assigned id.
	Insert(doc bson.M) (primitive.ObjectID, error)
}
