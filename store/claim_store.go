package store

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/lifesure/backend/models"
)

type ClaimStore struct {
	col *mongo.Collection
}

func NewClaimStore(col *mongo.Collection) *ClaimStore {
	return &ClaimStore{col: col}
}

// Create inserts the claim as-is. Eligibility of the referenced booking is
// not checked here; the claimable-bookings query is read-side only.
func (s *ClaimStore) Create(ctx context.Context, claim models.Claim) (bson.ObjectID, error) {
	res, err := s.col.InsertOne(ctx, claim)
	if err != nil {
		return bson.ObjectID{}, err
	}
	id, _ := res.InsertedID.(bson.ObjectID)
	return id, nil
}
