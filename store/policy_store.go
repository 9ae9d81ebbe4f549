package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/lifesure/backend/models"
)

type PolicyStore struct {
	col *mongo.Collection
}

func NewPolicyStore(col *mongo.Collection) *PolicyStore {
	return &PolicyStore{col: col}
}

// Create stores the policy document as-is and returns the generated id.
func (s *PolicyStore) Create(ctx context.Context, policy models.Policy) (bson.ObjectID, error) {
	res, err := s.col.InsertOne(ctx, policy)
	if err != nil {
		return bson.ObjectID{}, err
	}
	id, _ := res.InsertedID.(bson.ObjectID)
	return id, nil
}

// List returns every policy. No ordering is guaranteed; in practice it is
// insertion order.
func (s *PolicyStore) List(ctx context.Context) ([]models.Policy, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	policies := make([]models.Policy, 0)
	if err := cursor.All(ctx, &policies); err != nil {
		return nil, err
	}
	return policies, nil
}

func (s *PolicyStore) GetByID(ctx context.Context, id bson.ObjectID) (*models.Policy, error) {
	var policy models.Policy
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&policy)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &policy, nil
}

// Update merges the given fields into the policy. Which fields are mutable is
// not restricted.
func (s *PolicyStore) Update(ctx context.Context, id bson.ObjectID, fields bson.M) error {
	res, err := s.col.UpdateByID(ctx, id, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the policy. Deleting an id that no longer exists is a no-op,
// not an error.
func (s *PolicyStore) Delete(ctx context.Context, id bson.ObjectID) error {
	_, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
