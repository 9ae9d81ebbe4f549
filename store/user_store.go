package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/lifesure/backend/models"
)

type UserStore struct {
	col *mongo.Collection
}

func NewUserStore(col *mongo.Collection) *UserStore {
	return &UserStore{col: col}
}

// UpsertOnLogin is a single atomic upsert keyed on email: first login creates
// the user with the customer role and a creation time, every login refreshes
// the profile and lastLoginAt. Concurrent first logins for one email cannot
// produce two records.
func (s *UserStore) UpsertOnLogin(ctx context.Context, email, name, photoURL string) (created bool, err error) {
	now := time.Now().UTC()

	set := bson.M{"lastLoginAt": now}
	if name != "" {
		set["name"] = name
	}
	if photoURL != "" {
		set["photoURL"] = photoURL
	}

	update := bson.M{
		"$set": set,
		"$setOnInsert": bson.M{
			"email":     email,
			"role":      models.RoleCustomer,
			"createdAt": now,
		},
	}

	opts := options.UpdateOne().SetUpsert(true)
	res, err := s.col.UpdateOne(ctx, bson.M{"email": email}, update, opts)
	if err != nil {
		return false, err
	}
	return res.UpsertedCount == 1, nil
}

func (s *UserStore) List(ctx context.Context) ([]models.User, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := make([]models.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateRole distinguishes "no such user" (ErrNotFound) from "already holds
// that role" (ErrUnchanged). Role validity is the caller's job.
func (s *UserStore) UpdateRole(ctx context.Context, id bson.ObjectID, role models.Role) error {
	res, err := s.col.UpdateByID(ctx, id, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	if res.ModifiedCount == 0 {
		return ErrUnchanged
	}
	return nil
}

func (s *UserStore) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
