package database

import (
	"context"
	"log"
	"os"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// Connect opens the single client the whole process shares. Called once at
// startup, before any route is registered.
func Connect(ctx context.Context) (*mongo.Client, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	uri := os.Getenv("MONGODB_URI")
	opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}
	log.Println("Pinged your deployment. You successfully connected to MongoDB!")
	return client, nil
}

// Store holds every collection handle. Built once from the shared client and
// passed explicitly to the accessors; nothing reaches for collections through
// package globals.
type Store struct {
	Users             *mongo.Collection
	Policies          *mongo.Collection
	Bookings          *mongo.Collection
	Claims            *mongo.Collection
	Transactions      *mongo.Collection
	Reviews           *mongo.Collection
	Blogs             *mongo.Collection
	Subscriptions     *mongo.Collection
	AgentApplications *mongo.Collection
}

func NewStore(client *mongo.Client) *Store {
	db := client.Database(os.Getenv("DATABASE_NAME"))
	return &Store{
		Users:             db.Collection("users"),
		Policies:          db.Collection("policies"),
		Bookings:          db.Collection("bookings"),
		Claims:            db.Collection("claims"),
		Transactions:      db.Collection("transactions"),
		Reviews:           db.Collection("reviews"),
		Blogs:             db.Collection("blogs"),
		Subscriptions:     db.Collection("subscriptions"),
		AgentApplications: db.Collection("agent_applications"),
	}
}

// EnsureIndexes creates the unique indexes the write paths rely on: the
// subscription duplicate-email 409 and the login upsert both need a unique
// email per collection. CreateOne is idempotent for an identical existing
// index, so this runs on every startup.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	uniqueEmail := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := s.Subscriptions.Indexes().CreateOne(ctx, uniqueEmail); err != nil {
		return err
	}
	if _, err := s.Users.Indexes().CreateOne(ctx, uniqueEmail); err != nil {
		return err
	}
	return nil
}
