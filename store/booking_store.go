package store

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/lifesure/backend/models"
)

type BookingStore struct {
	col *mongo.Collection
}

func NewBookingStore(col *mongo.Collection) *BookingStore {
	return &BookingStore{col: col}
}

// Create inserts the booking as-is. There is no duplicate check against the
// (policy, email) pair here; callers use CheckAvailability for that.
func (s *BookingStore) Create(ctx context.Context, booking models.Booking) (bson.ObjectID, error) {
	res, err := s.col.InsertOne(ctx, booking)
	if err != nil {
		return bson.ObjectID{}, err
	}
	id, _ := res.InsertedID.(bson.ObjectID)
	return id, nil
}

// CheckAvailability reports whether a booking already exists for this exact
// policy + email pair. A match on only one of the two fields does not count.
func (s *BookingStore) CheckAvailability(ctx context.Context, policyRef models.PolicyRef, email string) (bool, error) {
	count, err := s.col.CountDocuments(ctx, bson.M{
		"bookingPolicyId": policyRef,
		"userEmail":       email,
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *BookingStore) TopPolicies(ctx context.Context, limit int) ([]models.TopPolicy, error) {
	cursor, err := s.col.Aggregate(ctx, topPoliciesPipeline(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	top := make([]models.TopPolicy, 0)
	if err := cursor.All(ctx, &top); err != nil {
		return nil, err
	}
	return top, nil
}

// AllWithPolicy joins every booking to its policy. Bookings whose link does
// not resolve are dropped by the join.
func (s *BookingStore) AllWithPolicy(ctx context.Context) ([]models.BookingWithPolicy, error) {
	return s.aggregateJoined(ctx, nil)
}

// DetailFor returns the joined booking for one user + policy pair.
func (s *BookingStore) DetailFor(ctx context.Context, email string, policyRef models.PolicyRef) (*models.BookingWithPolicy, error) {
	joined, err := s.aggregateJoined(ctx, bson.M{
		"userEmail":       email,
		"bookingPolicyId": policyRef,
	})
	if err != nil {
		return nil, err
	}
	if len(joined) == 0 {
		return nil, ErrNotFound
	}
	return &joined[0], nil
}

// MyPolicies joins all of a user's bookings to their policies.
func (s *BookingStore) MyPolicies(ctx context.Context, email string) ([]models.BookingWithPolicy, error) {
	return s.aggregateJoined(ctx, bson.M{"userEmail": email})
}

// ActiveClaimable lists the user's bookings eligible for a claim: status
// equal to "active" ignoring case, joined to the policy.
func (s *BookingStore) ActiveClaimable(ctx context.Context, email string) ([]models.ClaimableBooking, error) {
	cursor, err := s.col.Aggregate(ctx, claimableBookingsPipeline(email))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	claimable := make([]models.ClaimableBooking, 0)
	if err := cursor.All(ctx, &claimable); err != nil {
		return nil, err
	}
	return claimable, nil
}

// UpdateStatus lower-cases the status before storing and only touches the
// feedback field when feedback is non-nil. ErrUnchanged means the booking was
// already in that state.
func (s *BookingStore) UpdateStatus(ctx context.Context, id bson.ObjectID, status string, feedback *string) error {
	set := bson.M{"status": strings.ToLower(status)}
	if feedback != nil {
		set["adminFeedback"] = *feedback
	}

	res, err := s.col.UpdateByID(ctx, id, bson.M{"$set": set})
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

func (s *BookingStore) aggregateJoined(ctx context.Context, match bson.M) ([]models.BookingWithPolicy, error) {
	cursor, err := s.col.Aggregate(ctx, bookingsWithPolicyPipeline(match))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	joined := make([]models.BookingWithPolicy, 0)
	if err := cursor.All(ctx, &joined); err != nil {
		return nil, err
	}
	return joined, nil
}
