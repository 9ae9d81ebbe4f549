package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/lifesure/backend/models"
)

type PaymentStore struct {
	bookings     *mongo.Collection
	transactions *mongo.Collection
}

func NewPaymentStore(bookings, transactions *mongo.Collection) *PaymentStore {
	return &PaymentStore{bookings: bookings, transactions: transactions}
}

// FindBookingByRef looks a booking up by its policy-link field, the key the
// payment callback carries as orderId.
func (s *PaymentStore) FindBookingByRef(ctx context.Context, ref models.PolicyRef) (*models.Booking, error) {
	var booking models.Booking
	err := s.bookings.FindOne(ctx, bson.M{"bookingPolicyId": ref}).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// MarkBookingPaid sets the payment status and the next due date on the
// booking identified by its policy link.
func (s *PaymentStore) MarkBookingPaid(ctx context.Context, ref models.PolicyRef, nextPaymentDate time.Time) error {
	res, err := s.bookings.UpdateOne(ctx,
		bson.M{"bookingPolicyId": ref},
		bson.M{"$set": bson.M{
			"paymentStatus":   "Paid",
			"nextPaymentDate": nextPaymentDate,
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AppendTransaction records a confirmed payment. Append-only; there is no
// dedup, so a replayed confirmation appends a second record.
func (s *PaymentStore) AppendTransaction(ctx context.Context, tx models.Transaction) (bson.ObjectID, error) {
	res, err := s.transactions.InsertOne(ctx, tx)
	if err != nil {
		return bson.ObjectID{}, err
	}
	id, _ := res.InsertedID.(bson.ObjectID)
	return id, nil
}

func (s *PaymentStore) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	cursor, err := s.transactions.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	txs := make([]models.Transaction, 0)
	if err := cursor.All(ctx, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}
