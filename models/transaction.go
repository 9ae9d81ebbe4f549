package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Transaction is an append-only record of a confirmed gateway payment.
// OrderID matches the paid booking's bookingPolicyId.
type Transaction struct {
	ID              bson.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderID         PolicyRef     `bson:"orderId" json:"orderId"`
	UserEmail       string        `bson:"userEmail" json:"userEmail"`
	Amount          float64       `bson:"amount" json:"amount"`
	TransactionID   string        `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	PaymentMethod   string        `bson:"paymentMethod,omitempty" json:"paymentMethod,omitempty"`
	CreatedAt       time.Time     `bson:"createdAt" json:"createdAt"`
	NextPaymentDate time.Time     `bson:"nextPaymentDate" json:"nextPaymentDate"`
}
