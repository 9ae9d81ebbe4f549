package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Booking links a user to a policy through BookingPolicyID, which is kept as
// the policy id's hex string. Status is free text and compared
// case-insensitively ("active" vs "Active") wherever it matters.
type Booking struct {
	ID              bson.ObjectID `bson:"_id,omitempty" json:"id"`
	BookingPolicyID PolicyRef     `bson:"bookingPolicyId" json:"bookingPolicyId"`
	UserEmail       string        `bson:"userEmail" json:"userEmail"`
	UserName        string        `bson:"userName,omitempty" json:"userName,omitempty"`
	Status          string        `bson:"status" json:"status"`
	PaymentStatus   string        `bson:"paymentStatus,omitempty" json:"paymentStatus,omitempty"`
	NextPaymentDate *time.Time    `bson:"nextPaymentDate,omitempty" json:"nextPaymentDate,omitempty"`
	AdminFeedback   string        `bson:"adminFeedback,omitempty" json:"adminFeedback,omitempty"`
	CreatedAt       time.Time     `bson:"createdAt" json:"createdAt"`
}

// BookingWithPolicy is the shape produced by the booking↔policy join
// pipelines: the booking document plus its resolved policy.
type BookingWithPolicy struct {
	Booking `bson:",inline"`
	Policy  Policy `bson:"policyInfo" json:"policyInfo"`
}

// TopPolicy is one row of the top-booked-policies aggregation.
type TopPolicy struct {
	PolicyID      bson.ObjectID `bson:"policyId" json:"policyId"`
	TotalBookings int64         `bson:"totalBookings" json:"totalBookings"`
	Name          string        `bson:"name" json:"name"`
	Category      string        `bson:"category" json:"category"`
	Image         string        `bson:"image" json:"image"`
	Premium       float64       `bson:"premium" json:"premium"`
	CoverageRange string        `bson:"coverageRange" json:"coverageRange"`
}

// ClaimableBooking is the reduced projection served to the claim page.
type ClaimableBooking struct {
	BookingID       bson.ObjectID `bson:"_id" json:"bookingId"`
	BookingPolicyID PolicyRef     `bson:"bookingPolicyId" json:"bookingPolicyId"`
	UserEmail       string        `bson:"userEmail" json:"userEmail"`
	Status          string        `bson:"status" json:"status"`
	PolicyTitle     string        `bson:"policyTitle" json:"policyTitle"`
	BasePremium     float64       `bson:"basePremium" json:"basePremium"`
	ImageURL        string        `bson:"imageUrl" json:"imageUrl"`
}
