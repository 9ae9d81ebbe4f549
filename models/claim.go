package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Claim is append-only. Nothing checks at write time that the referenced
// booking is actually claim-eligible; eligibility lives in the read-side
// claimable-bookings query only.
type Claim struct {
	ID             bson.ObjectID `bson:"_id,omitempty" json:"id"`
	UserEmail      string        `bson:"userEmail" json:"userEmail"`
	PolicyID       PolicyRef     `bson:"policyId,omitempty" json:"policyId,omitempty"`
	PolicyTitle    string        `bson:"policyTitle,omitempty" json:"policyTitle,omitempty"`
	Reason         string        `bson:"reason" json:"reason"`
	Status         string        `bson:"status" json:"status"`
	MonthlyPremium float64       `bson:"monthlyPremium,omitempty" json:"monthlyPremium,omitempty"`
	CreatedAt      time.Time     `bson:"createdAt" json:"createdAt"`
}
