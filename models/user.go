package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleAgent    Role = "agent"
	RoleCustomer Role = "customer"
)

// ValidRole reports whether r is one of the three roles a user may hold.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleAgent, RoleCustomer:
		return true
	}
	return false
}

type User struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Email       string        `bson:"email" json:"email"`
	Name        string        `bson:"name,omitempty" json:"name,omitempty"`
	PhotoURL    string        `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
	Role        Role          `bson:"role" json:"role"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
	LastLoginAt time.Time     `bson:"lastLoginAt" json:"lastLoginAt"`
}
