package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Review struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	UserEmail string        `bson:"userEmail" json:"userEmail"`
	UserName  string        `bson:"userName,omitempty" json:"userName,omitempty"`
	UserPhoto string        `bson:"userPhoto,omitempty" json:"userPhoto,omitempty"`
	Rating    int           `bson:"rating" json:"rating"`
	Message   string        `bson:"message" json:"message"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
}

type Blog struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string        `bson:"title" json:"title"`
	Author      string        `bson:"author,omitempty" json:"author,omitempty"`
	AuthorEmail string        `bson:"authorEmail,omitempty" json:"authorEmail,omitempty"`
	Content     string        `bson:"content" json:"content"`
	ImageURL    string        `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
}

type Subscription struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string        `bson:"email" json:"email"`
	Name      string        `bson:"name,omitempty" json:"name,omitempty"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
}

type AgentApplicationStatus string

const (
	AgentApplicationPending  AgentApplicationStatus = "pending"
	AgentApplicationApproved AgentApplicationStatus = "approved"
	AgentApplicationRejected AgentApplicationStatus = "rejected"
)

type AgentApplication struct {
	ID         bson.ObjectID          `bson:"_id,omitempty" json:"id"`
	UserEmail  string                 `bson:"userEmail" json:"userEmail"`
	UserName   string                 `bson:"userName,omitempty" json:"userName,omitempty"`
	Experience string                 `bson:"experience,omitempty" json:"experience,omitempty"`
	Specialty  string                 `bson:"specialty,omitempty" json:"specialty,omitempty"`
	Status     AgentApplicationStatus `bson:"status" json:"status"`
	CreatedAt  time.Time              `bson:"createdAt" json:"createdAt"`
}
