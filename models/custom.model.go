package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CustomRequest status values
const (
	RequestPending   = "pending"
	RequestReviewing = "reviewing"
	RequestAccepted  = "accepted"
	RequestRejected  = "rejected"
	RequestCompleted = "completed"
)

// CustomRequest is a visitor-submitted request for a bespoke project
type CustomRequest struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	Phone        string             `bson:"phone,omitempty" json:"phone,omitempty"`
	ProjectType  string             `bson:"projectType" json:"projectType"`
	Category     string             `bson:"category,omitempty" json:"category,omitempty"`
	Description  string             `bson:"description" json:"description"`
	Budget       string             `bson:"budget,omitempty" json:"budget,omitempty"`
	Timeline     string             `bson:"timeline,omitempty" json:"timeline,omitempty"`
	Requirements string             `bson:"requirements,omitempty" json:"requirements,omitempty"`
	Status       string             `bson:"status" json:"status"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

// ValidRequestStatus reports whether s is a known custom-request status
func ValidRequestStatus(s string) bool {
	switch s {
	case RequestPending, RequestReviewing, RequestAccepted, RequestRejected, RequestCompleted:
		return true
	}
	return false
}
