package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminAction item types
const (
	ItemTypeOrder  = "order"
	ItemTypeCustom = "custom"
)

// AdminAction is a per-reviewer completion marker for an order or custom
// request. It is unique per (userId, itemId, itemType); re-invoking the
// action updates the existing record.
type AdminAction struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID      string             `bson:"userId" json:"userId"`
	ItemID      string             `bson:"itemId" json:"itemId"`
	ItemType    string             `bson:"itemType" json:"itemType"` // "order" or "custom"
	IsCompleted bool               `bson:"isCompleted" json:"isCompleted"`
	ActionDate  time.Time          `bson:"actionDate" json:"actionDate"`
}
