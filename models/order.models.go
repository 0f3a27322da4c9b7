package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order status values
const (
	OrderPending    = "pending"
	OrderProcessing = "processing"
	OrderCompleted  = "completed"
	OrderFailed     = "failed"
)

// GuestUserID marks orders placed without a resolved identity
const GuestUserID = "guest"

// OrderItem is a purchased project template, snapshotted at checkout
type OrderItem struct {
	ProductID     string  `bson:"productId" json:"productId"`
	Title         string  `bson:"title" json:"title"`
	Price         float64 `bson:"price" json:"price"`
	Quantity      int     `bson:"quantity" json:"quantity"`
	Customization string  `bson:"customization,omitempty" json:"customization,omitempty"`
	Category      string  `bson:"category,omitempty" json:"category,omitempty"`
	Subcategory   string  `bson:"subcategory,omitempty" json:"subcategory,omitempty"`
	Image         string  `bson:"image,omitempty" json:"image,omitempty"`
}

// Order represents a customer order. OrderID is the business key, generated
// at checkout and independent of the Mongo _id.
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	OrderID         string             `bson:"orderId" json:"orderId"`
	UserID          string             `bson:"userId" json:"userId"`
	Items           []OrderItem        `bson:"items" json:"items"`
	TotalAmount     float64            `bson:"totalAmount" json:"totalAmount"`
	RazorpayOrderID string             `bson:"razorpayOrderId" json:"razorpayOrderId"`
	PaymentID       string             `bson:"paymentId,omitempty" json:"paymentId,omitempty"`
	Status          string             `bson:"status" json:"status"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}
