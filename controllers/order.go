// controllers/order.go
package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"project-bazaar/middleware"
	"project-bazaar/models"
	"project-bazaar/utils"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OrderController handles checkout and payment verification
type OrderController struct {
	Orders         *mongo.Collection
	Users          *mongo.Collection
	PaymentService *utils.PaymentService
	EmailService   *utils.EmailService
}

// NewOrderController creates a new OrderController
func NewOrderController(client *mongo.Client, paymentService *utils.PaymentService, emailService *utils.EmailService) *OrderController {
	db := utils.Database(client)
	return &OrderController{
		Orders:         db.Collection("orders"),
		Users:          db.Collection("users"),
		PaymentService: paymentService,
		EmailService:   emailService,
	}
}

// computeTotal sums price×quantity across the cart
func computeTotal(items []models.OrderItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// resolveUserID picks the order's owner: a verified token identity wins over
// anything the client supplied; with neither, the order belongs to "guest".
func resolveUserID(claims *utils.Claims, clientUserID string) string {
	if claims != nil && claims.ID != "" {
		return claims.ID
	}
	if clientUserID != "" {
		return clientUserID
	}
	return models.GuestUserID
}

// CreateOrder computes the cart total, creates a provider-side order and
// persists a pending order under a fresh business orderId.
func (oc *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Items  []models.OrderItem `json:"items"`
		UserID string             `json:"userId"`
	}
	err := json.NewDecoder(r.Body).Decode(&input)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if len(input.Items) == 0 {
		utils.RespondError(w, http.StatusBadRequest, "Order items are required", nil)
		return
	}

	claims, _ := middleware.ClaimsFrom(r)
	userID := resolveUserID(claims, input.UserID)

	totalAmount := computeTotal(input.Items)
	orderID := uuid.NewString()

	providerOrder, err := oc.PaymentService.CreateOrder(utils.ToMinorUnits(totalAmount), "INR", orderID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to create payment order", err)
		return
	}
	razorpayOrderID, _ := providerOrder["id"].(string)

	order := models.Order{
		OrderID:         orderID,
		UserID:          userID,
		Items:           input.Items,
		TotalAmount:     totalAmount,
		RazorpayOrderID: razorpayOrderID,
		Status:          models.OrderPending,
		CreatedAt:       time.Now(),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	_, err = oc.Orders.InsertOne(ctx, order)
	if err != nil {
		// The provider order is left orphaned here; verification is keyed by
		// our orderId so a client retry starts over with a fresh one.
		utils.RespondError(w, http.StatusInternalServerError, "Failed to save order", err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"id":       razorpayOrderID,
		"currency": providerOrder["currency"],
		"amount":   providerOrder["amount"],
		"orderId":  orderID,
	})
}

// buildVerificationSet constructs the atomic update applied to an order on
// successful verification. Re-applying the same set is a no-op in effect,
// which is what makes duplicate verifications safe.
func buildVerificationSet(paymentID, resolvedUserID string, items []models.OrderItem) bson.M {
	set := bson.M{
		"status":    models.OrderCompleted,
		"paymentId": paymentID,
	}
	if resolvedUserID != "" {
		set["userId"] = resolvedUserID
	}
	if len(items) > 0 {
		set["items"] = items
	}
	return set
}

// VerifyPayment validates the Razorpay signature and transitions the order
// from pending to completed, reconciling guest orders to the caller's
// identity when a valid token is present.
func (oc *OrderController) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var input struct {
		RazorpayOrderID string             `json:"razorpay_order_id"`
		PaymentID       string             `json:"razorpay_payment_id"`
		Signature       string             `json:"razorpay_signature"`
		OrderID         string             `json:"orderId"`
		UserID          string             `json:"userId"`
		Items           []models.OrderItem `json:"items"`
	}
	err := json.NewDecoder(r.Body).Decode(&input)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if input.RazorpayOrderID == "" || input.PaymentID == "" || input.Signature == "" || input.OrderID == "" {
		utils.RespondError(w, http.StatusBadRequest, "Missing payment verification fields", nil)
		return
	}

	// Signature check comes before any database access. A forged request
	// must not cause a write.
	if !oc.PaymentService.VerifySignature(input.RazorpayOrderID, input.PaymentID, input.Signature) {
		utils.RespondError(w, http.StatusBadRequest, "Invalid payment signature", nil)
		return
	}

	// A missing or invalid token only skips the userId reconciliation; it
	// never blocks verification.
	claims, _ := middleware.ClaimsFrom(r)
	resolvedUserID := ""
	if claims != nil && claims.ID != "" {
		resolvedUserID = claims.ID
	} else if input.UserID != "" {
		resolvedUserID = input.UserID
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var order models.Order
	err = oc.Orders.FindOneAndUpdate(
		ctx,
		bson.M{"orderId": input.OrderID},
		bson.M{"$set": buildVerificationSet(input.PaymentID, resolvedUserID, input.Items)},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.RespondError(w, http.StatusNotFound, "Order not found", nil)
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Failed to update order", err)
		return
	}

	if oc.EmailService != nil && claims != nil {
		go func(email string, order models.Order) {
			if err := oc.EmailService.SendOrderConfirmationEmail(email, order); err != nil {
				log.Printf("Failed to send confirmation email to %s: %v", email, err)
			}
		}(claims.Email, order)
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Payment verified successfully",
		"order":   order,
	})
}

// GetUserOrders retrieves all orders for the authenticated user, newest first
func (oc *OrderController) GetUserOrders(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	cursor, err := oc.Orders.Find(ctx, bson.M{"userId": claims.ID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to retrieve orders", err)
		return
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error decoding orders", err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, orders)
}

// TrackOrder returns an order's status by its business orderId
func (oc *OrderController) TrackOrder(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderId"]

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	var order models.Order
	err := oc.Orders.FindOne(ctx, bson.M{"orderId": orderID}).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.RespondError(w, http.StatusNotFound, "Order not found", nil)
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Failed to retrieve order", err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"orderId":     order.OrderID,
		"status":      order.Status,
		"totalAmount": order.TotalAmount,
		"items":       order.Items,
		"createdAt":   order.CreatedAt,
	})
}
