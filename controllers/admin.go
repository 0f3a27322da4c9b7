package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"project-bazaar/models"
	"project-bazaar/utils"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AdminController handles the admin dashboard endpoints
type AdminController struct {
	Orders         *mongo.Collection
	Users          *mongo.Collection
	CustomRequests *mongo.Collection
	Actions        *mongo.Collection
}

// NewAdminController creates a new AdminController
func NewAdminController(client *mongo.Client) *AdminController {
	db := utils.Database(client)
	return &AdminController{
		Orders:         db.Collection("orders"),
		Users:          db.Collection("users"),
		CustomRequests: db.Collection("customrequests"),
		Actions:        db.Collection("adminactions"),
	}
}

func (ac *AdminController) listCollection(w http.ResponseWriter, r *http.Request, coll *mongo.Collection, out interface{}) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	cursor, err := coll.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to retrieve records", err)
		return
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, out); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error decoding records", err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, out)
}

// GetOrders retrieves all orders
func (ac *AdminController) GetOrders(w http.ResponseWriter, r *http.Request) {
	orders := []models.Order{}
	ac.listCollection(w, r, ac.Orders, &orders)
}

// GetCustomRequests retrieves all custom project requests
func (ac *AdminController) GetCustomRequests(w http.ResponseWriter, r *http.Request) {
	requests := []models.CustomRequest{}
	ac.listCollection(w, r, ac.CustomRequests, &requests)
}

// GetUsers retrieves all users. Credential fields never serialize.
func (ac *AdminController) GetUsers(w http.ResponseWriter, r *http.Request) {
	users := []models.User{}
	ac.listCollection(w, r, ac.Users, &users)
}

// GetStats returns collection counts and completed-order revenue
func (ac *AdminController) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	orderCount, err := ac.Orders.CountDocuments(ctx, bson.M{})
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to compute stats", err)
		return
	}
	userCount, err := ac.Users.CountDocuments(ctx, bson.M{})
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to compute stats", err)
		return
	}
	requestCount, err := ac.CustomRequests.CountDocuments(ctx, bson.M{})
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to compute stats", err)
		return
	}

	revenue := 0.0
	cursor, err := ac.Orders.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": models.OrderCompleted}}},
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$totalAmount"}}}},
	})
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to compute stats", err)
		return
	}
	defer cursor.Close(ctx)
	var agg []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &agg); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to compute stats", err)
		return
	}
	if len(agg) > 0 {
		revenue = agg[0].Total
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"orders":         orderCount,
		"users":          userCount,
		"customRequests": requestCount,
		"revenue":        revenue,
	})
}

// UpdateCustomRequest updates a custom request's status
func (ac *AdminController) UpdateCustomRequest(w http.ResponseWriter, r *http.Request) {
	requestID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request ID", err)
		return
	}

	var input struct {
		Status string `json:"status"`
	}
	err = json.NewDecoder(r.Body).Decode(&input)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if !models.ValidRequestStatus(input.Status) {
		utils.RespondError(w, http.StatusBadRequest, "Invalid status", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	var request models.CustomRequest
	err = ac.CustomRequests.FindOneAndUpdate(
		ctx,
		bson.M{"_id": requestID},
		bson.M{"$set": bson.M{"status": input.Status}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&request)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.RespondError(w, http.StatusNotFound, "Custom request not found", nil)
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Failed to update custom request", err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, request)
}

// nextItemStatus decides how the target entity's status field follows an
// admin action. Completing an item always marks it completed; un-completing
// reverts only custom requests back to pending. Orders stay completed, which
// mirrors how the dashboard has always behaved.
func nextItemStatus(itemType, currentStatus string, isCompleted bool) (string, bool) {
	if isCompleted && currentStatus != "completed" {
		return "completed", true
	}
	if !isCompleted && currentStatus == "completed" && itemType == models.ItemTypeCustom {
		return models.RequestPending, true
	}
	return "", false
}

// UpsertAction records an admin's completion marker for an order or custom
// request and keeps the target's status field in sync with it.
func (ac *AdminController) UpsertAction(w http.ResponseWriter, r *http.Request) {
	var input struct {
		UserID      string `json:"userId"`
		ItemID      string `json:"itemId"`
		ItemType    string `json:"itemType"`
		IsCompleted bool   `json:"isCompleted"`
	}
	err := json.NewDecoder(r.Body).Decode(&input)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if input.UserID == "" || input.ItemID == "" {
		utils.RespondError(w, http.StatusBadRequest, "userId and itemId are required", nil)
		return
	}
	if input.ItemType != models.ItemTypeOrder && input.ItemType != models.ItemTypeCustom {
		utils.RespondError(w, http.StatusBadRequest, "itemType must be \"order\" or \"custom\"", nil)
		return
	}

	itemID, err := primitive.ObjectIDFromHex(input.ItemID)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid item ID", err)
		return
	}

	target := ac.Orders
	if input.ItemType == models.ItemTypeCustom {
		target = ac.CustomRequests
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var item struct {
		Status string `bson:"status"`
	}
	err = target.FindOne(ctx, bson.M{"_id": itemID}).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.RespondError(w, http.StatusNotFound, "Item not found", nil)
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Failed to look up item", err)
		return
	}

	filter := bson.M{
		"userId":   input.UserID,
		"itemId":   input.ItemID,
		"itemType": input.ItemType,
	}
	var action models.AdminAction
	err = ac.Actions.FindOneAndUpdate(
		ctx,
		filter,
		bson.M{"$set": bson.M{
			"isCompleted": input.IsCompleted,
			"actionDate":  time.Now(),
		}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&action)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to save admin action", err)
		return
	}

	if status, changed := nextItemStatus(input.ItemType, item.Status, input.IsCompleted); changed {
		_, err = target.UpdateOne(ctx, bson.M{"_id": itemID}, bson.M{"$set": bson.M{"status": status}})
		if err != nil {
			utils.RespondError(w, http.StatusInternalServerError, "Failed to update item status", err)
			return
		}
	}

	utils.RespondJSON(w, http.StatusOK, action)
}

// GetActions lists admin action records, optionally filtered by itemId
func (ac *AdminController) GetActions(w http.ResponseWriter, r *http.Request) {
	filter := bson.M{}
	if itemID := r.URL.Query().Get("itemId"); itemID != "" {
		filter["itemId"] = itemID
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	cursor, err := ac.Actions.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "actionDate", Value: -1}}))
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to retrieve actions", err)
		return
	}
	defer cursor.Close(ctx)

	actions := []models.AdminAction{}
	if err := cursor.All(ctx, &actions); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error decoding actions", err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, actions)
}
