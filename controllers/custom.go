package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"project-bazaar/models"
	"project-bazaar/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CustomRequestController handles custom project request submissions
type CustomRequestController struct {
	Collection *mongo.Collection
}

// NewCustomRequestController creates a new CustomRequestController
func NewCustomRequestController(client *mongo.Client) *CustomRequestController {
	return &CustomRequestController{
		Collection: utils.Database(client).Collection("customrequests"),
	}
}

// CreateCustomRequest handles a public custom project submission
func (crc *CustomRequestController) CreateCustomRequest(w http.ResponseWriter, r *http.Request) {
	var request models.CustomRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid input", err)
		return
	}

	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	if request.Name == "" || request.Email == "" || request.ProjectType == "" || request.Description == "" {
		utils.RespondError(w, http.StatusBadRequest, "Name, email, project type and description are required", nil)
		return
	}

	request.ID = primitive.NilObjectID
	request.Status = models.RequestPending
	request.CreatedAt = time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	result, err := crc.Collection.InsertOne(ctx, request)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error saving custom request", err)
		return
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Custom request submitted successfully",
		"id":      result.InsertedID,
	})
}
