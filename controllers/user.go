package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"project-bazaar/middleware"
	"project-bazaar/models"
	"project-bazaar/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserController handles registration, login and profile requests
type UserController struct {
	Collection *mongo.Collection
}

// NewUserController creates a new UserController
func NewUserController(client *mongo.Client) *UserController {
	return &UserController{
		Collection: utils.Database(client).Collection("users"),
	}
}

// Register handles user registration
func (uc *UserController) Register(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	err := json.NewDecoder(r.Body).Decode(&input)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid input", err)
		return
	}

	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if input.Name == "" || input.Email == "" || input.Password == "" {
		utils.RespondError(w, http.StatusBadRequest, "Name, email and password are required", nil)
		return
	}

	// Check if user already exists
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	count, err := uc.Collection.CountDocuments(ctx, bson.M{"email": input.Email})
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Database error", err)
		return
	}
	if count > 0 {
		utils.RespondError(w, http.StatusConflict, "User already exists", nil)
		return
	}

	salt, err := utils.GenerateSalt()
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error hashing password", err)
		return
	}

	user := models.User{
		Name:      input.Name,
		Email:     input.Email,
		Salt:      salt,
		Hash:      utils.HashPassword(input.Password, salt),
		Role:      "user",
		CreatedAt: time.Now(),
	}

	_, err = uc.Collection.InsertOne(ctx, user)
	if err != nil {
		// The unique index catches registrations racing on the same email
		if mongo.IsDuplicateKeyError(err) {
			utils.RespondError(w, http.StatusConflict, "User already exists", nil)
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Error creating user", err)
		return
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]string{
		"message": "User registered successfully",
	})
}

// Login handles user authentication
func (uc *UserController) Login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	err := json.NewDecoder(r.Body).Decode(&creds)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid input", err)
		return
	}
	creds.Email = strings.ToLower(strings.TrimSpace(creds.Email))

	// Unknown email and wrong password produce the identical response so the
	// endpoint cannot be used to enumerate accounts.
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	var user models.User
	err = uc.Collection.FindOne(ctx, bson.M{"email": creds.Email}).Decode(&user)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, "Invalid email or password", nil)
		return
	}

	if !utils.VerifyPassword(creds.Password, user.Salt, user.Hash) {
		utils.RespondError(w, http.StatusUnauthorized, "Invalid email or password", nil)
		return
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error generating token", err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(7 * 24 * time.Hour),
		HttpOnly: true,
	})

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user": map[string]string{
			"id":    user.ID.Hex(),
			"name":  user.Name,
			"email": user.Email,
		},
	})
}

// GetProfile retrieves the authenticated user's profile
func (uc *UserController) GetProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	userID, err := primitive.ObjectIDFromHex(claims.ID)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, "Invalid token subject", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	var user models.User
	err = uc.Collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, "User not found", nil)
		return
	}

	utils.RespondJSON(w, http.StatusOK, user)
}
