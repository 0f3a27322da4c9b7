package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"project-bazaar/models"
	"project-bazaar/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Key type for context
type contextKey string

const UserContextKey = contextKey("user")

// Identity resolves the optional caller identity for every request: the
// Authorization header is tried first, then the "token" cookie. A missing or
// invalid token leaves the identity absent rather than failing the request;
// handlers that need one wrap themselves in RequireAuth.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := ""

		authHeader := r.Header.Get("Authorization")
		if parts := strings.Split(authHeader, " "); len(parts) == 2 && parts[0] == "Bearer" {
			tokenStr = parts[1]
		}
		if tokenStr == "" {
			if cookie, err := r.Cookie("token"); err == nil {
				tokenStr = cookie.Value
			}
		}

		if tokenStr != "" {
			if claims, err := utils.ParseToken(tokenStr); err == nil {
				ctx := context.WithValue(r.Context(), UserContextKey, claims)
				r = r.WithContext(ctx)
			}
		}
		next.ServeHTTP(w, r)
	})
}

// ClaimsFrom returns the resolved identity for the request, if any
func ClaimsFrom(r *http.Request) (*utils.Claims, bool) {
	claims, ok := r.Context().Value(UserContextKey).(*utils.Claims)
	return claims, ok
}

// RequireAuth rejects requests that carry no resolved identity
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ClaimsFrom(r); !ok {
			utils.RespondError(w, http.StatusUnauthorized, "Authentication required", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// AdminGuard checks the caller's role against the users collection. Tokens
// carry only id and email, so the role is resolved per request.
type AdminGuard struct {
	Users *mongo.Collection
}

// NewAdminGuard creates an AdminGuard backed by the users collection
func NewAdminGuard(client *mongo.Client) *AdminGuard {
	return &AdminGuard{Users: utils.Database(client).Collection("users")}
}

// AdminOnly ensures the resolved identity belongs to an admin user
func (g *AdminGuard) AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFrom(r)
		if !ok {
			utils.RespondError(w, http.StatusUnauthorized, "Authentication required", nil)
			return
		}

		userID, err := primitive.ObjectIDFromHex(claims.ID)
		if err != nil {
			utils.RespondError(w, http.StatusForbidden, "Forbidden: Admins only", nil)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()
		var user models.User
		err = g.Users.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
		if err != nil || user.Role != "admin" {
			utils.RespondError(w, http.StatusForbidden, "Forbidden: Admins only", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}
