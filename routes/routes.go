// routes/routes.go
package routes

import (
	"project-bazaar/controllers"
	"project-bazaar/middleware"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(
	router *mux.Router,
	userController *controllers.UserController,
	orderController *controllers.OrderController,
	customController *controllers.CustomRequestController,
	adminController *controllers.AdminController,
	adminGuard *middleware.AdminGuard,
) {
	api := router.PathPrefix("/api").Subrouter()

	// Public routes
	api.HandleFunc("/auth/register", userController.Register).Methods("POST")
	api.HandleFunc("/auth/login", userController.Login).Methods("POST")
	api.HandleFunc("/create-order", orderController.CreateOrder).Methods("POST")
	api.HandleFunc("/verify-payment", orderController.VerifyPayment).Methods("POST")
	api.HandleFunc("/custom-requests", customController.CreateCustomRequest).Methods("POST")
	api.HandleFunc("/orders/track/{orderId}", orderController.TrackOrder).Methods("GET")

	// Protected routes
	protected := api.PathPrefix("/").Subrouter()
	protected.Use(middleware.RequireAuth)
	protected.HandleFunc("/auth/profile", userController.GetProfile).Methods("GET")
	protected.HandleFunc("/orders/user-orders", orderController.GetUserOrders).Methods("GET")

	// Admin routes
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(adminGuard.AdminOnly)
	admin.HandleFunc("/orders", adminController.GetOrders).Methods("GET")
	admin.HandleFunc("/custom-requests", adminController.GetCustomRequests).Methods("GET")
	admin.HandleFunc("/custom-requests/{id}", adminController.UpdateCustomRequest).Methods("PUT")
	admin.HandleFunc("/users", adminController.GetUsers).Methods("GET")
	admin.HandleFunc("/stats", adminController.GetStats).Methods("GET")
	admin.HandleFunc("/actions", adminController.UpsertAction).Methods("POST")
	admin.HandleFunc("/actions", adminController.GetActions).Methods("GET")
}
