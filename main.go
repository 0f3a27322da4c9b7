// main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"project-bazaar/controllers"
	"project-bazaar/middleware"
	"project-bazaar/routes"
	"project-bazaar/utils"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	// Set the JWT secret key
	utils.JwtKey = []byte(os.Getenv("JWT_SECRET"))

	// Initialize services
	paymentService := utils.NewPaymentService()
	emailService := utils.NewEmailService()

	// Connect to MongoDB
	client := utils.ConnectDB()
	defer func() {
		if err = client.Disconnect(context.TODO()); err != nil {
			log.Fatal(err)
		}
	}()
	if err := utils.EnsureIndexes(client); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	// Initialize controllers
	userController := controllers.NewUserController(client)
	orderController := controllers.NewOrderController(client, paymentService, emailService)
	customController := controllers.NewCustomRequestController(client)
	adminController := controllers.NewAdminController(client)
	adminGuard := middleware.NewAdminGuard(client)

	// Set up the router
	router := mux.NewRouter()

	// Resolve the optional caller identity once for every request
	router.Use(middleware.Identity)

	// Register routes
	routes.RegisterRoutes(router, userController, orderController, customController, adminController, adminGuard)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	fmt.Printf("Server is running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
