// utils/email.go
package utils

import (
	"fmt"
	"log"
	"os"

	"project-bazaar/models"

	"github.com/keighl/postmark"
)

// EmailService handles sending emails using Postmark
type EmailService struct {
	client *postmark.Client
}

// NewEmailService initializes the EmailService. Returns nil when no Postmark
// token is configured; callers treat a nil service as mail disabled.
func NewEmailService() *EmailService {
	apiToken := os.Getenv("POSTMARK_API_TOKEN")
	if apiToken == "" {
		log.Println("POSTMARK_API_TOKEN not set, order emails disabled")
		return nil
	}
	return &EmailService{
		client: postmark.NewClient(apiToken, ""),
	}
}

// SendEmail sends a basic email to the specified recipient
func (es *EmailService) SendEmail(toEmail, subject, htmlContent string) error {
	_, err := es.client.SendEmail(postmark.Email{
		From:     os.Getenv("EMAIL_SENDER"),
		To:       toEmail,
		Subject:  subject,
		HtmlBody: htmlContent,
		TextBody: htmlContent,
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendOrderConfirmationEmail sends an order confirmation after a successful
// payment verification.
func (es *EmailService) SendOrderConfirmationEmail(toEmail string, order models.Order) error {
	subject := "Order Confirmation - Project Bazaar"
	htmlContent := fmt.Sprintf(
		"<strong>Thank you for your purchase!</strong><br><br>Your order <strong>%s</strong> has been paid successfully.<br>Total Amount: <strong>₹%.2f</strong><br>Payment ID: <strong>%s</strong><br><br>You can track your order on the website using the order ID above.",
		order.OrderID,
		order.TotalAmount,
		order.PaymentID,
	)
	return es.SendEmail(toEmail, subject, htmlContent)
}
