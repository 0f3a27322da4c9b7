// utils/payment.go
package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"os"

	razorpay "github.com/razorpay/razorpay-go"
)

// PaymentService wraps the Razorpay client used for order creation and the
// signature secret used for verification.
type PaymentService struct {
	client *razorpay.Client
	secret string
}

// NewPaymentService initializes the Razorpay client from environment keys
func NewPaymentService() *PaymentService {
	keyID := os.Getenv("RAZORPAY_KEY_ID")
	secret := os.Getenv("RAZORPAY_KEY_SECRET")
	return &PaymentService{
		client: razorpay.NewClient(keyID, secret),
		secret: secret,
	}
}

// ToMinorUnits converts a major-unit amount to the provider's integer
// minor-unit amount (paise), rounding to the nearest integer.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// CreateOrder creates a provider-side order for the given minor-unit amount,
// tagged with our business orderId as the receipt.
func (ps *PaymentService) CreateOrder(amountMinor int64, currency, receipt string) (map[string]interface{}, error) {
	data := map[string]interface{}{
		"amount":   amountMinor,
		"currency": currency,
		"receipt":  receipt,
	}
	order, err := ps.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay order create: %w", err)
	}
	return order, nil
}

// VerifySignature checks the payment signature Razorpay sends back after
// checkout: HMAC-SHA256 over "<order_id>|<payment_id>" keyed by the secret.
// Runs before any database access so forged requests never touch storage.
func (ps *PaymentService) VerifySignature(razorpayOrderID, paymentID, signature string) bool {
	return VerifySignature(razorpayOrderID, paymentID, signature, ps.secret)
}

// VerifySignature is the secret-parameterized form used by tests
func VerifySignature(razorpayOrderID, paymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(razorpayOrderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
