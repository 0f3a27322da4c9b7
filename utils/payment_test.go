package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func signPayload(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	const secret = "rzp_test_secret"
	sig := signPayload("order_ABC123", "pay_XYZ789", secret)

	assert.True(t, VerifySignature("order_ABC123", "pay_XYZ789", sig, secret))
}

func TestVerifySignatureRejectsMutations(t *testing.T) {
	const secret = "rzp_test_secret"
	sig := signPayload("order_ABC123", "pay_XYZ789", secret)

	// Any single-character change to the inputs must fail the check
	assert.False(t, VerifySignature("order_ABC124", "pay_XYZ789", sig, secret))
	assert.False(t, VerifySignature("order_ABC123", "pay_XYZ780", sig, secret))
	assert.False(t, VerifySignature("order_ABC123", "pay_XYZ789", sig, "rzp_test_secreT"))

	mutated := []byte(sig)
	if mutated[0] == 'a' {
		mutated[0] = 'b'
	} else {
		mutated[0] = 'a'
	}
	assert.False(t, VerifySignature("order_ABC123", "pay_XYZ789", string(mutated), secret))
}

func TestVerifySignatureRejectsEmpty(t *testing.T) {
	assert.False(t, VerifySignature("order_ABC123", "pay_XYZ789", "", "rzp_test_secret"))
}

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		amount float64
		want   int64
	}{
		{200, 20000},
		{0, 0},
		{99.99, 9999},
		{123.456, 12346},
		{1499.5, 149950},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToMinorUnits(tt.amount), "amount %v", tt.amount)
	}
}
