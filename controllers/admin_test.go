package controllers

import (
	"testing"

	"project-bazaar/models"

	"github.com/stretchr/testify/assert"
)

func TestNextItemStatus(t *testing.T) {
	tests := []struct {
		name        string
		itemType    string
		current     string
		isCompleted bool
		wantStatus  string
		wantChanged bool
	}{
		{"order marked complete", models.ItemTypeOrder, models.OrderPending, true, "completed", true},
		{"processing order marked complete", models.ItemTypeOrder, models.OrderProcessing, true, "completed", true},
		{"completed order marked complete again", models.ItemTypeOrder, models.OrderCompleted, true, "", false},
		{"completed order un-completed stays completed", models.ItemTypeOrder, models.OrderCompleted, false, "", false},
		{"pending order un-completed", models.ItemTypeOrder, models.OrderPending, false, "", false},
		{"custom marked complete", models.ItemTypeCustom, models.RequestReviewing, true, "completed", true},
		{"completed custom un-completed reverts to pending", models.ItemTypeCustom, models.RequestCompleted, false, models.RequestPending, true},
		{"pending custom un-completed", models.ItemTypeCustom, models.RequestPending, false, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, changed := nextItemStatus(tt.itemType, tt.current, tt.isCompleted)
			assert.Equal(t, tt.wantChanged, changed)
			if tt.wantChanged {
				assert.Equal(t, tt.wantStatus, status)
			}
		})
	}
}
