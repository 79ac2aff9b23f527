package cart

import (
	"testing"
	"time"

	"srinufoods/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTotalsEmptyCart(t *testing.T) {
	totals := Totals(nil)

	assert.Equal(t, 0.0, totals.Subtotal)
	assert.Equal(t, 0.0, totals.DeliveryFee, "empty cart must not be charged delivery")
	assert.Equal(t, 0.0, totals.Total)
	assert.Equal(t, 0, totals.ItemCount)

	assert.Equal(t, totals, Totals([]models.CartLine{}))
}

func TestTotalsBelowThreshold(t *testing.T) {
	lines := []models.CartLine{
		{Price: 180, Quantity: 2},
		{Price: 80, Quantity: 1},
	}

	totals := Totals(lines)
	assert.Equal(t, 440.0, totals.Subtotal)
	assert.Equal(t, 50.0, totals.DeliveryFee)
	assert.Equal(t, 490.0, totals.Total)
	assert.Equal(t, 3, totals.ItemCount)
}

func TestTotalsFreeDelivery(t *testing.T) {
	lines := []models.CartLine{{Price: 320, Quantity: 2}}

	totals := Totals(lines)
	assert.Equal(t, 640.0, totals.Subtotal)
	assert.Equal(t, 0.0, totals.DeliveryFee)
	assert.Equal(t, 640.0, totals.Total)
	assert.Equal(t, 2, totals.ItemCount)
}

func TestTotalsThresholdBoundary(t *testing.T) {
	// Exactly at the threshold the fee is waived.
	at := Totals([]models.CartLine{{Price: 250, Quantity: 2}})
	assert.Equal(t, 500.0, at.Subtotal)
	assert.Equal(t, 0.0, at.DeliveryFee)

	below := Totals([]models.CartLine{{Price: 499.99, Quantity: 1}})
	assert.Equal(t, DeliveryFee, below.DeliveryFee)
	assert.Equal(t, 549.99, below.Total)
}

func TestTotalsRoundsAfterSummation(t *testing.T) {
	// Three lines at 33.335 would each round to 33.34 (100.02 total) if
	// rounded per line; summing first gives 100.01 after one rounding.
	lines := []models.CartLine{
		{Price: 33.335, Quantity: 1},
		{Price: 33.335, Quantity: 1},
		{Price: 33.335, Quantity: 1},
	}

	totals := Totals(lines)
	assert.Equal(t, 100.01, totals.Subtotal)
	assert.Equal(t, 150.01, totals.Total)
}

func TestNewLineSnapshot(t *testing.T) {
	now := time.Now()
	item := &models.MenuItem{
		ID:       primitive.NewObjectID(),
		Name:     "Paneer Tikka",
		Price:    180,
		ImageURL: "https://example.com/paneer.jpg",
		IsVeg:    true,
	}

	line := NewLine(item, 2, "less spicy", now)

	assert.Equal(t, item.ID.Hex(), line.ItemID)
	assert.Equal(t, "Paneer Tikka", line.Name)
	assert.Equal(t, 180.0, line.Price)
	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, "less spicy", line.SpecialInstructions)
	assert.Equal(t, "https://example.com/paneer.jpg", line.ImageURL)
	assert.True(t, line.IsVeg)
	assert.Equal(t, now, line.AddedAt)

	// The snapshot is detached: a later catalog price change must not
	// affect the line.
	item.Price = 999
	assert.Equal(t, 180.0, line.Price)
}
