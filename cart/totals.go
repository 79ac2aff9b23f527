package cart

import (
	"time"

	"srinufoods/models"
	"srinufoods/utils"
)

// Delivery pricing constants. The fee is waived at the threshold, never
// charged on an empty cart.
const (
	FreeDeliveryThreshold = 500.0
	DeliveryFee           = 50.0
)

// Totals computes subtotal, delivery fee and total for a set of cart lines.
// Rounding happens once after summation, not per line.
func Totals(lines []models.CartLine) models.CartTotals {
	if len(lines) == 0 {
		return models.CartTotals{}
	}

	var subtotal float64
	var count int
	for _, line := range lines {
		subtotal += line.Price * float64(line.Quantity)
		count += line.Quantity
	}
	subtotal = utils.Round2(subtotal)

	fee := 0.0
	if subtotal < FreeDeliveryThreshold {
		fee = DeliveryFee
	}

	return models.CartTotals{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Total:       utils.Round2(subtotal + fee),
		ItemCount:   count,
	}
}

// NewLine snapshots a menu item into a cart line. The price is frozen at
// add time and never re-fetched.
func NewLine(item *models.MenuItem, quantity int, instructions string, now time.Time) models.CartLine {
	return models.CartLine{
		ItemID:              item.ID.Hex(),
		Name:                item.Name,
		Price:               item.Price,
		Quantity:            quantity,
		SpecialInstructions: instructions,
		ImageURL:            item.ImageURL,
		IsVeg:               item.IsVeg,
		AddedAt:             now,
	}
}
