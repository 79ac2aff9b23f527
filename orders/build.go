package orders

import (
	"math/rand"
	"strconv"
	"time"

	"srinufoods/cart"
	"srinufoods/models"
)

// Orders are promised within 45 minutes of checkout.
const deliveryEstimate = 45 * time.Minute

var validStatuses = map[string]bool{
	models.StatusPending:        true,
	models.StatusConfirmed:      true,
	models.StatusPreparing:      true,
	models.StatusReady:          true,
	models.StatusOutForDelivery: true,
	models.StatusDelivered:      true,
	models.StatusCancelled:      true,
}

func ValidStatus(s string) bool {
	return validStatuses[s]
}

// GenerateOrderNumber produces the human-facing display number: "SF" plus
// six digits drawn uniformly from [100000, 999999]. Collisions are accepted.
func GenerateOrderNumber() string {
	return "SF" + strconv.Itoa(100000+rand.Intn(900000))
}

// Build freezes a cart into a new order. Totals are computed here from the
// snapshot, independently of any live cart view.
func Build(user models.IdentityUser, lines []models.CartLine, address, phone, paymentMethod, instructions string, now time.Time) models.Order {
	if paymentMethod == "" {
		paymentMethod = models.PaymentCOD
	}

	totals := cart.Totals(lines)

	return models.Order{
		OrderNumber:           GenerateOrderNumber(),
		UserID:                user.ID,
		CustomerName:          user.FullName(),
		CustomerEmail:         user.Email,
		CustomerPhone:         phone,
		DeliveryAddress:       address,
		Items:                 lines,
		Subtotal:              totals.Subtotal,
		DeliveryFee:           totals.DeliveryFee,
		TotalAmount:           totals.Total,
		PaymentMethod:         paymentMethod,
		PaymentStatus:         models.StatusPending,
		Status:                models.StatusPending,
		SpecialInstructions:   instructions,
		CreatedAt:             now,
		UpdatedAt:             now,
		EstimatedDeliveryTime: now.Add(deliveryEstimate),
	}
}
