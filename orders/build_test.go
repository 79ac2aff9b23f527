package orders

import (
	"regexp"
	"strconv"
	"testing"
	"time"

	"srinufoods/cart"
	"srinufoods/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUser = models.IdentityUser{
	ID:        7,
	Username:  "john_doe",
	Email:     "john@example.com",
	FirstName: "John",
	LastName:  "Doe",
}

func testLines() []models.CartLine {
	return []models.CartLine{
		{ItemID: "a1", Name: "Paneer Tikka", Price: 180, Quantity: 2},
		{ItemID: "b2", Name: "Vegetable Samosa", Price: 80, Quantity: 1},
	}
}

func TestBuildFreezesCartAndTotals(t *testing.T) {
	now := time.Date(2026, 3, 14, 19, 30, 0, 0, time.UTC)
	lines := testLines()

	order := Build(testUser, lines, "42 MG Road, Bangalore", "+91-9876543212", models.PaymentOnline, "ring the doorbell", now)

	assert.Equal(t, int64(7), order.UserID)
	assert.Equal(t, "John Doe", order.CustomerName)
	assert.Equal(t, "john@example.com", order.CustomerEmail)
	assert.Equal(t, "+91-9876543212", order.CustomerPhone)
	assert.Equal(t, "42 MG Road, Bangalore", order.DeliveryAddress)
	assert.Equal(t, lines, order.Items)
	assert.Equal(t, models.PaymentOnline, order.PaymentMethod)
	assert.Equal(t, "ring the doorbell", order.SpecialInstructions)

	// Order totals must match what the cart engine would have computed.
	totals := cart.Totals(lines)
	assert.Equal(t, totals.Subtotal, order.Subtotal)
	assert.Equal(t, totals.DeliveryFee, order.DeliveryFee)
	assert.Equal(t, totals.Total, order.TotalAmount)

	assert.Equal(t, models.StatusPending, order.Status)
	assert.Equal(t, models.StatusPending, order.PaymentStatus)
	assert.Equal(t, now, order.CreatedAt)
	assert.Equal(t, now.Add(45*time.Minute), order.EstimatedDeliveryTime)
}

func TestBuildDefaultsPaymentMethodToCOD(t *testing.T) {
	order := Build(testUser, testLines(), "addr", "phone", "", "", time.Now())
	assert.Equal(t, models.PaymentCOD, order.PaymentMethod)
}

func TestBuildFallsBackToUsername(t *testing.T) {
	user := models.IdentityUser{ID: 3, Username: "customer", Email: "c@example.com"}
	order := Build(user, testLines(), "addr", "phone", models.PaymentCOD, "", time.Now())
	assert.Equal(t, "customer", order.CustomerName)
}

func TestGenerateOrderNumber(t *testing.T) {
	pattern := regexp.MustCompile(`^SF\d{6}$`)

	for i := 0; i < 1000; i++ {
		num := GenerateOrderNumber()
		require.True(t, pattern.MatchString(num), "unexpected order number %q", num)

		digits, err := strconv.Atoi(num[2:])
		require.NoError(t, err)
		assert.GreaterOrEqual(t, digits, 100000)
		assert.LessOrEqual(t, digits, 999999)
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{
		models.StatusPending,
		models.StatusConfirmed,
		models.StatusPreparing,
		models.StatusReady,
		models.StatusOutForDelivery,
		models.StatusDelivered,
		models.StatusCancelled,
	} {
		assert.True(t, ValidStatus(s), s)
	}

	for _, s := range []string{"", "shipped", "PENDING", "done", "refunded"} {
		assert.False(t, ValidStatus(s), s)
	}
}
