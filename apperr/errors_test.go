package apperr

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{Validation("item_id is required"), http.StatusBadRequest},
		{EmptyCart("Cart is empty"), http.StatusBadRequest},
		{InvalidStatus("Invalid status"), http.StatusBadRequest},
		{NotFound("Order not found"), http.StatusNotFound},
		{Unavailable("Item is currently unavailable"), http.StatusNotFound},
		{Auth("Invalid credentials"), http.StatusUnauthorized},
		{Store("insert order", errors.New("socket closed")), http.StatusInternalServerError},
		{errors.New("plain error"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Status(tc.err), "%v", tc.err)
	}
}

func TestPublicHidesStoreDetail(t *testing.T) {
	err := Store("fetch cart", errors.New("connection refused to 10.0.0.3:27017"))

	msg := Public(err)
	assert.Equal(t, "Something went wrong", msg)
	assert.NotContains(t, msg, "10.0.0.3")
}

func TestPublicKeepsClientMessages(t *testing.T) {
	assert.Equal(t, "Quantity must be positive", Public(Validation("Quantity must be positive")))
	assert.Equal(t, "Cart is empty", Public(EmptyCart("Cart is empty")))
	assert.Equal(t, "Order not found", Public(NotFound("Order not found")))
}

func TestIsKind(t *testing.T) {
	err := NotFound("Cart not found")

	assert.True(t, IsKind(err, KindNotFound))
	assert.False(t, IsKind(err, KindValidation))
	assert.False(t, IsKind(errors.New("other"), KindNotFound))
}

func TestStoreWrapsCause(t *testing.T) {
	cause := errors.New("duplicate key")
	err := Store("insert user", cause)

	assert.True(t, errors.Is(err, cause))
}
