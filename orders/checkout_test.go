package orders

import (
	"bytes"
	"context"
	"errors"
	"log"
	"os"
	"testing"

	"srinufoods/apperr"
	"srinufoods/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCartSource stands in for the cart engine; a nil Orders collection means
// any insert attempt would panic, so reaching the error return proves no
// order was created.
type stubCartSource struct {
	cart     *models.Cart
	getErr   error
	clearErr error
	cleared  bool
}

func (s *stubCartSource) Get(ctx context.Context, userID int64) (*models.Cart, error) {
	return s.cart, s.getErr
}

func (s *stubCartSource) Clear(ctx context.Context, userID int64) error {
	s.cleared = true
	return s.clearErr
}

func TestCheckoutRequiresAddressAndPhone(t *testing.T) {
	engine := NewEngine(nil, nil, nil)

	order, err := engine.Checkout(context.Background(), 1, "", "+91-9876543212", "", "")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	assert.Nil(t, order)

	order, err = engine.Checkout(context.Background(), 1, "42 MG Road", "", "", "")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	assert.Nil(t, order)
}

func TestCheckoutEmptyCart(t *testing.T) {
	// An absent cart reads as an empty one, so both cases arrive here as a
	// cart with no lines.
	stub := &stubCartSource{cart: &models.Cart{UserID: 1, Items: []models.CartLine{}}}
	engine := NewEngine(nil, stub, nil)

	order, err := engine.Checkout(context.Background(), 1, "42 MG Road", "+91-9876543212", "", "")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindEmptyCart))
	assert.Nil(t, order)
	assert.False(t, stub.cleared, "a failed checkout must leave the cart alone")
}

func TestCheckoutCartLookupFailure(t *testing.T) {
	stub := &stubCartSource{getErr: apperr.Store("cart lookup failed", errors.New("connection reset"))}
	engine := NewEngine(nil, stub, nil)

	order, err := engine.Checkout(context.Background(), 1, "42 MG Road", "+91-9876543212", "", "")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindStore))
	assert.Nil(t, order)
	assert.False(t, stub.cleared)
}

func TestClearAfterCheckoutLogsFailure(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	stub := &stubCartSource{clearErr: errors.New("write concern timeout")}
	engine := NewEngine(nil, stub, nil)

	engine.clearAfterCheckout(context.Background(), 7)

	assert.True(t, stub.cleared)
	assert.Contains(t, buf.String(), "cart clear after checkout failed for user 7")
	assert.Contains(t, buf.String(), "write concern timeout")
}
