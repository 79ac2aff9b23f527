package cart

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"srinufoods/middleware"
	"srinufoods/models"
	"srinufoods/utils"

	"github.com/julienschmidt/httprouter"
)

// The API bounds line quantity here at the edge; the engine itself only
// requires a positive amount.
const maxLineQuantity = 10

type Handlers struct {
	Engine *Engine
}

func NewHandlers(engine *Engine) *Handlers {
	return &Handlers{Engine: engine}
}

func cartPayload(c *models.Cart) utils.M {
	totals := Totals(c.Items)
	return utils.M{
		"cart": utils.M{
			"items":                   c.Items,
			"total_items":             totals.ItemCount,
			"subtotal":                totals.Subtotal,
			"delivery_fee":            totals.DeliveryFee,
			"total_amount":            totals.Total,
			"free_delivery_threshold": FreeDeliveryThreshold,
		},
	}
}

// GetCart returns the cart with computed totals. An absent cart reads as an
// empty one with zero totals.
func (h *Handlers) GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	c, err := h.Engine.Get(ctx, middleware.UserIDFromRequest(r))
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.Success(w, http.StatusOK, "", cartPayload(c))
}

func (h *Handlers) AddToCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input struct {
		ItemID              string `json:"item_id"`
		Quantity            int    `json:"quantity"`
		SpecialInstructions string `json:"special_instructions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if input.ItemID == "" || input.Quantity <= 0 {
		utils.Fail(w, http.StatusBadRequest, "Item ID and quantity are required")
		return
	}
	if input.Quantity > maxLineQuantity {
		utils.Fail(w, http.StatusBadRequest, "Maximum quantity per item is 10")
		return
	}

	c, err := h.Engine.AddItem(ctx, middleware.UserIDFromRequest(r), input.ItemID, input.Quantity, input.SpecialInstructions)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.Success(w, http.StatusOK, "Item added to cart successfully", cartPayload(c))
}

func (h *Handlers) UpdateCartItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input struct {
		Quantity            *int    `json:"quantity"`
		SpecialInstructions *string `json:"special_instructions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if input.Quantity != nil && (*input.Quantity <= 0 || *input.Quantity > maxLineQuantity) {
		utils.Fail(w, http.StatusBadRequest, "Quantity must be between 1 and 10")
		return
	}

	c, err := h.Engine.UpdateLine(ctx, middleware.UserIDFromRequest(r), ps.ByName("itemid"), input.Quantity, input.SpecialInstructions)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.Success(w, http.StatusOK, "Cart item updated", cartPayload(c))
}

func (h *Handlers) RemoveFromCart(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	c, err := h.Engine.RemoveLine(ctx, middleware.UserIDFromRequest(r), ps.ByName("itemid"))
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.Success(w, http.StatusOK, "Item removed from cart", cartPayload(c))
}

func (h *Handlers) ClearCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.Engine.Clear(ctx, middleware.UserIDFromRequest(r)); err != nil {
		utils.Error(w, err)
		return
	}

	utils.Success(w, http.StatusOK, "Cart cleared successfully", nil)
}
