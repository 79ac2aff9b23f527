package orders

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"srinufoods/middleware"
	"srinufoods/utils"

	"github.com/julienschmidt/httprouter"
)

const defaultAdminListLimit = 50

type Handlers struct {
	Engine *Engine
}

func NewHandlers(engine *Engine) *Handlers {
	return &Handlers{Engine: engine}
}

func (h *Handlers) CreateOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input struct {
		DeliveryAddress     string `json:"delivery_address"`
		Phone               string `json:"phone"`
		PaymentMethod       string `json:"payment_method"`
		SpecialInstructions string `json:"special_instructions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	order, err := h.Engine.Checkout(ctx, middleware.UserIDFromRequest(r),
		input.DeliveryAddress, input.Phone, input.PaymentMethod, input.SpecialInstructions)
	middleware.RecordOrderOperation("checkout", err == nil)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.Success(w, http.StatusCreated, "Order placed successfully", utils.M{
		"order": utils.M{
			"id":                      order.ID.Hex(),
			"order_number":            order.OrderNumber,
			"total_amount":            order.TotalAmount,
			"status":                  order.Status,
			"estimated_delivery_time": order.EstimatedDeliveryTime,
		},
	})
}

func (h *Handlers) MyOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	list, err := h.Engine.ListForUser(ctx, middleware.UserIDFromRequest(r))
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.Success(w, http.StatusOK, "", utils.M{"orders": list})
}

func (h *Handlers) GetOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	order, err := h.Engine.Get(ctx, ps.ByName("orderid"),
		middleware.UserIDFromRequest(r), middleware.IsAdminFromRequest(r))
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.Success(w, http.StatusOK, "", utils.M{"order": order})
}

func (h *Handlers) AllOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	limit := int64(defaultAdminListLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n > 0 {
			limit = n
		}
	}

	list, err := h.Engine.ListAll(ctx, r.URL.Query().Get("status"), limit)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.Success(w, http.StatusOK, "", utils.M{"orders": list, "count": len(list)})
}

func (h *Handlers) UpdateOrderStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if input.Status == "" {
		utils.Fail(w, http.StatusBadRequest, "Status is required")
		return
	}

	err := h.Engine.UpdateStatus(ctx, ps.ByName("orderid"), input.Status)
	middleware.RecordOrderOperation("update_status", err == nil)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.Success(w, http.StatusOK, "Order status updated to "+input.Status, nil)
}
