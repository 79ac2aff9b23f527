package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order status lifecycle. Delivered and cancelled are terminal.
const (
	StatusPending        = "pending"
	StatusConfirmed      = "confirmed"
	StatusPreparing      = "preparing"
	StatusReady          = "ready"
	StatusOutForDelivery = "out_for_delivery"
	StatusDelivered      = "delivered"
	StatusCancelled      = "cancelled"
)

const (
	PaymentCOD    = "cod"
	PaymentOnline = "online"
)

// Order is immutable after checkout except status, payment_status and
// updated_at. Items are the cart lines frozen at checkout time.
type Order struct {
	ID                    primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	OrderNumber           string             `json:"order_number" bson:"order_number"`
	UserID                int64              `json:"user_id" bson:"user_id"`
	CustomerName          string             `json:"customer_name" bson:"customer_name"`
	CustomerEmail         string             `json:"customer_email" bson:"customer_email"`
	CustomerPhone         string             `json:"customer_phone" bson:"customer_phone"`
	DeliveryAddress       string             `json:"delivery_address" bson:"delivery_address"`
	Items                 []CartLine         `json:"items" bson:"items"`
	Subtotal              float64            `json:"subtotal" bson:"subtotal"`
	DeliveryFee           float64            `json:"delivery_fee" bson:"delivery_fee"`
	TotalAmount           float64            `json:"total_amount" bson:"total_amount"`
	PaymentMethod         string             `json:"payment_method" bson:"payment_method"`
	PaymentStatus         string             `json:"payment_status" bson:"payment_status"`
	Status                string             `json:"status" bson:"status"`
	SpecialInstructions   string             `json:"special_instructions" bson:"special_instructions"`
	CreatedAt             time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt             time.Time          `json:"updated_at" bson:"updated_at"`
	EstimatedDeliveryTime time.Time          `json:"estimated_delivery_time" bson:"estimated_delivery_time"`
}

// DashboardStats is the admin rollup, recomputed on every call.
type DashboardStats struct {
	TotalOrders     int64   `json:"total_orders"`
	TodayOrders     int64   `json:"today_orders"`
	PendingOrders   int64   `json:"pending_orders"`
	PreparingOrders int64   `json:"preparing_orders"`
	TodayRevenue    float64 `json:"today_revenue"`
	RecentOrders    []Order `json:"recent_orders"`
}
