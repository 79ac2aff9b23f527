package models

import "time"

// CartLine holds a denormalized snapshot of the menu item taken at add time.
// Price is intentionally not re-fetched when the catalog changes.
type CartLine struct {
	ItemID              string    `json:"item_id" bson:"item_id"`
	Name                string    `json:"name" bson:"name"`
	Price               float64   `json:"price" bson:"price"`
	Quantity            int       `json:"quantity" bson:"quantity"`
	SpecialInstructions string    `json:"special_instructions" bson:"special_instructions"`
	ImageURL            string    `json:"image_url" bson:"image_url"`
	IsVeg               bool      `json:"is_veg" bson:"is_veg"`
	AddedAt             time.Time `json:"added_at" bson:"added_at"`
}

// Cart is one-per-user; at most one line per distinct item_id.
type Cart struct {
	UserID    int64      `json:"user_id" bson:"user_id"`
	Items     []CartLine `json:"items" bson:"items"`
	CreatedAt time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" bson:"updated_at"`
}

type CartTotals struct {
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"delivery_fee"`
	Total       float64 `json:"total_amount"`
	ItemCount   int     `json:"total_items"`
}
