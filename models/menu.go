package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category is admin-seeded and read-only to customers.
type Category struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	ImageURL    string             `json:"image_url" bson:"image_url"`
	IsActive    bool               `json:"is_active" bson:"is_active"`
	SortOrder   int                `json:"sort_order" bson:"sort_order"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

type MenuItem struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name            string             `json:"name" bson:"name"`
	Description     string             `json:"description" bson:"description"`
	Price           float64            `json:"price" bson:"price"`
	ImageURL        string             `json:"image_url" bson:"image_url"`
	Category        string             `json:"category" bson:"category"`
	IsAvailable     bool               `json:"is_available" bson:"is_available"`
	IsVeg           bool               `json:"is_veg" bson:"is_veg"`
	PreparationTime int                `json:"preparation_time" bson:"preparation_time"`
	Rating          float64            `json:"rating" bson:"rating"`
	Ingredients     string             `json:"ingredients" bson:"ingredients"`
}
