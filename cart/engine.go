package cart

import (
	"context"
	"time"

	"srinufoods/apperr"
	"srinufoods/catalog"
	"srinufoods/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Engine owns the per-user cart documents. Every mutation is a single
// field-scoped update so concurrent requests cannot lose each other's
// writes through whole-document replacement.
type Engine struct {
	Carts   *mongo.Collection
	Catalog *catalog.Store
}

func NewEngine(carts *mongo.Collection, cat *catalog.Store) *Engine {
	return &Engine{Carts: carts, Catalog: cat}
}

// Get returns the user's cart, or an empty unpersisted cart if none exists.
func (e *Engine) Get(ctx context.Context, userID int64) (*models.Cart, error) {
	var c models.Cart
	err := e.Carts.FindOne(ctx, bson.M{"user_id": userID}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return &models.Cart{UserID: userID, Items: []models.CartLine{}}, nil
	}
	if err != nil {
		return nil, apperr.Store("cart lookup failed", err)
	}
	if c.Items == nil {
		c.Items = []models.CartLine{}
	}
	return &c, nil
}

// AddItem merges into an existing line ($inc quantity, instructions last
// write wins) or appends a fresh snapshot of the item.
func (e *Engine) AddItem(ctx context.Context, userID int64, itemID string, quantity int, instructions string) (*models.Cart, error) {
	item, err := e.Catalog.FindItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !item.IsAvailable {
		return nil, apperr.Unavailable("Item is not available")
	}

	now := time.Now()

	// Existing line: bump quantity in place.
	res, err := e.Carts.UpdateOne(ctx,
		bson.M{"user_id": userID, "items.item_id": itemID},
		bson.M{
			"$inc": bson.M{"items.$.quantity": quantity},
			"$set": bson.M{"items.$.special_instructions": instructions, "updated_at": now},
		})
	if err != nil {
		return nil, apperr.Store("cart update failed", err)
	}

	if res.MatchedCount == 0 {
		line := NewLine(item, quantity, instructions, now)
		_, err = e.Carts.UpdateOne(ctx,
			bson.M{"user_id": userID},
			bson.M{
				"$push":        bson.M{"items": line},
				"$set":         bson.M{"updated_at": now},
				"$setOnInsert": bson.M{"created_at": now},
			},
			options.Update().SetUpsert(true))
		if err != nil {
			return nil, apperr.Store("cart insert failed", err)
		}
	}

	return e.Get(ctx, userID)
}

// UpdateLine mutates quantity and/or instructions of one line in place.
// A missing line is a no-op; a missing cart is reported.
func (e *Engine) UpdateLine(ctx context.Context, userID int64, itemID string, quantity *int, instructions *string) (*models.Cart, error) {
	set := bson.M{"updated_at": time.Now()}
	if quantity != nil {
		set["items.$.quantity"] = *quantity
	}
	if instructions != nil {
		set["items.$.special_instructions"] = *instructions
	}

	res, err := e.Carts.UpdateOne(ctx,
		bson.M{"user_id": userID, "items.item_id": itemID},
		bson.M{"$set": set})
	if err != nil {
		return nil, apperr.Store("cart update failed", err)
	}

	if res.MatchedCount == 0 {
		n, err := e.Carts.CountDocuments(ctx, bson.M{"user_id": userID})
		if err != nil {
			return nil, apperr.Store("cart lookup failed", err)
		}
		if n == 0 {
			return nil, apperr.NotFound("Cart not found")
		}
	}

	return e.Get(ctx, userID)
}

// RemoveLine pulls the matching line out; absent lines are a no-op.
func (e *Engine) RemoveLine(ctx context.Context, userID int64, itemID string) (*models.Cart, error) {
	res, err := e.Carts.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{
			"$pull": bson.M{"items": bson.M{"item_id": itemID}},
			"$set":  bson.M{"updated_at": time.Now()},
		})
	if err != nil {
		return nil, apperr.Store("cart update failed", err)
	}
	if res.MatchedCount == 0 {
		return nil, apperr.NotFound("Cart not found")
	}

	return e.Get(ctx, userID)
}

// Clear deletes the cart document entirely; deleting a missing cart is fine.
func (e *Engine) Clear(ctx context.Context, userID int64) error {
	if _, err := e.Carts.DeleteOne(ctx, bson.M{"user_id": userID}); err != nil {
		return apperr.Store("cart delete failed", err)
	}
	return nil
}
