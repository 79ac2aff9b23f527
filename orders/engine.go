package orders

import (
	"context"
	"database/sql"
	"log"
	"time"

	"srinufoods/apperr"
	"srinufoods/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CartSource is the slice of the cart engine that checkout needs.
type CartSource interface {
	Get(ctx context.Context, userID int64) (*models.Cart, error)
	Clear(ctx context.Context, userID int64) error
}

// Engine converts carts into immutable orders and tracks their status.
type Engine struct {
	Orders   *mongo.Collection
	Cart     CartSource
	Identity *sql.DB
}

func NewEngine(orders *mongo.Collection, cartSource CartSource, identity *sql.DB) *Engine {
	return &Engine{Orders: orders, Cart: cartSource, Identity: identity}
}

// Checkout snapshots the cart into a new order, inserts it, then clears the
// cart. The insert happens before the delete: a crash in between leaves the
// cart intact alongside a placed order, never a lost order.
func (e *Engine) Checkout(ctx context.Context, userID int64, address, phone, paymentMethod, instructions string) (*models.Order, error) {
	if address == "" {
		return nil, apperr.Validation("Delivery address is required")
	}
	if phone == "" {
		return nil, apperr.Validation("Phone is required")
	}

	c, err := e.Cart.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(c.Items) == 0 {
		return nil, apperr.EmptyCart("Cart is empty")
	}

	var user models.IdentityUser
	row := e.Identity.QueryRowContext(ctx,
		"SELECT id, username, email, first_name, last_name FROM users WHERE id = ?", userID)
	if err := row.Scan(&user.ID, &user.Username, &user.Email, &user.FirstName, &user.LastName); err != nil {
		return nil, apperr.Store("identity lookup failed", err)
	}

	order := Build(user, c.Items, address, phone, paymentMethod, instructions, time.Now())

	res, err := e.Orders.InsertOne(ctx, order)
	if err != nil {
		return nil, apperr.Store("order insert failed", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		order.ID = oid
	}

	e.clearAfterCheckout(ctx, userID)

	return &order, nil
}

// clearAfterCheckout drops the cart once the order is inserted. The order is
// already placed, so over-preserving the cart is safe; the failure is only
// logged.
func (e *Engine) clearAfterCheckout(ctx context.Context, userID int64) {
	if err := e.Cart.Clear(ctx, userID); err != nil {
		log.Printf("cart clear after checkout failed for user %d: %v", userID, err)
	}
}

// UpdateStatus sets one of the seven known statuses on an order.
func (e *Engine) UpdateStatus(ctx context.Context, orderID, newStatus string) error {
	if !ValidStatus(newStatus) {
		return apperr.InvalidStatus("Invalid status")
	}

	oid, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return apperr.NotFound("Order not found")
	}

	res, err := e.Orders.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": newStatus, "updated_at": time.Now()}})
	if err != nil {
		return apperr.Store("order update failed", err)
	}
	if res.MatchedCount == 0 {
		return apperr.NotFound("Order not found")
	}
	return nil
}

// ListForUser returns the user's orders, newest first.
func (e *Engine) ListForUser(ctx context.Context, userID int64) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := e.Orders.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, apperr.Store("order query failed", err)
	}
	defer cursor.Close(ctx)

	var list []models.Order
	if err := cursor.All(ctx, &list); err != nil {
		return nil, apperr.Store("order decode failed", err)
	}
	if list == nil {
		list = []models.Order{}
	}
	return list, nil
}

// Get returns the order only to its owner or an admin; anyone else sees
// not-found, never forbidden.
func (e *Engine) Get(ctx context.Context, orderID string, userID int64, isAdmin bool) (*models.Order, error) {
	oid, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return nil, apperr.NotFound("Order not found")
	}

	query := bson.M{"_id": oid}
	if !isAdmin {
		query["user_id"] = userID
	}

	var order models.Order
	err = e.Orders.FindOne(ctx, query).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return nil, apperr.NotFound("Order not found")
	}
	if err != nil {
		return nil, apperr.Store("order lookup failed", err)
	}
	return &order, nil
}

// ListAll is the admin view: optional status filter, newest first, capped.
func (e *Engine) ListAll(ctx context.Context, status string, limit int64) ([]models.Order, error) {
	query := bson.M{}
	if status != "" {
		query["status"] = status
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	cursor, err := e.Orders.Find(ctx, query, opts)
	if err != nil {
		return nil, apperr.Store("order query failed", err)
	}
	defer cursor.Close(ctx)

	var list []models.Order
	if err := cursor.All(ctx, &list); err != nil {
		return nil, apperr.Store("order decode failed", err)
	}
	if list == nil {
		list = []models.Order{}
	}
	return list, nil
}
