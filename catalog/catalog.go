package catalog

import (
	"context"
	"net/http"
	"strings"
	"time"

	"srinufoods/apperr"
	"srinufoods/models"
	"srinufoods/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store is the read-mostly catalog: categories and menu items, admin-seeded.
type Store struct {
	Categories *mongo.Collection
	MenuItems  *mongo.Collection
}

func NewStore(categories, menuItems *mongo.Collection) *Store {
	return &Store{Categories: categories, MenuItems: menuItems}
}

// FindItem resolves a menu item by its hex identifier.
func (s *Store) FindItem(ctx context.Context, itemID string) (*models.MenuItem, error) {
	oid, err := primitive.ObjectIDFromHex(itemID)
	if err != nil {
		return nil, apperr.NotFound("Item not found")
	}

	var item models.MenuItem
	err = s.MenuItems.FindOne(ctx, bson.M{"_id": oid}).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return nil, apperr.NotFound("Item not found")
	}
	if err != nil {
		return nil, apperr.Store("menu item lookup failed", err)
	}
	return &item, nil
}

// GetCategories returns active categories in display order.
func (s *Store) GetCategories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "sort_order", Value: 1}})
	cursor, err := s.Categories.Find(ctx, bson.M{"is_active": true}, opts)
	if err != nil {
		utils.Error(w, apperr.Store("category query failed", err))
		return
	}
	defer cursor.Close(ctx)

	var categories []models.Category
	if err := cursor.All(ctx, &categories); err != nil {
		utils.Error(w, apperr.Store("category decode failed", err))
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}

	utils.Success(w, http.StatusOK, "", utils.M{"categories": categories})
}

// GetMenuItems lists available items, filtered by ?category=, ?search= and
// ?is_veg=.
func (s *Store) GetMenuItems(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	query := bson.M{"is_available": true}

	if category := r.URL.Query().Get("category"); category != "" {
		query["category"] = category
	}
	if search := r.URL.Query().Get("search"); search != "" {
		query["$or"] = bson.A{
			bson.M{"name": bson.M{"$regex": search, "$options": "i"}},
			bson.M{"description": bson.M{"$regex": search, "$options": "i"}},
		}
	}
	if isVeg := r.URL.Query().Get("is_veg"); isVeg != "" {
		query["is_veg"] = strings.EqualFold(isVeg, "true")
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := s.MenuItems.Find(ctx, query, opts)
	if err != nil {
		utils.Error(w, apperr.Store("menu query failed", err))
		return
	}
	defer cursor.Close(ctx)

	var items []models.MenuItem
	if err := cursor.All(ctx, &items); err != nil {
		utils.Error(w, apperr.Store("menu decode failed", err))
		return
	}
	if items == nil {
		items = []models.MenuItem{}
	}

	utils.Success(w, http.StatusOK, "", utils.M{"items": items, "count": len(items)})
}

// GetMenuItem returns one item by id.
func (s *Store) GetMenuItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	item, err := s.FindItem(ctx, ps.ByName("itemid"))
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.Success(w, http.StatusOK, "", utils.M{"item": item})
}
