// Package seed populates the stores with the initial restaurant data:
// admin and sample customer identities, the category list and the menu.
package seed

import (
	"context"
	"database/sql"
	"log"
	"time"

	"srinufoods/db"
	"srinufoods/models"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

type seedUser struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	IsStaff   bool
	Phone     string
	Address   string
}

var seedUsers = []seedUser{
	{"admin", "admin@srinufoods.com", "admin123", "Srinu", "Admin", true, "+91-9876543210", "123 Admin Street, Food City, FC 12345"},
	{"customer", "customer@example.com", "customer123", "Regular", "Customer", false, "+91-9876543211", "456 Customer Lane, Food City, FC 12346"},
	{"john_doe", "john@example.com", "customer123", "John", "Doe", false, "+91-9876543212", "789 Doe Street, Food City, FC 12347"},
	{"jane_smith", "jane@example.com", "customer123", "Jane", "Smith", false, "+91-9876543213", "321 Smith Avenue, Food City, FC 12348"},
}

var categories = []models.Category{
	{Name: "Appetizers", Description: "Start your meal with our delicious appetizers", ImageURL: "https://images.unsplash.com/photo-1551782450-17144efb9c50?w=400&h=300&fit=crop", IsActive: true, SortOrder: 1},
	{Name: "Main Course", Description: "Hearty and satisfying main dishes", ImageURL: "https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?w=400&h=300&fit=crop", IsActive: true, SortOrder: 2},
	{Name: "Biryanis", Description: "Aromatic and flavorful rice dishes", ImageURL: "https://images.unsplash.com/photo-1563379091774-c86b4d57fb16?w=400&h=300&fit=crop", IsActive: true, SortOrder: 3},
	{Name: "South Indian", Description: "Traditional South Indian delicacies", ImageURL: "https://images.unsplash.com/photo-1567188040759-fb8a883dc6d8?w=400&h=300&fit=crop", IsActive: true, SortOrder: 4},
	{Name: "Chinese", Description: "Indo-Chinese fusion dishes", ImageURL: "https://images.unsplash.com/photo-1526318896980-cf86fd85717d?w=400&h=300&fit=crop", IsActive: true, SortOrder: 5},
	{Name: "Beverages", Description: "Refreshing drinks and beverages", ImageURL: "https://images.unsplash.com/photo-1544145945-f90425340c7e?w=400&h=300&fit=crop", IsActive: true, SortOrder: 6},
	{Name: "Desserts", Description: "Sweet treats to end your meal", ImageURL: "https://images.unsplash.com/photo-1551024506-0bccd828d307?w=400&h=300&fit=crop", IsActive: true, SortOrder: 7},
}

var menuItems = []models.MenuItem{
	{Name: "Paneer Tikka", Description: "Marinated cottage cheese grilled to perfection with bell peppers and onions", Price: 180, ImageURL: "https://images.unsplash.com/photo-1599487488170-d11ec9c172f0?w=400&h=300&fit=crop", Category: "Appetizers", IsAvailable: true, IsVeg: true, PreparationTime: 15, Rating: 4.8, Ingredients: "Paneer, Bell Peppers, Onions, Yogurt, Spices"},
	{Name: "Chicken Tikka", Description: "Tender chicken pieces marinated in yogurt and spices, grilled in tandoor", Price: 220, ImageURL: "https://images.unsplash.com/photo-1610057099431-d73a1c9d2f2f?w=400&h=300&fit=crop", Category: "Appetizers", IsAvailable: true, IsVeg: false, PreparationTime: 20, Rating: 4.9, Ingredients: "Chicken, Yogurt, Ginger-Garlic, Spices"},
	{Name: "Vegetable Samosa", Description: "Crispy pastry filled with spiced potatoes and vegetables", Price: 80, ImageURL: "https://images.unsplash.com/photo-1601050690117-94f5f6fa7e15?w=400&h=300&fit=crop", Category: "Appetizers", IsAvailable: true, IsVeg: true, PreparationTime: 10, Rating: 4.5, Ingredients: "Potatoes, Peas, Pastry, Spices"},
	{Name: "Butter Chicken", Description: "Creamy tomato-based chicken curry with aromatic spices", Price: 320, ImageURL: "https://images.unsplash.com/photo-1588166524941-3bf61a9c41db?w=400&h=300&fit=crop", Category: "Main Course", IsAvailable: true, IsVeg: false, PreparationTime: 25, Rating: 4.9, Ingredients: "Chicken, Tomatoes, Cream, Butter, Spices"},
	{Name: "Paneer Butter Masala", Description: "Rich cottage cheese curry in creamy tomato gravy", Price: 280, ImageURL: "https://images.unsplash.com/photo-1631452180519-c014fe946bc7?w=400&h=300&fit=crop", Category: "Main Course", IsAvailable: true, IsVeg: true, PreparationTime: 20, Rating: 4.7, Ingredients: "Paneer, Tomatoes, Cream, Cashews, Spices"},
	{Name: "Dal Tadka", Description: "Yellow lentils tempered with cumin, garlic and spices", Price: 150, ImageURL: "https://images.unsplash.com/photo-1546833999-b9f581a1996d?w=400&h=300&fit=crop", Category: "Main Course", IsAvailable: true, IsVeg: true, PreparationTime: 15, Rating: 4.6, Ingredients: "Yellow Dal, Cumin, Garlic, Ginger, Spices"},
	{Name: "Chicken Biryani", Description: "Aromatic basmati rice with tender chicken and traditional spices", Price: 350, ImageURL: "https://images.unsplash.com/photo-1563379091774-c86b4d57fb16?w=400&h=300&fit=crop", Category: "Biryanis", IsAvailable: true, IsVeg: false, PreparationTime: 45, Rating: 4.9, Ingredients: "Basmati Rice, Chicken, Yogurt, Fried Onions, Saffron, Spices"},
	{Name: "Mutton Biryani", Description: "Rich and flavorful biryani with tender mutton pieces", Price: 420, ImageURL: "https://images.unsplash.com/photo-1589302168068-964664d93dc0?w=400&h=300&fit=crop", Category: "Biryanis", IsAvailable: true, IsVeg: false, PreparationTime: 60, Rating: 4.8, Ingredients: "Basmati Rice, Mutton, Yogurt, Fried Onions, Saffron, Spices"},
	{Name: "Vegetable Biryani", Description: "Fragrant basmati rice with mixed vegetables and aromatic spices", Price: 250, ImageURL: "https://images.unsplash.com/photo-1596797038530-2c107229654b?w=400&h=300&fit=crop", Category: "Biryanis", IsAvailable: true, IsVeg: true, PreparationTime: 35, Rating: 4.5, Ingredients: "Basmati Rice, Mixed Vegetables, Fried Onions, Saffron, Spices"},
	{Name: "Masala Dosa", Description: "Crispy rice and lentil crepe filled with spiced potato filling", Price: 120, ImageURL: "https://images.unsplash.com/photo-1567188040759-fb8a883dc6d8?w=400&h=300&fit=crop", Category: "South Indian", IsAvailable: true, IsVeg: true, PreparationTime: 20, Rating: 4.8, Ingredients: "Rice, Lentils, Potatoes, Onions, Spices"},
	{Name: "Idli Sambar", Description: "Steamed rice cakes served with lentil curry and coconut chutney", Price: 90, ImageURL: "https://images.unsplash.com/photo-1589301760014-d929f3979dbc?w=400&h=300&fit=crop", Category: "South Indian", IsAvailable: true, IsVeg: true, PreparationTime: 15, Rating: 4.6, Ingredients: "Rice, Lentils, Coconut, Spices"},
	{Name: "Uttapam", Description: "Thick pancake topped with vegetables and served with chutneys", Price: 110, ImageURL: "https://images.unsplash.com/photo-1630383249896-424e482df921?w=400&h=300&fit=crop", Category: "South Indian", IsAvailable: true, IsVeg: true, PreparationTime: 18, Rating: 4.4, Ingredients: "Rice, Lentils, Vegetables, Spices"},
	{Name: "Chicken Fried Rice", Description: "Wok-fried rice with tender chicken pieces and fresh vegetables", Price: 200, ImageURL: "https://images.unsplash.com/photo-1512058564366-18510be2db19?w=400&h=300&fit=crop", Category: "Chinese", IsAvailable: true, IsVeg: false, PreparationTime: 18, Rating: 4.4, Ingredients: "Rice, Chicken, Vegetables, Soy Sauce, Spices"},
	{Name: "Veg Hakka Noodles", Description: "Stir-fried noodles with fresh vegetables and Indo-Chinese sauces", Price: 180, ImageURL: "https://images.unsplash.com/photo-1585032226651-759b368d7246?w=400&h=300&fit=crop", Category: "Chinese", IsAvailable: true, IsVeg: true, PreparationTime: 15, Rating: 4.3, Ingredients: "Noodles, Vegetables, Soy Sauce, Garlic, Spices"},
	{Name: "Chilli Chicken", Description: "Spicy Indo-Chinese chicken with bell peppers and onions", Price: 240, ImageURL: "https://images.unsplash.com/photo-1606491956689-2ea866880c84?w=400&h=300&fit=crop", Category: "Chinese", IsAvailable: true, IsVeg: false, PreparationTime: 22, Rating: 4.6, Ingredients: "Chicken, Bell Peppers, Onions, Soy Sauce, Chilli Sauce"},
	{Name: "Mango Lassi", Description: "Refreshing yogurt-based mango drink", Price: 80, ImageURL: "https://images.unsplash.com/photo-1571091655789-405eb7a3a3a8?w=400&h=300&fit=crop", Category: "Beverages", IsAvailable: true, IsVeg: true, PreparationTime: 5, Rating: 4.5, Ingredients: "Mango, Yogurt, Sugar, Cardamom"},
	{Name: "Fresh Lime Water", Description: "Refreshing lime water with fresh mint leaves", Price: 50, ImageURL: "https://images.unsplash.com/photo-1583064313642-a7c149480c7e?w=400&h=300&fit=crop", Category: "Beverages", IsAvailable: true, IsVeg: true, PreparationTime: 3, Rating: 4.2, Ingredients: "Lime, Water, Sugar, Mint, Salt"},
	{Name: "Masala Chai", Description: "Traditional Indian spiced tea", Price: 30, ImageURL: "https://images.unsplash.com/photo-1597318181864-67930d969e1d?w=400&h=300&fit=crop", Category: "Beverages", IsAvailable: true, IsVeg: true, PreparationTime: 5, Rating: 4.7, Ingredients: "Tea, Milk, Spices, Sugar"},
	{Name: "Gulab Jamun", Description: "Soft milk dumplings in rose-flavored sugar syrup", Price: 90, ImageURL: "https://images.unsplash.com/photo-1571219349904-d80d6ec84ea9?w=400&h=300&fit=crop", Category: "Desserts", IsAvailable: true, IsVeg: true, PreparationTime: 8, Rating: 4.8, Ingredients: "Milk Powder, Flour, Sugar, Rose Water"},
	{Name: "Ras Malai", Description: "Soft cheese dumplings in sweetened, thickened milk", Price: 110, ImageURL: "https://images.unsplash.com/photo-1558961363-fa8fdf82db35?w=400&h=300&fit=crop", Category: "Desserts", IsAvailable: true, IsVeg: true, PreparationTime: 10, Rating: 4.6, Ingredients: "Cottage Cheese, Milk, Sugar, Cardamom, Pistachios"},
	{Name: "Ice Cream", Description: "Assorted flavors of creamy ice cream", Price: 70, ImageURL: "https://images.unsplash.com/photo-1551024506-0bccd828d307?w=400&h=300&fit=crop", Category: "Desserts", IsAvailable: true, IsVeg: true, PreparationTime: 2, Rating: 4.3, Ingredients: "Milk, Cream, Sugar, Various Flavors"},
}

// Run seeds identities, profiles, categories and menu items. Categories and
// menu items are replaced wholesale; existing users are left untouched.
func Run(ctx context.Context, identity *sql.DB, database *db.Database) error {
	for _, u := range seedUsers {
		if err := ensureUser(ctx, identity, database, u); err != nil {
			return err
		}
	}

	now := time.Now()

	if _, err := database.Categories.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	catDocs := make([]interface{}, 0, len(categories))
	for _, c := range categories {
		c.CreatedAt, c.UpdatedAt = now, now
		catDocs = append(catDocs, c)
	}
	if _, err := database.Categories.InsertMany(ctx, catDocs); err != nil {
		return err
	}
	log.Printf("seeded %d categories", len(catDocs))

	if _, err := database.MenuItems.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	itemDocs := make([]interface{}, 0, len(menuItems))
	for _, it := range menuItems {
		itemDocs = append(itemDocs, it)
	}
	if _, err := database.MenuItems.InsertMany(ctx, itemDocs); err != nil {
		return err
	}
	log.Printf("seeded %d menu items", len(itemDocs))

	return nil
}

func ensureUser(ctx context.Context, identity *sql.DB, database *db.Database, u seedUser) error {
	var id int64
	err := identity.QueryRowContext(ctx, "SELECT id FROM users WHERE username = ?", u.Username).Scan(&id)
	if err == sql.ErrNoRows {
		hash, herr := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if herr != nil {
			return herr
		}
		res, ierr := identity.ExecContext(ctx,
			"INSERT INTO users (username, email, password_hash, first_name, last_name, is_staff) VALUES (?, ?, ?, ?, ?, ?)",
			u.Username, u.Email, string(hash), u.FirstName, u.LastName, u.IsStaff)
		if ierr != nil {
			return ierr
		}
		id, _ = res.LastInsertId()
		log.Printf("created user %s", u.Username)
	} else if err != nil {
		return err
	}

	now := time.Now()
	count, err := database.UserProfiles.CountDocuments(ctx, bson.M{"user_id": id})
	if err != nil {
		return err
	}
	if count == 0 {
		_, err = database.UserProfiles.InsertOne(ctx, models.UserProfile{
			UserID:    id,
			Phone:     u.Phone,
			Address:   u.Address,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
