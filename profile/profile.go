package profile

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"srinufoods/middleware"
	"srinufoods/models"
	"srinufoods/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Service struct {
	Identity *sql.DB
	Profiles *mongo.Collection
}

func NewService(identity *sql.DB, profiles *mongo.Collection) *Service {
	return &Service{Identity: identity, Profiles: profiles}
}

// Get returns the merged identity + contact profile for the caller.
func (s *Service) Get(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := middleware.UserIDFromRequest(r)

	var user models.IdentityUser
	row := s.Identity.QueryRowContext(ctx,
		"SELECT id, username, email, first_name, last_name, is_staff FROM users WHERE id = ?", userID)
	if err := row.Scan(&user.ID, &user.Username, &user.Email, &user.FirstName, &user.LastName, &user.IsStaff); err != nil {
		utils.Fail(w, http.StatusNotFound, "User not found")
		return
	}

	var profile models.UserProfile
	phone, address := "", ""
	if err := s.Profiles.FindOne(ctx, bson.M{"user_id": userID}).Decode(&profile); err == nil {
		phone, address = profile.Phone, profile.Address
	}

	utils.Success(w, http.StatusOK, "", utils.M{
		"user": utils.M{
			"id":         user.ID,
			"username":   user.Username,
			"email":      user.Email,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"phone":      phone,
			"address":    address,
			"is_staff":   user.IsStaff,
		},
	})
}

// Update writes name/email to the identity store and upserts the contact
// document. Orders keep their denormalized snapshots regardless.
func (s *Service) Update(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := middleware.UserIDFromRequest(r)

	var input struct {
		FirstName *string `json:"first_name"`
		LastName  *string `json:"last_name"`
		Email     *string `json:"email"`
		Phone     string  `json:"phone"`
		Address   string  `json:"address"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if input.FirstName != nil || input.LastName != nil || input.Email != nil {
		_, err := s.Identity.ExecContext(ctx,
			"UPDATE users SET first_name = COALESCE(?, first_name), last_name = COALESCE(?, last_name), email = COALESCE(?, email) WHERE id = ?",
			input.FirstName, input.LastName, input.Email, userID)
		if err != nil {
			log.Printf("identity update failed for user %d: %v", userID, err)
			utils.Fail(w, http.StatusInternalServerError, "Error updating profile")
			return
		}
	}

	now := time.Now()
	_, err := s.Profiles.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{
			"$set":         bson.M{"phone": input.Phone, "address": input.Address, "updated_at": now},
			"$setOnInsert": bson.M{"user_id": userID, "created_at": now},
		},
		options.Update().SetUpsert(true))
	if err != nil {
		log.Printf("profile upsert failed for user %d: %v", userID, err)
		utils.Fail(w, http.StatusInternalServerError, "Error updating profile")
		return
	}

	utils.Success(w, http.StatusOK, "Profile updated successfully", nil)
}
