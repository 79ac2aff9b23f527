package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"srinufoods/globals"
	"srinufoods/middleware"
	"srinufoods/models"
	"srinufoods/rdx"
	"srinufoods/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

const (
	refreshTokenTTL = 7 * 24 * time.Hour
	accessTokenTTL  = 12 * time.Hour
)

// Service is the identity provider: usernames, passwords and bearer tokens
// live in the relational store, contact profiles in the document store.
type Service struct {
	Identity *sql.DB
	Profiles *mongo.Collection
}

func NewService(identity *sql.DB, profiles *mongo.Collection) *Service {
	return &Service{Identity: identity, Profiles: profiles}
}

type registrationInput struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

func (s *Service) Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input registrationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.Username == "" || input.Password == "" || input.Email == "" {
		utils.Fail(w, http.StatusBadRequest, "Username, email and password are required")
		return
	}

	var exists int
	err := s.Identity.QueryRowContext(ctx, "SELECT COUNT(*) FROM users WHERE username = ?", input.Username).Scan(&exists)
	if err != nil {
		log.Printf("register lookup failed: %v", err)
		utils.Fail(w, http.StatusInternalServerError, "Something went wrong")
		return
	}
	if exists > 0 {
		utils.Fail(w, http.StatusConflict, "User already exists")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("failed to hash password for %s: %v", input.Username, err)
		utils.Fail(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	res, err := s.Identity.ExecContext(ctx,
		"INSERT INTO users (username, email, password_hash, first_name, last_name) VALUES (?, ?, ?, ?, ?)",
		input.Username, input.Email, string(hashedPassword), input.FirstName, input.LastName)
	if err != nil {
		log.Printf("register insert failed: %v", err)
		utils.Fail(w, http.StatusInternalServerError, "Failed to register user")
		return
	}
	userID, _ := res.LastInsertId()

	// Contact fields live in the document store, one profile per identity.
	now := time.Now()
	_, err = s.Profiles.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{
			"$set":         bson.M{"phone": input.Phone, "address": input.Address, "updated_at": now},
			"$setOnInsert": bson.M{"user_id": userID, "created_at": now},
		},
		options.Update().SetUpsert(true))
	if err != nil {
		log.Printf("profile upsert failed for user %d: %v", userID, err)
	}

	if err := rdx.CacheUsername(strconv.FormatInt(userID, 10), input.Username); err != nil {
		log.Printf("failed to cache username: %v", err)
	}

	user := models.IdentityUser{
		ID:        userID,
		Username:  input.Username,
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
	}
	access, refresh, err := s.issueTokens(user)
	if err != nil {
		utils.Fail(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	utils.Success(w, http.StatusCreated, "User registered successfully", utils.M{
		"user":   user,
		"tokens": utils.M{"access": access, "refresh": refresh},
	})
}

func (s *Service) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.Username == "" || input.Password == "" {
		utils.Fail(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	user, err := s.lookupUser(ctx, input.Username)
	if err != nil {
		utils.Fail(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}
	if !user.IsActive {
		utils.Fail(w, http.StatusUnauthorized, "Account is inactive")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		utils.Fail(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	access, refresh, err := s.issueTokens(user)
	if err != nil {
		utils.Fail(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	// Merge contact fields from the profile document.
	var profile models.UserProfile
	phone, address := "", ""
	if err := s.Profiles.FindOne(ctx, bson.M{"user_id": user.ID}).Decode(&profile); err == nil {
		phone, address = profile.Phone, profile.Address
	}

	utils.Success(w, http.StatusOK, "Login successful", utils.M{
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
		"tokens": utils.M{"access": access, "refresh": refresh},
	})
}

// Logout blacklists the presented refresh token until it would expire.
func (s *Service) Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.RefreshToken == "" {
		utils.Fail(w, http.StatusBadRequest, "Error logging out")
		return
	}

	if err := rdx.BlacklistToken(hashToken(input.RefreshToken), refreshTokenTTL); err != nil {
		log.Printf("failed to blacklist refresh token: %v", err)
		utils.Fail(w, http.StatusInternalServerError, "Error logging out")
		return
	}

	utils.Success(w, http.StatusOK, "Successfully logged out", nil)
}

// Refresh trades a valid refresh token for a new access token.
func (s *Service) Refresh(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.RefreshToken == "" {
		utils.Fail(w, http.StatusBadRequest, "Refresh token is required")
		return
	}

	hashed := hashToken(input.RefreshToken)
	if rdx.IsTokenBlacklisted(hashed) {
		utils.Fail(w, http.StatusUnauthorized, "Invalid refresh token")
		return
	}
	userID, err := rdx.Conn.Get(globals.Ctx, "refresh:"+hashed).Int64()
	if err != nil {
		utils.Fail(w, http.StatusUnauthorized, "Invalid refresh token")
		return
	}

	var user models.IdentityUser
	row := s.Identity.QueryRowContext(ctx,
		"SELECT id, username, email, password_hash, first_name, last_name, is_staff, is_active, created_at FROM users WHERE id = ?", userID)
	if err := scanUser(row, &user); err != nil || !user.IsActive {
		utils.Fail(w, http.StatusUnauthorized, "Invalid refresh token")
		return
	}

	access, err := s.accessToken(user)
	if err != nil {
		utils.Fail(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}
	utils.Success(w, http.StatusOK, "", utils.M{"tokens": utils.M{"access": access}})
}

func (s *Service) lookupUser(ctx context.Context, username string) (models.IdentityUser, error) {
	var user models.IdentityUser
	row := s.Identity.QueryRowContext(ctx,
		"SELECT id, username, email, password_hash, first_name, last_name, is_staff, is_active, created_at FROM users WHERE username = ?", username)
	err := scanUser(row, &user)
	return user, err
}

func scanUser(row *sql.Row, u *models.IdentityUser) error {
	return row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.IsStaff, &u.IsActive, &u.CreatedAt)
}

func (s *Service) accessToken(user models.IdentityUser) (string, error) {
	claims := &middleware.Claims{
		Username: user.Username,
		UserID:   user.ID,
		IsAdmin:  user.IsStaff,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(accessTokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(globals.JwtSecret)
}

func (s *Service) issueTokens(user models.IdentityUser) (access, refresh string, err error) {
	access, err = s.accessToken(user)
	if err != nil {
		return "", "", err
	}
	refresh, err = generateRefreshToken()
	if err != nil {
		return "", "", err
	}
	err = rdx.Conn.Set(globals.Ctx, "refresh:"+hashToken(refresh), user.ID, refreshTokenTTL).Err()
	if err != nil {
		log.Printf("failed to store refresh token for user %d: %v", user.ID, err)
	}
	return access, refresh, nil
}

func generateRefreshToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
