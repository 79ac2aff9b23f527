package middleware

import (
	"context"
	"net/http"

	"srinufoods/globals"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

// JWT claims
type Claims struct {
	Username string `json:"username"`
	UserID   int64  `json:"userId"`
	IsAdmin  bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

func Authenticate(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		tokenString := r.Header.Get("Authorization")
		if tokenString == "" {
			http.Error(w, "Missing token", http.StatusUnauthorized)
			return
		}

		if len(tokenString) < 8 || tokenString[:7] != "Bearer " {
			http.Error(w, "Invalid token format", http.StatusUnauthorized)
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString[7:], claims, func(token *jwt.Token) (any, error) {
			return globals.JwtSecret, nil
		})
		if err != nil || !token.Valid {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), globals.UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, globals.UsernameKey, claims.Username)
		ctx = context.WithValue(ctx, globals.IsAdminKey, claims.IsAdmin)
		next(w, r.WithContext(ctx), ps)
	}
}

// RequireAdmin must be chained after Authenticate.
func RequireAdmin(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if !IsAdminFromRequest(r) {
			http.Error(w, "Admin access required", http.StatusForbidden)
			return
		}
		next(w, r, ps)
	}
}

// Chain composes middleware right-to-left around a handler.
func Chain(wrappers ...func(httprouter.Handle) httprouter.Handle) func(httprouter.Handle) httprouter.Handle {
	return func(h httprouter.Handle) httprouter.Handle {
		for i := len(wrappers) - 1; i >= 0; i-- {
			h = wrappers[i](h)
		}
		return h
	}
}

func UserIDFromRequest(r *http.Request) int64 {
	id, ok := r.Context().Value(globals.UserIDKey).(int64)
	if !ok {
		return 0
	}
	return id
}

func UsernameFromRequest(r *http.Request) string {
	name, _ := r.Context().Value(globals.UsernameKey).(string)
	return name
}

func IsAdminFromRequest(r *http.Request) bool {
	isAdmin, _ := r.Context().Value(globals.IsAdminKey).(bool)
	return isAdmin
}
