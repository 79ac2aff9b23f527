package globals

import (
	"context"
	"os"
)

var JwtSecret = []byte(secretFromEnv())

func secretFromEnv() string {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return s
	}
	return "srinu_foods_dev_secret"
}

// Context keys
type ContextKey string

const UserIDKey ContextKey = "userId"
const UsernameKey ContextKey = "username"
const IsAdminKey ContextKey = "isAdmin"

var Ctx = context.Background()
