package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "MONGODB_URI", "MONGODB_NAME", "CORS_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "srinu_foods", cfg.MongoDB)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MYSQL_HOST", "db.internal")
	t.Setenv("CORS_ORIGINS", "https://a.example.com,https://b.example.com")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "db.internal", cfg.MySQLHost)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSOrigins)
}

func TestMySQLDSN(t *testing.T) {
	cfg := &Config{
		MySQLUser: "app",
		MySQLPass: "secret",
		MySQLHost: "localhost",
		MySQLPort: "3306",
		MySQLDB:   "srinu_foods",
	}

	assert.Equal(t, "app:secret@tcp(localhost:3306)/srinu_foods?parseTime=true&charset=utf8mb4", cfg.MySQLDSN())
}

func TestAddr(t *testing.T) {
	assert.Equal(t, ":8080", (&Config{Port: "8080"}).Addr())
	assert.Equal(t, ":8080", (&Config{Port: ":8080"}).Addr())
}
