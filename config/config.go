package config

import (
	"os"
	"strings"
)

type Config struct {
	Port        string
	MongoURI    string
	MongoDB     string
	MySQLUser   string
	MySQLPass   string
	MySQLHost   string
	MySQLPort   string
	MySQLDB     string
	RedisAddr   string
	RedisPass   string
	CORSOrigins []string
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		MongoURI:    getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:     getEnv("MONGODB_NAME", "srinu_foods"),
		MySQLUser:   getEnv("MYSQL_USER", "root"),
		MySQLPass:   getEnv("MYSQL_PASSWORD", ""),
		MySQLHost:   getEnv("MYSQL_HOST", "localhost"),
		MySQLPort:   getEnv("MYSQL_PORT", "3306"),
		MySQLDB:     getEnv("MYSQL_DB", "srinu_foods"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:   getEnv("REDIS_PASSWORD", ""),
		CORSOrigins: strings.Split(getEnv("CORS_ORIGINS", "*"), ","),
	}
}

// MySQLDSN builds the identity-store DSN. parseTime is required so that
// created_at columns scan into time.Time.
func (c *Config) MySQLDSN() string {
	return c.MySQLUser + ":" + c.MySQLPass + "@tcp(" + c.MySQLHost + ":" + c.MySQLPort + ")/" + c.MySQLDB + "?parseTime=true&charset=utf8mb4"
}

func (c *Config) Addr() string {
	if c.Port[0] == ':' {
		return c.Port
	}
	return ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
