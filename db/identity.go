package db

import (
	"database/sql"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

const identitySchema = `
CREATE TABLE IF NOT EXISTS users (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	username VARCHAR(150) NOT NULL UNIQUE,
	email VARCHAR(254) NOT NULL,
	password_hash VARCHAR(128) NOT NULL,
	first_name VARCHAR(150) NOT NULL DEFAULT '',
	last_name VARCHAR(150) NOT NULL DEFAULT '',
	is_staff BOOLEAN NOT NULL DEFAULT FALSE,
	is_active BOOLEAN NOT NULL DEFAULT TRUE,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// ConnectIdentity opens the relational identity store and ensures the users
// table exists.
func ConnectIdentity(dsn string) (*sql.DB, error) {
	sqldb, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	sqldb.SetMaxOpenConns(25)
	sqldb.SetMaxIdleConns(5)
	sqldb.SetConnMaxLifetime(5 * time.Minute)

	if err := sqldb.Ping(); err != nil {
		sqldb.Close()
		return nil, err
	}
	if _, err := sqldb.Exec(identitySchema); err != nil {
		sqldb.Close()
		return nil, err
	}
	return sqldb, nil
}
