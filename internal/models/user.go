package models

import (
	"database/sql"
	"time"
)

// User represents a row of the users table.
type User struct {
	UserID         string         `db:"user_id"`
	Name           string         `db:"name"`
	Username       string         `db:"username"`
	Email          string         `db:"email"`
	PasswordHash   sql.NullString `db:"password_hash"`
	AuthProvider   string         `db:"auth_provider"`
	ProviderUserID sql.NullString `db:"provider_user_id"`
	IsAdmin        bool           `db:"is_admin"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
