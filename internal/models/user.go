package models

import (
	"database/sql"
	"time"
)

// User represents a row of the users table.
type User struct {
	UserID             string `db:"user_id"`
	Username           string `db:"username"`
	PasswordHash       string `db:"password_hash"`
	Name               string `db:"name"`
	MustChangePassword bool   `db:"must_change_password"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`

	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"`
}
