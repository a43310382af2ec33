package domain

import "time"

// User represents a user of the application in the domain.
type User struct {
	UserID             string `json:"userID"` // Primary Key (UUID)
	Username           string `json:"username"`
	Name               string `json:"name"`
	PasswordHash       string `json:"-"`
	MustChangePassword bool   `json:"mustChangePassword"`
	// Refresh token state, stored hashed.
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}

// GoogleUserInfo holds the verified profile fields returned by Google after
// a successful sign-in.
type GoogleUserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
