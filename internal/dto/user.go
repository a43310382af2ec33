package dto

import "github.com/stroyhub/fitout_crm_backend/internal/core/domain"

// CreateUserRequest defines the data needed to register a user.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=4"`
}

// UpdateUserRequest edits a user's display name.
type UpdateUserRequest struct {
	Name string `json:"name" binding:"required"`
}

// ChangePasswordRequest defines the payload for a password change. The
// confirmation must match the new password.
type ChangePasswordRequest struct {
	OldPassword     string `json:"oldPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=4"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=NewPassword"`
}

// UserResponse defines the data returned for a user. The password hash
// never leaves the server.
type UserResponse struct {
	UserID             string `json:"userID"`
	Username           string `json:"username"`
	Name               string `json:"name"`
	MustChangePassword bool   `json:"mustChangePassword"`
	CreatedAt          string `json:"createdAt"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:             u.UserID,
		Username:           u.Username,
		Name:               u.Name,
		MustChangePassword: u.MustChangePassword,
		CreatedAt:          u.CreatedAt.Format(DateFormat),
	}
}
