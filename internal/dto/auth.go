package dto

// LoginRequest defines the credential payload for username login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the access token. The refresh token travels in an
// http-only cookie, never in the body.
type LoginResponse struct {
	AccessToken        string       `json:"accessToken"`
	MustChangePassword bool         `json:"mustChangePassword"`
	User               UserResponse `json:"user"`
}

// RefreshResponse carries a freshly minted access token.
type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
}

// GoogleCallbackRequest carries the authorization code returned by Google.
type GoogleCallbackRequest struct {
	Code  string `form:"code" binding:"required"`
	State string `form:"state"`
}
