package models

// APIError is the uniform error envelope every endpoint uses on failure:
// {"success": false, "message": "..."}. The HTTP status carries the category.
type APIError struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// TokenPair is the credential material handed to the transport by the
// credential provider. Provisioning it (login) is an external collaborator.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresAt    string `json:"expires_at,omitempty"`
}

// RefreshRequest exchanges a refresh token for a fresh access token.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// RefreshResponse is the token-refresh endpoint result.
type RefreshResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message,omitempty"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresAt    string `json:"expires_at,omitempty"`
}
