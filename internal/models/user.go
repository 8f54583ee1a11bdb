package models

import "time"

// Role and status values are part of the stored-data contract and must not change.
const (
	RoleAdmin  = "ADMIN"
	RoleTenant = "TENANT"

	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	Role         string    `json:"role"`   // ADMIN or TENANT
	Status       string    `json:"status"` // ACTIVE or INACTIVE
	TOTPSecret   string    `json:"-"`
	TOTPEnabled  bool      `json:"totp_enabled"`
	CreatedAt    time.Time `json:"created_at"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	Token       string `json:"token,omitempty"`
	Role        string `json:"role"`
	DisplayName string `json:"display_name"`
	// RequiresTOTP is set instead of Token when the account has 2FA enabled;
	// the client completes login via /auth/login/2fa with TempToken.
	RequiresTOTP bool   `json:"requires_totp,omitempty"`
	TempToken    string `json:"temp_token,omitempty"`
}

// TOTPLoginRequest completes a 2FA login
type TOTPLoginRequest struct {
	TempToken string `json:"temp_token"`
	Code      string `json:"code"`
}

// ResetPasswordResponse carries a freshly generated temporary password.
// The plaintext is returned exactly once; only the bcrypt hash is stored.
type ResetPasswordResponse struct {
	UserID            int    `json:"user_id"`
	Username          string `json:"username"`
	TemporaryPassword string `json:"temporary_password"`
}
