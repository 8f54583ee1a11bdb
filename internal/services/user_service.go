package services

import (
	"context"
	"log"

	"pg-backend/internal/apperrors"
	"pg-backend/internal/auth"
	"pg-backend/internal/cache"
	"pg-backend/internal/config"
	"pg-backend/internal/models"
)

const tempPasswordLength = 12

// UserStore is the persistence surface UserService needs.
type UserStore interface {
	Get(ctx context.Context, id int) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	SetStatus(ctx context.Context, userID int, status string) error
	SetPasswordHash(ctx context.Context, userID int, hash string) error
	SetTOTPSecret(ctx context.Context, userID int, secret string) error
	EnableTOTP(ctx context.Context, userID int) error
	DisableTOTP(ctx context.Context, userID int) error
	EnsureAdmin(ctx context.Context, username, passwordHash string) error
}

// TenantResolver maps a user account to its tenant record, if any.
type TenantResolver interface {
	GetByUserID(ctx context.Context, userID int) (*models.Tenant, error)
}

type UserService struct {
	Repo       UserStore
	Tenants    TenantResolver
	JWTManager *auth.JWTManager
}

func NewUserService(repo UserStore, tenants TenantResolver, jwtManager *auth.JWTManager) *UserService {
	return &UserService{
		Repo:       repo,
		Tenants:    tenants,
		JWTManager: jwtManager,
	}
}

// EnsureAdmin seeds the bootstrap admin account if no user with that
// username exists yet. The password is hashed here so no plaintext ever
// reaches the database.
func (s *UserService) EnsureAdmin(ctx context.Context, cfg *config.Config) error {
	hash, err := auth.HashPassword(cfg.Admin.BootstrapPassword)
	if err != nil {
		return err
	}
	return s.Repo.EnsureAdmin(ctx, cfg.Admin.BootstrapUsername, hash)
}

// Login authenticates a user and returns a JWT token. Unknown username,
// wrong password and an INACTIVE account all return the same
// ErrUnauthorized so a caller cannot probe which field was wrong.
func (s *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, apperrors.ErrUnauthorized
	}

	var user *models.User

	// Redis fast path: a cache hit proves the credentials were recently
	// verified, so skip the bcrypt comparison.
	if userID, ok := cache.GetCachedAuth(ctx, req.Username, req.Password); ok {
		u, err := s.Repo.Get(ctx, int(userID))
		if err == nil {
			user = u
		}
	}

	if user == nil {
		u, err := s.Repo.GetByUsername(ctx, req.Username)
		if err != nil {
			return nil, apperrors.ErrUnauthorized
		}
		if !auth.VerifyPassword(u.PasswordHash, req.Password) {
			return nil, apperrors.ErrUnauthorized
		}
		cache.CacheAuth(ctx, req.Username, req.Password, int64(u.ID))
		user = u
	}

	if user.Status != models.StatusActive {
		return nil, apperrors.ErrUnauthorized
	}

	displayName, err := s.displayName(ctx, user)
	if err != nil {
		return nil, err
	}

	// Accounts with 2FA enabled get a short-lived temp token instead of
	// a session token; the client finishes via LoginTOTP.
	if user.TOTPEnabled {
		tempToken, err := s.JWTManager.GenerateTempToken(user)
		if err != nil {
			return nil, err
		}
		return &models.AuthResponse{
			Role:         user.Role,
			DisplayName:  displayName,
			RequiresTOTP: true,
			TempToken:    tempToken,
		}, nil
	}

	token, err := s.JWTManager.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token:       token,
		Role:        user.Role,
		DisplayName: displayName,
	}, nil
}

// LoginTOTP completes a 2FA login started by Login
func (s *UserService) LoginTOTP(ctx context.Context, req *models.TOTPLoginRequest) (*models.AuthResponse, error) {
	claims, err := s.JWTManager.ValidateTempToken(req.TempToken)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	user, err := s.Repo.Get(ctx, claims.UserID)
	if err != nil || user.Status != models.StatusActive {
		return nil, apperrors.ErrUnauthorized
	}

	if !user.TOTPEnabled || !auth.ValidateTOTPCode(user.TOTPSecret, req.Code) {
		return nil, apperrors.ErrUnauthorized
	}

	displayName, err := s.displayName(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := s.JWTManager.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token:       token,
		Role:        user.Role,
		DisplayName: displayName,
	}, nil
}

// displayName is the tenant's name for TENANT accounts and the username
// otherwise.
func (s *UserService) displayName(ctx context.Context, user *models.User) (string, error) {
	if user.Role != models.RoleTenant {
		return user.Username, nil
	}
	tenant, err := s.Tenants.GetByUserID(ctx, user.ID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			// Tenant row was removed but the account lingers; fall back
			// rather than failing the login.
			return user.Username, nil
		}
		return "", err
	}
	return tenant.Name, nil
}

func (s *UserService) GetUser(ctx context.Context, id int) (*models.User, error) {
	return s.Repo.Get(ctx, id)
}

func (s *UserService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.Repo.List(ctx)
}

// SetUserStatus activates or deactivates an account. Deactivation takes
// effect on the next request: the auth middleware re-checks status on
// every call, so an existing token stops working immediately.
func (s *UserService) SetUserStatus(ctx context.Context, userID int, status string) error {
	if status != models.StatusActive && status != models.StatusInactive {
		return apperrors.Validation("status must be %s or %s", models.StatusActive, models.StatusInactive)
	}
	return s.Repo.SetStatus(ctx, userID, status)
}

// ResetPassword generates a fresh temporary password for a user and
// stores only its hash. The plaintext is returned once for the admin to
// hand over.
func (s *UserService) ResetPassword(ctx context.Context, userID int) (*models.ResetPasswordResponse, error) {
	user, err := s.Repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	tempPassword, err := auth.GenerateTempPassword(tempPasswordLength)
	if err != nil {
		return nil, err
	}
	hash, err := auth.HashPassword(tempPassword)
	if err != nil {
		return nil, err
	}

	if err := s.Repo.SetPasswordHash(ctx, userID, hash); err != nil {
		return nil, err
	}
	log.Printf("[Users] Password reset for user %d (%s)", user.ID, user.Username)

	return &models.ResetPasswordResponse{
		UserID:            user.ID,
		Username:          user.Username,
		TemporaryPassword: tempPassword,
	}, nil
}

// SetupTOTP generates a new TOTP secret for the user and returns the
// QR payload. 2FA is not enabled until the user confirms a code.
func (s *UserService) SetupTOTP(ctx context.Context, userID int) (*auth.TOTPSetup, error) {
	user, err := s.Repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	setup, err := auth.GenerateTOTPSetup(user.Username)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.SetTOTPSecret(ctx, userID, setup.Secret); err != nil {
		return nil, err
	}
	return setup, nil
}

// EnableTOTP verifies the first code against the pending secret and
// turns 2FA on.
func (s *UserService) EnableTOTP(ctx context.Context, userID int, code string) error {
	user, err := s.Repo.Get(ctx, userID)
	if err != nil {
		return err
	}
	if user.TOTPSecret == "" {
		return apperrors.Validation("2FA setup not initiated")
	}
	if !auth.ValidateTOTPCode(user.TOTPSecret, code) {
		return apperrors.Validation("invalid verification code")
	}
	return s.Repo.EnableTOTP(ctx, userID)
}

// DisableTOTP turns 2FA off after re-verifying the password and a
// current code.
func (s *UserService) DisableTOTP(ctx context.Context, userID int, password, code string) error {
	user, err := s.Repo.Get(ctx, userID)
	if err != nil {
		return err
	}
	if !auth.VerifyPassword(user.PasswordHash, password) {
		return apperrors.ErrUnauthorized
	}
	if !user.TOTPEnabled || !auth.ValidateTOTPCode(user.TOTPSecret, code) {
		return apperrors.Validation("invalid verification code")
	}
	return s.Repo.DisableTOTP(ctx, userID)
}
