package repositories

import (
	"context"
	"errors"

	"pg-backend/internal/apperrors"
	"pg-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	DB *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	if u.Status == "" {
		u.Status = models.StatusActive
	}
	err := r.DB.QueryRow(ctx,
		`INSERT INTO users(username, password_hash, role, status)
         VALUES($1, $2, $3, $4)
         RETURNING user_id, created_at`,
		u.Username, u.PasswordHash, u.Role, u.Status,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		return apperrors.Storage(err, "insert user")
	}
	return nil
}

func (r *UserRepository) Get(ctx context.Context, id int) (*models.User, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT user_id, username, password_hash, role, status,
		 COALESCE(totp_secret, ''), COALESCE(totp_enabled, false), created_at
         FROM users WHERE user_id=$1`, id)

	var user models.User
	err := row.Scan(&user.ID, &user.Username, &user.PasswordHash,
		&user.Role, &user.Status, &user.TOTPSecret, &user.TOTPEnabled, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFound("user %d not found", id)
	}
	if err != nil {
		return nil, apperrors.Storage(err, "get user")
	}
	return &user, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT user_id, username, password_hash, role, status,
		 COALESCE(totp_secret, ''), COALESCE(totp_enabled, false), created_at
         FROM users WHERE username=$1`, username)

	var user models.User
	err := row.Scan(&user.ID, &user.Username, &user.PasswordHash,
		&user.Role, &user.Status, &user.TOTPSecret, &user.TOTPEnabled, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFound("user %q not found", username)
	}
	if err != nil {
		return nil, apperrors.Storage(err, "get user by username")
	}
	return &user, nil
}

// List returns all users, newest first
func (r *UserRepository) List(ctx context.Context) ([]*models.User, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT user_id, username, role, status, COALESCE(totp_enabled, false), created_at
         FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, apperrors.Storage(err, "list users")
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		var user models.User
		err := rows.Scan(&user.ID, &user.Username, &user.Role, &user.Status,
			&user.TOTPEnabled, &user.CreatedAt)
		if err != nil {
			return nil, apperrors.Storage(err, "scan user")
		}
		users = append(users, &user)
	}
	return users, rows.Err()
}

// SetStatus activates or deactivates an account. INACTIVE users cannot
// authenticate.
func (r *UserRepository) SetStatus(ctx context.Context, userID int, status string) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE users SET status=$1 WHERE user_id=$2`, status, userID)
	if err != nil {
		return apperrors.Storage(err, "set user status")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("user %d not found", userID)
	}
	return nil
}

// SetPasswordHash replaces a user's credential hash
func (r *UserRepository) SetPasswordHash(ctx context.Context, userID int, hash string) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE users SET password_hash=$1 WHERE user_id=$2`, hash, userID)
	if err != nil {
		return apperrors.Storage(err, "set password hash")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("user %d not found", userID)
	}
	return nil
}

// SetTOTPSecret stores the TOTP secret for a user (during setup, before verification)
func (r *UserRepository) SetTOTPSecret(ctx context.Context, userID int, secret string) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE users SET totp_secret=$1 WHERE user_id=$2`, secret, userID)
	if err != nil {
		return apperrors.Storage(err, "set totp secret")
	}
	return nil
}

// EnableTOTP marks 2FA as enabled after verification
func (r *UserRepository) EnableTOTP(ctx context.Context, userID int) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE users SET totp_enabled=true WHERE user_id=$1`, userID)
	if err != nil {
		return apperrors.Storage(err, "enable totp")
	}
	return nil
}

// DisableTOTP disables 2FA and clears the secret
func (r *UserRepository) DisableTOTP(ctx context.Context, userID int) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE users SET totp_enabled=false, totp_secret=NULL WHERE user_id=$1`, userID)
	if err != nil {
		return apperrors.Storage(err, "disable totp")
	}
	return nil
}

// EnsureAdmin seeds the default admin account if it is absent. Idempotent
// on the username uniqueness; the hash is computed at startup so no
// plaintext or precomputed credential lives in the migrations.
func (r *UserRepository) EnsureAdmin(ctx context.Context, username, passwordHash string) error {
	_, err := r.DB.Exec(ctx,
		`INSERT INTO users(username, password_hash, role, status)
		 VALUES($1, $2, $3, $4)
		 ON CONFLICT (username) DO NOTHING`,
		username, passwordHash, models.RoleAdmin, models.StatusActive)
	if err != nil {
		return apperrors.Storage(err, "seed admin user")
	}
	return nil
}
