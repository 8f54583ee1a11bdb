package repositories

import (
	"context"
	"errors"

	"pg-backend/internal/apperrors"
	"pg-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TenantRepository struct {
	DB *pgxpool.Pool
}

func NewTenantRepository(db *pgxpool.Pool) *TenantRepository {
	return &TenantRepository{DB: db}
}

// CreateWithUser onboards a tenant as one atomic unit: insert the tenant
// row, insert the linked login user, and take one spot in the room. The
// room row is locked first so two concurrent onboardings cannot both win
// the last spot; a full room surfaces as ConflictError and nothing is
// written.
func (r *TenantRepository) CreateWithUser(ctx context.Context, t *models.Tenant, u *models.User) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return apperrors.Storage(err, "begin onboarding")
	}
	defer tx.Rollback(ctx)

	var capacity, occupancy, rentPerPerson int
	err = tx.QueryRow(ctx,
		`SELECT capacity, current_occupancy, rent_per_person
		 FROM rooms WHERE room_id=$1 FOR UPDATE`, t.RoomID,
	).Scan(&capacity, &occupancy, &rentPerPerson)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NotFound("room %d not found", t.RoomID)
	}
	if err != nil {
		return apperrors.Storage(err, "lock room")
	}

	if occupancy >= capacity {
		return apperrors.Conflict("room %d is at full capacity", t.RoomID)
	}

	// Deposit equals the room's per-person rent
	t.DepositAmount = rentPerPerson
	if t.DepositStatus == "" {
		t.DepositStatus = models.DepositHeld
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO users(username, password_hash, role, status)
		 VALUES($1, $2, $3, $4)
		 RETURNING user_id, created_at`,
		u.Username, u.PasswordHash, u.Role, u.Status,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		return apperrors.Storage(err, "insert tenant user")
	}
	t.UserID = u.ID

	err = tx.QueryRow(ctx,
		`INSERT INTO tenants(user_id, tenant_name, contact, room_id, deposit_amount, deposit_status)
		 VALUES($1, $2, $3, $4, $5, $6)
		 RETURNING tenant_id`,
		t.UserID, t.Name, t.Contact, t.RoomID, t.DepositAmount, t.DepositStatus,
	).Scan(&t.ID)
	if err != nil {
		return apperrors.Storage(err, "insert tenant")
	}

	tag, err := tx.Exec(ctx,
		`UPDATE rooms SET current_occupancy = current_occupancy + 1
		 WHERE room_id=$1 AND current_occupancy < capacity`, t.RoomID)
	if err != nil {
		return apperrors.Storage(err, "update occupancy")
	}
	if tag.RowsAffected() == 0 {
		// Cannot happen while the row lock is held; kept as a guard.
		return apperrors.Conflict("room %d is at full capacity", t.RoomID)
	}

	if err := tx.Commit(ctx); err != nil {
		return apperrors.Storage(err, "commit onboarding")
	}
	return nil
}

func (r *TenantRepository) Get(ctx context.Context, id int) (*models.Tenant, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT tenant_id, COALESCE(user_id, 0), tenant_name, contact, room_id, deposit_amount, deposit_status
		 FROM tenants WHERE tenant_id=$1`, id)

	var t models.Tenant
	err := row.Scan(&t.ID, &t.UserID, &t.Name, &t.Contact, &t.RoomID, &t.DepositAmount, &t.DepositStatus)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFound("tenant %d not found", id)
	}
	if err != nil {
		return nil, apperrors.Storage(err, "get tenant")
	}
	return &t, nil
}

// GetByUserID resolves the tenant record for an authenticated session
func (r *TenantRepository) GetByUserID(ctx context.Context, userID int) (*models.Tenant, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT tenant_id, COALESCE(user_id, 0), tenant_name, contact, room_id, deposit_amount, deposit_status
		 FROM tenants WHERE user_id=$1`, userID)

	var t models.Tenant
	err := row.Scan(&t.ID, &t.UserID, &t.Name, &t.Contact, &t.RoomID, &t.DepositAmount, &t.DepositStatus)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFound("no tenant record for user %d", userID)
	}
	if err != nil {
		return nil, apperrors.Storage(err, "get tenant by user")
	}
	return &t, nil
}

// ListWithRooms returns every tenant joined with its room. floor filters
// when > 0.
func (r *TenantRepository) ListWithRooms(ctx context.Context, floor int) ([]*models.TenantWithRoom, error) {
	query := `
		SELECT t.tenant_id, COALESCE(t.user_id, 0), t.tenant_name, t.contact, t.room_id,
		       t.deposit_amount, t.deposit_status, r.room_no, r.floor
		FROM tenants t
		JOIN rooms r ON t.room_id = r.room_id
	`
	args := []interface{}{}
	if floor > 0 {
		query += ` WHERE r.floor = $1`
		args = append(args, floor)
	}
	query += ` ORDER BY r.floor, r.room_no, t.tenant_name`

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Storage(err, "list tenants")
	}
	defer rows.Close()

	var tenants []*models.TenantWithRoom
	for rows.Next() {
		var t models.TenantWithRoom
		err := rows.Scan(&t.ID, &t.UserID, &t.Name, &t.Contact, &t.RoomID,
			&t.DepositAmount, &t.DepositStatus, &t.RoomNo, &t.Floor)
		if err != nil {
			return nil, apperrors.Storage(err, "scan tenant")
		}
		tenants = append(tenants, &t)
	}
	return tenants, rows.Err()
}

// GetWithRoom returns a single tenant joined with its room (self-view)
func (r *TenantRepository) GetWithRoom(ctx context.Context, tenantID int) (*models.TenantWithRoom, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT t.tenant_id, COALESCE(t.user_id, 0), t.tenant_name, t.contact, t.room_id,
		        t.deposit_amount, t.deposit_status, r.room_no, r.floor
		 FROM tenants t
		 JOIN rooms r ON t.room_id = r.room_id
		 WHERE t.tenant_id=$1`, tenantID)

	var t models.TenantWithRoom
	err := row.Scan(&t.ID, &t.UserID, &t.Name, &t.Contact, &t.RoomID,
		&t.DepositAmount, &t.DepositStatus, &t.RoomNo, &t.Floor)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFound("tenant %d not found", tenantID)
	}
	if err != nil {
		return nil, apperrors.Storage(err, "get tenant with room")
	}
	return &t, nil
}
