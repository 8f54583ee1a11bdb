package repositories

import (
	"context"
	"errors"

	"pg-backend/internal/apperrors"
	"pg-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RentPaymentRepository struct {
	DB *pgxpool.Pool
}

func NewRentPaymentRepository(db *pgxpool.Pool) *RentPaymentRepository {
	return &RentPaymentRepository{DB: db}
}

// CreateForMonth records a rent payment for (tenant, month) exactly once.
// The existence check and the insert run in one transaction so two
// concurrent pay clicks cannot both pass the not-yet-paid check; the
// second caller gets the existing row and alreadyPaid=true.
func (r *RentPaymentRepository) CreateForMonth(ctx context.Context, p *models.RentPayment) (alreadyPaid bool, err error) {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return false, apperrors.Storage(err, "begin rent payment")
	}
	defer tx.Rollback(ctx)

	existing := &models.RentPayment{}
	err = tx.QueryRow(ctx,
		`SELECT rent_id, tenant_id, month, rent_amount, late_fee, total_amount, status, due_date, paid_date
		 FROM rent_payments
		 WHERE tenant_id=$1 AND month=$2
		 FOR UPDATE`, p.TenantID, p.Month,
	).Scan(&existing.ID, &existing.TenantID, &existing.Month, &existing.RentAmount,
		&existing.LateFee, &existing.TotalAmount, &existing.Status, &existing.DueDate, &existing.PaidDate)
	if err == nil {
		*p = *existing
		return true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return false, apperrors.Storage(err, "check existing payment")
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO rent_payments(tenant_id, month, rent_amount, late_fee, total_amount, status, due_date, paid_date)
		 VALUES($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING rent_id`,
		p.TenantID, p.Month, p.RentAmount, p.LateFee, p.TotalAmount, p.Status, p.DueDate, p.PaidDate,
	).Scan(&p.ID)
	if err != nil {
		return false, apperrors.Storage(err, "insert rent payment")
	}

	if err := tx.Commit(ctx); err != nil {
		return false, apperrors.Storage(err, "commit rent payment")
	}
	return false, nil
}

func (r *RentPaymentRepository) Get(ctx context.Context, id int) (*models.RentPayment, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT rp.rent_id, rp.tenant_id, t.tenant_name, rp.month, rp.rent_amount,
		        rp.late_fee, rp.total_amount, rp.status, rp.due_date, rp.paid_date
		 FROM rent_payments rp
		 JOIN tenants t ON rp.tenant_id = t.tenant_id
		 WHERE rp.rent_id=$1`, id)

	var p models.RentPayment
	err := row.Scan(&p.ID, &p.TenantID, &p.TenantName, &p.Month, &p.RentAmount,
		&p.LateFee, &p.TotalAmount, &p.Status, &p.DueDate, &p.PaidDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFound("rent payment %d not found", id)
	}
	if err != nil {
		return nil, apperrors.Storage(err, "get rent payment")
	}
	return &p, nil
}

// List returns all payments joined with the tenant name, newest first
func (r *RentPaymentRepository) List(ctx context.Context) ([]*models.RentPayment, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT rp.rent_id, rp.tenant_id, t.tenant_name, rp.month, rp.rent_amount,
		        rp.late_fee, rp.total_amount, rp.status, rp.due_date, rp.paid_date
		 FROM rent_payments rp
		 JOIN tenants t ON rp.tenant_id = t.tenant_id
		 ORDER BY rp.paid_date DESC`)
	if err != nil {
		return nil, apperrors.Storage(err, "list rent payments")
	}
	defer rows.Close()

	return scanPaymentsWithName(rows)
}

// ListByTenant returns one tenant's payments, newest first
func (r *RentPaymentRepository) ListByTenant(ctx context.Context, tenantID int) ([]*models.RentPayment, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT rent_id, tenant_id, month, rent_amount, late_fee, total_amount, status, due_date, paid_date
		 FROM rent_payments
		 WHERE tenant_id=$1
		 ORDER BY paid_date DESC`, tenantID)
	if err != nil {
		return nil, apperrors.Storage(err, "list tenant payments")
	}
	defer rows.Close()

	var payments []*models.RentPayment
	for rows.Next() {
		var p models.RentPayment
		err := rows.Scan(&p.ID, &p.TenantID, &p.Month, &p.RentAmount,
			&p.LateFee, &p.TotalAmount, &p.Status, &p.DueDate, &p.PaidDate)
		if err != nil {
			return nil, apperrors.Storage(err, "scan rent payment")
		}
		payments = append(payments, &p)
	}
	return payments, rows.Err()
}

// ListUnpaidTenants returns tenants with zero PAID rows over their whole
// history. This is deliberately a lifetime view, not scoped to a month.
func (r *RentPaymentRepository) ListUnpaidTenants(ctx context.Context) ([]*models.TenantRentStatus, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT t.tenant_id, t.tenant_name, r.room_no
		 FROM tenants t
		 JOIN rooms r ON t.room_id = r.room_id
		 WHERE NOT EXISTS (
		     SELECT 1 FROM rent_payments rp
		     WHERE rp.tenant_id = t.tenant_id AND rp.status = 'PAID'
		 )
		 ORDER BY t.tenant_name`)
	if err != nil {
		return nil, apperrors.Storage(err, "list unpaid tenants")
	}
	defer rows.Close()

	return scanRentStatuses(rows)
}

// ListPaidForMonth returns tenants with a PAID row for the given month
func (r *RentPaymentRepository) ListPaidForMonth(ctx context.Context, month string) ([]*models.TenantRentStatus, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT t.tenant_id, t.tenant_name, r.room_no
		 FROM tenants t
		 JOIN rooms r ON t.room_id = r.room_id
		 WHERE EXISTS (
		     SELECT 1 FROM rent_payments rp
		     WHERE rp.tenant_id = t.tenant_id AND rp.status = 'PAID' AND rp.month = $1
		 )
		 ORDER BY t.tenant_name`, month)
	if err != nil {
		return nil, apperrors.Storage(err, "list paid tenants for month")
	}
	defer rows.Close()

	return scanRentStatuses(rows)
}

func scanPaymentsWithName(rows pgx.Rows) ([]*models.RentPayment, error) {
	var payments []*models.RentPayment
	for rows.Next() {
		var p models.RentPayment
		err := rows.Scan(&p.ID, &p.TenantID, &p.TenantName, &p.Month, &p.RentAmount,
			&p.LateFee, &p.TotalAmount, &p.Status, &p.DueDate, &p.PaidDate)
		if err != nil {
			return nil, apperrors.Storage(err, "scan rent payment")
		}
		payments = append(payments, &p)
	}
	return payments, rows.Err()
}

func scanRentStatuses(rows pgx.Rows) ([]*models.TenantRentStatus, error) {
	var statuses []*models.TenantRentStatus
	for rows.Next() {
		var s models.TenantRentStatus
		if err := rows.Scan(&s.TenantID, &s.TenantName, &s.RoomNo); err != nil {
			return nil, apperrors.Storage(err, "scan rent status")
		}
		statuses = append(statuses, &s)
	}
	return statuses, rows.Err()
}
