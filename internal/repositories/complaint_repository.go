package repositories

import (
	"context"

	"pg-backend/internal/apperrors"
	"pg-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ComplaintRepository struct {
	DB *pgxpool.Pool
}

func NewComplaintRepository(db *pgxpool.Pool) *ComplaintRepository {
	return &ComplaintRepository{DB: db}
}

func (r *ComplaintRepository) Create(ctx context.Context, c *models.Complaint) error {
	if c.Status == "" {
		c.Status = models.ComplaintOpen
	}
	err := r.DB.QueryRow(ctx,
		`INSERT INTO complaints(tenant_id, category, scope, description, status)
		 VALUES($1, $2, $3, $4, $5)
		 RETURNING complaint_id, created_at`,
		c.TenantID, c.Category, c.Scope, c.Description, c.Status,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return apperrors.Storage(err, "insert complaint")
	}
	return nil
}

// List returns all complaints joined with the tenant name, newest first
func (r *ComplaintRepository) List(ctx context.Context) ([]*models.Complaint, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT c.complaint_id, c.tenant_id, t.tenant_name, c.category, c.scope,
		        c.description, c.status, c.created_at
		 FROM complaints c
		 JOIN tenants t ON c.tenant_id = t.tenant_id
		 ORDER BY c.created_at DESC`)
	if err != nil {
		return nil, apperrors.Storage(err, "list complaints")
	}
	defer rows.Close()

	var complaints []*models.Complaint
	for rows.Next() {
		var c models.Complaint
		err := rows.Scan(&c.ID, &c.TenantID, &c.TenantName, &c.Category, &c.Scope,
			&c.Description, &c.Status, &c.CreatedAt)
		if err != nil {
			return nil, apperrors.Storage(err, "scan complaint")
		}
		complaints = append(complaints, &c)
	}
	return complaints, rows.Err()
}

// ListByTenant returns one tenant's complaints, newest first
func (r *ComplaintRepository) ListByTenant(ctx context.Context, tenantID int) ([]*models.Complaint, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT complaint_id, tenant_id, category, scope, description, status, created_at
		 FROM complaints
		 WHERE tenant_id=$1
		 ORDER BY created_at DESC`, tenantID)
	if err != nil {
		return nil, apperrors.Storage(err, "list tenant complaints")
	}
	defer rows.Close()

	var complaints []*models.Complaint
	for rows.Next() {
		var c models.Complaint
		err := rows.Scan(&c.ID, &c.TenantID, &c.Category, &c.Scope,
			&c.Description, &c.Status, &c.CreatedAt)
		if err != nil {
			return nil, apperrors.Storage(err, "scan complaint")
		}
		complaints = append(complaints, &c)
	}
	return complaints, rows.Err()
}

// SetStatus updates only the status column; created_at is untouched.
func (r *ComplaintRepository) SetStatus(ctx context.Context, id int, status string) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE complaints SET status=$1 WHERE complaint_id=$2`, status, id)
	if err != nil {
		return apperrors.Storage(err, "set complaint status")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("complaint %d not found", id)
	}
	return nil
}
