package services

import (
	"context"
	"log"

	"pg-backend/internal/apperrors"
	"pg-backend/internal/metrics"
	"pg-backend/internal/models"
)

// ComplaintStore is the persistence surface ComplaintService needs.
type ComplaintStore interface {
	Create(ctx context.Context, c *models.Complaint) error
	List(ctx context.Context) ([]*models.Complaint, error)
	ListByTenant(ctx context.Context, tenantID int) ([]*models.Complaint, error)
	SetStatus(ctx context.Context, id int, status string) error
}

type ComplaintService struct {
	Repo    ComplaintStore
	Tenants TenantResolver
}

func NewComplaintService(repo ComplaintStore, tenants TenantResolver) *ComplaintService {
	return &ComplaintService{Repo: repo, Tenants: tenants}
}

// Raise files a complaint for the tenant behind the authenticated user.
// The tenant identity comes from the session, never from the request
// body.
func (s *ComplaintService) Raise(ctx context.Context, userID int, req *models.RaiseComplaintRequest) (*models.Complaint, error) {
	if req.Category == "" {
		return nil, apperrors.Validation("category is required")
	}
	if req.Scope == "" {
		return nil, apperrors.Validation("scope is required")
	}
	if req.Description == "" {
		return nil, apperrors.Validation("description is required")
	}

	tenant, err := s.Tenants.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	complaint := &models.Complaint{
		TenantID:    tenant.ID,
		Category:    req.Category,
		Scope:       req.Scope,
		Description: req.Description,
		Status:      models.ComplaintOpen,
	}
	if err := s.Repo.Create(ctx, complaint); err != nil {
		return nil, err
	}
	complaint.TenantName = tenant.Name

	metrics.ComplaintsRaised.Inc()
	log.Printf("[Complaints] Tenant %d raised complaint %d (%s)", tenant.ID, complaint.ID, complaint.Category)
	return complaint, nil
}

// ListAll returns every complaint, newest first
func (s *ComplaintService) ListAll(ctx context.Context) ([]*models.Complaint, error) {
	return s.Repo.List(ctx)
}

// ListMine returns the complaints filed by the tenant behind userID
func (s *ComplaintService) ListMine(ctx context.Context, userID int) ([]*models.Complaint, error) {
	tenant, err := s.Tenants.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.Repo.ListByTenant(ctx, tenant.ID)
}

// UpdateStatus moves a complaint to any of the accepted status labels.
// Transitions are unrestricted; a CLOSED complaint may be reopened.
func (s *ComplaintService) UpdateStatus(ctx context.Context, id int, status string) error {
	if !models.ValidComplaintStatus(status) {
		return apperrors.Validation("invalid complaint status %q", status)
	}
	return s.Repo.SetStatus(ctx, id, status)
}
