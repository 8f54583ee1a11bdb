package services

import (
	"context"
	"log"

	"pg-backend/internal/metrics"
	"pg-backend/internal/models"
	"pg-backend/internal/timeutil"
)

// RentPaymentStore is the persistence surface RentPaymentService needs.
type RentPaymentStore interface {
	CreateForMonth(ctx context.Context, p *models.RentPayment) (alreadyPaid bool, err error)
	Get(ctx context.Context, id int) (*models.RentPayment, error)
	List(ctx context.Context) ([]*models.RentPayment, error)
	ListByTenant(ctx context.Context, tenantID int) ([]*models.RentPayment, error)
	ListUnpaidTenants(ctx context.Context) ([]*models.TenantRentStatus, error)
	ListPaidForMonth(ctx context.Context, month string) ([]*models.TenantRentStatus, error)
}

type RentPaymentService struct {
	Repo    RentPaymentStore
	Tenants TenantResolver
}

func NewRentPaymentService(repo RentPaymentStore, tenants TenantResolver) *RentPaymentService {
	return &RentPaymentService{Repo: repo, Tenants: tenants}
}

// PayRent records this month's rent for the tenant behind the
// authenticated user. The amount is the tenant's per-person rent, which
// equals the deposit held at onboarding. Calling it twice in the same
// month is a no-op that reports AlreadyPaid with the existing row.
func (s *RentPaymentService) PayRent(ctx context.Context, userID int) (*models.PayRentResponse, error) {
	tenant, err := s.Tenants.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := timeutil.Now()
	payment := &models.RentPayment{
		TenantID:    tenant.ID,
		Month:       timeutil.BillingMonth(now),
		RentAmount:  tenant.DepositAmount,
		LateFee:     0,
		TotalAmount: tenant.DepositAmount,
		Status:      models.PaymentPaid,
		DueDate:     now,
		PaidDate:    now,
	}

	alreadyPaid, err := s.Repo.CreateForMonth(ctx, payment)
	if err != nil {
		return nil, err
	}
	payment.TenantName = tenant.Name

	if !alreadyPaid {
		metrics.RentPaymentsRecorded.Inc()
		log.Printf("[Rent] Tenant %d paid %s (Rs. %d)", tenant.ID, payment.Month, payment.TotalAmount)
	}

	return &models.PayRentResponse{Payment: payment, AlreadyPaid: alreadyPaid}, nil
}

// GetPayment returns one payment row with the tenant name joined
func (s *RentPaymentService) GetPayment(ctx context.Context, id int) (*models.RentPayment, error) {
	return s.Repo.Get(ctx, id)
}

// ListAll returns every payment, newest first
func (s *RentPaymentService) ListAll(ctx context.Context) ([]*models.RentPayment, error) {
	return s.Repo.List(ctx)
}

// ListMine returns the payment history of the tenant behind userID
func (s *RentPaymentService) ListMine(ctx context.Context, userID int) ([]*models.RentPayment, error) {
	tenant, err := s.Tenants.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.Repo.ListByTenant(ctx, tenant.ID)
}

// UnpaidTenants lists tenants who have never had a PAID payment. This
// is a lifetime view: a tenant who paid once, any month, drops off it
// for good.
func (s *RentPaymentService) UnpaidTenants(ctx context.Context) ([]*models.TenantRentStatus, error) {
	return s.Repo.ListUnpaidTenants(ctx)
}

// PaidThisMonth lists tenants with a PAID payment for the current
// billing month.
func (s *RentPaymentService) PaidThisMonth(ctx context.Context) ([]*models.TenantRentStatus, error) {
	return s.Repo.ListPaidForMonth(ctx, timeutil.CurrentBillingMonth())
}
