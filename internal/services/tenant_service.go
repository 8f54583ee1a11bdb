package services

import (
	"context"
	"log"

	"pg-backend/internal/apperrors"
	"pg-backend/internal/auth"
	"pg-backend/internal/cache"
	"pg-backend/internal/metrics"
	"pg-backend/internal/models"
)

// TenantStore is the persistence surface TenantService needs.
type TenantStore interface {
	CreateWithUser(ctx context.Context, t *models.Tenant, u *models.User) error
	Get(ctx context.Context, id int) (*models.Tenant, error)
	GetByUserID(ctx context.Context, userID int) (*models.Tenant, error)
	ListWithRooms(ctx context.Context, floor int) ([]*models.TenantWithRoom, error)
	GetWithRoom(ctx context.Context, tenantID int) (*models.TenantWithRoom, error)
}

type TenantService struct {
	Repo  TenantStore
	Rooms RoomStore
}

func NewTenantService(repo TenantStore, rooms RoomStore) *TenantService {
	return &TenantService{Repo: repo, Rooms: rooms}
}

// Onboard creates a tenant together with its login account and claims a
// spot in the room, all in one transaction. The tenant logs in with
// username = tenant name and the generated password returned here.
func (s *TenantService) Onboard(ctx context.Context, req *models.OnboardTenantRequest) (*models.OnboardTenantResponse, error) {
	if req.Name == "" {
		return nil, apperrors.Validation("tenant name is required")
	}
	if req.Contact == "" {
		return nil, apperrors.Validation("contact is required")
	}
	if req.RoomID <= 0 {
		return nil, apperrors.Validation("room_id is required")
	}

	// Fetch the room up front for a friendly error and the floor for
	// cache invalidation. The transaction re-checks capacity under a
	// row lock, so this read is not the gate.
	room, err := s.Rooms.Get(ctx, req.RoomID)
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

	tenant := &models.Tenant{
		Name:    req.Name,
		Contact: req.Contact,
		RoomID:  req.RoomID,
	}
	user := &models.User{
		Username:     req.Name,
		PasswordHash: hash,
		Role:         models.RoleTenant,
		Status:       models.StatusActive,
	}

	if err := s.Repo.CreateWithUser(ctx, tenant, user); err != nil {
		return nil, err
	}

	cache.InvalidateAvailableRooms(ctx, room.Floor)
	metrics.TenantsOnboarded.Inc()
	log.Printf("[Tenants] Onboarded %q into room %s (tenant %d, user %d)",
		tenant.Name, room.RoomNo, tenant.ID, user.ID)

	return &models.OnboardTenantResponse{
		Tenant:            tenant,
		Username:          user.Username,
		TemporaryPassword: tempPassword,
	}, nil
}

func (s *TenantService) GetTenant(ctx context.Context, id int) (*models.Tenant, error) {
	return s.Repo.Get(ctx, id)
}

func (s *TenantService) GetTenantByUserID(ctx context.Context, userID int) (*models.Tenant, error) {
	return s.Repo.GetByUserID(ctx, userID)
}

// ListTenants returns tenants joined with their rooms, optionally
// filtered by floor (0 means all floors).
func (s *TenantService) ListTenants(ctx context.Context, floor int) ([]*models.TenantWithRoom, error) {
	return s.Repo.ListWithRooms(ctx, floor)
}

func (s *TenantService) GetTenantWithRoom(ctx context.Context, tenantID int) (*models.TenantWithRoom, error) {
	return s.Repo.GetWithRoom(ctx, tenantID)
}
