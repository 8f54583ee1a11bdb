package models

// Deposit status values are part of the stored-data contract.
const (
	DepositHeld     = "HELD"
	DepositRefunded = "REFUNDED"
	DepositPartial  = "PARTIAL"
)

type Tenant struct {
	ID            int    `json:"id"`
	UserID        int    `json:"user_id"`
	Name          string `json:"name"`
	Contact       string `json:"contact"`
	RoomID        int    `json:"room_id"`
	DepositAmount int    `json:"deposit_amount"`
	DepositStatus string `json:"deposit_status"`
}

// TenantWithRoom is the admin list row: tenant joined with its room.
type TenantWithRoom struct {
	Tenant
	RoomNo string `json:"room_no"`
	Floor  int    `json:"floor"`
}

// OnboardTenantRequest represents the request body for adding a tenant
type OnboardTenantRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	RoomID  int    `json:"room_id"`
}

// OnboardTenantResponse is returned after a successful onboarding.
// TemporaryPassword is the tenant's generated login secret, shown once.
type OnboardTenantResponse struct {
	Tenant            *Tenant `json:"tenant"`
	Username          string  `json:"username"`
	TemporaryPassword string  `json:"temporary_password"`
}
