package services

import (
	"context"
	"fmt"

	"pg-backend/internal/apperrors"
	"pg-backend/internal/models"
)

// fakeUserStore is an in-memory UserStore keyed by user ID.
type fakeUserStore struct {
	users map[int]*models.User
}

func newFakeUserStore(users ...*models.User) *fakeUserStore {
	m := make(map[int]*models.User)
	for _, u := range users {
		m[u.ID] = u
	}
	return &fakeUserStore{users: m}
}

func (f *fakeUserStore) Get(_ context.Context, id int) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperrors.NotFound("user %d not found", id)
	}
	return u, nil
}

func (f *fakeUserStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, apperrors.NotFound("user %q not found", username)
}

func (f *fakeUserStore) List(_ context.Context) ([]*models.User, error) {
	var out []*models.User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserStore) SetStatus(_ context.Context, userID int, status string) error {
	u, ok := f.users[userID]
	if !ok {
		return apperrors.NotFound("user %d not found", userID)
	}
	u.Status = status
	return nil
}

func (f *fakeUserStore) SetPasswordHash(_ context.Context, userID int, hash string) error {
	u, ok := f.users[userID]
	if !ok {
		return apperrors.NotFound("user %d not found", userID)
	}
	u.PasswordHash = hash
	return nil
}

func (f *fakeUserStore) SetTOTPSecret(_ context.Context, userID int, secret string) error {
	u, ok := f.users[userID]
	if !ok {
		return apperrors.NotFound("user %d not found", userID)
	}
	u.TOTPSecret = secret
	return nil
}

func (f *fakeUserStore) EnableTOTP(_ context.Context, userID int) error {
	u, ok := f.users[userID]
	if !ok {
		return apperrors.NotFound("user %d not found", userID)
	}
	u.TOTPEnabled = true
	return nil
}

func (f *fakeUserStore) DisableTOTP(_ context.Context, userID int) error {
	u, ok := f.users[userID]
	if !ok {
		return apperrors.NotFound("user %d not found", userID)
	}
	u.TOTPEnabled = false
	u.TOTPSecret = ""
	return nil
}

func (f *fakeUserStore) EnsureAdmin(_ context.Context, username, passwordHash string) error {
	for _, u := range f.users {
		if u.Username == username {
			return nil
		}
	}
	id := len(f.users) + 1
	f.users[id] = &models.User{
		ID:           id,
		Username:     username,
		PasswordHash: passwordHash,
		Role:         models.RoleAdmin,
		Status:       models.StatusActive,
	}
	return nil
}

// fakeTenantStore is an in-memory TenantStore. CreateWithUser mimics
// the transactional occupancy check of the real repository.
type fakeTenantStore struct {
	tenants map[int]*models.Tenant
	rooms   *fakeRoomStore
	nextID  int
}

func newFakeTenantStore(rooms *fakeRoomStore, tenants ...*models.Tenant) *fakeTenantStore {
	m := make(map[int]*models.Tenant)
	max := 0
	for _, t := range tenants {
		m[t.ID] = t
		if t.ID > max {
			max = t.ID
		}
	}
	return &fakeTenantStore{tenants: m, rooms: rooms, nextID: max + 1}
}

func (f *fakeTenantStore) CreateWithUser(_ context.Context, t *models.Tenant, u *models.User) error {
	room, ok := f.rooms.rooms[t.RoomID]
	if !ok {
		return apperrors.NotFound("room %d not found", t.RoomID)
	}
	if room.CurrentOccupancy >= room.Capacity {
		return apperrors.Conflict("room %s is full", room.RoomNo)
	}
	t.ID = f.nextID
	u.ID = f.nextID
	f.nextID++
	t.UserID = u.ID
	t.DepositAmount = room.RentPerPerson
	t.DepositStatus = models.DepositHeld
	room.CurrentOccupancy++
	f.tenants[t.ID] = t
	return nil
}

func (f *fakeTenantStore) Get(_ context.Context, id int) (*models.Tenant, error) {
	t, ok := f.tenants[id]
	if !ok {
		return nil, apperrors.NotFound("tenant %d not found", id)
	}
	return t, nil
}

func (f *fakeTenantStore) GetByUserID(_ context.Context, userID int) (*models.Tenant, error) {
	for _, t := range f.tenants {
		if t.UserID == userID {
			return t, nil
		}
	}
	return nil, apperrors.NotFound("no tenant for user %d", userID)
}

func (f *fakeTenantStore) ListWithRooms(_ context.Context, floor int) ([]*models.TenantWithRoom, error) {
	var out []*models.TenantWithRoom
	for _, t := range f.tenants {
		room := f.rooms.rooms[t.RoomID]
		if floor != 0 && room.Floor != floor {
			continue
		}
		out = append(out, &models.TenantWithRoom{Tenant: *t, RoomNo: room.RoomNo, Floor: room.Floor})
	}
	return out, nil
}

func (f *fakeTenantStore) GetWithRoom(_ context.Context, tenantID int) (*models.TenantWithRoom, error) {
	t, ok := f.tenants[tenantID]
	if !ok {
		return nil, apperrors.NotFound("tenant %d not found", tenantID)
	}
	room := f.rooms.rooms[t.RoomID]
	return &models.TenantWithRoom{Tenant: *t, RoomNo: room.RoomNo, Floor: room.Floor}, nil
}

// fakeRoomStore is an in-memory RoomStore keyed by room ID.
type fakeRoomStore struct {
	rooms map[int]*models.Room
}

func newFakeRoomStore(rooms ...*models.Room) *fakeRoomStore {
	m := make(map[int]*models.Room)
	for _, r := range rooms {
		m[r.ID] = r
	}
	return &fakeRoomStore{rooms: m}
}

func (f *fakeRoomStore) Get(_ context.Context, id int) (*models.Room, error) {
	r, ok := f.rooms[id]
	if !ok {
		return nil, apperrors.NotFound("room %d not found", id)
	}
	return r, nil
}

func (f *fakeRoomStore) List(_ context.Context) ([]*models.Room, error) {
	var out []*models.Room
	for _, r := range f.rooms {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRoomStore) ListAvailableByFloor(_ context.Context, floor int) ([]*models.Room, error) {
	var out []*models.Room
	for _, r := range f.rooms {
		if r.Floor == floor && r.Available() {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRoomStore) ListFloors(_ context.Context) ([]int, error) {
	seen := make(map[int]bool)
	var out []int
	for _, r := range f.rooms {
		if !seen[r.Floor] {
			seen[r.Floor] = true
			out = append(out, r.Floor)
		}
	}
	return out, nil
}

// fakePaymentStore is an in-memory RentPaymentStore keyed by
// (tenant, month).
type fakePaymentStore struct {
	payments map[string]*models.RentPayment
	tenants  *fakeTenantStore
	nextID   int
}

func newFakePaymentStore(tenants *fakeTenantStore) *fakePaymentStore {
	return &fakePaymentStore{
		payments: make(map[string]*models.RentPayment),
		tenants:  tenants,
		nextID:   1,
	}
}

func paymentKey(tenantID int, month string) string {
	return fmt.Sprintf("%d#%s", tenantID, month)
}

func (f *fakePaymentStore) CreateForMonth(_ context.Context, p *models.RentPayment) (bool, error) {
	key := paymentKey(p.TenantID, p.Month)
	if existing, ok := f.payments[key]; ok {
		*p = *existing
		return true, nil
	}
	p.ID = f.nextID
	f.nextID++
	stored := *p
	f.payments[key] = &stored
	return false, nil
}

func (f *fakePaymentStore) Get(_ context.Context, id int) (*models.RentPayment, error) {
	for _, p := range f.payments {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, apperrors.NotFound("rent payment %d not found", id)
}

func (f *fakePaymentStore) List(_ context.Context) ([]*models.RentPayment, error) {
	var out []*models.RentPayment
	for _, p := range f.payments {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePaymentStore) ListByTenant(_ context.Context, tenantID int) ([]*models.RentPayment, error) {
	var out []*models.RentPayment
	for _, p := range f.payments {
		if p.TenantID == tenantID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePaymentStore) ListUnpaidTenants(_ context.Context) ([]*models.TenantRentStatus, error) {
	var out []*models.TenantRentStatus
	for _, t := range f.tenants.tenants {
		paid := false
		for _, p := range f.payments {
			if p.TenantID == t.ID && p.Status == models.PaymentPaid {
				paid = true
				break
			}
		}
		if !paid {
			out = append(out, &models.TenantRentStatus{TenantID: t.ID, TenantName: t.Name})
		}
	}
	return out, nil
}

func (f *fakePaymentStore) ListPaidForMonth(_ context.Context, month string) ([]*models.TenantRentStatus, error) {
	var out []*models.TenantRentStatus
	for _, t := range f.tenants.tenants {
		for _, p := range f.payments {
			if p.TenantID == t.ID && p.Status == models.PaymentPaid && p.Month == month {
				out = append(out, &models.TenantRentStatus{TenantID: t.ID, TenantName: t.Name})
				break
			}
		}
	}
	return out, nil
}

// fakeComplaintStore is an in-memory ComplaintStore.
type fakeComplaintStore struct {
	complaints map[int]*models.Complaint
	nextID     int
}

func newFakeComplaintStore() *fakeComplaintStore {
	return &fakeComplaintStore{complaints: make(map[int]*models.Complaint), nextID: 1}
}

func (f *fakeComplaintStore) Create(_ context.Context, c *models.Complaint) error {
	c.ID = f.nextID
	f.nextID++
	stored := *c
	f.complaints[c.ID] = &stored
	return nil
}

func (f *fakeComplaintStore) List(_ context.Context) ([]*models.Complaint, error) {
	var out []*models.Complaint
	for _, c := range f.complaints {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeComplaintStore) ListByTenant(_ context.Context, tenantID int) ([]*models.Complaint, error) {
	var out []*models.Complaint
	for _, c := range f.complaints {
		if c.TenantID == tenantID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeComplaintStore) SetStatus(_ context.Context, id int, status string) error {
	c, ok := f.complaints[id]
	if !ok {
		return apperrors.NotFound("complaint %d not found", id)
	}
	c.Status = status
	return nil
}
