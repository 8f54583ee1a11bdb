package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"pg-backend/internal/apperrors"
	"pg-backend/internal/auth"
	"pg-backend/internal/config"
	"pg-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserGetter struct {
	users map[int]*models.User
}

func (f *fakeUserGetter) Get(_ context.Context, id int) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperrors.NotFound("user %d not found", id)
	}
	return u, nil
}

func testSetup() (*AuthMiddleware, *auth.JWTManager, *fakeUserGetter) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpirationHours = 1
	cfg.JWT.Issuer = "pg-backend-test"
	jwtManager := auth.NewJWTManager(cfg)
	users := &fakeUserGetter{users: map[int]*models.User{}}
	return NewAuthMiddleware(jwtManager, users), jwtManager, users
}

func okHandler(t *testing.T, gotUserID *int, gotRole *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetUserIDFromContext(r.Context())
		require.True(t, ok)
		role, ok := GetRoleFromContext(r.Context())
		require.True(t, ok)
		*gotUserID = id
		*gotRole = role
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticatePassesActiveUser(t *testing.T) {
	m, jwtManager, users := testSetup()
	user := &models.User{ID: 5, Username: "Asha", Role: models.RoleTenant, Status: models.StatusActive}
	users.users[5] = user

	token, err := jwtManager.GenerateToken(user)
	require.NoError(t, err)

	var gotID int
	var gotRole string
	req := httptest.NewRequest(http.MethodGet, "/api/rent", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	m.Authenticate(okHandler(t, &gotID, &gotRole)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, gotID)
	assert.Equal(t, models.RoleTenant, gotRole)
}

func TestAuthenticateRejections(t *testing.T) {
	m, jwtManager, users := testSetup()
	active := &models.User{ID: 1, Username: "a", Role: models.RoleTenant, Status: models.StatusActive}
	inactive := &models.User{ID: 2, Username: "b", Role: models.RoleTenant, Status: models.StatusInactive}
	users.users[1] = active
	users.users[2] = inactive

	activeToken, err := jwtManager.GenerateToken(active)
	require.NoError(t, err)
	inactiveToken, err := jwtManager.GenerateToken(inactive)
	require.NoError(t, err)
	deletedToken, err := jwtManager.GenerateToken(&models.User{ID: 99, Username: "gone", Role: models.RoleTenant})
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"malformed header", "Token abc", http.StatusUnauthorized},
		{"garbage token", "Bearer garbage", http.StatusUnauthorized},
		{"unknown user", "Bearer " + deletedToken, http.StatusUnauthorized},
		{"inactive user", "Bearer " + inactiveToken, http.StatusForbidden},
		{"active user", "Bearer " + activeToken, http.StatusOK},
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/rent", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			m.Authenticate(next).ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestRequireAdminBlocksTenant(t *testing.T) {
	m, jwtManager, users := testSetup()
	tenant := &models.User{ID: 3, Username: "t", Role: models.RoleTenant, Status: models.StatusActive}
	admin := &models.User{ID: 4, Username: "Admin user", Role: models.RoleAdmin, Status: models.StatusActive}
	users.users[3] = tenant
	users.users[4] = admin

	tenantToken, err := jwtManager.GenerateToken(tenant)
	require.NoError(t, err)
	adminToken, err := jwtManager.GenerateToken(admin)
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/tenants", nil)
	req.Header.Set("Authorization", "Bearer "+tenantToken)
	rec := httptest.NewRecorder()
	m.RequireAdmin(next).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/tenants", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec = httptest.NewRecorder()
	m.RequireAdmin(next).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
