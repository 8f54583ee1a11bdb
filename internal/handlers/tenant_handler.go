package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"pg-backend/internal/middleware"
	"pg-backend/internal/models"
	"pg-backend/internal/services"
	"pg-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type TenantHandler struct {
	Service *services.TenantService
}

func NewTenantHandler(s *services.TenantService) *TenantHandler {
	return &TenantHandler{Service: s}
}

// Onboard handles POST /api/tenants. The response carries the
// generated login password once; it is never retrievable again.
func (h *TenantHandler) Onboard(w http.ResponseWriter, r *http.Request) {
	var req models.OnboardTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.Service.Onboard(r.Context(), &req)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, resp)
}

func (h *TenantHandler) GetTenant(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	tenant, err := h.Service.GetTenantWithRoom(r.Context(), id)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, tenant)
}

// ListTenants handles GET /api/tenants with an optional ?floor=N filter
func (h *TenantHandler) ListTenants(w http.ResponseWriter, r *http.Request) {
	floor := 0
	if s := r.URL.Query().Get("floor"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			http.Error(w, "invalid floor parameter", http.StatusBadRequest)
			return
		}
		floor = n
	}

	tenants, err := h.Service.ListTenants(r.Context(), floor)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, tenants)
}

// Me handles GET /api/tenants/me for the logged-in tenant
func (h *TenantHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	tenant, err := h.Service.GetTenantByUserID(r.Context(), userID)
	if err != nil {
		utils.Error(w, err)
		return
	}

	info, err := h.Service.GetTenantWithRoom(r.Context(), tenant.ID)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, info)
}
