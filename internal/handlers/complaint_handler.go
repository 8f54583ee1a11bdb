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

type ComplaintHandler struct {
	Service *services.ComplaintService
}

func NewComplaintHandler(s *services.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{Service: s}
}

// Raise handles POST /api/complaints for the logged-in tenant
func (h *ComplaintHandler) Raise(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req models.RaiseComplaintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	complaint, err := h.Service.Raise(r.Context(), userID, &req)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, complaint)
}

// ListAll handles GET /api/complaints (admin)
func (h *ComplaintHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	complaints, err := h.Service.ListAll(r.Context())
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, complaints)
}

// ListMine handles GET /api/complaints/me for the logged-in tenant
func (h *ComplaintHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	complaints, err := h.Service.ListMine(r.Context(), userID)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, complaints)
}

// UpdateStatus handles PUT /api/complaints/{id}/status (admin)
func (h *ComplaintHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req models.UpdateComplaintStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Service.UpdateStatus(r.Context(), id, req.Status); err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"status": req.Status})
}
