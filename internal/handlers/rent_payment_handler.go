package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"pg-backend/internal/middleware"
	"pg-backend/internal/models"
	"pg-backend/internal/services"
	"pg-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type RentPaymentHandler struct {
	Service  *services.RentPaymentService
	Receipts *services.ReceiptService
}

func NewRentPaymentHandler(s *services.RentPaymentService, receipts *services.ReceiptService) *RentPaymentHandler {
	return &RentPaymentHandler{Service: s, Receipts: receipts}
}

// PayRent handles POST /api/rent/pay for the logged-in tenant. Repeat
// calls in the same month return the existing payment with
// already_paid set.
func (h *RentPaymentHandler) PayRent(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	resp, err := h.Service.PayRent(r.Context(), userID)
	if err != nil {
		utils.Error(w, err)
		return
	}

	status := http.StatusCreated
	if resp.AlreadyPaid {
		status = http.StatusOK
	}
	utils.JSON(w, status, resp)
}

// ListAll handles GET /api/rent (admin)
func (h *RentPaymentHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	payments, err := h.Service.ListAll(r.Context())
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, payments)
}

// ListMine handles GET /api/rent/me for the logged-in tenant
func (h *RentPaymentHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	payments, err := h.Service.ListMine(r.Context(), userID)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, payments)
}

// Receipt handles GET /api/rent/{id}/receipt and streams a PDF.
// Admins can fetch any receipt; tenants only their own.
func (h *RentPaymentHandler) Receipt(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	ownerUserID := 0
	if role, _ := middleware.GetRoleFromContext(r.Context()); role != models.RoleAdmin {
		userID, ok := middleware.GetUserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		ownerUserID = userID
	}

	data, err := h.Receipts.GenerateRentReceipt(r.Context(), id, ownerUserID)
	if err != nil {
		utils.Error(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=rent_receipt_%d.pdf", id))
	w.Write(data)
}
