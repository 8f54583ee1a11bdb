package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"pg-backend/internal/services"
	"pg-backend/pkg/utils"

	"github.com/gorilla/mux"
)

// ReportHandler exposes the admin rent reports. The unpaid view is a
// lifetime report (tenants who never paid), the paid view is scoped to
// the current month.
type ReportHandler struct {
	Rent     *services.RentPaymentService
	Receipts *services.ReceiptService
}

func NewReportHandler(rent *services.RentPaymentService, receipts *services.ReceiptService) *ReportHandler {
	return &ReportHandler{Rent: rent, Receipts: receipts}
}

// UnpaidTenants handles GET /api/reports/rent/unpaid
func (h *ReportHandler) UnpaidTenants(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Rent.UnpaidTenants(r.Context())
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, rows)
}

// PaidThisMonth handles GET /api/reports/rent/paid
func (h *ReportHandler) PaidThisMonth(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Rent.PaidThisMonth(r.Context())
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, rows)
}

// TenantStatement handles GET /api/reports/tenants/{id}/statement and
// streams a PDF of the tenant's payment history
func (h *ReportHandler) TenantStatement(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	data, err := h.Receipts.GenerateTenantStatement(r.Context(), id)
	if err != nil {
		utils.Error(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=tenant_statement_%d.pdf", id))
	w.Write(data)
}
