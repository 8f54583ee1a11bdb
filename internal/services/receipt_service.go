package services

import (
	"bytes"
	"context"
	"fmt"

	"pg-backend/internal/apperrors"
	"pg-backend/internal/models"
	"pg-backend/internal/timeutil"

	"github.com/jung-kurt/gofpdf/v2"
)

// ReceiptService renders rent receipts and tenant statements as PDFs.
type ReceiptService struct {
	Payments RentPaymentStore
	Tenants  TenantStore
}

func NewReceiptService(payments RentPaymentStore, tenants TenantStore) *ReceiptService {
	return &ReceiptService{Payments: payments, Tenants: tenants}
}

// GenerateRentReceipt renders a one-page receipt for a single payment.
// ownerUserID restricts tenants to their own receipts; pass 0 for admin
// access.
func (s *ReceiptService) GenerateRentReceipt(ctx context.Context, paymentID, ownerUserID int) ([]byte, error) {
	payment, err := s.Payments.Get(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	if ownerUserID != 0 {
		tenant, err := s.Tenants.GetByUserID(ctx, ownerUserID)
		if err != nil {
			return nil, err
		}
		if tenant.ID != payment.TenantID {
			return nil, apperrors.NotFound("rent payment %d not found", paymentID)
		}
	}

	info, err := s.Tenants.GetWithRoom(ctx, payment.TenantID)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, "PG Management - Rent Receipt", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Generated: %s", timeutil.Now().Format("02-Jan-2006 03:04 PM")), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Tenant Info Box
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Tenant Information", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Name: %s", info.Name), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Contact: %s", info.Contact), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Room: %s", info.RoomNo), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Floor: %d", info.Floor), "RB", 1, "L", false, 0, "")
	pdf.Ln(5)

	// Payment Details
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Payment Details", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(35, 7, "Receipt #", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 7, "Month", "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 7, "Rent", "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 7, "Late Fee", "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 7, "Paid On", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(35, 6, fmt.Sprintf("%d", payment.ID), "1", 0, "C", false, 0, "")
	pdf.CellFormat(35, 6, payment.Month, "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, fmt.Sprintf("Rs. %d", payment.RentAmount), "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 6, fmt.Sprintf("Rs. %d", payment.LateFee), "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 6, payment.PaidDate.Format("02-Jan-2006"), "1", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Total
	pdf.SetFillColor(200, 255, 200)
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(190, 10, fmt.Sprintf("Total Paid: Rs. %d (%s)", payment.TotalAmount, payment.Status), "1", 1, "C", true, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GenerateTenantStatement renders a tenant's full payment history as a
// PDF, admin-facing.
func (s *ReceiptService) GenerateTenantStatement(ctx context.Context, tenantID int) ([]byte, error) {
	info, err := s.Tenants.GetWithRoom(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	payments, err := s.Payments.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, "PG Management - Tenant Statement", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Generated: %s", timeutil.Now().Format("02-Jan-2006 03:04 PM")), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Tenant Information", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Name: %s", info.Name), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Room: %s (floor %d)", info.RoomNo, info.Floor), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Deposit: Rs. %d", info.DepositAmount), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Deposit Status: %s", info.DepositStatus), "RB", 1, "L", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Payment History", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(30, 7, "Receipt #", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 7, "Month", "1", 0, "C", true, 0, "")
	pdf.CellFormat(45, 7, "Amount", "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 7, "Status", "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 7, "Paid On", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	var total int
	for _, p := range payments {
		pdf.CellFormat(30, 6, fmt.Sprintf("%d", p.ID), "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 6, p.Month, "1", 0, "C", false, 0, "")
		pdf.CellFormat(45, 6, fmt.Sprintf("Rs. %d", p.TotalAmount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, p.Status, "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 6, p.PaidDate.Format("02-Jan-2006"), "1", 1, "C", false, 0, "")
		if p.Status == models.PaymentPaid {
			total += p.TotalAmount
		}
	}
	pdf.Ln(5)

	pdf.SetFillColor(200, 255, 200)
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(190, 10, fmt.Sprintf("Total Paid: Rs. %d across %d months", total, len(payments)), "1", 1, "C", true, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
