package models

import "time"

// Rent payment status values are part of the stored-data contract.
const (
	PaymentPaid    = "PAID"
	PaymentPending = "PENDING"
	PaymentLate    = "LATE"
)

type RentPayment struct {
	ID          int       `json:"id"`
	TenantID    int       `json:"tenant_id"`
	TenantName  string    `json:"tenant_name,omitempty"` // Joined from tenants table
	Month       string    `json:"month"` // YYYY-MM
	RentAmount  int       `json:"rent_amount"`
	LateFee     int       `json:"late_fee"`
	TotalAmount int       `json:"total_amount"`
	Status      string    `json:"status"`
	DueDate     time.Time `json:"due_date"`
	PaidDate    time.Time `json:"paid_date"`
}

// PayRentResponse reports the outcome of a pay-rent call. AlreadyPaid is
// set when a payment for the month existed; Payment then holds the
// existing row and nothing was inserted.
type PayRentResponse struct {
	Payment     *RentPayment `json:"payment"`
	AlreadyPaid bool         `json:"already_paid"`
}

// TenantRentStatus is a reporting row: a tenant with or without payments.
type TenantRentStatus struct {
	TenantID   int    `json:"tenant_id"`
	TenantName string `json:"tenant_name"`
	RoomNo     string `json:"room_no"`
}
