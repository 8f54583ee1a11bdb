package models

import "time"

// Complaint status labels. Any transition is allowed; these are labels,
// not a strict state machine.
const (
	ComplaintOpen       = "OPEN"
	ComplaintInProgress = "IN PROGRESS"
	ComplaintResolved   = "RESOLVED"
	ComplaintClosed     = "CLOSED"
)

// ComplaintStatuses lists every accepted status value.
var ComplaintStatuses = []string{
	ComplaintOpen,
	ComplaintInProgress,
	ComplaintResolved,
	ComplaintClosed,
}

// ValidComplaintStatus reports whether s is one of the accepted labels.
func ValidComplaintStatus(s string) bool {
	for _, v := range ComplaintStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type Complaint struct {
	ID          int       `json:"id"`
	TenantID    int       `json:"tenant_id"`
	TenantName  string    `json:"tenant_name,omitempty"` // Joined from tenants table
	Category    string    `json:"category"`
	Scope       string    `json:"scope"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// RaiseComplaintRequest represents the request body for raising a complaint
type RaiseComplaintRequest struct {
	Category    string `json:"category"`
	Scope       string `json:"scope"`
	Description string `json:"description"`
}

// UpdateComplaintStatusRequest represents the request body for a status change
type UpdateComplaintStatusRequest struct {
	Status string `json:"status"`
}
