package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy,omitempty"` // UserID Reference
	UpdatedAt time.Time `json:"updatedAt"`
	UpdatedBy string    `json:"updatedBy,omitempty"` // UserID Reference
}

// NewAuditFields stamps creation and update with the same actor and time.
func NewAuditFields(userID string, now time.Time) AuditFields {
	return AuditFields{
		CreatedAt: now,
		CreatedBy: userID,
		UpdatedAt: now,
		UpdatedBy: userID,
	}
}
