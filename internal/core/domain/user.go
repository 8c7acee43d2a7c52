package domain

import "slices"

// Role is the coarse permission level of a principal within its company.
type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleAccountant Role = "ACCOUNTANT"
	RoleUser       Role = "USER"
	RoleViewer     Role = "VIEWER"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleAccountant, RoleUser, RoleViewer:
		return true
	}
	return false
}

// User represents a user of the application in the domain.
type User struct {
	UserID       string   `json:"id"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"`
	Name         string   `json:"name"`
	Role         Role     `json:"role"`
	CompanyID    string   `json:"companyId"`
	IsActive     bool     `json:"isActive"`
	Company      *Company `json:"company,omitempty"`
	AuditFields
}

// Principal is the authenticated identity attached to a request.
type Principal struct {
	UserID    string
	Email     string
	Name      string
	Role      Role
	CompanyID string
}

// Principal projects the user onto the identity carried through a request.
func (u User) Principal() Principal {
	return Principal{
		UserID:    u.UserID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CompanyID: u.CompanyID,
	}
}

// Allows reports whether the principal may perform an action restricted to roles.
// ADMIN is allowed regardless of the list.
func (p Principal) Allows(roles ...Role) bool {
	if p.Role == RoleAdmin {
		return true
	}
	return slices.Contains(roles, p.Role)
}
