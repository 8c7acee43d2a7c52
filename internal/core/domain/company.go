package domain

// Company is the tenant. Every business record belongs to exactly one company.
type Company struct {
	CompanyID string         `json:"id"`
	Name      string         `json:"name"`
	Address   string         `json:"address,omitempty"`
	Phone     string         `json:"phone,omitempty"`
	Email     string         `json:"email,omitempty"`
	TaxID     string         `json:"taxId,omitempty"`
	Settings  map[string]any `json:"settings,omitempty"`
	AuditFields
}
