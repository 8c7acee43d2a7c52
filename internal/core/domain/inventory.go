package domain

import (
	"github.com/shopspring/decimal"
)

type Product struct {
	ProductID         string           `json:"id"`
	CompanyID         string           `json:"companyId"`
	Name              string           `json:"name"`
	Description       string           `json:"description,omitempty"`
	SKU               *string          `json:"sku,omitempty"`
	Price             decimal.Decimal  `json:"price"`
	Cost              *decimal.Decimal `json:"cost,omitempty"`
	StockQuantity     int              `json:"stockQuantity"`
	LowStockThreshold int              `json:"lowStockThreshold"`
	IsActive          bool             `json:"isActive"`
	AuditFields
}

// IsLowStock reports whether stock has fallen to or below the threshold.
func (p Product) IsLowStock() bool {
	return p.StockQuantity <= p.LowStockThreshold
}

type ProductFilter struct {
	Search   string
	LowStock bool
	Limit    int
	Offset   int
}

type Service struct {
	ServiceID   string          `json:"id"`
	CompanyID   string          `json:"companyId"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	IsActive    bool            `json:"isActive"`
	AuditFields
}

type ServiceFilter struct {
	Search string
	Limit  int
	Offset int
}

// StockOperation is the direction of a manual stock adjustment.
type StockOperation string

const (
	StockAdd      StockOperation = "add"
	StockSubtract StockOperation = "subtract"
)

// Delta returns the signed change in stock for quantity units.
func (o StockOperation) Delta(quantity int) int {
	if o == StockSubtract {
		return -quantity
	}
	return quantity
}

type InventorySummary struct {
	TotalProducts      int `json:"totalProducts"`
	TotalServices      int `json:"totalServices"`
	LowStockCount      int `json:"lowStockCount"`
	TotalStockQuantity int `json:"totalStockQuantity"`
}
