package dto

import (
	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/shopspring/decimal"
)

type CreateProductRequest struct {
	Name              string           `json:"name" binding:"required,max=255"`
	Description       string           `json:"description" binding:"max=2000"`
	SKU               *string          `json:"sku" binding:"omitempty,max=100"`
	Price             *decimal.Decimal `json:"price" binding:"required"`
	Cost              *decimal.Decimal `json:"cost"`
	StockQuantity     int              `json:"stockQuantity" binding:"min=0,max=2147483647"`
	LowStockThreshold int              `json:"lowStockThreshold" binding:"min=0,max=2147483647"`
}

type ListProductsParams struct {
	PageQuery
	Search   string `form:"search"`
	LowStock bool   `form:"lowStock"`
}

type ListProductsResponse struct {
	Products   []domain.Product `json:"products"`
	Pagination Pagination       `json:"pagination"`
}

type AdjustStockRequest struct {
	Quantity  int                   `json:"quantity" binding:"required,min=1,max=2147483647"`
	Operation domain.StockOperation `json:"operation" binding:"required,oneof=add subtract"`
}

type CreateServiceRequest struct {
	Name        string           `json:"name" binding:"required,max=255"`
	Description string           `json:"description" binding:"max=2000"`
	Price       *decimal.Decimal `json:"price" binding:"required"`
}

type ListServicesParams struct {
	PageQuery
	Search string `form:"search"`
}

type ListServicesResponse struct {
	Services   []domain.Service `json:"services"`
	Pagination Pagination       `json:"pagination"`
}
