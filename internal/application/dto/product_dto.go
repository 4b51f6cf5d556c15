package dto

import "github.com/shopspring/decimal"

// MeasurementsDTO display measurements as printed on the showroom tag.
type MeasurementsDTO struct {
	Width  string `json:"width"`
	Height string `json:"height"`
	Depth  string `json:"depth"`
}

// CreateProductRequest input for adding a showroom product (manager only).
type CreateProductRequest struct {
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	Type         string          `json:"type" validate:"required"`
	Price        decimal.Decimal `json:"price"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	Measurements MeasurementsDTO `json:"measurements"`
	Color        string          `json:"color"`
	Quality      string          `json:"quality"`
	StockQuantity int            `json:"stock_quantity" validate:"min=0"`
	Supplier     string          `json:"supplier"`
	Description  string          `json:"description"`
	Featured     bool            `json:"featured"`
}

// UpdateStockRequest sets the absolute stock quantity of a product.
type UpdateStockRequest struct {
	Quantity int `json:"quantity" validate:"min=0"`
}

// ProductFilters query parameters for the showroom listing.
type ProductFilters struct {
	Search   string `query:"search"`
	Type     string `query:"type"`
	Quality  string `query:"quality"`
	MinPrice int64  `query:"min_price"`
	MaxPrice int64  `query:"max_price"`
}

// ProductResponse output for a showroom product. StockStatus is derived
// from the configured showroom threshold.
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Type          string          `json:"type"`
	Price         decimal.Decimal `json:"price"`
	CostPrice     decimal.Decimal `json:"cost_price,omitempty"`
	Measurements  MeasurementsDTO `json:"measurements"`
	Color         string          `json:"color"`
	Quality       string          `json:"quality"`
	StockQuantity int             `json:"stock_quantity"`
	StockStatus   string          `json:"stock_status"`
	Supplier      string          `json:"supplier,omitempty"`
	Description   string          `json:"description,omitempty"`
	Featured      bool            `json:"featured,omitempty"`
}

// ProductListResponse showroom listing.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
