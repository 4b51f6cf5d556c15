package dto

import "github.com/shopspring/decimal"

// WoodProductFilters query parameters for the warehouse listing.
type WoodProductFilters struct {
	Search       string `query:"search"`
	Type         string `query:"type"`
	Supplier     string `query:"supplier"`
	Availability string `query:"availability"` // in_stock, low_stock, out_of_stock
}

// WoodProductResponse output for a warehouse wood product.
type WoodProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Type          string          `json:"type"`
	Supplier      string          `json:"supplier"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	StockQuantity int             `json:"stock_quantity"`
	StockStatus   string          `json:"stock_status"`
	Unit          string          `json:"unit"`
	DateReceived  string          `json:"date_received"` // ISO date
	Description   string          `json:"description,omitempty"`
}

// WoodProductListResponse warehouse listing.
type WoodProductListResponse struct {
	Items []WoodProductResponse `json:"items"`
	Total int                   `json:"total"`
}

// WarehouseSummaryResponse valuation of the wood stock currently held.
type WarehouseSummaryResponse struct {
	TotalValue decimal.Decimal `json:"total_value"`
	InStock    int             `json:"in_stock"`
	LowStock   int             `json:"low_stock"`
	OutOfStock int             `json:"out_of_stock"`
	Suppliers  []string        `json:"suppliers"` // distinct supplier names in the warehouse
}
