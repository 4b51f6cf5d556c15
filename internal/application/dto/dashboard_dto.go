package dto

import "github.com/shopspring/decimal"

// DashboardResponse is the role-aware summary behind GET /api/dashboard.
// TotalRevenue is only populated for managers, mirroring the source
// dashboard where attendants never see the revenue cards.
type DashboardResponse struct {
	TodaySales    int              `json:"today_sales"`
	TodayRevenue  *decimal.Decimal `json:"today_revenue,omitempty"`  // manager only
	TotalRevenue  *decimal.Decimal `json:"total_revenue,omitempty"`  // manager only
	TotalProducts int              `json:"total_products"`           // showroom + warehouse
	LowStockItems []LowStockItem   `json:"low_stock_items"`
	TopProducts   []TopProduct     `json:"top_products"`
	RecentSales   []SaleResponse   `json:"recent_sales"`
	Role          string           `json:"role"`
}

// LowStockItem one entry in the dashboard low-stock widget.
type LowStockItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Kind     string `json:"kind"` // showroom, warehouse
	Quantity int    `json:"quantity"`
	Status   string `json:"status"`
}

// TopProduct one entry in the top-products widget.
type TopProduct struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}
