package dto

import "github.com/shopspring/decimal"

// ReportPeriod optional date-range filter for report endpoints (ISO dates,
// inclusive). Empty bounds mean unbounded.
type ReportPeriod struct {
	StartDate string `query:"start_date"`
	EndDate   string `query:"end_date"`
}

// OverviewResponse the report header cards.
type OverviewResponse struct {
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalOrders   int             `json:"total_orders"`
	AverageOrder  decimal.Decimal `json:"average_order"`
	StockValue    decimal.Decimal `json:"stock_value"` // showroom + warehouse
	HasSales      bool            `json:"has_sales"`
}

// DailySalesRow one calendar day in the sales report.
type DailySalesRow struct {
	Date    string          `json:"date"`
	Sales   int             `json:"sales"`
	Revenue decimal.Decimal `json:"revenue"`
}

// SalesReportResponse per-day rollups for the period.
type SalesReportResponse struct {
	Rows         []DailySalesRow `json:"rows"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// InventoryRow one product in the inventory report.
type InventoryRow struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Kind      string          `json:"kind"` // showroom, warehouse
	Type      string          `json:"type"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Value     decimal.Decimal `json:"value"`
	Status    string          `json:"status"`
}

// InventoryReportResponse stock levels and values across both inventories.
type InventoryReportResponse struct {
	Rows       []InventoryRow  `json:"rows"`
	TotalValue decimal.Decimal `json:"total_value"`
	LowStock   int             `json:"low_stock"`
	OutOfStock int             `json:"out_of_stock"`
}

// ProductPerformanceRow one product in the performance report.
type ProductPerformanceRow struct {
	Rank     int             `json:"rank"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// ProductPerformanceResponse top products by revenue.
type ProductPerformanceResponse struct {
	Rows []ProductPerformanceRow `json:"rows"`
}

// AttendantPerformanceRow one attendant in the performance report.
type AttendantPerformanceRow struct {
	AttendantID   string          `json:"attendant_id"`
	AttendantName string          `json:"attendant_name"`
	Sales         int             `json:"sales"`
	Revenue       decimal.Decimal `json:"revenue"`
}

// AttendantPerformanceResponse per-attendant rollups.
type AttendantPerformanceResponse struct {
	Rows []AttendantPerformanceRow `json:"rows"`
}

// ExportRequest requests a report export. Generation is a stub: the server
// acknowledges the request exactly like the source system's toast.
type ExportRequest struct {
	Format string `json:"format"` // pdf, excel
}

// ExportResponse acknowledgement of an export request.
type ExportResponse struct {
	Status  string `json:"status"` // accepted
	Format  string `json:"format"`
	Message string `json:"message"`
}
