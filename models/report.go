package models

import "time"

type Insights struct {
	TotalStock     int    `json:"totalStock"`
	LowStock       int    `json:"lowStock"`
	ExpiringSoon   int    `json:"expiringSoon"`
	TotalCustomers int    `json:"totalCustomers"`
	TotalSales     int64  `json:"totalSales"`
	RecentSales    []Sale `json:"recentSales"`
}

type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type ReportRequest struct {
	ReportType string     `json:"reportType" binding:"required"`
	DateRange  *DateRange `json:"dateRange,omitempty"`
}

const (
	ReportSalesSummary    = "sales_summary"
	ReportStockAlerts     = "stock_alerts"
	ReportCustomerLoyalty = "customer_loyalty"
)

// ProductSales aggregates sold line items for one product.
type ProductSales struct {
	Name         string  `json:"name"`
	Quantity     int     `json:"quantity"`
	Revenue      float64 `json:"revenue"`
	Transactions int     `json:"transactions"`
}

type SalesSummary struct {
	TotalSales   int            `json:"totalSales"`
	TotalRevenue float64        `json:"totalRevenue"`
	AverageSale  float64        `json:"averageSale"`
	TopProducts  []ProductSales `json:"topProducts"`
	From         time.Time      `json:"from"`
	To           time.Time      `json:"to"`
}

type StockAlerts struct {
	LowStock     []Stock `json:"lowStock"`
	ExpiringSoon []Stock `json:"expiringSoon"`
	Expired      []Stock `json:"expired"`
}

type LoyaltyTiers struct {
	Gold   int `json:"gold"`
	Silver int `json:"silver"`
	Bronze int `json:"bronze"`
}

type CustomerLoyalty struct {
	TotalCustomers int          `json:"totalCustomers"`
	LoyalCustomers int          `json:"loyalCustomers"`
	TopCustomers   []Customer   `json:"topCustomers"`
	Tiers          LoyaltyTiers `json:"tiers"`
}
