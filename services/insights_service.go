package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pharmacy-chatbot-backend/models"
)

var ErrUnknownReportType = errors.New("unknown report type")

const (
	insightRecentSales  = 5
	defaultReportWindow = 30 * 24 * time.Hour
	topCustomersLimit   = 10
)

type InsightsService struct {
	store PharmacyStore
	now   func() time.Time
}

func NewInsightsService(store PharmacyStore) *InsightsService {
	return &InsightsService{store: store, now: time.Now}
}

// GetInsights collects the dashboard counters.
func (s *InsightsService) GetInsights(ctx context.Context) (*models.Insights, error) {
	items, err := s.store.ListStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	customers, err := s.store.ListCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	count, err := s.store.CountSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("count sales: %w", err)
	}
	recent, err := s.store.RecentSales(ctx, insightRecentSales)
	if err != nil {
		return nil, fmt.Errorf("recent sales: %w", err)
	}
	if recent == nil {
		recent = []models.Sale{}
	}

	now := s.now()
	return &models.Insights{
		TotalStock:     len(items),
		LowStock:       len(lowStockItems(items)),
		ExpiringSoon:   len(expiringItems(items, now)),
		TotalCustomers: len(customers),
		TotalSales:     count,
		RecentSales:    recent,
	}, nil
}

// GenerateReport builds one of the named reports. dateRange only applies to
// the sales summary.
func (s *InsightsService) GenerateReport(ctx context.Context, reportType string, dateRange *models.DateRange) (any, error) {
	switch reportType {
	case models.ReportSalesSummary:
		return s.salesSummary(ctx, dateRange)
	case models.ReportStockAlerts:
		return s.stockAlerts(ctx)
	case models.ReportCustomerLoyalty:
		return s.customerLoyalty(ctx)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownReportType, reportType)
	}
}

func (s *InsightsService) salesSummary(ctx context.Context, dateRange *models.DateRange) (*models.SalesSummary, error) {
	to := s.now()
	from := to.Add(-defaultReportWindow)
	if dateRange != nil {
		if !dateRange.Start.IsZero() {
			from = dateRange.Start
		}
		if !dateRange.End.IsZero() {
			to = dateRange.End
		}
	}

	sales, err := s.store.SalesBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("sales between: %w", err)
	}

	summary := &models.SalesSummary{
		TotalSales:   len(sales),
		TotalRevenue: totalRevenue(sales),
		TopProducts:  aggregateSales(sales),
		From:         from,
		To:           to,
	}
	if summary.TotalSales > 0 {
		summary.AverageSale = summary.TotalRevenue / float64(summary.TotalSales)
	}
	if len(summary.TopProducts) > topProductsLimit {
		summary.TopProducts = summary.TopProducts[:topProductsLimit]
	}
	if summary.TopProducts == nil {
		summary.TopProducts = []models.ProductSales{}
	}
	return summary, nil
}

func (s *InsightsService) stockAlerts(ctx context.Context) (*models.StockAlerts, error) {
	items, err := s.store.ListStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}

	now := s.now()
	return &models.StockAlerts{
		LowStock:     orEmpty(lowStockItems(items)),
		ExpiringSoon: orEmpty(expiringItems(items, now)),
		Expired:      orEmpty(expiredItems(items, now)),
	}, nil
}

func (s *InsightsService) customerLoyalty(ctx context.Context) (*models.CustomerLoyalty, error) {
	customers, err := s.store.ListCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}

	loyal := loyalCustomers(customers)
	report := &models.CustomerLoyalty{
		TotalCustomers: len(customers),
		LoyalCustomers: len(loyal),
		TopCustomers:   loyal,
	}
	for _, c := range loyal {
		switch {
		case c.LoyaltyPoints >= goldThreshold:
			report.Tiers.Gold++
		case c.LoyaltyPoints >= silverThreshold:
			report.Tiers.Silver++
		default:
			report.Tiers.Bronze++
		}
	}
	if len(report.TopCustomers) > topCustomersLimit {
		report.TopCustomers = report.TopCustomers[:topCustomersLimit]
	}
	if report.TopCustomers == nil {
		report.TopCustomers = []models.Customer{}
	}
	return report, nil
}

func orEmpty(items []models.Stock) []models.Stock {
	if items == nil {
		return []models.Stock{}
	}
	return items
}
