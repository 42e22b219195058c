package services

import (
	"sort"
	"strings"
	"time"

	"pharmacy-chatbot-backend/models"
)

const (
	lowStockThreshold = 10
	expiryWindow      = 30 * 24 * time.Hour
	loyaltyThreshold  = 50
	silverThreshold   = 100
	goldThreshold     = 200
	recentSalesWindow = 100
	topProductsLimit  = 5
)

// lowStockItems returns items under the reorder threshold, emptiest first.
func lowStockItems(items []models.Stock) []models.Stock {
	var low []models.Stock
	for _, item := range items {
		if item.Quantity < lowStockThreshold {
			low = append(low, item)
		}
	}
	sort.SliceStable(low, func(i, j int) bool { return low[i].Quantity < low[j].Quantity })
	return low
}

// expiringItems returns items whose expiry falls in [now, now+30d], soonest
// first. Items without an expiry date are ignored.
func expiringItems(items []models.Stock, now time.Time) []models.Stock {
	var out []models.Stock
	limit := now.Add(expiryWindow)
	for _, item := range items {
		if item.ExpiryDate.IsZero() {
			continue
		}
		if !item.ExpiryDate.Before(now) && !item.ExpiryDate.After(limit) {
			out = append(out, item)
		}
	}
	sortByExpiry(out)
	return out
}

func expiredItems(items []models.Stock, now time.Time) []models.Stock {
	var out []models.Stock
	for _, item := range items {
		if !item.ExpiryDate.IsZero() && item.ExpiryDate.Before(now) {
			out = append(out, item)
		}
	}
	sortByExpiry(out)
	return out
}

func sortByExpiry(items []models.Stock) {
	sort.SliceStable(items, func(i, j int) bool { return items[i].ExpiryDate.Before(items[j].ExpiryDate) })
}

// aggregateSales totals line items per product name (case-insensitive) and
// orders the result by quantity sold, then name.
func aggregateSales(sales []models.Sale) []models.ProductSales {
	index := make(map[string]int)
	var out []models.ProductSales

	for _, sale := range sales {
		counted := make(map[string]bool)
		for _, item := range sale.Items {
			key := strings.ToLower(strings.TrimSpace(item.Name))
			if key == "" {
				continue
			}
			i, ok := index[key]
			if !ok {
				i = len(out)
				index[key] = i
				out = append(out, models.ProductSales{Name: item.Name})
			}
			out[i].Quantity += item.Quantity
			out[i].Revenue += float64(item.Quantity) * item.Price
			if !counted[key] {
				out[i].Transactions++
				counted[key] = true
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Quantity != out[j].Quantity {
			return out[i].Quantity > out[j].Quantity
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// loyalCustomers returns customers at or above the loyalty threshold, most
// points first.
func loyalCustomers(customers []models.Customer) []models.Customer {
	var out []models.Customer
	for _, c := range customers {
		if c.LoyaltyPoints >= loyaltyThreshold {
			out = append(out, c)
		}
	}
	sortByPoints(out)
	return out
}

func sortByPoints(customers []models.Customer) {
	sort.SliceStable(customers, func(i, j int) bool {
		return customers[i].LoyaltyPoints > customers[j].LoyaltyPoints
	})
}

func totalRevenue(sales []models.Sale) float64 {
	var total float64
	for _, s := range sales {
		total += s.TotalAmount
	}
	return total
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}
