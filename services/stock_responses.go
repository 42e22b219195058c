package services

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"pharmacy-chatbot-backend/models"

	"github.com/rs/zerolog/log"
)

const notFoundSamples = 5

var (
	locationQuery   = regexp.MustCompile(`\b(location|where|rack|shelf|find|locate)\b`)
	locationFiller  = regexp.MustCompile(`\b(location|where|rack|shelf|find|locate|is|are|the|of|for|can|i|to|a|an|in|on|which|what|do|does|we|you|keep|kept|stored|store|please|me|my|located|stock|item|product|medicine)\b`)
	punctuation     = regexp.MustCompile(`[^\p{L}\p{N}\s-]+`)
	topSellingQuery = regexp.MustCompile(`most sold|top[ -]selling|best[ -]selling|popular|best ?sellers?|fast moving`)
	stockAlertQuery = regexp.MustCompile(`low stock|out of stock|running low|\blow\b|expir\w*|reorder`)
)

func (s *ChatbotService) respondStock(ctx context.Context, text string) reply {
	items, err := s.store.ListStock(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load stock for chat")
		return textReply(storeUnavailable)
	}

	switch {
	case locationQuery.MatchString(text):
		return textReply(locateProduct(items, text))
	case topSellingQuery.MatchString(text):
		return textReply(s.topSelling(ctx, items))
	case stockAlertQuery.MatchString(text):
		return textReply(s.stockAlerts(items))
	default:
		return textReply(s.stockOverview(items))
	}
}

// productQuery strips location vocabulary and filler, leaving the product
// name the user asked about.
func productQuery(text string) string {
	text = punctuation.ReplaceAllString(text, " ")
	text = locationFiller.ReplaceAllString(text, " ")
	return strings.Join(strings.Fields(text), " ")
}

func locateProduct(items []models.Stock, text string) string {
	query := productQuery(text)

	var matches []models.Stock
	if query != "" {
		for _, item := range items {
			name := strings.ToLower(item.Name)
			if name == "" {
				continue
			}
			if strings.Contains(name, query) || strings.Contains(query, name) {
				matches = append(matches, item)
			}
		}
	}

	var b strings.Builder
	if len(matches) == 0 {
		if query == "" {
			b.WriteString("Which product are you looking for?")
		} else {
			fmt.Fprintf(&b, "I couldn't find \"%s\" in the inventory.", query)
		}
		if len(items) > 0 {
			b.WriteString(" Some products we carry:\n")
			for i, item := range items {
				if i == notFoundSamples {
					break
				}
				fmt.Fprintf(&b, "• %s\n", item.Name)
			}
		}
		return strings.TrimRight(b.String(), "\n")
	}

	b.WriteString("📍 Product location:\n")
	for _, item := range matches {
		fmt.Fprintf(&b, "\n%s\n  Rack: %s, Shelf: %s\n  Quantity: %d\n  Price: $%.2f\n  Expiry: %s\n",
			item.Name, orDash(item.Rack), orDash(item.Shelf), item.Quantity, item.Price, formatDate(item.ExpiryDate))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (s *ChatbotService) topSelling(ctx context.Context, items []models.Stock) string {
	sales, err := s.store.RecentSales(ctx, recentSalesWindow)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load sales for top sellers, ranking by stock instead")
		sales = nil
	}

	ranked := aggregateSales(sales)

	var b strings.Builder
	if len(ranked) > 0 {
		b.WriteString("🏆 Top selling products (recent sales):\n")
		for i, p := range ranked {
			if i == topProductsLimit {
				break
			}
			fmt.Fprintf(&b, "%d. %s: %d units, $%.2f revenue, %d transactions\n",
				i+1, p.Name, p.Quantity, p.Revenue, p.Transactions)
		}
		return strings.TrimRight(b.String(), "\n")
	}

	if len(items) == 0 {
		return "There is no sales history and no stock on record yet."
	}

	byQuantity := append([]models.Stock(nil), items...)
	sort.SliceStable(byQuantity, func(i, j int) bool { return byQuantity[i].Quantity > byQuantity[j].Quantity })

	b.WriteString("No sales history is available yet, so here are the best stocked products instead (fallback ranking by quantity):\n")
	for i, item := range byQuantity {
		if i == topProductsLimit {
			break
		}
		fmt.Fprintf(&b, "%d. %s: %d units in stock\n", i+1, item.Name, item.Quantity)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (s *ChatbotService) stockAlerts(items []models.Stock) string {
	now := s.now()
	low := lowStockItems(items)
	expiring := expiringItems(items, now)

	if len(low) == 0 && len(expiring) == 0 {
		return "✅ All items are well-stocked and nothing expires in the next 30 days."
	}

	var b strings.Builder
	if len(low) > 0 {
		fmt.Fprintf(&b, "⚠️ Low stock (under %d units):\n", lowStockThreshold)
		for _, item := range low {
			fmt.Fprintf(&b, "• %s: %d left\n", item.Name, item.Quantity)
		}
	}
	if len(expiring) > 0 {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString("⏰ Expiring within 30 days:\n")
		for _, item := range expiring {
			fmt.Fprintf(&b, "• %s: expires %s (%d units)\n", item.Name, formatDate(item.ExpiryDate), item.Quantity)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (s *ChatbotService) stockOverview(items []models.Stock) string {
	now := s.now()

	var b strings.Builder
	b.WriteString("📦 Inventory overview:\n")
	fmt.Fprintf(&b, "• Total items: %d\n", len(items))
	fmt.Fprintf(&b, "• Low stock: %d\n", len(lowStockItems(items)))
	fmt.Fprintf(&b, "• Expiring within 30 days: %d\n", len(expiringItems(items, now)))

	if len(items) > 0 {
		b.WriteString("\nRecently updated:\n")
		for i, item := range items {
			if i == topProductsLimit {
				break
			}
			fmt.Fprintf(&b, "• %s: %d units\n", item.Name, item.Quantity)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
