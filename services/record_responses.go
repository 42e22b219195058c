package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"pharmacy-chatbot-backend/models"

	"github.com/rs/zerolog/log"
)

const recentSalesShown = 10

var (
	leaderboardQuery = regexp.MustCompile(`\b(loyal\w*|most visited|frequent\w*|regulars?|top customers?|best customers?)\b`)
	todayQuery       = regexp.MustCompile(`\btoday\b`)
)

func (s *ChatbotService) respondCustomer(ctx context.Context, text string) reply {
	customers, err := s.store.ListCustomers(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load customers for chat")
		return textReply(storeUnavailable)
	}

	loyal := loyalCustomers(customers)

	var b strings.Builder
	if leaderboardQuery.MatchString(text) {
		if len(loyal) == 0 {
			return textReply(fmt.Sprintf("No customers have reached %d loyalty points yet.", loyaltyThreshold))
		}
		fmt.Fprintf(&b, "🏅 Loyal customers (%d+ points):\n", loyaltyThreshold)
		for i, c := range loyal {
			fmt.Fprintf(&b, "%d. %s: %d points\n", i+1, c.Name, c.LoyaltyPoints)
		}
		return textReply(strings.TrimRight(b.String(), "\n"))
	}

	ranked := append([]models.Customer(nil), customers...)
	sortByPoints(ranked)

	b.WriteString("👥 Customer overview:\n")
	fmt.Fprintf(&b, "• Total customers: %d\n", len(customers))
	fmt.Fprintf(&b, "• High loyalty (%d+ points): %d\n", loyaltyThreshold, len(loyal))
	if len(ranked) > 0 {
		b.WriteString("\nTop customers by points:\n")
		for i, c := range ranked {
			if i == topProductsLimit {
				break
			}
			fmt.Fprintf(&b, "%d. %s: %d points\n", i+1, c.Name, c.LoyaltyPoints)
		}
	}
	return textReply(strings.TrimRight(b.String(), "\n"))
}

func (s *ChatbotService) respondSales(ctx context.Context, text string) reply {
	if todayQuery.MatchString(text) {
		sales, err := s.store.RecentSales(ctx, recentSalesWindow)
		if err != nil {
			log.Error().Err(err).Msg("Failed to load sales for chat")
			return textReply(storeUnavailable)
		}

		now := s.now()
		var today []models.Sale
		for _, sale := range sales {
			if sameDay(now, sale.Date) {
				today = append(today, sale)
			}
		}
		if len(today) == 0 {
			return textReply("No sales have been recorded today yet.")
		}
		return textReply(fmt.Sprintf("💰 Today's sales:\n• Transactions: %d\n• Revenue: $%.2f",
			len(today), totalRevenue(today)))
	}

	sales, err := s.store.RecentSales(ctx, recentSalesShown)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load sales for chat")
		return textReply(storeUnavailable)
	}
	if len(sales) == 0 {
		return textReply("No sales have been recorded yet.")
	}

	var b strings.Builder
	b.WriteString("💰 Recent sales:\n")
	fmt.Fprintf(&b, "• Transactions: %d\n", len(sales))
	fmt.Fprintf(&b, "• Revenue: $%.2f\n\n", totalRevenue(sales))
	for _, sale := range sales {
		customer := sale.CustomerName
		if customer == "" {
			customer = "Unknown Customer"
		}
		fmt.Fprintf(&b, "• %s: $%.2f, %s (%s)\n", sale.InvoiceNumber, sale.TotalAmount, customer, formatDate(sale.Date))
	}
	return textReply(strings.TrimRight(b.String(), "\n"))
}
