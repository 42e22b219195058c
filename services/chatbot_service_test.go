package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmacy-chatbot-backend/knowledge"
	"pharmacy-chatbot-backend/models"
)

func newTestChatbot(store *fakeStore, lookup *fakeLookup) *ChatbotService {
	if lookup == nil {
		lookup = &fakeLookup{}
	}
	svc := NewChatbotService(store, lookup, knowledge.Default())
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func chat(t *testing.T, svc *ChatbotService, message string) *models.ChatResponse {
	t.Helper()
	resp, err := svc.ProcessMessage(context.Background(), models.ChatRequest{Message: message, Context: "ctx-1"})
	require.NoError(t, err)
	require.True(t, resp.Success)
	require.NotNil(t, resp.Analysis)
	return resp
}

func TestProcessMessage_EmptyMessage(t *testing.T) {
	svc := newTestChatbot(&fakeStore{}, nil)

	_, err := svc.ProcessMessage(context.Background(), models.ChatRequest{Message: "   "})
	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestProcessMessage_EchoesContext(t *testing.T) {
	resp := chat(t, newTestChatbot(&fakeStore{}, nil), "hi")
	assert.Equal(t, "ctx-1", resp.Context)
}

func TestProcessMessage_Greeting(t *testing.T) {
	resp := chat(t, newTestChatbot(&fakeStore{}, nil), "hi")

	assert.Equal(t, models.IntentGeneral, resp.Analysis.Intent)
	assert.GreaterOrEqual(t, resp.Analysis.Confidence, 90)
	assert.Contains(t, resp.Response, "Good afternoon! Welcome to the pharmacy assistant")
	assert.NotEmpty(t, resp.Actions)
}

func TestProcessMessage_GeneralTemplates(t *testing.T) {
	svc := newTestChatbot(&fakeStore{}, nil)

	tests := []struct {
		message string
		want    string
	}{
		{"thank you!", "You're welcome"},
		{"bye", "Goodbye"},
		{"hello, how are you?", "I'm doing well"},
		{"help", "Here's what I can help you with"},
		{"interactions please", "name at least two medicines"},
		{"what's the weather like", `I'm not sure how to answer "what's the weather like"`},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			resp := chat(t, svc, tt.message)
			assert.Equal(t, models.IntentGeneral, resp.Analysis.Intent)
			assert.Contains(t, resp.Response, tt.want)
		})
	}
}

func TestProcessMessage_InteractionScenario(t *testing.T) {
	lookup := &fakeLookup{}
	resp := chat(t, newTestChatbot(&fakeStore{}, lookup), "check interactions between aspirin and warfarin")

	assert.Equal(t, models.IntentInteraction, resp.Analysis.Intent)
	assert.Equal(t, []string{"aspirin", "warfarin"}, resp.Analysis.Substances)
	assert.Contains(t, resp.Response, "Interactions found")
	assert.Contains(t, resp.Response, "increase bleeding risk")
	assert.Contains(t, resp.Response, "Aspirin (")
	assert.Contains(t, resp.Response, "Warfarin (")
	assert.Empty(t, lookup.terms)
}

func TestProcessMessage_KnownPairWithoutInteraction(t *testing.T) {
	resp := chat(t, newTestChatbot(&fakeStore{}, nil), "can I take montelukast with salbutamol")

	assert.Equal(t, models.IntentInteraction, resp.Analysis.Intent)
	assert.Contains(t, resp.Response, "No known harmful interaction")
}

func TestProcessMessage_UnregisteredPairUsesExampleVerdict(t *testing.T) {
	lookup := &fakeLookup{}
	resp := chat(t, newTestChatbot(&fakeStore{}, lookup), "is it safe to take tramadol with sertraline")

	assert.Equal(t, models.IntentInteraction, resp.Analysis.Intent)
	assert.Equal(t, []string{"tramadol", "sertraline"}, lookup.terms)
	assert.Contains(t, resp.Response, "No information available for tramadol")
	assert.Contains(t, resp.Response, "Verdict: UNSAFE")
}

func TestProcessMessage_UnregisteredSubstanceUsesLookup(t *testing.T) {
	lookup := &fakeLookup{results: map[string][]models.ExternalLookupResult{
		"ginkgo": {{
			Source: "drugs.com",
			Categories: map[models.LookupCategory][]string{
				models.CategoryInteractions: {"Ginkgo may interact with blood thinners and raise bleeding risk."},
				models.CategorySideEffects:  {"Common side effects include headache and upset stomach."},
			},
		}},
	}}
	resp := chat(t, newTestChatbot(&fakeStore{}, lookup), "interaction between aspirin and ginkgo")

	assert.Equal(t, []string{"ginkgo"}, lookup.terms)
	assert.Contains(t, resp.Response, "Ginkgo (external references)")
	assert.Contains(t, resp.Response, "Ginkgo may interact with blood thinners")
	assert.Contains(t, resp.Response, "Common side effects include headache")
	assert.Contains(t, resp.Response, "No known harmful interaction between aspirin and ginkgo")
}

func TestProcessMessage_LowStockScenario(t *testing.T) {
	store := &fakeStore{stock: []models.Stock{
		{Name: "Amoxicillin 250mg", Quantity: 4},
		{Name: "Cetirizine 10mg", Quantity: 80, ExpiryDate: fixedNow.AddDate(0, 0, 10)},
		{Name: "Omeprazole 20mg", Quantity: 60, ExpiryDate: fixedNow.AddDate(0, 3, 0)},
	}}
	resp := chat(t, newTestChatbot(store, nil), "low stock items")

	assert.Equal(t, models.IntentStock, resp.Analysis.Intent)
	assert.Contains(t, resp.Response, "Amoxicillin 250mg: 4 left")
	assert.Contains(t, resp.Response, "Cetirizine 10mg: expires 2025-03-24")
	assert.NotContains(t, resp.Response, "Omeprazole")
}

func TestProcessMessage_LowStockAllWell(t *testing.T) {
	store := &fakeStore{stock: []models.Stock{
		{Name: "Omeprazole 20mg", Quantity: 60, ExpiryDate: fixedNow.AddDate(1, 0, 0)},
	}}
	resp := chat(t, newTestChatbot(store, nil), "low stock items")

	assert.Contains(t, resp.Response, "All items are well-stocked")
}

func TestProcessMessage_StockLocation(t *testing.T) {
	store := &fakeStore{stock: []models.Stock{
		{Name: "Paracetamol 500mg", Quantity: 120, Price: 2.5, Rack: "A1", Shelf: "3"},
		{Name: "Ibuprofen 200mg", Quantity: 40},
	}}
	svc := newTestChatbot(store, nil)

	resp := chat(t, svc, "where is paracetamol?")
	assert.Equal(t, models.IntentStock, resp.Analysis.Intent)
	assert.Contains(t, resp.Response, "Paracetamol 500mg")
	assert.Contains(t, resp.Response, "Rack: A1, Shelf: 3")
	assert.Contains(t, resp.Response, "Price: $2.50")

	resp = chat(t, svc, "where is zolpidem")
	assert.Contains(t, resp.Response, `I couldn't find "zolpidem"`)
	assert.Contains(t, resp.Response, "Ibuprofen 200mg")
}

func TestProcessMessage_TopSelling(t *testing.T) {
	store := &fakeStore{
		stock: []models.Stock{{Name: "Cetirizine", Quantity: 500}},
		sales: []models.Sale{
			{InvoiceNumber: "INV-2", Items: []models.LineItem{{Name: "Paracetamol", Quantity: 3, Price: 2}, {Name: "Cetirizine", Quantity: 1, Price: 4}}},
			{InvoiceNumber: "INV-1", Items: []models.LineItem{{Name: "paracetamol", Quantity: 2, Price: 2}}},
		},
	}
	resp := chat(t, newTestChatbot(store, nil), "what are the most sold products")

	assert.Equal(t, models.IntentStock, resp.Analysis.Intent)
	assert.Contains(t, resp.Response, "1. Paracetamol: 5 units, $10.00 revenue, 2 transactions")
	assert.Contains(t, resp.Response, "2. Cetirizine: 1 units")
}

func TestProcessMessage_TopSellingFallsBackToStock(t *testing.T) {
	store := &fakeStore{stock: []models.Stock{
		{Name: "Low", Quantity: 3},
		{Name: "High", Quantity: 300},
	}}
	resp := chat(t, newTestChatbot(store, nil), "show popular products")

	assert.Contains(t, resp.Response, "fallback")
	assert.Less(t, strings.Index(resp.Response, "High"), strings.Index(resp.Response, "Low"))
}

func TestProcessMessage_StoreFailureApologises(t *testing.T) {
	store := &fakeStore{err: errors.New("connection refused")}
	svc := newTestChatbot(store, nil)

	for _, msg := range []string{"low stock items", "most visited customer", "show recent sales"} {
		resp := chat(t, svc, msg)
		assert.Equal(t, storeUnavailable, resp.Response, msg)
	}
}

func TestProcessMessage_MostVisitedCustomer(t *testing.T) {
	store := &fakeStore{customers: []models.Customer{
		{Name: "Bob", LoyaltyPoints: 40},
		{Name: "Alice", LoyaltyPoints: 120},
		{Name: "Carol", LoyaltyPoints: 75},
	}}
	resp := chat(t, newTestChatbot(store, nil), "most visited customer")

	assert.Equal(t, models.IntentCustomer, resp.Analysis.Intent)
	assert.Contains(t, resp.Response, "1. Alice: 120 points")
	assert.Contains(t, resp.Response, "2. Carol: 75 points")
	assert.NotContains(t, resp.Response, "Bob")
}

func TestProcessMessage_CustomerOverview(t *testing.T) {
	store := &fakeStore{customers: []models.Customer{
		{Name: "Bob", LoyaltyPoints: 40},
		{Name: "Alice", LoyaltyPoints: 120},
	}}
	resp := chat(t, newTestChatbot(store, nil), "how many customers do we have")

	assert.Contains(t, resp.Response, "Total customers: 2")
	assert.Contains(t, resp.Response, "High loyalty (50+ points): 1")
	assert.Less(t, strings.Index(resp.Response, "Alice"), strings.Index(resp.Response, "Bob"))
}

func TestProcessMessage_TodaysSales(t *testing.T) {
	store := &fakeStore{sales: []models.Sale{
		{InvoiceNumber: "INV-3", TotalAmount: 100, Date: fixedNow.Add(-time.Hour)},
		{InvoiceNumber: "INV-2", TotalAmount: 50, Date: fixedNow.Add(-2 * time.Hour)},
		{InvoiceNumber: "INV-1", TotalAmount: 30, Date: fixedNow.AddDate(0, 0, -1)},
	}}
	resp := chat(t, newTestChatbot(store, nil), "show me today's sales")

	assert.Equal(t, models.IntentSales, resp.Analysis.Intent)
	assert.Contains(t, resp.Response, "Transactions: 2")
	assert.Contains(t, resp.Response, "Revenue: $150.00")
}

func TestProcessMessage_RecentSales(t *testing.T) {
	store := &fakeStore{sales: []models.Sale{
		{InvoiceNumber: "INV-2", TotalAmount: 20, CustomerName: "Alice", Date: fixedNow},
		{InvoiceNumber: "INV-1", TotalAmount: 10, Date: fixedNow},
	}}
	resp := chat(t, newTestChatbot(store, nil), "show recent sales")

	assert.Contains(t, resp.Response, "Revenue: $30.00")
	assert.Contains(t, resp.Response, "INV-2: $20.00, Alice")
	assert.Contains(t, resp.Response, "INV-1: $10.00, Unknown Customer")
}

func TestProcessMessage_SymptomsOfDiabetes(t *testing.T) {
	resp := chat(t, newTestChatbot(&fakeStore{}, nil), "symptoms of diabetes")

	assert.Equal(t, models.IntentMedical, resp.Analysis.Intent)

	diabetes, ok := knowledge.Default().Condition("diabetes")
	require.True(t, ok)
	for _, list := range [][]string{diabetes.Symptoms, diabetes.Treatments, diabetes.Complications} {
		for _, entry := range list {
			assert.Contains(t, resp.Response, entry)
		}
	}
}

func TestProcessMessage_SubstanceSideEffects(t *testing.T) {
	lookup := &fakeLookup{}
	resp := chat(t, newTestChatbot(&fakeStore{}, lookup), "side effects of metformin")

	assert.Equal(t, models.IntentMedical, resp.Analysis.Intent)
	assert.Contains(t, resp.Response, "Metformin (")
	assert.Contains(t, resp.Response, "Breastfeeding:")
	assert.Empty(t, lookup.terms)
}

func TestProcessMessage_UnknownConditionUsesLookup(t *testing.T) {
	lookup := &fakeLookup{results: map[string][]models.ExternalLookupResult{
		"shingles": {{
			Source:    "medlineplus",
			Sentences: []string{"Shingles is a painful rash caused by the varicella zoster virus."},
		}},
	}}
	resp := chat(t, newTestChatbot(&fakeStore{}, lookup), "what are the symptoms of shingles")

	assert.Equal(t, []string{"shingles"}, lookup.terms)
	assert.Contains(t, resp.Response, "From medlineplus")
	assert.Contains(t, resp.Response, "painful rash")
}

func TestProcessMessage_UnknownConditionWithoutResults(t *testing.T) {
	resp := chat(t, newTestChatbot(&fakeStore{}, &fakeLookup{}), "what are the symptoms of shingles")

	assert.Contains(t, resp.Response, "limited information")
	assert.Contains(t, resp.Response, "diabetes")
}

func TestMedicalTerms(t *testing.T) {
	assert.Equal(t, []string{"shingles"}, medicalTerms([]string{"what", "are", "the", "symptoms", "of", "shingles"}))
	assert.Equal(t, []string{"back", "pain", "numbness"}, medicalTerms([]string{"back", "pain", "back", "and", "numbness", "legs"}))
	assert.Empty(t, medicalTerms(nil))
}
