package controllers

import (
	"context"
	"errors"
	"net/http"

	"pharmacy-chatbot-backend/models"
	"pharmacy-chatbot-backend/services"

	"github.com/gin-gonic/gin"
)

type ChatProcessor interface {
	ProcessMessage(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error)
}

type InteractionChecker interface {
	CheckDrugInteractions(medications []string) (*models.DrugInteractionReport, error)
}

type InsightsProvider interface {
	GetInsights(ctx context.Context) (*models.Insights, error)
	GenerateReport(ctx context.Context, reportType string, dateRange *models.DateRange) (any, error)
}

type ChatbotController struct {
	chatbot      ChatProcessor
	interactions InteractionChecker
	insights     InsightsProvider
}

func NewChatbotController(chatbot ChatProcessor, interactions InteractionChecker, insights InsightsProvider) *ChatbotController {
	return &ChatbotController{
		chatbot:      chatbot,
		interactions: interactions,
		insights:     insights,
	}
}

// HandleChat godoc
// @Summary Answer a chat message
// @Description Classifies the message and answers from the pharmacy records, the knowledge base or external references.
// @Tags Chatbot
// @Accept json
// @Produce json
// @Param request body models.ChatRequest true "Chat message"
// @Success 200 {object} models.ChatResponse
// @Failure 400 {object} map[string]any
// @Failure 429 {object} map[string]any
// @Router /chatbot/chat [post]
func (cc *ChatbotController) HandleChat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "message is required", err)
		return
	}

	response, err := cc.chatbot.ProcessMessage(c.Request.Context(), req)
	if errors.Is(err, services.ErrEmptyMessage) {
		respondError(c, http.StatusBadRequest, "message is required", err)
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to process message", err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// CheckDrugInteractions godoc
// @Summary Check drug interactions
// @Tags Chatbot
// @Accept json
// @Produce json
// @Param request body models.DrugInteractionRequest true "Medications"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Router /chatbot/drug-interactions [post]
func (cc *ChatbotController) CheckDrugInteractions(c *gin.Context) {
	var req models.DrugInteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	report, err := cc.interactions.CheckDrugInteractions(req.Medications)
	if errors.Is(err, services.ErrTooFewMedications) {
		respondError(c, http.StatusBadRequest, "At least two medications are required", err)
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to check drug interactions", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    report,
	})
}

// GetInsights godoc
// @Summary Dashboard insights
// @Description Stock, expiry, customer and sales totals for the dashboard.
// @Tags Reports
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 500 {object} map[string]any
// @Router /chatbot/insights [get]
func (cc *ChatbotController) GetInsights(c *gin.Context) {
	insights, err := cc.insights.GetInsights(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load insights", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"insights": insights,
	})
}

// GenerateReport godoc
// @Summary Generate a report
// @Description Generates a sales_summary, stock_alerts or customer_loyalty report.
// @Tags Reports
// @Accept json
// @Produce json
// @Param request body models.ReportRequest true "Report type and optional date range"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Router /chatbot/reports [post]
func (cc *ChatbotController) GenerateReport(c *gin.Context) {
	var req models.ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "reportType is required", err)
		return
	}

	data, err := cc.insights.GenerateReport(c.Request.Context(), req.ReportType, req.DateRange)
	if errors.Is(err, services.ErrUnknownReportType) {
		respondError(c, http.StatusBadRequest, "Unsupported report type", err)
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to generate report", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"reportType": req.ReportType,
		"data":       data,
	})
}

// GetSupportedIntents godoc
// @Summary List supported intents
// @Tags Chatbot
// @Produce json
// @Success 200 {object} map[string]any
// @Router /chatbot/intents [get]
func (cc *ChatbotController) GetSupportedIntents(c *gin.Context) {
	intents := []gin.H{
		{
			"intent":      models.IntentStock,
			"description": "Inventory levels, product locations, top sellers and expiring items",
			"examples":    []string{"Which items are low in stock?", "Where is paracetamol?", "What are the most sold products?"},
		},
		{
			"intent":      models.IntentCustomer,
			"description": "Customer counts and loyalty leaderboard",
			"examples":    []string{"Show loyal customers", "Most visited customer"},
		},
		{
			"intent":      models.IntentSales,
			"description": "Today's takings and recent transactions",
			"examples":    []string{"Show me today's sales", "Recent sales"},
		},
		{
			"intent":      models.IntentInteraction,
			"description": "Drug interaction checks between two or more medicines",
			"examples":    []string{"Check interactions between aspirin and warfarin", "Can I take ibuprofen with lisinopril?"},
		},
		{
			"intent":      models.IntentMedical,
			"description": "Symptoms, treatments and side effects",
			"examples":    []string{"Symptoms of diabetes", "Side effects of metformin"},
		},
		{
			"intent":      models.IntentGeneral,
			"description": "Greetings and help",
			"examples":    []string{"Hi", "What can you do?"},
		},
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"intents": intents,
	})
}
