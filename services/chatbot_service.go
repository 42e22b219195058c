package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"pharmacy-chatbot-backend/knowledge"
	"pharmacy-chatbot-backend/metrics"
	"pharmacy-chatbot-backend/models"
	"pharmacy-chatbot-backend/utils"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var ErrEmptyMessage = errors.New("message is required")

const (
	storeUnavailable = "Sorry, I couldn't reach the pharmacy records right now. Please try again in a moment."

	medicalDisclaimer = "⚠️ This information is for reference only. Please consult a doctor or pharmacist for advice about your treatment."
)

var (
	thanksPattern    = regexp.MustCompile(`\b(thanks|thank you)\b`)
	goodbyePattern   = regexp.MustCompile(`\b(bye|goodbye|see you)\b`)
	howAreYouPattern = regexp.MustCompile(`\bhow are you\b`)
	helpPattern      = regexp.MustCompile(`\b(help|what can you do)\b`)
	helloPattern     = regexp.MustCompile(`\b(hi|hello|hey|good (morning|afternoon|evening))\b`)
)

var quickActions = []models.Action{
	{Type: "quick_reply", Label: "Low stock", Message: "Which items are low in stock?"},
	{Type: "quick_reply", Label: "Today's sales", Message: "Show me today's sales"},
	{Type: "quick_reply", Label: "Loyal customers", Message: "Show loyal customers"},
	{Type: "quick_reply", Label: "Check interactions", Message: "Check interactions between aspirin and warfarin"},
}

type reply struct {
	text    string
	actions []models.Action
}

func textReply(text string) reply {
	return reply{text: text}
}

// ChatbotService answers free-text questions about the pharmacy. It only
// reads from the store.
type ChatbotService struct {
	store      PharmacyStore
	lookup     MedicalLookup
	kb         *knowledge.Base
	classifier *utils.IntentClassifier
	now        func() time.Time
}

func NewChatbotService(store PharmacyStore, lookup MedicalLookup, kb *knowledge.Base) *ChatbotService {
	return &ChatbotService{
		store:      store,
		lookup:     lookup,
		kb:         kb,
		classifier: utils.NewIntentClassifier(kb),
		now:        time.Now,
	}
}

func (s *ChatbotService) ProcessMessage(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, ErrEmptyMessage
	}

	analysis := s.classifier.ClassifyIntent(req.Message)
	metrics.ChatbotIntents.WithLabelValues(string(analysis.Intent)).Inc()

	log.Debug().
		Str("intent", string(analysis.Intent)).
		Str("classifier_intent", string(analysis.ClassifierIntent)).
		Int("confidence", analysis.Confidence).
		Strs("substances", analysis.Substances).
		Msg("Classified chat message")

	text := utils.FoldText(req.Message)

	var r reply
	switch analysis.Intent {
	case models.IntentStock:
		r = s.respondStock(ctx, text)
	case models.IntentCustomer:
		r = s.respondCustomer(ctx, text)
	case models.IntentSales:
		r = s.respondSales(ctx, text)
	case models.IntentInteraction:
		r = s.respondInteraction(ctx, analysis)
	case models.IntentMedical:
		r = s.respondMedical(ctx, analysis)
	default:
		r = s.respondGeneral(req.Message, text, analysis)
	}

	return &models.ChatResponse{
		Success:  true,
		Response: r.text,
		Context:  req.Context,
		Analysis: analysis,
		Actions:  r.actions,
	}, nil
}

func (s *ChatbotService) respondGeneral(message, text string, analysis *models.ClassificationResult) reply {
	switch {
	case analysis.Flags.Interaction:
		return reply{
			text: "To check drug interactions, name at least two medicines, for example " +
				"\"interactions between aspirin and warfarin\" or \"can I take ibuprofen with lisinopril\".",
			actions: quickActions[3:],
		}
	case thanksPattern.MatchString(text):
		return textReply("You're welcome! Let me know if there's anything else I can look up for you.")
	case goodbyePattern.MatchString(text):
		return textReply("Goodbye! Have a great day.")
	case howAreYouPattern.MatchString(text):
		return reply{
			text:    "I'm doing well and ready to help. What would you like to check?",
			actions: quickActions,
		}
	case helpPattern.MatchString(text):
		return reply{text: capabilities("Here's what I can help you with:"), actions: quickActions}
	case helloPattern.MatchString(text):
		return reply{
			text:    capabilities(s.greeting() + "! Welcome to the pharmacy assistant. I can help you with:"),
			actions: quickActions,
		}
	}

	return reply{
		text:    capabilities(fmt.Sprintf("I'm not sure how to answer \"%s\". I can help you with:", strings.TrimSpace(message))),
		actions: quickActions,
	}
}

func (s *ChatbotService) greeting() string {
	hour := s.now().Hour()
	switch {
	case hour < 12:
		return "Good morning"
	case hour < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

func capabilities(intro string) string {
	return intro + "\n\n" +
		"• 📦 Stock levels, shelf locations and expiring items\n" +
		"• 💰 Sales figures and recent transactions\n" +
		"• 👥 Customers and loyalty points\n" +
		"• 💊 Drug interaction checks\n" +
		"• 🩺 Symptoms and treatments of common conditions\n\n" +
		"What would you like to know?"
}

// titled capitalises a knowledge base name. Casers are stateful, so each
// call gets its own.
func titled(name string) string {
	return cases.Title(language.English).String(name)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "n/a"
	}
	return t.Format("2006-01-02")
}
