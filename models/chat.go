package models

type MessageIntent string

const (
	IntentStock       MessageIntent = "stock"
	IntentCustomer    MessageIntent = "customer"
	IntentSales       MessageIntent = "sales"
	IntentInteraction MessageIntent = "interaction"
	IntentMedical     MessageIntent = "medical"
	IntentGeneral     MessageIntent = "general"
)

// Intents lists every intent in a stable order.
var Intents = []MessageIntent{
	IntentStock,
	IntentCustomer,
	IntentSales,
	IntentInteraction,
	IntentMedical,
	IntentGeneral,
}

// TopicFlags records which topic vocabularies occur in a message.
type TopicFlags struct {
	Stock       bool `json:"stock"`
	Customer    bool `json:"customer"`
	Sales       bool `json:"sales"`
	Interaction bool `json:"interaction"`
	Medical     bool `json:"medical"`
	Greeting    bool `json:"greeting"`
}

// ClassificationResult is the per-message analysis returned with every chat
// answer. It is never persisted.
type ClassificationResult struct {
	Intent           MessageIntent `json:"intent"`
	Confidence       int           `json:"confidence"`
	Substances       []string      `json:"substances"`
	Conditions       []string      `json:"conditions"`
	Flags            TopicFlags    `json:"flags"`
	Tokens           []string      `json:"tokens"`
	ClassifierIntent MessageIntent `json:"classifierIntent"`
}

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
	Context string `json:"context,omitempty"`
}

type ChatResponse struct {
	Success  bool                  `json:"success"`
	Response string                `json:"response"`
	Context  string                `json:"context"`
	Analysis *ClassificationResult `json:"analysis"`
	Actions  []Action              `json:"actions,omitempty"`
}

// Action is a quick reply the client may render as a button.
type Action struct {
	Type    string `json:"type"`
	Label   string `json:"label"`
	Message string `json:"message,omitempty"`
}

type DrugInteractionRequest struct {
	Medications []string `json:"medications"`
}

type InteractionFinding struct {
	Medication1 string `json:"medication1"`
	Medication2 string `json:"medication2"`
	Warning     string `json:"warning"`
}

type DrugInteractionReport struct {
	Medications     []string             `json:"medications"`
	Interactions    []InteractionFinding `json:"interactions"`
	Warnings        []string             `json:"warnings"`
	HasInteractions bool                 `json:"hasInteractions"`
	Severity        string               `json:"severity"`
}

const (
	SeverityHigh = "HIGH"
	SeverityLow  = "LOW"
)
