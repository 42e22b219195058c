package utils

import (
	"pharmacy-chatbot-backend/knowledge"
	"pharmacy-chatbot-backend/models"
)

const (
	minConfidence = 60
	maxConfidence = 95
)

// signals is what the decision table looks at.
type signals struct {
	entities   Entities
	candidates []string
}

// rule is one row of the decision table. apply, when set, adjusts the result
// after the rule wins.
type rule struct {
	name   string
	match  func(s signals) bool
	intent models.MessageIntent
	apply  func(s signals, result *models.ClassificationResult)
}

// rules are evaluated top to bottom and the first match wins. Interaction
// and greeting detection come first because those messages routinely carry
// words ("with", "hi") that the topical vocabularies would misread.
var rules = []rule{
	{
		name: "two known substances",
		match: func(s signals) bool {
			return len(s.entities.Substances) >= 2 && (s.entities.Flags.Interaction || !s.entities.Flags.Greeting)
		},
		intent: models.IntentInteraction,
	},
	{
		name:   "interaction with two extracted candidates",
		match:  func(s signals) bool { return s.entities.Flags.Interaction && len(s.candidates) >= 2 },
		intent: models.IntentInteraction,
		apply: func(s signals, result *models.ClassificationResult) {
			result.Substances = mergeNames(result.Substances, s.candidates)
		},
	},
	{
		name:   "interaction without substances",
		match:  func(s signals) bool { return s.entities.Flags.Interaction },
		intent: models.IntentGeneral,
	},
	{
		name:   "greeting or help",
		match:  func(s signals) bool { return s.entities.Flags.Greeting },
		intent: models.IntentGeneral,
	},
	{
		name:   "sales",
		match:  func(s signals) bool { return s.entities.Flags.Sales },
		intent: models.IntentSales,
	},
	{
		name:   "stock",
		match:  func(s signals) bool { return s.entities.Flags.Stock },
		intent: models.IntentStock,
	},
	{
		name:   "medical",
		match:  func(s signals) bool { return s.entities.Flags.Medical || len(s.entities.Conditions) > 0 },
		intent: models.IntentMedical,
	},
	{
		name:   "customer",
		match:  func(s signals) bool { return s.entities.Flags.Customer },
		intent: models.IntentCustomer,
	},
	{
		name:   "fallback",
		match:  func(signals) bool { return true },
		intent: models.IntentGeneral,
	},
}

type IntentClassifier struct {
	extractor *EntityExtractor
	bayes     *NaiveBayes
}

func NewIntentClassifier(kb *knowledge.Base) *IntentClassifier {
	return &IntentClassifier{
		extractor: NewEntityExtractor(kb),
		bayes:     NewTrainedNaiveBayes(),
	}
}

// ClassifyIntent analyses message and resolves its final intent.
func (ic *IntentClassifier) ClassifyIntent(message string) *models.ClassificationResult {
	entities := ic.extractor.Extract(message)
	raw, _ := ic.bayes.Classify(message)

	s := signals{entities: entities}
	if entities.Flags.Interaction && len(entities.Substances) < 2 {
		s.candidates = ic.extractor.CandidatePair(message)
	}

	result := &models.ClassificationResult{
		Substances:       entities.Substances,
		Conditions:       entities.Conditions,
		Flags:            entities.Flags,
		Tokens:           entities.Tokens,
		ClassifierIntent: raw,
	}

	matched := resolve(s)
	result.Intent = matched.intent
	if matched.apply != nil {
		matched.apply(s, result)
	}

	result.Confidence = Confidence(len(result.Substances), result.Flags)
	return result
}

func resolve(s signals) rule {
	for _, r := range rules {
		if r.match(s) {
			return r
		}
	}
	return rules[len(rules)-1]
}

// Confidence scores a classification: a floor of 60 plus weighted evidence,
// capped at 95.
func Confidence(substances int, flags models.TopicFlags) int {
	score := minConfidence + 10*substances
	if flags.Stock {
		score += 25
	}
	if flags.Greeting {
		score += 30
	}
	if flags.Sales {
		score += 30
	}
	if flags.Interaction {
		score += 15
	}
	if flags.Customer {
		score += 15
	}
	return min(maxConfidence, max(minConfidence, score))
}

func mergeNames(existing, extra []string) []string {
	out := append([]string(nil), existing...)
	seen := make(map[string]struct{}, len(existing))
	for _, name := range existing {
		seen[name] = struct{}{}
	}
	for _, name := range extra {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}
