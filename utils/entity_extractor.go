package utils

import (
	"regexp"
	"sort"
	"strings"

	"pharmacy-chatbot-backend/knowledge"
	"pharmacy-chatbot-backend/models"
)

// Topic vocabularies. Greetings match whole words only so that "this" or
// "history" never read as "hi"; the other lists also accept suffixes.
var (
	stockPattern       = regexp.MustCompile(`\b(stock|inventory|medicines?|items?|products?|available|availability|quantity|expir\w*|rack|shelf|locat\w*|where|find|most sold|top selling|best ?sellers?|popular)\b`)
	interactionPattern = regexp.MustCompile(`\b(interact\w*|between|with|combin\w*|together)\b`)
	customerPattern    = regexp.MustCompile(`\b(customers?|clients?|loyal\w*|visited|visits?|regulars?|frequent\w*|patrons?)\b`)
	salesPattern       = regexp.MustCompile(`\b(sales?|revenue|income|earnings?|profits?|transactions?|invoices?|turnover)\b`)
	medicalPattern     = regexp.MustCompile(`\b(symptoms?|diseases?|conditions?|treat\w*|cure|pain|fever|illness|sick|diagnos\w*|infections?|headaches?|cough|side effects?|dosage|dose)\b`)
	greetingPattern    = regexp.MustCompile(`\b(hi|hello|hey|help|thanks|thank you|good (morning|afternoon|evening)|how are you|bye|goodbye)\b`)

	betweenPattern = regexp.MustCompile(`between\s+([a-z][a-z0-9-]*)\s+and\s+([a-z][a-z0-9-]*)`)
	withPattern    = regexp.MustCompile(`([a-z][a-z0-9-]*)\s+with\s+([a-z][a-z0-9-]*)`)
)

// candidateStopwords are words the "X with Y" template commonly captures
// that can never name a substance.
var candidateStopwords = map[string]struct{}{
	"take": {}, "taking": {}, "taken": {}, "it": {}, "this": {}, "that": {}, "them": {},
	"me": {}, "you": {}, "safe": {}, "okay": {}, "ok": {}, "drug": {}, "drugs": {},
	"medicine": {}, "medicines": {}, "medication": {}, "medications": {}, "pill": {},
	"pills": {}, "the": {}, "a": {}, "an": {}, "my": {}, "your": {}, "any": {},
	"mix": {}, "mixing": {}, "use": {}, "using": {}, "together": {}, "and": {},
	"is": {}, "are": {}, "can": {}, "do": {}, "does": {}, "what": {}, "there": {},
	"interaction": {}, "interactions": {}, "check": {}, "most": {}, "along": {},
}

// Entities is everything the extractor recognised in one message.
type Entities struct {
	Substances []string
	Conditions []string
	Flags      models.TopicFlags
	Tokens     []string
}

type EntityExtractor struct {
	kb *knowledge.Base
}

func NewEntityExtractor(kb *knowledge.Base) *EntityExtractor {
	return &EntityExtractor{kb: kb}
}

// Extract finds the known substances and conditions mentioned in message
// and evaluates the topic vocabularies against it.
func (e *EntityExtractor) Extract(message string) Entities {
	text := FoldText(message)

	return Entities{
		Substances: mentioned(text, e.kb.SubstanceNames()),
		Conditions: mentioned(text, e.kb.ConditionNames()),
		Flags:      DetectTopics(text),
		Tokens:     Tokenize(message),
	}
}

// DetectTopics evaluates the six topic vocabularies against folded text.
func DetectTopics(text string) models.TopicFlags {
	return models.TopicFlags{
		Stock:       stockPattern.MatchString(text),
		Customer:    customerPattern.MatchString(text),
		Sales:       salesPattern.MatchString(text),
		Interaction: interactionPattern.MatchString(text),
		Medical:     medicalPattern.MatchString(text),
		Greeting:    greetingPattern.MatchString(text),
	}
}

// CandidatePair pulls two free-form substance names out of "between X and Y"
// or "X with Y". It returns nil when neither template yields two usable words.
func (e *EntityExtractor) CandidatePair(message string) []string {
	text := FoldText(message)

	for _, pattern := range []*regexp.Regexp{betweenPattern, withPattern} {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		first, second := m[1], m[2]
		if usableCandidate(first) && usableCandidate(second) && first != second {
			return []string{first, second}
		}
	}
	return nil
}

func usableCandidate(word string) bool {
	if len(word) < 3 {
		return false
	}
	if _, stop := candidateStopwords[word]; stop {
		return false
	}
	// topic words such as "customers" or "stock" are never substances
	flags := DetectTopics(word)
	return !(flags.Stock || flags.Customer || flags.Sales || flags.Medical || flags.Greeting)
}

// mentioned returns the names occurring in text, ordered by first position.
func mentioned(text string, names []string) []string {
	type hit struct {
		name string
		pos  int
	}

	var hits []hit
	for _, name := range names {
		if pos := strings.Index(text, name); pos >= 0 {
			hits = append(hits, hit{name: name, pos: pos})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	out := make([]string, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.name)
	}
	return out
}
