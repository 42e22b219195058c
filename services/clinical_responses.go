package services

import (
	"context"
	"fmt"
	"strings"

	"pharmacy-chatbot-backend/models"
)

const (
	lookupInteractionSentences = 3
	lookupSideEffectSentences  = 2
	lookupMedicalSources       = 3
	lookupMedicalSentences     = 3
	maxMedicalTerms            = 3
	minMedicalTermLength       = 4
)

type comboVerdict struct {
	verdict string
	note    string
}

// exampleCombinations covers a few common pairs that are not in the
// knowledge base. Keys are sorted lowercase names.
var exampleCombinations = map[[2]string]comboVerdict{
	{"cialis", "viagra"}: {
		verdict: "DANGEROUS",
		note:    "Both are PDE5 inhibitors. Taking them together can cause a severe drop in blood pressure.",
	},
	{"sertraline", "tramadol"}: {
		verdict: "UNSAFE",
		note:    "Together they raise the risk of serotonin syndrome and seizures.",
	},
	{"ibuprofen", "lithium"}: {
		verdict: "UNSAFE",
		note:    "Ibuprofen can push lithium levels into the toxic range.",
	},
	{"cetirizine", "paracetamol"}: {
		verdict: "SAFE",
		note:    "No interaction is expected; they are often taken together for cold symptoms.",
	},
}

// medicalStopwords are question words that never make a useful search term.
var medicalStopwords = map[string]struct{}{
	"what": {}, "about": {}, "tell": {}, "with": {}, "have": {}, "does": {}, "from": {},
	"that": {}, "this": {}, "there": {}, "which": {}, "when": {}, "symptoms": {},
	"symptom": {}, "treatment": {}, "treatments": {}, "treat": {}, "signs": {},
	"causes": {}, "disease": {}, "diseases": {}, "condition": {}, "conditions": {},
	"medicine": {}, "medicines": {}, "please": {}, "should": {}, "could": {},
	"would": {}, "feel": {}, "feeling": {}, "know": {}, "information": {}, "side": {},
	"effects": {}, "dosage": {}, "cure": {}, "illness": {}, "sick": {},
}

func pairKey(a, b string) [2]string {
	if b < a {
		a, b = b, a
	}
	return [2]string{a, b}
}

func (s *ChatbotService) respondInteraction(ctx context.Context, analysis *models.ClassificationResult) reply {
	names := analysis.Substances
	if len(names) < 2 {
		return textReply("Please name at least two medicines to check for interactions.")
	}

	known := 0
	for _, name := range names {
		if _, ok := s.kb.Substance(name); ok {
			known++
		}
	}
	if known >= 2 {
		return textReply(s.describeInteractions(ctx, names))
	}
	return textReply(s.describeUnregistered(ctx, names[:2]))
}

func (s *ChatbotService) describeInteractions(ctx context.Context, names []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "💊 Interaction check: %s\n\n", strings.Join(names, ", "))

	findings := findInteractions(s.kb, names)
	if len(findings) == 0 {
		b.WriteString("✅ No known harmful interaction was found between these medicines.\n")
	} else {
		b.WriteString("⚠️ Interactions found:\n")
		for _, f := range findings {
			fmt.Fprintf(&b, "• %s + %s: %s\n", titled(f.Medication1), titled(f.Medication2), f.Warning)
		}
	}

	for _, name := range names {
		b.WriteString("\n")
		s.writeSubstanceDetails(ctx, &b, name)
	}

	b.WriteString("\n" + medicalDisclaimer)
	return b.String()
}

// describeUnregistered handles pairs where at most one side is in the
// knowledge base.
func (s *ChatbotService) describeUnregistered(ctx context.Context, pair []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "💊 Interaction check: %s and %s\n\n", pair[0], pair[1])

	for _, name := range pair {
		s.writeSubstanceDetails(ctx, &b, name)
		b.WriteString("\n")
	}

	findings := findInteractions(s.kb, pair)
	if len(findings) > 0 {
		fmt.Fprintf(&b, "⚠️ %s\n", findings[0].Warning)
	} else if combo, ok := exampleCombinations[pairKey(pair[0], pair[1])]; ok {
		fmt.Fprintf(&b, "Verdict: %s. %s\n", combo.verdict, combo.note)
	} else {
		fmt.Fprintf(&b, "No known harmful interaction between %s and %s was found in our records. "+
			"Monitor for side effects and ask your pharmacist if anything feels wrong.\n", pair[0], pair[1])
	}

	b.WriteString("\n" + medicalDisclaimer)
	return b.String()
}

// writeSubstanceDetails prints the knowledge base profile for name, or a
// summary of external references when the name is not registered.
func (s *ChatbotService) writeSubstanceDetails(ctx context.Context, b *strings.Builder, name string) {
	if p, ok := s.kb.Substance(name); ok {
		fmt.Fprintf(b, "%s (%s)\n", titled(p.Name), p.Category)
		fmt.Fprintf(b, "  Dosage: %s\n", p.Dosage)
		fmt.Fprintf(b, "  Side effects: %s\n", strings.Join(p.SideEffects, ", "))
		fmt.Fprintf(b, "  Contraindications: %s\n", strings.Join(p.Contraindications, ", "))
		return
	}

	results := s.lookup.Search(ctx, name)
	interactions := collectSentences(results, models.CategoryInteractions, lookupInteractionSentences)
	sideEffects := collectSentences(results, models.CategorySideEffects, lookupSideEffectSentences)

	if len(interactions) == 0 && len(sideEffects) == 0 {
		fmt.Fprintf(b, "No information available for %s. Please consult your healthcare provider.\n", name)
		return
	}

	fmt.Fprintf(b, "%s (external references)\n", titled(name))
	if len(interactions) > 0 {
		b.WriteString("  Interactions:\n")
		for _, sentence := range interactions {
			fmt.Fprintf(b, "  • %s\n", sentence)
		}
	}
	if len(sideEffects) > 0 {
		b.WriteString("  Side effects:\n")
		for _, sentence := range sideEffects {
			fmt.Fprintf(b, "  • %s\n", sentence)
		}
	}
}

// collectSentences gathers up to limit distinct sentences of one category
// across results, in source order.
func collectSentences(results []models.ExternalLookupResult, category models.LookupCategory, limit int) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, r := range results {
		for _, sentence := range r.Categories[category] {
			if len(out) == limit {
				return out
			}
			if _, dup := seen[sentence]; dup {
				continue
			}
			seen[sentence] = struct{}{}
			out = append(out, sentence)
		}
	}
	return out
}

func (s *ChatbotService) respondMedical(ctx context.Context, analysis *models.ClassificationResult) reply {
	var b strings.Builder

	if len(analysis.Conditions) > 0 {
		for _, name := range analysis.Conditions {
			c, ok := s.kb.Condition(name)
			if !ok {
				continue
			}
			fmt.Fprintf(&b, "🩺 %s\n", titled(c.Name))
			fmt.Fprintf(&b, "Symptoms: %s\n", strings.Join(c.Symptoms, ", "))
			fmt.Fprintf(&b, "Treatments: %s\n", strings.Join(c.Treatments, ", "))
			fmt.Fprintf(&b, "Complications: %s\n", strings.Join(c.Complications, ", "))
			fmt.Fprintf(&b, "Prevention: %s\n\n", strings.Join(c.Prevention, ", "))
		}
		b.WriteString(medicalDisclaimer)
		return textReply(b.String())
	}

	var profiles []models.InteractionProfile
	for _, name := range analysis.Substances {
		if p, ok := s.kb.Substance(name); ok {
			profiles = append(profiles, p)
		}
	}
	if len(profiles) > 0 {
		for _, p := range profiles {
			fmt.Fprintf(&b, "💊 %s (%s)\n", titled(p.Name), p.Category)
			fmt.Fprintf(&b, "Dosage: %s\n", p.Dosage)
			fmt.Fprintf(&b, "Side effects: %s\n", strings.Join(p.SideEffects, ", "))
			fmt.Fprintf(&b, "Contraindications: %s\n", strings.Join(p.Contraindications, ", "))
			fmt.Fprintf(&b, "Pregnancy: %s\n", p.Pregnancy)
			fmt.Fprintf(&b, "Breastfeeding: %s\n\n", p.Breastfeeding)
		}
		b.WriteString(medicalDisclaimer)
		return textReply(b.String())
	}

	if terms := medicalTerms(analysis.Tokens); analysis.Flags.Medical && len(terms) > 0 {
		query := strings.Join(terms, " ")
		results := s.lookup.Search(ctx, query)
		if len(results) > 0 {
			fmt.Fprintf(&b, "📚 Here's what I found about \"%s\":\n", query)
			for i, r := range results {
				if i == lookupMedicalSources {
					break
				}
				fmt.Fprintf(&b, "\nFrom %s:\n", r.Source)
				for j, sentence := range r.Sentences {
					if j == lookupMedicalSentences {
						break
					}
					fmt.Fprintf(&b, "• %s\n", sentence)
				}
			}
			b.WriteString("\n" + medicalDisclaimer)
			return textReply(b.String())
		}
	}

	fmt.Fprintf(&b, "I have limited information about that. I can tell you about: %s.\n\n",
		strings.Join(s.kb.ConditionNames(), ", "))
	b.WriteString("For anything else, please consult your healthcare provider.")
	return textReply(b.String())
}

// medicalTerms picks the longer, non-question words of a message as search
// terms.
func medicalTerms(tokens []string) []string {
	var terms []string
	seen := make(map[string]struct{})
	for _, tok := range tokens {
		if len(tok) < minMedicalTermLength {
			continue
		}
		if _, stop := medicalStopwords[tok]; stop {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		terms = append(terms, tok)
		if len(terms) == maxMedicalTerms {
			break
		}
	}
	return terms
}
