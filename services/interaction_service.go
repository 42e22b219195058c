package services

import (
	"errors"
	"strings"

	"pharmacy-chatbot-backend/knowledge"
	"pharmacy-chatbot-backend/models"
)

var ErrTooFewMedications = errors.New("at least two medications are required")

type InteractionService struct {
	kb *knowledge.Base
}

func NewInteractionService(kb *knowledge.Base) *InteractionService {
	return &InteractionService{kb: kb}
}

// CheckDrugInteractions checks every unordered pair of medications against
// the knowledge base.
func (s *InteractionService) CheckDrugInteractions(medications []string) (*models.DrugInteractionReport, error) {
	names := normalizeNames(medications)
	if len(names) < 2 {
		return nil, ErrTooFewMedications
	}

	findings := findInteractions(s.kb, names)

	report := &models.DrugInteractionReport{
		Medications:     names,
		Interactions:    findings,
		Warnings:        []string{},
		HasInteractions: len(findings) > 0,
		Severity:        models.SeverityLow,
	}

	seen := make(map[string]struct{})
	for _, f := range findings {
		if _, dup := seen[f.Warning]; dup {
			continue
		}
		seen[f.Warning] = struct{}{}
		report.Warnings = append(report.Warnings, f.Warning)
	}
	if report.HasInteractions {
		report.Severity = models.SeverityHigh
	}
	return report, nil
}

// findInteractions walks the pairs i<j in input order. A pair matches when
// either profile lists the other; the first name's warning wins.
func findInteractions(kb *knowledge.Base, names []string) []models.InteractionFinding {
	findings := []models.InteractionFinding{}
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			a, b := names[i], names[j]
			if a == b {
				continue
			}
			warning, ok := kb.Interaction(a, b)
			if !ok {
				warning, ok = kb.Interaction(b, a)
			}
			if ok {
				findings = append(findings, models.InteractionFinding{
					Medication1: a,
					Medication2: b,
					Warning:     warning,
				})
			}
		}
	}
	return findings
}

func normalizeNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n != "" {
			out = append(out, n)
		}
	}
	return out
}
