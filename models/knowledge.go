package models

import "time"

// InteractionProfile describes a substance tracked by the knowledge base.
type InteractionProfile struct {
	Name              string   `json:"name"`
	Interactions      []string `json:"interactions"`
	Warning           string   `json:"warning"`
	Contraindications []string `json:"contraindications"`
	SideEffects       []string `json:"sideEffects"`
	Dosage            string   `json:"dosage"`
	Category          string   `json:"category"`
	Pregnancy         string   `json:"pregnancy"`
	Breastfeeding     string   `json:"breastfeeding"`
}

// ConditionProfile describes a medical condition tracked by the knowledge base.
type ConditionProfile struct {
	Name          string   `json:"name"`
	Symptoms      []string `json:"symptoms"`
	Treatments    []string `json:"treatments"`
	Complications []string `json:"complications"`
	Prevention    []string `json:"prevention"`
}

type LookupCategory string

const (
	CategoryInteractions      LookupCategory = "interactions"
	CategorySideEffects       LookupCategory = "sideEffects"
	CategoryDosage            LookupCategory = "dosage"
	CategoryWarnings          LookupCategory = "warnings"
	CategoryContraindications LookupCategory = "contraindications"
	CategoryPregnancy         LookupCategory = "pregnancy"
)

// ExternalLookupResult is what one medical reference site yielded for a term.
type ExternalLookupResult struct {
	Source      string                      `json:"source"`
	Sentences   []string                    `json:"sentences"`
	Categories  map[LookupCategory][]string `json:"categories"`
	RetrievedAt time.Time                   `json:"retrievedAt"`
}
