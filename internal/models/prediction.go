// Package models defines the core domain entities for the rehoboam application.
// These models represent dated future predictions, month-level timeline
// aggregates, technology tree nodes with activation windows, and the adoption
// status records tracked against them. All models include built-in validation
// to ensure data integrity throughout the application.
//
// Terminology:
//   - Domain: one of six fixed forecasting categories a prediction belongs to.
//   - Node: a tracked technology/trend with an activation time window.
//   - Effective date: the (year, month) from which a status record holds true.
package models

import (
	"errors"
	"fmt"
	"strings"
)

// Domain is one of the six fixed forecasting categories.
type Domain string

const (
	DomainIndividual   Domain = "individual"
	DomainSocial       Domain = "social"
	DomainTech         Domain = "tech"
	DomainEconomic     Domain = "economic"
	DomainGeopolitical Domain = "geopolitical"
	DomainGovernance   Domain = "governance"
)

// DomainCount is the fixed size of the domain set. The unfiltered probability
// average divides by this constant rather than the live map size.
const DomainCount = 6

// AllDomains returns the six domains in their canonical display order.
func AllDomains() []Domain {
	return []Domain{
		DomainIndividual,
		DomainSocial,
		DomainTech,
		DomainEconomic,
		DomainGeopolitical,
		DomainGovernance,
	}
}

// Valid reports whether d is one of the six known domains.
func (d Domain) Valid() bool {
	switch d {
	case DomainIndividual, DomainSocial, DomainTech, DomainEconomic, DomainGeopolitical, DomainGovernance:
		return true
	}
	return false
}

// Label returns the human-readable display label for the domain.
func (d Domain) Label() string {
	switch d {
	case DomainIndividual:
		return "Individual"
	case DomainSocial:
		return "Social"
	case DomainTech:
		return "Technology"
	case DomainEconomic:
		return "Economic"
	case DomainGeopolitical:
		return "Geopolitical"
	case DomainGovernance:
		return "Governance"
	}
	return string(d)
}

// Impact is the qualitative impact tier of a prediction.
type Impact string

const (
	ImpactLow    Impact = "low"
	ImpactMedium Impact = "medium"
	ImpactHigh   Impact = "high"
)

// Valid reports whether i is a known impact tier.
func (i Impact) Valid() bool {
	switch i {
	case ImpactLow, ImpactMedium, ImpactHigh:
		return true
	}
	return false
}

// PredictionSource names a source backing a prediction, with an optional URL
// and an optional confidence in [0, 1].
type PredictionSource struct {
	Name       string  `json:"name"`
	URL        string  `json:"url,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
}

// Prediction is a single dated forecast event. Predictions are defined at
// build time in the catalog and never mutated at runtime. Months are
// zero-based (January = 0).
type Prediction struct {
	ID          string             `json:"id"`
	Domain      Domain             `json:"domain"`
	Year        int                `json:"year"`
	Month       int                `json:"month"` // zero-based
	Probability float64            `json:"probability"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Impact      Impact             `json:"impact"`
	Sources     []PredictionSource `json:"sources"`
}

// Validate checks that all prediction fields are valid.
func (p *Prediction) Validate() error {
	if p.ID == "" {
		return errors.New("prediction ID must not be empty")
	}
	if !p.Domain.Valid() {
		return fmt.Errorf("unknown domain %q", p.Domain)
	}
	if p.Month < 0 || p.Month > 11 {
		return fmt.Errorf("month %d out of range [0, 11]", p.Month)
	}
	if p.Probability < 0.0 || p.Probability > 1.0 {
		return errors.New("probability must be between 0.0 and 1.0")
	}
	if p.Title == "" {
		return errors.New("prediction title must not be empty")
	}
	if !p.Impact.Valid() {
		return fmt.Errorf("unknown impact tier %q", p.Impact)
	}
	for _, src := range p.Sources {
		if src.Name == "" {
			return errors.New("source name must not be empty")
		}
		if src.Confidence < 0.0 || src.Confidence > 1.0 {
			return errors.New("source confidence must be between 0.0 and 1.0")
		}
	}
	return nil
}

// ContentKey returns the deduplication key formed from the trimmed title,
// year, month, and domain. Two predictions sharing a content key are
// considered copy-paste duplicates regardless of their IDs.
func (p *Prediction) ContentKey() string {
	return fmt.Sprintf("%s|%d|%d|%s", strings.TrimSpace(p.Title), p.Year, p.Month, p.Domain)
}

// MonthData is a derived aggregate for one (year, month) pair: a per-domain
// probability map (0.5 neutral prior for domains with no prediction that
// month) plus the predictions that match the month exactly. Recomputed on
// demand, never persisted.
type MonthData struct {
	Year          int                `json:"year"`
	Month         int                `json:"month"`
	Probabilities map[Domain]float64 `json:"probabilities"`
	Predictions   []Prediction       `json:"predictions"`
}
