package models

import (
	"errors"
	"fmt"
	"time"
)

// Category is one of the five fixed tech tree buckets.
type Category string

const (
	CategoryIndividual  Category = "individual"
	CategorySociety     Category = "society"
	CategoryEconomy     Category = "economy"
	CategoryGovernance  Category = "governance"
	CategoryGeopolitics Category = "geopolitics"
)

// AllCategories returns the five categories in their canonical display order.
func AllCategories() []Category {
	return []Category{
		CategoryIndividual,
		CategorySociety,
		CategoryEconomy,
		CategoryGovernance,
		CategoryGeopolitics,
	}
}

// Valid reports whether c is one of the five known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryIndividual, CategorySociety, CategoryEconomy, CategoryGovernance, CategoryGeopolitics:
		return true
	}
	return false
}

// Label returns the human-readable display label for the category.
func (c Category) Label() string {
	switch c {
	case CategoryIndividual:
		return "Individual"
	case CategorySociety:
		return "Society"
	case CategoryEconomy:
		return "Economy"
	case CategoryGovernance:
		return "Governance"
	case CategoryGeopolitics:
		return "Geopolitics"
	}
	return string(c)
}

// YearMonth identifies a calendar month with a zero-based month number.
type YearMonth struct {
	Year  int `json:"year"`
	Month int `json:"month"` // zero-based
}

// Index returns the linear month index year*12 + month, used for all
// temporal comparisons between months.
func (ym YearMonth) Index() int {
	return ym.Year*12 + ym.Month
}

// MonthIndex returns the linear index for an arbitrary (year, month) pair.
func MonthIndex(year, month int) int {
	return year*12 + month
}

// TechTreeNode is an immutable catalog entry: a tracked technology with an
// inclusive activation window, optional prerequisite nodes, observable
// indicator strings, and life-area tags.
type TechTreeNode struct {
	ID          string    `json:"id"`
	Category    Category  `json:"category"`
	Subcategory string    `json:"subcategory"`
	Title       string    `json:"title"`
	WindowStart YearMonth `json:"window_start"`
	WindowEnd   YearMonth `json:"window_end"`
	DependsOn   []string  `json:"depends_on,omitempty"`
	Indicators  []string  `json:"indicators"`
	Tags        []string  `json:"tags"`
	Description string    `json:"description,omitempty"`
}

// Validate checks that all node fields are valid.
func (n *TechTreeNode) Validate() error {
	if n.ID == "" {
		return errors.New("node ID must not be empty")
	}
	if !n.Category.Valid() {
		return fmt.Errorf("unknown category %q", n.Category)
	}
	if n.Title == "" {
		return errors.New("node title must not be empty")
	}
	if n.WindowStart.Month < 0 || n.WindowStart.Month > 11 {
		return fmt.Errorf("window start month %d out of range [0, 11]", n.WindowStart.Month)
	}
	if n.WindowEnd.Month < 0 || n.WindowEnd.Month > 11 {
		return fmt.Errorf("window end month %d out of range [0, 11]", n.WindowEnd.Month)
	}
	if n.WindowEnd.Index() < n.WindowStart.Index() {
		return errors.New("window end must not precede window start")
	}
	return nil
}

// ActiveIn reports whether the node's inclusive window contains (year, month).
func (n *TechTreeNode) ActiveIn(year, month int) bool {
	idx := MonthIndex(year, month)
	return idx >= n.WindowStart.Index() && idx <= n.WindowEnd.Index()
}

// StartedBy reports whether the node's window start is on or before
// (year, month), regardless of whether the window has since ended.
func (n *TechTreeNode) StartedBy(year, month int) bool {
	return n.WindowStart.Index() <= MonthIndex(year, month)
}

// TechTreeStatus is one of the seven adoption stages.
type TechTreeStatus string

const (
	StatusNotStarted    TechTreeStatus = "not-started"
	StatusRAndD         TechTreeStatus = "r-and-d"
	StatusPilot         TechTreeStatus = "pilot"
	StatusEarlyAdopters TechTreeStatus = "early-adopters"
	StatusMassMarket    TechTreeStatus = "mass-market"
	StatusUbiquitous    TechTreeStatus = "ubiquitous"
	StatusRegulated     TechTreeStatus = "regulated"
)

// AllStatuses returns the seven adoption stages in progression order.
func AllStatuses() []TechTreeStatus {
	return []TechTreeStatus{
		StatusNotStarted,
		StatusRAndD,
		StatusPilot,
		StatusEarlyAdopters,
		StatusMassMarket,
		StatusUbiquitous,
		StatusRegulated,
	}
}

// Valid reports whether s is one of the seven known statuses.
func (s TechTreeStatus) Valid() bool {
	switch s {
	case StatusNotStarted, StatusRAndD, StatusPilot, StatusEarlyAdopters, StatusMassMarket, StatusUbiquitous, StatusRegulated:
		return true
	}
	return false
}

// Label returns the human-readable display label for the status.
func (s TechTreeStatus) Label() string {
	switch s {
	case StatusNotStarted:
		return "Not Started"
	case StatusRAndD:
		return "R&D"
	case StatusPilot:
		return "Pilot"
	case StatusEarlyAdopters:
		return "Early Adopters"
	case StatusMassMarket:
		return "Mass Market"
	case StatusUbiquitous:
		return "Ubiquitous"
	case StatusRegulated:
		return "Regulated"
	}
	return string(s)
}

// TechTreeState is one fact record in a node's adoption history: the status,
// the month from which it is asserted to hold (absent for floor records,
// which apply from the beginning of time), and an update timestamp used only
// for tie-breaking between records effective at the same month.
//
// States form an append-style log: multiple records may exist per node, and
// records are never deleted, only dominated by newer records for the same
// effective slot.
type TechTreeState struct {
	NodeID         string         `json:"node_id"`
	Status         TechTreeStatus `json:"status"`
	EffectiveYear  *int           `json:"effective_year,omitempty"`
	EffectiveMonth *int           `json:"effective_month,omitempty"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// Validate checks that all state fields are valid.
func (s *TechTreeState) Validate() error {
	if s.NodeID == "" {
		return errors.New("state node ID must not be empty")
	}
	if !s.Status.Valid() {
		return fmt.Errorf("unknown status %q", s.Status)
	}
	if s.EffectiveMonth != nil && (*s.EffectiveMonth < 0 || *s.EffectiveMonth > 11) {
		return fmt.Errorf("effective month %d out of range [0, 11]", *s.EffectiveMonth)
	}
	return nil
}

// EffectiveIndex returns the linear month index of the effective date and
// true, or zero and false for floor records (either component absent).
func (s *TechTreeState) EffectiveIndex() (int, bool) {
	if s.EffectiveYear == nil || s.EffectiveMonth == nil {
		return 0, false
	}
	return MonthIndex(*s.EffectiveYear, *s.EffectiveMonth), true
}

// MergeKey returns the deduplication key nodeID-year-month. An absent year or
// month is rendered as the sentinel "all" so floor records merge with each
// other rather than with dated records.
func (s *TechTreeState) MergeKey() string {
	year := "all"
	if s.EffectiveYear != nil {
		year = fmt.Sprintf("%d", *s.EffectiveYear)
	}
	month := "all"
	if s.EffectiveMonth != nil {
		month = fmt.Sprintf("%d", *s.EffectiveMonth)
	}
	return s.NodeID + "-" + year + "-" + month
}
