package models

import (
	"errors"
	"fmt"
	"time"
)

// Goal is a user-created target pinned to a calendar month, overlaid on the
// timeline next to the prediction catalog. Goals are persisted locally and
// mutated only by toggling completion or deleting.
type Goal struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	TargetYear  int       `json:"target_year"`
	TargetMonth int       `json:"target_month"` // zero-based
	Domains     []Domain  `json:"domains"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
}

// Validate checks that all goal fields are valid.
func (g *Goal) Validate() error {
	if g.ID == "" {
		return errors.New("goal ID must not be empty")
	}
	if g.Title == "" {
		return errors.New("goal title must not be empty")
	}
	if g.TargetMonth < 0 || g.TargetMonth > 11 {
		return fmt.Errorf("target month %d out of range [0, 11]", g.TargetMonth)
	}
	for _, d := range g.Domains {
		if !d.Valid() {
			return fmt.Errorf("unknown domain %q", d)
		}
	}
	return nil
}
