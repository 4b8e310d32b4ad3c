// Package narrative turns a month's technology and prediction picture into a
// short "lived experience" story: what daily life feels like for an average
// person once the breakthroughs the user has marked are underway.
package narrative

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"rehoboam/internal/models"
	"rehoboam/internal/state"
)

// fallbackStatus is assumed for nodes without any adoption record when
// building narrative context.
const fallbackStatus = models.StatusPilot

// Context is the assembled input for one month's narrative.
type Context struct {
	Year  int
	Month int

	MonthLabel string

	// ActiveNodes are the cumulative nodes whose adoption has moved past
	// early research, with their resolved statuses in lockstep.
	ActiveNodes    []models.TechTreeNode
	ActiveStatuses []models.TechTreeStatus

	StatusBreakdown map[models.TechTreeStatus]int
	TopImpacts      []string
	Predictions     []models.Prediction
}

// BuildContext assembles narrative input for (year, month) from the
// cumulative node set, the user's adoption history, and the month's
// predictions. Nodes still at not-started or r-and-d do not shape daily life
// yet and are excluded.
func BuildContext(year, month int, nodes []models.TechTreeNode, states []models.TechTreeState, monthData models.MonthData) Context {
	ctx := Context{
		Year:            year,
		Month:           month,
		MonthLabel:      MonthLabel(year, month),
		StatusBreakdown: make(map[models.TechTreeStatus]int),
	}

	tagCounts := make(map[string]int)
	for _, n := range nodes {
		status := state.NodeStatusForDate(states, n.ID, year, month, fallbackStatus)
		if status == models.StatusNotStarted || status == models.StatusRAndD {
			continue
		}
		ctx.ActiveNodes = append(ctx.ActiveNodes, n)
		ctx.ActiveStatuses = append(ctx.ActiveStatuses, status)
		ctx.StatusBreakdown[status]++
		for _, tag := range n.Tags {
			tagCounts[tag]++
		}
	}

	ctx.TopImpacts = topTags(tagCounts, 10)

	predictions := monthData.Predictions
	if len(predictions) > 3 {
		predictions = predictions[:3]
	}
	ctx.Predictions = predictions

	return ctx
}

// MonthLabel formats a zero-based month as e.g. "March 2027".
func MonthLabel(year, month int) string {
	return time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
}

func topTags(counts map[string]int, limit int) []string {
	type tagCount struct {
		tag   string
		count int
	}
	sorted := make([]tagCount, 0, len(counts))
	for tag, count := range counts {
		sorted = append(sorted, tagCount{tag, count})
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].count != sorted[j].count {
			return sorted[i].count > sorted[j].count
		}
		return sorted[i].tag < sorted[j].tag
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	out := make([]string, 0, len(sorted))
	for _, tc := range sorted {
		out = append(out, tc.tag)
	}
	return out
}

func (c Context) activeNodesList() string {
	var b strings.Builder
	limit := len(c.ActiveNodes)
	if limit > 20 {
		limit = 20
	}
	for i := 0; i < limit; i++ {
		fmt.Fprintf(&b, "- %s (%s)\n", c.ActiveNodes[i].Title, c.ActiveStatuses[i])
	}
	return strings.TrimRight(b.String(), "\n")
}

func (c Context) statusList() string {
	var lines []string
	for _, status := range models.AllStatuses() {
		if count := c.StatusBreakdown[status]; count > 0 {
			lines = append(lines, fmt.Sprintf("- %s: %d breakthroughs", status, count))
		}
	}
	return strings.Join(lines, "\n")
}

func (c Context) predictionsList() string {
	var lines []string
	for _, p := range c.Predictions {
		lines = append(lines, "- "+p.Title)
	}
	return strings.Join(lines, "\n")
}

// Prompt renders the generation prompt for this context.
func (c Context) Prompt() string {
	return fmt.Sprintf(`You are a futurist writing a vivid "lived experience" narrative for someone living in %s.

Based on the following technological breakthroughs that have occurred or are underway, write a compelling 3-4 paragraph narrative describing what daily life is like for an average person in a developed country.

Active Technology Nodes (%d total):
%s

Status Breakdown:
%s

Most Affected Life Areas:
%s

Key Predictions for this Month:
%s

Write in second person ("you wake up...", "your morning starts...") and make it concrete and sensory. Focus on:
1. How the morning routine has changed
2. How work/productivity has evolved
3. How social life and relationships have shifted
4. What feels normal vs what still feels novel

Be specific about technologies in use but keep the tone human and relatable. Aim for 300-400 words.`,
		c.MonthLabel,
		len(c.ActiveNodes),
		c.activeNodesList(),
		c.statusList(),
		strings.Join(c.TopImpacts, ", "),
		c.predictionsList(),
	)
}

// FallbackSummary synthesizes a deterministic narrative from the context
// alone, used whenever generation is unavailable or fails.
func (c Context) FallbackSummary() string {
	notableTech := "subtle background systems"
	if len(c.ActiveNodes) > 0 {
		limit := len(c.ActiveNodes)
		if limit > 3 {
			limit = 3
		}
		titles := make([]string, 0, limit)
		for i := 0; i < limit; i++ {
			titles = append(titles, c.ActiveNodes[i].Title)
		}
		notableTech = strings.Join(titles, ", ")
	}

	focusAreas := "everyday routines and work patterns"
	if len(c.TopImpacts) > 0 {
		focusAreas = strings.Join(c.TopImpacts, ", ")
	}

	predictionLine := "Headlines are a mix of incremental improvements and cautious optimism."
	headlinePredictions := "incremental signals rather than headline breakthroughs"
	if len(c.Predictions) > 0 {
		titles := make([]string, 0, len(c.Predictions))
		for _, p := range c.Predictions {
			titles = append(titles, p.Title)
		}
		predictionLine = fmt.Sprintf("The month's headlines orbit predictions like %s.", strings.Join(titles, ", "))
		headlinePredictions = c.predictionsList()
	}

	techLine := "Even without a single headline technology, your devices quietly coordinate the day in ways that would have felt uncanny a few years ago."
	if len(c.ActiveNodes) > 0 {
		techLine = fmt.Sprintf("Technologies such as %s quietly hum in the background, stitched together by steady deployment teams.", notableTech)
	}

	paragraphs := []string{
		fmt.Sprintf("It's %s, and your day is quietly shaped by %s. You wake to a home that already knows your schedule, adjusts the lights, and queues up a breakfast that matches your health preferences. Commuting is less stressful as automation handles most logistics, letting you reclaim mental space for reflection.", c.MonthLabel, notableTech),
		fmt.Sprintf("Work has become a conversation with systems rather than a grind through interfaces. Agents prepare briefs and drafts, leaving you to edit and steer. Collaboration happens asynchronously with teammates and their tools, and the biggest change is how quickly ideas turn into tested pilots. The focus areas that feel most different are %s.", focusAreas),
		fmt.Sprintf("Social life keeps pace with the technology curve. Some interactions feel hyper-mediated, but there is still novelty in the way gatherings blend physical and digital presence. %s %s The month feels like a waypoint rather than a destination.", predictionLine, techLine),
		fmt.Sprintf("Headlines for the month point toward %s, reminding you that the present is a moving target.", headlinePredictions),
	}
	return strings.Join(paragraphs, "\n\n")
}
