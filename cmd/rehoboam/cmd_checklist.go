package main

import (
	"flag"
	"fmt"
	"time"

	"rehoboam/internal/models"
	"rehoboam/internal/predictions"
	"rehoboam/internal/state"
	"rehoboam/internal/techtree"
)

// currentYearMonth returns today's date in zero-based month form.
func currentYearMonth() (int, int) {
	now := time.Now()
	return now.Year(), int(now.Month()) - 1
}

func runChecklist(args []string) error {
	fs := flag.NewFlagSet("checklist", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to configuration file")
	year := fs.Int("year", 0, "Year to browse (defaults to the current year)")
	month := fs.Int("month", -1, "Zero-based month to browse (defaults to the current month)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	nowYear, nowMonth := currentYearMonth()
	if *year == 0 {
		*year = nowYear
	}
	if *month < 0 {
		*month = nowMonth
	}
	if *month > 11 {
		return fmt.Errorf("month %d out of range [0, 11]", *month)
	}

	a, err := newApp(*configPath)
	if err != nil {
		return err
	}

	nodes := techtree.CumulativeNodes(*year, *month)
	states := a.states.States()

	stats := state.Completion(states, nodes, *year, *month)
	fmt.Printf("Tech adoption through %s %d: %d/%d explored (%d%%)\n",
		predictions.MonthName(*month), *year, stats.Completed, stats.Total, stats.Percentage)

	breakdown := state.StatusBreakdown(states, nodes, *year, *month)
	for _, status := range models.AllStatuses() {
		if count := breakdown[status]; count > 0 {
			fmt.Printf("  %-16s %d\n", status, count)
		}
	}
	fmt.Println()

	grouped := techtree.GroupByCategory(nodes)
	for _, category := range models.AllCategories() {
		bucket := grouped[category]
		if len(bucket) == 0 {
			continue
		}
		fmt.Printf("%s\n", category.Label())
		for _, n := range bucket {
			status := a.states.StatusFor(n.ID, *year, *month, models.StatusNotStarted)
			fmt.Printf("  %-12s %-16s %s\n", n.ID, status, n.Title)
		}
		fmt.Println()
	}
	return nil
}
