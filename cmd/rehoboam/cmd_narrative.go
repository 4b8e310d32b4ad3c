package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"rehoboam/internal/logger"
	"rehoboam/internal/models"
	"rehoboam/internal/narrative"
	"rehoboam/internal/predictions"
	"rehoboam/internal/techtree"
)

func runNarrative(args []string) error {
	fs := flag.NewFlagSet("narrative", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to configuration file")
	year := fs.Int("year", 0, "Year to narrate (defaults to the current year)")
	month := fs.Int("month", -1, "Zero-based month to narrate (defaults to the current month)")
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

	monthData := monthDataFor(*year, *month)
	narrativeCtx := narrative.BuildContext(*year, *month, techtree.CumulativeNodes(*year, *month), a.states.States(), monthData)

	generator := narrative.NewGenerator(a.cfg.Narrative.APIKey, a.cfg.Narrative.Model, a.cfg.Narrative.MaxTokens)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	text, err := generator.Generate(ctx, narrativeCtx)
	if err != nil {
		logger.Warn("Showing synthesized narrative: %v", err)
	}

	fmt.Printf("Lived experience, %s\n\n%s\n", narrativeCtx.MonthLabel, text)
	return nil
}

// monthDataFor extracts a single month from the generated timeline, falling
// back to an empty month outside the catalog range.
func monthDataFor(year, month int) models.MonthData {
	data := predictions.GenerateTimelineData(year, year)
	if month >= 0 && month < len(data) {
		return data[month]
	}
	return models.MonthData{Year: year, Month: month}
}
