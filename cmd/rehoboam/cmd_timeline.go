package main

import (
	"flag"
	"fmt"
	"strings"

	"rehoboam/internal/models"
	"rehoboam/internal/predictions"
)

func runTimeline(args []string) error {
	fs := flag.NewFlagSet("timeline", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to configuration file")
	startYear := fs.Int("start", 0, "First year to show (defaults to the catalog start)")
	endYear := fs.Int("end", 0, "Last year to show (defaults to the catalog end)")
	domainsFlag := fs.String("domains", "", "Comma-separated domain filter for the average column")
	verbose := fs.Bool("predictions", false, "List each month's predictions")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := newApp(*configPath)
	if err != nil {
		return err
	}

	catalogMin, catalogMax := predictions.YearRange()
	if *startYear == 0 {
		*startYear = catalogMin
	}
	if *endYear == 0 {
		*endYear = catalogMax
	}

	activeDomains, err := parseDomains(*domainsFlag)
	if err != nil {
		return err
	}

	data := predictions.GenerateTimelineData(*startYear, *endYear)
	if len(data) == 0 {
		fmt.Printf("No months in range %d-%d\n", *startYear, *endYear)
		return nil
	}

	for _, md := range data {
		avg := predictions.AverageProbability(md.Probabilities, activeDomains)
		marker := " "
		if len(md.Predictions) > 0 {
			marker = "*"
		}
		fmt.Printf("%s %s %d  avg %.2f  predictions %d", marker, predictions.MonthName(md.Month), md.Year, avg, len(md.Predictions))

		goalsForMonth := a.goals.ForMonth(md.Year, md.Month)
		if len(goalsForMonth) > 0 {
			fmt.Printf("  goals %d", len(goalsForMonth))
		}
		fmt.Println()

		if *verbose {
			for _, p := range md.Predictions {
				fmt.Printf("    [%s] %.2f %s\n", p.Domain, p.Probability, p.Title)
			}
			for _, g := range goalsForMonth {
				check := " "
				if g.Completed {
					check = "x"
				}
				fmt.Printf("    [%s] goal: %s\n", check, g.Title)
			}
		}
	}
	return nil
}

func parseDomains(raw string) ([]models.Domain, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var out []models.Domain
	for _, part := range strings.Split(raw, ",") {
		d := models.Domain(strings.TrimSpace(part))
		if !d.Valid() {
			return nil, fmt.Errorf("unknown domain %q", part)
		}
		out = append(out, d)
	}
	return out, nil
}
