package main

import (
	"flag"
	"fmt"
	"os"

	"rehoboam/internal/predictions"
)

const goalsUsage = `Usage: rehoboam goals <subcommand> [flags]

Subcommands:
  list     List all goals
  add      Add a goal (-title, -year, -month, [-desc] [-domains])
  toggle   Toggle a goal's completion (-id)
  delete   Delete a goal (-id)
`

func runGoals(args []string) error {
	if len(args) < 1 {
		fmt.Fprint(os.Stderr, goalsUsage)
		os.Exit(2)
	}

	switch args[0] {
	case "list":
		return runGoalsList(args[1:])
	case "add":
		return runGoalsAdd(args[1:])
	case "toggle":
		return runGoalsToggle(args[1:])
	case "delete":
		return runGoalsDelete(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown goals subcommand: %s\n\n", args[0])
		fmt.Fprint(os.Stderr, goalsUsage)
		os.Exit(2)
		return nil
	}
}

func runGoalsList(args []string) error {
	fs := flag.NewFlagSet("goals list", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to configuration file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := newApp(*configPath)
	if err != nil {
		return err
	}

	list := a.goals.List()
	if len(list) == 0 {
		fmt.Println("No goals yet")
		return nil
	}
	for _, g := range list {
		check := " "
		if g.Completed {
			check = "x"
		}
		fmt.Printf("[%s] %s %d  %s  (%s)\n", check, predictions.MonthName(g.TargetMonth), g.TargetYear, g.Title, g.ID)
	}
	return nil
}

func runGoalsAdd(args []string) error {
	fs := flag.NewFlagSet("goals add", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to configuration file")
	title := fs.String("title", "", "Goal title")
	desc := fs.String("desc", "", "Goal description")
	year := fs.Int("year", 0, "Target year")
	month := fs.Int("month", -1, "Zero-based target month")
	domainsFlag := fs.String("domains", "", "Comma-separated related domains")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *title == "" {
		return fmt.Errorf("-title is required")
	}
	if *year == 0 || *month < 0 {
		return fmt.Errorf("-year and -month are required")
	}
	domains, err := parseDomains(*domainsFlag)
	if err != nil {
		return err
	}

	a, err := newApp(*configPath)
	if err != nil {
		return err
	}

	goal, err := a.goals.Add(*title, *desc, *year, *month, domains)
	if err != nil {
		return err
	}
	fmt.Printf("Added goal %s for %s %d (%s)\n", goal.Title, predictions.MonthName(goal.TargetMonth), goal.TargetYear, goal.ID)
	return nil
}

func runGoalsToggle(args []string) error {
	fs := flag.NewFlagSet("goals toggle", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to configuration file")
	id := fs.String("id", "", "Goal id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("-id is required")
	}

	a, err := newApp(*configPath)
	if err != nil {
		return err
	}

	goal, err := a.goals.ToggleCompleted(*id)
	if err != nil {
		return err
	}
	stateLabel := "open"
	if goal.Completed {
		stateLabel = "completed"
	}
	fmt.Printf("Goal %s is now %s\n", goal.Title, stateLabel)
	return nil
}

func runGoalsDelete(args []string) error {
	fs := flag.NewFlagSet("goals delete", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to configuration file")
	id := fs.String("id", "", "Goal id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("-id is required")
	}

	a, err := newApp(*configPath)
	if err != nil {
		return err
	}

	if err := a.goals.Delete(*id); err != nil {
		return err
	}
	fmt.Println("Goal deleted")
	return nil
}
