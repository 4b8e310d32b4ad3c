// Command rehoboam is a terminal browser for a future-predictions timeline:
// a month-by-month prediction catalog, a technology adoption checklist with
// time-aware status history, personal goals, and an optional hosted sync
// backend.
package main

import (
	"fmt"
	"os"

	"rehoboam/internal/config"
	"rehoboam/internal/goals"
	"rehoboam/internal/logger"
	"rehoboam/internal/state"
	"rehoboam/internal/storage"
)

const usage = `Usage: rehoboam <command> [flags]

Commands:
  timeline    Show the month-by-month prediction timeline
  checklist   Show the tech adoption checklist for a month
  set         Record an adoption status for a tech node
  sync        Push pending records and pull the remote history
  goals       Manage personal goals (list, add, toggle, delete)
  narrative   Generate a lived experience narrative for a month

Run 'rehoboam <command> -h' for command flags.
`

// app bundles the shared dependencies every command needs.
type app struct {
	cfg    *config.Config
	kv     *storage.KV
	states *state.Store
	goals  *goals.Store
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "timeline":
		err = runTimeline(args)
	case "checklist":
		err = runChecklist(args)
	case "set":
		err = runSet(args)
	case "sync":
		err = runSync(args)
	case "goals":
		err = runGoals(args)
	case "narrative":
		err = runNarrative(args)
	case "-h", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}

// newApp loads configuration and opens the shared stores. configPath may be
// empty, in which case defaults and REHOBOAM_* environment variables apply.
func newApp(configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.Format)

	kv, err := storage.Open(cfg.Storage.FilePath, 0644, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	states, err := state.NewStore(kv)
	if err != nil {
		return nil, err
	}
	goalStore, err := goals.NewStore(kv)
	if err != nil {
		return nil, err
	}

	return &app{cfg: cfg, kv: kv, states: states, goals: goalStore}, nil
}
