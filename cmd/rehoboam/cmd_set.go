package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"rehoboam/internal/logger"
	"rehoboam/internal/models"
	"rehoboam/internal/notify"
	"rehoboam/internal/remote"
	"rehoboam/internal/techtree"
)

func runSet(args []string) error {
	fs := flag.NewFlagSet("set", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to configuration file")
	nodeID := fs.String("node", "", "Tech tree node id (e.g. IND-AI-01)")
	statusFlag := fs.String("status", "", "Adoption status (not-started, r-and-d, pilot, early-adopters, mass-market, ubiquitous, regulated)")
	year := fs.Int("year", 0, "Effective year (defaults to the current year)")
	month := fs.Int("month", -1, "Zero-based effective month (defaults to the current month)")
	push := fs.Bool("push", false, "Push the outbox to the sync backend right away")
	userID := fs.String("user", "", "Authenticated user id (defaults to the local instance identity)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *nodeID == "" {
		return fmt.Errorf("-node is required")
	}
	status := models.TechTreeStatus(*statusFlag)
	if !status.Valid() {
		return fmt.Errorf("unknown status %q", *statusFlag)
	}

	node, ok := techtree.NodeByID(*nodeID)
	if !ok {
		return fmt.Errorf("unknown node %q", *nodeID)
	}

	nowYear, nowMonth := currentYearMonth()
	if *year == 0 {
		*year = nowYear
	}
	if *month < 0 {
		*month = nowMonth
	}

	a, err := newApp(*configPath)
	if err != nil {
		return err
	}

	record, err := a.states.SetStatus(node.ID, status, *year, *month)
	if err != nil {
		return err
	}
	logger.Info("Recorded %s = %s effective %d-%02d", node.ID, status, *year, *month+1)
	fmt.Printf("%s: %s (effective %d-%02d)\n", node.Title, status.Label(), *year, *month+1)

	if *push && a.cfg.Sync.Enabled {
		pushPending(a, *userID)
	}

	if a.cfg.Telegram.Enabled {
		notifier, err := notify.NewNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.ChatID, 3, time.Second)
		if err != nil {
			logger.Warn("Telegram notifier unavailable: %v", err)
			return nil
		}
		if err := notifier.StatusChanged(node, record.Status, *year, *month); err != nil {
			logger.Warn("Failed to send Telegram notification: %v", err)
		}
	}
	return nil
}

// pushPending makes a best-effort push of the outbox under the same identity
// resolution sync uses: the session user id when given, the local instance
// identity otherwise. On failure the records stay pending for the next sync
// run.
func pushPending(a *app, sessionUserID string) {
	identity, err := remote.UserInstanceID(a.kv, sessionUserID)
	if err != nil {
		logger.Warn("Push skipped: %v", err)
		return
	}

	client := remote.NewClient(remote.Config{
		BaseURL:     a.cfg.Sync.URL,
		AnonKey:     a.cfg.Sync.AnonKey,
		AccessToken: a.cfg.Sync.AccessToken,
		Table:       a.cfg.Sync.Table,
		Timeout:     a.cfg.Sync.Timeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*a.cfg.Sync.Timeout)
	defer cancel()

	pending := a.states.PendingSync()
	if err := client.UpsertStates(ctx, identity, pending); err != nil {
		logger.Warn("Push failed, %d records stay pending: %v", len(pending), err)
		return
	}
	if err := a.states.ClearPending(); err != nil {
		logger.Warn("Failed to clear outbox after push: %v", err)
		return
	}
	logger.Info("Pushed %d records for %s", len(pending), identity)
}
