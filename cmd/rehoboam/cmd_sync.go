package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"rehoboam/internal/logger"
	"rehoboam/internal/notify"
	"rehoboam/internal/remote"
)

func runSync(args []string) error {
	fs := flag.NewFlagSet("sync", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to configuration file")
	userID := fs.String("user", "", "Authenticated user id (defaults to the local instance identity)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := newApp(*configPath)
	if err != nil {
		return err
	}

	if !a.cfg.Sync.Enabled {
		return fmt.Errorf("sync is disabled; set sync.enabled and sync.url in the config")
	}

	identity, err := remote.UserInstanceID(a.kv, *userID)
	if err != nil {
		return err
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
		notifySyncFailed(a, len(pending), err)
		if hint := remote.SetupHint(err); hint != "" {
			return fmt.Errorf("%w\n%s", err, hint)
		}
		return err
	}
	if err := a.states.ClearPending(); err != nil {
		return err
	}
	logger.Info("Pushed %d pending records for %s", len(pending), identity)

	fetched, err := client.FetchStates(ctx, identity)
	if err != nil {
		notifySyncFailed(a, 0, err)
		if hint := remote.SetupHint(err); hint != "" {
			return fmt.Errorf("%w\n%s", err, hint)
		}
		return err
	}
	if err := a.states.MergeRemote(fetched); err != nil {
		return err
	}
	logger.Info("Merged %d remote records", len(fetched))
	fmt.Printf("Sync complete: pushed %d, fetched %d (user %s)\n", len(pending), len(fetched), identity)

	if a.cfg.Telegram.Enabled {
		notifier, err := notify.NewNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.ChatID, 3, time.Second)
		if err == nil {
			if err := notifier.SyncCompleted(len(pending), len(fetched)); err != nil {
				logger.Warn("Failed to send Telegram notification: %v", err)
			}
		}
	}
	return nil
}

func notifySyncFailed(a *app, pending int, cause error) {
	if !a.cfg.Telegram.Enabled {
		return
	}
	notifier, err := notify.NewNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.ChatID, 3, time.Second)
	if err != nil {
		return
	}
	if err := notifier.SyncFailed(pending, cause); err != nil {
		logger.Warn("Failed to send Telegram notification: %v", err)
	}
}
