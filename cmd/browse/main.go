package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/benbjohnson/clock"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Anikethb04/Project-IMDB/internal/browser"
	"github.com/Anikethb04/Project-IMDB/internal/config"
	"github.com/Anikethb04/Project-IMDB/internal/database"
	"github.com/Anikethb04/Project-IMDB/internal/logging"
	"github.com/Anikethb04/Project-IMDB/internal/store"
	"github.com/Anikethb04/Project-IMDB/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "browse:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadBrowse()
	if err != nil {
		return err
	}

	log, logCloser := logging.NewTUI(cfg.LogFile, slog.LevelDebug)
	defer logCloser.Close()
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()
	slog.Info("cache store opened", "backend", cfg.StoreBackend)

	m := tui.New(ctx, tui.Deps{
		API:   browser.NewAPIClient(cfg.APIBaseURL, &http.Client{}),
		Store: st,
		Clock: clock.New(),
		Log:   log,
	})
	defer m.Close()

	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

func openStore(ctx context.Context, cfg *config.BrowseConfig) (store.Store, error) {
	switch cfg.StoreBackend {
	case "sqlite":
		db, err := database.NewSQLite(cfg.StorePath)
		if err != nil {
			return nil, err
		}
		return store.NewSQL(db, store.SQLite), nil
	case "postgres":
		db, err := database.NewPostgres(cfg.DB)
		if err != nil {
			return nil, err
		}
		return store.NewSQL(db, store.Postgres), nil
	case "redis":
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		rdb, err := database.NewRedis(pingCtx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		return store.NewRedis(rdb, "browse:"), nil
	default:
		return store.NewMemory(), nil
	}
}
