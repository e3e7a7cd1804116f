package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/rangepick/internal/config"
	"github.com/jask/rangepick/internal/database"
	"github.com/jask/rangepick/internal/database/repository"
	"github.com/jask/rangepick/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	if err := database.RunMigrations(cfg.Database.Path, "internal/database/migrations"); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	repo := repository.NewBlackoutRepo(db)
	blackouts, err := repo.List(ctx)
	if err != nil {
		log.Fatalf("load blackouts: %v", err)
	}

	loc, err := time.LoadLocation(cfg.UI.Timezone)
	if err != nil {
		log.Printf("warn: using local timezone due to load failure: %v", err)
		loc = time.Local
	}

	app, err := tui.New(ctx, cfg, repo, blackouts, loc)
	if err != nil {
		log.Fatalf("init: %v", err)
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
