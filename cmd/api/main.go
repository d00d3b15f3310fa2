package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/casefine/internal/clock"
	"github.com/MrJamesThe3rd/casefine/internal/config"
	casefineHttp "github.com/MrJamesThe3rd/casefine/internal/http"
	casesHandler "github.com/MrJamesThe3rd/casefine/internal/http/cases"
	intakeHandler "github.com/MrJamesThe3rd/casefine/internal/http/intake"
	reportHandler "github.com/MrJamesThe3rd/casefine/internal/http/report"
	"github.com/MrJamesThe3rd/casefine/internal/intake"
	"github.com/MrJamesThe3rd/casefine/internal/registry"
	"github.com/MrJamesThe3rd/casefine/internal/registry/metrics"
	"github.com/MrJamesThe3rd/casefine/internal/registry/store"
	"github.com/MrJamesThe3rd/casefine/internal/report"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	clk := clock.System{}

	var (
		caseService   = registry.NewService(store.New(), clk, cfg.Registry(), metrics.New())
		reportService = report.NewService(caseService, clk)
	)

	var (
		casesH  = casesHandler.NewHandler(caseService)
		intakeH = intakeHandler.NewHandler(intake.NewParser(), caseService)
		reportH = reportHandler.NewHandler(reportService)
	)

	go runReminderSweep(context.Background(), caseService, cfg.ReminderInterval())

	router := casefineHttp.New(casesH, intakeH, reportH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

// runReminderSweep periodically sends reminders for overdue fines.
func runReminderSweep(ctx context.Context, svc *registry.Service, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			reminded, err := svc.SweepReminders(ctx)
			if err != nil {
				slog.Error("reminder sweep failed", "error", err)
				continue
			}

			if reminded > 0 {
				slog.Info("reminder sweep complete", "reminded", reminded)
			}
		}
	}
}
