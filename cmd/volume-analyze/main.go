package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/Joshfkon/workout-app-sub012/internal/advisor"
	"github.com/Joshfkon/workout-app-sub012/internal/config"
	"github.com/Joshfkon/workout-app-sub012/internal/engine"
	"github.com/Joshfkon/workout-app-sub012/internal/export"
	"github.com/Joshfkon/workout-app-sub012/internal/models"
	"github.com/Joshfkon/workout-app-sub012/internal/storage"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	startStr := flag.String("start", "", "block start date, YYYY-MM-DD (required)")
	weeks := flag.Int("weeks", 4, "block length in weeks (1-16)")
	userID := flag.Int("user", 1, "user ID")
	apply := flag.Bool("apply", false, "update the stored volume profile with the block's findings")
	snapshotDir := flag.String("snapshot-dir", "", "save the report to a SQLite snapshot db in this directory")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *startStr == "" {
		fmt.Fprintf(os.Stderr, "Usage: volume-analyze -config config.yaml -start 2026-06-01 [-weeks 4] [-apply] [-snapshot-dir DIR]\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	blockStart, err := time.Parse("2006-01-02", *startStr)
	if err != nil {
		log.Error("invalid start date", "start", *startStr, "error", err)
		os.Exit(1)
	}
	if *weeks < 1 || *weeks > 16 {
		log.Error("weeks must be between 1 and 16", "weeks", *weeks)
		os.Exit(1)
	}

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// Connect database
	db, err := storage.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	adv := advisor.New(db, log)

	var analysis *engine.MesocycleAnalysis
	if *apply {
		analysis, _, err = adv.CompleteMesocycle(ctx, *userID, blockStart, *weeks)
	} else {
		analysis, err = adv.AnalyzeMesocycle(ctx, *userID, blockStart, *weeks)
	}
	if err != nil {
		log.Error("analysis failed", "error", err)
		os.Exit(1)
	}

	printReport(analysis, blockStart, *apply)

	if *snapshotDir != "" {
		snapDB, err := export.OpenSnapshotDB(*snapshotDir)
		if err != nil {
			log.Error("snapshot db open failed", "error", err)
			os.Exit(1)
		}
		defer snapDB.Close()

		if err := snapDB.Save(*userID, blockStart, *weeks, analysis); err != nil {
			log.Error("snapshot save failed", "error", err)
			os.Exit(1)
		}
		log.Info("snapshot saved", "dir", *snapshotDir)
	}
}

func printReport(analysis *engine.MesocycleAnalysis, blockStart time.Time, applied bool) {
	fmt.Printf("Mesocycle report: %s, %d weeks\n", blockStart.Format("2006-01-02"), analysis.Weeks)
	fmt.Printf("Overall recovery: %s\n\n", analysis.OverallRecovery)

	muscles := make([]models.MuscleGroup, 0, len(analysis.Outcomes))
	for m := range analysis.Outcomes {
		muscles = append(muscles, m)
	}
	sort.Slice(muscles, func(i, j int) bool { return muscles[i] < muscles[j] })

	for _, m := range muscles {
		o := analysis.Outcomes[m]
		fmt.Printf("%-12s %5.1f sets/wk  verdict=%-17s confidence=%d%%  next block: %+d sets\n",
			m, o.AvgWeeklySets, o.Verdict, o.Confidence, o.SuggestedAdjustment)
	}

	if applied {
		fmt.Println("\nProfile updated with this block's findings.")
	} else {
		fmt.Println("\nRead-only analysis. Re-run with -apply to update the profile.")
	}
}
