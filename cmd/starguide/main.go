package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"

	"github.com/r3xsean/starguide-public-sub001/internal/config"
	"github.com/r3xsean/starguide-public-sub001/internal/hsr/advisor"
	"github.com/r3xsean/starguide-public-sub001/internal/hsr/kb"
	"github.com/r3xsean/starguide-public-sub001/internal/hsr/roster"
	"github.com/r3xsean/starguide-public-sub001/internal/storage"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		usage()
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logLevel := zerolog.InfoLevel
	if cfg.App.DebugMode {
		logLevel = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(logLevel).
		With().Timestamp().Logger()

	switch args[0] {
	case "pull":
		return runPull(args[1:], cfg, log)
	case "banner":
		return runBanner(args[1:], cfg, log)
	case "roster":
		return runRoster(args[1:], cfg, log)
	case "watch":
		return runWatch(args[1:], cfg, log)
	default:
		usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func usage() {
	fmt.Println("starguide - roster advisor")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  starguide pull   [-mode moc|pf|as]            general pull recommendations")
	fmt.Println("  starguide banner [-mode moc|pf|as] [-id ID]   banner verdicts (default: active banners)")
	fmt.Println("  starguide roster [set ID STATUS [EIDOLON] | rm ID | list]")
	fmt.Println("  starguide watch  [-mode moc|pf|as]            re-run recommendations on KB edits")
}

// setup opens the roster database and loads the knowledge base.
func setup(cfg *config.Config, log zerolog.Logger) (*storage.DB, *kb.Index, roster.Snapshot, error) {
	dbCfg := storage.DefaultConfig(cfg.Roster.DBPath)
	dbCfg.AutoMigrate = cfg.Roster.AutoMigrate
	db, err := storage.Open(dbCfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open roster database: %w", err)
	}

	idx, err := kb.Load(cfg.KB.Dir)
	if err != nil {
		_ = db.Close()
		return nil, nil, nil, fmt.Errorf("load knowledge base: %w", err)
	}
	log.Debug().Str("version", idx.Version).Msg("knowledge base loaded")

	snap, err := storage.NewRosterRepository(db.Conn()).Snapshot(context.Background())
	if err != nil {
		_ = db.Close()
		return nil, nil, nil, fmt.Errorf("load roster: %w", err)
	}

	return db, idx, snap, nil
}

func parseMode(raw string, fallback string) (kb.GameMode, error) {
	if raw == "" {
		raw = fallback
	}
	mode := kb.GameMode(raw)
	if !mode.Valid() {
		return "", fmt.Errorf("unknown game mode %q (want moc, pf, or as)", raw)
	}
	return mode, nil
}

func runPull(args []string, cfg *config.Config, log zerolog.Logger) error {
	fs := flag.NewFlagSet("pull", flag.ContinueOnError)
	modeFlag := fs.String("mode", "", "game mode (moc, pf, as)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	mode, err := parseMode(*modeFlag, cfg.App.Mode)
	if err != nil {
		return err
	}

	db, idx, snap, err := setup(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		_ = db.Close()
	}()

	advice := advisor.New(idx, log).PullRecommendations(snap, mode)
	displayPullAdvice(advice)
	return nil
}

func runBanner(args []string, cfg *config.Config, log zerolog.Logger) error {
	fs := flag.NewFlagSet("banner", flag.ContinueOnError)
	modeFlag := fs.String("mode", "", "game mode (moc, pf, as)")
	idFlag := fs.String("id", "", "banner id (default: all active banners)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	mode, err := parseMode(*modeFlag, cfg.App.Mode)
	if err != nil {
		return err
	}

	db, idx, snap, err := setup(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		_ = db.Close()
	}()

	adv := advisor.New(idx, log)

	if *idFlag != "" {
		analysis, err := adv.BannerAdvice(*idFlag, snap, mode)
		if err != nil {
			return err
		}
		displayBannerAnalysis(analysis)
		return nil
	}

	analyses := adv.ActiveBanners(snap, mode, time.Now())
	if len(analyses) == 0 {
		fmt.Println("No active banners.")
		return nil
	}
	for _, analysis := range analyses {
		displayBannerAnalysis(analysis)
	}
	return nil
}

// runWatch prints recommendations once, then keeps watching the KB
// directory and reprints whenever its files change. Ctrl-C exits.
func runWatch(args []string, cfg *config.Config, log zerolog.Logger) error {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	modeFlag := fs.String("mode", "", "game mode (moc, pf, as)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	mode, err := parseMode(*modeFlag, cfg.App.Mode)
	if err != nil {
		return err
	}

	db, idx, snap, err := setup(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		_ = db.Close()
	}()

	displayPullAdvice(advisor.New(idx, log).PullRecommendations(snap, mode))

	if !cfg.KB.Watch {
		log.Info().Msg("kb watching disabled in config, exiting after one run")
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	watcher := kb.NewWatcher(cfg.KB.Dir, func(next *kb.Index) {
		displayPullAdvice(advisor.New(next, log).PullRecommendations(snap, mode))
	}, log)

	if err := watcher.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

func runRoster(args []string, cfg *config.Config, log zerolog.Logger) error {
	dbCfg := storage.DefaultConfig(cfg.Roster.DBPath)
	dbCfg.AutoMigrate = cfg.Roster.AutoMigrate
	db, err := storage.Open(dbCfg)
	if err != nil {
		return fmt.Errorf("open roster database: %w", err)
	}
	defer func() {
		_ = db.Close()
	}()

	repo := storage.NewRosterRepository(db.Conn())
	ctx := context.Background()

	if len(args) == 0 || args[0] == "list" {
		snap, err := repo.Snapshot(ctx)
		if err != nil {
			return err
		}
		displayRoster(snap)
		return nil
	}

	switch args[0] {
	case "set":
		if len(args) < 3 {
			return fmt.Errorf("usage: starguide roster set ID owned|planned|none [EIDOLON]")
		}
		inv := roster.Investment{Status: roster.Ownership(args[2])}
		switch inv.Status {
		case roster.StatusOwned, roster.StatusPlanned, roster.StatusNone:
		default:
			return fmt.Errorf("unknown status %q (want owned, planned, or none)", args[2])
		}
		if len(args) > 3 {
			if _, err := fmt.Sscanf(args[3], "%d", &inv.Eidolon); err != nil {
				return fmt.Errorf("parse eidolon count %q: %w", args[3], err)
			}
		}
		return repo.Upsert(ctx, args[1], inv)
	case "rm":
		if len(args) < 2 {
			return fmt.Errorf("usage: starguide roster rm ID")
		}
		return repo.Delete(ctx, args[1])
	default:
		return fmt.Errorf("unknown roster subcommand %q", args[0])
	}
}
