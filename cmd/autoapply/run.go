package main

import (
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Vbhatt03/Automated-Application/internal/apply"
	"github.com/Vbhatt03/Automated-Application/internal/browser"
	"github.com/Vbhatt03/Automated-Application/internal/config"
	"github.com/Vbhatt03/Automated-Application/internal/pipeline"
	"github.com/Vbhatt03/Automated-Application/internal/secrets"
	"github.com/Vbhatt03/Automated-Application/internal/session"
	"github.com/Vbhatt03/Automated-Application/internal/source"
	"github.com/Vbhatt03/Automated-Application/internal/source/board"
	"github.com/Vbhatt03/Automated-Application/internal/source/emailalert"
	"github.com/Vbhatt03/Automated-Application/internal/store"
)

var (
	headless bool
	maxApps  int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Scrape sources, filter, and apply",
	Long: "Fetch listings from every enabled source, dedupe and filter them,\n" +
		"then walk the shortlist through the automated apply flow.",
	RunE: runRun,
}

func init() {
	runCmd.Flags().BoolVar(&headless, "headless", true, "run the browser headless")
	runCmd.Flags().IntVar(&maxApps, "max-apps", 0, "override max applications per run (0 uses config)")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	lock, err := lockRun(cfg.App.DataDir)
	if err != nil {
		return err
	}
	defer lock.Unlock()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := store.Open(filepath.Join(cfg.App.DataDir, "autoapply.db"))
	if err != nil {
		return err
	}
	defer db.Close()

	registry := buildRegistry(cfg, logger)

	cap, err := browser.NewRodDriver(headless && cfg.Apply.Headless, logger)
	if err != nil {
		return fmt.Errorf("start browser: %w", err)
	}
	defer cap.Close()

	perRun := cfg.Apply.MaxPerRun
	if maxApps > 0 {
		perRun = maxApps
	}
	machine := apply.NewMachine(
		cap,
		session.NewCache(db, logger),
		apply.Profile{Phone: cfg.Profile.Identity.Phone, ResumePath: cfg.Apply.ResumePath},
		perRun,
		logger,
	)

	sum, err := pipeline.NewRunner(cfg, registry, machine, logger).Run(ctx)
	if err != nil {
		return err
	}

	logger.Info().
		Int("scraped", sum.Scraped).
		Int("deduped", sum.Deduped).
		Int("shortlisted", sum.Shortlisted).
		Int("applied", sum.Applied).
		Int("flagged", sum.Flagged).
		Int("pending", sum.Pending).
		Msg("run complete")
	return nil
}

// buildRegistry assembles the enabled providers in a fixed order so export
// rows stay stable between runs with the same config.
func buildRegistry(cfg *config.Config, logger zerolog.Logger) *source.Registry {
	client := board.NewClient(source.NewHostLimiter(cfg.Sources.RequestsPerSec, 1))

	var providers []source.Provider
	if cfg.Sources.RemoteOK {
		providers = append(providers, board.NewRemoteOK(client))
	}
	if cfg.Sources.WeWorkRemotely {
		providers = append(providers, board.NewWeWorkRemotely(client))
	}
	if cfg.Sources.Remotive {
		providers = append(providers, board.NewRemotive(client))
	}
	if cfg.Sources.YCombinator {
		providers = append(providers, board.NewYCombinator(client))
	}
	if cfg.Sources.Wellfound {
		providers = append(providers, board.NewWellfound(client, cfg.Search.Query, cfg.Search.Location))
	}
	if cfg.Sources.Indeed {
		providers = append(providers, board.NewIndeed(client, cfg.Search.Query, cfg.Search.Location, cfg.Sources.IndeedPages))
	}
	if len(cfg.Sources.GreenhouseBoards) > 0 {
		providers = append(providers, board.NewGreenhouse(client, cfg.Sources.GreenhouseBoards))
	}

	if cfg.Email.Enabled {
		password, err := secrets.Get(secrets.IMAPPassword)
		if err != nil {
			logger.Warn().Err(err).Msg("email alerts enabled but no imap password stored, skipping")
		} else {
			providers = append(providers, emailalert.New(emailalert.Config{
				Addr:       fmt.Sprintf("%s:%d", cfg.Email.IMAPHost, cfg.Email.IMAPPort),
				Username:   cfg.Email.Username,
				Password:   password,
				Mailbox:    cfg.Email.Mailbox,
				SubjectAny: cfg.Email.SearchSubjectAny,
				Max:        cfg.Email.MaxMessages,
			}, logger))
		}
	}

	return source.NewRegistry(logger, providers...)
}
