package main

import (
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Vbhatt03/Automated-Application/internal/config"
	"github.com/Vbhatt03/Automated-Application/internal/contact"
	"github.com/Vbhatt03/Automated-Application/internal/outreach"
	"github.com/Vbhatt03/Automated-Application/internal/pipeline"
	"github.com/Vbhatt03/Automated-Application/internal/secrets"
	"github.com/Vbhatt03/Automated-Application/internal/store"
)

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Add recruiter contacts and outreach drafts",
	Long: "Read the status export of a previous run and, for every applied\n" +
		"listing, discover recruiter contacts and render outreach drafts.",
	RunE: runEnrich,
}

func init() {
	rootCmd.AddCommand(enrichCmd)
}

func runEnrich(cmd *cobra.Command, args []string) error {
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

	chain := buildChain(cfg, db, logger)
	writer := outreach.NewWriter(cfg.Profile.Identity)

	n, err := pipeline.NewEnricher(chain, writer, logger).Enrich(ctx,
		filepath.Join(cfg.App.DataDir, pipeline.StatusExport),
		filepath.Join(cfg.App.DataDir, pipeline.EnrichedExport),
	)
	if err != nil {
		return err
	}

	logger.Info().Int("enriched", n).Str("file", pipeline.EnrichedExport).Msg("enrichment complete")
	return nil
}

// buildChain assembles the provider chain from whatever credentials are
// available. Providers without credentials are left out; the chain treats
// missing links as "no result".
func buildChain(cfg *config.Config, db *store.DB, logger zerolog.Logger) *contact.Chain {
	var primary contact.EmailFinder
	if cfg.Contacts.HunterEnabled {
		if key, err := secrets.Get(secrets.HunterAPIKey); err == nil {
			primary = contact.NewHunter(key)
		} else {
			logger.Warn().Err(err).Msg("hunter enabled but no api key stored")
		}
	}

	var secondary contact.EmailFinder
	if cfg.Contacts.SnovEnabled {
		id, errID := secrets.Get(secrets.SnovClientID)
		secret, errSecret := secrets.Get(secrets.SnovClientSecret)
		if errID == nil && errSecret == nil {
			secondary = contact.NewSnov(id, secret)
		} else {
			logger.Warn().Msg("snov enabled but client credentials are incomplete")
		}
	}

	return contact.NewChain(primary, contact.NewDDGResolver(db, logger), secondary, logger)
}
