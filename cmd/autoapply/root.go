package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Vbhatt03/Automated-Application/internal/config"
	"github.com/Vbhatt03/Automated-Application/internal/logging"
)

var (
	cfgPath string
	dataDir string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "autoapply",
	Short: "Job aggregation and application pipeline",
	Long: "autoapply scrapes job boards and alert emails, shortlists listings\n" +
		"against your profile, applies where it can, and drafts recruiter outreach.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default: <data-dir>/config.yml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default: ~/.autoapply)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func defaultDataDir() string {
	if dataDir != "" {
		return dataDir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".autoapply"
	}
	return filepath.Join(home, ".autoapply")
}

// setup loads and validates the config, seeding the default one into the
// data dir on first run.
func setup() (*config.Config, zerolog.Logger, error) {
	dir := defaultDataDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("create data dir: %w", err)
	}

	path := cfgPath
	if path == "" {
		seeded, err := config.EnsureUserConfig(dir)
		if err != nil {
			return nil, zerolog.Nop(), err
		}
		path = seeded
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, zerolog.Nop(), err
	}

	normalized, res := config.NormalizeAndValidate(cfg)
	logger := logging.Setup(verbose || normalized.App.Verbose)
	for _, w := range res.Warnings {
		logger.Warn().Msg(w)
	}
	if !res.OK() {
		for _, e := range res.Errors {
			logger.Error().Msg(e)
		}
		return nil, logger, fmt.Errorf("config %s is invalid", path)
	}

	if normalized.App.DataDir == "" {
		normalized.App.DataDir = dir
	}
	return &normalized, logger, nil
}

// lockRun takes an exclusive file lock on the data dir so two runs never
// race on the sqlite store or the exports.
func lockRun(dir string) (*flock.Flock, error) {
	lock := flock.New(filepath.Join(dir, "run.lock"))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("another run is already in progress in %s", dir)
	}
	return lock, nil
}
