package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"person-roster/internal/config"
)

const (
	AppName    = "Person Roster"
	AppID      = "com.uelikramer.person-roster"
	AppVersion = "1.0.0"
)

type options struct {
	configPath string
	logLevel   string
	seed       uint64
	sampleMax  int
	noSample   bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:     "person-roster",
		Short:   "Manage an in-memory roster of persons",
		Version: AppVersion,
		Long: `Person Roster opens a desktop window for adding, listing and removing
persons and shows live statistics (counts by sex, salary and age totals
and averages). Nothing is persisted; random demo data is loaded at start.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, opts, os.Getenv)
			if err != nil {
				return err
			}

			application, err := NewApplication(cfg)
			if err != nil {
				return fmt.Errorf("application initialization failed: %w", err)
			}
			return application.Run()
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.Uint64Var(&opts.seed, "seed", 0, "seed for reproducible demo data")
	flags.IntVar(&opts.sampleMax, "sample-max", config.Default().Sample.Max, "exclusive upper bound on demo persons")
	flags.BoolVar(&opts.noSample, "no-sample", false, "start with an empty roster")

	return cmd
}

// resolveConfig layers defaults, the YAML file, environment and flags,
// in that order
func resolveConfig(cmd *cobra.Command, opts *options, getenv func(string) string) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return cfg, err
	}
	cfg.ApplyEnv(getenv)

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if flags.Changed("seed") {
		cfg.Sample.Seed = opts.seed
	}
	if flags.Changed("sample-max") {
		cfg.Sample.Max = opts.sampleMax
	}
	if opts.noSample {
		cfg.Sample.Enabled = false
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
