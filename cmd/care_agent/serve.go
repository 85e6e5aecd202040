package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/care-finder/internal/config"
	"github.com/jonathan/care-finder/internal/server"
)

var (
	servePort     int
	serveSnapshot string
	serveProfile  string
	serveConfig   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the provider directory, the conversational intake dialogue and the concierge chat.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on")
	serveCmd.Flags().StringVar(&serveSnapshot, "snapshot", "", "Path to provider snapshot JSON file")
	serveCmd.Flags().StringVar(&serveProfile, "profile", "", "Path to persisted user profile file")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		Port:        servePort,
		Snapshot:    serveSnapshot,
		ProfilePath: serveProfile,
	}

	// Flags win over config file values, which win over environment
	if serveConfig != "" {
		fileCfg, err := config.LoadConfig(serveConfig)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	cfg = cfg.MergeWithDefaults(config.FromEnv())

	if cfg.Snapshot == "" {
		return fmt.Errorf("a provider snapshot is required (--snapshot or SNAPSHOT_PATH)")
	}
	if cfg.ProfilePath == "" {
		cfg.ProfilePath = "profile.json"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Port:         cfg.Port,
		SnapshotPath: cfg.Snapshot,
		ProfilePath:  cfg.ProfilePath,
		GeminiAPIKey: cfg.GeminiAPIKey,
		GeminiModel:  cfg.GeminiModel,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
