package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/care-finder/internal/db"
	"github.com/jonathan/care-finder/internal/geo"
	"github.com/jonathan/care-finder/internal/snapshot"
	"github.com/jonathan/care-finder/internal/types"
)

var (
	importSnapshot string
	importGeocode  bool
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a provider snapshot into PostgreSQL",
	Long:  "Validates a provider snapshot JSON file against the schema and upserts every provider record into the database, optionally resolving coordinates via Mapbox.",
	RunE:  runImport,
}

func init() {
	importCmd.Flags().StringVarP(&importSnapshot, "snapshot", "s", "", "Path to provider snapshot JSON file (required)")
	importCmd.Flags().BoolVar(&importGeocode, "geocode", false, "Resolve provider coordinates after import")

	if err := importCmd.MarkFlagRequired("snapshot"); err != nil {
		panic(fmt.Sprintf("failed to mark snapshot flag as required: %v", err))
	}

	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, _ []string) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	snap, err := snapshot.Load(importSnapshot)
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	ctx := cmd.Context()
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		return err
	}

	for _, p := range snap.Providers {
		if _, err := database.UpsertProvider(ctx, p); err != nil {
			return err
		}
	}
	fmt.Printf("Imported %d providers\n", len(snap.Providers))

	if !importGeocode {
		return nil
	}

	// Providers without a usable address still get county-level coordinates
	addresses := make(map[string]types.Address, len(snap.Providers))
	for _, p := range snap.Providers {
		addr, _ := p.Address.First()
		addresses[p.Name] = addr
	}

	var resolver geo.Resolver = geo.StaticResolver{}
	if token := os.Getenv("MAPBOX_ACCESS_TOKEN"); token != "" {
		resolver = geo.NewMapboxResolver(token)
	} else {
		fmt.Println("MAPBOX_ACCESS_TOKEN not set, using fallback coordinates")
	}

	coords, err := geo.ResolveBatch(ctx, resolver, addresses)
	if err != nil {
		return fmt.Errorf("failed to resolve coordinates: %w", err)
	}

	for name, c := range coords {
		if err := database.UpdateCoordinates(ctx, name, c); err != nil {
			return err
		}
	}
	fmt.Printf("Geocoded %d providers\n", len(coords))

	return nil
}
