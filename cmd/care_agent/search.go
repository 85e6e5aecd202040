package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/care-finder/internal/matching"
	"github.com/jonathan/care-finder/internal/normalize"
	"github.com/jonathan/care-finder/internal/observability"
	"github.com/jonathan/care-finder/internal/snapshot"
)

var (
	searchSnapshot  string
	searchQuery     string
	searchCategory  string
	searchLocation  string
	searchInsurance string
	searchVerbose   bool
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search providers in a snapshot",
	Long:  "Runs an ad-hoc match against a provider snapshot and prints the matching providers.",
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchSnapshot, "snapshot", "s", "", "Path to provider snapshot JSON file (required)")
	searchCmd.Flags().StringVarP(&searchQuery, "query", "q", "", "Free-text search over name, category, specialties and services")
	searchCmd.Flags().StringVarP(&searchCategory, "category", "c", "", "Category filter")
	searchCmd.Flags().StringVarP(&searchLocation, "location", "l", "", "Location filter")
	searchCmd.Flags().StringVarP(&searchInsurance, "insurance", "i", "", "Insurance plan filter")
	searchCmd.Flags().BoolVarP(&searchVerbose, "verbose", "v", false, "Print criteria and category breakdown")

	if err := searchCmd.MarkFlagRequired("snapshot"); err != nil {
		panic(fmt.Sprintf("failed to mark snapshot flag as required: %v", err))
	}

	rootCmd.AddCommand(searchCmd)
}

func runSearch(_ *cobra.Command, _ []string) error {
	snap, err := snapshot.Load(searchSnapshot)
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	providers := normalize.Providers(snap.Providers)
	criteria := matching.Criteria{
		Query:     searchQuery,
		Category:  searchCategory,
		Location:  searchLocation,
		Insurance: searchInsurance,
	}
	matched := matching.Match(providers, criteria)

	if searchVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintCriteria(criteria)
		printer.PrintCategoryBreakdown(normalize.CategoryCounts(matched), normalize.UniqueCategories(matched))
		printer.PrintMatches(matched)
		return nil
	}

	if len(matched) == 0 {
		fmt.Println("No providers found matching your criteria.")
		return nil
	}

	fmt.Printf("Found %d providers:\n\n", len(matched))
	for _, p := range matched {
		fmt.Printf("%s  [%s]\n", p.Name, p.Category)
		fmt.Printf("  %s\n", p.Address)
		if p.Phone != "" {
			fmt.Printf("  %s\n", p.Phone)
		}
		if len(p.Specialties) > 0 {
			fmt.Printf("  Specialties: %v\n", p.Specialties)
		}
		fmt.Println()
	}

	return nil
}
