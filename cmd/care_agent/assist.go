package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/care-finder/internal/intake"
	"github.com/jonathan/care-finder/internal/normalize"
	"github.com/jonathan/care-finder/internal/snapshot"
)

var assistSnapshot string

var assistCmd = &cobra.Command{
	Use:   "assist",
	Short: "Run the intake assistant interactively",
	Long:  "Starts the conversational intake dialogue on stdin/stdout and prints matched providers at the end.",
	RunE:  runAssist,
}

func init() {
	assistCmd.Flags().StringVarP(&assistSnapshot, "snapshot", "s", "", "Path to provider snapshot JSON file (required)")

	if err := assistCmd.MarkFlagRequired("snapshot"); err != nil {
		panic(fmt.Sprintf("failed to mark snapshot flag as required: %v", err))
	}

	rootCmd.AddCommand(assistCmd)
}

func runAssist(_ *cobra.Command, _ []string) error {
	snap, err := snapshot.Load(assistSnapshot)
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	conv := intake.New(normalize.Providers(snap.Providers))
	printTurn(conv.Greeting())

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "quit" || answer == "exit" {
			return nil
		}

		turn, err := conv.Advance(answer)
		if err != nil {
			fmt.Println("Please type an answer.")
			continue
		}
		printTurn(turn)
	}
}

func printTurn(turn intake.Turn) {
	fmt.Println()
	fmt.Println(turn.Message)
	for _, option := range turn.Options {
		fmt.Printf("  - %s\n", option)
	}
	for i, p := range turn.Providers {
		fmt.Printf("\n%d. %s  [%s]\n", i+1, p.Name, p.Category)
		fmt.Printf("   %s\n", p.Address)
		if p.Phone != "" {
			fmt.Printf("   %s\n", p.Phone)
		}
	}
	fmt.Println()
}
