// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/care-finder/internal/matching"
	"github.com/jonathan/care-finder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintCriteria outputs a human-readable summary of the active match criteria.
func (p *Printer) PrintCriteria(criteria matching.Criteria) {
	if criteria.IsEmpty() {
		p.printBox("MATCH CRITERIA", "(none: every provider matches)")
		return
	}

	var sb strings.Builder
	if criteria.Query != "" {
		sb.WriteString(fmt.Sprintf("Query:     %s\n", criteria.Query))
	}
	if criteria.Category != "" {
		sb.WriteString(fmt.Sprintf("Category:  %s\n", criteria.Category))
	}
	if criteria.Location != "" {
		sb.WriteString(fmt.Sprintf("Location:  %s\n", criteria.Location))
	}
	if criteria.Insurance != "" {
		sb.WriteString(fmt.Sprintf("Insurance: %s\n", criteria.Insurance))
	}
	if criteria.Need != "" {
		sb.WriteString(fmt.Sprintf("Need:      %s\n", criteria.Need))
	}
	if criteria.UrgencyText != "" {
		sb.WriteString(fmt.Sprintf("Urgency:   %s\n", criteria.UrgencyText))
	}

	p.printBox("MATCH CRITERIA", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatches outputs the top matched providers with their key attributes.
func (p *Printer) PrintMatches(providers []types.Provider) {
	if len(providers) == 0 {
		p.printBox("MATCHED PROVIDERS", "No providers found")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total matched: %d\n\n", len(providers)))

	count := min(len(providers), maxItemsToShow)
	for i := 0; i < count; i++ {
		provider := providers[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, provider.Name))
		sb.WriteString(fmt.Sprintf("    %s · %s\n", provider.Category, provider.Location))
		if len(provider.Specialties) > 0 {
			specialties := strings.Join(provider.Specialties, ", ")
			if len(specialties) > 40 {
				specialties = specialties[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Specialties: %s\n", specialties))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(providers) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more providers", len(providers)-maxItemsToShow))
	}

	p.printBox("MATCHED PROVIDERS", sb.String())
}

// PrintCategoryBreakdown outputs how the matched providers distribute over
// categories.
func (p *Printer) PrintCategoryBreakdown(counts map[string]int, order []string) {
	if len(counts) == 0 {
		return
	}

	var sb strings.Builder
	for _, category := range order {
		n, ok := counts[category]
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("%3d  %s\n", n, category))
	}

	p.printBox("CATEGORY BREAKDOWN", strings.TrimSuffix(sb.String(), "\n"))
}
