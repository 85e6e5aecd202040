// Package matching filters a normalized provider collection against a set
// of optional criteria and orders the result by relevance.
package matching

import (
	"strings"
)

// Sentinel values that disable a criterion instead of being matched
// literally. Location sentinels are recognized by the "anywhere" phrase so
// option texts like "Anywhere in Oneida County" are covered.
const (
	sentinelAll         = "all"
	sentinelAnywhere    = "anywhere"
	sentinelNoInsurance = "no insurance"
)

// Criteria is the set of optional filters applied to a provider collection.
// Zero values and sentinel strings are no-ops; providers must satisfy every
// active criterion.
type Criteria struct {
	// Query is a free-text search over name, specialties, services and
	// category label.
	Query string `json:"query,omitempty"`
	// Category is an exact category label from the taxonomy.
	Category string `json:"category,omitempty"`
	// Location is a case-insensitive locality substring.
	Location string `json:"location,omitempty"`
	// Insurance is the requested plan name or descriptor.
	Insurance string `json:"insurance,omitempty"`
	// Need is the free-text statement of what care the user is looking
	// for, collected by the intake dialogue.
	Need string `json:"need,omitempty"`
	// UrgencyText is the free-text urgency answer; it is bucketed by
	// ClassifyUrgency before filtering.
	UrgencyText string `json:"urgency,omitempty"`
}

// IsEmpty reports whether no criterion is active.
func (c Criteria) IsEmpty() bool {
	return !c.hasQuery() && !c.hasCategory() && !c.hasLocation() &&
		!c.hasInsurance() && c.Need == "" && c.UrgencyText == ""
}

func (c Criteria) hasQuery() bool {
	return strings.TrimSpace(c.Query) != ""
}

func (c Criteria) hasCategory() bool {
	return c.Category != "" && !strings.EqualFold(c.Category, sentinelAll)
}

func (c Criteria) hasLocation() bool {
	loc := strings.ToLower(strings.TrimSpace(c.Location))
	return loc != "" && loc != sentinelAll && !strings.Contains(loc, sentinelAnywhere)
}

func (c Criteria) hasInsurance() bool {
	ins := strings.ToLower(strings.TrimSpace(c.Insurance))
	return ins != "" && !strings.Contains(ins, sentinelNoInsurance)
}
