package matching

import (
	"strings"

	"github.com/jonathan/care-finder/internal/taxonomy"
	"github.com/jonathan/care-finder/internal/types"
)

// Match returns the providers satisfying every active criterion, preserving
// input order. When the urgency bucket is emergency, Hospital-category
// providers are moved to the front with a stable partition; equal-priority
// providers keep their relative order. The result is never truncated here;
// presentation caps are a caller concern.
func Match(providers []types.Provider, criteria Criteria) []types.Provider {
	urgency := ClassifyUrgency(criteria.UrgencyText)

	matched := make([]types.Provider, 0, len(providers))
	for _, p := range providers {
		if !satisfies(p, criteria, urgency) {
			continue
		}
		matched = append(matched, p)
	}

	if criteria.UrgencyText != "" && urgency == UrgencyEmergency {
		matched = hospitalsFirst(matched)
	}

	return matched
}

func satisfies(p types.Provider, c Criteria, urgency Urgency) bool {
	if c.hasQuery() && !matchesQuery(p, c.Query) {
		return false
	}
	if c.hasCategory() && p.Category != c.Category {
		return false
	}
	if c.hasLocation() && !containsFold(p.Location, c.Location) {
		return false
	}
	if c.hasInsurance() && !matchesInsurance(p, c.Insurance) {
		return false
	}
	if c.Need != "" && !matchesNeed(p, c.Need) {
		return false
	}
	if c.UrgencyText != "" && !matchesUrgency(p, urgency) {
		return false
	}
	return true
}

// matchesQuery does a case-insensitive substring search over the provider's
// name, specialties, services and category label; any single hit includes
// the provider.
func matchesQuery(p types.Provider, query string) bool {
	if containsFold(p.Name, query) || containsFold(p.Category, query) {
		return true
	}
	for _, s := range p.Specialties {
		if containsFold(s, query) {
			return true
		}
	}
	for _, s := range p.Services {
		if containsFold(s, query) {
			return true
		}
	}
	return false
}

// matchesInsurance fails closed: a provider with no insurance data is
// excluded. A provider passes on a plan-name substring match, or on a
// Medicaid/Medicare flag when the requested insurance names that program.
func matchesInsurance(p types.Provider, insurance string) bool {
	lower := strings.ToLower(insurance)
	if strings.Contains(lower, "medicaid") && p.AcceptsMedicaid {
		return true
	}
	if strings.Contains(lower, "medicare") && p.AcceptsMedicare {
		return true
	}
	for _, plan := range p.AcceptsInsurance {
		if containsFold(plan, insurance) {
			return true
		}
	}
	return false
}

// matchesNeed applies the restriction derived from the intake's free-text
// need answer. Unrecognized needs impose no restriction.
func matchesNeed(p types.Provider, need string) bool {
	lower := strings.ToLower(need)
	switch {
	case strings.Contains(lower, "mental") || strings.Contains(lower, "crisis"):
		if p.Category == taxonomy.CategoryMentalHealth {
			return true
		}
		for _, s := range p.Specialties {
			ls := strings.ToLower(s)
			if strings.Contains(ls, "mental") || strings.Contains(ls, "behavioral") {
				return true
			}
		}
		return false
	case strings.Contains(lower, "specialist"):
		return p.Category != taxonomy.CategoryHospital &&
			p.Category != taxonomy.CategoryUrgentCare &&
			p.Category != taxonomy.CategoryPrimaryCare
	case strings.Contains(lower, "routine") || strings.Contains(lower, "checkup"):
		return p.Category == taxonomy.CategoryPrimaryCare
	default:
		return true
	}
}

// matchesUrgency restricts the candidate set by acuity. Routine imposes no
// restriction beyond whatever the need filter already applied.
func matchesUrgency(p types.Provider, urgency Urgency) bool {
	switch urgency {
	case UrgencyEmergency:
		if p.Category == taxonomy.CategoryHospital {
			return true
		}
		for _, s := range p.Specialties {
			if strings.Contains(strings.ToLower(s), "emergency") {
				return true
			}
		}
		return false
	case UrgencyUrgent:
		return p.Category == taxonomy.CategoryUrgentCare || p.Category == taxonomy.CategoryHospital
	default:
		return true
	}
}

// hospitalsFirst stably partitions the slice so Hospital-category providers
// come first. Not a full sort: relative order within each half is kept.
func hospitalsFirst(providers []types.Provider) []types.Provider {
	out := make([]types.Provider, 0, len(providers))
	for _, p := range providers {
		if p.Category == taxonomy.CategoryHospital {
			out = append(out, p)
		}
	}
	for _, p := range providers {
		if p.Category != taxonomy.CategoryHospital {
			out = append(out, p)
		}
	}
	return out
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
