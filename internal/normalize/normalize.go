// Package normalize flattens raw provider records into the single-valued
// view consumed by the matcher and every presentation surface.
package normalize

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/care-finder/internal/taxonomy"
	"github.com/jonathan/care-finder/internal/types"
)

const (
	// DefaultLocation is the locality sentinel used when a provider has no
	// usable address.
	DefaultLocation = "Oneida County"

	// NoAddress is the display fallback for a missing or empty address.
	NoAddress = "Address not available"

	// AllFilter is the sentinel list entry meaning "no filter".
	AllFilter = "All"
)

// Providers normalizes a raw provider collection. Ids are assigned by
// position and are stable within a load. Missing optional fields degrade to
// sentinel or empty values; this function never fails on partial data.
func Providers(raw []types.RawProvider) []types.Provider {
	out := make([]types.Provider, 0, len(raw))
	for i, rp := range raw {
		out = append(out, Provider(rp, fmt.Sprintf("provider-%d", i)))
	}
	return out
}

// Provider normalizes a single raw record under the given id.
func Provider(rp types.RawProvider, id string) types.Provider {
	specialties := rp.MedicalSpecialty
	if specialties == nil {
		specialties = []string{}
	}

	services := make([]string, 0, len(rp.ServiceType)+len(rp.HasPOS))
	services = append(services, rp.ServiceType...)
	for _, svc := range rp.HasPOS {
		services = append(services, svc.Name)
	}

	p := types.Provider{
		ID:               id,
		Name:             rp.Name,
		Type:             rp.Type,
		Category:         taxonomy.Classify(rp.Type, specialties),
		Location:         Location(rp.Address),
		Address:          FormatAddress(rp.Address),
		Phone:            rp.Telephone.First(),
		Specialties:      specialties,
		Services:         services,
		Website:          rp.SameAs,
		AcceptsInsurance: rp.AcceptsInsurance,
		Network:          rp.Network,
	}
	if rp.ParentOrganization != nil {
		p.Organization = rp.ParentOrganization.Name
	}

	p.AcceptsMedicaid = acceptsPlan(rp.AcceptsMedicaid, rp.AcceptsInsurance, "medicaid")
	p.AcceptsMedicare = acceptsPlan(rp.AcceptsMedicare, rp.AcceptsInsurance, "medicare")

	return p
}

// acceptsPlan derives a government-plan acceptance boolean. An explicit
// source flag takes precedence over the plan-name scan when both exist.
func acceptsPlan(flag *bool, plans []string, keyword string) bool {
	if flag != nil {
		return *flag
	}
	for _, plan := range plans {
		if strings.Contains(strings.ToLower(plan), keyword) {
			return true
		}
	}
	return false
}

// Location returns the locality of the first address, or the county-wide
// sentinel when no address is present.
func Location(addresses types.AddressList) string {
	addr, ok := addresses.First()
	if !ok || addr.AddressLocality == "" {
		return DefaultLocation
	}
	return addr.AddressLocality
}

// FormatAddress renders the first address as a single display line.
func FormatAddress(addresses types.AddressList) string {
	addr, ok := addresses.First()
	if !ok {
		return NoAddress
	}

	parts := make([]string, 0, 4)
	for _, part := range []string{addr.StreetAddress, addr.AddressLocality, addr.AddressRegion, addr.PostalCode} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return NoAddress
	}
	return strings.Join(parts, ", ")
}

// UniqueLocations returns the sorted distinct locality values prefixed by
// the "All" sentinel, for populating filter controls.
func UniqueLocations(providers []types.Provider) []string {
	seen := make(map[string]struct{})
	for _, p := range providers {
		seen[p.Location] = struct{}{}
	}

	locations := make([]string, 0, len(seen))
	for loc := range seen {
		locations = append(locations, loc)
	}
	sort.Strings(locations)

	return append([]string{AllFilter}, locations...)
}

// UniqueCategories returns the sorted distinct category labels present in
// the collection.
func UniqueCategories(providers []types.Provider) []string {
	seen := make(map[string]struct{})
	for _, p := range providers {
		seen[p.Category] = struct{}{}
	}

	categories := make([]string, 0, len(seen))
	for c := range seen {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return categories
}

// CategoryCounts returns the number of providers per category.
func CategoryCounts(providers []types.Provider) map[string]int {
	counts := make(map[string]int)
	for _, p := range providers {
		counts[p.Category]++
	}
	return counts
}

// LocationCounts returns the number of providers per locality.
func LocationCounts(providers []types.Provider) map[string]int {
	counts := make(map[string]int)
	for _, p := range providers {
		counts[p.Location]++
	}
	return counts
}

// InsurancePlans returns the sorted distinct insurance plan names accepted
// across the collection.
func InsurancePlans(providers []types.Provider) []string {
	seen := make(map[string]struct{})
	for _, p := range providers {
		for _, plan := range p.AcceptsInsurance {
			seen[plan] = struct{}{}
		}
	}

	plans := make([]string, 0, len(seen))
	for plan := range seen {
		plans = append(plans, plan)
	}
	sort.Strings(plans)
	return plans
}
