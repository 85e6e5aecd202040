// Package taxonomy assigns healthcare providers to a fixed set of category
// labels based on structural type and free-text specialty keywords.
package taxonomy

import (
	"strings"
)

// Category labels. Every provider maps to exactly one of these.
const (
	CategoryHospital        = "Hospital"
	CategoryUrgentCare      = "Urgent Care"
	CategoryEmergency       = "Emergency"
	CategoryMaternity       = "Maternity & Women's Health"
	CategoryENTAllergy      = "ENT & Allergy"
	CategoryCardiology      = "Cardiology & Heart Care"
	CategoryOrthopedics     = "Orthopedics & Bone Care"
	CategoryMentalHealth    = "Mental Health & Behavioral"
	CategoryCancerCare      = "Cancer Care & Oncology"
	CategoryGastro          = "Gastroenterology"
	CategoryNeurology       = "Neurology & Brain Care"
	CategoryPulmonary       = "Pulmonary & Lung Care"
	CategoryDermatology     = "Dermatology & Skin Care"
	CategoryUrology         = "Urology"
	CategoryPediatrics      = "Pediatrics & Child Care"
	CategorySurgery         = "Surgery"
	CategoryImagingLab      = "Imaging & Lab"
	CategoryTherapy         = "Therapy & Rehabilitation"
	CategoryPrimaryCare     = "Primary Care"
	CategoryOtherSpecialist = "Other Specialists"
)

// typeHospital is the structural provider type that short-circuits keyword
// classification entirely.
const typeHospital = "Hospital"

// rule maps a set of substring keywords to a category. Keyword sets are
// intentionally non-exclusive; position in the rules table is the only
// disambiguation mechanism, so the order below is a contract: urgent/acute
// categories outrank broader specialty categories, which outrank the
// general-purpose ones.
type rule struct {
	category string
	keywords []string
}

var rules = []rule{
	{CategoryUrgentCare, []string{"urgent care"}},
	{CategoryEmergency, []string{"emergency"}},
	{CategoryMaternity, []string{"maternity", "obstetrics", "ob", "prenatal", "women"}},
	{CategoryENTAllergy, []string{"ent", "ear", "nose", "throat", "allergy"}},
	{CategoryCardiology, []string{"cardiology", "heart", "cardiac"}},
	{CategoryOrthopedics, []string{"orthopedic", "bone", "joint", "spine"}},
	{CategoryMentalHealth, []string{"mental health", "behavioral health", "psychiatry", "counseling", "addiction"}},
	{CategoryCancerCare, []string{"cancer", "oncology", "hematology", "radiation"}},
	{CategoryGastro, []string{"gastro", "digestive", "gi ", "endoscopy"}},
	{CategoryNeurology, []string{"neurology", "brain", "neurosurgery"}},
	{CategoryPulmonary, []string{"pulmonary", "lung", "respiratory"}},
	{CategoryDermatology, []string{"dermatology", "skin"}},
	{CategoryUrology, []string{"urology", "urological"}},
	{CategoryPediatrics, []string{"pediatric", "child", "baby"}},
	{CategorySurgery, []string{"surgery", "surgical"}},
	{CategoryImagingLab, []string{"imaging", "x-ray", "laboratory", "radiology"}},
	{CategoryTherapy, []string{"therapy", "rehabilitation"}},
	{CategoryPrimaryCare, []string{"primary care", "family medicine", "family practice"}},
}

// Classify assigns a category to a provider from its structural type and
// specialty strings. It is pure and total: every input, including an empty
// specialty list, yields a non-empty category.
//
// A structural type of Hospital wins over any specialty text. Otherwise the
// specialties are lower-cased, concatenated and tested against the rules
// table in order; the first rule with any matching keyword wins. Providers
// matching no rule fall through to Other Specialists.
func Classify(providerType string, specialties []string) string {
	if providerType == typeHospital {
		return CategoryHospital
	}

	haystack := strings.ToLower(strings.Join(specialties, " "))
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(haystack, kw) {
				return r.category
			}
		}
	}

	return CategoryOtherSpecialist
}

// Categories returns the full taxonomy in rule-priority order, with
// Hospital first and the fallback label last.
func Categories() []string {
	out := make([]string, 0, len(rules)+2)
	out = append(out, CategoryHospital)
	for _, r := range rules {
		out = append(out, r.category)
	}
	out = append(out, CategoryOtherSpecialist)
	return out
}

// IsKnown reports whether the given label is part of the taxonomy.
func IsKnown(category string) bool {
	for _, c := range Categories() {
		if c == category {
			return true
		}
	}
	return false
}
