// Package types provides type definitions for structured data used throughout the care-finder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
)

// Address represents a schema.org PostalAddress. All fields are optional
// in source data; formatting fallbacks are applied downstream.
type Address struct {
	Type            string `json:"@type,omitempty"`
	StreetAddress   string `json:"streetAddress,omitempty"`
	AddressLocality string `json:"addressLocality,omitempty"`
	AddressRegion   string `json:"addressRegion,omitempty"`
	PostalCode      string `json:"postalCode,omitempty"`
}

// Organization represents a parent organization reference.
type Organization struct {
	Type string `json:"@type,omitempty"`
	Name string `json:"name"`
}

// Service represents a named point-of-service entry (hasPOS).
type Service struct {
	Type        string `json:"@type,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// RawProvider represents a provider record as it appears in the source
// snapshot or store. Source documents are loosely shaped: address may be a
// single object or an array, telephone a string or an array. The flexible
// list types absorb both shapes.
type RawProvider struct {
	Type               string        `json:"@type"`
	Name               string        `json:"name"`
	Address            AddressList   `json:"address,omitempty"`
	Telephone          StringList    `json:"telephone,omitempty"`
	ParentOrganization *Organization `json:"parentOrganization,omitempty"`
	MedicalSpecialty   []string      `json:"medicalSpecialty,omitempty"`
	ServiceType        []string      `json:"serviceType,omitempty"`
	HasPOS             []Service     `json:"hasPOS,omitempty"`
	SameAs             string        `json:"sameAs,omitempty"`
	AcceptsInsurance   []string      `json:"acceptsInsurance,omitempty"`
	Network            string        `json:"network,omitempty"`
	AcceptsMedicaid    *bool         `json:"acceptsMedicaid,omitempty"`
	AcceptsMedicare    *bool         `json:"acceptsMedicare,omitempty"`
}

// Snapshot represents the top-level snapshot document (schema.org
// MedicalOrganization list) that carries the provider collection.
type Snapshot struct {
	Context     string        `json:"@context,omitempty"`
	Type        string        `json:"@type,omitempty"`
	Name        string        `json:"name,omitempty"`
	Description string        `json:"description,omitempty"`
	URL         string        `json:"url,omitempty"`
	Providers   []RawProvider `json:"containsPlace"`
}

// Provider is the normalized, single-valued view of a RawProvider consumed
// by the matcher, the intake dialogue and every presentation surface.
// Category is always exactly one label from the taxonomy.
type Provider struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Type             string   `json:"type"`
	Category         string   `json:"category"`
	Location         string   `json:"location"`
	Address          string   `json:"address"`
	Phone            string   `json:"phone"`
	Specialties      []string `json:"specialties"`
	Services         []string `json:"services"`
	Website          string   `json:"website,omitempty"`
	Organization     string   `json:"organization,omitempty"`
	AcceptsInsurance []string `json:"acceptsInsurance,omitempty"`
	Network          string   `json:"network,omitempty"`
	AcceptsMedicaid  bool     `json:"acceptsMedicaid"`
	AcceptsMedicare  bool     `json:"acceptsMedicare"`
}

// AddressList decodes either a single address object or an array of them.
type AddressList []Address

// UnmarshalJSON implements flexible decoding for AddressList.
func (a *AddressList) UnmarshalJSON(data []byte) error {
	var many []Address
	if err := json.Unmarshal(data, &many); err == nil {
		*a = many
		return nil
	}

	var one Address
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	*a = AddressList{one}
	return nil
}

// First returns the primary address, or false when the list is empty.
func (a AddressList) First() (Address, bool) {
	if len(a) == 0 {
		return Address{}, false
	}
	return a[0], true
}

// StringList decodes either a single string or an array of strings.
type StringList []string

// UnmarshalJSON implements flexible decoding for StringList.
func (s *StringList) UnmarshalJSON(data []byte) error {
	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		*s = many
		return nil
	}

	var one string
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	*s = StringList{one}
	return nil
}

// First returns the primary value, or the empty string when the list is empty.
func (s StringList) First() string {
	if len(s) == 0 {
		return ""
	}
	return s[0]
}
