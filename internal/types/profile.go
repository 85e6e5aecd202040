package types

// UserProfile represents the locally persisted user preference set: saved
// insurance plan selections plus favorite provider ids. Single-user,
// single-device state; reads and writes are last-write-wins.
type UserProfile struct {
	SelectedInsurancePlans []string `json:"selected_insurance_plans"`
	AcceptsMedicaid        bool     `json:"accepts_medicaid"`
	AcceptsMedicare        bool     `json:"accepts_medicare"`
	Favorites              []string `json:"favorites"`
}

// IsFavorite reports whether the given provider id is in the favorites list.
func (p *UserProfile) IsFavorite(providerID string) bool {
	for _, id := range p.Favorites {
		if id == providerID {
			return true
		}
	}
	return false
}

// ToggleFavorite adds the provider id to the favorites list if absent and
// removes it if present. Returns true when the id is a favorite afterwards.
func (p *UserProfile) ToggleFavorite(providerID string) bool {
	for i, id := range p.Favorites {
		if id == providerID {
			p.Favorites = append(p.Favorites[:i], p.Favorites[i+1:]...)
			return false
		}
	}
	p.Favorites = append(p.Favorites, providerID)
	return true
}
