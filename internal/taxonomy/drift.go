package taxonomy

import "github.com/Pinoccchio/LawbotWeb-sub000/internal/domain"

// UnitDrift is a disagreement between a stored unit and the taxonomy for one
// category.
type UnitDrift struct {
	Category domain.CrimeCategory
	// Unit is the unit name the taxonomy expects.
	Unit string
	// Missing is set when no stored unit has the category.
	Missing bool
	// StoredName is the stored unit's name when it differs from Unit.
	StoredName string
	// Uncovered lists display names the stored unit does not handle.
	// Availability lookups filter on a unit's crime types, so officers of
	// that unit never show up for these.
	Uncovered []string
}

// Drift compares stored units with the taxonomy and returns one entry per
// category that disagrees, sorted by category. Stored units for categories
// the taxonomy does not know are ignored.
func (m *Mapper) Drift(stored []domain.Unit) []UnitDrift {
	byCategory := make(map[domain.CrimeCategory]*domain.Unit, len(stored))
	for i := range stored {
		byCategory[stored[i].Category] = &stored[i]
	}

	found := make(map[domain.CrimeCategory]*UnitDrift)
	get := func(c domain.CrimeCategory) *UnitDrift {
		d, ok := found[c]
		if !ok {
			d = &UnitDrift{Category: c, Unit: m.units[c]}
			found[c] = d
		}
		return d
	}

	for _, row := range m.Mappings() {
		u, ok := byCategory[row.Category]
		switch {
		case !ok:
			get(row.Category).Missing = true
		case !u.HandlesCrimeType(row.DisplayName):
			d := get(row.Category)
			d.Uncovered = append(d.Uncovered, row.DisplayName)
		}
		if ok && u.Name != m.units[row.Category] {
			get(row.Category).StoredName = u.Name
		}
	}

	var out []UnitDrift
	for _, c := range m.Categories() {
		if d, ok := found[c]; ok {
			out = append(out, *d)
		}
	}
	return out
}
