// Package taxonomy translates between the crime-type identifiers sent by the
// mobile reporting client, their canonical display names, crime categories,
// and the units responsible for them.
//
// The table is static data: it is built once and never mutated, so a Mapper
// is safe for any number of concurrent readers.
package taxonomy

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/Pinoccchio/LawbotWeb-sub000/internal/domain"
)

// Mapping is one row of the crime taxonomy.
type Mapping struct {
	ClientKey   string
	DisplayName string
	Category    domain.CrimeCategory
	Unit        string
}

// Mapper answers case-insensitive lookups against the taxonomy.
type Mapper struct {
	byKey     map[string]*Mapping
	byDisplay map[string]*Mapping
	units     map[domain.CrimeCategory]string
	entries   []Mapping
}

var defaultMapper = sync.OnceValue(func() *Mapper {
	m, err := New(defaultMappings())
	if err != nil {
		panic(fmt.Sprintf("taxonomy: invalid static table: %v", err))
	}
	return m
})

// Default returns the mapper built from the static table shipped with the binary.
func Default() *Mapper {
	return defaultMapper()
}

// New builds a Mapper from mappings. It rejects empty fields, invalid
// categories, duplicate keys or display names, a key that equals another
// row's display name, and categories bound to more than one unit.
func New(mappings []Mapping) (*Mapper, error) {
	m := &Mapper{
		byKey:     make(map[string]*Mapping, len(mappings)),
		byDisplay: make(map[string]*Mapping, len(mappings)),
		units:     make(map[domain.CrimeCategory]string),
		entries:   make([]Mapping, len(mappings)),
	}
	copy(m.entries, mappings)

	for i := range m.entries {
		e := &m.entries[i]
		key := domain.NormalizeText(e.ClientKey)
		display := domain.NormalizeText(e.DisplayName)

		switch {
		case key == "":
			return nil, fmt.Errorf("row %d: empty client key", i)
		case display == "":
			return nil, fmt.Errorf("row %d (%s): empty display name", i, e.ClientKey)
		case !e.Category.IsValid():
			return nil, fmt.Errorf("row %d (%s): invalid category %q", i, e.ClientKey, e.Category)
		case strings.TrimSpace(e.Unit) == "":
			return nil, fmt.Errorf("row %d (%s): empty unit", i, e.ClientKey)
		}

		if _, dup := m.byKey[key]; dup {
			return nil, fmt.Errorf("duplicate client key %q", e.ClientKey)
		}
		if _, dup := m.byDisplay[display]; dup {
			return nil, fmt.Errorf("duplicate display name %q", e.DisplayName)
		}
		if unit, ok := m.units[e.Category]; ok && unit != e.Unit {
			return nil, fmt.Errorf("category %q bound to both %q and %q", e.Category, unit, e.Unit)
		}

		m.byKey[key] = e
		m.byDisplay[display] = e
		m.units[e.Category] = e.Unit
	}

	// A key that reads as another row's display name would make mixed lookups ambiguous.
	for key, e := range m.byKey {
		if other, ok := m.byDisplay[key]; ok && other != e {
			return nil, fmt.Errorf("client key %q collides with display name of %q", e.ClientKey, other.ClientKey)
		}
	}

	return m, nil
}

// DisplayName translates a client key into its display name.
func (m *Mapper) DisplayName(clientKey string) (string, bool) {
	e, ok := m.byKey[domain.NormalizeText(clientKey)]
	if !ok {
		return "", false
	}
	return e.DisplayName, true
}

// ClientKey translates a display name into its client key.
func (m *Mapper) ClientKey(displayName string) (string, bool) {
	e, ok := m.byDisplay[domain.NormalizeText(displayName)]
	if !ok {
		return "", false
	}
	return e.ClientKey, true
}

// Lookup resolves either representation to its mapping row.
// Client keys are tried before display names.
func (m *Mapper) Lookup(value string) (Mapping, bool) {
	norm := domain.NormalizeText(value)
	if norm == "" {
		return Mapping{}, false
	}
	if e, ok := m.byKey[norm]; ok {
		return *e, true
	}
	if e, ok := m.byDisplay[norm]; ok {
		return *e, true
	}
	return Mapping{}, false
}

// Category returns the crime category of a client key or display name.
func (m *Mapper) Category(value string) (domain.CrimeCategory, bool) {
	e, ok := m.Lookup(value)
	return e.Category, ok
}

// Unit returns the responsible unit name of a client key or display name.
func (m *Mapper) Unit(value string) (string, bool) {
	e, ok := m.Lookup(value)
	return e.Unit, ok
}

// Normalize returns the canonical display name for either representation.
// It is idempotent: normalizing a display name returns it unchanged.
func (m *Mapper) Normalize(value string) (string, bool) {
	e, ok := m.Lookup(value)
	return e.DisplayName, ok
}

// FindCandidates returns the rows whose key or display name contains fragment,
// or is contained in it, ignoring case. The second direction lets a free-text
// value such as "phishing email" still surface "Phishing". Results follow
// table order.
func (m *Mapper) FindCandidates(fragment string) []Mapping {
	norm := domain.NormalizeText(fragment)
	if norm == "" {
		return nil
	}

	var out []Mapping
	for _, e := range m.entries {
		key := domain.NormalizeText(e.ClientKey)
		display := domain.NormalizeText(e.DisplayName)
		if strings.Contains(key, norm) || strings.Contains(display, norm) ||
			strings.Contains(norm, key) || strings.Contains(norm, display) {
			out = append(out, e)
		}
	}
	return out
}

// UnitForCategory returns the unit bound to category.
func (m *Mapper) UnitForCategory(category domain.CrimeCategory) (string, bool) {
	unit, ok := m.units[category]
	return unit, ok
}

// Categories returns every category present in the table, sorted.
func (m *Mapper) Categories() []domain.CrimeCategory {
	out := make([]domain.CrimeCategory, 0, len(m.units))
	for c := range m.units {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// DisplayNamesByCategory returns the display names of one category in table order.
func (m *Mapper) DisplayNamesByCategory(category domain.CrimeCategory) []string {
	var out []string
	for _, e := range m.entries {
		if e.Category == category {
			out = append(out, e.DisplayName)
		}
	}
	return out
}

// Mappings returns a copy of all rows in table order.
func (m *Mapper) Mappings() []Mapping {
	out := make([]Mapping, len(m.entries))
	copy(out, m.entries)
	return out
}

// Len returns the number of rows.
func (m *Mapper) Len() int { return len(m.entries) }

// Units returns one unit per category, listing the display names of the
// category's crime types in table order. Units are sorted by category.
func (m *Mapper) Units() []domain.Unit {
	categories := m.Categories()
	out := make([]domain.Unit, 0, len(categories))
	for _, c := range categories {
		out = append(out, domain.Unit{
			Name:       m.units[c],
			Category:   c,
			CrimeTypes: m.DisplayNamesByCategory(c),
		})
	}
	return out
}
