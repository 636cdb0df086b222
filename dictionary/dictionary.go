// Package dictionary implements component E: the read-mostly name<->unit
// tables, a runtime-registered user overlay (input-only, output-only, or
// both), and domain-scoped shadowing tables: maps guarded by a
// sync.RWMutex, insertion gated by an atomic.Bool, the same shape as
// commodity.Registry.
package dictionary

import (
	"strings"
	"sync"
	"sync/atomic"

	"github.com/vantara-labs/units/currency"
	"github.com/vantara-labs/units/unit"
)

// Domain is the process-wide tag selecting a shadowing table: e.g.
// in the UCUM domain "B" means bel, in the cooking domain "T" means
// tablespoon.
type Domain int32

const (
	DomainNone Domain = iota
	DomainUCUM
	DomainCooking
	DomainSurveying
)

// entry pairs a unit with which direction(s) of lookup it participates in.
type entry struct {
	u          unit.Precise
	inputOnly  bool
	outputOnly bool
}

// Dictionary is a name<->unit table with a consulted-first user overlay and
// domain shadowing. The zero value is not usable; construct with New.
type Dictionary struct {
	mu sync.RWMutex

	builtinByName map[string]entry
	builtinByUnit map[unit.Fast]string

	overlayByName map[string]entry
	overlayByUnit map[unit.Fast]string

	domains map[Domain]map[string]entry

	activeDomain atomic.Int32
	userEnabled  atomic.Bool
}

// New builds a Dictionary seeded with the built-in table.
func New() *Dictionary {
	d := &Dictionary{
		builtinByName: make(map[string]entry, len(builtinTable)),
		builtinByUnit: make(map[unit.Fast]string, len(builtinTable)),
		overlayByName: make(map[string]entry),
		overlayByUnit: make(map[unit.Fast]string),
		domains:       buildDomainTables(),
	}
	d.userEnabled.Store(true)
	for name, u := range builtinTable {
		d.builtinByName[name] = entry{u: u}
		key := u.ToFast()
		if _, exists := d.builtinByUnit[key]; !exists {
			d.builtinByUnit[key] = name
		}
	}
	// Word forms and currency codes/symbols resolve on input only: they
	// share Fast keys with the short symbols above, which stay the
	// preferred serialized names.
	for name, u := range builtinInputOnly {
		if _, exists := d.builtinByName[name]; !exists {
			d.builtinByName[name] = entry{u: u, inputOnly: true}
		}
	}
	for _, c := range currency.All() {
		cu := c.Unit()
		for _, name := range []string{c.Code, c.Symbol} {
			if _, exists := d.builtinByName[name]; !exists {
				d.builtinByName[name] = entry{u: cu, inputOnly: true}
			}
		}
	}
	return d
}

// EnableUserDefinedUnits / DisableUserDefinedUnits gate whether
// AddUserDefinedUnit may insert new overlay entries. Existing entries and
// all lookups are unaffected.
func (d *Dictionary) EnableUserDefinedUnits()  { d.userEnabled.Store(true) }
func (d *Dictionary) DisableUserDefinedUnits() { d.userEnabled.Store(false) }

// SetDomain sets the active domain and returns the previous one, matching
// set_units_domain(tag) -> previous_tag.
func (d *Dictionary) SetDomain(tag Domain) Domain {
	prev := Domain(d.activeDomain.Swap(int32(tag)))
	return prev
}

// Domain returns the currently active domain.
func (d *Dictionary) Domain() Domain {
	return Domain(d.activeDomain.Load())
}

// AddUserDefinedUnit registers name in the overlay. direction controls
// whether the entry participates in ByName lookups (input), ByUnit
// lookups (output), or both (the zero value of Direction).
func (d *Dictionary) AddUserDefinedUnit(name string, u unit.Precise, dir Direction) error {
	if !d.userEnabled.Load() {
		return ErrUserUnitsDisabled
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	e := entry{u: u, inputOnly: dir == InputOnly, outputOnly: dir == OutputOnly}
	if dir != OutputOnly {
		d.overlayByName[name] = e
	}
	if dir != InputOnly {
		d.overlayByUnit[u.ToFast()] = name
	}
	return nil
}

// RemoveUserDefinedUnit deletes name from the overlay, in both directions.
func (d *Dictionary) RemoveUserDefinedUnit(name string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.overlayByName, name)
	for key, n := range d.overlayByUnit {
		if n == name {
			delete(d.overlayByUnit, key)
		}
	}
}

// ClearUserDefinedUnits empties the overlay entirely.
func (d *Dictionary) ClearUserDefinedUnits() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.overlayByName = make(map[string]entry)
	d.overlayByUnit = make(map[unit.Fast]string)
}

// ByName resolves name to a unit: overlay first, then the active domain's
// shadowing table, then the built-in table. The overlay always
// wins, and a non-default domain shadows (not merges with) the default
// table for the names it defines.
func (d *Dictionary) ByName(name string) (unit.Precise, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if e, ok := d.overlayByName[name]; ok && !e.outputOnly {
		return e.u, true
	}
	if dom := Domain(d.activeDomain.Load()); dom != DomainNone {
		if table, ok := d.domains[dom]; ok {
			if e, ok := table[name]; ok {
				return e.u, true
			}
		}
	}
	if e, ok := d.builtinByName[name]; ok {
		return e.u, true
	}
	// Case-insensitive UCUM-style fallback.
	if e, ok := d.builtinByName[strings.ToLower(name)]; ok {
		return e.u, true
	}
	return unit.Precise{}, false
}

// ByUnit resolves a Fast unit key to its preferred serialized name: overlay
// first, then built-in.
func (d *Dictionary) ByUnit(u unit.Fast) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if name, ok := d.overlayByUnit[u]; ok {
		return name, true
	}
	if name, ok := d.builtinByUnit[u]; ok {
		return name, true
	}
	return "", false
}

// Direction controls which lookup table(s) an overlay registration
// participates in.
type Direction int

const (
	Bidirectional Direction = iota
	InputOnly
	OutputOnly
)
