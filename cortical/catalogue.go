// Copyright (c) 2024, The FEAGI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cortical

import "sync"

// Catalogue is the read-only-after-initialization lookup table backing
// the cortical identifier codec. It is built once from the compiled-in
// family tables and may be rebuilt from a runtimecfg override (renaming
// human labels only — see SPEC_FULL.md, C2).
type Catalogue struct {
	sensorByCode map[string]familyEntry
	motorByCode  map[string]familyEntry
	coreByCode   map[string]familyEntry
}

func newCatalogue(sensors, motors, cores []familyEntry) *Catalogue {
	c := &Catalogue{
		sensorByCode: make(map[string]familyEntry, len(sensors)),
		motorByCode:  make(map[string]familyEntry, len(motors)),
		coreByCode:   make(map[string]familyEntry, len(cores)),
	}
	for _, e := range sensors {
		c.sensorByCode[e.Code] = e
	}
	for _, e := range motors {
		c.motorByCode[e.Code] = e
	}
	for _, e := range cores {
		c.coreByCode[e.Code] = e
	}
	return c
}

var (
	defaultCatalogue     *Catalogue
	defaultCatalogueOnce sync.Once
	activeCatalogue      *Catalogue
	activeCatalogueMu    sync.RWMutex
)

func defaultCat() *Catalogue {
	defaultCatalogueOnce.Do(func() {
		defaultCatalogue = newCatalogue(sensorFamilies, motorFamilies, coreIdentifiers)
	})
	return defaultCatalogue
}

func current() *Catalogue {
	activeCatalogueMu.RLock()
	defer activeCatalogueMu.RUnlock()
	if activeCatalogue != nil {
		return activeCatalogue
	}
	return defaultCat()
}

// SetCatalogue installs c as the process-wide active catalogue, used by
// Parse/Emit and the family constructors. Passing nil reverts to the
// compiled-in default. The closed set of codes cannot be changed this
// way (see RenameLabels); this exists for tests and for installing a
// catalogue produced by runtimecfg.
func SetCatalogue(c *Catalogue) {
	activeCatalogueMu.Lock()
	defer activeCatalogueMu.Unlock()
	activeCatalogue = c
}

// DefaultCatalogue returns the compiled-in catalogue, independent of
// whatever has been installed via SetCatalogue.
func DefaultCatalogue() *Catalogue {
	return defaultCat()
}

// RenameLabels returns a copy of the default catalogue with the human
// Name field of each entry overridden per the given map (keyed by wire
// code). Unknown codes in overrides are ignored: this never adds or
// removes a family, it only relabels existing ones (catalogue
// closedness, spec.md §4.1).
func RenameLabels(overrides map[string]string) *Catalogue {
	d := defaultCat()
	clone := func(m map[string]familyEntry) map[string]familyEntry {
		out := make(map[string]familyEntry, len(m))
		for k, v := range m {
			if nm, ok := overrides[k]; ok {
				v.Name = nm
			}
			out[k] = v
		}
		return out
	}
	return &Catalogue{
		sensorByCode: clone(d.sensorByCode),
		motorByCode:  clone(d.motorByCode),
		coreByCode:   clone(d.coreByCode),
	}
}

func (c *Catalogue) sensor(code string) (familyEntry, bool) {
	e, ok := c.sensorByCode[code]
	return e, ok
}

func (c *Catalogue) motor(code string) (familyEntry, bool) {
	e, ok := c.motorByCode[code]
	return e, ok
}

func (c *Catalogue) core(code string) (familyEntry, bool) {
	e, ok := c.coreByCode[code]
	return e, ok
}
