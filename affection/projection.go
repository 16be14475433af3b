// Copyright (C) 2026 The EVE Eye
// SPDX-License-Identifier: GPL-3.0-or-later

package affection

import "github.com/TheEveEye/DogmaEngine/core"

// Projections is the projection register (C5): explicit links between
// items in the fit used to resolve affectee_domain ∈ {target, other}
// (spec.md §4.5). Unlike self/ship/character, these domains have no
// structural resolution — they only exist where the host fit has
// recorded an explicit projection.
type Projections struct {
	links map[core.ItemID]map[core.ItemID]bool
}

// NewProjections builds an empty projection register.
func NewProjections() *Projections {
	return &Projections{links: make(map[core.ItemID]map[core.ItemID]bool)}
}

// Link records that source projects onto target (e.g. a module on one
// ship targeting a subsystem on another). Idempotent.
func (p *Projections) Link(source, target core.ItemID) {
	if p.links[source] == nil {
		p.links[source] = make(map[core.ItemID]bool)
	}
	p.links[source][target] = true
}

// Unlink removes a single projection link.
func (p *Projections) Unlink(source, target core.ItemID) {
	if set, ok := p.links[source]; ok {
		delete(set, target)
		if len(set) == 0 {
			delete(p.links, source)
		}
	}
}

// UnlinkAll removes every link whose source is item (used when item
// stops projecting, e.g. loses its target).
func (p *Projections) UnlinkAll(source core.ItemID) {
	delete(p.links, source)
}

// TargetsOf returns the ids source currently projects onto.
func (p *Projections) TargetsOf(source core.ItemID) []core.ItemID {
	set := p.links[source]
	if len(set) == 0 {
		return nil
	}
	out := make([]core.ItemID, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	return out
}
