// Copyright (C) 2026 The EVE Eye
// SPDX-License-Identifier: GPL-3.0-or-later

package item

import (
	"github.com/TheEveEye/DogmaEngine/calc"
	"github.com/TheEveEye/DogmaEngine/core"
	"github.com/TheEveEye/DogmaEngine/typedata"
)

// Item is the mutable runtime entity spec.md §3 describes: a type
// reference, an optional resolved Type (nil iff unloaded), a non-owning
// container back-pointer, a discrete state, the set of currently
// running effects with per-effect run-mode overrides, an owned
// attribute map, and any materialized autocharges.
type Item struct {
	id     core.ItemID
	kind   Kind
	typeID core.TypeID

	typ       *typedata.Type
	container *Item

	state          core.State
	runningEffects map[core.EffectID]bool
	runModes       map[core.EffectID]core.RunMode

	attrs *calc.AttributeMap

	autocharges map[core.EffectID]*Item
}

var _ core.Entity = (*Item)(nil)
var _ typedata.ItemView = (*Item)(nil)

// New constructs an unloaded item. It starts in StateGhost: the source
// state for an item that exists in the fit but has no resolved type yet
// (spec.md §3 "An item is loaded iff type ≠ null").
func New(id core.ItemID, kind Kind, typeID core.TypeID) *Item {
	return &Item{
		id:             id,
		kind:           kind,
		typeID:         typeID,
		state:          core.StateGhost,
		runningEffects: make(map[core.EffectID]bool),
		runModes:       make(map[core.EffectID]core.RunMode),
		autocharges:    make(map[core.EffectID]*Item),
	}
}

// ID implements core.Entity.
func (it *Item) ID() core.ItemID { return it.id }

// EntityType implements core.Entity.
func (it *Item) EntityType() string { return it.kind.String() }

// TypeID implements typedata.ItemView.
func (it *Item) TypeID() core.TypeID { return it.typeID }

// Attr implements typedata.ItemView by reading the item's own modified
// attribute value. Unloaded items and unknown attributes report false.
func (it *Item) Attr(attrID core.AttrID) (float64, bool) {
	if it.attrs == nil {
		return 0, false
	}
	v, err := it.attrs.Get(attrID)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Kind returns the item's closed variant tag.
func (it *Item) Kind() Kind { return it.kind }

// Loaded reports whether the item has a resolved type.
func (it *Item) Loaded() bool { return it.typ != nil }

// Type returns the resolved type, or nil if unloaded.
func (it *Item) Type() *typedata.Type { return it.typ }

// Attrs returns the item's attribute map, or nil if unloaded.
func (it *Item) Attrs() *calc.AttributeMap { return it.attrs }

// Load resolves typ against db and attaches a fresh attribute map
// reading live modifiers from source. Calling Load on an already-loaded
// item replaces its type and discards cached attribute state — callers
// should Unload first if that is not the intent.
func (it *Item) Load(typ *typedata.Type, db *typedata.Database, source calc.ModifierSource) {
	it.typ = typ
	it.attrs = calc.NewAttributeMap(it.id, typ, db, source)
	if it.state == core.StateGhost {
		it.state = core.StateOffline
	}
}

// PendingAutocharges reports the (effect_id -> type_id) pairs this
// item's effects materialize as autocharges, for the fit to construct
// and attach via SetAutocharge once ids are allocated (spec.md §3
// "Autocharge": "created during its parent's load").
func (it *Item) PendingAutocharges() map[core.EffectID]core.TypeID {
	if it.typ == nil {
		return nil
	}
	pending := make(map[core.EffectID]core.TypeID)
	for effectID, eff := range it.typ.Effects {
		if !eff.HasAutocharge() {
			continue
		}
		if typeID, ok := eff.AutochargeTypeID(it); ok {
			pending[effectID] = typeID
		}
	}
	return pending
}

// SetAutocharge attaches a constructed autocharge item for effectID.
func (it *Item) SetAutocharge(effectID core.EffectID, charge *Item) {
	it.autocharges[effectID] = charge
}

// Autocharge returns the autocharge attached for effectID, if any.
func (it *Item) Autocharge(effectID core.EffectID) (*Item, bool) {
	c, ok := it.autocharges[effectID]
	return c, ok
}

// Autocharges returns every attached autocharge, keyed by effect id.
func (it *Item) Autocharges() map[core.EffectID]*Item {
	return it.autocharges
}

// Unload clears the resolved type, attribute map, running-effect set,
// and autocharges, returning the item to StateGhost.
func (it *Item) Unload() {
	it.typ = nil
	it.attrs = nil
	it.runningEffects = make(map[core.EffectID]bool)
	it.autocharges = make(map[core.EffectID]*Item)
	it.state = core.StateGhost
}

// State returns the item's current discrete state.
func (it *Item) State() core.State { return it.state }

// SetState sets the item's discrete state directly. Higher layers
// (package fit) are responsible for publishing the
// StatesActivated/StatesDeactivated messages this transition implies.
func (it *Item) SetState(s core.State) { it.state = s }

// IsRunning reports whether effectID is currently in the item's running
// set.
func (it *Item) IsRunning(effectID core.EffectID) bool { return it.runningEffects[effectID] }

// SetRunning adds or removes effectID from the running set.
func (it *Item) SetRunning(effectID core.EffectID, running bool) {
	if running {
		it.runningEffects[effectID] = true
	} else {
		delete(it.runningEffects, effectID)
	}
}

// RunningEffectIDs returns a snapshot of the currently running effect ids.
func (it *Item) RunningEffectIDs() []core.EffectID {
	ids := make([]core.EffectID, 0, len(it.runningEffects))
	for id := range it.runningEffects {
		ids = append(ids, id)
	}
	return ids
}

// RunMode returns effectID's run-mode override, defaulting to
// full_compliance (spec.md §3 "default is full_compliance").
func (it *Item) RunMode(effectID core.EffectID) core.RunMode {
	if mode, ok := it.runModes[effectID]; ok {
		return mode
	}
	return core.RunModeFullCompliance
}

// SetRunMode sets effectID's run-mode override.
func (it *Item) SetRunMode(effectID core.EffectID, mode core.RunMode) {
	it.runModes[effectID] = mode
}

// Container returns the non-owning back-pointer to the item this one is
// fitted into (e.g. a module's ship), or nil at the root of the fit.
func (it *Item) Container() *Item { return it.container }

// SetContainer sets the container back-pointer. The Fit is responsible
// for keeping this consistent with its own ownership structures; Item
// itself does not own containment.
func (it *Item) SetContainer(c *Item) { it.container = c }

// ModifierDomain reports the domain role this item fills for other
// items' ship/character domain resolution (spec.md §4.4).
func (it *Item) ModifierDomain() (core.Domain, bool) { return it.kind.ModifierDomain() }

// OwnerModifiable reports whether this item is reached by the
// owner_skillrq filter (spec.md §4.4 "Owner-scope").
func (it *Item) OwnerModifiable() bool { return it.kind.OwnerModifiable() }

// SolarSystemCarrier walks the container chain up to the nearest ship or
// character item — the root used to resolve ship/character domains
// (spec.md glossary "Carrier"). An item with no ship/character ancestor
// and no container is its own standalone carrier.
func (it *Item) SolarSystemCarrier() *Item {
	cur := it
	for cur != nil {
		if cur.kind.IsCarrierRoot() {
			return cur
		}
		if cur.container == nil {
			return cur
		}
		cur = cur.container
	}
	return nil
}
