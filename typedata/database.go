// Copyright (C) 2026 The EVE Eye
// SPDX-License-Identifier: GPL-3.0-or-later

package typedata

import "github.com/TheEveEye/DogmaEngine/core"

// Adapters is an immutable bundle of hand-written patches applied at
// database-build time, replacing the source engine's process-wide
// "register a custom effect/type adapter" globals (spec.md §9 "Global
// mutable state"). There is no runtime registration: an Adapters value
// is composed once by the caller and passed into Build.
type Adapters struct {
	// Effects patches a built Effect before it is stored, keyed by
	// effect id. Used for effects whose behavior is hand-coded rather
	// than data-driven (BuildCustom).
	Effects map[core.EffectID]func(*Effect) *Effect

	// Autocharges supplies the AutochargeFunc for effects that
	// materialize an autocharge, keyed by effect id.
	Autocharges map[core.EffectID]AutochargeFunc
}

// Database is the complete, immutable set of records the calculator,
// affection register, and effect-status resolver read from. It is built
// once per game-database load and never mutated afterward.
type Database struct {
	Types        map[core.TypeID]*Type
	Attributes   map[core.AttrID]*AttributeMeta
	Effects      map[core.EffectID]*Effect
	WarfareBuffs map[WarfareTemplateID]*WarfareBuffTemplate
	Version      string
}

// Type looks up a type record by id.
func (d *Database) Type(id core.TypeID) (*Type, bool) {
	if d == nil {
		return nil, false
	}
	t, ok := d.Types[id]
	return t, ok
}

// Attribute looks up attribute metadata by id.
func (d *Database) Attribute(id core.AttrID) (*AttributeMeta, bool) {
	if d == nil {
		return nil, false
	}
	a, ok := d.Attributes[id]
	return a, ok
}

// Effect looks up an effect record by id.
func (d *Database) Effect(id core.EffectID) (*Effect, bool) {
	if d == nil {
		return nil, false
	}
	e, ok := d.Effects[id]
	return e, ok
}

// WarfareBuff looks up a warfare-buff template by id.
func (d *Database) WarfareBuff(id WarfareTemplateID) (*WarfareBuffTemplate, bool) {
	if d == nil {
		return nil, false
	}
	b, ok := d.WarfareBuffs[id]
	return b, ok
}
