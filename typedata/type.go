// Copyright (C) 2026 The EVE Eye
// SPDX-License-Identifier: GPL-3.0-or-later

// Package typedata holds the immutable, data-driven records the Dogma
// engine computes against: types, attribute metadata, effects, modifiers,
// and warfare-buff templates (spec.md §3, §4.2, C1). Every value in this
// package is built once when the game database loads and never mutated
// again — mutation happens only on the Item entities in package item.
package typedata

import "github.com/TheEveEye/DogmaEngine/core"

// AttributeMeta is the immutable metadata describing one attribute
// definition: whether it has a cap, its default, and how it combines
// under the stacking-penalty rule (spec.md §3).
type AttributeMeta struct {
	AttrID       core.AttrID
	MaxAttrID    *core.AttrID
	DefaultValue *float64
	HighIsGood   bool
	Stackable    bool
}

// AbilityData describes one fighter-squad ability a type exposes.
type AbilityData struct {
	Cooldown       float64
	ChargeQuantity float64 // math.Inf(1) for unlimited charges
}

// Type is the immutable record for one row in the type database: a ship,
// module, charge, skill, drone, implant, booster, or subsystem.
type Type struct {
	ID              core.TypeID
	GroupID         *core.GroupID
	CategoryID      *core.CategoryID
	Attrs           map[core.AttrID]float64
	Effects         map[core.EffectID]*Effect
	DefaultEffectID *core.EffectID
	AbilitiesData   map[core.AbilityID]AbilityData
	RequiredSkills  map[core.SkillTypeID]int
}

// Attr returns the type's base value for attrID, if the type carries one.
func (t *Type) Attr(attrID core.AttrID) (float64, bool) {
	if t == nil {
		return 0, false
	}
	v, ok := t.Attrs[attrID]
	return v, ok
}

// Effect returns the effect record for effectID if the type has it.
func (t *Type) Effect(effectID core.EffectID) (*Effect, bool) {
	if t == nil {
		return nil, false
	}
	e, ok := t.Effects[effectID]
	return e, ok
}

// RequiresSkill returns the level required of skillID for this type to
// be usable, if any (spec.md §4.4 domain_skillrq/owner_skillrq).
func (t *Type) RequiresSkill(skillID core.SkillTypeID) (int, bool) {
	if t == nil {
		return 0, false
	}
	lvl, ok := t.RequiredSkills[skillID]
	return lvl, ok
}

// Ability returns the ability data for abilityID.
func (t *Type) Ability(abilityID core.AbilityID) (AbilityData, bool) {
	if t == nil {
		return AbilityData{}, false
	}
	a, ok := t.AbilitiesData[abilityID]
	return a, ok
}

// ItemView is the minimal read-only surface an Effect's functional hooks
// (get_duration, get_autocharge_type_id) need from a live item, without
// typedata importing package item — the dependency runs the other way
// (item imports typedata for Type/Effect/Modifier records).
type ItemView interface {
	TypeID() core.TypeID
	Attr(attrID core.AttrID) (float64, bool)
}
