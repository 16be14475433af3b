// Copyright (C) 2026 The EVE Eye
// SPDX-License-Identifier: GPL-3.0-or-later

// Package item implements the mutable runtime Item entity (spec.md §3
// "Item", §9 "Polymorphism"): a closed variant set distinguished by
// three tagged properties rather than open dispatch.
package item

import "github.com/TheEveEye/DogmaEngine/core"

// Kind enumerates the closed variant set of item roles in a fit. Behavior
// differences between kinds reduce to the three tagged properties
// ModifierDomain, OwnerModifiable, and (via Item.SolarSystemCarrier)
// whether the item itself is a carrier root.
type Kind int

const (
	KindShip Kind = iota
	KindCharacter
	KindModuleHigh
	KindModuleMid
	KindModuleLow
	KindRig
	KindSubsystem
	KindDrone
	KindFighterSquad
	KindImplant
	KindBooster
	KindSkill
	KindCharge
	KindAutocharge
)

// String renders the kind for logs.
func (k Kind) String() string {
	switch k {
	case KindShip:
		return "ship"
	case KindCharacter:
		return "character"
	case KindModuleHigh:
		return "module_high"
	case KindModuleMid:
		return "module_mid"
	case KindModuleLow:
		return "module_low"
	case KindRig:
		return "rig"
	case KindSubsystem:
		return "subsystem"
	case KindDrone:
		return "drone"
	case KindFighterSquad:
		return "fighter_squad"
	case KindImplant:
		return "implant"
	case KindBooster:
		return "booster"
	case KindSkill:
		return "skill"
	case KindCharge:
		return "charge"
	case KindAutocharge:
		return "autocharge"
	default:
		return "unknown_kind"
	}
}

// ModifierDomain reports which contextual domain role this kind fills
// when another item's modifier resolves affectee_domain == ship or
// character (spec.md §4.4 "Domain resolution"). Every other kind
// resolves to itself under "self" and fills no external role.
func (k Kind) ModifierDomain() (core.Domain, bool) {
	switch k {
	case KindShip:
		return core.DomainShip, true
	case KindCharacter:
		return core.DomainCharacter, true
	default:
		return core.DomainSelf, true
	}
}

// OwnerModifiable reports whether this kind belongs to the
// owner_skillrq filter's item set: things owned by the character rather
// than reached through the ship subtree (spec.md §4.4 "Owner-scope").
func (k Kind) OwnerModifiable() bool {
	switch k {
	case KindDrone, KindFighterSquad, KindSkill, KindBooster, KindImplant:
		return true
	default:
		return false
	}
}

// IsCarrierRoot reports whether this kind can itself act as a solar
// system carrier (spec.md "Carrier" in the glossary) rather than
// deferring to an ancestor.
func (k Kind) IsCarrierRoot() bool {
	return k == KindShip || k == KindCharacter
}
