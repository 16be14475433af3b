// Copyright (C) 2026 The EVE Eye
// SPDX-License-Identifier: GPL-3.0-or-later

// Package calc implements the per-item attribute calculator (C6):
// base/modified value resolution through the fixed 9-operator pipeline,
// stacking-penalty diminishing returns, cap clamping, override support,
// and a memoizing cache with explicit invalidation (spec.md §4.6).
package calc

import "github.com/TheEveEye/DogmaEngine/core"

// Contribution is one running modifier's effect on a particular
// (item, attribute) pair, as resolved by the affection register: an
// operator and the operand value read off the affector's attribute.
type Contribution struct {
	Operator core.Operator
	Operand  float64
}

// ModifierSource supplies the live set of contributions affecting one
// item's attribute. It is implemented by package affection; calc
// depends only on this interface so that calc does not import affection
// (which imports calc for attribute maps), avoiding a cycle.
type ModifierSource interface {
	Contributions(item core.ItemID, attrID core.AttrID) []Contribution
}

// NoModifiers is a ModifierSource with no affectors, useful for tests
// and for attribute maps not yet wired into a fit's affection register.
type NoModifiers struct{}

// Contributions implements ModifierSource.
func (NoModifiers) Contributions(core.ItemID, core.AttrID) []Contribution { return nil }
