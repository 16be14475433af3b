// Copyright (C) 2026 The EVE Eye
// SPDX-License-Identifier: GPL-3.0-or-later

package typedata

import "github.com/TheEveEye/DogmaEngine/core"

// WarfareTemplateID identifies a warfare-buff template (C7).
type WarfareTemplateID int64

// BuffModifierTemplate is one modifier line inside a warfare-buff
// template. It mirrors Modifier but omits AffectorAttrID: the template's
// BuffValueAttrID supplies the operand directly from the affector item.
type BuffModifierTemplate struct {
	AffecteeFilter         core.AffecteeFilter
	AffecteeDomain         core.Domain
	AffecteeFilterExtraArg *ExtraArg
	AffecteeAttrID         core.AttrID
	Operator               core.Operator
}

// WarfareBuffTemplate is the immutable record an effect's
// WarfareTemplateID points to. At run time (package warfare) it expands
// into concrete Modifier values bound to the buff value read off the
// affector's BuffValueAttrID (spec.md §4.7).
type WarfareBuffTemplate struct {
	ID              WarfareTemplateID
	BuffValueAttrID core.AttrID
	Modifiers       []BuffModifierTemplate
}

// Expand binds this template's modifier templates to a concrete
// AffectorAttrID, producing static Modifier values the affection
// register can index exactly like any other effect's modifiers.
func (t *WarfareBuffTemplate) Expand() []Modifier {
	if t == nil {
		return nil
	}
	out := make([]Modifier, 0, len(t.Modifiers))
	for _, m := range t.Modifiers {
		out = append(out, Modifier{
			AffecteeFilter:         m.AffecteeFilter,
			AffecteeDomain:         m.AffecteeDomain,
			AffecteeFilterExtraArg: m.AffecteeFilterExtraArg,
			AffecteeAttrID:         m.AffecteeAttrID,
			Operator:               m.Operator,
			AggregateMode:          AggregateStack,
			AffectorAttrID:         t.BuffValueAttrID,
		})
	}
	return out
}
