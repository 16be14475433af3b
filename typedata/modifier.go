// Copyright (C) 2026 The EVE Eye
// SPDX-License-Identifier: GPL-3.0-or-later

package typedata

import "github.com/TheEveEye/DogmaEngine/core"

// AggregateMode names how an attribute's affectors combine once selected.
// "stack" runs the stacking-penalty pipeline in spec.md §4.6.1; other
// modes are reserved by the data model for future aggregate behaviors
// the calculator does not yet need to special-case.
type AggregateMode int

const (
	// AggregateStack is the only mode the calculator currently implements.
	AggregateStack AggregateMode = iota
)

// ExtraArg carries a modifier's affectee_filter_extra_arg: a group id, a
// skill type id, or the core.CurrentSelf sentinel. It is untyped at the
// data-model layer because its meaning depends on AffecteeFilter; the
// affection register interprets it.
type ExtraArg int64

// AsGroupID interprets the extra arg as a group id (domain_group filter).
func (a ExtraArg) AsGroupID() core.GroupID { return core.GroupID(a) }

// AsSkillTypeID interprets the extra arg as a skill type id
// (domain_skillrq/owner_skillrq filters), resolving the CurrentSelf
// sentinel against the affector's own type id.
func (a ExtraArg) AsSkillTypeID(affectorType core.TypeID) core.SkillTypeID {
	if core.SkillTypeID(a) == core.CurrentSelf {
		return core.SkillTypeID(affectorType)
	}
	return core.SkillTypeID(a)
}

// Modifier is the immutable record of one line in an effect's ordered
// modifier tuple (spec.md §3, §4.4, §4.6.1).
type Modifier struct {
	AffecteeFilter         core.AffecteeFilter
	AffecteeDomain         core.Domain
	AffecteeFilterExtraArg *ExtraArg
	AffecteeAttrID         core.AttrID
	Operator               core.Operator
	AggregateMode          AggregateMode
	AffectorAttrID         core.AttrID
}
