// Copyright (C) 2026 The EVE Eye
// SPDX-License-Identifier: GPL-3.0-or-later

package typedata

import "github.com/TheEveEye/DogmaEngine/core"

// EffectBuildStatus records how an effect's modifiers were produced from
// the raw data-ingestion row (spec.md §6 "Modifier formats").
type EffectBuildStatus int

const (
	// BuildSuccess: modifiers parsed cleanly from modifierInfo YAML or
	// the expression-tree extractor.
	BuildSuccess EffectBuildStatus = iota
	// BuildCustom: the effect is handled by a hand-written adapter
	// instead of the generic modifier pipeline.
	BuildCustom
	// BuildPartial: some modifiers parsed, at least one did not.
	BuildPartial
	// BuildError: no modifiers could be built; the effect runs with an
	// empty modifier list.
	BuildError
	// BuildSkipped: the effect was deliberately excluded from building
	// (e.g. a dungeon-only effect with no fit-time meaning).
	BuildSkipped
)

// String renders the build status for logs.
func (s EffectBuildStatus) String() string {
	switch s {
	case BuildSuccess:
		return "success"
	case BuildCustom:
		return "custom"
	case BuildPartial:
		return "partial"
	case BuildError:
		return "error"
	case BuildSkipped:
		return "skipped"
	default:
		return "unknown_build_status"
	}
}

// AutochargeFunc computes the type id of the autocharge an effect
// materializes at load time, given a view of the parent item. Most
// effects have none; effects that do (e.g. a smartbomb's defensive
// autocharge) supply this hook when the effect record is built.
type AutochargeFunc func(parent ItemView) (core.TypeID, bool)

// Effect is the immutable record for one effect definition (spec.md §3,
// §4.2). Category and the optional attribute pointers are data; the two
// functional hooks (Duration, Autocharge) are resolved against a live
// item view at call time and carry no state of their own.
type Effect struct {
	ID           core.EffectID
	Category     core.EffectCategory
	IsOffensive  bool
	IsAssistance bool

	DurationAttr           *core.AttrID
	DischargeAttr          *core.AttrID
	RangeAttr              *core.AttrID
	FalloffAttr            *core.AttrID
	TrackingAttr           *core.AttrID
	FittingUsageChanceAttr *core.AttrID
	ResistAttr             *core.AttrID

	BuildStatus EffectBuildStatus
	Modifiers   []Modifier

	// WarfareTemplateID is set when this effect expands into bus-wide
	// warfare-buff modifiers (C7) rather than carrying static Modifiers.
	WarfareTemplateID *WarfareTemplateID

	autocharge AutochargeFunc
}

// NewEffect constructs an Effect, optionally attaching an autocharge hook.
func NewEffect(id core.EffectID, category core.EffectCategory, autocharge AutochargeFunc) *Effect {
	return &Effect{ID: id, Category: category, autocharge: autocharge}
}

// Duration reads the effect's duration from the live item, via
// DurationAttr, matching get_duration(item) in spec.md §4.2.
func (e *Effect) Duration(view ItemView) (float64, bool) {
	if e == nil || e.DurationAttr == nil || view == nil {
		return 0, false
	}
	return view.Attr(*e.DurationAttr)
}

// AutochargeTypeID computes the autocharge type id for parent, matching
// get_autocharge_type_id(parent) in spec.md §3 "Autocharge".
func (e *Effect) AutochargeTypeID(parent ItemView) (core.TypeID, bool) {
	if e == nil || e.autocharge == nil {
		return 0, false
	}
	return e.autocharge(parent)
}

// HasAutocharge reports whether this effect materializes an autocharge.
func (e *Effect) HasAutocharge() bool {
	return e != nil && e.autocharge != nil
}
