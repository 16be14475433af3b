// Copyright (C) 2026 The EVE Eye
// SPDX-License-Identifier: GPL-3.0-or-later

package typedata

import (
	"fmt"
	"sort"

	"github.com/TheEveEye/DogmaEngine/core"
)

// The row types below mirror the table shapes the out-of-scope
// data-ingestion pipeline hands the core (spec.md §6 "Data ingestion").
// Build exists so the core is independently testable and usable without
// requiring that pipeline to exist: it is a minimal, in-core stand-in for
// the validator/cleaner contract, not a replacement for it.

// TypeRow mirrors one evetypes row.
type TypeRow struct {
	ID         core.TypeID
	GroupID    core.GroupID
	CategoryID core.CategoryID
}

// AttrRow mirrors one dgmattribs row.
type AttrRow struct {
	AttrID       core.AttrID
	MaxAttrID    *core.AttrID
	DefaultValue *float64
	HighIsGood   bool
	Stackable    bool
}

// TypeAttrRow mirrors one dgmtypeattribs row.
type TypeAttrRow struct {
	TypeID core.TypeID
	AttrID core.AttrID
	Value  float64
}

// EffectRow mirrors one dgmeffects row.
type EffectRow struct {
	EffectID     core.EffectID
	CategoryID   core.EffectCategory
	IsOffensive  bool
	IsAssistance bool
	Modifiers    []Modifier
	BuildStatus  EffectBuildStatus
}

// TypeEffectRow mirrors one dgmtypeeffects row.
type TypeEffectRow struct {
	TypeID    core.TypeID
	EffectID  core.EffectID
	IsDefault bool
}

// SkillReqRow mirrors one skillreqs row.
type SkillReqRow struct {
	TypeID      core.TypeID
	SkillTypeID core.SkillTypeID
	Level       int
}

// retainedCategories lists the type categories spec.md §6's cleaner
// rules keep; everything else is pruned during Build.
var retainedCategories = map[core.CategoryID]bool{
	1:  true, // ship
	2:  true, // module (historically "Module")
	3:  true, // charge
	4:  true, // skill
	5:  true, // drone
	6:  true, // implant
	7:  true, // subsystem
	8:  true, // fighter
	18: true, // character
}

// BuildWarning is a non-fatal anomaly the validator/cleaner rules
// detected and recovered from by dropping or coercing the offending row
// (spec.md §7 band 1: "static, logged once").
type BuildWarning struct {
	Table  string
	Detail string
}

func (w BuildWarning) String() string { return fmt.Sprintf("%s: %s", w.Table, w.Detail) }

// Rows bundles every input table Build consumes.
type Rows struct {
	Types       []TypeRow
	TypeAttrs   []TypeAttrRow
	Attrs       []AttrRow
	Effects     []EffectRow
	TypeEffects []TypeEffectRow
	SkillReqs   []SkillReqRow
	Version     string
}

// Build runs the validator/cleaner rules summarized in spec.md §6 over
// Rows and produces an immutable Database plus the warnings raised along
// the way. Build never fails outright: malformed rows are dropped (and
// warned about) rather than aborting the whole load, matching the "rest
// of the load succeeds" rule in §7 band 1.
func Build(rows Rows, adapters Adapters) (*Database, []BuildWarning) {
	var warnings []BuildWarning

	db := &Database{
		Types:        make(map[core.TypeID]*Type),
		Attributes:   make(map[core.AttrID]*AttributeMeta),
		Effects:      make(map[core.EffectID]*Effect),
		WarfareBuffs: make(map[WarfareTemplateID]*WarfareBuffTemplate),
		Version:      rows.Version,
	}

	for _, r := range rows.Attrs {
		if _, dup := db.Attributes[r.AttrID]; dup {
			warnings = append(warnings, BuildWarning{"dgmattribs", fmt.Sprintf("duplicate primary key attr %d", r.AttrID)})
			continue
		}
		db.Attributes[r.AttrID] = &AttributeMeta{
			AttrID:       r.AttrID,
			MaxAttrID:    r.MaxAttrID,
			DefaultValue: r.DefaultValue,
			HighIsGood:   r.HighIsGood,
			Stackable:    r.Stackable,
		}
	}

	for _, r := range rows.Effects {
		if _, dup := db.Effects[r.EffectID]; dup {
			warnings = append(warnings, BuildWarning{"dgmeffects", fmt.Sprintf("duplicate primary key effect %d", r.EffectID)})
			continue
		}
		eff := &Effect{
			ID:           r.EffectID,
			Category:     r.CategoryID,
			IsOffensive:  r.IsOffensive,
			IsAssistance: r.IsAssistance,
			Modifiers:    r.Modifiers,
			BuildStatus:  r.BuildStatus,
		}
		if fn, ok := adapters.Autocharges[r.EffectID]; ok {
			eff.autocharge = fn
		}
		if patch, ok := adapters.Effects[r.EffectID]; ok {
			eff = patch(eff)
		}
		db.Effects[r.EffectID] = eff
	}

	typeAttrs := make(map[core.TypeID]map[core.AttrID]float64)
	for _, r := range rows.TypeAttrs {
		m, ok := typeAttrs[r.TypeID]
		if !ok {
			m = make(map[core.AttrID]float64)
			typeAttrs[r.TypeID] = m
		}
		m[r.AttrID] = r.Value
	}

	typeEffects := make(map[core.TypeID]map[core.EffectID]*Effect)
	defaultSeen := make(map[core.TypeID]core.EffectID)
	hasDefault := make(map[core.TypeID]bool)
	// Sort so "excess default effect" coercion is deterministic: the
	// first default effect encountered (by effect id) wins, matching
	// the validator rule "at most one default effect per type".
	sortedTE := append([]TypeEffectRow(nil), rows.TypeEffects...)
	sort.Slice(sortedTE, func(i, j int) bool {
		if sortedTE[i].TypeID != sortedTE[j].TypeID {
			return sortedTE[i].TypeID < sortedTE[j].TypeID
		}
		return sortedTE[i].EffectID < sortedTE[j].EffectID
	})
	for _, r := range sortedTE {
		eff, ok := db.Effects[r.EffectID]
		if !ok {
			warnings = append(warnings, BuildWarning{"dgmtypeeffects", fmt.Sprintf("type %d references unknown effect %d", r.TypeID, r.EffectID)})
			continue
		}
		m, ok := typeEffects[r.TypeID]
		if !ok {
			m = make(map[core.EffectID]*Effect)
			typeEffects[r.TypeID] = m
		}
		m[r.EffectID] = eff

		isDefault := r.IsDefault
		if isDefault && hasDefault[r.TypeID] {
			warnings = append(warnings, BuildWarning{"dgmtypeeffects", fmt.Sprintf("type %d has more than one default effect; keeping %d", r.TypeID, defaultSeen[r.TypeID])})
			isDefault = false
		}
		if isDefault {
			hasDefault[r.TypeID] = true
			defaultSeen[r.TypeID] = r.EffectID
		}
	}

	skillReqs := make(map[core.TypeID]map[core.SkillTypeID]int)
	for _, r := range rows.SkillReqs {
		m, ok := skillReqs[r.TypeID]
		if !ok {
			m = make(map[core.SkillTypeID]int)
			skillReqs[r.TypeID] = m
		}
		m[r.SkillTypeID] = r.Level
	}

	for _, r := range rows.Types {
		if _, dup := db.Types[r.ID]; dup {
			warnings = append(warnings, BuildWarning{"evetypes", fmt.Sprintf("duplicate primary key type %d", r.ID)})
			continue
		}
		if !retainedCategories[r.CategoryID] {
			continue // pruned by cleaner rules, not a warning-worthy anomaly
		}
		t := &Type{
			ID:             r.ID,
			GroupID:        groupPtr(r.GroupID),
			CategoryID:     categoryPtr(r.CategoryID),
			Attrs:          typeAttrs[r.ID],
			Effects:        typeEffects[r.ID],
			RequiredSkills: skillReqs[r.ID],
		}
		if t.Attrs == nil {
			t.Attrs = map[core.AttrID]float64{}
		}
		if t.Effects == nil {
			t.Effects = map[core.EffectID]*Effect{}
		}
		if t.RequiredSkills == nil {
			t.RequiredSkills = map[core.SkillTypeID]int{}
		}
		if id, ok := defaultSeen[r.ID]; ok {
			idCopy := id
			t.DefaultEffectID = &idCopy
		}
		db.Types[r.ID] = t
	}

	return db, warnings
}

func groupPtr(g core.GroupID) *core.GroupID       { return &g }
func categoryPtr(c core.CategoryID) *core.CategoryID { return &c }
