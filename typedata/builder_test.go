// Copyright (C) 2026 The EVE Eye
// SPDX-License-Identifier: GPL-3.0-or-later

package typedata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheEveEye/DogmaEngine/core"
	"github.com/TheEveEye/DogmaEngine/typedata"
)

func TestBuildWiresTypeAttrsEffectsAndSkills(t *testing.T) {
	rows := typedata.Rows{
		Types: []typedata.TypeRow{
			{ID: 1, GroupID: 10, CategoryID: 6}, // 6 = implant
		},
		Attrs: []typedata.AttrRow{
			{AttrID: 100},
		},
		TypeAttrs: []typedata.TypeAttrRow{
			{TypeID: 1, AttrID: 100, Value: 42},
		},
		Effects: []typedata.EffectRow{
			{EffectID: 200, CategoryID: core.CategoryPassive},
		},
		TypeEffects: []typedata.TypeEffectRow{
			{TypeID: 1, EffectID: 200, IsDefault: true},
		},
		SkillReqs: []typedata.SkillReqRow{
			{TypeID: 1, SkillTypeID: 300, Level: 3},
		},
		Version: "test",
	}

	db, warnings := typedata.Build(rows, typedata.Adapters{})
	require.Empty(t, warnings)

	typ, ok := db.Type(1)
	require.True(t, ok)
	v, ok := typ.Attr(100)
	assert.True(t, ok)
	assert.Equal(t, 42.0, v)

	_, ok = typ.Effect(200)
	assert.True(t, ok)
	require.NotNil(t, typ.DefaultEffectID)
	assert.Equal(t, core.EffectID(200), *typ.DefaultEffectID)

	lvl, ok := typ.RequiresSkill(300)
	assert.True(t, ok)
	assert.Equal(t, 3, lvl)
}

func TestBuildDropsUnretainedCategoryWithoutWarning(t *testing.T) {
	rows := typedata.Rows{
		Types: []typedata.TypeRow{
			{ID: 1, GroupID: 10, CategoryID: 999}, // not in the retained set
		},
	}
	db, warnings := typedata.Build(rows, typedata.Adapters{})
	assert.Empty(t, warnings)
	_, ok := db.Type(1)
	assert.False(t, ok)
}

func TestBuildWarnsOnDuplicatePrimaryKeys(t *testing.T) {
	rows := typedata.Rows{
		Attrs: []typedata.AttrRow{
			{AttrID: 1},
			{AttrID: 1},
		},
	}
	_, warnings := typedata.Build(rows, typedata.Adapters{})
	require.Len(t, warnings, 1)
	assert.Equal(t, "dgmattribs", warnings[0].Table)
}

func TestBuildCoercesExcessDefaultEffect(t *testing.T) {
	rows := typedata.Rows{
		Types: []typedata.TypeRow{
			{ID: 1, GroupID: 10, CategoryID: 6},
		},
		Effects: []typedata.EffectRow{
			{EffectID: 10},
			{EffectID: 20},
		},
		TypeEffects: []typedata.TypeEffectRow{
			{TypeID: 1, EffectID: 20, IsDefault: true},
			{TypeID: 1, EffectID: 10, IsDefault: true},
		},
	}
	db, warnings := typedata.Build(rows, typedata.Adapters{})
	require.Len(t, warnings, 1)

	typ, ok := db.Type(1)
	require.True(t, ok)
	require.NotNil(t, typ.DefaultEffectID)
	// Lowest effect id wins deterministically.
	assert.Equal(t, core.EffectID(10), *typ.DefaultEffectID)
}

func TestBuildWarnsOnUnknownEffectReference(t *testing.T) {
	rows := typedata.Rows{
		Types: []typedata.TypeRow{
			{ID: 1, GroupID: 10, CategoryID: 6},
		},
		TypeEffects: []typedata.TypeEffectRow{
			{TypeID: 1, EffectID: 999},
		},
	}
	_, warnings := typedata.Build(rows, typedata.Adapters{})
	require.Len(t, warnings, 1)
	assert.Equal(t, "dgmtypeeffects", warnings[0].Table)
}

func TestBuildAppliesEffectAdapterPatch(t *testing.T) {
	rows := typedata.Rows{
		Effects: []typedata.EffectRow{
			{EffectID: 5, BuildStatus: typedata.BuildCustom},
		},
	}
	adapters := typedata.Adapters{
		Effects: map[core.EffectID]func(*typedata.Effect) *typedata.Effect{
			5: func(e *typedata.Effect) *typedata.Effect {
				e.IsOffensive = true
				return e
			},
		},
	}
	db, _ := typedata.Build(rows, adapters)
	eff, ok := db.Effect(5)
	require.True(t, ok)
	assert.True(t, eff.IsOffensive)
}
