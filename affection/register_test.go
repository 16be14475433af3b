// Copyright (C) 2026 The EVE Eye
// SPDX-License-Identifier: GPL-3.0-or-later

package affection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheEveEye/DogmaEngine/affection"
	"github.com/TheEveEye/DogmaEngine/calc"
	"github.com/TheEveEye/DogmaEngine/core"
	"github.com/TheEveEye/DogmaEngine/events"
	"github.com/TheEveEye/DogmaEngine/item"
	"github.com/TheEveEye/DogmaEngine/typedata"
)

const (
	attrDamage core.AttrID = 1
	attrBonus  core.AttrID = 2
)

func newRegisterFixture(t *testing.T) (*events.Bus, *affection.Register) {
	t.Helper()
	bus := events.NewBus()
	reg := affection.New(bus, nil, nil)
	return bus, reg
}

func loadInto(t *testing.T, reg *affection.Register, it *item.Item, typ *typedata.Type, db *typedata.Database) {
	t.Helper()
	it.Load(typ, db, reg)
	reg.RegisterItem(it)
}

func TestItemFilterSelfDomainCreatesSingleEdge(t *testing.T) {
	_, reg := newRegisterFixture(t)

	db := &typedata.Database{Attributes: map[core.AttrID]*typedata.AttributeMeta{
		attrDamage: {AttrID: attrDamage, Stackable: true},
		attrBonus:  {AttrID: attrBonus, Stackable: true},
	}}
	module := item.New(1, item.KindModuleHigh, 100)
	loadInto(t, reg, module, &typedata.Type{ID: 100, Attrs: map[core.AttrID]float64{
		attrDamage: 100,
		attrBonus:  10,
	}}, db)

	mod := typedata.Modifier{
		AffecteeFilter: core.FilterItem,
		AffecteeDomain: core.DomainSelf,
		AffecteeAttrID: attrDamage,
		Operator:       core.OpModAdd,
		AffectorAttrID: attrBonus,
	}
	reg.AddModifier(module, 500, 0, mod)

	v, err := module.Attrs().Get(attrDamage)
	require.NoError(t, err)
	assert.Equal(t, 110.0, v)
}

func TestOwnerSkillrqPropagatesFromCharacterToDrone(t *testing.T) {
	_, reg := newRegisterFixture(t)

	const droneSkill core.SkillTypeID = 300

	charDB := &typedata.Database{Attributes: map[core.AttrID]*typedata.AttributeMeta{
		attrBonus: {AttrID: attrBonus, Stackable: true},
	}}
	character := item.New(1, item.KindCharacter, 1)
	loadInto(t, reg, character, &typedata.Type{ID: 1, Attrs: map[core.AttrID]float64{attrBonus: 25}}, charDB)
	reg.SetCharacter(character)

	droneDB := &typedata.Database{Attributes: map[core.AttrID]*typedata.AttributeMeta{
		attrDamage: {AttrID: attrDamage, Stackable: true},
	}}
	drone := item.New(2, item.KindDrone, 200)
	loadInto(t, reg, drone, &typedata.Type{
		ID:             200,
		Attrs:          map[core.AttrID]float64{attrDamage: 50},
		RequiredSkills: map[core.SkillTypeID]int{droneSkill: 1},
	}, droneDB)

	extra := typedata.ExtraArg(droneSkill)
	mod := typedata.Modifier{
		AffecteeFilter:         core.FilterOwnerSkillrq,
		AffecteeFilterExtraArg: &extra,
		AffecteeAttrID:         attrDamage,
		Operator:               core.OpPostPercent,
		AffectorAttrID:         attrBonus,
	}
	reg.AddModifier(character, 900, 0, mod)

	v, err := drone.Attrs().Get(attrDamage)
	require.NoError(t, err)
	assert.InDelta(t, 50*1.25, v, 1e-9)
}

func TestOwnerSkillrqSilentWithoutCharacter(t *testing.T) {
	_, reg := newRegisterFixture(t)

	droneDB := &typedata.Database{Attributes: map[core.AttrID]*typedata.AttributeMeta{
		attrDamage: {AttrID: attrDamage, Stackable: true},
	}}
	drone := item.New(1, item.KindDrone, 200)
	loadInto(t, reg, drone, &typedata.Type{
		ID:             200,
		Attrs:          map[core.AttrID]float64{attrDamage: 50},
		RequiredSkills: map[core.SkillTypeID]int{1: 1},
	}, droneDB)

	extra := typedata.ExtraArg(1)
	mod := typedata.Modifier{
		AffecteeFilter:         core.FilterOwnerSkillrq,
		AffecteeFilterExtraArg: &extra,
		AffecteeAttrID:         attrDamage,
		Operator:               core.OpPostPercent,
		AffectorAttrID:         attrBonus,
	}
	// No character registered at all; affector is the drone itself,
	// which has no SetCharacter call backing it.
	reg.AddModifier(drone, 900, 0, mod)

	v, err := drone.Attrs().Get(attrDamage)
	require.NoError(t, err)
	assert.Equal(t, 50.0, v)
}

func TestUnknownAffecteeFilterIsIgnoredNotPanicked(t *testing.T) {
	_, reg := newRegisterFixture(t)

	db := &typedata.Database{Attributes: map[core.AttrID]*typedata.AttributeMeta{
		attrDamage: {AttrID: attrDamage, Stackable: true},
	}}
	module := item.New(1, item.KindModuleHigh, 100)
	loadInto(t, reg, module, &typedata.Type{ID: 100, Attrs: map[core.AttrID]float64{attrDamage: 100}}, db)

	mod := typedata.Modifier{
		AffecteeFilter: core.AffecteeFilter(99), // outside the enum
		AffecteeDomain: core.DomainSelf,
		AffecteeAttrID: attrDamage,
		Operator:       core.OpModAdd,
		AffectorAttrID: attrDamage,
	}

	assert.NotPanics(t, func() {
		reg.AddModifier(module, 500, 0, mod)
	})

	v, err := module.Attrs().Get(attrDamage)
	require.NoError(t, err)
	assert.Equal(t, 100.0, v, "malformed modifier contributes nothing")
}

func TestRemoveModifierRetractsEdgeAndContribution(t *testing.T) {
	_, reg := newRegisterFixture(t)

	db := &typedata.Database{Attributes: map[core.AttrID]*typedata.AttributeMeta{
		attrDamage: {AttrID: attrDamage, Stackable: true},
		attrBonus:  {AttrID: attrBonus, Stackable: true},
	}}
	module := item.New(1, item.KindModuleHigh, 100)
	loadInto(t, reg, module, &typedata.Type{ID: 100, Attrs: map[core.AttrID]float64{
		attrDamage: 100,
		attrBonus:  10,
	}}, db)

	mod := typedata.Modifier{
		AffecteeFilter: core.FilterItem,
		AffecteeDomain: core.DomainSelf,
		AffecteeAttrID: attrDamage,
		Operator:       core.OpModAdd,
		AffectorAttrID: attrBonus,
	}
	reg.AddModifier(module, 500, 0, mod)
	v, err := module.Attrs().Get(attrDamage)
	require.NoError(t, err)
	assert.Equal(t, 110.0, v)

	reg.RemoveModifier(module.ID(), 500, 0)
	v, err = module.Attrs().Get(attrDamage)
	require.NoError(t, err)
	assert.Equal(t, 100.0, v, "edge and its contribution must vanish entirely once the affector stops")
}

func TestDownstreamCascadeInvalidatesChainedAttribute(t *testing.T) {
	_, reg := newRegisterFixture(t)

	const attrMid core.AttrID = 10
	db := &typedata.Database{Attributes: map[core.AttrID]*typedata.AttributeMeta{
		attrDamage: {AttrID: attrDamage, Stackable: true},
		attrMid:    {AttrID: attrMid, Stackable: true},
		attrBonus:  {AttrID: attrBonus, Stackable: true},
	}}
	ship := item.New(3, item.KindShip, 900)

	source := item.New(1, item.KindModuleHigh, 100)
	loadInto(t, reg, source, &typedata.Type{ID: 100, Attrs: map[core.AttrID]float64{
		attrBonus: 1,
	}}, db)
	source.SetContainer(ship)
	target := item.New(2, item.KindModuleHigh, 101)
	loadInto(t, reg, target, &typedata.Type{ID: 101, Attrs: map[core.AttrID]float64{
		attrMid:    10,
		attrDamage: 100,
	}}, db)
	target.SetContainer(ship)

	// source.attrBonus feeds target.attrMid (both share the ship domain,
	// since they're mounted on the same ship), which in turn feeds
	// target.attrDamage: a chain requiring the downstream cascade.
	reg.AddModifier(source, 1, 0, typedata.Modifier{
		AffecteeFilter: core.FilterDomain,
		AffecteeDomain: core.DomainShip,
		AffecteeAttrID: attrMid,
		Operator:       core.OpModAdd,
		AffectorAttrID: attrBonus,
	})
	reg.AddModifier(target, 2, 0, typedata.Modifier{
		AffecteeFilter: core.FilterItem,
		AffecteeDomain: core.DomainSelf,
		AffecteeAttrID: attrDamage,
		Operator:       core.OpModAdd,
		AffectorAttrID: attrMid,
	})

	v, err := target.Attrs().Get(attrDamage)
	require.NoError(t, err)
	assert.Equal(t, 100.0+10.0+1.0, v)

	// Both values are now cached. Removing the first modifier only touches
	// target.attrMid directly; target.attrDamage must be invalidated by the
	// downstream cascade for the read below to see the change.
	reg.RemoveModifier(source.ID(), 1, 0)

	v, err = target.Attrs().Get(attrDamage)
	require.NoError(t, err)
	assert.Equal(t, 100.0+10.0, v)
}

var _ calc.ModifierSource = (*affection.Register)(nil)
