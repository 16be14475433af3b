// Copyright (C) 2026 The EVE Eye
// SPDX-License-Identifier: GPL-3.0-or-later

package warfare_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheEveEye/DogmaEngine/affection"
	"github.com/TheEveEye/DogmaEngine/core"
	"github.com/TheEveEye/DogmaEngine/events"
	"github.com/TheEveEye/DogmaEngine/item"
	"github.com/TheEveEye/DogmaEngine/typedata"
	"github.com/TheEveEye/DogmaEngine/warfare"
)

const (
	attrDamage core.AttrID = 1
	attrBuff   core.AttrID = 2
)

func newFixture(t *testing.T) (*events.Bus, *affection.Register, *typedata.Database) {
	t.Helper()
	bus := events.NewBus()
	reg := affection.New(bus, nil, nil)
	db := &typedata.Database{
		Attributes: map[core.AttrID]*typedata.AttributeMeta{
			attrDamage: {AttrID: attrDamage, Stackable: true},
			attrBuff:   {AttrID: attrBuff, Stackable: true},
		},
	}
	return bus, reg, db
}

func TestStaticEffectModifierInstalledOnStartAndRemovedOnStop(t *testing.T) {
	bus, reg, db := newFixture(t)

	const staticEffect core.EffectID = 10
	db.Effects = map[core.EffectID]*typedata.Effect{
		staticEffect: {
			ID: staticEffect,
			Modifiers: []typedata.Modifier{{
				AffecteeFilter: core.FilterItem,
				AffecteeDomain: core.DomainSelf,
				AffecteeAttrID: attrDamage,
				Operator:       core.OpModAdd,
				AffectorAttrID: attrBuff,
			}},
		},
	}

	warfare.NewRuntime(bus, reg, db, nil)

	module := item.New(1, item.KindModuleHigh, 100)
	module.Load(&typedata.Type{ID: 100, Attrs: map[core.AttrID]float64{
		attrDamage: 100,
		attrBuff:   15,
	}}, db, reg)
	reg.RegisterItem(module)

	require.NoError(t, bus.Publish(events.EffectsStarted{Item: module, EffectIDs: []core.EffectID{staticEffect}}))

	v, err := module.Attrs().Get(attrDamage)
	require.NoError(t, err)
	assert.Equal(t, 115.0, v)

	require.NoError(t, bus.Publish(events.EffectsStopped{Item: module, EffectIDs: []core.EffectID{staticEffect}}))

	v, err = module.Attrs().Get(attrDamage)
	require.NoError(t, err)
	assert.Equal(t, 100.0, v, "modifier must be torn down when its carrying effect stops")
}

func TestWarfareTemplateExpandsAgainstAffectorBuffAttribute(t *testing.T) {
	bus, reg, db := newFixture(t)

	const buffEffect core.EffectID = 20
	const templateID typedata.WarfareTemplateID = 1

	db.WarfareBuffs = map[typedata.WarfareTemplateID]*typedata.WarfareBuffTemplate{
		templateID: {
			ID:              templateID,
			BuffValueAttrID: attrBuff,
			Modifiers: []typedata.BuffModifierTemplate{{
				AffecteeFilter: core.FilterItem,
				AffecteeDomain: core.DomainSelf,
				AffecteeAttrID: attrDamage,
				Operator:       core.OpPostPercent,
			}},
		},
	}
	db.Effects = map[core.EffectID]*typedata.Effect{
		buffEffect: {ID: buffEffect, WarfareTemplateID: &templateID},
	}

	warfare.NewRuntime(bus, reg, db, nil)

	link := item.New(1, item.KindModuleHigh, 200)
	link.Load(&typedata.Type{ID: 200, Attrs: map[core.AttrID]float64{attrBuff: 10, attrDamage: 100}}, db, reg)
	reg.RegisterItem(link)

	target := item.New(2, item.KindModuleHigh, 201)
	target.Load(&typedata.Type{ID: 201, Attrs: map[core.AttrID]float64{attrDamage: 100}}, db, reg)
	reg.RegisterItem(target)

	require.NoError(t, bus.Publish(events.EffectsStarted{Item: link, EffectIDs: []core.EffectID{buffEffect}}))

	v, err := link.Attrs().Get(attrDamage)
	require.NoError(t, err)
	assert.InDelta(t, 110.0, v, 1e-9, "affectee_domain self only reaches the link module itself")

	vt, err := target.Attrs().Get(attrDamage)
	require.NoError(t, err)
	assert.Equal(t, 100.0, vt, "a plain self-domain buff never reaches an unrelated item")
}

func TestDanglingTemplateReferenceInstallsNothing(t *testing.T) {
	bus, reg, db := newFixture(t)

	const buffEffect core.EffectID = 30
	const missingTemplate typedata.WarfareTemplateID = 999
	db.Effects = map[core.EffectID]*typedata.Effect{
		buffEffect: {ID: buffEffect, WarfareTemplateID: &missingTemplate},
	}

	warfare.NewRuntime(bus, reg, db, nil)

	module := item.New(1, item.KindModuleHigh, 100)
	module.Load(&typedata.Type{ID: 100, Attrs: map[core.AttrID]float64{attrDamage: 100}}, db, reg)
	reg.RegisterItem(module)

	assert.NotPanics(t, func() {
		require.NoError(t, bus.Publish(events.EffectsStarted{Item: module, EffectIDs: []core.EffectID{buffEffect}}))
	})

	v, err := module.Attrs().Get(attrDamage)
	require.NoError(t, err)
	assert.Equal(t, 100.0, v)
}

func TestCloseStopsFurtherInstallation(t *testing.T) {
	bus, reg, db := newFixture(t)

	const staticEffect core.EffectID = 40
	db.Effects = map[core.EffectID]*typedata.Effect{
		staticEffect: {
			ID: staticEffect,
			Modifiers: []typedata.Modifier{{
				AffecteeFilter: core.FilterItem,
				AffecteeDomain: core.DomainSelf,
				AffecteeAttrID: attrDamage,
				Operator:       core.OpModAdd,
				AffectorAttrID: attrBuff,
			}},
		},
	}

	rt := warfare.NewRuntime(bus, reg, db, nil)
	rt.Close()

	module := item.New(1, item.KindModuleHigh, 100)
	module.Load(&typedata.Type{ID: 100, Attrs: map[core.AttrID]float64{
		attrDamage: 100,
		attrBuff:   15,
	}}, db, reg)
	reg.RegisterItem(module)

	require.NoError(t, bus.Publish(events.EffectsStarted{Item: module, EffectIDs: []core.EffectID{staticEffect}}))

	v, err := module.Attrs().Get(attrDamage)
	require.NoError(t, err)
	assert.Equal(t, 100.0, v, "a closed runtime must not react to further EffectsStarted messages")
}
