// Copyright (C) 2026 The EVE Eye
// SPDX-License-Identifier: GPL-3.0-or-later

package item_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheEveEye/DogmaEngine/calc"
	"github.com/TheEveEye/DogmaEngine/core"
	"github.com/TheEveEye/DogmaEngine/item"
	"github.com/TheEveEye/DogmaEngine/typedata"
)

func TestUnloadedItemReportsNotLoaded(t *testing.T) {
	it := item.New(1, item.KindModuleHigh, 100)
	assert.False(t, it.Loaded())
	assert.Equal(t, core.StateGhost, it.State())
	_, ok := it.Attr(1)
	assert.False(t, ok)
}

func TestLoadResolvesTypeAndMovesOffGhostState(t *testing.T) {
	typ := &typedata.Type{ID: 100, Attrs: map[core.AttrID]float64{1: 50}}
	db := &typedata.Database{Attributes: map[core.AttrID]*typedata.AttributeMeta{
		1: {AttrID: 1, Stackable: true},
	}}
	it := item.New(1, item.KindModuleHigh, 100)

	it.Load(typ, db, calc.NoModifiers{})

	assert.True(t, it.Loaded())
	assert.Equal(t, core.StateOffline, it.State())
	v, ok := it.Attr(1)
	require.True(t, ok)
	assert.Equal(t, 50.0, v)
}

func TestUnloadResetsToGhostAndClearsState(t *testing.T) {
	typ := &typedata.Type{ID: 100}
	db := &typedata.Database{}
	it := item.New(1, item.KindModuleHigh, 100)
	it.Load(typ, db, calc.NoModifiers{})
	it.SetRunning(5, true)

	it.Unload()

	assert.False(t, it.Loaded())
	assert.Equal(t, core.StateGhost, it.State())
	assert.False(t, it.IsRunning(5))
}

func TestRunModeDefaultsToFullCompliance(t *testing.T) {
	it := item.New(1, item.KindModuleHigh, 100)
	assert.Equal(t, core.RunModeFullCompliance, it.RunMode(1))

	it.SetRunMode(1, core.RunModeForceStop)
	assert.Equal(t, core.RunModeForceStop, it.RunMode(1))
}

func TestShipAndCharacterModifierDomains(t *testing.T) {
	ship := item.New(1, item.KindShip, 1)
	char := item.New(2, item.KindCharacter, 2)
	mod := item.New(3, item.KindModuleHigh, 3)

	domain, ok := ship.ModifierDomain()
	require.True(t, ok)
	assert.Equal(t, core.DomainShip, domain)

	domain, ok = char.ModifierDomain()
	require.True(t, ok)
	assert.Equal(t, core.DomainCharacter, domain)

	domain, ok = mod.ModifierDomain()
	require.True(t, ok)
	assert.Equal(t, core.DomainSelf, domain)
}

func TestOwnerModifiableKinds(t *testing.T) {
	assert.True(t, item.New(1, item.KindDrone, 1).OwnerModifiable())
	assert.True(t, item.New(2, item.KindFighterSquad, 2).OwnerModifiable())
	assert.False(t, item.New(3, item.KindModuleHigh, 3).OwnerModifiable())
	assert.False(t, item.New(4, item.KindShip, 4).OwnerModifiable())
}

func TestSolarSystemCarrierWalksUpToShip(t *testing.T) {
	ship := item.New(1, item.KindShip, 1)
	module := item.New(2, item.KindModuleHigh, 2)
	charge := item.New(3, item.KindCharge, 3)

	module.SetContainer(ship)
	charge.SetContainer(module)

	assert.Same(t, ship, charge.SolarSystemCarrier())
	assert.Same(t, ship, module.SolarSystemCarrier())
	assert.Same(t, ship, ship.SolarSystemCarrier())
}

func TestSolarSystemCarrierWithNoAncestorIsStandalone(t *testing.T) {
	drone := item.New(1, item.KindDrone, 1)
	assert.Same(t, drone, drone.SolarSystemCarrier())
}

func TestPendingAutochargesSkipsEffectsWithoutAutocharge(t *testing.T) {
	autochargeTypeID := core.TypeID(999)
	eff := typedata.NewEffect(10, core.CategoryPassive, func(parent typedata.ItemView) (core.TypeID, bool) {
		return autochargeTypeID, true
	})
	plain := typedata.NewEffect(20, core.CategoryPassive, nil)
	typ := &typedata.Type{
		ID: 100,
		Effects: map[core.EffectID]*typedata.Effect{
			10: eff,
			20: plain,
		},
	}
	db := &typedata.Database{}
	it := item.New(1, item.KindModuleHigh, 100)
	it.Load(typ, db, calc.NoModifiers{})

	pending := it.PendingAutocharges()
	require.Len(t, pending, 1)
	assert.Equal(t, autochargeTypeID, pending[10])
}
