// Copyright (C) 2026 The EVE Eye
// SPDX-License-Identifier: GPL-3.0-or-later

// Package fit implements the Fit aggregate (C8): ownership of every
// item in a fit, the solar-system context items read their damage
// environment from, and the bulk-publish mediation between structural
// changes and the message bus (spec.md §4.8). Fit runs no business
// logic of its own; every mutation is translated into the minimum
// message set and handed to events.Bus.PublishBulk, exactly as
// gamectx.GameContext holds typed sub-registries without interpreting
// them and resources.Pool stores resources without computing with them.
package fit

import (
	"github.com/TheEveEye/DogmaEngine/affection"
	"github.com/TheEveEye/DogmaEngine/core"
	"github.com/TheEveEye/DogmaEngine/events"
	"github.com/TheEveEye/DogmaEngine/ferr"
	"github.com/TheEveEye/DogmaEngine/item"
	"github.com/TheEveEye/DogmaEngine/lifecycle"
	"github.com/TheEveEye/DogmaEngine/typedata"
)

// DamageProfile is the solar system's incoming damage composition, the
// "source/default damage profile" context items outside the core (the
// reactive-armor-hardener simulator) read to decide their response. The
// core only stores and republishes it; it performs no tank/resist math.
type DamageProfile struct {
	EM, Thermal, Kinetic, Explosive float64
}

// Fit owns every item in one fitting session: the ship, the character,
// their ordered/unordered containers, and the solar-system context.
type Fit struct {
	bus *events.Bus
	reg *affection.Register
	db  *typedata.Database
	res *lifecycle.Resolver

	nextItemID core.ItemID

	ship      *item.Item
	character *item.Item

	rigs       []*item.Item
	subsystems []*item.Item
	high       SlotList
	mid        SlotList
	low        SlotList
	drones     []*item.Item
	fighters   []*item.Item
	implants   []*item.Item
	boosters   []*item.Item
	skills     map[core.TypeID]*item.Item

	damage DamageProfile
}

// New builds an empty Fit. reg must already publish on bus, since
// lifecycle.Resolver and affection.Register are the collaborators Fit
// mediates between; db is the immutable type database both read from.
func New(bus *events.Bus, reg *affection.Register, db *typedata.Database, res *lifecycle.Resolver) *Fit {
	return &Fit{
		bus:    bus,
		reg:    reg,
		db:     db,
		res:    res,
		skills: make(map[core.TypeID]*item.Item),
	}
}

// Ship returns the fit's ship item, or nil if none is set.
func (f *Fit) Ship() *item.Item { return f.ship }

// Character returns the fit's character item, or nil if none is set.
func (f *Fit) Character() *item.Item { return f.character }

// High returns the ordered high-slot list.
func (f *Fit) High() *SlotList { return &f.high }

// Mid returns the ordered mid-slot list.
func (f *Fit) Mid() *SlotList { return &f.mid }

// Low returns the ordered low-slot list.
func (f *Fit) Low() *SlotList { return &f.low }

// Drones returns a snapshot of the drone bay's contents.
func (f *Fit) Drones() []*item.Item { return append([]*item.Item(nil), f.drones...) }

// Fighters returns a snapshot of the fighter bay's contents.
func (f *Fit) Fighters() []*item.Item { return append([]*item.Item(nil), f.fighters...) }

// Implants returns a snapshot of the character's implants.
func (f *Fit) Implants() []*item.Item { return append([]*item.Item(nil), f.implants...) }

// Boosters returns a snapshot of the character's boosters.
func (f *Fit) Boosters() []*item.Item { return append([]*item.Item(nil), f.boosters...) }

// Rigs returns a snapshot of the ship's rigs.
func (f *Fit) Rigs() []*item.Item { return append([]*item.Item(nil), f.rigs...) }

// Subsystems returns a snapshot of the ship's subsystems.
func (f *Fit) Subsystems() []*item.Item { return append([]*item.Item(nil), f.subsystems...) }

// DamageProfile returns the fit's current solar-system damage profile.
func (f *Fit) DamageProfile() DamageProfile { return f.damage }

// SetDamageProfile updates the solar-system damage profile and notifies
// subscribers (the out-of-core resistance simulator) that incoming
// damage composition changed.
func (f *Fit) SetDamageProfile(p DamageProfile) error {
	f.damage = p
	if f.ship == nil {
		return nil
	}
	return f.bus.Publish(events.RahIncomingDmgChanged{Item: f.ship})
}

func (f *Fit) allocID() core.ItemID {
	f.nextItemID++
	return f.nextItemID
}

// newItem resolves typeID against the database, constructs and loads an
// item of kind, and materializes any autocharges its effects define. It
// does not register the item, set its container, or publish anything:
// callers slot it into the right container first.
func (f *Fit) newItem(kind item.Kind, typeID core.TypeID) (*item.Item, error) {
	typ, ok := f.db.Type(typeID)
	if !ok {
		return nil, ferr.TypeFetchError(int64(typeID))
	}
	it := item.New(f.allocID(), kind, typeID)
	it.Load(typ, f.db, f.reg)

	for effectID, chargeTypeID := range it.PendingAutocharges() {
		chargeTyp, ok := f.db.Type(chargeTypeID)
		if !ok {
			continue
		}
		charge := item.New(f.allocID(), item.KindAutocharge, chargeTypeID)
		charge.Load(chargeTyp, f.db, f.reg)
		charge.SetContainer(it)
		it.SetAutocharge(effectID, charge)
	}

	return it, nil
}

// load finishes bringing it (and any autocharges it carries) into the
// live fit: registers it with the affection register, publishes
// ItemLoaded for each, then resolves and publishes its initial effect
// diff in the same bulk call (spec.md ordering guarantee: edge changes
// land before the EffectsStarted they imply).
func (f *Fit) load(it *item.Item) {
	f.reg.RegisterItem(it)
	msgs := []events.Message{
		events.ItemLoaded{Item: it},
		events.StatesActivatedLoaded{Item: it, States: []core.State{core.StateOffline}},
	}

	for _, charge := range it.Autocharges() {
		f.reg.RegisterItem(charge)
		msgs = append(msgs,
			events.ItemLoaded{Item: charge},
			events.StatesActivatedLoaded{Item: charge, States: []core.State{core.StateOffline}},
		)
	}

	msgs = append(msgs, f.resolveMsgs(it)...)
	for _, charge := range it.Autocharges() {
		msgs = append(msgs, f.resolveMsgs(charge)...)
	}

	_ = f.bus.PublishBulk(msgs)
}

// unload tears down it (and any autocharges) out of the live fit: stops
// whatever is running, unregisters from the affection register, and
// publishes ItemUnloaded.
func (f *Fit) unload(it *item.Item) {
	var msgs []events.Message
	for _, charge := range it.Autocharges() {
		msgs = append(msgs,
			events.StatesDeactivatedLoaded{Item: charge, States: statesBetween(core.StateGhost, charge.State())},
		)
		msgs = append(msgs, f.stopAllMsgs(charge)...)
		f.reg.UnregisterItem(charge)
		msgs = append(msgs, events.ItemUnloaded{Item: charge})
	}
	msgs = append(msgs,
		events.StatesDeactivatedLoaded{Item: it, States: statesBetween(core.StateGhost, it.State())},
	)
	msgs = append(msgs, f.stopAllMsgs(it)...)
	f.reg.UnregisterItem(it)
	msgs = append(msgs, events.ItemUnloaded{Item: it})
	it.Unload()

	_ = f.bus.PublishBulk(msgs)
}

func (f *Fit) resolveMsgs(it *item.Item) []events.Message {
	diff := f.res.Resolve(it)
	if diff.Empty() {
		return nil
	}
	var msgs []events.Message
	if len(diff.Started) > 0 {
		msgs = append(msgs, events.EffectsStarted{Item: it, EffectIDs: diff.Started})
	}
	if len(diff.Stopped) > 0 {
		msgs = append(msgs, events.EffectsStopped{Item: it, EffectIDs: diff.Stopped})
	}
	return msgs
}

func (f *Fit) stopAllMsgs(it *item.Item) []events.Message {
	running := it.RunningEffectIDs()
	if len(running) == 0 {
		return nil
	}
	return []events.Message{events.EffectsStopped{Item: it, EffectIDs: running}}
}

// statesBetween returns the states above the lower of from and to, up
// to and including the higher one, in ascending order — the set a
// transition from one state to another crosses (spec.md "States are
// totally ordered").
func statesBetween(from, to core.State) []core.State {
	lo, hi := from, to
	if lo > hi {
		lo, hi = hi, lo
	}
	var out []core.State
	for s := lo + 1; s <= hi; s++ {
		out = append(out, s)
	}
	return out
}

// SetState transitions it to newState, publishing the
// activated/deactivated state messages for every threshold crossed
// together with whatever effect diff that transition implies.
func (f *Fit) SetState(it *item.Item, newState core.State) {
	old := it.State()
	if old == newState {
		return
	}
	it.SetState(newState)

	crossed := statesBetween(old, newState)
	var msgs []events.Message
	if newState > old {
		msgs = append(msgs, events.StatesActivated{Item: it, States: crossed})
	} else {
		msgs = append(msgs, events.StatesDeactivated{Item: it, States: crossed})
	}
	msgs = append(msgs, f.resolveMsgs(it)...)

	_ = f.bus.PublishBulk(msgs)
}
