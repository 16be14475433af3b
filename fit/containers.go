// Copyright (C) 2026 The EVE Eye
// SPDX-License-Identifier: GPL-3.0-or-later

package fit

import (
	"github.com/TheEveEye/DogmaEngine/core"
	"github.com/TheEveEye/DogmaEngine/ferr"
	"github.com/TheEveEye/DogmaEngine/item"
)

// SetShip replaces the fit's ship. Any previous ship item (with its
// autocharges) is unloaded first; items fitted to it are not unloaded
// and stay in their containers with their container still set to the
// old ship.
func (f *Fit) SetShip(typeID core.TypeID) (*item.Item, error) {
	if f.ship != nil {
		f.unload(f.ship)
		f.ship = nil
	}
	it, err := f.newItem(item.KindShip, typeID)
	if err != nil {
		return nil, err
	}
	f.ship = it
	f.load(it)
	return it, nil
}

// SetCharacter replaces the fit's character. Any previous character item
// (with its autocharges) is unloaded first; skills, implants and
// boosters are not unloaded and stay in their containers.
func (f *Fit) SetCharacter(typeID core.TypeID) (*item.Item, error) {
	if f.character != nil {
		f.unload(f.character)
		f.character = nil
	}
	it, err := f.newItem(item.KindCharacter, typeID)
	if err != nil {
		return nil, err
	}
	f.character = it
	f.reg.SetCharacter(it)
	f.load(it)
	return it, nil
}

// addUnordered constructs an item of kind, containers it under parent,
// appends it to set, and brings it live.
func (f *Fit) addUnordered(set *[]*item.Item, kind item.Kind, typeID core.TypeID, container *item.Item) (*item.Item, error) {
	it, err := f.newItem(kind, typeID)
	if err != nil {
		return nil, err
	}
	it.SetContainer(container)
	*set = append(*set, it)
	f.load(it)
	return it, nil
}

func removeUnordered(set *[]*item.Item, it *item.Item) bool {
	for i, cur := range *set {
		if cur == it {
			*set = append((*set)[:i], (*set)[i+1:]...)
			return true
		}
	}
	return false
}

// AddSkill trains typeID onto the fit's character.
func (f *Fit) AddSkill(typeID core.TypeID) (*item.Item, error) {
	it, err := f.newItem(item.KindSkill, typeID)
	if err != nil {
		return nil, err
	}
	it.SetContainer(f.character)
	f.skills[typeID] = it
	f.load(it)
	return it, nil
}

// RemoveSkill untrains typeID, if present.
func (f *Fit) RemoveSkill(typeID core.TypeID) error {
	it, ok := f.skills[typeID]
	if !ok {
		return ferr.NotMemberError(int64(typeID), ferr.WithMeta("container", "skills"))
	}
	delete(f.skills, typeID)
	f.unload(it)
	return nil
}

// Skills returns every trained skill keyed by its type id.
func (f *Fit) Skills() map[core.TypeID]*item.Item {
	out := make(map[core.TypeID]*item.Item, len(f.skills))
	for k, v := range f.skills {
		out[k] = v
	}
	return out
}

// AddDrone adds typeID to the drone bay.
func (f *Fit) AddDrone(typeID core.TypeID) (*item.Item, error) {
	return f.addUnordered(&f.drones, item.KindDrone, typeID, f.ship)
}

// RemoveDrone removes it from the drone bay.
func (f *Fit) RemoveDrone(it *item.Item) error {
	if !removeUnordered(&f.drones, it) {
		return ferr.NotMemberError(int64(it.ID()))
	}
	f.unload(it)
	return nil
}

// AddFighter adds typeID to the fighter bay.
func (f *Fit) AddFighter(typeID core.TypeID) (*item.Item, error) {
	return f.addUnordered(&f.fighters, item.KindFighterSquad, typeID, f.ship)
}

// RemoveFighter removes it from the fighter bay.
func (f *Fit) RemoveFighter(it *item.Item) error {
	if !removeUnordered(&f.fighters, it) {
		return ferr.NotMemberError(int64(it.ID()))
	}
	f.unload(it)
	return nil
}

// AddImplant adds typeID to the character's implants.
func (f *Fit) AddImplant(typeID core.TypeID) (*item.Item, error) {
	return f.addUnordered(&f.implants, item.KindImplant, typeID, f.character)
}

// RemoveImplant removes it from the character's implants.
func (f *Fit) RemoveImplant(it *item.Item) error {
	if !removeUnordered(&f.implants, it) {
		return ferr.NotMemberError(int64(it.ID()))
	}
	f.unload(it)
	return nil
}

// AddBooster adds typeID to the character's boosters.
func (f *Fit) AddBooster(typeID core.TypeID) (*item.Item, error) {
	return f.addUnordered(&f.boosters, item.KindBooster, typeID, f.character)
}

// RemoveBooster removes it from the character's boosters.
func (f *Fit) RemoveBooster(it *item.Item) error {
	if !removeUnordered(&f.boosters, it) {
		return ferr.NotMemberError(int64(it.ID()))
	}
	f.unload(it)
	return nil
}

// AddRig adds typeID to the ship's rigs.
func (f *Fit) AddRig(typeID core.TypeID) (*item.Item, error) {
	return f.addUnordered(&f.rigs, item.KindRig, typeID, f.ship)
}

// RemoveRig removes it from the ship's rigs.
func (f *Fit) RemoveRig(it *item.Item) error {
	if !removeUnordered(&f.rigs, it) {
		return ferr.NotMemberError(int64(it.ID()))
	}
	f.unload(it)
	return nil
}

// AddSubsystem adds typeID to the ship's subsystems.
func (f *Fit) AddSubsystem(typeID core.TypeID) (*item.Item, error) {
	return f.addUnordered(&f.subsystems, item.KindSubsystem, typeID, f.ship)
}

// RemoveSubsystem removes it from the ship's subsystems.
func (f *Fit) RemoveSubsystem(it *item.Item) error {
	if !removeUnordered(&f.subsystems, it) {
		return ferr.NotMemberError(int64(it.ID()))
	}
	f.unload(it)
	return nil
}

// appendModule, insertModule, placeModule, and removeModule are the
// shared rack mechanics behind the High/Mid/Low convenience wrappers
// below, parameterized by which SlotList and item.Kind a rack uses.
func (f *Fit) appendModule(slots *SlotList, kind item.Kind, typeID core.TypeID) (*item.Item, error) {
	it, err := f.newItem(kind, typeID)
	if err != nil {
		return nil, err
	}
	it.SetContainer(f.ship)
	slots.Append(it)
	f.load(it)
	return it, nil
}

func (f *Fit) insertModule(slots *SlotList, idx int, kind item.Kind, typeID core.TypeID) (*item.Item, error) {
	it, err := f.newItem(kind, typeID)
	if err != nil {
		return nil, err
	}
	it.SetContainer(f.ship)
	slots.Insert(idx, it)
	f.load(it)
	return it, nil
}

func (f *Fit) placeModule(slots *SlotList, idx int, kind item.Kind, typeID core.TypeID) (*item.Item, error) {
	it, err := f.newItem(kind, typeID)
	if err != nil {
		return nil, err
	}
	if err := slots.Place(idx, it); err != nil {
		return nil, err
	}
	it.SetContainer(f.ship)
	f.load(it)
	return it, nil
}

func (f *Fit) removeModule(slots *SlotList, idx int) error {
	it, ok := slots.Remove(idx)
	if !ok {
		return ferr.NotMemberError(int64(idx), ferr.WithMeta("container", "module_slot"))
	}
	f.unload(it)
	return nil
}

// AppendHigh adds typeID to the end of the high-slot rack.
func (f *Fit) AppendHigh(typeID core.TypeID) (*item.Item, error) {
	return f.appendModule(&f.high, item.KindModuleHigh, typeID)
}

// InsertHigh opens a new high slot at idx for typeID, shifting later slots up.
func (f *Fit) InsertHigh(idx int, typeID core.TypeID) (*item.Item, error) {
	return f.insertModule(&f.high, idx, item.KindModuleHigh, typeID)
}

// PlaceHigh sets high slot idx to typeID, failing with SlotTakenError if occupied.
func (f *Fit) PlaceHigh(idx int, typeID core.TypeID) (*item.Item, error) {
	return f.placeModule(&f.high, idx, item.KindModuleHigh, typeID)
}

// RemoveHigh empties high slot idx.
func (f *Fit) RemoveHigh(idx int) error { return f.removeModule(&f.high, idx) }

// AppendMid adds typeID to the end of the mid-slot rack.
func (f *Fit) AppendMid(typeID core.TypeID) (*item.Item, error) {
	return f.appendModule(&f.mid, item.KindModuleMid, typeID)
}

// InsertMid opens a new mid slot at idx for typeID, shifting later slots up.
func (f *Fit) InsertMid(idx int, typeID core.TypeID) (*item.Item, error) {
	return f.insertModule(&f.mid, idx, item.KindModuleMid, typeID)
}

// PlaceMid sets mid slot idx to typeID, failing with SlotTakenError if occupied.
func (f *Fit) PlaceMid(idx int, typeID core.TypeID) (*item.Item, error) {
	return f.placeModule(&f.mid, idx, item.KindModuleMid, typeID)
}

// RemoveMid empties mid slot idx.
func (f *Fit) RemoveMid(idx int) error { return f.removeModule(&f.mid, idx) }

// AppendLow adds typeID to the end of the low-slot rack.
func (f *Fit) AppendLow(typeID core.TypeID) (*item.Item, error) {
	return f.appendModule(&f.low, item.KindModuleLow, typeID)
}

// InsertLow opens a new low slot at idx for typeID, shifting later slots up.
func (f *Fit) InsertLow(idx int, typeID core.TypeID) (*item.Item, error) {
	return f.insertModule(&f.low, idx, item.KindModuleLow, typeID)
}

// PlaceLow sets low slot idx to typeID, failing with SlotTakenError if occupied.
func (f *Fit) PlaceLow(idx int, typeID core.TypeID) (*item.Item, error) {
	return f.placeModule(&f.low, idx, item.KindModuleLow, typeID)
}

// RemoveLow empties low slot idx.
func (f *Fit) RemoveLow(idx int) error { return f.removeModule(&f.low, idx) }
