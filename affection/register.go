// Copyright (C) 2026 The EVE Eye
// SPDX-License-Identifier: GPL-3.0-or-later

// Package affection implements the affection register (C4) and the
// projection register it depends on for target/other domains (C5):
// the bidirectional index of which running modifiers affect which
// (item, attribute) pairs (spec.md §4.4, §4.5).
package affection

import (
	"fmt"

	"github.com/TheEveEye/DogmaEngine/calc"
	"github.com/TheEveEye/DogmaEngine/core"
	"github.com/TheEveEye/DogmaEngine/events"
	"github.com/TheEveEye/DogmaEngine/ferr"
	"github.com/TheEveEye/DogmaEngine/flog"
	"github.com/TheEveEye/DogmaEngine/item"
	"github.com/TheEveEye/DogmaEngine/typedata"
)

// affectorKey identifies one running (affector_item, effect_id,
// modifier_index) triple (spec.md §4.4 "Affector").
type affectorKey struct {
	ItemID       core.ItemID
	EffectID     core.EffectID
	ModifierIdx  int
}

// affecteeKey identifies one (item, attribute) pair (spec.md glossary
// "Affectee"). It is also used, with ItemID/AttrID reinterpreted as an
// affector's own (item, affector_attr_id), as the key into the reverse
// dependency index the §4.6.5 cascade walks.
type affecteeKey struct {
	ItemID core.ItemID
	AttrID core.AttrID
}

type affectorEntry struct {
	affectorItem *item.Item
	modifier     typedata.Modifier
	affectees    map[affecteeKey]bool
}

// Register is the affection register: the relation
// R ⊆ Affector × AffecteeItem × AffecteeAttrId (spec.md §4.4).
type Register struct {
	bus       *events.Bus
	log       flog.Logger
	items     map[core.ItemID]*item.Item
	character *item.Item
	proj      *Projections

	byAffector map[affectorKey]*affectorEntry
	byAffectee map[affecteeKey]map[affectorKey]bool
	// bySourceAttr indexes affector entries by the (affector_item,
	// affector_attr_id) pair that feeds them, giving O(1) access to the
	// reverse dependency graph the §4.6.5 cascade needs.
	bySourceAttr map[affecteeKey]map[affectorKey]bool

	warned map[string]bool
}

var _ calc.ModifierSource = (*Register)(nil)

// New builds an empty affection register. proj may be nil (equivalent
// to an empty Projections); logger may be nil (defaults to flog.New(nil)).
func New(bus *events.Bus, proj *Projections, logger flog.Logger) *Register {
	if proj == nil {
		proj = NewProjections()
	}
	if logger == nil {
		logger = flog.New(nil)
	}
	return &Register{
		bus:          bus,
		log:          logger,
		items:        make(map[core.ItemID]*item.Item),
		proj:         proj,
		byAffector:   make(map[affectorKey]*affectorEntry),
		byAffectee:   make(map[affecteeKey]map[affectorKey]bool),
		bySourceAttr: make(map[affecteeKey]map[affectorKey]bool),
		warned:       make(map[string]bool),
	}
}

// SetCharacter designates the fit's character item, required for
// owner_skillrq affectees and the character domain (spec.md §4.4
// "Owner-scope edges require a character to exist").
func (r *Register) SetCharacter(c *item.Item) { r.character = c }

// RegisterItem adds it to the register's view of the fit's live items
// and re-evaluates every existing affector against it, so that
// pre-existing modifiers whose filters now match the newly loaded item
// pick it up (spec.md §4.4 "When an item loads... register updates
// affectee sets for any pre-existing affectors whose filters match the
// new/old item").
func (r *Register) RegisterItem(it *item.Item) {
	r.items[it.ID()] = it
	r.rescanAffectors()
}

// UnregisterItem removes it from the register: any affector entries it
// owns are torn down, and every remaining affector is re-evaluated so
// affectee sets that included it shrink accordingly.
func (r *Register) UnregisterItem(it *item.Item) {
	for key, entry := range r.byAffector {
		if entry.affectorItem.ID() == it.ID() {
			r.removeEntry(key, entry)
			r.notify(entry.affectees)
		}
	}
	delete(r.items, it.ID())
	r.proj.UnlinkAll(it.ID())
	r.rescanAffectors()
}

// AddModifier installs one running modifier as an affector and emits
// AttrsValueChanged for every affectee edge created (spec.md §4.4
// "Every edge insertion emits AttrsValueChanged"). Calling it again for
// an already-installed (item, effect, index) triple is a no-op.
func (r *Register) AddModifier(affector *item.Item, effectID core.EffectID, modifierIdx int, mod typedata.Modifier) {
	key := affectorKey{affector.ID(), effectID, modifierIdx}
	if _, exists := r.byAffector[key]; exists {
		return
	}

	affectees, warnErr := r.resolveAffectees(affector, mod)
	if warnErr != nil {
		r.logOnce(affector.TypeID(), mod, warnErr)
		return
	}

	entry := &affectorEntry{affectorItem: affector, modifier: mod, affectees: affectees}
	r.byAffector[key] = entry
	for ak := range affectees {
		r.indexAffectee(key, ak)
	}
	r.indexSource(key, affector.ID(), mod.AffectorAttrID)

	r.notify(affectees)
}

// RemoveModifier tears down a running modifier's affector entry and
// emits AttrsValueChanged for every affectee edge removed.
func (r *Register) RemoveModifier(affectorItemID core.ItemID, effectID core.EffectID, modifierIdx int) {
	key := affectorKey{affectorItemID, effectID, modifierIdx}
	entry, ok := r.byAffector[key]
	if !ok {
		return
	}
	r.removeEntry(key, entry)
	r.notify(entry.affectees)
}

func (r *Register) removeEntry(key affectorKey, entry *affectorEntry) {
	delete(r.byAffector, key)
	for ak := range entry.affectees {
		r.unindexAffectee(key, ak)
	}
	r.unindexSource(key, entry.affectorItem.ID(), entry.modifier.AffectorAttrID)
}

// Contributions implements calc.ModifierSource.
func (r *Register) Contributions(itemID core.ItemID, attrID core.AttrID) []calc.Contribution {
	affectors := r.byAffectee[affecteeKey{itemID, attrID}]
	if len(affectors) == 0 {
		return nil
	}
	out := make([]calc.Contribution, 0, len(affectors))
	for affKey := range affectors {
		entry, ok := r.byAffector[affKey]
		if !ok {
			continue
		}
		operand, ok := entry.affectorItem.Attr(entry.modifier.AffectorAttrID)
		if !ok {
			continue
		}
		out = append(out, calc.Contribution{Operator: entry.modifier.Operator, Operand: operand})
	}
	return out
}

func (r *Register) indexAffectee(key affectorKey, ak affecteeKey) {
	if r.byAffectee[ak] == nil {
		r.byAffectee[ak] = make(map[affectorKey]bool)
	}
	r.byAffectee[ak][key] = true
}

func (r *Register) unindexAffectee(key affectorKey, ak affecteeKey) {
	if set, ok := r.byAffectee[ak]; ok {
		delete(set, key)
		if len(set) == 0 {
			delete(r.byAffectee, ak)
		}
	}
}

func (r *Register) indexSource(key affectorKey, affectorItemID core.ItemID, affectorAttrID core.AttrID) {
	sk := affecteeKey{affectorItemID, affectorAttrID}
	if r.bySourceAttr[sk] == nil {
		r.bySourceAttr[sk] = make(map[affectorKey]bool)
	}
	r.bySourceAttr[sk][key] = true
}

func (r *Register) unindexSource(key affectorKey, affectorItemID core.ItemID, affectorAttrID core.AttrID) {
	sk := affecteeKey{affectorItemID, affectorAttrID}
	if set, ok := r.bySourceAttr[sk]; ok {
		delete(set, key)
		if len(set) == 0 {
			delete(r.bySourceAttr, sk)
		}
	}
}

// rescanAffectors recomputes every existing affector's affectee set
// against the current item population and notifies whatever changed.
func (r *Register) rescanAffectors() {
	for key, entry := range r.byAffector {
		newAffectees, warnErr := r.resolveAffectees(entry.affectorItem, entry.modifier)
		if warnErr != nil {
			continue // already rejected (and logged) at AddModifier time
		}
		changed := make(map[affecteeKey]bool)
		for ak := range newAffectees {
			if !entry.affectees[ak] {
				r.indexAffectee(key, ak)
				changed[ak] = true
			}
		}
		for ak := range entry.affectees {
			if !newAffectees[ak] {
				r.unindexAffectee(key, ak)
				changed[ak] = true
			}
		}
		entry.affectees = newAffectees
		r.notify(changed)
	}
}

// notify invalidates each changed attribute's cache and re-emits
// AttrsValueChanged, then walks the reverse dependency graph to
// invalidate downstream attributes (spec.md §4.6.5), repeating until no
// new attribute is touched.
func (r *Register) notify(changed map[affecteeKey]bool) {
	visited := make(map[affecteeKey]bool, len(changed))
	frontier := changed
	for len(frontier) > 0 {
		r.invalidateAndPublish(frontier)
		for ak := range frontier {
			visited[ak] = true
		}

		next := make(map[affecteeKey]bool)
		for ak := range frontier {
			for affKey := range r.bySourceAttr[ak] {
				entry, ok := r.byAffector[affKey]
				if !ok {
					continue
				}
				for affectee := range entry.affectees {
					if !visited[affectee] {
						next[affectee] = true
					}
				}
			}
		}
		frontier = next
	}
}

func (r *Register) invalidateAndPublish(set map[affecteeKey]bool) {
	if len(set) == 0 {
		return
	}
	byItem := make(map[core.ItemID][]core.AttrID)
	for ak := range set {
		it, ok := r.items[ak.ItemID]
		if !ok {
			continue
		}
		if attrs := it.Attrs(); attrs != nil {
			attrs.Invalidate(ak.AttrID)
		}
		byItem[ak.ItemID] = append(byItem[ak.ItemID], ak.AttrID)
	}
	for itemID, attrIDs := range byItem {
		it := r.items[itemID]
		if r.bus != nil {
			_ = r.bus.Publish(events.AttrsValueChanged{Item: it, AttrIDs: attrIDs})
		}
	}
}

func (r *Register) logOnce(typeID core.TypeID, mod typedata.Modifier, err *ferr.Error) {
	key := fmt.Sprintf("%d:%+v", typeID, mod)
	if r.warned[key] {
		return
	}
	r.warned[key] = true
	r.log.Warn("affection: ignoring modifier", "type_id", typeID, "error", err.Error())
}
