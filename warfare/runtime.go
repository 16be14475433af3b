// Copyright (C) 2026 The EVE Eye
// SPDX-License-Identifier: GPL-3.0-or-later

// Package warfare implements the warfare-buff runtime (C7): it bridges
// effect-status transitions (C3) into the affection register (C4),
// installing each started effect's modifiers and tearing them down when
// the effect stops. Most effects carry a static modifier tuple and pass
// through unchanged; an effect that instead carries a
// typedata.WarfareTemplateID expands its template into transient
// modifiers bound to the carrying item's buff-value attribute before
// installation (spec.md §4.7).
package warfare

import (
	"github.com/TheEveEye/DogmaEngine/affection"
	"github.com/TheEveEye/DogmaEngine/core"
	"github.com/TheEveEye/DogmaEngine/events"
	"github.com/TheEveEye/DogmaEngine/flog"
	"github.com/TheEveEye/DogmaEngine/item"
	"github.com/TheEveEye/DogmaEngine/typedata"
)

// Runtime subscribes to EffectsStarted/EffectsStopped and keeps the
// affection register's installed modifiers in sync with which effects
// are actually running, the same subscribe-on-apply/unsubscribe-on-
// remove shape as the teacher's effects.Core, generalized here to one
// long-lived pair of bus subscriptions instead of one tracker per
// effect instance.
type Runtime struct {
	bus *events.Bus
	reg *affection.Register
	db  *typedata.Database
	log flog.Logger

	startedSubID string
	stoppedSubID string
}

// NewRuntime builds a Runtime and subscribes it to bus. Callers should
// call Close when the fit is torn down.
func NewRuntime(bus *events.Bus, reg *affection.Register, db *typedata.Database, logger flog.Logger) *Runtime {
	if logger == nil {
		logger = flog.New(nil)
	}
	rt := &Runtime{bus: bus, reg: reg, db: db, log: logger}
	rt.startedSubID = bus.Subscribe(events.TopicEffectsStarted, rt.onStarted)
	rt.stoppedSubID = bus.Subscribe(events.TopicEffectsStopped, rt.onStopped)
	return rt
}

// Close unsubscribes the runtime from its bus, after which it installs
// or removes nothing further.
func (rt *Runtime) Close() {
	rt.bus.Unsubscribe(rt.startedSubID)
	rt.bus.Unsubscribe(rt.stoppedSubID)
}

func (rt *Runtime) onStarted(msg events.Message) ([]events.Message, error) {
	started, ok := msg.(events.EffectsStarted)
	if !ok {
		return nil, nil
	}
	it, ok := started.Item.(*item.Item)
	if !ok {
		return nil, nil
	}
	for _, effectID := range started.EffectIDs {
		rt.install(it, effectID)
	}
	return nil, nil
}

func (rt *Runtime) onStopped(msg events.Message) ([]events.Message, error) {
	stopped, ok := msg.(events.EffectsStopped)
	if !ok {
		return nil, nil
	}
	it, ok := stopped.Item.(*item.Item)
	if !ok {
		return nil, nil
	}
	for _, effectID := range stopped.EffectIDs {
		rt.uninstall(it, effectID)
	}
	return nil, nil
}

// modifiersFor returns the modifier tuple effectID installs: its static
// list, or its warfare template expanded against the affector's own
// buff-value attribute if it carries one. A template id that fails to
// resolve in db yields no modifiers rather than an error, matching the
// "warn and drop" ingestion discipline elsewhere in this engine — a
// dangling template reference is a data problem, not a runtime one.
func (rt *Runtime) modifiersFor(it *item.Item, effectID core.EffectID) []typedata.Modifier {
	eff, ok := rt.db.Effect(effectID)
	if !ok {
		return nil
	}
	if eff.WarfareTemplateID == nil {
		return eff.Modifiers
	}
	tmpl, ok := rt.db.WarfareBuff(*eff.WarfareTemplateID)
	if !ok {
		rt.log.Warn("warfare: dangling template reference", "effect_id", effectID, "template_id", *eff.WarfareTemplateID)
		return nil
	}
	return tmpl.Expand()
}

func (rt *Runtime) install(it *item.Item, effectID core.EffectID) {
	for idx, mod := range rt.modifiersFor(it, effectID) {
		rt.reg.AddModifier(it, effectID, idx, mod)
	}
}

func (rt *Runtime) uninstall(it *item.Item, effectID core.EffectID) {
	for idx := range rt.modifiersFor(it, effectID) {
		rt.reg.RemoveModifier(it.ID(), effectID, idx)
	}
}
