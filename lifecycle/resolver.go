// Copyright (C) 2026 The EVE Eye
// SPDX-License-Identifier: GPL-3.0-or-later

// Package lifecycle implements the effect-status resolver (C3): given an
// item, it determines which of its type's effects should be running
// under current conditions and diffs that against what was running
// before (spec.md §4.3).
package lifecycle

import (
	"github.com/TheEveEye/DogmaEngine/core"
	"github.com/TheEveEye/DogmaEngine/item"
	"github.com/TheEveEye/DogmaEngine/typedata"
)

// Predicate is a global gating condition full_compliance effects must
// additionally satisfy: resource availability, fitting chance, and
// similar environment checks (spec.md §4.3, Open Question (a)).
// state_compliance effects ignore predicates by design; force_run and
// force_stop ignore both state and predicates.
//
// Open Question (a) is resolved here as a registrable list rather than a
// fixed built-in set: the source's predicate set is ambiguous, and a
// registrable list lets a host compose whatever checks its data and
// simulators need without the resolver hard-coding them.
type Predicate func(it *item.Item, effectID core.EffectID) bool

// Resolver computes which of an item's effects should be running and
// diffs the result against the item's previously running set.
type Resolver struct {
	predicates []Predicate
}

// NewResolver builds a resolver gated by the given global predicates, in
// addition to the state/run-mode rules every effect is always subject to.
func NewResolver(predicates ...Predicate) *Resolver {
	return &Resolver{predicates: predicates}
}

// Diff is the result of resolving one item's running-effect set: the
// effect ids that started and stopped this pulse.
type Diff struct {
	Started []core.EffectID
	Stopped []core.EffectID
}

// Empty reports whether nothing changed.
func (d Diff) Empty() bool { return len(d.Started) == 0 && len(d.Stopped) == 0 }

// Resolve computes the desired running set for it, updates it's running
// set in place, and returns the started/stopped diff the caller should
// publish as EffectsStarted/EffectsStopped (spec.md §4.3). Unloaded items
// always resolve to an empty diff: they never have running effects.
func (r *Resolver) Resolve(it *item.Item) Diff {
	if !it.Loaded() {
		return Diff{}
	}

	wasRunning := make(map[core.EffectID]bool)
	for _, id := range it.RunningEffectIDs() {
		wasRunning[id] = true
	}

	nowRunning := make(map[core.EffectID]bool, len(it.Type().Effects))
	for effectID, eff := range it.Type().Effects {
		if r.shouldRun(it, effectID, eff) {
			nowRunning[effectID] = true
		}
	}

	var diff Diff
	for effectID := range nowRunning {
		if !wasRunning[effectID] {
			diff.Started = append(diff.Started, effectID)
		}
	}
	for effectID := range wasRunning {
		if !nowRunning[effectID] {
			diff.Stopped = append(diff.Stopped, effectID)
		}
	}

	for _, id := range diff.Started {
		it.SetRunning(id, true)
	}
	for _, id := range diff.Stopped {
		it.SetRunning(id, false)
	}

	return diff
}

func (r *Resolver) shouldRun(it *item.Item, effectID core.EffectID, eff *typedata.Effect) bool {
	switch it.RunMode(effectID) {
	case core.RunModeForceStop:
		return false
	case core.RunModeForceRun:
		return true
	}

	minState := eff.Category.MinState()
	if defaultID := it.Type().DefaultEffectID; defaultID != nil && *defaultID == effectID {
		// Concrete rule (spec.md §4.3): default-effect status is
		// active-state-and-higher regardless of category.
		minState = core.StateActive
	}

	if !it.State().AtLeast(minState) {
		return false
	}

	if it.RunMode(effectID) == core.RunModeStateCompliance {
		return true
	}

	for _, pred := range r.predicates {
		if !pred(it, effectID) {
			return false
		}
	}
	return true
}
