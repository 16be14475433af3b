// Copyright (C) 2026 The EVE Eye
// SPDX-License-Identifier: GPL-3.0-or-later

// Package events implements the synchronous, single-threaded publish/
// subscribe bus each Fit owns (spec.md §4.1, C2). Messages are delivered
// in registration order; a handler may return further messages, which are
// appended to a FIFO and drained before the outer publish call returns
// (spec.md §5 "Ordering guarantees").
package events

// Topic names one of the message classes in the minimum taxonomy
// (spec.md §4.1). Unlike the teacher bus's reflect-based *core.Ref
// routing, topics here are a small closed set known up front, so a plain
// comparable key is enough.
type Topic string

const (
	TopicItemLoaded               Topic = "item_loaded"
	TopicItemUnloaded             Topic = "item_unloaded"
	TopicStatesActivated          Topic = "states_activated"
	TopicStatesDeactivated        Topic = "states_deactivated"
	TopicStatesActivatedLoaded    Topic = "states_activated_loaded"
	TopicStatesDeactivatedLoaded  Topic = "states_deactivated_loaded"
	TopicEffectsStarted           Topic = "effects_started"
	TopicEffectsStopped           Topic = "effects_stopped"
	TopicAttrsValueChanged        Topic = "attrs_value_changed"
	TopicAttrsValueChangedMasked  Topic = "attrs_value_changed_masked"
	TopicRahIncomingDmgChanged    Topic = "rah_incoming_dmg_changed"
)
