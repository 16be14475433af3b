// Copyright (C) 2026 The EVE Eye
// SPDX-License-Identifier: GPL-3.0-or-later

package events

import "github.com/TheEveEye/DogmaEngine/core"

// Message is implemented by every value the bus can dispatch. Topic
// identifies the handler-per-message-class mapping a subscriber
// registers against (spec.md §4.1).
type Message interface {
	Topic() Topic
}

// ItemLoaded announces that item has entered the fit's live item set.
type ItemLoaded struct {
	Item core.Entity
}

// Topic implements Message.
func (ItemLoaded) Topic() Topic { return TopicItemLoaded }

// ItemUnloaded announces that item has left the fit's live item set.
type ItemUnloaded struct {
	Item core.Entity
}

// Topic implements Message.
func (ItemUnloaded) Topic() Topic { return TopicItemUnloaded }

// StatesActivated announces that states is now included in item's
// discrete state set.
type StatesActivated struct {
	Item   core.Entity
	States []core.State
}

// Topic implements Message.
func (StatesActivated) Topic() Topic { return TopicStatesActivated }

// StatesDeactivated announces that states is now excluded from item's
// discrete state set.
type StatesDeactivated struct {
	Item   core.Entity
	States []core.State
}

// Topic implements Message.
func (StatesDeactivated) Topic() Topic { return TopicStatesDeactivated }

// StatesActivatedLoaded is the loaded-variant form of StatesActivated,
// published when the state change coincides with item's load.
type StatesActivatedLoaded struct {
	Item   core.Entity
	States []core.State
}

// Topic implements Message.
func (StatesActivatedLoaded) Topic() Topic { return TopicStatesActivatedLoaded }

// StatesDeactivatedLoaded is the loaded-variant form of StatesDeactivated.
type StatesDeactivatedLoaded struct {
	Item   core.Entity
	States []core.State
}

// Topic implements Message.
func (StatesDeactivatedLoaded) Topic() Topic { return TopicStatesDeactivatedLoaded }

// EffectsStarted announces that effectIDs began running on item
// (spec.md §4.3).
type EffectsStarted struct {
	Item      core.Entity
	EffectIDs []core.EffectID
}

// Topic implements Message.
func (EffectsStarted) Topic() Topic { return TopicEffectsStarted }

// EffectsStopped announces that effectIDs stopped running on item.
type EffectsStopped struct {
	Item      core.Entity
	EffectIDs []core.EffectID
}

// Topic implements Message.
func (EffectsStopped) Topic() Topic { return TopicEffectsStopped }

// AttrsValueChanged announces that attrIDs on item may have changed
// value and any cache keyed on them must be invalidated (spec.md
// §4.6.5). Override callbacks subscribed to an affected attribute run
// normally for this form.
type AttrsValueChanged struct {
	Item    core.Entity
	AttrIDs []core.AttrID
}

// Topic implements Message.
func (AttrsValueChanged) Topic() Topic { return TopicAttrsValueChanged }

// AttrsValueChangedMasked is the override-safe form of
// AttrsValueChanged: override producers publish this for their own
// base-attribute changes so they do not re-trigger themselves
// (spec.md §4.6.4).
type AttrsValueChangedMasked struct {
	Item    core.Entity
	AttrIDs []core.AttrID
}

// Topic implements Message.
func (AttrsValueChangedMasked) Topic() Topic { return TopicAttrsValueChangedMasked }

// RahIncomingDmgChanged is a fit-wide notice the (out-of-core) resistance
// simulator publishes when incoming damage composition changes.
type RahIncomingDmgChanged struct {
	Item core.Entity
}

// Topic implements Message.
func (RahIncomingDmgChanged) Topic() Topic { return TopicRahIncomingDmgChanged }
