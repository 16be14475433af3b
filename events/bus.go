// Copyright (C) 2026 The EVE Eye
// SPDX-License-Identifier: GPL-3.0-or-later

package events

import (
	"fmt"

	"github.com/TheEveEye/DogmaEngine/ferr"
)

// Handler processes one Message. It may return further messages to
// append to the drain FIFO (spec.md §4.1) instead of publishing them
// directly, so that ordering across a bulk publish stays deterministic.
type Handler func(msg Message) ([]Message, error)

// DefaultDrainBudget bounds how many messages a single top-level Publish
// or PublishBulk call will drain before giving up on a runaway handler
// cascade. Unlike the teacher bus's call-stack recursion counter, this
// bus never recurses into itself — handler-triggered publishes just
// enqueue onto the FIFO already being drained — so the guard is
// expressed as a budget on total messages processed per top-level call
// rather than a nesting depth.
const DefaultDrainBudget = 10000

type subscription struct {
	id      string
	handler Handler
}

// Bus is the per-Fit, single-threaded, synchronous message bus (C2). It
// is not safe for concurrent use from multiple goroutines — spec.md §5
// specifies a single-threaded cooperative scheduling model, so Bus
// carries no locking.
type Bus struct {
	handlers map[Topic][]subscription
	nextID   int

	queue    []Message
	draining bool
	budget   int
}

// NewBus creates a bus with the default drain budget.
func NewBus() *Bus {
	return NewBusWithDrainBudget(DefaultDrainBudget)
}

// NewBusWithDrainBudget creates a bus with a custom drain budget, mainly
// useful for tests that want to assert cascade protection without
// publishing ten thousand messages.
func NewBusWithDrainBudget(budget int) *Bus {
	if budget <= 0 {
		budget = DefaultDrainBudget
	}
	return &Bus{
		handlers: make(map[Topic][]subscription),
		budget:   budget,
	}
}

// Subscribe registers handler against topic, returning a subscription id
// usable with Unsubscribe. Handlers for a topic run in registration
// order.
func (b *Bus) Subscribe(topic Topic, handler Handler) string {
	b.nextID++
	id := fmt.Sprintf("sub-%d", b.nextID)
	b.handlers[topic] = append(b.handlers[topic], subscription{id: id, handler: handler})
	return id
}

// Unsubscribe removes a subscription by id, across all topics.
func (b *Bus) Unsubscribe(id string) bool {
	for topic, subs := range b.handlers {
		for i, s := range subs {
			if s.id == id {
				b.handlers[topic] = append(subs[:i], subs[i+1:]...)
				return true
			}
		}
	}
	return false
}

// Publish dispatches a single message. Equivalent to PublishBulk with a
// one-element batch.
func (b *Bus) Publish(msg Message) error {
	return b.PublishBulk([]Message{msg})
}

// PublishBulk dispatches msgs atomically: no handler for a later message
// in the batch runs before earlier messages' handlers complete. Handlers
// invoked during the drain may return further messages; those are
// appended to the same FIFO and drained before PublishBulk returns
// (spec.md §4.1).
//
// If PublishBulk is called reentrantly from inside a handler (the
// handler holds a *Bus and calls Publish/PublishBulk directly rather
// than returning messages), the nested call enqueues onto the FIFO
// already being drained by the outermost call and returns immediately;
// only the outermost call actually runs the drain loop. This keeps
// delivery ordering well-defined regardless of which style a handler
// uses.
func (b *Bus) PublishBulk(msgs []Message) error {
	b.queue = append(b.queue, msgs...)

	if b.draining {
		return nil
	}

	b.draining = true
	defer func() { b.draining = false }()

	processed := 0
	for len(b.queue) > 0 {
		processed++
		if processed > b.budget {
			b.queue = nil
			return ferr.CascadeDepthExceededError(b.budget)
		}

		msg := b.queue[0]
		b.queue = b.queue[1:]

		subs := b.handlers[msg.Topic()]
		for _, s := range subs {
			deferred, err := s.handler(msg)
			if err != nil {
				b.queue = nil
				return fmt.Errorf("handler %s failed on %s: %w", s.id, msg.Topic(), err)
			}
			b.queue = append(b.queue, deferred...)
		}
	}

	return nil
}

// Clear removes every subscription. Useful for tests.
func (b *Bus) Clear() {
	b.handlers = make(map[Topic][]subscription)
}
