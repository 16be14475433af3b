// Copyright (C) 2026 The EVE Eye
// SPDX-License-Identifier: GPL-3.0-or-later

package fit

import (
	"github.com/TheEveEye/DogmaEngine/ferr"
	"github.com/TheEveEye/DogmaEngine/item"
)

// SlotList is an ordered, gap-tolerant list of items: the shape
// `modules.high`/`mid`/`low` need (spec.md §6 "ordered modules.high.
// append/insert/place/remove with SlotTakenError on conflict"),
// generalized from the teacher's resources.Pool (a plain map-keyed
// container with no business logic) to preserve slot position instead
// of discarding it on removal.
type SlotList struct {
	slots []*item.Item
}

// Len returns the number of slots, including empty ones left by Remove.
func (s *SlotList) Len() int { return len(s.slots) }

// At returns the item in slot idx, or false if idx is out of range or empty.
func (s *SlotList) At(idx int) (*item.Item, bool) {
	if idx < 0 || idx >= len(s.slots) || s.slots[idx] == nil {
		return nil, false
	}
	return s.slots[idx], true
}

// Append adds it in a new slot at the end, returning its index.
func (s *SlotList) Append(it *item.Item) int {
	s.slots = append(s.slots, it)
	return len(s.slots) - 1
}

// Insert opens a new slot at idx, shifting every later slot up by one.
func (s *SlotList) Insert(idx int, it *item.Item) {
	if idx >= len(s.slots) {
		for len(s.slots) < idx {
			s.slots = append(s.slots, nil)
		}
		s.slots = append(s.slots, it)
		return
	}
	s.slots = append(s.slots, nil)
	copy(s.slots[idx+1:], s.slots[idx:])
	s.slots[idx] = it
}

// Place sets slot idx to it without shifting anything, growing the list
// with empty slots if needed. It fails with ferr.SlotTakenError if idx
// is already occupied.
func (s *SlotList) Place(idx int, it *item.Item) error {
	if idx < len(s.slots) && s.slots[idx] != nil {
		return ferr.SlotTakenError(idx, ferr.WithItem(int64(s.slots[idx].ID())))
	}
	for len(s.slots) <= idx {
		s.slots = append(s.slots, nil)
	}
	s.slots[idx] = it
	return nil
}

// Remove empties slot idx, leaving a gap, and returns what was there. A
// non-member idx (out of range or already empty) is a no-op returning
// (nil, false): removing a non-member is a programmer error the caller
// is expected to have ruled out via At first.
func (s *SlotList) Remove(idx int) (*item.Item, bool) {
	it, ok := s.At(idx)
	if !ok {
		return nil, false
	}
	s.slots[idx] = nil
	return it, true
}

// RemoveItem empties whichever slot currently holds it, if any.
func (s *SlotList) RemoveItem(it *item.Item) bool {
	for idx, cur := range s.slots {
		if cur == it {
			s.slots[idx] = nil
			return true
		}
	}
	return false
}

// Items returns every non-empty slot's item, in slot order.
func (s *SlotList) Items() []*item.Item {
	out := make([]*item.Item, 0, len(s.slots))
	for _, it := range s.slots {
		if it != nil {
			out = append(out, it)
		}
	}
	return out
}
