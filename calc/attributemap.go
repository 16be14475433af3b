// Copyright (C) 2026 The EVE Eye
// SPDX-License-Identifier: GPL-3.0-or-later

package calc

import (
	"github.com/TheEveEye/DogmaEngine/core"
	"github.com/TheEveEye/DogmaEngine/ferr"
	"github.com/TheEveEye/DogmaEngine/typedata"
)

// OverrideFunc computes an override value on demand. It is called at
// most once per Get lookup (spec.md §4.6.4).
type OverrideFunc func() float64

type override struct {
	value    *float64
	callback OverrideFunc
}

// AttributeMap is the per-item attribute calculator (C6): base values
// from the item's type, a memoizing modified-value cache, and optional
// per-attribute overrides. One AttributeMap belongs to exactly one item.
type AttributeMap struct {
	itemID core.ItemID
	typ    *typedata.Type
	db     *typedata.Database
	source ModifierSource

	cache     map[core.AttrID]float64
	overrides map[core.AttrID]override
	computing map[core.AttrID]bool // reentrancy guard, per spec.md §5
}

// NewAttributeMap builds an attribute map for an item of type typ,
// reading metadata and cap definitions from db and live modifier
// contributions from source.
func NewAttributeMap(itemID core.ItemID, typ *typedata.Type, db *typedata.Database, source ModifierSource) *AttributeMap {
	if source == nil {
		source = NoModifiers{}
	}
	return &AttributeMap{
		itemID:    itemID,
		typ:       typ,
		db:        db,
		source:    source,
		cache:     make(map[core.AttrID]float64),
		overrides: make(map[core.AttrID]override),
		computing: make(map[core.AttrID]bool),
	}
}

// Base returns attrID's base value: the type's own value if present,
// else the attribute metadata's default, else BaseValueError
// (spec.md §4.6.3).
func (m *AttributeMap) Base(attrID core.AttrID) (float64, error) {
	if v, ok := m.typ.Attr(attrID); ok {
		return v, nil
	}
	meta, ok := m.db.Attribute(attrID)
	if !ok {
		return 0, ferr.AttrMetadataError(int64(attrID), ferr.WithAttr(int64(attrID)))
	}
	if meta.DefaultValue != nil {
		return *meta.DefaultValue, nil
	}
	return 0, ferr.BaseValueError(int64(attrID), ferr.WithAttr(int64(attrID)))
}

// Get returns attrID's modified value, computing and caching it if
// necessary. An override, if set, takes precedence over computation. A
// callback override is invoked once per lookup rather than cached
// (spec.md §4.6.4): it stands in for something like the RAH sim's
// resonance read, which reflects state the cache's invalidation
// messages may never cover for this attribute. A pinned override value
// is stable by construction, so it is cached like a computed value.
func (m *AttributeMap) Get(attrID core.AttrID) (float64, error) {
	if ov, ok := m.overrides[attrID]; ok && ov.callback != nil {
		if m.computing[attrID] {
			// Reentrancy guard tripped: fall back to the unoverridden
			// value rather than deadlock or recurse (spec.md §5
			// "Override producers that fail mid-computation must fall
			// back to an unoverridden value").
			return m.compute(attrID)
		}
		m.computing[attrID] = true
		val := ov.callback()
		delete(m.computing, attrID)
		return val, nil
	}

	if v, ok := m.cache[attrID]; ok {
		return v, nil
	}

	if ov, ok := m.overrides[attrID]; ok && ov.value != nil {
		m.cache[attrID] = *ov.value
		return *ov.value, nil
	}

	return m.computeAndCache(attrID)
}

func (m *AttributeMap) computeAndCache(attrID core.AttrID) (float64, error) {
	if m.computing[attrID] {
		// A cap cycle or similarly malformed cap chain; fail rather
		// than loop.
		return 0, ferr.AttrMetadataError(int64(attrID), ferr.WithAttr(int64(attrID)), ferr.WithMeta("reason", "cyclic cap reference"))
	}
	m.computing[attrID] = true
	val, err := m.compute(attrID)
	delete(m.computing, attrID)
	if err != nil {
		return 0, err
	}
	m.cache[attrID] = val
	return val, nil
}

// compute runs the fixed 9-operator pipeline (spec.md §4.6.1) and
// applies the cap clamp (§4.6.2).
func (m *AttributeMap) compute(attrID core.AttrID) (float64, error) {
	base, err := m.Base(attrID)
	if err != nil {
		return 0, err
	}
	meta, ok := m.db.Attribute(attrID)
	if !ok {
		return 0, ferr.AttrMetadataError(int64(attrID), ferr.WithAttr(int64(attrID)))
	}

	byOp := make(map[core.Operator][]float64)
	for _, c := range m.source.Contributions(m.itemID, attrID) {
		byOp[c.Operator] = append(byOp[c.Operator], c.Operand)
	}

	acc := base

	if ops := byOp[core.OpPreAssign]; len(ops) > 0 {
		acc = resolveAssign(ops, meta.HighIsGood)
	}

	preGroup := make([]float64, 0, len(byOp[core.OpPreMul])+len(byOp[core.OpPreDiv]))
	preGroup = append(preGroup, byOp[core.OpPreMul]...)
	for _, v := range byOp[core.OpPreDiv] {
		preGroup = append(preGroup, 1/v)
	}
	acc *= combineMultiplicative(preGroup, meta.HighIsGood, meta.Stackable)

	for _, v := range byOp[core.OpModAdd] {
		acc += v
	}
	for _, v := range byOp[core.OpModSub] {
		acc -= v
	}

	postGroup := make([]float64, 0, len(byOp[core.OpPostMul])+len(byOp[core.OpPostDiv])+len(byOp[core.OpPostPercent]))
	postGroup = append(postGroup, byOp[core.OpPostMul]...)
	for _, v := range byOp[core.OpPostDiv] {
		postGroup = append(postGroup, 1/v)
	}
	for _, v := range byOp[core.OpPostPercent] {
		postGroup = append(postGroup, 1+v/100)
	}
	acc *= combineMultiplicative(postGroup, meta.HighIsGood, meta.Stackable)

	if ops := byOp[core.OpPostAssign]; len(ops) > 0 {
		acc = resolveAssign(ops, meta.HighIsGood)
	}

	if meta.MaxAttrID != nil {
		if capVal, err := m.Get(*meta.MaxAttrID); err == nil && acc > capVal {
			acc = capVal
		}
	}

	return acc, nil
}

// SetOverrideValue pins attrID to a fixed value, bypassing computation
// until cleared.
func (m *AttributeMap) SetOverrideValue(attrID core.AttrID, value float64) {
	m.overrides[attrID] = override{value: &value}
	delete(m.cache, attrID)
}

// SetOverrideCallback pins attrID to a callback invoked once per Get
// lookup, bypassing computation until cleared.
func (m *AttributeMap) SetOverrideCallback(attrID core.AttrID, fn OverrideFunc) {
	m.overrides[attrID] = override{callback: fn}
	delete(m.cache, attrID)
}

// ClearOverride removes any override on attrID, reverting to computed
// values.
func (m *AttributeMap) ClearOverride(attrID core.AttrID) {
	delete(m.overrides, attrID)
	delete(m.cache, attrID)
}

// Invalidate drops the cached modified value for each attribute in
// attrIDs, in response to an AttrsValueChanged/Masked message
// (spec.md §4.6.5). Downstream cascade to dependent attributes on
// other items is the affection register's responsibility: it knows the
// reverse dependency graph this map does not.
func (m *AttributeMap) Invalidate(attrIDs ...core.AttrID) {
	for _, id := range attrIDs {
		delete(m.cache, id)
	}
}
