// Copyright (C) 2026 The EVE Eye
// SPDX-License-Identifier: GPL-3.0-or-later

package affection

import (
	"fmt"

	"github.com/TheEveEye/DogmaEngine/core"
	"github.com/TheEveEye/DogmaEngine/ferr"
	"github.com/TheEveEye/DogmaEngine/item"
	"github.com/TheEveEye/DogmaEngine/typedata"
)

// resolveAffectees computes the affectee set for one modifier running on
// affector, implementing the filter table in spec.md §4.4. A nil error
// with a nil/empty result means the domain silently failed to resolve
// (not an anomaly); a non-nil error means the filter/domain combination
// is malformed and should be logged once and ignored.
func (r *Register) resolveAffectees(affector *item.Item, mod typedata.Modifier) (map[affecteeKey]bool, *ferr.Error) {
	if mod.AffecteeFilter == core.FilterOwnerSkillrq {
		return r.ownerSkillrqAffectees(affector, mod), nil
	}

	roots := r.resolveDomainRoots(affector, mod.AffecteeDomain)
	if len(roots) == 0 {
		return nil, nil
	}

	switch mod.AffecteeFilter {
	case core.FilterItem:
		return r.itemAffectees(roots, mod.AffecteeAttrID), nil
	case core.FilterDomain:
		return r.domainAffectees(roots, mod.AffecteeAttrID, nil), nil
	case core.FilterDomainGroup:
		if mod.AffecteeFilterExtraArg == nil {
			return nil, ferr.UnknownAffecteeFilterError("domain_group missing extra_arg")
		}
		groupID := mod.AffecteeFilterExtraArg.AsGroupID()
		return r.domainAffectees(roots, mod.AffecteeAttrID, func(it *item.Item) bool {
			t := it.Type()
			return t != nil && t.GroupID != nil && *t.GroupID == groupID
		}), nil
	case core.FilterDomainSkillrq:
		if mod.AffecteeFilterExtraArg == nil {
			return nil, ferr.UnknownAffecteeFilterError("domain_skillrq missing extra_arg")
		}
		skillID := mod.AffecteeFilterExtraArg.AsSkillTypeID(affector.TypeID())
		return r.domainAffectees(roots, mod.AffecteeAttrID, func(it *item.Item) bool {
			_, ok := it.Type().RequiresSkill(skillID)
			return ok
		}), nil
	default:
		return nil, ferr.UnknownAffecteeFilterError(fmt.Sprint(int(mod.AffecteeFilter)))
	}
}

// resolveDomainRoots resolves affectee_domain to the set of concrete
// root items a domain/domain_group/domain_skillrq filter expands from
// (spec.md §4.4 "Domain resolution"). self/ship/character resolve to at
// most one root; target/other resolve to however many projection links
// exist. An item whose domain cannot be resolved in the current context
// yields no roots, which the caller treats as "no affectees, silently".
func (r *Register) resolveDomainRoots(affector *item.Item, domain core.Domain) []*item.Item {
	switch domain {
	case core.DomainSelf:
		return []*item.Item{affector}
	case core.DomainShip:
		carrier := affector.SolarSystemCarrier()
		if carrier != nil && carrier.Kind() == item.KindShip {
			return []*item.Item{carrier}
		}
		return nil
	case core.DomainCharacter:
		if r.character != nil {
			return []*item.Item{r.character}
		}
		return nil
	case core.DomainTarget, core.DomainOther:
		var roots []*item.Item
		for _, id := range r.proj.TargetsOf(affector.ID()) {
			if target, ok := r.items[id]; ok {
				roots = append(roots, target)
			}
		}
		return roots
	default:
		return nil
	}
}

// itemAffectees implements the "item" filter: the root set itself.
func (r *Register) itemAffectees(roots []*item.Item, attrID core.AttrID) map[affecteeKey]bool {
	out := make(map[affecteeKey]bool)
	for _, it := range roots {
		if !it.Loaded() {
			continue
		}
		out[affecteeKey{it.ID(), attrID}] = true
	}
	return out
}

// domainAffectees implements the "domain"/"domain_group"/"domain_skillrq"
// filters: every loaded item in the fit whose solar system carrier is one
// of roots, optionally further restricted by extra.
func (r *Register) domainAffectees(roots []*item.Item, attrID core.AttrID, extra func(*item.Item) bool) map[affecteeKey]bool {
	rootSet := make(map[core.ItemID]bool, len(roots))
	for _, root := range roots {
		rootSet[root.ID()] = true
	}

	out := make(map[affecteeKey]bool)
	for _, it := range r.items {
		if !it.Loaded() {
			continue
		}
		carrier := it.SolarSystemCarrier()
		if carrier == nil || !rootSet[carrier.ID()] {
			continue
		}
		if extra != nil && !extra(it) {
			continue
		}
		out[affecteeKey{it.ID(), attrID}] = true
	}
	return out
}

// ownerSkillrqAffectees implements the "owner_skillrq" filter: every
// item owned by the character requiring the referenced skill type,
// independent of domain (spec.md §4.4 "Owner-scope").
func (r *Register) ownerSkillrqAffectees(affector *item.Item, mod typedata.Modifier) map[affecteeKey]bool {
	if r.character == nil {
		return nil
	}
	var skillID core.SkillTypeID
	if mod.AffecteeFilterExtraArg != nil {
		skillID = mod.AffecteeFilterExtraArg.AsSkillTypeID(affector.TypeID())
	}

	out := make(map[affecteeKey]bool)
	for _, it := range r.items {
		if !it.Loaded() || !it.OwnerModifiable() {
			continue
		}
		if _, ok := it.Type().RequiresSkill(skillID); ok {
			out[affecteeKey{it.ID(), mod.AffecteeAttrID}] = true
		}
	}
	return out
}
