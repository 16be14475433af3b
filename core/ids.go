// Package core provides the fundamental identifiers and interfaces shared
// across every layer of the Dogma engine: the data model, the message bus,
// the attribute calculator, the affection register, and the fit aggregate.
package core

// TypeID identifies a row in the type database (a ship, module, charge,
// skill, drone, and so on).
type TypeID int64

// GroupID identifies a type's group, used by the domain_group affectee
// filter.
type GroupID int64

// CategoryID identifies a type's category (ship, module, charge, skill...).
type CategoryID int64

// AttrID identifies an attribute definition.
type AttrID int64

// EffectID identifies an effect definition.
type EffectID int64

// AbilityID identifies a fighter-squad ability.
type AbilityID int64

// SkillTypeID identifies the type of a skill required by a domain_skillrq
// or owner_skillrq modifier filter.
type SkillTypeID int64

// ItemID identifies a live item within a fit. Unlike the ids above, which
// name rows in the immutable type database, an ItemID names a runtime
// entity and is assigned by whatever owns the fit (see package fit).
type ItemID int64

// Entity is implemented by anything that participates in the affection
// graph and message bus as an addressable object.
type Entity interface {
	// ID returns the item's identity within its owning fit.
	ID() ItemID

	// EntityType describes what kind of item this is, for logging.
	EntityType() string
}
