package core

// Domain is the contextual root a modifier's affectee set is resolved
// against (spec.md §3, §4.4 "Domain resolution").
type Domain int

const (
	// DomainSelf resolves to the affector's own item.
	DomainSelf Domain = iota
	// DomainCharacter resolves to the carrier's character.
	DomainCharacter
	// DomainShip resolves to the carrier's ship.
	DomainShip
	// DomainTarget resolves to an item projected onto by the affector.
	DomainTarget
	// DomainOther resolves to an item the affector projects onto,
	// distinct in meaning from DomainTarget only by convention of the
	// effect that uses it (both are resolved via the projection register).
	DomainOther
)

// String renders the domain for logs.
func (d Domain) String() string {
	switch d {
	case DomainSelf:
		return "self"
	case DomainCharacter:
		return "character"
	case DomainShip:
		return "ship"
	case DomainTarget:
		return "target"
	case DomainOther:
		return "other"
	default:
		return "unknown_domain"
	}
}

// AffecteeFilter narrows a domain-resolved item down to the actual set
// of affectees (spec.md §4.4).
type AffecteeFilter int

const (
	// FilterItem affects only the single domain-resolved item.
	FilterItem AffecteeFilter = iota
	// FilterDomain affects every item whose solar-system carrier is the
	// domain-resolved item.
	FilterDomain
	// FilterDomainGroup narrows FilterDomain to a specific type group.
	FilterDomainGroup
	// FilterDomainSkillrq narrows FilterDomain to items requiring a
	// specific skill type.
	FilterDomainSkillrq
	// FilterOwnerSkillrq affects every character-owned item requiring a
	// specific skill type, independent of solar-system carrier.
	FilterOwnerSkillrq
)

// String renders the filter for logs.
func (f AffecteeFilter) String() string {
	switch f {
	case FilterItem:
		return "item"
	case FilterDomain:
		return "domain"
	case FilterDomainGroup:
		return "domain_group"
	case FilterDomainSkillrq:
		return "domain_skillrq"
	case FilterOwnerSkillrq:
		return "owner_skillrq"
	default:
		return "unknown_filter"
	}
}

// CurrentSelf is the sentinel ExtraArg value meaning "resolve to the
// affector's own type id", used by domain_skillrq modifiers such as
// "this module boosts whatever grants its own required skill".
const CurrentSelf SkillTypeID = -1
