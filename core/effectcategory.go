package core

// EffectCategory classifies an effect; it determines the minimum item
// state at which the effect is eligible to run (spec.md §3 "States are
// totally ordered").
type EffectCategory int

const (
	// CategoryPassive effects run from offline upward (state >= offline
	// in the spec's table reads "passive=0"; ghost items never run
	// effects at all, so the practical floor is offline).
	CategoryPassive EffectCategory = iota
	// CategoryActive effects require the item to be actively cycling.
	CategoryActive
	// CategoryTarget effects require an active, targeted item.
	CategoryTarget
	// CategoryArea effects require an active item affecting an area.
	CategoryArea
	// CategoryOnline effects require the item to be at least online.
	CategoryOnline
	// CategoryOverload effects require the item to be overloaded.
	CategoryOverload
	// CategoryDungeon effects are environment-scripted; they run like
	// passive effects from the calculator's point of view.
	CategoryDungeon
	// CategorySystem effects are engine-internal bookkeeping effects;
	// they run like passive effects from the calculator's point of view.
	CategorySystem
)

// String renders the category for logs.
func (c EffectCategory) String() string {
	switch c {
	case CategoryPassive:
		return "passive"
	case CategoryActive:
		return "active"
	case CategoryTarget:
		return "target"
	case CategoryArea:
		return "area"
	case CategoryOnline:
		return "online"
	case CategoryOverload:
		return "overload"
	case CategoryDungeon:
		return "dungeon"
	case CategorySystem:
		return "system"
	default:
		return "unknown_category"
	}
}

// MinState returns the minimum item state at which effects of this
// category are eligible to run, per the table in spec.md §3:
// passive=0 (offline and up), online=online, active=active,
// target/area=active, overload=overload. Dungeon and system effects are
// treated as passive for state-gating purposes; they are not tied to a
// fittable item's own state machine.
func (c EffectCategory) MinState() State {
	switch c {
	case CategoryOnline:
		return StateOnline
	case CategoryActive, CategoryTarget, CategoryArea:
		return StateActive
	case CategoryOverload:
		return StateOverload
	default:
		return StateOffline
	}
}
