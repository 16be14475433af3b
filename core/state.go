package core

// State is an item's current discrete state. States are totally ordered;
// an effect of a given category can run only once the item's state reaches
// that category's minimum state (see EffectCategory.MinState).
type State int

const (
	// StateGhost is the lowest state: the item exists but contributes nothing.
	StateGhost State = iota
	// StateOffline is fitted but switched off.
	StateOffline
	// StateOnline is switched on.
	StateOnline
	// StateActive is actively cycling (module running, drone engaging).
	StateActive
	// StateOverload is active with overload bonuses/penalties applied.
	StateOverload
)

// String renders the state for logs and test failure messages.
func (s State) String() string {
	switch s {
	case StateGhost:
		return "ghost"
	case StateOffline:
		return "offline"
	case StateOnline:
		return "online"
	case StateActive:
		return "active"
	case StateOverload:
		return "overload"
	default:
		return "unknown_state"
	}
}

// AtLeast reports whether s is at or above min in the total order.
func (s State) AtLeast(min State) bool { return s >= min }

// RunMode is a per-effect override on an item dictating when that effect
// is considered running, independent of (or in addition to) item state.
type RunMode int

const (
	// RunModeFullCompliance is the default: state- and predicate-gated.
	RunModeFullCompliance RunMode = iota
	// RunModeStateCompliance runs once state is met, ignoring predicates
	// such as fitting-chance.
	RunModeStateCompliance
	// RunModeForceRun runs unconditionally, so long as the item is loaded.
	RunModeForceRun
	// RunModeForceStop never runs.
	RunModeForceStop
)

// String renders the run mode for logs.
func (m RunMode) String() string {
	switch m {
	case RunModeFullCompliance:
		return "full_compliance"
	case RunModeStateCompliance:
		return "state_compliance"
	case RunModeForceRun:
		return "force_run"
	case RunModeForceStop:
		return "force_stop"
	default:
		return "unknown_run_mode"
	}
}
