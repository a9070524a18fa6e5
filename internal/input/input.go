package input

import (
	"sort"
	"sync"
)

// Key identifiers, named the way browsers report KeyboardEvent.key
const (
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeySpace      = " "
)

// Action represents a logical game action, not a physical key
type Action int

const (
	ActionMoveLeft Action = iota
	ActionMoveRight
	ActionMoveForward
	ActionMoveBackward
	ActionJump
	ActionRespawn
	ActionCount // Sentinel value for array sizing
)

var actionNames = [ActionCount]string{
	ActionMoveLeft:     "left",
	ActionMoveRight:    "right",
	ActionMoveForward:  "forward",
	ActionMoveBackward: "backward",
	ActionJump:         "jump",
	ActionRespawn:      "respawn",
}

func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// ParseAction resolves a config name such as "jump" to its Action.
func ParseAction(name string) (Action, bool) {
	for i, n := range actionNames {
		if n == name {
			return Action(i), true
		}
	}
	return 0, false
}

// KeyState is the set of keys currently held down. Key callbacks write to it,
// the frame driver samples it once per tick.
type KeyState struct {
	mu   sync.Mutex
	held map[string]struct{}
}

// NewKeyState creates an empty key set
func NewKeyState() *KeyState {
	return &KeyState{held: make(map[string]struct{})}
}

// Press marks key as held
func (ks *KeyState) Press(key string) {
	ks.mu.Lock()
	ks.held[key] = struct{}{}
	ks.mu.Unlock()
}

// Release marks key as no longer held
func (ks *KeyState) Release(key string) {
	ks.mu.Lock()
	delete(ks.held, key)
	ks.mu.Unlock()
}

// Held reports whether key is currently down
func (ks *KeyState) Held(key string) bool {
	ks.mu.Lock()
	defer ks.mu.Unlock()
	_, ok := ks.held[key]
	return ok
}

// Snapshot returns a copy of the held keys
func (ks *KeyState) Snapshot() map[string]struct{} {
	ks.mu.Lock()
	defer ks.mu.Unlock()
	out := make(map[string]struct{}, len(ks.held))
	for k := range ks.held {
		out[k] = struct{}{}
	}
	return out
}

// Keys returns the held keys in sorted order, for logging.
func (ks *KeyState) Keys() []string {
	snap := ks.Snapshot()
	keys := make([]string, 0, len(snap))
	for k := range snap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Controls is one frame's view of the input, resolved to actions.
type Controls struct {
	Left     bool
	Right    bool
	Forward  bool
	Backward bool
	Jump     bool
	Respawn  bool
}

// Bindings maps each action to the keys that trigger it.
// Multiple keys can be bound to the same action (e.g., arrows and WASD)
type Bindings [ActionCount][]string

// DefaultBindings returns the arrow-key layout with space to jump
func DefaultBindings() Bindings {
	var b Bindings
	b.Bind(ActionMoveLeft, KeyArrowLeft)
	b.Bind(ActionMoveRight, KeyArrowRight)
	b.Bind(ActionMoveForward, KeyArrowUp)
	b.Bind(ActionMoveBackward, KeyArrowDown)
	b.Bind(ActionJump, KeySpace)
	b.Bind(ActionRespawn, "r")
	return b
}

// Bind adds key to the keys triggering action
func (b *Bindings) Bind(action Action, key string) {
	if action < 0 || action >= ActionCount {
		return
	}
	b[action] = append(b[action], key)
}

// Sample resolves all actions against a single snapshot of ks, so one
// frame never mixes key states from before and after a key event.
func (b *Bindings) Sample(ks *KeyState) Controls {
	held := ks.Snapshot()
	active := func(a Action) bool {
		for _, k := range b[a] {
			if _, ok := held[k]; ok {
				return true
			}
		}
		return false
	}
	return Controls{
		Left:     active(ActionMoveLeft),
		Right:    active(ActionMoveRight),
		Forward:  active(ActionMoveForward),
		Backward: active(ActionMoveBackward),
		Jump:     active(ActionJump),
		Respawn:  active(ActionRespawn),
	}
}
