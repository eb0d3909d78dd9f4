package config

// Key identifies a physical keyboard key independent of the windowing backend
type Key int

const (
	KeyUnknown Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyA
	KeyD
	KeyW
	KeyS
	KeyF
	KeyR
	KeySpace
	KeyEnter
	KeyKPEnter
	KeyEscape
)

var keyNames = map[Key]string{
	KeyLeft:    "Left",
	KeyRight:   "Right",
	KeyUp:      "Up",
	KeyDown:    "Down",
	KeyA:       "A",
	KeyD:       "D",
	KeyW:       "W",
	KeyS:       "S",
	KeyF:       "F",
	KeyR:       "R",
	KeySpace:   "Space",
	KeyEnter:   "Enter",
	KeyKPEnter: "KPEnter",
	KeyEscape:  "Escape",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionDuck
	ActionJump
	ActionConfirm
	ActionBack
	ActionMenuUp
	ActionMenuDown
	ActionToggleFullscreen
	ActionNextResolution
	ActionPrevResolution
	ActionCount // Must be last - used for array sizing
)

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID][]Key `yaml:"-"`

	// A swipe registers once vertical travel reaches the larger of these
	SwipeMinPixels        float64 `yaml:"swipeMinPixels"`
	SwipeViewportFraction float64 `yaml:"swipeViewportFraction"`
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		SwipeMinPixels:        48,
		SwipeViewportFraction: 0.08,
		Bindings: map[ActionID][]Key{
			ActionMoveLeft:         {KeyLeft, KeyA},
			ActionMoveRight:        {KeyRight, KeyD},
			ActionDuck:             {KeyDown, KeyS},
			ActionJump:             {KeyUp, KeyW, KeySpace},
			ActionConfirm:          {KeyEnter, KeyKPEnter},
			ActionBack:             {KeyEscape},
			ActionMenuUp:           {KeyUp, KeyW},
			ActionMenuDown:         {KeyDown, KeyS},
			ActionToggleFullscreen: {KeyF},
			ActionNextResolution:   {KeyR, KeyRight},
			ActionPrevResolution:   {KeyLeft},
		},
	}
}

// Bound reports whether key k triggers action a.
func (c InputConfig) Bound(a ActionID, k Key) bool {
	for _, bound := range c.Bindings[a] {
		if bound == k {
			return true
		}
	}
	return false
}
