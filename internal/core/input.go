package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone          Action = iota
	ActionMoveLeft             // start moving left (repeats while held)
	ActionMoveRight            // start moving right
	ActionMoveStop             // horizontal key released
	ActionRotate               // rotate clockwise
	ActionSoftDropStart        // soft drop key pressed
	ActionSoftDropStop         // soft drop key released
	ActionHardDrop             // drop to rest
	ActionPause                // toggle pause
	ActionConfirm              // start / restart
	ActionLevelUp              // raise start level on the home screen
	ActionLevelDown            // lower start level on the home screen
	ActionQuit                 // leave the program or SSH session
)

var actionNames = map[Action]string{
	ActionNone:          "None",
	ActionMoveLeft:      "MoveLeft",
	ActionMoveRight:     "MoveRight",
	ActionMoveStop:      "MoveStop",
	ActionRotate:        "Rotate",
	ActionSoftDropStart: "SoftDropStart",
	ActionSoftDropStop:  "SoftDropStop",
	ActionHardDrop:      "HardDrop",
	ActionPause:         "Pause",
	ActionConfirm:       "Confirm",
	ActionLevelUp:       "LevelUp",
	ActionLevelDown:     "LevelDown",
	ActionQuit:          "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// ParseAction is the inverse of String. Unknown names yield ActionNone and false.
func ParseAction(name string) (Action, bool) {
	for a, n := range actionNames {
		if n == name {
			return a, true
		}
	}
	return ActionNone, false
}

// InputFrame holds the actions triggered during one simulation tick,
// in the order they arrived. Order matters: a press followed by a release in
// the same tick is not the same as a release followed by a press.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set appends an action to the frame. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame, keeping the backing array.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}
