package engine

// IntentKind enumerates the inbound player intents.
type IntentKind int

const (
	IntentMove IntentKind = iota
	IntentRotate
	IntentSoftDrop
	IntentHardDrop
	IntentPause
	IntentConfirm
	IntentChangeStartLevel
)

// String returns a human-readable name for the intent kind.
func (k IntentKind) String() string {
	switch k {
	case IntentMove:
		return "Move"
	case IntentRotate:
		return "RotateOnce"
	case IntentSoftDrop:
		return "SoftDrop"
	case IntentHardDrop:
		return "HardDrop"
	case IntentPause:
		return "Pause"
	case IntentConfirm:
		return "Confirm"
	case IntentChangeStartLevel:
		return "ChangeStartLevel"
	default:
		return "Unknown"
	}
}

// Intent is a discrete player request delivered to a Session.
type Intent struct {
	Kind      IntentKind
	Direction int  // Move and ChangeStartLevel: -1, 0 or +1
	Start     bool // SoftDrop: true on press, false on release
}

// Move starts (dir = ±1) or stops (dir = 0) horizontal movement.
func Move(dir int) Intent {
	return Intent{Kind: IntentMove, Direction: sign(dir)}
}

// RotateOnce rotates the active piece clockwise.
func RotateOnce() Intent {
	return Intent{Kind: IntentRotate}
}

// SoftDrop starts or stops the fast drop.
func SoftDrop(start bool) Intent {
	return Intent{Kind: IntentSoftDrop, Start: start}
}

// HardDrop drops the active piece to rest immediately.
func HardDrop() Intent {
	return Intent{Kind: IntentHardDrop}
}

// Pause toggles the pause state.
func Pause() Intent {
	return Intent{Kind: IntentPause}
}

// Confirm starts a run from Home or restarts from Paused and GameOver.
func Confirm() Intent {
	return Intent{Kind: IntentConfirm}
}

// ChangeStartLevel raises or lowers the start level on the Home screen.
func ChangeStartLevel(dir int) Intent {
	return Intent{Kind: IntentChangeStartLevel, Direction: sign(dir)}
}
