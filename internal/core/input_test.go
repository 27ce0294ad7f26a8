package core

import "testing"

func TestInputFrameKeepsArrivalOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionSoftDropStart)
	f.Set(ActionNone)
	f.Set(ActionMoveLeft)
	f.Set(ActionSoftDropStop)

	want := []Action{ActionSoftDropStart, ActionMoveLeft, ActionSoftDropStop}
	if len(f.Actions) != len(want) {
		t.Fatalf("len(Actions) = %d, expected %d", len(f.Actions), len(want))
	}
	for i, a := range want {
		if f.Actions[i] != a {
			t.Errorf("Actions[%d] = %v, expected %v", i, f.Actions[i], a)
		}
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Error("new frame should be empty")
	}
	f.Set(ActionRotate)
	f.Clear()
	f.Set(ActionPause)

	if len(f.Actions) != 1 || f.Actions[0] != ActionPause {
		t.Errorf("after Clear, Actions = %v, expected [Pause]", f.Actions)
	}
}

func TestParseAction(t *testing.T) {
	for a := ActionNone; a <= ActionQuit; a++ {
		got, ok := ParseAction(a.String())
		if !ok || got != a {
			t.Errorf("ParseAction(%q) = %v, %v", a.String(), got, ok)
		}
	}
	if _, ok := ParseAction("Jump"); ok {
		t.Error("unknown names should not parse")
	}
}
