package danmaku

import "testing"

func TestScoreDirtyFlag(t *testing.T) {
	var s Score

	if s.TakeDirty() {
		t.Error("fresh score reports dirty")
	}

	s.Add(1)
	s.Add(2)
	if s.Value() != 3 {
		t.Errorf("Value() = %d, expected 3", s.Value())
	}
	if !s.TakeDirty() {
		t.Error("TakeDirty() = false after Add")
	}
	if s.TakeDirty() {
		t.Error("TakeDirty() should clear the flag")
	}

	s.Reset()
	if s.Value() != 0 || !s.TakeDirty() {
		t.Error("Reset() should zero the score and mark it dirty")
	}
}
