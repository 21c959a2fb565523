//go:build !release

package danmaku

import (
	"testing"
	"time"
)

func TestScoreRejectsNegative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Add(-1) did not trip the invariant")
		}
	}()
	var s Score
	s.Add(-1)
}

func TestCooldownRejectsZeroDuration(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewCooldown(0) did not trip the invariant")
		}
	}()
	NewCooldown(0 * time.Second)
}
