package core

import "testing"

func TestParseColorRoundTrip(t *testing.T) {
	for c := ColorDefault; c <= ColorGray; c++ {
		got, ok := ParseColor(c.String())
		if !ok || got != c {
			t.Errorf("ParseColor(%q) = %v, %v; expected %v", c.String(), got, ok, c)
		}
	}
	if _, ok := ParseColor("ultraviolet"); ok {
		t.Error("ParseColor accepted an unknown name")
	}
}
