package world

import "testing"

func TestLayerMask(t *testing.T) {
	m := Layers(0, 3, 31, 40)
	for _, l := range []int{0, 3, 31} {
		if !m.Contains(l) {
			t.Fatalf("expected layer %d in mask %b", l, m)
		}
	}
	for _, l := range []int{1, 2, 30, 32, -1} {
		if m.Contains(l) {
			t.Fatalf("did not expect layer %d in mask %b", l, m)
		}
	}
	if !AllLayers.Contains(17) || NoLayers.Contains(0) {
		t.Fatalf("unexpected result for the predefined masks")
	}
}
