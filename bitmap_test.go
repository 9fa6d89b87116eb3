package rax

import "testing"

func TestPresenceBitmapGetSetClear(t *testing.T) {
	var p presenceBitmap

	indices := []byte{0, 63, 64, 127, 128, 191, 192, 255}
	for _, i := range indices {
		if p.get(i) {
			t.Fatalf("bit %d should be clear initially", i)
		}
	}

	for _, i := range indices {
		p.set(i)
		if !p.get(i) {
			t.Fatalf("bit %d should be set after set()", i)
		}
	}

	for _, i := range []byte{1, 2, 60, 65, 129, 254} {
		if p.get(i) {
			t.Fatalf("bit %d should remain clear", i)
		}
	}

	for _, i := range indices {
		p.clear(i)
		if p.get(i) {
			t.Fatalf("bit %d should be clear after clear()", i)
		}
	}
}

func TestPresenceBitmapRepeatedSet(t *testing.T) {
	var p presenceBitmap

	for i := 0; i < 10; i++ {
		p.set(42)
	}
	if !p.get(42) {
		t.Fatalf("bit 42 should be set")
	}

	p.clear(42)
	if p.get(42) {
		t.Fatalf("bit 42 should be clear after clear()")
	}
}
