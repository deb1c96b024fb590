package render

import (
	"testing"
)

func TestBufferSetAndAt(t *testing.T) {
	buf := NewBuffer(10, 5)

	buf.Set(3, 2, 'x', RGB{200, 100, 50}, RGB{10, 20, 30}, BlendReplace, 1.0)
	c := buf.At(3, 2)
	if c.Rune != 'x' {
		t.Errorf("Expected rune 'x', got %q", c.Rune)
	}
	if c.Fg != (RGB{200, 100, 50}) {
		t.Errorf("Expected fg {200 100 50}, got %+v", c.Fg)
	}
}

func TestBufferOutOfBounds(t *testing.T) {
	buf := NewBuffer(4, 4)

	tests := []struct {
		name string
		x, y int
	}{
		{"Negative X", -1, 0},
		{"Negative Y", 0, -1},
		{"Past width", 4, 0},
		{"Past height", 0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Must not panic, must not write
			buf.Set(tt.x, tt.y, 'z', RGBWhite, RGBWhite, BlendReplace, 1.0)
			if got := buf.At(tt.x, tt.y); got != (Cell{}) {
				t.Errorf("Expected zero cell out of bounds, got %+v", got)
			}
		})
	}
}

func TestBufferAddClamps(t *testing.T) {
	buf := NewBuffer(2, 2)
	for i := 0; i < 10; i++ {
		buf.Set(0, 0, 0, RGBBlack, RGB{100, 100, 100}, BlendAdd, 1.0)
	}
	c := buf.At(0, 0)
	if c.Bg != (RGB{255, 255, 255}) {
		t.Errorf("Expected additive blending to clamp at white, got %+v", c.Bg)
	}
}

func TestBufferAlphaMix(t *testing.T) {
	buf := NewBuffer(2, 2)
	buf.Set(1, 1, 0, RGBBlack, RGB{0, 0, 0}, BlendReplace, 1.0)
	buf.Set(1, 1, 0, RGBBlack, RGB{200, 100, 0}, BlendAlpha, 0.5)

	c := buf.At(1, 1)
	if c.Bg != (RGB{100, 50, 0}) {
		t.Errorf("Expected half mix {100 50 0}, got %+v", c.Bg)
	}
}

func TestBufferClearAndResize(t *testing.T) {
	buf := NewBuffer(8, 8)
	buf.Set(2, 2, 'a', RGBWhite, RGBWhite, BlendReplace, 1.0)

	buf.Clear()
	if buf.At(2, 2) != (Cell{}) {
		t.Error("Expected clear to reset cells")
	}

	buf.Resize(3, 3)
	w, h := buf.Size()
	if w != 3 || h != 3 {
		t.Errorf("Expected 3x3 after resize, got %dx%d", w, h)
	}
	if buf.At(2, 2) != (Cell{}) {
		t.Error("Expected resize to clear content")
	}
}

func TestLerp(t *testing.T) {
	got := Lerp(RGB{0, 0, 0}, RGB{200, 100, 50}, 0.5)
	if got != (RGB{100, 50, 25}) {
		t.Errorf("Expected {100 50 25}, got %+v", got)
	}
}

func TestFromFloatClamps(t *testing.T) {
	if got := FromFloat(2.0, -1.0, 0.5); got != (RGB{255, 0, 127}) {
		t.Errorf("Expected {255 0 127}, got %+v", got)
	}
}
