package components

import "testing"

func TestBoundsContains(t *testing.T) {
	b := Bounds{X: 10, Y: 20, W: 100, H: 50}

	tests := []struct {
		name string
		x, y float32
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"right edge exclusive", 110, 40, false},
		{"bottom edge exclusive", 50, 70, false},
		{"left of", 9, 40, false},
		{"above", 50, 19, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestBoundsOffset(t *testing.T) {
	b := Bounds{X: 10, Y: 20, W: 100, H: 50}.Offset(5, -20)
	if b.X != 15 || b.Y != 0 || b.W != 100 || b.H != 50 {
		t.Errorf("unexpected offset result %+v", b)
	}
}

func TestHintString(t *testing.T) {
	if HintButton.String() != "Button" {
		t.Errorf("HintButton.String() = %q", HintButton.String())
	}
	if Hint(42).String() != "Unknown" {
		t.Errorf("out of range hint should be Unknown, got %q", Hint(42).String())
	}
}
