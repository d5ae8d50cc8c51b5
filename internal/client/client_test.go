package client

import (
	"testing"

	"github.com/partwm/partwm/internal/geometry"
)

func TestKindTileable(t *testing.T) {
	cases := []struct {
		kind Kind
		want bool
	}{
		{Normal, true},
		{Dialog, false},
		{Splash, false},
		{Dock, false},
	}
	for _, c := range cases {
		if got := c.kind.Tileable(); got != c.want {
			t.Errorf("%s.Tileable() = %v, want %v", c.kind, got, c.want)
		}
	}
}

func TestNewClampsSizeAboveZero(t *testing.T) {
	maxSize := geometry.Size{W: 100, H: 100}
	c := New(1, Normal, geometry.Size{W: 0, H: 0}, nil, maxSize, 5)
	if c.Size.W < 1 || c.Size.H < 1 {
		t.Errorf("New() size = %+v, want both dimensions >= 1", c.Size)
	}
}

func TestNewClampsSizeToScreenMinusBorder(t *testing.T) {
	maxSize := geometry.Size{W: 100, H: 100}
	c := New(1, Dialog, geometry.Size{W: 500, H: 500}, nil, maxSize, 10)
	if want := (geometry.Size{W: 80, H: 80}); c.Size != want {
		t.Errorf("New() size = %+v, want %+v", c.Size, want)
	}
}

func TestCenterOnParent(t *testing.T) {
	parentID := WindowID(1)
	parent := Client{ID: parentID, Position: geometry.Point{X: 100, Y: 100}, Size: geometry.Size{W: 200, H: 200}}
	dialog := Client{ID: 2, Parent: &parentID, Size: geometry.Size{W: 50, H: 50}}

	dialog.CenterOn(parent)

	want := geometry.Point{X: 175, Y: 175}
	if dialog.Position != want {
		t.Errorf("CenterOn() position = %+v, want %+v", dialog.Position, want)
	}
}
