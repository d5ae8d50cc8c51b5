package geometry

import "testing"

func TestPointArithmetic(t *testing.T) {
	a := Point{X: 10, Y: 20}
	b := Point{X: 3, Y: 4}

	if got, want := a.Add(b), (Point{X: 13, Y: 24}); got != want {
		t.Errorf("Add() = %+v, want %+v", got, want)
	}
	if got, want := a.Sub(b), (Point{X: 7, Y: 16}); got != want {
		t.Errorf("Sub() = %+v, want %+v", got, want)
	}
}

func TestSizeClamp(t *testing.T) {
	cases := []struct {
		s, other, want Size
	}{
		{Size{W: 100, H: 200}, Size{W: 50, H: 300}, Size{W: 50, H: 200}},
		{Size{W: 10, H: 10}, Size{W: 10, H: 10}, Size{W: 10, H: 10}},
	}
	for _, c := range cases {
		if got := c.s.Clamp(c.other); got != c.want {
			t.Errorf("Clamp(%+v, %+v) = %+v, want %+v", c.s, c.other, got, c.want)
		}
	}
}

func TestSizeAtLeast(t *testing.T) {
	s := Size{W: 0, H: -5}
	if got, want := s.AtLeast(1), (Size{W: 1, H: 1}); got != want {
		t.Errorf("AtLeast(1) = %+v, want %+v", got, want)
	}
}

func TestSizeDivTruncates(t *testing.T) {
	s := Size{W: 7, H: 10}
	if got, want := s.Div(2), (Size{W: 3, H: 5}); got != want {
		t.Errorf("Div(2) = %+v, want %+v", got, want)
	}
}
