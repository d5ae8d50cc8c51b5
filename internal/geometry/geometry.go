// Package geometry provides the 2-D value types shared by the client
// store, layout engine, and window manager.
package geometry

// Point is a 2-D coordinate.
type Point struct {
	X int
	Y int
}

// Size is a 2-D extent.
type Size struct {
	W int
	H int
}

// Add returns the componentwise sum of two points.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns the componentwise difference of two points.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// ToSize reinterprets a point as a size.
func (p Point) ToSize() Size {
	return Size{W: p.X, H: p.Y}
}

// Add returns the componentwise sum of two sizes.
func (s Size) Add(o Size) Size {
	return Size{W: s.W + o.W, H: s.H + o.H}
}

// Sub returns the componentwise difference of two sizes.
func (s Size) Sub(o Size) Size {
	return Size{W: s.W - o.W, H: s.H - o.H}
}

// Div returns the size scaled down by an integer divisor, truncating.
func (s Size) Div(n int) Size {
	if n == 0 {
		return s
	}
	return Size{W: s.W / n, H: s.H / n}
}

// ToPoint reinterprets a size as a point.
func (s Size) ToPoint() Point {
	return Point{X: s.W, Y: s.H}
}

// Clamp returns the componentwise minimum of s and other.
func (s Size) Clamp(other Size) Size {
	return Size{W: min(s.W, other.W), H: min(s.H, other.H)}
}

// AtLeast returns s with each component raised to at least n.
func (s Size) AtLeast(n int) Size {
	return Size{W: max(s.W, n), H: max(s.H, n)}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
