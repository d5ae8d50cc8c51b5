package workspace

import "fmt"

// Set is a fixed-size collection of workspaces with a current index and
// a one-slot rotation history, used by go_back commands.
type Set struct {
	workspaces []Workspace
	current    int
	previous   *int
}

// NewSet builds a Set of n empty workspaces. n must be at least 1.
func NewSet(n int) (*Set, error) {
	if n < 1 {
		return nil, fmt.Errorf("workspace: num_workspaces must be >= 1, got %d", n)
	}
	return &Set{workspaces: make([]Workspace, n)}, nil
}

// Len returns the number of workspaces in the set.
func (s *Set) Len() int {
	return len(s.workspaces)
}

// CurrentIndex returns the index of the current workspace.
func (s *Set) CurrentIndex() int {
	return s.current
}

// Current returns a pointer to the current workspace.
func (s *Set) Current() *Workspace {
	return &s.workspaces[s.current]
}

// At returns a pointer to the workspace at index i, which must be in
// range [0, Len()).
func (s *Set) At(i int) *Workspace {
	return &s.workspaces[i]
}

// GoTo switches to workspace n, clamped to the valid range, recording
// the prior current index so GoBack can return to it.
func (s *Set) GoTo(n int) {
	if n < 0 {
		n = 0
	}
	if n >= len(s.workspaces) {
		n = len(s.workspaces) - 1
	}
	prev := s.current
	s.previous = &prev
	s.current = n
}

// RotateRight advances the current workspace by n, modulo Len().
func (s *Set) RotateRight(n int) {
	s.rotate(n)
}

// RotateLeft moves the current workspace back by n, modulo Len().
func (s *Set) RotateLeft(n int) {
	s.rotate(-n)
}

func (s *Set) rotate(delta int) {
	l := len(s.workspaces)
	prev := s.current
	s.previous = &prev
	s.current = ((s.current+delta)%l + l) % l
}

// GoBack swaps the current and previous indices, so that calling
// GoBack twice in a row restores the original current workspace. A
// no-op if no previous index has ever been recorded.
func (s *Set) GoBack() {
	if s.previous == nil {
		return
	}
	prev := s.current
	s.current = *s.previous
	s.previous = &prev
}
