package workspace

import "testing"

func TestNewSetRejectsZero(t *testing.T) {
	if _, err := NewSet(0); err == nil {
		t.Error("NewSet(0) should return an error")
	}
}

func TestGoToClampsToRange(t *testing.T) {
	s, _ := NewSet(3)
	s.GoTo(10)
	if got := s.CurrentIndex(); got != 2 {
		t.Errorf("CurrentIndex() = %d, want 2 (clamped)", got)
	}
}

func TestRotateRightThenLeftRestoresCurrent(t *testing.T) {
	s, _ := NewSet(5)
	s.GoTo(2)
	s.RotateRight(3)
	s.RotateLeft(3)
	if got := s.CurrentIndex(); got != 2 {
		t.Errorf("CurrentIndex() = %d, want 2", got)
	}
}

func TestRotateWrapsModulo(t *testing.T) {
	s, _ := NewSet(4)
	s.GoTo(3)
	s.RotateRight(1)
	if got := s.CurrentIndex(); got != 0 {
		t.Errorf("CurrentIndex() = %d, want 0 (wrapped)", got)
	}

	s.RotateLeft(1)
	if got := s.CurrentIndex(); got != 3 {
		t.Errorf("CurrentIndex() = %d, want 3 (wrapped backwards)", got)
	}
}

func TestGoToThenDoubleGoBackReturnsToPostGoToState(t *testing.T) {
	s, _ := NewSet(5)
	s.GoTo(1) // establish a known starting current
	s.GoTo(3)
	s.GoBack()
	s.GoBack()
	if got := s.CurrentIndex(); got != 3 {
		t.Errorf("CurrentIndex() after go_to;go_back;go_back = %d, want 3", got)
	}
}

func TestGoBackAlternates(t *testing.T) {
	s, _ := NewSet(5)
	s.GoTo(1)
	s.GoTo(3)
	s.GoBack()
	if got := s.CurrentIndex(); got != 1 {
		t.Errorf("CurrentIndex() after single GoBack = %d, want 1", got)
	}
}

func TestGoBackNoopWithoutHistory(t *testing.T) {
	s, _ := NewSet(3)
	s.GoBack()
	if got := s.CurrentIndex(); got != 0 {
		t.Errorf("CurrentIndex() = %d, want 0", got)
	}
}
