package launcher

import "testing"

func TestDetectSkipsWithoutTerminal(t *testing.T) {
	// None of the real terminal emulators are guaranteed present in a
	// test sandbox; when Detect reports false this test is skipped
	// rather than failed.
	if _, ok := Detect(); !ok {
		t.Skip("no known terminal emulator and no $TERMINAL set in this environment")
	}
}
