package runtimepath

import (
	"os"
	"testing"
)

func TestSocketPathUsesXDGRuntimeDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_RUNTIME_DIR", dir)

	got, err := SocketPath()
	if err != nil {
		t.Fatalf("SocketPath() error = %v", err)
	}
	want := dir + "/partwm.sock"
	if got != want {
		t.Errorf("SocketPath() = %q, want %q", got, want)
	}
}

func TestConfigPathUsesXDGConfigHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	got, err := ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath() error = %v", err)
	}
	want := dir + "/partwm/config.yaml"
	if got != want {
		t.Errorf("ConfigPath() = %q, want %q", got, want)
	}
}

func TestDirCreatesFallbackTmpDir(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", "")
	// /run/user/<uid> may or may not exist in the test sandbox; either branch
	// must return a usable, existing directory.
	dir, err := Dir()
	if err != nil {
		t.Fatalf("Dir() error = %v", err)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("Dir() = %q is not a directory: %v", dir, err)
	}
}
