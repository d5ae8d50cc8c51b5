package wm

import "github.com/partwm/partwm/internal/server"

// binding is the key-binding table's key: a keysym plus the modifier
// mask that must be held. The table itself is data (map[binding]Command),
// not behavior — no closures cross the core boundary.
type binding struct {
	key  server.KeySym
	mods server.Modifier
}

// Bind registers cmd to fire when key is pressed with exactly mods held.
// Re-binding an existing key/modifier pair replaces the prior command.
func (m *Manager) Bind(key server.KeySym, mods server.Modifier, cmd Command) {
	m.bindings[binding{key: key, mods: mods}] = cmd
}
