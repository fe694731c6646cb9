// Package procdir resolves process IDs to owner identities. Lookups are
// point-in-time reads against the OS process table and never fail hard: a
// process that exited between the connection snapshot and the lookup simply
// resolves to the Unknown identity.
package procdir

// Identity names the process that owns a connection.
type Identity struct {
	Name string
	Path string
}

// Unknown is the degraded identity used when the owning process cannot be
// resolved (vanished, access denied, or a reserved pid).
func Unknown() Identity {
	return Identity{Name: "Unknown"}
}

// Directory looks up process identities by pid.
type Directory interface {
	Lookup(pid int) Identity
}

// System returns the platform process directory.
func System() Directory {
	return systemDirectory{}
}
