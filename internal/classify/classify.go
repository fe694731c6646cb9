// Package classify holds the heuristic rules that mark a connection as worth
// an operator's attention. The rules are pure functions over a snapshot row:
// no OS reads, no side effects.
package classify

import (
	"github.com/jestkent/Suspicious-Connection-Monitor/internal/netsnap"
)

// Evaluate runs the three rules against one connection and returns the flags
// that fired, always in rule order: suspicious-port, listening,
// public-remote. The rules are independent; none of them gates another. An
// unremarkable connection yields an empty set.
func Evaluate(conn netsnap.Connection, ports map[int]struct{}) []Flag {
	var flags []Flag
	if _, watched := ports[conn.RemotePort]; watched {
		flags = append(flags, FlagSuspiciousPort)
	}
	if conn.State == netsnap.StateListen {
		flags = append(flags, FlagListening)
	}
	if RemoteScope(conn.RemoteAddr) == ScopePublic {
		flags = append(flags, FlagPublicRemote)
	}
	return flags
}
