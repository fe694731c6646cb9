package classify

import "strings"

// Flag identifies one heuristic rule that fired for a connection.
type Flag uint8

const (
	// FlagSuspiciousPort: the remote port is in the configured watchlist.
	FlagSuspiciousPort Flag = iota + 1
	// FlagListening: the socket is waiting for inbound connections.
	FlagListening
	// FlagPublicRemote: the remote address is neither loopback, private
	// IPv4, nor blank/unspecified.
	FlagPublicRemote
)

func (f Flag) String() string {
	switch f {
	case FlagSuspiciousPort:
		return "suspicious-port"
	case FlagListening:
		return "listening"
	case FlagPublicRemote:
		return "public-remote"
	}
	return "unknown"
}

// Reason is the operator-facing sentence shown in detail views.
func (f Flag) Reason() string {
	switch f {
	case FlagSuspiciousPort:
		return "Remote port is on the suspicious-port watchlist"
	case FlagListening:
		return "Socket is listening for inbound connections"
	case FlagPublicRemote:
		return "Remote address is public (not loopback, private, or unset)"
	}
	return ""
}

// Join renders a flag set for table cells and CSV fields.
func Join(flags []Flag) string {
	if len(flags) == 0 {
		return ""
	}
	names := make([]string, len(flags))
	for i, f := range flags {
		names[i] = f.String()
	}
	return strings.Join(names, ",")
}
