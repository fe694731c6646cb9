package classify

import "net/netip"

// Scope partitions a remote address into the exemption classes the
// public-remote rule is defined over. Exactly one scope applies to any
// address string.
type Scope uint8

const (
	// ScopeBlank covers empty, unspecified (0.0.0.0, ::) and unparseable
	// address strings. Listeners and half-set-up sockets land here.
	ScopeBlank Scope = iota
	ScopeLoopback
	ScopePrivate
	ScopePublic
)

func (s Scope) String() string {
	switch s {
	case ScopeBlank:
		return "blank"
	case ScopeLoopback:
		return "loopback"
	case ScopePrivate:
		return "private"
	case ScopePublic:
		return "public"
	}
	return "unknown"
}

// RemoteScope classifies an address string. IPv4-mapped IPv6 addresses are
// unmapped first so ::ffff:10.0.0.1 tests as 10.0.0.1. Only the IPv4
// private ranges are exempt: IPv6 unique-local and link-local addresses
// deliberately classify as public.
func RemoteScope(addr string) Scope {
	if addr == "" {
		return ScopeBlank
	}
	parsed, err := netip.ParseAddr(addr)
	if err != nil {
		// Malformed OS reads stay quiet rather than alarm.
		return ScopeBlank
	}
	parsed = parsed.Unmap()
	if parsed.IsUnspecified() {
		return ScopeBlank
	}
	if parsed.IsLoopback() {
		return ScopeLoopback
	}
	if isPrivateV4(parsed) {
		return ScopePrivate
	}
	return ScopePublic
}

// isPrivateV4 tests the RFC 1918 ranges. The 172 block needs the masked
// second octet (16..31), not a string prefix match.
func isPrivateV4(addr netip.Addr) bool {
	if !addr.Is4() {
		return false
	}
	v4 := addr.As4()
	switch {
	case v4[0] == 10:
		return true
	case v4[0] == 172 && v4[1]&0xf0 == 16:
		return true
	case v4[0] == 192 && v4[1] == 168:
		return true
	}
	return false
}
