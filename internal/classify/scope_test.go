package classify

import "testing"

func TestRemoteScope(t *testing.T) {
	cases := []struct {
		addr string
		want Scope
	}{
		// Loopback.
		{"127.0.0.1", ScopeLoopback},
		{"127.255.255.254", ScopeLoopback},
		{"::1", ScopeLoopback},

		// Private IPv4.
		{"10.5.5.5", ScopePrivate},
		{"10.0.0.1", ScopePrivate},
		{"192.168.1.50", ScopePrivate},
		{"172.16.0.1", ScopePrivate},
		{"172.31.255.255", ScopePrivate},

		// 172 block boundaries: a real CIDR test, not a prefix match.
		{"172.15.0.1", ScopePublic},
		{"172.32.0.1", ScopePublic},

		// Blank, unspecified, malformed.
		{"", ScopeBlank},
		{"0.0.0.0", ScopeBlank},
		{"::", ScopeBlank},
		{"not-an-address", ScopeBlank},
		{"999.1.1.1", ScopeBlank},

		// Public.
		{"8.8.8.8", ScopePublic},
		{"1.1.1.1", ScopePublic},
		{"192.169.0.1", ScopePublic},
		{"11.0.0.1", ScopePublic},

		// IPv4-mapped IPv6 unmaps before the range tests.
		{"::ffff:192.168.1.1", ScopePrivate},
		{"::ffff:8.8.8.8", ScopePublic},
		{"::ffff:127.0.0.1", ScopeLoopback},

		// IPv6 unique-local and link-local are not exempt.
		{"fc00::1", ScopePublic},
		{"fd12:3456::1", ScopePublic},
		{"fe80::1", ScopePublic},
		{"2001:db8::1", ScopePublic},
	}

	for _, tc := range cases {
		t.Run(tc.addr, func(t *testing.T) {
			if got := RemoteScope(tc.addr); got != tc.want {
				t.Errorf("RemoteScope(%q) = %v, want %v", tc.addr, got, tc.want)
			}
		})
	}
}

func TestScopeString(t *testing.T) {
	cases := map[Scope]string{
		ScopeBlank:    "blank",
		ScopeLoopback: "loopback",
		ScopePrivate:  "private",
		ScopePublic:   "public",
		Scope(99):     "unknown",
	}
	for s, want := range cases {
		if got := s.String(); got != want {
			t.Errorf("Scope(%d).String() = %q, want %q", s, got, want)
		}
	}
}
