package classify

import (
	"reflect"
	"testing"

	"github.com/jestkent/Suspicious-Connection-Monitor/internal/netsnap"
)

func portSet(ports ...int) map[int]struct{} {
	set := make(map[int]struct{}, len(ports))
	for _, p := range ports {
		set[p] = struct{}{}
	}
	return set
}

func hasFlag(flags []Flag, f Flag) bool {
	for _, got := range flags {
		if got == f {
			return true
		}
	}
	return false
}

func TestSuspiciousPortRule(t *testing.T) {
	watch := portSet(4444, 31337)

	conn := netsnap.Connection{
		LocalAddr: "192.168.1.2", LocalPort: 50000,
		RemoteAddr: "192.168.1.9", RemotePort: 4444,
		State: netsnap.StateEstablished, PID: 100,
	}
	if !hasFlag(Evaluate(conn, watch), FlagSuspiciousPort) {
		t.Error("remote port 4444 in watchlist did not flag")
	}

	conn.RemotePort = 443
	if hasFlag(Evaluate(conn, watch), FlagSuspiciousPort) {
		t.Error("remote port 443 outside watchlist flagged")
	}

	// The watchlist is configuration, not a constant: any set is honored.
	if !hasFlag(Evaluate(conn, portSet(443)), FlagSuspiciousPort) {
		t.Error("remote port 443 in custom watchlist did not flag")
	}
	if got := Evaluate(conn, nil); hasFlag(got, FlagSuspiciousPort) {
		t.Error("empty watchlist flagged a port")
	}
}

func TestListeningRule(t *testing.T) {
	conn := netsnap.Connection{
		LocalAddr: "0.0.0.0", LocalPort: 8080,
		RemoteAddr: "", RemotePort: 0,
		State: netsnap.StateListen, PID: 200,
	}
	if !hasFlag(Evaluate(conn, nil), FlagListening) {
		t.Error("listening socket did not flag")
	}

	// Pure state comparison, independent of addresses and ports.
	conn.RemoteAddr = "8.8.8.8"
	conn.RemotePort = 443
	if !hasFlag(Evaluate(conn, nil), FlagListening) {
		t.Error("listen state with populated remote did not flag")
	}

	for _, s := range []netsnap.State{
		netsnap.StateEstablished,
		netsnap.StateTimeWait,
		netsnap.StateCloseWait,
		netsnap.StateUnknown,
	} {
		conn.State = s
		if hasFlag(Evaluate(conn, nil), FlagListening) {
			t.Errorf("state %v flagged as listening", s)
		}
	}
}

func TestPublicRemoteRule(t *testing.T) {
	cases := []struct {
		remote string
		want   bool
	}{
		{"127.0.0.1", false},
		{"10.5.5.5", false},
		{"172.15.0.1", true},
		{"172.16.0.1", false},
		{"172.31.255.255", false},
		{"172.32.0.1", true},
		{"0.0.0.0", false},
		{"", false},
		{"8.8.8.8", true},
		{"192.168.0.10", false},
		{"::1", false},
		{"::", false},
		{"2606:4700::1111", true},
		{"fc00::1", true},
		{"fe80::1", true},
		{"::ffff:10.0.0.1", false},
	}

	for _, tc := range cases {
		conn := netsnap.Connection{
			LocalAddr: "192.168.1.2", LocalPort: 50000,
			RemoteAddr: tc.remote, RemotePort: 443,
			State: netsnap.StateEstablished, PID: 300,
		}
		got := hasFlag(Evaluate(conn, nil), FlagPublicRemote)
		if got != tc.want {
			t.Errorf("remote %q: public-remote = %v, want %v", tc.remote, got, tc.want)
		}
	}
}

// Flags always come back in rule order and compose independently.
func TestEvaluateOrderAndComposition(t *testing.T) {
	watch := portSet(4444)

	conn := netsnap.Connection{
		LocalAddr: "0.0.0.0", LocalPort: 9001,
		RemoteAddr: "8.8.8.8", RemotePort: 4444,
		State: netsnap.StateListen, PID: 400,
	}
	want := []Flag{FlagSuspiciousPort, FlagListening, FlagPublicRemote}
	if got := Evaluate(conn, watch); !reflect.DeepEqual(got, want) {
		t.Errorf("Evaluate = %v, want %v", got, want)
	}

	conn.State = netsnap.StateEstablished
	want = []Flag{FlagSuspiciousPort, FlagPublicRemote}
	if got := Evaluate(conn, watch); !reflect.DeepEqual(got, want) {
		t.Errorf("Evaluate = %v, want %v", got, want)
	}

	quiet := netsnap.Connection{
		LocalAddr: "192.168.1.2", LocalPort: 50000,
		RemoteAddr: "192.168.1.9", RemotePort: 443,
		State: netsnap.StateEstablished, PID: 500,
	}
	if got := Evaluate(quiet, watch); len(got) != 0 {
		t.Errorf("unremarkable connection flagged: %v", got)
	}
}

func TestFlagStrings(t *testing.T) {
	cases := map[Flag]string{
		FlagSuspiciousPort: "suspicious-port",
		FlagListening:      "listening",
		FlagPublicRemote:   "public-remote",
		Flag(0):            "unknown",
	}
	for f, want := range cases {
		if got := f.String(); got != want {
			t.Errorf("Flag(%d).String() = %q, want %q", f, got, want)
		}
	}

	for _, f := range []Flag{FlagSuspiciousPort, FlagListening, FlagPublicRemote} {
		if f.Reason() == "" {
			t.Errorf("Flag %v has no reason text", f)
		}
	}
}

func TestJoin(t *testing.T) {
	if got := Join(nil); got != "" {
		t.Errorf("Join(nil) = %q, want empty", got)
	}
	got := Join([]Flag{FlagListening, FlagPublicRemote})
	if got != "listening,public-remote" {
		t.Errorf("Join = %q", got)
	}
}
