package netsnap

import "testing"

func TestStateFromMIB(t *testing.T) {
	cases := []struct {
		code uint32
		want State
	}{
		{1, StateClosed},
		{2, StateListen},
		{3, StateSynSent},
		{4, StateSynReceived},
		{5, StateEstablished},
		{6, StateFinWait1},
		{7, StateFinWait2},
		{8, StateCloseWait},
		{9, StateClosing},
		{10, StateLastAck},
		{11, StateTimeWait},
		{12, StateDeleteTCB},
		{0, StateUnknown},
		{13, StateUnknown},
		{255, StateUnknown},
	}

	for _, tc := range cases {
		if got := StateFromMIB(tc.code); got != tc.want {
			t.Errorf("StateFromMIB(%d) = %v, want %v", tc.code, got, tc.want)
		}
	}
}

func TestParseState(t *testing.T) {
	cases := []struct {
		in   string
		want State
	}{
		{"LISTEN", StateListen},
		{"LISTENING", StateListen},
		{"ESTABLISHED", StateEstablished},
		{"SYN_SENT", StateSynSent},
		{"SYN_RECV", StateSynReceived},
		{"SYN_RCVD", StateSynReceived},
		{"SYN_RECEIVED", StateSynReceived},
		{"FIN_WAIT1", StateFinWait1},
		{"FIN_WAIT_1", StateFinWait1},
		{"FIN_WAIT2", StateFinWait2},
		{"FIN_WAIT_2", StateFinWait2},
		{"CLOSE_WAIT", StateCloseWait},
		{"CLOSE", StateClosed},
		{"CLOSED", StateClosed},
		{"CLOSING", StateClosing},
		{"LAST_ACK", StateLastAck},
		{"TIME_WAIT", StateTimeWait},
		{"DELETE", StateDeleteTCB},
		{"DELETE_TCB", StateDeleteTCB},
		{"", StateUnknown},
		{"NONE", StateUnknown},
	}

	for _, tc := range cases {
		if got := ParseState(tc.in); got != tc.want {
			t.Errorf("ParseState(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

// Every named state must survive a String/ParseState round trip so rows read
// on one platform render and re-parse identically on another.
func TestStateRoundTrip(t *testing.T) {
	for s := StateClosed; s <= StateDeleteTCB; s++ {
		if got := ParseState(s.String()); got != s {
			t.Errorf("ParseState(%q) = %v, want %v", s.String(), got, s)
		}
	}
}

func TestStateStringUnknown(t *testing.T) {
	if got := StateUnknown.String(); got != "UNKNOWN" {
		t.Errorf("StateUnknown.String() = %q, want UNKNOWN", got)
	}
	if got := State(200).String(); got != "UNKNOWN" {
		t.Errorf("State(200).String() = %q, want UNKNOWN", got)
	}
}
