package netsnap

// State is a TCP connection state. The zero value is StateUnknown so that an
// unmapped platform code never masquerades as a real state.
type State uint8

const (
	StateUnknown State = iota
	StateClosed
	StateListen
	StateSynSent
	StateSynReceived
	StateEstablished
	StateFinWait1
	StateFinWait2
	StateCloseWait
	StateClosing
	StateLastAck
	StateTimeWait
	StateDeleteTCB
)

var stateNames = map[State]string{
	StateClosed:      "CLOSED",
	StateListen:      "LISTENING",
	StateSynSent:     "SYN_SENT",
	StateSynReceived: "SYN_RECEIVED",
	StateEstablished: "ESTABLISHED",
	StateFinWait1:    "FIN_WAIT_1",
	StateFinWait2:    "FIN_WAIT_2",
	StateCloseWait:   "CLOSE_WAIT",
	StateClosing:     "CLOSING",
	StateLastAck:     "LAST_ACK",
	StateTimeWait:    "TIME_WAIT",
	StateDeleteTCB:   "DELETE_TCB",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// StateFromMIB maps the numeric MIB_TCP_STATE codes used by the Windows
// extended TCP table.
func StateFromMIB(code uint32) State {
	switch code {
	case 1:
		return StateClosed
	case 2:
		return StateListen
	case 3:
		return StateSynSent
	case 4:
		return StateSynReceived
	case 5:
		return StateEstablished
	case 6:
		return StateFinWait1
	case 7:
		return StateFinWait2
	case 8:
		return StateCloseWait
	case 9:
		return StateClosing
	case 10:
		return StateLastAck
	case 11:
		return StateTimeWait
	case 12:
		return StateDeleteTCB
	default:
		return StateUnknown
	}
}

// ParseState normalizes the textual states reported by portable enumerators
// ("LISTEN", "SYN_RECV", "FIN_WAIT1", ...) as well as this package's own
// String output, so both read paths land on the same enumeration.
func ParseState(s string) State {
	switch s {
	case "CLOSED", "CLOSE":
		return StateClosed
	case "LISTEN", "LISTENING":
		return StateListen
	case "SYN_SENT":
		return StateSynSent
	case "SYN_RECV", "SYN_RCVD", "SYN_RECEIVED":
		return StateSynReceived
	case "ESTABLISHED":
		return StateEstablished
	case "FIN_WAIT1", "FIN_WAIT_1":
		return StateFinWait1
	case "FIN_WAIT2", "FIN_WAIT_2":
		return StateFinWait2
	case "CLOSE_WAIT":
		return StateCloseWait
	case "CLOSING":
		return StateClosing
	case "LAST_ACK":
		return StateLastAck
	case "TIME_WAIT":
		return StateTimeWait
	case "DELETE", "DELETE_TCB":
		return StateDeleteTCB
	default:
		return StateUnknown
	}
}
