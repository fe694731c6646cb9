package netsnap

import "fmt"

// Connection is one row of the live TCP table: a local endpoint, its remote
// peer (zero/empty for listening sockets), the connection state and the
// owning process ID as reported by the OS. The PID may reference a process
// that exits before it is resolved.
type Connection struct {
	LocalAddr  string
	LocalPort  int
	RemoteAddr string
	RemotePort int
	State      State
	PID        int
}

// LocalEndpoint renders the local side as "<addr>:<port>".
func (c Connection) LocalEndpoint() string {
	return fmt.Sprintf("%s:%d", c.LocalAddr, c.LocalPort)
}

// RemoteEndpoint renders the remote side as "<addr>:<port>".
func (c Connection) RemoteEndpoint() string {
	return fmt.Sprintf("%s:%d", c.RemoteAddr, c.RemotePort)
}
