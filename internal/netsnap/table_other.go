//go:build !windows
// +build !windows

package netsnap

import (
	"fmt"

	gnet "github.com/shirou/gopsutil/v4/net"
)

// Read snapshots the live TCP table (v4 and v6) with owning PIDs.
func Read() ([]Connection, error) {
	stats, err := gnet.Connections("tcp")
	if err != nil {
		return nil, fmt.Errorf("reading tcp connection table: %w", err)
	}

	conns := make([]Connection, 0, len(stats))
	for _, s := range stats {
		conns = append(conns, Connection{
			LocalAddr:  s.Laddr.IP,
			LocalPort:  int(s.Laddr.Port),
			RemoteAddr: s.Raddr.IP,
			RemotePort: int(s.Raddr.Port),
			State:      ParseState(s.Status),
			PID:        int(s.Pid),
		})
	}
	return conns, nil
}
