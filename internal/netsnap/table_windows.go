//go:build windows
// +build windows

package netsnap

import (
	"fmt"
	"net"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	iphlpapi           = windows.NewLazySystemDLL("iphlpapi.dll")
	procGetExtendedTcp = iphlpapi.NewProc("GetExtendedTcpTable")
)

const (
	afInet              = 2
	afInet6             = 23
	tcpTableOwnerPIDAll = 5
)

type mibTCPRowOwnerPID struct {
	State      uint32
	LocalAddr  uint32
	LocalPort  uint32
	RemoteAddr uint32
	RemotePort uint32
	OwningPID  uint32
}

// Field order follows MIB_TCP6ROW_OWNER_PID: unlike the v4 row, dwState
// sits after the remote endpoint, not at the front.
type mibTCP6RowOwnerPID struct {
	LocalAddr     [16]byte
	LocalScopeId  uint32
	LocalPort     uint32
	RemoteAddr    [16]byte
	RemoteScopeId uint32
	RemotePort    uint32
	State         uint32
	OwningPID     uint32
}

// Read snapshots the live TCP table (v4 and v6) with owning PIDs. If only
// the v6 query fails, the v4 rows are still returned.
func Read() ([]Connection, error) {
	c4, err := readFamily(afInet)
	if err != nil {
		return nil, err
	}
	c6, err := readFamily(afInet6)
	if err != nil {
		return c4, nil
	}
	return append(c4, c6...), nil
}

func readFamily(family uint32) ([]Connection, error) {
	var size uint32

	r0, _, _ := procGetExtendedTcp.Call(
		0,
		uintptr(unsafe.Pointer(&size)),
		0,
		uintptr(family),
		uintptr(tcpTableOwnerPIDAll),
		0,
	)

	const errInsufficientBuffer = 122
	if r0 != uintptr(errInsufficientBuffer) && r0 != 0 {
		return nil, fmt.Errorf("GetExtendedTcpTable size query failed: %d", r0)
	}
	if size == 0 {
		return nil, fmt.Errorf("GetExtendedTcpTable returned size 0")
	}

	buf := make([]byte, size)
	r0, _, e1 := procGetExtendedTcp.Call(
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(unsafe.Pointer(&size)),
		0,
		uintptr(family),
		uintptr(tcpTableOwnerPIDAll),
		0,
	)
	if r0 != 0 {
		return nil, fmt.Errorf("GetExtendedTcpTable failed: %v (code=%d)", e1, r0)
	}

	bufPtr := uintptr(unsafe.Pointer(&buf[0]))
	num := *(*uint32)(unsafe.Pointer(bufPtr))
	rowPtr := bufPtr + unsafe.Sizeof(num)

	conns := make([]Connection, 0, num)

	if family == afInet {
		rowSize := unsafe.Sizeof(mibTCPRowOwnerPID{})
		for i := uint32(0); i < num; i++ {
			row := (*mibTCPRowOwnerPID)(unsafe.Pointer(rowPtr + uintptr(i)*rowSize))
			conns = append(conns, rowV4(row))
		}
	} else {
		rowSize := unsafe.Sizeof(mibTCP6RowOwnerPID{})
		for i := uint32(0); i < num; i++ {
			row := (*mibTCP6RowOwnerPID)(unsafe.Pointer(rowPtr + uintptr(i)*rowSize))
			conns = append(conns, rowV6(row))
		}
	}

	return conns, nil
}

func rowV4(r *mibTCPRowOwnerPID) Connection {
	lip := net.IPv4(byte(r.LocalAddr), byte(r.LocalAddr>>8), byte(r.LocalAddr>>16), byte(r.LocalAddr>>24)).String()
	rip := net.IPv4(byte(r.RemoteAddr), byte(r.RemoteAddr>>8), byte(r.RemoteAddr>>16), byte(r.RemoteAddr>>24)).String()

	return Connection{
		LocalAddr:  lip,
		LocalPort:  ntohs(r.LocalPort),
		RemoteAddr: rip,
		RemotePort: ntohs(r.RemotePort),
		State:      StateFromMIB(r.State),
		PID:        int(r.OwningPID),
	}
}

func rowV6(r *mibTCP6RowOwnerPID) Connection {
	return Connection{
		LocalAddr:  net.IP(r.LocalAddr[:]).String(),
		LocalPort:  ntohs(r.LocalPort),
		RemoteAddr: net.IP(r.RemoteAddr[:]).String(),
		RemotePort: ntohs(r.RemotePort),
		State:      StateFromMIB(r.State),
		PID:        int(r.OwningPID),
	}
}

// Ports in the MIB rows are in network byte order within the low word.
func ntohs(p uint32) int {
	v := uint16(p)
	return int((v >> 8) | (v << 8))
}
