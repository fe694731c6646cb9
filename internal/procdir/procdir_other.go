//go:build !windows
// +build !windows

package procdir

import (
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

type systemDirectory struct{}

// Lookup resolves name and path with two independent reads. Either may fail
// on its own: a found name with an unreadable executable path still yields
// {Name: <name>, Path: ""}.
func (systemDirectory) Lookup(pid int) Identity {
	if pid <= 0 {
		return Unknown()
	}

	p, err := process.NewProcess(int32(pid))
	if err != nil {
		return Unknown()
	}

	id := Unknown()
	if name, err := p.Name(); err == nil {
		if name = strings.TrimSpace(name); name != "" {
			id.Name = name
		}
	}
	if path, err := p.Exe(); err == nil {
		id.Path = path
	}
	return id
}
