//go:build windows
// +build windows

package procdir

import (
	"strings"
	"unsafe"

	"golang.org/x/sys/windows"
)

type systemDirectory struct{}

// Lookup resolves name and path with two independent reads. Either may fail
// on its own: a found name with an unreadable image path still yields
// {Name: <name>, Path: ""}.
func (systemDirectory) Lookup(pid int) Identity {
	if pid <= 0 {
		return Unknown()
	}

	id := Unknown()
	if name, ok := lookupName(uint32(pid)); ok {
		id.Name = name
	}
	id.Path = lookupImagePath(uint32(pid))
	return id
}

// lookupName walks a fresh Toolhelp32 snapshot for the entry matching pid.
func lookupName(pid uint32) (string, bool) {
	snap, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return "", false
	}
	defer windows.CloseHandle(snap)

	var entry windows.ProcessEntry32
	entry.Size = uint32(unsafe.Sizeof(entry))

	if err := windows.Process32First(snap, &entry); err != nil {
		return "", false
	}

	for {
		if entry.ProcessID == pid {
			name := strings.TrimSpace(windows.UTF16ToString(entry.ExeFile[:]))
			if name == "" {
				return "", false
			}
			return name, true
		}
		if err := windows.Process32Next(snap, &entry); err != nil {
			return "", false
		}
	}
}

func lookupImagePath(pid uint32) string {
	h, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, pid)
	if err != nil {
		return ""
	}
	defer windows.CloseHandle(h)

	// Start at MAX_PATH and double toward the extended-length ceiling.
	for size := uint32(260); size <= 32768; size *= 2 {
		buf := make([]uint16, size)
		sz := size
		err := windows.QueryFullProcessImageName(h, 0, &buf[0], &sz)
		if err == nil {
			if sz > 0 {
				return windows.UTF16ToString(buf[:sz])
			}
			return ""
		}
		if err != windows.ERROR_INSUFFICIENT_BUFFER {
			return ""
		}
	}
	return ""
}
