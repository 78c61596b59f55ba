package process

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-ps"
)

// ProcessInfo is the part of a running process the launcher looks at.
type ProcessInfo struct {
	PID  int
	Name string
}

// GetProcesses returns the running processes.
// It wraps github.com/mitchellh/go-ps internally and normalizes the result.
func GetProcesses() ([]ProcessInfo, error) {
	procs, err := ps.Processes()
	if err != nil {
		return nil, err
	}
	out := make([]ProcessInfo, 0, len(procs))
	for _, p := range procs {
		out = append(out, ProcessInfo{PID: p.Pid(), Name: p.Executable()})
	}
	return out, nil
}

// FindOther returns a process named name (case-insensitive) whose PID is not
// selfPID.
func FindOther(procs []ProcessInfo, name string, selfPID int) (ProcessInfo, bool) {
	for _, p := range procs {
		if p.PID == selfPID {
			continue
		}
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return ProcessInfo{}, false
}

// OtherInstanceRunning reports whether another process runs the same
// executable as the current one.
func OtherInstanceRunning() (ProcessInfo, bool, error) {
	execPath, err := os.Executable()
	if err != nil {
		return ProcessInfo{}, false, err
	}
	procs, err := GetProcesses()
	if err != nil {
		return ProcessInfo{}, false, err
	}
	p, found := FindOther(procs, filepath.Base(execPath), os.Getpid())
	return p, found, nil
}
