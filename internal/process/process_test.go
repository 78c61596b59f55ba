package process

import (
	"os"
	"testing"
)

func TestFindOther(t *testing.T) {
	procs := []ProcessInfo{
		{PID: 10, Name: "souffleur"},
		{PID: 20, Name: "bash"},
		{PID: 30, Name: "Souffleur"},
	}
	tests := []struct {
		name    string
		self    int
		want    int
		wantHit bool
	}{
		{"skips own pid", 10, 30, true},
		{"first match wins", 99, 10, true},
		{"missing", 99, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			search := "souffleur"
			if !tt.wantHit {
				search = "zsh"
			}
			p, ok := FindOther(procs, search, tt.self)
			if ok != tt.wantHit || p.PID != tt.want {
				t.Errorf("FindOther = %+v, %v; want pid %d, %v", p, ok, tt.want, tt.wantHit)
			}
		})
	}
}

func TestGetProcessesIncludesSelf(t *testing.T) {
	procs, err := GetProcesses()
	if err != nil {
		t.Skipf("process listing unavailable: %v", err)
	}
	self := os.Getpid()
	for _, p := range procs {
		if p.PID == self {
			return
		}
	}
	t.Errorf("own pid %d not found among %d processes", self, len(procs))
}
