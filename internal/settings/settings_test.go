package settings

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"souffleur/internal/intfield"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "souffleur.jsonc")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	return path
}

func TestLoadMissingFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "absent.jsonc"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != Default() {
		t.Errorf("expected defaults, got %+v", s)
	}
}

func TestLoadWithComments(t *testing.T) {
	path := writeSettings(t, `{
	// port field bounds
	"port_min": 2000,
	"port_max": 3000,
	/* commits as you type */
	"port_default": 2500,
	"port_strict": false
}`)
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.PortMin != 2000 || s.PortMax != 3000 || s.PortDefault != 2500 || s.PortStrict {
		t.Errorf("unexpected settings: %+v", s)
	}
	if s.STUNServer != Default().STUNServer || s.FlowHGap != Default().FlowHGap {
		t.Errorf("missing keys should keep defaults, got %+v", s)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantIs  error
	}{
		{"inverted bounds", `{"port_min": 9000, "port_max": 80}`, intfield.ErrInvalidBounds},
		{"default outside", `{"port_default": 80}`, intfield.ErrOutOfRange},
		{"bad json", `{"port_min": }`, nil},
		{"negative gap", `{"flow_hgap": -1}`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Load(writeSettings(t, tt.content))
			if err == nil {
				t.Fatalf("expected error")
			}
			if tt.wantIs != nil && !errors.Is(err, tt.wantIs) {
				t.Errorf("expected %v, got %v", tt.wantIs, err)
			}
			if s != Default() {
				t.Errorf("expected defaults on error, got %+v", s)
			}
		})
	}
}
