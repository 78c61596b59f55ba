package debuglog

import (
	"bytes"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw    string
		want   Level
		wantOK bool
	}{
		{"trace", LevelTrace, true},
		{" DEBUG ", LevelVerbose, true},
		{"verbose", LevelVerbose, true},
		{"info", LevelInfo, true},
		{"warning", LevelWarn, true},
		{"error", LevelError, true},
		{"off", LevelOff, true},
		{"", LevelInfo, false},
		{"loud", LevelInfo, false},
	}
	for _, tt := range tests {
		got, ok := ParseLevel(tt.raw)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v, %v", tt.raw, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestLogRespectsLevels(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	flags := log.Flags()
	log.SetFlags(0)
	saved := GlobalLevel
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(flags)
		GlobalLevel = saved
	})

	GlobalLevel = LevelWarn
	Log("test", LevelInfo, UseGlobal, "hidden %d", 1)
	Log("test", LevelError, UseGlobal, "shown %d", 2)
	Log("", LevelTrace, LevelTrace, "local override")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message logged at warn level: %q", out)
	}
	if !strings.Contains(out, "[test] shown 2") {
		t.Errorf("error message missing: %q", out)
	}
	if !strings.Contains(out, "local override") {
		t.Errorf("local level ignored: %q", out)
	}
}

type failingCloser struct{ closed bool }

func (c *failingCloser) Close() error {
	c.closed = true
	return errors.New("disk gone")
}

func TestCloseWithLog(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	flags := log.Flags()
	log.SetFlags(0)
	saved := GlobalLevel
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(flags)
		GlobalLevel = saved
	})
	GlobalLevel = LevelWarn

	CloseWithLog("nil file", nil)
	c := &failingCloser{}
	CloseWithLog("settings file", c)

	if !c.closed {
		t.Errorf("Close was not called")
	}
	if got := buf.String(); got != "[settings file] disk gone\n" {
		t.Errorf("log output = %q", got)
	}

	buf.Reset()
	GlobalLevel = LevelError
	CloseWithLog("quiet", &failingCloser{})
	if buf.Len() != 0 {
		t.Errorf("warn-level failure logged at error level: %q", buf.String())
	}
}

func TestRotate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	if err := os.WriteFile(path, []byte(strings.Repeat("x", 64)), 0644); err != nil {
		t.Fatal(err)
	}

	rotate(path, 128)
	if _, err := os.Stat(path + ".old"); !os.IsNotExist(err) {
		t.Fatalf("small file should not be rotated")
	}

	rotate(path, 16)
	if _, err := os.Stat(path + ".old"); err != nil {
		t.Fatalf("expected rotated file: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("original file should be moved away")
	}

	f, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	CloseWithLog("test log", f)
}
