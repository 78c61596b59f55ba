// Package debuglog is a small leveled wrapper around the standard logger.
package debuglog

import (
	"fmt"
	"log"
	"os"
	"strings"
)

type Level uint8

const (
	LevelOff Level = iota
	LevelError
	LevelWarn
	LevelInfo
	LevelVerbose
	LevelTrace

	UseGlobal Level = 255
)

const envKey = "SOUFFLEUR_DEBUG"

var (
	GlobalLevel = defaultLevel()
)

func defaultLevel() Level {
	if lvl, ok := ParseLevel(os.Getenv(envKey)); ok {
		return lvl
	}
	return LevelInfo
}

// ParseLevel maps a level name to a Level. ok is false for unknown names.
func ParseLevel(raw string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return LevelTrace, true
	case "verbose", "debug":
		return LevelVerbose, true
	case "info":
		return LevelInfo, true
	case "warn", "warning":
		return LevelWarn, true
	case "error":
		return LevelError, true
	case "off":
		return LevelOff, true
	default:
		return LevelInfo, false
	}
}

// SetLevelFromConfig applies a configured level unless the environment
// variable already chose one.
func SetLevelFromConfig(raw string) {
	if _, ok := ParseLevel(os.Getenv(envKey)); ok {
		return
	}
	if lvl, ok := ParseLevel(raw); ok {
		GlobalLevel = lvl
	}
}

func Log(prefix string, level Level, local Level, format string, args ...interface{}) {
	if !ShouldLog(level, local) {
		return
	}
	message := fmt.Sprintf(format, args...)
	if prefix != "" {
		log.Printf("[%s] %s", prefix, message)
	} else {
		log.Print(message)
	}
}

func ShouldLog(level Level, local Level) bool {
	effective := GlobalLevel
	if local != UseGlobal {
		effective = local
	}
	return level <= effective
}
