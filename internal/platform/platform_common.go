package platform

import (
	"os"
	"path/filepath"

	"souffleur/internal/constants"
)

// GetSettingsPath returns the path to the settings file
func GetSettingsPath(execDir string) string {
	return filepath.Join(execDir, constants.SettingsFileName)
}

// GetLogsDir returns the path to logs directory
func GetLogsDir(execDir string) string {
	return filepath.Join(execDir, constants.LogsDirName)
}

// GetMainLogPath returns the path to the application log file
func GetMainLogPath(execDir string) string {
	return filepath.Join(GetLogsDir(execDir), constants.MainLogFileName)
}

// EnsureDirectories creates necessary directories if they don't exist
func EnsureDirectories(execDir string) error {
	return os.MkdirAll(GetLogsDir(execDir), os.ModePerm)
}
