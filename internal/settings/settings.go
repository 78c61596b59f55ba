// Package settings loads the host window settings from a JSON-with-comments
// file. Values entered in the window are never written back.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/muhammadmuzzammil1998/jsonc"

	"souffleur/internal/constants"
	"souffleur/internal/intfield"
)

// Settings configures the port field and the panel layout.
type Settings struct {
	PortMin     int     `json:"port_min"`
	PortMax     int     `json:"port_max"`
	PortDefault int     `json:"port_default"`
	PortStrict  bool    `json:"port_strict"`
	FlowHGap    float32 `json:"flow_hgap"`
	STUNServer  string  `json:"stun_server"`
	LogLevel    string  `json:"log_level"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		PortMin:     constants.DefaultPortMin,
		PortMax:     constants.DefaultPortMax,
		PortDefault: constants.DefaultPort,
		PortStrict:  true,
		FlowHGap:    constants.DefaultFlowHGap,
		STUNServer:  constants.DefaultSTUNServer,
		LogLevel:    "info",
	}
}

// Load reads path over the defaults. A missing file is not an error.
// On a validation error the defaults are returned together with the error.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("settings: cannot read %s: %w", path, err)
	}
	if err := Parse(data, &s); err != nil {
		return Default(), fmt.Errorf("settings: %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes JSON-with-comments data into s and validates the result.
// Keys missing from data keep the values already in s.
func Parse(data []byte, s *Settings) error {
	if err := json.Unmarshal(jsonc.ToJSON(data), s); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}
	return s.Validate()
}

// Validate checks the port bounds and the default port against them.
func (s Settings) Validate() error {
	if s.PortMin > s.PortMax {
		return fmt.Errorf("port range: %w: min %d > max %d", intfield.ErrInvalidBounds, s.PortMin, s.PortMax)
	}
	if s.PortDefault < s.PortMin || s.PortDefault > s.PortMax {
		return fmt.Errorf("port_default: %w: %d not in [%d, %d]", intfield.ErrOutOfRange, s.PortDefault, s.PortMin, s.PortMax)
	}
	if s.FlowHGap < 0 {
		return fmt.Errorf("flow_hgap must not be negative, got %v", s.FlowHGap)
	}
	return nil
}
