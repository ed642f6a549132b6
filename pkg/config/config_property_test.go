// Package config provides property-based tests for configuration fallback
// functionality. These tests verify universal properties that should hold
// across all valid inputs.
package config

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestProperty_InvalidRefreshIntervalFallsBackToDefault tests that
// non-positive refresh intervals fall back to the default cadence.
//
// Property: for any invalid refresh interval (zero or negative), the system
// SHALL use the default value so the display keeps refreshing.
func TestProperty_InvalidRefreshIntervalFallsBackToDefault(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("non-positive refresh intervals fall back to default", prop.ForAll(
		func(minutes int) bool {
			cfg := &Config{
				Display: DisplayConfig{RefreshIntervalMinutes: minutes},
			}

			validateAndApplyDefaults(cfg)

			return cfg.Display.RefreshIntervalMinutes == DefaultRefreshIntervalMinutes
		},
		gen.IntRange(-1000, 0),
	))

	properties.Property("valid refresh intervals are preserved", prop.ForAll(
		func(minutes int) bool {
			cfg := &Config{
				Display: DisplayConfig{RefreshIntervalMinutes: minutes},
			}

			validateAndApplyDefaults(cfg)

			return cfg.Display.RefreshIntervalMinutes == minutes
		},
		gen.IntRange(1, 1440),
	))

	properties.TestingRun(t)
}

// TestProperty_InvalidPortFallsBackToDefault tests that non-positive server
// ports fall back to the default port.
func TestProperty_InvalidPortFallsBackToDefault(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("non-positive ports fall back to default", prop.ForAll(
		func(port int) bool {
			cfg := &Config{
				Server: ServerConfig{Port: port},
			}

			validateAndApplyDefaults(cfg)

			return cfg.Server.Port == defaultServerPort
		},
		gen.IntRange(-65535, 0),
	))

	properties.TestingRun(t)
}
