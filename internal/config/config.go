package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/mbeaudoin/crew-planner/pkg/core/engine"
)

// SupervisorRule pins a supervisor to a vehicle on the listed weekdays
type SupervisorRule struct {
	Person   string   `yaml:"person" validate:"required"`
	Vehicle  string   `yaml:"vehicle" validate:"required"`
	Weekdays []string `yaml:"weekdays" validate:"required,min=1"`
}

// RotationPreference names the preferred driver for a (weekday, vehicle) pair
type RotationPreference struct {
	Weekday string `yaml:"weekday" validate:"required"`
	Vehicle string `yaml:"vehicle" validate:"required"`
	Person  string `yaml:"person" validate:"required"`
}

// SwingFallback is one candidate in the swing vehicle's ordered fallback chain
type SwingFallback struct {
	Person   string   `yaml:"person" validate:"required"`
	Weekdays []string `yaml:"weekdays,omitempty"`
}

// SwingVehicle configures the cascading fallback logic for the swing vehicle
type SwingVehicle struct {
	Vehicle    string          `yaml:"vehicle" validate:"required"`
	Primary    string          `yaml:"primary" validate:"required"`
	Fallbacks  []SwingFallback `yaml:"fallbacks,omitempty" validate:"dive"`
	Regulars   []string        `yaml:"regulars,omitempty"`
	RegularCap int             `yaml:"regularCap,omitempty" validate:"omitempty,min=1"`
}

// SpecialPlacement is a forced seat assignment evaluated after crew filling
type SpecialPlacement struct {
	Person  string `yaml:"person" validate:"required"`
	Vehicle string `yaml:"vehicle" validate:"required"`
}

// ClosureRule suspends scheduling on dates matched by a recurrence rule
type ClosureRule struct {
	RRule  string `yaml:"rrule" validate:"required"`
	Reason string `yaml:"reason,omitempty"`
}

// Config represents the planner configuration
type Config struct {
	SessionPolicy       string               `yaml:"sessionPolicy,omitempty" validate:"omitempty,oneof=recompute mirror"`
	SupervisorRules     []SupervisorRule     `yaml:"supervisorRules" validate:"required,min=1,dive"`
	RotationPreferences []RotationPreference `yaml:"rotationPreferences,omitempty" validate:"dive"`
	SwingVehicle        SwingVehicle         `yaml:"swingVehicle" validate:"required"`
	SpecialPlacements   []SpecialPlacement   `yaml:"specialPlacements,omitempty" validate:"dive"`
	ClosureRules        []ClosureRule        `yaml:"closureRules,omitempty" validate:"dive"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from crew_planner_config.yaml
// It looks for the config file in the current directory first, then in the user's home directory
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct, weekday names, and rrule syntax
func Validate(cfg *Config) error {
	// Run struct validation
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	// Validate weekday names everywhere they appear
	for i, rule := range cfg.SupervisorRules {
		for _, wd := range rule.Weekdays {
			if _, err := ParseWeekday(wd); err != nil {
				return fmt.Errorf("invalid weekday in supervisorRules[%d]: %w", i, err)
			}
		}
	}
	for i, pref := range cfg.RotationPreferences {
		if _, err := ParseWeekday(pref.Weekday); err != nil {
			return fmt.Errorf("invalid weekday in rotationPreferences[%d]: %w", i, err)
		}
	}
	for i, fb := range cfg.SwingVehicle.Fallbacks {
		for _, wd := range fb.Weekdays {
			if _, err := ParseWeekday(wd); err != nil {
				return fmt.Errorf("invalid weekday in swingVehicle.fallbacks[%d]: %w", i, err)
			}
		}
	}

	// Validate rrule syntax for each closure rule
	for i, rule := range cfg.ClosureRules {
		if _, err := rrule.StrToRRule(rule.RRule); err != nil {
			return fmt.Errorf("invalid rrule in closureRules[%d]: %w", i, err)
		}
	}

	return nil
}

// ParseWeekday converts a lowercase weekday name to a time.Weekday
func ParseWeekday(name string) (time.Weekday, error) {
	switch strings.ToLower(name) {
	case "monday":
		return time.Monday, nil
	case "tuesday":
		return time.Tuesday, nil
	case "wednesday":
		return time.Wednesday, nil
	case "thursday":
		return time.Thursday, nil
	case "friday":
		return time.Friday, nil
	case "saturday":
		return time.Saturday, nil
	case "sunday":
		return time.Sunday, nil
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", name)
}

// ToEngine converts the file configuration to the engine's immutable config.
// Weekday names have already been validated, but parse errors are still
// propagated rather than ignored.
func (cfg *Config) ToEngine() (*engine.Config, error) {
	out := &engine.Config{
		SessionPolicy: engine.SessionPolicy(cfg.SessionPolicy),
	}

	for _, rule := range cfg.SupervisorRules {
		weekdays, err := parseWeekdays(rule.Weekdays)
		if err != nil {
			return nil, err
		}
		out.SupervisorRules = append(out.SupervisorRules, engine.SupervisorRule{
			PersonID:  rule.Person,
			VehicleID: rule.Vehicle,
			Weekdays:  weekdays,
		})
	}

	for _, pref := range cfg.RotationPreferences {
		weekday, err := ParseWeekday(pref.Weekday)
		if err != nil {
			return nil, err
		}
		out.RotationPreferences = append(out.RotationPreferences, engine.RotationPreference{
			Weekday:   weekday,
			VehicleID: pref.Vehicle,
			PersonID:  pref.Person,
		})
	}

	out.Swing = engine.SwingConfig{
		VehicleID:  cfg.SwingVehicle.Vehicle,
		PrimaryID:  cfg.SwingVehicle.Primary,
		Regulars:   cfg.SwingVehicle.Regulars,
		RegularCap: cfg.SwingVehicle.RegularCap,
	}
	for _, fb := range cfg.SwingVehicle.Fallbacks {
		weekdays, err := parseWeekdays(fb.Weekdays)
		if err != nil {
			return nil, err
		}
		out.Swing.Fallbacks = append(out.Swing.Fallbacks, engine.SwingFallback{
			PersonID: fb.Person,
			Weekdays: weekdays,
		})
	}

	for _, placement := range cfg.SpecialPlacements {
		out.SpecialPlacements = append(out.SpecialPlacements, engine.SpecialPlacement{
			PersonID:  placement.Person,
			VehicleID: placement.Vehicle,
		})
	}

	return out, nil
}

func parseWeekdays(names []string) ([]time.Weekday, error) {
	weekdays := make([]time.Weekday, 0, len(names))
	for _, name := range names {
		wd, err := ParseWeekday(name)
		if err != nil {
			return nil, err
		}
		weekdays = append(weekdays, wd)
	}
	return weekdays, nil
}

// findConfigFile searches for crew_planner_config.yaml in current directory and home directory
func findConfigFile() (string, error) {
	configFileName := "crew_planner_config.yaml"

	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
