package engine

import "fmt"

// ValidateConfig checks the engine configuration against the run's roster and
// fleet snapshots. Any finding here is a configuration defect: the run must
// stop rather than silently skip a broken rule.
func ValidateConfig(cfg *Config, persons []Person, vehicles []Vehicle) error {
	personIDs := make(map[string]bool, len(persons))
	for _, p := range persons {
		personIDs[p.ID] = true
	}
	vehicleIDs := make(map[string]bool, len(vehicles))
	for _, v := range vehicles {
		vehicleIDs[v.ID] = true
	}
	cohort := cfg.Cohort()

	for i, rule := range cfg.SupervisorRules {
		if !personIDs[rule.PersonID] {
			return fmt.Errorf("supervisor rule %d references unknown person %q", i, rule.PersonID)
		}
		if !vehicleIDs[rule.VehicleID] {
			return fmt.Errorf("supervisor rule %d references unknown vehicle %q", i, rule.VehicleID)
		}
		if len(rule.Weekdays) == 0 {
			return fmt.Errorf("supervisor rule %d for %q has no weekdays", i, rule.PersonID)
		}
	}

	if cfg.Swing.VehicleID != "" {
		if !vehicleIDs[cfg.Swing.VehicleID] {
			return fmt.Errorf("swing vehicle %q not in fleet", cfg.Swing.VehicleID)
		}
		if cfg.Swing.PrimaryID == "" {
			return fmt.Errorf("swing vehicle %q has no primary candidate", cfg.Swing.VehicleID)
		}
		if !cohort[cfg.Swing.PrimaryID] {
			return fmt.Errorf("swing primary %q is not a supervisor cohort member", cfg.Swing.PrimaryID)
		}
		for i, fb := range cfg.Swing.Fallbacks {
			if !cohort[fb.PersonID] {
				return fmt.Errorf("swing fallback %d (%q) is not a supervisor cohort member", i, fb.PersonID)
			}
		}
		for i, regularID := range cfg.Swing.Regulars {
			if !personIDs[regularID] {
				return fmt.Errorf("swing regular %d references unknown person %q", i, regularID)
			}
			if cohort[regularID] {
				return fmt.Errorf("swing regular %q is a cohort member", regularID)
			}
		}
	}

	for i, pref := range cfg.RotationPreferences {
		if !personIDs[pref.PersonID] {
			return fmt.Errorf("rotation preference %d references unknown person %q", i, pref.PersonID)
		}
		if !vehicleIDs[pref.VehicleID] {
			return fmt.Errorf("rotation preference %d references unknown vehicle %q", i, pref.VehicleID)
		}
		if cohort[pref.PersonID] {
			return fmt.Errorf("rotation preference %d names cohort member %q as driver", i, pref.PersonID)
		}
	}

	for i, placement := range cfg.SpecialPlacements {
		if !personIDs[placement.PersonID] {
			return fmt.Errorf("special placement %d references unknown person %q", i, placement.PersonID)
		}
		if !vehicleIDs[placement.VehicleID] {
			return fmt.Errorf("special placement %d references unknown vehicle %q", i, placement.VehicleID)
		}
	}

	switch cfg.SessionPolicy {
	case "", PolicyRecompute, PolicyMirror:
	default:
		return fmt.Errorf("unknown session policy %q", cfg.SessionPolicy)
	}

	return nil
}
