package engine

// swingStep is one step of the swing vehicle's cascading fallback chain.
// Steps are evaluated in order; each either selects a cohort candidate or
// yields to the next step.
type swingStep func(st *sessionState) (Person, bool)

// swingSteps builds the ordered candidate-selector chain for the swing seat:
// the primary designated member first, then each configured fallback filtered
// by weekday.
func swingSteps(cfg *SwingConfig) []swingStep {
	steps := []swingStep{
		func(st *sessionState) (Person, bool) {
			return st.eligibleUnused(cfg.PrimaryID)
		},
	}
	for _, fb := range cfg.Fallbacks {
		fb := fb
		steps = append(steps, func(st *sessionState) (Person, bool) {
			if !fb.ConsideredOn(st.weekday) {
				return Person{}, false
			}
			return st.eligibleUnused(fb.PersonID)
		})
	}
	return steps
}

// resolveSwingVehicle applies the cascading fallback chain for the one
// vehicle hosting a mutual-exclusion cohort member. It runs once per
// date+session before general crew filling of that vehicle.
//
// The chain seats at most one cohort member (the mutual-exclusion slot);
// afterwards the configured regular crew members are appended up to the cap,
// the remaining seats are filled generically, and a post-check guarantees a
// driver where possible.
func resolveSwingVehicle(st *sessionState) {
	cfg := &st.cfg.Swing
	c := st.crews[cfg.VehicleID]

	// Steps 1-3: walk the candidate chain until a cohort member is seated.
	// Re-check the mutual-exclusion slot before placement; a supervisor rule
	// may already have seated a cohort member here.
	if !st.cohortSeated(cfg.VehicleID) {
		for _, step := range swingSteps(cfg) {
			candidate, ok := step(st)
			if !ok {
				continue
			}
			if st.cohortSeated(cfg.VehicleID) {
				break
			}
			if c.freeSeats() <= 0 {
				break
			}
			role := RoleCrew
			if candidate.CanDrive {
				role = RoleDriver
			}
			st.seat(candidate, cfg.VehicleID, role, "swing placement")
			break
		}
	}

	// Step 4: append the regular non-cohort crew members up to the cap
	seated := 0
	for _, regularID := range cfg.Regulars {
		if cfg.RegularCap > 0 && seated >= cfg.RegularCap {
			break
		}
		if c.freeSeats() <= 0 {
			break
		}
		person, ok := st.eligibleUnused(regularID)
		if !ok {
			continue
		}
		// Regulars must never fill the mutual-exclusion slot
		if st.cohort[person.ID] {
			continue
		}
		st.seat(person, cfg.VehicleID, RoleCrew, "swing regular")
		seated++
	}

	// Continue with generic filling for any remaining seats
	fillCrew(st, cfg.VehicleID)

	ensureSwingDriver(st, c)
}

// ensureSwingDriver promotes the first credentialed crew member to driver
// when the swing crew ended up driverless, or seats one additional
// credentialed non-cohort candidate when no member holds a credential.
func ensureSwingDriver(st *sessionState, c *crew) {
	if c.hasDriver() {
		return
	}

	for i, m := range c.members {
		if m.person.CanDrive {
			c.members[i].role = RoleDriver
			return
		}
	}

	if c.freeSeats() <= 0 {
		return
	}
	for _, p := range st.remaining(true) {
		if p.CanDrive {
			st.seat(p, c.vehicle.ID, RoleDriver, "")
			return
		}
	}
}
