package engine

// selectDriver chooses a driver for the vehicle from the remaining non-cohort
// pool. The weekday/vehicle rotation preference wins when the preferred
// person is still available; otherwise candidates holding a driving
// credential are ranked by skill tier descending, ties broken by stable
// roster order.
//
// Returns false when no credentialed candidate remains. That is non-fatal:
// the vehicle proceeds without a designated driver and is flagged by the crew
// validator.
func selectDriver(st *sessionState, vehicleID string) (Person, bool) {
	// Rotation preference first
	if preferredID, ok := st.cfg.rotationFor(st.weekday, vehicleID); ok {
		if person, ok := st.eligibleUnused(preferredID); ok && !st.cohort[person.ID] {
			return person, true
		}
	}

	// Fall back to tier-ranked credentialed candidates
	var best Person
	found := false
	for _, p := range st.remaining(true) {
		if !p.CanDrive {
			continue
		}
		if !found || p.Tier > best.Tier {
			best = p
			found = true
		}
	}
	return best, found
}
