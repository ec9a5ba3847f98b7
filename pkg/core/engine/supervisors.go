package engine

// assignSupervisors places each cohort member whose rule covers the current
// weekday into their configured vehicle. Supervisors are always seated as
// crew, never as drivers, and their placements are never revisited or
// displaced by later steps.
func assignSupervisors(st *sessionState) {
	for _, rule := range st.cfg.SupervisorRules {
		if !rule.AppliesOn(st.weekday) {
			continue
		}
		person, ok := st.eligibleUnused(rule.PersonID)
		if !ok {
			continue
		}
		// Mutual exclusion holds by construction here (one rule per
		// vehicle per weekday), but re-check before seating
		if st.cohortSeated(rule.VehicleID) {
			continue
		}
		if st.crews[rule.VehicleID].freeSeats() <= 0 {
			continue
		}
		st.seat(person, rule.VehicleID, RoleCrew, "fixed supervisor placement")
	}
}
