package engine

// assignSpecialCases applies the configured forced placements after general
// crew filling: if the person is eligible and unused and the target vehicle
// has a free seat, seat them there as crew. Rules are independent of each
// other and evaluated once per date+session.
func assignSpecialCases(st *sessionState) {
	for _, placement := range st.cfg.SpecialPlacements {
		person, ok := st.eligibleUnused(placement.PersonID)
		if !ok {
			continue
		}
		if st.crews[placement.VehicleID].freeSeats() <= 0 {
			continue
		}
		// Forced placements never override mutual exclusion
		if st.cohort[person.ID] && st.cohortSeated(placement.VehicleID) {
			continue
		}
		st.seat(person, placement.VehicleID, RoleCrew, "forced placement")
	}
}
