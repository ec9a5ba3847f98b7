package engine

import "fmt"

// validateCrews checks every finished crew for minimum viable composition
// and capacity compliance. Findings are warnings attached to the output;
// validation never blocks it.
func validateCrews(st *sessionState) {
	for _, v := range st.vehicles {
		c := st.crews[v.ID]

		if len(c.members) == 0 {
			st.warn(v.ID, WarnEmptyCrew, fmt.Sprintf("vehicle %s has no crew", v.Name))
			continue
		}

		if !c.hasDriver() && !st.cohortSeated(v.ID) {
			st.warn(v.ID, WarnNoDriver,
				fmt.Sprintf("vehicle %s has neither a driver nor a supervisor", v.Name))
		}

		// Structurally impossible given the fill steps, but checked anyway
		if len(c.members) > v.Capacity {
			st.warn(v.ID, WarnOverCapacity,
				fmt.Sprintf("vehicle %s seats %d but has capacity %d", v.Name, len(c.members), v.Capacity))
		}
	}
}
