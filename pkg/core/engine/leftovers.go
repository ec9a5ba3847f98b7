package engine

import "sort"

// distributeLeftovers spreads any still-unassigned eligible staff across
// vehicles with remaining free seats, favoring vehicles with the most free
// capacity. Seating proceeds round-robin over the sorted vehicle list until
// all persons are seated or no free seats remain; anyone left over is
// reported by the orchestrator as unassigned.
func distributeLeftovers(st *sessionState) {
	open := make([]*crew, 0, len(st.vehicles))
	for _, v := range st.vehicles {
		if c := st.crews[v.ID]; c.freeSeats() > 0 {
			open = append(open, c)
		}
	}
	if len(open) == 0 {
		return
	}

	// Most free capacity first; priority order already breaks ties since
	// the walk above followed it
	sort.SliceStable(open, func(i, j int) bool {
		return open[i].freeSeats() > open[j].freeSeats()
	})

	idx := 0
	for _, p := range st.remaining(false) {
		c, ok := nextOpenCrew(st, open, &idx, p)
		if !ok {
			break
		}
		st.seat(p, c.vehicle.ID, RoleCrew, "leftover distribution")
		idx++
	}
}

// nextOpenCrew advances round-robin to the next crew that can take the
// person: a free seat, and no cohort conflict when the person is a cohort
// member.
func nextOpenCrew(st *sessionState, open []*crew, idx *int, p Person) (*crew, bool) {
	for tries := 0; tries < len(open); tries++ {
		c := open[(*idx+tries)%len(open)]
		if c.freeSeats() <= 0 {
			continue
		}
		if st.cohort[p.ID] && st.cohortSeated(c.vehicle.ID) {
			continue
		}
		*idx += tries
		return c, true
	}
	return nil, false
}
