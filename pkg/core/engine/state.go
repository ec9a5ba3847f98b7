package engine

import "time"

// crewMember is one seated person within a vehicle crew during a session run
type crewMember struct {
	person Person
	role   Role
	note   string
}

// crew tracks the members seated in one vehicle for one date+session
type crew struct {
	vehicle Vehicle
	members []crewMember
}

func (c *crew) freeSeats() int {
	return c.vehicle.Capacity - len(c.members)
}

func (c *crew) hasDriver() bool {
	for _, m := range c.members {
		if m.role == RoleDriver {
			return true
		}
	}
	return false
}

func (c *crew) contains(personID string) bool {
	for _, m := range c.members {
		if m.person.ID == personID {
			return true
		}
	}
	return false
}

// sessionState is the single owned assignment state for one date+session.
// It is threaded explicitly through each assignment step so every step's
// contract stays self-contained.
type sessionState struct {
	cfg     *Config
	date    time.Time
	weekday time.Weekday
	session Session

	// vehicles in priority order (active only)
	vehicles []Vehicle

	// crews keyed by vehicle ID
	crews map[string]*crew

	// pool is the eligible staff for the day, in stable roster order
	pool []Person

	// used marks persons already seated this session
	used map[string]bool

	// cohort is the mutual-exclusion cohort derived from supervisor rules
	cohort map[string]bool

	warnings []Warning
}

func newSessionState(cfg *Config, date time.Time, session Session, eligible []Person, vehicles []Vehicle) *sessionState {
	st := &sessionState{
		cfg:      cfg,
		date:     date,
		weekday:  date.Weekday(),
		session:  session,
		vehicles: vehicles,
		crews:    make(map[string]*crew, len(vehicles)),
		pool:     eligible,
		used:     make(map[string]bool),
		cohort:   cfg.Cohort(),
	}
	for _, v := range vehicles {
		st.crews[v.ID] = &crew{vehicle: v}
	}
	return st
}

// seat places a person into a vehicle crew and marks them used.
// Callers are responsible for capacity and cohort checks.
func (st *sessionState) seat(p Person, vehicleID string, role Role, note string) {
	c := st.crews[vehicleID]
	c.members = append(c.members, crewMember{person: p, role: role, note: note})
	st.used[p.ID] = true
}

// eligibleUnused returns true if the person is in the day's eligible pool and
// not yet seated this session
func (st *sessionState) eligibleUnused(personID string) (Person, bool) {
	if st.used[personID] {
		return Person{}, false
	}
	for _, p := range st.pool {
		if p.ID == personID {
			return p, true
		}
	}
	return Person{}, false
}

// remaining returns the eligible persons not yet seated, in stable pool order.
// Cohort members are excluded when excludeCohort is set: they are only ever
// seated through supervisor rules or the swing resolution chain.
func (st *sessionState) remaining(excludeCohort bool) []Person {
	out := make([]Person, 0, len(st.pool))
	for _, p := range st.pool {
		if st.used[p.ID] {
			continue
		}
		if excludeCohort && st.cohort[p.ID] {
			continue
		}
		out = append(out, p)
	}
	return out
}

// cohortSeated returns true if the vehicle crew already contains a cohort member
func (st *sessionState) cohortSeated(vehicleID string) bool {
	for _, m := range st.crews[vehicleID].members {
		if st.cohort[m.person.ID] {
			return true
		}
	}
	return false
}

func (st *sessionState) warn(vehicleID, code, message string) {
	st.warnings = append(st.warnings, Warning{
		Date:      st.date,
		Session:   st.session,
		VehicleID: vehicleID,
		Code:      code,
		Message:   message,
	})
}

// buildEntries materializes the session's planning entries in vehicle
// priority order. Entries are only emitted once the session is complete, so
// in-session adjustments (driver promotion on the swing vehicle) never touch
// emitted output.
func (st *sessionState) buildEntries() []PlanningEntry {
	entries := make([]PlanningEntry, 0)
	for _, v := range st.vehicles {
		for _, m := range st.crews[v.ID].members {
			entries = append(entries, PlanningEntry{
				PersonID:  m.person.ID,
				VehicleID: v.ID,
				Date:      st.date,
				Session:   st.session,
				Role:      m.role,
				Note:      m.note,
			})
		}
	}
	return entries
}

// unassigned returns the IDs of eligible staff left unseated
func (st *sessionState) unassigned() []string {
	var ids []string
	for _, p := range st.pool {
		if !st.used[p.ID] {
			ids = append(ids, p.ID)
		}
	}
	return ids
}
