package engine

// fillCrews completes every vehicle crew in priority order, skipping the
// swing vehicle (resolved separately before this step).
func fillCrews(st *sessionState) {
	for _, v := range st.vehicles {
		if v.ID == st.cfg.Swing.VehicleID {
			continue
		}
		fillCrew(st, v.ID)
	}
}

// fillCrew completes one vehicle crew up to capacity from the remaining
// eligible non-cohort staff. A driver is selected first when the crew has
// neither a driver nor a cohort member; remaining seats are filled by skill
// tier descending with a language-diversity tiebreak.
func fillCrew(st *sessionState, vehicleID string) {
	c := st.crews[vehicleID]
	if c.freeSeats() <= 0 {
		return
	}

	if !c.hasDriver() && !st.cohortSeated(vehicleID) {
		if driver, ok := selectDriver(st, vehicleID); ok {
			st.seat(driver, vehicleID, RoleDriver, "")
		}
	}

	for c.freeSeats() > 0 {
		candidate, ok := nextCrewCandidate(st, c)
		if !ok {
			break
		}
		note := ""
		if !hasCrewHire(c) {
			note = "assistant"
		}
		st.seat(candidate, vehicleID, RoleCrew, note)
	}
}

// nextCrewCandidate picks the next-best remaining candidate for the crew:
// highest skill tier first, then candidates speaking a language the crew does
// not yet cover, then stable roster order.
func nextCrewCandidate(st *sessionState, c *crew) (Person, bool) {
	pool := st.remaining(true)
	if len(pool) == 0 {
		return Person{}, false
	}

	spoken := crewLanguages(c)

	best := pool[0]
	bestNew := addsLanguage(best, spoken)
	for _, p := range pool[1:] {
		if p.Tier > best.Tier {
			best = p
			bestNew = addsLanguage(p, spoken)
			continue
		}
		if p.Tier == best.Tier && !bestNew && addsLanguage(p, spoken) {
			best = p
			bestNew = true
		}
	}
	return best, true
}

// hasCrewHire reports whether the crew already contains a member seated by
// generic filling (as opposed to a driver or a fixed placement)
func hasCrewHire(c *crew) bool {
	for _, m := range c.members {
		if m.role == RoleCrew && m.note != "fixed supervisor placement" {
			return true
		}
	}
	return false
}

func crewLanguages(c *crew) map[string]bool {
	spoken := make(map[string]bool)
	for _, m := range c.members {
		for _, lang := range m.person.Languages {
			spoken[lang] = true
		}
	}
	return spoken
}

func addsLanguage(p Person, spoken map[string]bool) bool {
	for _, lang := range p.Languages {
		if !spoken[lang] {
			return true
		}
	}
	return false
}
