package engine

import (
	"sort"
	"time"
)

// workWeekDays is the number of scheduled days per week (Monday to Friday)
const workWeekDays = 5

// StartOfWeek returns the Monday of the week containing the given date
func StartOfWeek(date time.Time) time.Time {
	d := truncateToDay(date)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// WeekDates returns the five scheduled dates (Monday to Friday) of the week
// containing startDate
func WeekDates(startDate time.Time) []time.Time {
	monday := StartOfWeek(startDate)
	dates := make([]time.Time, workWeekDays)
	for i := range dates {
		dates[i] = monday.AddDate(0, 0, i)
	}
	return dates
}

// GenerateWeeklyPlanning runs the full assignment engine for the work week
// containing startDate. It is a pure function of its inputs: identical
// snapshots and configuration always yield identical output.
//
// The run aborts with an error only on configuration defects. Service
// closures, missing drivers, and unseated staff all degrade gracefully into
// the result's warnings and summary.
func GenerateWeeklyPlanning(cfg *Config, startDate time.Time, persons []Person, vehicles []Vehicle, absences []AbsenceRecord) (*WeeklyResult, error) {
	if err := ValidateConfig(cfg, persons, vehicles); err != nil {
		return nil, err
	}

	fleet := activeByPriority(vehicles)
	result := &WeeklyResult{}

	for _, date := range WeekDates(startDate) {
		avail := EligibleStaff(persons, absences, date)
		if avail.Closed {
			result.Summary.ClosedDays = append(result.Summary.ClosedDays, ClosedDay{
				Date:   date,
				Reason: avail.Reason,
			})
			continue
		}

		morning := runSession(cfg, date, SessionMorning, avail.Eligible, fleet)
		collectSession(result, morning)

		if cfg.SessionPolicy == PolicyMirror {
			collectSession(result, mirrorSession(morning))
		} else {
			afternoon := runSession(cfg, date, SessionAfternoon, avail.Eligible, fleet)
			collectSession(result, afternoon)
		}
	}

	finalizeSummary(result)
	return result, nil
}

// runSession executes the per-session assignment pipeline:
// supervisors, swing vehicle, crew filling, special cases, leftovers,
// validation.
func runSession(cfg *Config, date time.Time, session Session, eligible []Person, fleet []Vehicle) *sessionState {
	st := newSessionState(cfg, date, session, eligible, fleet)

	assignSupervisors(st)
	if cfg.Swing.VehicleID != "" {
		resolveSwingVehicle(st)
	}
	fillCrews(st)
	assignSpecialCases(st)
	distributeLeftovers(st)
	validateCrews(st)

	return st
}

// mirrorSession produces the afternoon state by copying the morning crews
// verbatim, for the mirror session policy
func mirrorSession(morning *sessionState) *sessionState {
	afternoon := &sessionState{
		cfg:      morning.cfg,
		date:     morning.date,
		weekday:  morning.weekday,
		session:  SessionAfternoon,
		vehicles: morning.vehicles,
		crews:    make(map[string]*crew, len(morning.crews)),
		pool:     morning.pool,
		used:     morning.used,
		cohort:   morning.cohort,
	}
	for id, c := range morning.crews {
		members := make([]crewMember, len(c.members))
		copy(members, c.members)
		afternoon.crews[id] = &crew{vehicle: c.vehicle, members: members}
	}
	for _, w := range morning.warnings {
		w.Session = SessionAfternoon
		afternoon.warnings = append(afternoon.warnings, w)
	}
	return afternoon
}

// collectSession folds one session's output into the weekly result
func collectSession(result *WeeklyResult, st *sessionState) {
	result.Entries = append(result.Entries, st.buildEntries()...)
	result.Warnings = append(result.Warnings, st.warnings...)
	if ids := st.unassigned(); len(ids) > 0 {
		result.Summary.Unassigned = append(result.Summary.Unassigned, UnassignedStaff{
			Date:      st.date,
			Session:   st.session,
			PersonIDs: ids,
		})
	}
}

// finalizeSummary computes the aggregate counters from the collected entries
func finalizeSummary(result *WeeklyResult) {
	vehicles := make(map[string]bool)
	staff := make(map[string]bool)
	for _, e := range result.Entries {
		vehicles[e.VehicleID] = true
		staff[e.PersonID] = true
	}
	result.Summary.Entries = len(result.Entries)
	result.Summary.DistinctVehicles = len(vehicles)
	result.Summary.DistinctStaff = len(staff)
}

// activeByPriority filters the fleet to active vehicles and orders it by
// fill-priority rank
func activeByPriority(vehicles []Vehicle) []Vehicle {
	fleet := make([]Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if v.Active {
			fleet = append(fleet, v)
		}
	}
	sort.SliceStable(fleet, func(i, j int) bool {
		return fleet[i].Priority < fleet[j].Priority
	})
	return fleet
}
