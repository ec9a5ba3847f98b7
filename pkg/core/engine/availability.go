package engine

import "time"

// DayAvailability is the result of filtering the roster for one date
type DayAvailability struct {
	// Closed is true when a full-service closure covers the date
	Closed bool

	// Reason is the closure reason when Closed is true
	Reason string

	// Eligible is the ordered subset of staff able to work the date,
	// preserving roster order
	Eligible []Person
}

// ClosureFor returns the full-service closure covering the date, if any.
// Only records with no person reference count as service closures.
func ClosureFor(absences []AbsenceRecord, date time.Time) (AbsenceRecord, bool) {
	for _, rec := range absences {
		if rec.Kind == AbsenceClosure && rec.PersonID == "" && rec.Covers(date) {
			return rec, true
		}
	}
	return AbsenceRecord{}, false
}

// EligibleStaff filters the full roster down to the staff eligible to work
// the given date. Order of the input roster is preserved, which later steps
// rely on for deterministic tiebreaks.
//
// A person is excluded when they are inactive, covered by a non-appointment
// absence, or have no working-hours window for the weekday. Appointment
// records never exclude anyone; they are informational only (see
// HasAppointment).
func EligibleStaff(persons []Person, absences []AbsenceRecord, date time.Time) DayAvailability {
	if closure, ok := ClosureFor(absences, date); ok {
		return DayAvailability{Closed: true, Reason: closure.Reason}
	}

	weekday := date.Weekday()

	eligible := make([]Person, 0, len(persons))
	for _, p := range persons {
		if !p.Active {
			continue
		}
		if isAbsent(absences, p.ID, date) {
			continue
		}
		if !p.WorksOn(weekday) {
			continue
		}
		eligible = append(eligible, p)
	}

	return DayAvailability{Eligible: eligible}
}

// HasAppointment reports whether the person has an appointment record
// covering the date. Appointments do not affect availability.
func HasAppointment(absences []AbsenceRecord, personID string, date time.Time) bool {
	for _, rec := range absences {
		if rec.Kind == AbsenceAppointment && rec.PersonID == personID && rec.Covers(date) {
			return true
		}
	}
	return false
}

// isAbsent returns true if a non-appointment absence covers the person on the date
func isAbsent(absences []AbsenceRecord, personID string, date time.Time) bool {
	for _, rec := range absences {
		if rec.Kind == AbsenceAppointment {
			continue
		}
		if rec.PersonID == personID && rec.Covers(date) {
			return true
		}
	}
	return false
}
