package engine

import "time"

// SkillTier is the ordered staff classification used to rank candidates.
// Higher values outrank lower ones when selecting drivers and crew.
type SkillTier int

const (
	TierWeak SkillTier = iota
	TierMedium
	TierStrong
)

func (t SkillTier) String() string {
	switch t {
	case TierWeak:
		return "weak"
	case TierMedium:
		return "medium"
	case TierStrong:
		return "strong"
	default:
		return "unknown"
	}
}

// Session is one of the two daily scheduling windows
type Session string

const (
	SessionMorning   Session = "morning"
	SessionAfternoon Session = "afternoon"
)

// Role is the seat role of a person within a vehicle crew
type Role string

const (
	RoleDriver Role = "driver"
	RoleCrew   Role = "crew"
)

// AbsenceKind classifies an absence record.
// Appointments are informational only and never exclude a person from
// availability; closures with no person reference suspend scheduling entirely.
type AbsenceKind string

const (
	AbsenceOrdinary    AbsenceKind = "ordinary"
	AbsenceAppointment AbsenceKind = "appointment"
	AbsenceClosure     AbsenceKind = "closure"
)

// SessionPolicy controls how the afternoon session relates to the morning one
type SessionPolicy string

const (
	// PolicyRecompute computes the afternoon independently from the same
	// eligible pool (the default)
	PolicyRecompute SessionPolicy = "recompute"

	// PolicyMirror copies the morning crews verbatim into the afternoon,
	// for services that want staffing stability across the day
	PolicyMirror SessionPolicy = "mirror"
)

// HoursWindow is a person's working-hours window for one weekday ("08:30" style)
type HoursWindow struct {
	Start string
	End   string
}

// Person is a staff member loaded read-only from the roster at run start.
// The engine never mutates persons.
type Person struct {
	ID        string
	Name      string
	Tier      SkillTier
	CanDrive  bool
	Languages []string
	Active    bool

	// Hours maps weekdays to working-hours windows. A weekday with no
	// entry means the person does not work that weekday.
	Hours map[time.Weekday]HoursWindow
}

// WorksOn returns true if the person has a working-hours window for the weekday
func (p Person) WorksOn(weekday time.Weekday) bool {
	_, ok := p.Hours[weekday]
	return ok
}

// Vehicle is a fleet vehicle with a fixed fill-priority rank.
// Lower Priority values are filled first.
type Vehicle struct {
	ID       string
	Name     string
	Capacity int
	Priority int
	Active   bool
}

// AbsenceRecord covers a date range [Start, End] inclusive.
// An empty PersonID marks a global record (a full-service closure).
type AbsenceRecord struct {
	PersonID string
	Start    time.Time
	End      time.Time
	Kind     AbsenceKind
	Reason   string
}

// Covers returns true if the record's date range contains the given date
func (a AbsenceRecord) Covers(date time.Time) bool {
	d := truncateToDay(date)
	return !d.Before(truncateToDay(a.Start)) && !d.After(truncateToDay(a.End))
}

// SupervisorRule pins a cohort member to their configured vehicle on the
// weekdays the rule covers. The union of all rule persons forms the
// mutual-exclusion cohort: no two cohort members may share a crew.
type SupervisorRule struct {
	PersonID  string
	VehicleID string
	Weekdays  []time.Weekday
}

// AppliesOn returns true if the rule covers the given weekday
func (r SupervisorRule) AppliesOn(weekday time.Weekday) bool {
	for _, wd := range r.Weekdays {
		if wd == weekday {
			return true
		}
	}
	return false
}

// RotationPreference names the preferred driver for a (weekday, vehicle) pair.
// It is a soft preference: ignored when the person is unavailable or already
// placed.
type RotationPreference struct {
	Weekday   time.Weekday
	VehicleID string
	PersonID  string
}

// SwingFallback is one candidate in the swing vehicle's ordered fallback
// chain. An empty Weekdays list means the candidate is considered on any
// weekday.
type SwingFallback struct {
	PersonID string
	Weekdays []time.Weekday
}

// ConsideredOn returns true if the fallback candidate applies on the weekday
func (f SwingFallback) ConsideredOn(weekday time.Weekday) bool {
	if len(f.Weekdays) == 0 {
		return true
	}
	for _, wd := range f.Weekdays {
		if wd == weekday {
			return true
		}
	}
	return false
}

// SwingConfig configures the one vehicle subject to the cascading
// fallback/mutual-exclusion resolution logic.
type SwingConfig struct {
	VehicleID string

	// PrimaryID is the cohort member who normally holds the swing seat
	PrimaryID string

	// Fallbacks are alternate cohort members tried in order when the
	// primary is unavailable
	Fallbacks []SwingFallback

	// Regulars are non-cohort crew members historically attached to this
	// vehicle, seated (up to RegularCap) before generic filling
	Regulars   []string
	RegularCap int
}

// SpecialPlacement is a forced placement: if the person is eligible and
// unused and the vehicle has a free seat, seat them there as crew.
type SpecialPlacement struct {
	PersonID  string
	VehicleID string
}

// Config is the full engine configuration, loaded once at startup and passed
// by reference through the call chain.
type Config struct {
	SupervisorRules     []SupervisorRule
	RotationPreferences []RotationPreference
	Swing               SwingConfig
	SpecialPlacements   []SpecialPlacement
	SessionPolicy       SessionPolicy
}

// Cohort returns the mutual-exclusion cohort: the set of person IDs named by
// the supervisor rules.
func (c *Config) Cohort() map[string]bool {
	cohort := make(map[string]bool)
	for _, rule := range c.SupervisorRules {
		cohort[rule.PersonID] = true
	}
	return cohort
}

// rotationFor looks up the preferred driver for a (weekday, vehicle) pair
func (c *Config) rotationFor(weekday time.Weekday, vehicleID string) (string, bool) {
	for _, pref := range c.RotationPreferences {
		if pref.Weekday == weekday && pref.VehicleID == vehicleID {
			return pref.PersonID, true
		}
	}
	return "", false
}

// PlanningEntry is one seat assignment in the weekly output. Entries are
// immutable once emitted; the run output is the ordered list of all entries.
type PlanningEntry struct {
	PersonID  string
	VehicleID string
	Date      time.Time
	Session   Session
	Role      Role
	Note      string
}

// Warning codes attached to validation findings
const (
	WarnNoDriver     = "no_driver"
	WarnEmptyCrew    = "empty_crew"
	WarnOverCapacity = "over_capacity"
)

// Warning is a non-fatal validation finding attached to the output
type Warning struct {
	Date      time.Time
	Session   Session
	VehicleID string
	Code      string
	Message   string
}

// ClosedDay records a weekday skipped because of a full-service closure
type ClosedDay struct {
	Date   time.Time
	Reason string
}

// UnassignedStaff lists eligible staff left unseated for one date+session
type UnassignedStaff struct {
	Date      time.Time
	Session   Session
	PersonIDs []string
}

// Summary carries aggregate counters for a weekly run
type Summary struct {
	Entries          int
	DistinctVehicles int
	DistinctStaff    int
	ClosedDays       []ClosedDay
	Unassigned       []UnassignedStaff
}

// WeeklyResult is the terminal output of a weekly run: the full entry list
// plus aggregated validator warnings and summary counters.
type WeeklyResult struct {
	Entries  []PlanningEntry
	Warnings []Warning
	Summary  Summary
}

// truncateToDay strips the time-of-day component for date comparisons
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
