package db

// Staff is a roster row. Dates and times are stored as strings in the
// formats "2006-01-02" and "15:04".
type Staff struct {
	ID        string
	Name      string
	Tier      string
	CanDrive  bool
	Languages []string
	Active    bool
}

// StaffHours is one working-hours window: a staff member's start and end
// time for one weekday. A missing row means the person does not work that
// weekday.
type StaffHours struct {
	StaffID   string
	Weekday   string
	StartTime string
	EndTime   string
}

// Vehicle is a fleet row. Priority is the fill-priority rank, lower first.
type Vehicle struct {
	ID       string
	Name     string
	Capacity int
	Priority int
	Active   bool
}

// Absence covers a date range [StartDate, EndDate] inclusive.
// An empty StaffID marks a full-service closure.
type Absence struct {
	ID        string
	StaffID   string
	StartDate string
	EndDate   string
	Kind      string
	Reason    string
}

// PlanningEntry is one persisted seat assignment
type PlanningEntry struct {
	ID        string
	StaffID   string
	VehicleID string
	Date      string
	Session   string
	Role      string
	Note      string
}
