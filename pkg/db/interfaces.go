package db

import (
	"context"
	"time"
)

// Database defines the store operations the planner needs: snapshot reads
// before a run and the planning write-back afterwards.
type Database interface {
	GetStaff(ctx context.Context) ([]Staff, error)
	GetStaffHours(ctx context.Context) ([]StaffHours, error)
	GetVehicles(ctx context.Context) ([]Vehicle, error)
	GetAbsences(ctx context.Context, from, to time.Time) ([]Absence, error)
	GetPlanningEntries(ctx context.Context, from, to time.Time) ([]PlanningEntry, error)

	// ReplacePlanningEntries deletes all entries for the given dates and
	// inserts the new ones in a single transaction
	ReplacePlanningEntries(ctx context.Context, dates []time.Time, entries []PlanningEntry) error
}
