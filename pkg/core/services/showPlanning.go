package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/mbeaudoin/crew-planner/pkg/core/engine"
	"github.com/mbeaudoin/crew-planner/pkg/db"
)

// ShowPlanningStore defines the database operations needed to display a
// persisted planning
type ShowPlanningStore interface {
	GetStaff(ctx context.Context) ([]db.Staff, error)
	GetVehicles(ctx context.Context) ([]db.Vehicle, error)
	GetPlanningEntries(ctx context.Context, from, to time.Time) ([]db.PlanningEntry, error)
}

// ShowPlanningResult contains one week's persisted planning with lookup
// tables for display
type ShowPlanningResult struct {
	WeekDates []time.Time
	Entries   []db.PlanningEntry
	StaffByID map[string]db.Staff
	Vehicles  []db.Vehicle
}

// ShowPlanning fetches the persisted planning for the work week containing
// weekStart
func ShowPlanning(
	ctx context.Context,
	database ShowPlanningStore,
	logger *zap.Logger,
	weekStart time.Time,
) (*ShowPlanningResult, error) {
	weekDates := engine.WeekDates(weekStart)
	logger.Debug("Fetching persisted planning",
		zap.String("week_start", weekDates[0].Format(dateFormat)))

	entries, err := database.GetPlanningEntries(ctx, weekDates[0], weekDates[len(weekDates)-1])
	if err != nil {
		return nil, fmt.Errorf("failed to fetch planning entries: %w", err)
	}

	staff, err := database.GetStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff: %w", err)
	}

	vehicles, err := database.GetVehicles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch vehicles: %w", err)
	}

	staffByID := make(map[string]db.Staff, len(staff))
	for _, s := range staff {
		staffByID[s.ID] = s
	}

	// Order by date, morning before afternoon, then vehicle priority
	priorityByID := make(map[string]int, len(vehicles))
	for _, v := range vehicles {
		priorityByID[v.ID] = v.Priority
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Date != entries[j].Date {
			return entries[i].Date < entries[j].Date
		}
		if entries[i].Session != entries[j].Session {
			return entries[i].Session == string(engine.SessionMorning)
		}
		return priorityByID[entries[i].VehicleID] < priorityByID[entries[j].VehicleID]
	})

	logger.Debug("Planning fetched", zap.Int("entries", len(entries)))

	return &ShowPlanningResult{
		WeekDates: weekDates,
		Entries:   entries,
		StaffByID: staffByID,
		Vehicles:  vehicles,
	}, nil
}
