package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mbeaudoin/crew-planner/internal/config"
	"github.com/mbeaudoin/crew-planner/pkg/core/engine"
	"github.com/mbeaudoin/crew-planner/pkg/db"
)

// GeneratePlanningStore defines the database operations needed to generate
// and persist a weekly planning
type GeneratePlanningStore interface {
	GetStaff(ctx context.Context) ([]db.Staff, error)
	GetStaffHours(ctx context.Context) ([]db.StaffHours, error)
	GetVehicles(ctx context.Context) ([]db.Vehicle, error)
	GetAbsences(ctx context.Context, from, to time.Time) ([]db.Absence, error)
	ReplacePlanningEntries(ctx context.Context, dates []time.Time, entries []db.PlanningEntry) error
}

// GeneratePlanningResult contains the generated week and lookup tables for
// display
type GeneratePlanningResult struct {
	WeekDates []time.Time
	Result    *engine.WeeklyResult
	StaffByID map[string]db.Staff
	Vehicles  []db.Vehicle
	Persisted bool
}

// GeneratePlanning runs the assignment engine for the work week containing
// weekStart and, unless dryRun is set, replaces that week's persisted
// planning with the new entries.
func GeneratePlanning(
	ctx context.Context,
	database GeneratePlanningStore,
	cfg *config.Config,
	logger *zap.Logger,
	weekStart time.Time,
	dryRun bool,
) (*GeneratePlanningResult, error) {
	weekDates := engine.WeekDates(weekStart)
	logger.Debug("Generating weekly planning",
		zap.String("week_start", weekDates[0].Format(dateFormat)),
		zap.Bool("dry_run", dryRun))

	// Step 1: Fetch the roster, hours, fleet, and absence snapshots
	staff, err := database.GetStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff: %w", err)
	}
	hours, err := database.GetStaffHours(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff hours: %w", err)
	}
	vehicles, err := database.GetVehicles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch vehicles: %w", err)
	}
	absences, err := database.GetAbsences(ctx, weekDates[0], weekDates[len(weekDates)-1])
	if err != nil {
		return nil, fmt.Errorf("failed to fetch absences: %w", err)
	}

	logger.Debug("Snapshots loaded",
		zap.Int("staff", len(staff)),
		zap.Int("vehicles", len(vehicles)),
		zap.Int("absences", len(absences)))

	// Step 2: Convert snapshots to engine inputs
	persons, err := buildPersons(staff, hours)
	if err != nil {
		return nil, err
	}
	fleet := buildVehicles(vehicles)
	records, err := buildAbsences(absences)
	if err != nil {
		return nil, err
	}

	// Step 3: Expand configured closure recurrence rules into closure records
	closures, err := config.ExpandClosureRules(cfg.ClosureRules, weekDates)
	if err != nil {
		return nil, fmt.Errorf("failed to expand closure rules: %w", err)
	}
	records = append(records, closures...)

	engineCfg, err := cfg.ToEngine()
	if err != nil {
		return nil, fmt.Errorf("failed to convert config: %w", err)
	}

	// Step 4: Run the engine
	result, err := engine.GenerateWeeklyPlanning(engineCfg, weekStart, persons, fleet, records)
	if err != nil {
		return nil, err
	}

	for _, w := range result.Warnings {
		logger.Warn("Planning warning",
			zap.String("date", w.Date.Format(dateFormat)),
			zap.String("session", string(w.Session)),
			zap.String("vehicle", w.VehicleID),
			zap.String("code", w.Code),
			zap.String("message", w.Message))
	}

	staffByID := make(map[string]db.Staff, len(staff))
	for _, s := range staff {
		staffByID[s.ID] = s
	}

	out := &GeneratePlanningResult{
		WeekDates: weekDates,
		Result:    result,
		StaffByID: staffByID,
		Vehicles:  vehicles,
	}

	if dryRun {
		logger.Info("Dry run, skipping persistence", zap.Int("entries", len(result.Entries)))
		return out, nil
	}

	// Step 5: Replace the week's persisted planning in one transaction
	rows := make([]db.PlanningEntry, 0, len(result.Entries))
	for _, e := range result.Entries {
		rows = append(rows, db.PlanningEntry{
			ID:        uuid.New().String(),
			StaffID:   e.PersonID,
			VehicleID: e.VehicleID,
			Date:      e.Date.Format(dateFormat),
			Session:   string(e.Session),
			Role:      string(e.Role),
			Note:      e.Note,
		})
	}

	if err := database.ReplacePlanningEntries(ctx, weekDates, rows); err != nil {
		return nil, fmt.Errorf("failed to persist planning entries: %w", err)
	}
	out.Persisted = true

	logger.Debug("Planning persisted",
		zap.Int("entries", len(rows)),
		zap.Int("warnings", len(result.Warnings)))

	return out, nil
}
