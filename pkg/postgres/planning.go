package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/mbeaudoin/crew-planner/pkg/db"
)

// GetPlanningEntries retrieves planning entries with dates in [from, to]
func (d *DB) GetPlanningEntries(ctx context.Context, from, to time.Time) ([]db.PlanningEntry, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, staff_id, vehicle_id, date, session, role, note
		FROM planning_entry
		WHERE date >= $1 AND date <= $2
		ORDER BY date, session, vehicle_id
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query planning entries: %w", err)
	}
	defer rows.Close()

	var entries []db.PlanningEntry
	for rows.Next() {
		var e db.PlanningEntry
		var date time.Time
		var note *string
		if err := rows.Scan(&e.ID, &e.StaffID, &e.VehicleID, &date, &e.Session, &e.Role, &note); err != nil {
			return nil, fmt.Errorf("failed to scan planning entry: %w", err)
		}
		e.Date = date.Format(dateFormat)
		if note != nil {
			e.Note = *note
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating planning entries: %w", err)
	}

	return entries, nil
}

// ReplacePlanningEntries deletes any existing entries on the given dates and
// inserts the new set, all in one transaction
func (d *DB) ReplacePlanningEntries(ctx context.Context, dates []time.Time, entries []db.PlanningEntry) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM planning_entry WHERE date = ANY($1)`, dates); err != nil {
		return fmt.Errorf("failed to delete existing planning entries: %w", err)
	}

	for _, e := range entries {
		var note *string
		if e.Note != "" {
			note = &e.Note
		}
		_, err := tx.Exec(ctx, `
			INSERT INTO planning_entry (id, staff_id, vehicle_id, date, session, role, note)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, e.ID, e.StaffID, e.VehicleID, e.Date, e.Session, e.Role, note)
		if err != nil {
			return fmt.Errorf("failed to insert planning entry: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit planning entries: %w", err)
	}

	return nil
}
