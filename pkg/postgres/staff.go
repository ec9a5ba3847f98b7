package postgres

import (
	"context"
	"fmt"

	"github.com/mbeaudoin/crew-planner/pkg/db"
)

// GetStaff retrieves all staff roster rows
func (d *DB) GetStaff(ctx context.Context) ([]db.Staff, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, tier, can_drive, languages, active
		FROM staff
		ORDER BY name, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query staff: %w", err)
	}
	defer rows.Close()

	var staff []db.Staff
	for rows.Next() {
		var s db.Staff
		if err := rows.Scan(&s.ID, &s.Name, &s.Tier, &s.CanDrive, &s.Languages, &s.Active); err != nil {
			return nil, fmt.Errorf("failed to scan staff: %w", err)
		}
		staff = append(staff, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating staff: %w", err)
	}

	return staff, nil
}

// GetStaffHours retrieves all working-hours windows
func (d *DB) GetStaffHours(ctx context.Context) ([]db.StaffHours, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT staff_id, weekday, start_time, end_time
		FROM staff_hours
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query staff hours: %w", err)
	}
	defer rows.Close()

	var hours []db.StaffHours
	for rows.Next() {
		var h db.StaffHours
		if err := rows.Scan(&h.StaffID, &h.Weekday, &h.StartTime, &h.EndTime); err != nil {
			return nil, fmt.Errorf("failed to scan staff hours: %w", err)
		}
		hours = append(hours, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating staff hours: %w", err)
	}

	return hours, nil
}
