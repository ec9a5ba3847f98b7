package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/mbeaudoin/crew-planner/pkg/db"
)

const dateFormat = "2006-01-02"

// GetAbsences retrieves all absence records overlapping [from, to]
func (d *DB) GetAbsences(ctx context.Context, from, to time.Time) ([]db.Absence, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, staff_id, start_date, end_date, kind, reason
		FROM absence
		WHERE start_date <= $2 AND end_date >= $1
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query absences: %w", err)
	}
	defer rows.Close()

	var absences []db.Absence
	for rows.Next() {
		var a db.Absence
		var staffID, reason *string
		var start, end time.Time
		if err := rows.Scan(&a.ID, &staffID, &start, &end, &a.Kind, &reason); err != nil {
			return nil, fmt.Errorf("failed to scan absence: %w", err)
		}
		if staffID != nil {
			a.StaffID = *staffID
		}
		if reason != nil {
			a.Reason = *reason
		}
		a.StartDate = start.Format(dateFormat)
		a.EndDate = end.Format(dateFormat)
		absences = append(absences, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating absences: %w", err)
	}

	return absences, nil
}
