package postgres

import (
	"context"
	"fmt"

	"github.com/mbeaudoin/crew-planner/pkg/db"
)

// GetVehicles retrieves the fleet in fill-priority order
func (d *DB) GetVehicles(ctx context.Context) ([]db.Vehicle, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, capacity, priority, active
		FROM vehicle
		ORDER BY priority
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []db.Vehicle
	for rows.Next() {
		var v db.Vehicle
		if err := rows.Scan(&v.ID, &v.Name, &v.Capacity, &v.Priority, &v.Active); err != nil {
			return nil, fmt.Errorf("failed to scan vehicle: %w", err)
		}
		vehicles = append(vehicles, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating vehicles: %w", err)
	}

	return vehicles, nil
}
