package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mbeaudoin/crew-planner/pkg/db"
)

// ListStaffStore defines the database operations needed to list the roster
type ListStaffStore interface {
	GetStaff(ctx context.Context) ([]db.Staff, error)
	GetStaffHours(ctx context.Context) ([]db.StaffHours, error)
}

// ListStaffResult contains the roster with each member's working-hours rows
type ListStaffResult struct {
	Staff        []db.Staff
	HoursByStaff map[string][]db.StaffHours
}

// ListStaff fetches the full staff roster and their working-hours windows
func ListStaff(ctx context.Context, database ListStaffStore, logger *zap.Logger) (*ListStaffResult, error) {
	logger.Debug("Fetching staff roster")

	staff, err := database.GetStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff: %w", err)
	}

	hours, err := database.GetStaffHours(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff hours: %w", err)
	}

	hoursByStaff := make(map[string][]db.StaffHours)
	for _, h := range hours {
		hoursByStaff[h.StaffID] = append(hoursByStaff[h.StaffID], h)
	}

	logger.Debug("Roster fetched",
		zap.Int("staff", len(staff)),
		zap.Int("hours_rows", len(hours)))

	return &ListStaffResult{
		Staff:        staff,
		HoursByStaff: hoursByStaff,
	}, nil
}
