package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mbeaudoin/crew-planner/internal/config"
	"github.com/mbeaudoin/crew-planner/pkg/core/engine"
	"github.com/mbeaudoin/crew-planner/pkg/db"
)

// ValidateConfigStore defines the database operations needed to cross-check
// the configuration against the roster and fleet
type ValidateConfigStore interface {
	GetStaff(ctx context.Context) ([]db.Staff, error)
	GetStaffHours(ctx context.Context) ([]db.StaffHours, error)
	GetVehicles(ctx context.Context) ([]db.Vehicle, error)
}

// ValidateConfiguration checks the loaded configuration against the current
// roster and fleet. It returns an error describing the first defect found, or
// nil when every referenced person and vehicle resolves.
func ValidateConfiguration(ctx context.Context, database ValidateConfigStore, cfg *config.Config, logger *zap.Logger) error {
	logger.Debug("Validating configuration against roster and fleet")

	staff, err := database.GetStaff(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch staff: %w", err)
	}
	hours, err := database.GetStaffHours(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch staff hours: %w", err)
	}
	vehicles, err := database.GetVehicles(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch vehicles: %w", err)
	}

	persons, err := buildPersons(staff, hours)
	if err != nil {
		return err
	}

	engineCfg, err := cfg.ToEngine()
	if err != nil {
		return fmt.Errorf("failed to convert config: %w", err)
	}

	if err := engine.ValidateConfig(engineCfg, persons, buildVehicles(vehicles)); err != nil {
		return err
	}

	logger.Debug("Configuration valid",
		zap.Int("supervisor_rules", len(cfg.SupervisorRules)),
		zap.Int("staff", len(staff)),
		zap.Int("vehicles", len(vehicles)))

	return nil
}
