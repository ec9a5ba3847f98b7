package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mbeaudoin/crew-planner/pkg/core/services"
)

// ValidateConfigCmd creates the validateConfig command
func ValidateConfigCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validateConfig",
		Short: "Validate the configuration against the current roster and fleet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.ValidateConfiguration(app.Ctx, app.Database, app.Cfg, app.Logger); err != nil {
				fmt.Printf("\n%s✗ Configuration invalid:%s %v\n\n", colorRed, colorReset, err)
				return err
			}

			fmt.Printf("\n%s✓ Configuration valid%s\n", colorGreen, colorReset)
			fmt.Printf("  Supervisor rules:     %d\n", len(app.Cfg.SupervisorRules))
			fmt.Printf("  Rotation preferences: %d\n", len(app.Cfg.RotationPreferences))
			fmt.Printf("  Special placements:   %d\n", len(app.Cfg.SpecialPlacements))
			fmt.Printf("  Closure rules:        %d\n\n", len(app.Cfg.ClosureRules))

			return nil
		},
	}
}
