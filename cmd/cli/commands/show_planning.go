package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mbeaudoin/crew-planner/pkg/core/services"
)

// ShowPlanningCmd creates the showPlanning command
func ShowPlanningCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "showPlanning <week_start>",
		Short: "Show the persisted vehicle crew planning for a week",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			weekStart, err := time.Parse("2006-01-02", args[0])
			if err != nil {
				return fmt.Errorf("week_start must be a date in YYYY-MM-DD format: %w", err)
			}

			app.Logger.Debug("showPlanning command", zap.String("week_start", args[0]))

			result, err := services.ShowPlanning(app.Ctx, app.Database, app.Logger, weekStart)
			if err != nil {
				return err
			}

			fmt.Printf("\nPersisted Planning: %s to %s\n\n",
				result.WeekDates[0].Format("2006-01-02"),
				result.WeekDates[len(result.WeekDates)-1].Format("2006-01-02"))

			if len(result.Entries) == 0 {
				fmt.Printf("%sNo planning entries found for this week%s\n\n", colorDim, colorReset)
				return nil
			}

			vehicleNames := make(map[string]string, len(result.Vehicles))
			for _, v := range result.Vehicles {
				vehicleNames[v.ID] = v.Name
			}

			var lastDate, lastSession, lastVehicle string
			for _, e := range result.Entries {
				if e.Date != lastDate {
					date, _ := time.Parse("2006-01-02", e.Date)
					fmt.Printf("%s (%s)\n", e.Date, date.Weekday())
					lastDate = e.Date
					lastSession = ""
					lastVehicle = ""
				}
				if e.Session != lastSession {
					fmt.Printf("  %s:\n", e.Session)
					lastSession = e.Session
					lastVehicle = ""
				}
				if e.VehicleID != lastVehicle {
					name := vehicleNames[e.VehicleID]
					if name == "" {
						name = e.VehicleID
					}
					fmt.Printf("    %s:\n", name)
					lastVehicle = e.VehicleID
				}

				staffName := e.StaffID
				if s, ok := result.StaffByID[e.StaffID]; ok {
					staffName = s.Name
				}
				marker := " "
				if e.Role == "driver" {
					marker = "D"
				}
				if e.Note != "" {
					fmt.Printf("      [%s] %s %s(%s)%s\n", marker, staffName, colorDim, e.Note, colorReset)
				} else {
					fmt.Printf("      [%s] %s\n", marker, staffName)
				}
			}
			fmt.Println()

			return nil
		},
	}
}
