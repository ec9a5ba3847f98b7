package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mbeaudoin/crew-planner/pkg/core/engine"
	"github.com/mbeaudoin/crew-planner/pkg/core/services"
)

// GeneratePlanningCmd creates the generatePlanning command
func GeneratePlanningCmd(app *AppContext) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "generatePlanning <week_start>",
		Short: "Generate and persist the vehicle crew planning for a week",
		Long: `Generate the vehicle crew planning for the work week containing the given
date (YYYY-MM-DD). The date is normalized to its Monday. Unless --dry-run is
set, the week's persisted planning is replaced with the new assignments.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			weekStart, err := time.Parse("2006-01-02", args[0])
			if err != nil {
				return fmt.Errorf("week_start must be a date in YYYY-MM-DD format: %w", err)
			}

			app.Logger.Debug("generatePlanning command",
				zap.String("week_start", args[0]),
				zap.Bool("dry_run", dryRun))

			result, err := services.GeneratePlanning(app.Ctx, app.Database, app.Cfg, app.Logger, weekStart, dryRun)
			if err != nil {
				return err
			}

			printWeeklyResult(result)

			if result.Persisted {
				fmt.Printf("%s✓ Planning persisted for week of %s%s\n\n",
					colorGreen, result.WeekDates[0].Format("2006-01-02"), colorReset)
			} else {
				fmt.Printf("%sDry run: planning was not persisted%s\n\n", colorYellow, colorReset)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "generate the planning without persisting it")

	return cmd
}

// ANSI color codes shared by the display commands
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorDim    = "\033[2m"
)

func printWeeklyResult(result *services.GeneratePlanningResult) {
	fmt.Printf("\nWeekly Planning: %s to %s\n\n",
		result.WeekDates[0].Format("2006-01-02"),
		result.WeekDates[len(result.WeekDates)-1].Format("2006-01-02"))

	closedByDate := make(map[string]string)
	for _, cd := range result.Result.Summary.ClosedDays {
		closedByDate[cd.Date.Format("2006-01-02")] = cd.Reason
	}

	vehicleNames := make(map[string]string, len(result.Vehicles))
	for _, v := range result.Vehicles {
		vehicleNames[v.ID] = v.Name
	}

	for _, date := range result.WeekDates {
		dateKey := date.Format("2006-01-02")
		fmt.Printf("%s (%s)\n", dateKey, date.Weekday())

		if reason, closed := closedByDate[dateKey]; closed {
			if reason == "" {
				reason = "service closed"
			}
			fmt.Printf("  %sClosed: %s%s\n\n", colorDim, reason, colorReset)
			continue
		}

		for _, session := range []engine.Session{engine.SessionMorning, engine.SessionAfternoon} {
			fmt.Printf("  %s:\n", session)
			printSessionCrews(result, date, session, vehicleNames)
		}
		fmt.Println()
	}

	printWarnings(result.Result.Warnings)
	printSummary(&result.Result.Summary)
}

func printSessionCrews(result *services.GeneratePlanningResult, date time.Time, session engine.Session, vehicleNames map[string]string) {
	// Entries are already in vehicle fill-priority order within a session
	var lastVehicle string
	for _, e := range result.Result.Entries {
		if !e.Date.Equal(date) || e.Session != session {
			continue
		}
		if e.VehicleID != lastVehicle {
			name := vehicleNames[e.VehicleID]
			if name == "" {
				name = e.VehicleID
			}
			fmt.Printf("    %s:\n", name)
			lastVehicle = e.VehicleID
		}

		staffName := e.PersonID
		if s, ok := result.StaffByID[e.PersonID]; ok {
			staffName = s.Name
		}
		marker := " "
		if e.Role == engine.RoleDriver {
			marker = "D"
		}
		if e.Note != "" {
			fmt.Printf("      [%s] %s %s(%s)%s\n", marker, staffName, colorDim, e.Note, colorReset)
		} else {
			fmt.Printf("      [%s] %s\n", marker, staffName)
		}
	}
}

func printWarnings(warnings []engine.Warning) {
	if len(warnings) == 0 {
		return
	}
	fmt.Printf("%sWarnings:%s\n", colorYellow, colorReset)
	for _, w := range warnings {
		fmt.Printf("  %s %s %s: %s\n",
			w.Date.Format("2006-01-02"), w.Session, w.VehicleID, w.Message)
	}
	fmt.Println()
}

func printSummary(summary *engine.Summary) {
	fmt.Printf("Summary:\n")
	fmt.Printf("  Entries:          %d\n", summary.Entries)
	fmt.Printf("  Distinct vehicles: %d\n", summary.DistinctVehicles)
	fmt.Printf("  Distinct staff:    %d\n", summary.DistinctStaff)
	if len(summary.ClosedDays) > 0 {
		fmt.Printf("  Closed days:       %d\n", len(summary.ClosedDays))
	}
	for _, u := range summary.Unassigned {
		fmt.Printf("  %sUnassigned %s %s: %v%s\n",
			colorDim, u.Date.Format("2006-01-02"), u.Session, u.PersonIDs, colorReset)
	}
	fmt.Println()
}
