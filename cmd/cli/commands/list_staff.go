package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mbeaudoin/crew-planner/pkg/core/services"
)

// ListStaffCmd creates the listStaff command
func ListStaffCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listStaff",
		Short: "List the staff roster with skill tiers and working hours",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.ListStaff(app.Ctx, app.Database, app.Logger)
			if err != nil {
				return err
			}

			fmt.Printf("\nStaff Roster (%d members)\n\n", len(result.Staff))

			maxNameLen := 12
			for _, s := range result.Staff {
				if len(s.Name) > maxNameLen {
					maxNameLen = len(s.Name)
				}
			}
			nameColWidth := maxNameLen + 2

			fmt.Printf("%-*s%-10s%-8s%-10s%s\n", nameColWidth, "Name", "Tier", "Driver", "Active", "Hours")
			fmt.Println(strings.Repeat("-", nameColWidth+40))

			for _, s := range result.Staff {
				driver := ""
				if s.CanDrive {
					driver = "yes"
				}
				active := "yes"
				if !s.Active {
					active = "no"
				}

				var windows []string
				for _, h := range result.HoursByStaff[s.ID] {
					windows = append(windows, fmt.Sprintf("%s %s-%s", shortWeekday(h.Weekday), h.StartTime, h.EndTime))
				}

				fmt.Printf("%-*s%-10s%-8s%-10s%s\n",
					nameColWidth, s.Name, s.Tier, driver, active, strings.Join(windows, ", "))
			}
			fmt.Println()

			return nil
		},
	}
}

func shortWeekday(name string) string {
	if len(name) < 3 {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:3]
}
