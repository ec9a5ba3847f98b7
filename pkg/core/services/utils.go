package services

import (
	"fmt"
	"time"

	"github.com/mbeaudoin/crew-planner/internal/config"
	"github.com/mbeaudoin/crew-planner/pkg/core/engine"
	"github.com/mbeaudoin/crew-planner/pkg/db"
)

const dateFormat = "2006-01-02"

// parseTier converts a stored tier name to the engine's ordered tier
func parseTier(name string) (engine.SkillTier, error) {
	switch name {
	case "weak":
		return engine.TierWeak, nil
	case "medium":
		return engine.TierMedium, nil
	case "strong":
		return engine.TierStrong, nil
	}
	return engine.TierWeak, fmt.Errorf("unknown skill tier %q", name)
}

// parseAbsenceKind converts a stored absence kind to the engine's enum
func parseAbsenceKind(name string) (engine.AbsenceKind, error) {
	switch engine.AbsenceKind(name) {
	case engine.AbsenceOrdinary, engine.AbsenceAppointment, engine.AbsenceClosure:
		return engine.AbsenceKind(name), nil
	}
	return "", fmt.Errorf("unknown absence kind %q", name)
}

// buildPersons assembles engine persons from the staff roster and their
// working-hours windows
func buildPersons(staff []db.Staff, hours []db.StaffHours) ([]engine.Person, error) {
	hoursByStaff := make(map[string]map[time.Weekday]engine.HoursWindow)
	for _, h := range hours {
		weekday, err := config.ParseWeekday(h.Weekday)
		if err != nil {
			return nil, fmt.Errorf("invalid weekday for staff %s: %w", h.StaffID, err)
		}
		if _, ok := hoursByStaff[h.StaffID]; !ok {
			hoursByStaff[h.StaffID] = make(map[time.Weekday]engine.HoursWindow)
		}
		hoursByStaff[h.StaffID][weekday] = engine.HoursWindow{
			Start: h.StartTime,
			End:   h.EndTime,
		}
	}

	persons := make([]engine.Person, 0, len(staff))
	for _, s := range staff {
		tier, err := parseTier(s.Tier)
		if err != nil {
			return nil, fmt.Errorf("staff %s: %w", s.ID, err)
		}
		persons = append(persons, engine.Person{
			ID:        s.ID,
			Name:      s.Name,
			Tier:      tier,
			CanDrive:  s.CanDrive,
			Languages: s.Languages,
			Active:    s.Active,
			Hours:     hoursByStaff[s.ID],
		})
	}

	return persons, nil
}

// buildVehicles converts fleet rows to engine vehicles
func buildVehicles(vehicles []db.Vehicle) []engine.Vehicle {
	out := make([]engine.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, engine.Vehicle{
			ID:       v.ID,
			Name:     v.Name,
			Capacity: v.Capacity,
			Priority: v.Priority,
			Active:   v.Active,
		})
	}
	return out
}

// buildAbsences converts absence rows to engine records. Rows with an empty
// staff reference become full-service closures.
func buildAbsences(absences []db.Absence) ([]engine.AbsenceRecord, error) {
	out := make([]engine.AbsenceRecord, 0, len(absences))
	for _, a := range absences {
		kind, err := parseAbsenceKind(a.Kind)
		if err != nil {
			return nil, fmt.Errorf("absence %s: %w", a.ID, err)
		}
		start, err := time.Parse(dateFormat, a.StartDate)
		if err != nil {
			return nil, fmt.Errorf("failed to parse start date for absence %s: %w", a.ID, err)
		}
		end, err := time.Parse(dateFormat, a.EndDate)
		if err != nil {
			return nil, fmt.Errorf("failed to parse end date for absence %s: %w", a.ID, err)
		}
		out = append(out, engine.AbsenceRecord{
			PersonID: a.StaffID,
			Start:    start,
			End:      end,
			Kind:     kind,
			Reason:   a.Reason,
		})
	}
	return out, nil
}
