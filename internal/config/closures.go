package config

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/mbeaudoin/crew-planner/pkg/core/engine"
)

// ExpandClosureRules evaluates the configured recurrence rules against the
// week's dates and returns a full-service closure record for every match.
// The records carry no person reference, which is what marks them as service
// closures for the engine.
func ExpandClosureRules(rules []ClosureRule, weekDates []time.Time) ([]engine.AbsenceRecord, error) {
	if len(rules) == 0 || len(weekDates) == 0 {
		return nil, nil
	}

	// Search a window slightly wider than the week so rules anchored on
	// earlier occurrences still match
	searchStart := weekDates[0].AddDate(0, 0, -7)
	searchEnd := weekDates[len(weekDates)-1].AddDate(0, 0, 7)

	var closures []engine.AbsenceRecord
	for i, cr := range rules {
		rule, err := rrule.StrToRRule(cr.RRule)
		if err != nil {
			return nil, fmt.Errorf("failed to parse rrule for closure rule %d: %w", i, err)
		}
		rule.DTStart(searchStart)

		occurrences := rule.Between(searchStart, searchEnd, true)
		for _, date := range weekDates {
			for _, occurrence := range occurrences {
				if sameDay(occurrence, date) {
					closures = append(closures, engine.AbsenceRecord{
						Kind:   engine.AbsenceClosure,
						Start:  date,
						End:    date,
						Reason: cr.Reason,
					})
					break
				}
			}
		}
	}

	return closures, nil
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
