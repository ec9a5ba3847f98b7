package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbeaudoin/crew-planner/pkg/core/engine"
	"github.com/mbeaudoin/crew-planner/pkg/db"
)

func TestParseTier(t *testing.T) {
	tier, err := parseTier("strong")
	require.NoError(t, err)
	assert.Equal(t, engine.TierStrong, tier)

	tier, err = parseTier("medium")
	require.NoError(t, err)
	assert.Equal(t, engine.TierMedium, tier)

	tier, err = parseTier("weak")
	require.NoError(t, err)
	assert.Equal(t, engine.TierWeak, tier)

	_, err = parseTier("expert")
	assert.ErrorContains(t, err, "unknown skill tier")
}

func TestBuildPersons(t *testing.T) {
	staff := []db.Staff{
		{ID: "s1", Name: "Anna", Tier: "strong", CanDrive: true, Languages: []string{"fr", "en"}, Active: true},
		{ID: "s2", Name: "Ben", Tier: "weak", Active: true},
	}
	hours := []db.StaffHours{
		{StaffID: "s1", Weekday: "monday", StartTime: "08:30", EndTime: "16:30"},
		{StaffID: "s1", Weekday: "tuesday", StartTime: "08:30", EndTime: "16:30"},
	}

	persons, err := buildPersons(staff, hours)
	require.NoError(t, err)
	require.Len(t, persons, 2)

	assert.Equal(t, "s1", persons[0].ID)
	assert.Equal(t, engine.TierStrong, persons[0].Tier)
	assert.True(t, persons[0].WorksOn(time.Monday))
	assert.True(t, persons[0].WorksOn(time.Tuesday))
	assert.False(t, persons[0].WorksOn(time.Wednesday))
	assert.Equal(t, "08:30", persons[0].Hours[time.Monday].Start)

	// s2 has no hours rows at all
	assert.False(t, persons[1].WorksOn(time.Monday))
}

func TestBuildPersons_InvalidTier(t *testing.T) {
	staff := []db.Staff{{ID: "s1", Tier: "legendary"}}

	_, err := buildPersons(staff, nil)
	assert.ErrorContains(t, err, "unknown skill tier")
}

func TestBuildPersons_InvalidWeekday(t *testing.T) {
	staff := []db.Staff{{ID: "s1", Tier: "weak"}}
	hours := []db.StaffHours{{StaffID: "s1", Weekday: "someday", StartTime: "08:00", EndTime: "16:00"}}

	_, err := buildPersons(staff, hours)
	assert.ErrorContains(t, err, "unknown weekday")
}

func TestBuildAbsences(t *testing.T) {
	absences := []db.Absence{
		{ID: "a1", StaffID: "s1", StartDate: "2026-03-02", EndDate: "2026-03-04", Kind: "ordinary", Reason: "leave"},
		{ID: "a2", StartDate: "2026-03-06", EndDate: "2026-03-06", Kind: "closure", Reason: "holiday"},
	}

	records, err := buildAbsences(absences)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "s1", records[0].PersonID)
	assert.Equal(t, engine.AbsenceOrdinary, records[0].Kind)
	assert.True(t, records[0].Covers(time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)))
	assert.False(t, records[0].Covers(time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)))

	// Empty staff reference marks a full-service closure
	assert.Empty(t, records[1].PersonID)
	assert.Equal(t, engine.AbsenceClosure, records[1].Kind)
}

func TestBuildAbsences_InvalidKind(t *testing.T) {
	absences := []db.Absence{{ID: "a1", StartDate: "2026-03-02", EndDate: "2026-03-02", Kind: "vacation"}}

	_, err := buildAbsences(absences)
	assert.ErrorContains(t, err, "unknown absence kind")
}

func TestBuildAbsences_InvalidDate(t *testing.T) {
	absences := []db.Absence{{ID: "a1", StartDate: "02/03/2026", EndDate: "2026-03-02", Kind: "ordinary"}}

	_, err := buildAbsences(absences)
	assert.ErrorContains(t, err, "failed to parse start date")
}
