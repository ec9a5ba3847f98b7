package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillCrew_DriverThenCrewByTier(t *testing.T) {
	pool := []Person{
		staffMember("weak", TierWeak, false),
		staffMember("driver", TierMedium, true),
		staffMember("strong", TierStrong, false),
	}
	st := testState(&Config{}, pool, []Vehicle{vehicle("v1", 3, 1)})

	fillCrew(st, "v1")

	c := st.crews["v1"]
	require.Len(t, c.members, 3)
	assert.Equal(t, "driver", c.members[0].person.ID)
	assert.Equal(t, RoleDriver, c.members[0].role)
	assert.Equal(t, "strong", c.members[1].person.ID)
	assert.Equal(t, RoleCrew, c.members[1].role)
	assert.Equal(t, "weak", c.members[2].person.ID)
}

func TestFillCrew_FirstHireTaggedAssistant(t *testing.T) {
	pool := []Person{
		staffMember("driver", TierStrong, true),
		staffMember("one", TierMedium, false),
		staffMember("two", TierWeak, false),
	}
	st := testState(&Config{}, pool, []Vehicle{vehicle("v1", 3, 1)})

	fillCrew(st, "v1")

	c := st.crews["v1"]
	require.Len(t, c.members, 3)
	assert.Equal(t, "assistant", c.members[1].note)
	assert.Empty(t, c.members[2].note)
}

func TestFillCrew_SkipsDriverWhenCohortSeated(t *testing.T) {
	cfg := &Config{
		SupervisorRules: []SupervisorRule{
			{PersonID: "sup", VehicleID: "v1", Weekdays: []time.Weekday{time.Monday}},
		},
	}
	pool := []Person{
		staffMember("sup", TierStrong, false),
		staffMember("anna", TierMedium, true),
	}
	st := testState(cfg, pool, []Vehicle{vehicle("v1", 2, 1)})
	assignSupervisors(st)

	fillCrew(st, "v1")

	c := st.crews["v1"]
	require.Len(t, c.members, 2)
	for _, m := range c.members {
		assert.Equal(t, RoleCrew, m.role, "cohort-seated vehicles are not assigned a driver")
	}
}

func TestFillCrew_SkipsFullVehicle(t *testing.T) {
	pool := []Person{
		staffMember("seated", TierWeak, false),
		staffMember("outside", TierStrong, true),
	}
	st := testState(&Config{}, pool, []Vehicle{vehicle("v1", 1, 1)})
	st.seat(pool[0], "v1", RoleCrew, "")

	fillCrew(st, "v1")

	assert.Len(t, st.crews["v1"].members, 1)
	assert.False(t, st.used["outside"])
}

func TestFillCrew_StopsWhenPoolEmpty(t *testing.T) {
	pool := []Person{staffMember("only", TierMedium, true)}
	st := testState(&Config{}, pool, []Vehicle{vehicle("v1", 4, 1)})

	fillCrew(st, "v1")

	assert.Len(t, st.crews["v1"].members, 1)
}

func TestNextCrewCandidate_LanguageDiversityTiebreak(t *testing.T) {
	french := staffMember("french", TierMedium, false)
	french.Languages = []string{"fr"}
	german := staffMember("german", TierMedium, false)
	german.Languages = []string{"de"}
	seated := staffMember("seated", TierStrong, true)
	seated.Languages = []string{"fr"}

	st := testState(&Config{}, []Person{seated, french, german}, []Vehicle{vehicle("v1", 3, 1)})
	st.seat(seated, "v1", RoleDriver, "")

	candidate, ok := nextCrewCandidate(st, st.crews["v1"])

	require.True(t, ok)
	assert.Equal(t, "german", candidate.ID, "equal tier, but adds a language the crew lacks")
}

func TestAssignSupervisors_PlacesRuleForWeekday(t *testing.T) {
	cfg := &Config{
		SupervisorRules: []SupervisorRule{
			{PersonID: "sup", VehicleID: "v1", Weekdays: []time.Weekday{time.Monday, time.Wednesday}},
			{PersonID: "off", VehicleID: "v2", Weekdays: []time.Weekday{time.Friday}},
		},
	}
	pool := []Person{
		staffMember("sup", TierStrong, true),
		staffMember("off", TierStrong, true),
	}
	st := testState(cfg, pool, []Vehicle{vehicle("v1", 3, 1), vehicle("v2", 3, 2)})

	assignSupervisors(st)

	require.Len(t, st.crews["v1"].members, 1)
	placed := st.crews["v1"].members[0]
	assert.Equal(t, "sup", placed.person.ID)
	assert.Equal(t, RoleCrew, placed.role, "supervisors are never drivers")
	assert.Equal(t, "fixed supervisor placement", placed.note)
	assert.Empty(t, st.crews["v2"].members, "rule weekday not covered")
}

func TestAssignSupervisors_SkipsAbsentSupervisor(t *testing.T) {
	cfg := &Config{
		SupervisorRules: []SupervisorRule{
			{PersonID: "sup", VehicleID: "v1", Weekdays: []time.Weekday{time.Monday}},
		},
	}
	// sup is not in the eligible pool
	st := testState(cfg, []Person{staffMember("anna", TierWeak, false)}, []Vehicle{vehicle("v1", 3, 1)})

	assignSupervisors(st)

	assert.Empty(t, st.crews["v1"].members)
}

func TestAssignSpecialCases_SeatsWhenFreeSeat(t *testing.T) {
	cfg := &Config{
		SpecialPlacements: []SpecialPlacement{{PersonID: "pin", VehicleID: "v2"}},
	}
	pool := []Person{
		staffMember("pin", TierWeak, false),
		staffMember("anna", TierStrong, true),
	}
	st := testState(cfg, pool, []Vehicle{vehicle("v1", 3, 1), vehicle("v2", 1, 2)})

	assignSpecialCases(st)

	require.Len(t, st.crews["v2"].members, 1)
	assert.Equal(t, "pin", st.crews["v2"].members[0].person.ID)
	assert.Equal(t, "forced placement", st.crews["v2"].members[0].note)
}

func TestAssignSpecialCases_SkipsFullVehicleAndUsedPerson(t *testing.T) {
	cfg := &Config{
		SpecialPlacements: []SpecialPlacement{
			{PersonID: "pin", VehicleID: "v1"},
			{PersonID: "seated", VehicleID: "v2"},
		},
	}
	pool := []Person{
		staffMember("pin", TierWeak, false),
		staffMember("seated", TierWeak, false),
		staffMember("filler", TierWeak, false),
	}
	st := testState(cfg, pool, []Vehicle{vehicle("v1", 1, 1), vehicle("v2", 3, 2)})
	st.seat(pool[2], "v1", RoleCrew, "")
	st.seat(pool[1], "v2", RoleCrew, "")

	assignSpecialCases(st)

	assert.Len(t, st.crews["v1"].members, 1, "no free seat")
	assert.Len(t, st.crews["v2"].members, 1, "person already used")
	assert.False(t, st.used["pin"])
}
