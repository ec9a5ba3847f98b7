package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistributeLeftovers_FavorsMostFreeCapacity(t *testing.T) {
	pool := []Person{
		staffMember("one", TierWeak, false),
		staffMember("two", TierWeak, false),
		staffMember("three", TierWeak, false),
	}
	st := testState(&Config{}, pool, []Vehicle{
		vehicle("small", 1, 1),
		vehicle("big", 8, 2),
		vehicle("mid", 3, 3),
	})

	distributeLeftovers(st)

	// Round-robin over [big(8), mid(3), small(1)]
	assert.True(t, st.crews["big"].contains("one"))
	assert.True(t, st.crews["mid"].contains("two"))
	assert.True(t, st.crews["small"].contains("three"))
	for _, v := range []string{"big", "mid", "small"} {
		for _, m := range st.crews[v].members {
			assert.Equal(t, RoleCrew, m.role)
			assert.Equal(t, "leftover distribution", m.note)
		}
	}
}

func TestDistributeLeftovers_ReportsUnseatedWhenFull(t *testing.T) {
	pool := []Person{
		staffMember("one", TierWeak, false),
		staffMember("two", TierWeak, false),
	}
	st := testState(&Config{}, pool, []Vehicle{vehicle("v1", 1, 1)})

	distributeLeftovers(st)

	assert.Len(t, st.crews["v1"].members, 1)
	require.Len(t, st.unassigned(), 1)
	assert.Equal(t, "two", st.unassigned()[0])
}

func TestDistributeLeftovers_CohortMemberNeverJoinsSeatedCohort(t *testing.T) {
	cfg := &Config{
		SupervisorRules: []SupervisorRule{
			{PersonID: "supA", VehicleID: "v1", Weekdays: []time.Weekday{time.Monday}},
			// supB has no rule for Monday, so they reach leftover distribution
			{PersonID: "supB", VehicleID: "v2", Weekdays: []time.Weekday{time.Friday}},
		},
	}
	pool := []Person{
		staffMember("supA", TierStrong, false),
		staffMember("supB", TierStrong, false),
	}
	st := testState(cfg, pool, []Vehicle{vehicle("v1", 8, 1), vehicle("v2", 2, 2)})
	assignSupervisors(st)
	require.True(t, st.cohortSeated("v1"))

	distributeLeftovers(st)

	// v1 has the most free seats but already hosts supA; supB must land in v2
	assert.True(t, st.crews["v2"].contains("supB"))
	cohortIn := 0
	for _, m := range st.crews["v1"].members {
		if st.cohort[m.person.ID] {
			cohortIn++
		}
	}
	assert.Equal(t, 1, cohortIn)
}

func TestValidateCrews_WarnsOnDriverlessCrew(t *testing.T) {
	pool := []Person{staffMember("anna", TierWeak, false)}
	st := testState(&Config{}, pool, []Vehicle{vehicle("v1", 3, 1)})
	st.seat(pool[0], "v1", RoleCrew, "")

	validateCrews(st)

	require.Len(t, st.warnings, 1)
	assert.Equal(t, WarnNoDriver, st.warnings[0].Code)
	assert.Equal(t, "v1", st.warnings[0].VehicleID)
}

func TestValidateCrews_WarnsOnEmptyCrew(t *testing.T) {
	st := testState(&Config{}, nil, []Vehicle{vehicle("v1", 3, 1)})

	validateCrews(st)

	require.Len(t, st.warnings, 1)
	assert.Equal(t, WarnEmptyCrew, st.warnings[0].Code)
}

func TestValidateCrews_NoWarningForSupervisedCrew(t *testing.T) {
	cfg := &Config{
		SupervisorRules: []SupervisorRule{
			{PersonID: "sup", VehicleID: "v1", Weekdays: []time.Weekday{time.Monday}},
		},
	}
	pool := []Person{staffMember("sup", TierStrong, false)}
	st := testState(cfg, pool, []Vehicle{vehicle("v1", 3, 1)})
	assignSupervisors(st)

	validateCrews(st)

	assert.Empty(t, st.warnings, "a supervisor on board satisfies minimum composition")
}

func TestValidateCrews_DefensiveCapacityCheck(t *testing.T) {
	pool := []Person{
		staffMember("one", TierWeak, false),
		staffMember("two", TierWeak, true),
	}
	st := testState(&Config{}, pool, []Vehicle{vehicle("v1", 1, 1)})
	// Force an over-capacity crew directly; the fill steps never do this
	st.seat(pool[0], "v1", RoleDriver, "")
	st.seat(pool[1], "v1", RoleCrew, "")

	validateCrews(st)

	require.Len(t, st.warnings, 1)
	assert.Equal(t, WarnOverCapacity, st.warnings[0].Code)
}
