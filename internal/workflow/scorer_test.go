package workflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func perfectCompany() CompanyProfile {
	return CompanyProfile{
		ID:              1,
		Name:            "한빛인테리어",
		ServiceAreas:    []string{"서울", "경기"},
		ServiceTypes:    []string{"아파트 전체", "주방"},
		CurrentCapacity: 3,
		MaxCapacity:     10,
	}
}

func TestScoreAllCriteriaMet(t *testing.T) {
	d := date(2026, 9, 15)
	order := OrderProfile{Area: "서울 강남구", ConstructionType: "주방", ScheduledDate: &d}

	result := Score(order, perfectCompany())
	assert.Equal(t, 100, result.MatchScore)
	assert.Equal(t, TierOptimal, result.Tier)
	assert.Empty(t, result.Warnings)
	assert.True(t, result.Available)
}

func TestScoreCriteriaAreIndependent(t *testing.T) {
	order := OrderProfile{Area: "부산", ConstructionType: "상가"}

	c := perfectCompany()
	c.Suspended = true
	c.CurrentCapacity = 10

	result := Score(order, c)
	// schedule passes (no date), everything else fails
	assert.Equal(t, weightSchedule, result.MatchScore)
	assert.Equal(t, TierUnsuitable, result.Tier)
	assert.Len(t, result.Warnings, 4)
	assert.True(t, result.Reasons.ScheduleAvailable)
	assert.False(t, result.Reasons.AreaMatch)
	assert.False(t, result.Reasons.StatusNormal)
}

func TestScheduleConflictDisablesSelection(t *testing.T) {
	d := date(2026, 9, 15)
	order := OrderProfile{Area: "서울", ConstructionType: "주방", ScheduledDate: &d}

	c := perfectCompany()
	c.UnavailableDates = []time.Time{date(2026, 9, 15)}

	result := Score(order, c)
	assert.False(t, result.Available)
	assert.False(t, result.Reasons.ScheduleAvailable)
	assert.Equal(t, 100-weightSchedule, result.MatchScore)
}

func TestTierBands(t *testing.T) {
	assert.Equal(t, TierOptimal, Tier(90))
	assert.Equal(t, TierSuitable, Tier(89))
	assert.Equal(t, TierSuitable, Tier(70))
	assert.Equal(t, TierFair, Tier(69))
	assert.Equal(t, TierFair, Tier(50))
	assert.Equal(t, TierUnsuitable, Tier(49))
	assert.Equal(t, TierUnsuitable, Tier(0))
}

func TestRankCandidatesSortsDescendingStable(t *testing.T) {
	order := OrderProfile{Area: "서울", ConstructionType: "주방"}

	strong := perfectCompany()
	weakA := CompanyProfile{ID: 2, Name: "약한업체A", ServiceAreas: []string{"부산"}, MaxCapacity: 5}
	weakB := CompanyProfile{ID: 3, Name: "약한업체B", ServiceAreas: []string{"부산"}, MaxCapacity: 5}

	results := RankCandidates(order, []CompanyProfile{weakA, strong, weakB})
	require.Len(t, results, 3)
	assert.Equal(t, strong.ID, results[0].CompanyID)
	// equal scores keep their input order
	assert.Equal(t, weakA.ID, results[1].CompanyID)
	assert.Equal(t, weakB.ID, results[2].CompanyID)
}

func TestPinDesignatedMovesToFront(t *testing.T) {
	results := []MatchResult{
		{CompanyID: 1, CompanyName: "갑", MatchScore: 95},
		{CompanyID: 2, CompanyName: "을", MatchScore: 80},
		{CompanyID: 3, CompanyName: "병", MatchScore: 60},
	}

	pinned := PinDesignated(results, "병 지정 요청")
	require.Len(t, pinned, 3)
	assert.Equal(t, 3, pinned[0].CompanyID)
	assert.True(t, pinned[0].Pinned)
	assert.Equal(t, 1, pinned[1].CompanyID)

	// no designation leaves order alone
	same := PinDesignated(results, "")
	assert.Equal(t, results, same)

	// unmatched designation leaves order alone
	same = PinDesignated(results, "다른업체")
	assert.Equal(t, results, same)
}

func TestAreaContainsIsMutual(t *testing.T) {
	assert.True(t, AreaContains("서울 강남구", []string{"서울"}))
	assert.True(t, AreaContains("서울", []string{"서울 전역"}))
	assert.False(t, AreaContains("부산", []string{"서울", "경기"}))
	assert.False(t, AreaContains("", []string{"서울"}))
	assert.False(t, AreaContains("서울", nil))
}

func TestGroupPurchaseAvailability(t *testing.T) {
	d := date(2026, 10, 1)
	order := OrderProfile{Area: "서울 송파구", ScheduledDate: &d}

	areaOK, dateOK, warnings := GroupPurchaseAvailability(order, []string{"서울"}, nil)
	assert.True(t, areaOK)
	assert.True(t, dateOK)
	assert.Empty(t, warnings)

	areaOK, dateOK, warnings = GroupPurchaseAvailability(order, []string{"부산"}, []time.Time{date(2026, 10, 1)})
	assert.False(t, areaOK)
	assert.False(t, dateOK)
	assert.Len(t, warnings, 2)
}
