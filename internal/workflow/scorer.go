package workflow

import (
	"sort"
	"strings"
	"time"
)

// OrderProfile is the slice of an order the scorer looks at.
type OrderProfile struct {
	Area             string
	ConstructionType string
	ScheduledDate    *time.Time
}

// CompanyProfile is the slice of a partner company the scorer looks at.
type CompanyProfile struct {
	ID               int
	Name             string
	ServiceAreas     []string
	ServiceTypes     []string
	UnavailableDates []time.Time
	CurrentCapacity  int
	MaxCapacity      int
	Suspended        bool
}

// MatchReasons are the five independent criteria behind a match score.
type MatchReasons struct {
	AreaMatch             bool `json:"area_match"`
	ConstructionTypeMatch bool `json:"construction_type_match"`
	ScheduleAvailable     bool `json:"schedule_available"`
	CapacityAvailable     bool `json:"capacity_available"`
	StatusNormal          bool `json:"status_normal"`
}

// MatchResult ranks one company against one order.
type MatchResult struct {
	CompanyID   int          `json:"company_id"`
	CompanyName string       `json:"company_name"`
	MatchScore  int          `json:"match_score"`
	Tier        string       `json:"tier"`
	Reasons     MatchReasons `json:"reasons"`
	Warnings    []string     `json:"warnings"`
	// Available is false when the schedule criterion fails; such companies
	// are excluded from one-click selection but still listed so the operator
	// can force-override.
	Available bool `json:"available"`
	Pinned    bool `json:"pinned"`
}

// Criterion weights. Any monotonic combination reproducing the tier bands
// would do; these sum to 100 with schedule+capacity+status worth the
// "suitable" margin.
const (
	weightArea     = 30
	weightType     = 30
	weightSchedule = 15
	weightCapacity = 15
	weightStatus   = 10
)

// Tier bands for display.
const (
	TierOptimal    = "최적"
	TierSuitable   = "적합"
	TierFair       = "보통"
	TierUnsuitable = "부적합"
)

func Tier(score int) string {
	switch {
	case score >= 90:
		return TierOptimal
	case score >= 70:
		return TierSuitable
	case score >= 50:
		return TierFair
	default:
		return TierUnsuitable
	}
}

// TierColor maps a tier band to its display color, 1:1.
func TierColor(tier string) string {
	switch tier {
	case TierOptimal:
		return "green"
	case TierSuitable:
		return "blue"
	case TierFair:
		return "orange"
	default:
		return "red"
	}
}

// Score evaluates the five criteria independently and aggregates them into a
// 0..100 match score.
func Score(order OrderProfile, c CompanyProfile) MatchResult {
	reasons := MatchReasons{
		AreaMatch:             AreaContains(order.Area, c.ServiceAreas),
		ConstructionTypeMatch: typeMatch(order.ConstructionType, c.ServiceTypes),
		ScheduleAvailable:     scheduleAvailable(order.ScheduledDate, c.UnavailableDates),
		CapacityAvailable:     c.CurrentCapacity < c.MaxCapacity,
		StatusNormal:          !c.Suspended,
	}

	score := 0
	var warnings []string
	if reasons.AreaMatch {
		score += weightArea
	} else {
		warnings = append(warnings, "시공 지역이 업체 서비스 지역에 포함되지 않습니다")
	}
	if reasons.ConstructionTypeMatch {
		score += weightType
	} else {
		warnings = append(warnings, "시공 종류가 업체 시공 범위에 포함되지 않습니다")
	}
	if reasons.ScheduleAvailable {
		score += weightSchedule
	} else {
		warnings = append(warnings, "시공 예정일에 시공이 불가능한 업체입니다")
	}
	if reasons.CapacityAvailable {
		score += weightCapacity
	} else {
		warnings = append(warnings, "업체 월 수용량이 가득 찼습니다")
	}
	if reasons.StatusNormal {
		score += weightStatus
	} else {
		warnings = append(warnings, "운영이 중지된 업체입니다")
	}

	return MatchResult{
		CompanyID:   c.ID,
		CompanyName: c.Name,
		MatchScore:  score,
		Tier:        Tier(score),
		Reasons:     reasons,
		Warnings:    warnings,
		Available:   reasons.ScheduleAvailable,
	}
}

// RankCandidates scores every company and sorts descending by match score.
// Equal scores preserve input order (stable sort).
func RankCandidates(order OrderProfile, companies []CompanyProfile) []MatchResult {
	results := make([]MatchResult, 0, len(companies))
	for _, c := range companies {
		results = append(results, Score(order, c))
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchScore > results[j].MatchScore
	})
	return results
}

// PinDesignated moves the company named by the order's designation to the
// front and marks it pinned. The designation is free text, so a company
// matches when its name appears in it. Pinning pre-highlights; it never
// auto-selects.
func PinDesignated(results []MatchResult, designation string) []MatchResult {
	if designation == "" {
		return results
	}
	for i := range results {
		if results[i].CompanyName != "" && strings.Contains(designation, results[i].CompanyName) {
			pinned := results[i]
			pinned.Pinned = true
			out := make([]MatchResult, 0, len(results))
			out = append(out, pinned)
			out = append(out, results[:i]...)
			out = append(out, results[i+1:]...)
			return out
		}
	}
	return results
}

// AreaContains reports whether the order's free-text region falls in one of
// the service areas: '서울 강남구' is contained by '서울'.
func AreaContains(orderArea string, serviceAreas []string) bool {
	orderArea = strings.TrimSpace(orderArea)
	if orderArea == "" {
		return false
	}
	for _, area := range serviceAreas {
		area = strings.TrimSpace(area)
		if area == "" {
			continue
		}
		if strings.Contains(orderArea, area) || strings.Contains(area, orderArea) {
			return true
		}
	}
	return false
}

func typeMatch(orderType string, serviceTypes []string) bool {
	orderType = strings.TrimSpace(orderType)
	if orderType == "" {
		return false
	}
	for _, t := range serviceTypes {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if strings.Contains(orderType, t) || strings.Contains(t, orderType) {
			return true
		}
	}
	return false
}

// scheduleAvailable is an exact calendar-day check against the unavailable
// list. An order without a scheduled date is always schedulable.
func scheduleAvailable(scheduled *time.Time, unavailable []time.Time) bool {
	if scheduled == nil {
		return true
	}
	for _, d := range unavailable {
		if sameDay(*scheduled, d) {
			return false
		}
	}
	return true
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// GroupPurchaseAvailability checks the §group-purchase invariant: the order
// area must intersect the round's available areas and the scheduled date must
// not be blocked. Violations are warnings for the operator, never hard blocks.
func GroupPurchaseAvailability(order OrderProfile, availableAreas []string, unavailableDates []time.Time) (areaOK, dateOK bool, warnings []string) {
	areaOK = AreaContains(order.Area, availableAreas)
	dateOK = scheduleAvailable(order.ScheduledDate, unavailableDates)
	if !areaOK {
		warnings = append(warnings, "공동구매 가능 지역에 포함되지 않는 주문입니다")
	}
	if !dateOK {
		warnings = append(warnings, "공동구매 불가 일자에 해당하는 시공 예정일입니다")
	}
	return areaOK, dateOK, warnings
}
