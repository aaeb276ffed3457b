package dto

import "testpark/internal/workflow"

type CompanyDTO struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Region          string   `json:"region"`
	Grade           int      `json:"grade"`
	TwoDayCount     int      `json:"two_day_count"`
	EvalPeriodCount int      `json:"eval_period_count"`
	EvalPeriodMax   int      `json:"eval_period_max"`
	LoadPercent     int      `json:"load_percent"`
	Licenses        string   `json:"licenses,omitempty"`
	RegionApply     string   `json:"region_apply"`
	Features        string   `json:"features,omitempty"`
	ServiceAreas    []string `json:"service_areas"`
	ServiceTypes    []string `json:"service_types"`
	CurrentCapacity int      `json:"current_capacity"`
	MaxCapacity     int      `json:"max_capacity"`
	Suspended       bool     `json:"suspended"`
	CapacityWarning bool     `json:"capacity_warning"`
}

// MatchCandidateDTO is one scored candidate for an order.
type MatchCandidateDTO struct {
	workflow.MatchResult
	Grade     int    `json:"grade"`
	Region    string `json:"region"`
	TierColor string `json:"tier_color"`
}

// MatchResponseDTO is the full candidate panel for one order.
type MatchResponseDTO struct {
	OrderID        int                 `json:"order_id"`
	Candidates     []MatchCandidateDTO `json:"candidates"`
	GroupPurchases []GroupPurchaseDTO  `json:"group_purchases"`
}

type GroupPurchaseDTO struct {
	ID               int      `json:"id"`
	Round            string   `json:"round"`
	CompanyID        int      `json:"company_id"`
	CompanyName      string   `json:"company_name"`
	DisplayName      string   `json:"display_name"`
	Link             string   `json:"link,omitempty"`
	AvailableAreas   []string `json:"available_areas"`
	UnavailableDates []string `json:"unavailable_dates"`
	// Per-order availability, present on /companies/match responses.
	AreaAvailable *bool    `json:"area_available,omitempty"`
	DateAvailable *bool    `json:"date_available,omitempty"`
	Warnings      []string `json:"warnings,omitempty"`
}
