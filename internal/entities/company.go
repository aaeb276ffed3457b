package entities

import (
	"time"

	"testpark/pkg/types"
)

// Company is a partner contractor.
type Company struct {
	ID                  int      `json:"id"`
	Name                string   `json:"name"`
	Region              string   `json:"region"`
	Grade               int      `json:"grade"` // 1..3, lower is better
	TwoDayCount         int      `json:"two_day_count"`
	EvalPeriodCount     int      `json:"eval_period_count"`
	EvalPeriodMax       int      `json:"eval_period_max"`
	LoadPercent         int      `json:"load_percent"`
	FixedCostAdjustment int      `json:"fixed_cost_adjustment"`
	Licenses            string   `json:"licenses"`
	RegionApply         string   `json:"region_apply"` // 실제적용 / 업체요청
	Features            string   `json:"features"`
	ServiceAreas        []string `json:"service_areas"`
	ServiceTypes        []string `json:"service_types"`
	CurrentCapacity     int      `json:"current_capacity"`
	MaxCapacity         int      `json:"max_capacity"`
	Suspended           bool     `json:"suspended"`

	types.BaseEntity
	types.SoftDelete
}

// GroupPurchase is a time-and-area-boxed bulk offer from one company.
type GroupPurchase struct {
	ID               int         `json:"id"`
	Round            string      `json:"round"`
	CompanyID        int         `json:"company_id"`
	CompanyName      string      `json:"company_name"`
	DisplayName      string      `json:"display_name"`
	Link             string      `json:"link"`
	AvailableAreas   []string    `json:"available_areas"`
	UnavailableDates []time.Time `json:"unavailable_dates"`

	types.BaseEntity
}
