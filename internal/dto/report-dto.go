package dto

type StatusCountDTO struct {
	Status string `json:"status"`
	Color  string `json:"color"`
	Count  int    `json:"count"`
}

type DashboardDTO struct {
	Total        int              `json:"total"`
	StatusCounts []StatusCountDTO `json:"status_counts"`
}
