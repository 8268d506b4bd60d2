package entity

import "time"

// DashboardSnapshot is a point-in-time copy of every widget's data, used by the reports export.
type DashboardSnapshot struct {
	GeneratedAt  time.Time           `json:"generated_at"`
	Daily        *DailyBreakdown     `json:"daily_breakdown,omitempty"`
	TotalCO2     *TotalCO2           `json:"total_co2,omitempty"`
	Gamification *GamificationStatus `json:"gamification,omitempty"`
	Categories   []CategoryDatum     `json:"categories"`
	Weekly       []WeeklyDatum       `json:"weekly"`
	Errors       map[string]string   `json:"errors,omitempty"`
}
