package viewmodel

import (
	"fmt"
	"math"
	"strconv"

	"github.com/diillson/carbonscope-dashboard-go/internal/domain/entity"
)

// Placeholder is displayed for values that are missing, still loading or failed.
const Placeholder = "--"

// FormatNumber prints v without trailing zeros: 532 -> "532", 12.5 -> "12.5".
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatTotal renders the total CO2 card value, e.g. "532g".
func FormatTotal(s State[entity.TotalCO2]) string {
	if !s.Loaded() || s.Data.Total == nil {
		return Placeholder
	}
	return FormatNumber(*s.Data.Total) + "g"
}

// TotalPercent is the fill of the total CO2 ring: one percent per 10 g, capped at 100.
func TotalPercent(s State[entity.TotalCO2]) float64 {
	if !s.Loaded() || s.Data.Total == nil {
		return 0
	}
	return math.Min(100, *s.Data.Total/10)
}

// FormatScore renders the gamification score with two decimals.
func FormatScore(s State[entity.GamificationStatus]) string {
	if !s.Loaded() {
		return Placeholder
	}
	return fmt.Sprintf("%.2f", s.Data.Score)
}

// ScoreModalValue is the value shown in the gamification detail modal.
func ScoreModalValue(s State[entity.GamificationStatus]) string {
	if !s.Loaded() {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", s.Data.Score)
}

// FormatLevel renders the gamification level label.
func FormatLevel(s State[entity.GamificationStatus]) string {
	if !s.Loaded() || s.Data.Level == "" {
		return Placeholder
	}
	return s.Data.Level
}

// ScorePercent is the fill of the score bar, clamped to [0,100].
func ScorePercent(s State[entity.GamificationStatus]) float64 {
	if !s.Loaded() {
		return 0
	}
	return clamp(s.Data.Score, 0, 100)
}

// DailyLines are the three lines of the daily breakdown card.
func DailyLines(d entity.DailyBreakdown) []string {
	return []string{
		fmt.Sprintf("Emails Sent: %d", d.EmailsSent),
		fmt.Sprintf("Browsing Hours: %s hrs", FormatNumber(d.BrowsingHours)),
		fmt.Sprintf("Cloud Storage: %s GB", FormatNumber(d.CloudStorageGB)),
	}
}

// GamificationSelection is what clicking the score opens in the detail modal.
func GamificationSelection() Selection {
	return Selection{Name: "Gamification", Description: "Your current gamification status"}
}
