package entity

import (
	"errors"
	"fmt"
	"math"
)

// DailyBreakdown represents today's activity counters reported by the metrics backend.
type DailyBreakdown struct {
	EmailsSent     int     `json:"emails_sent"`
	BrowsingHours  float64 `json:"browsing_hours"`
	CloudStorageGB float64 `json:"cloud_storage"`
}

// TotalCO2 holds today's total emissions in grams. Total is nil when the backend omits it.
type TotalCO2 struct {
	Total *float64 `json:"total"`
}

// GamificationStatus is the backend-computed engagement score and its tier label.
type GamificationStatus struct {
	Score float64 `json:"score"`
	Level string  `json:"level"`
}

// CategoryDatum is one slice of the emission category distribution.
type CategoryDatum struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// WeeklyDatum is the total emission for one day label of the weekly series.
type WeeklyDatum struct {
	Day   string  `json:"day"`
	Value float64 `json:"value"`
}

// Validate verifica os limites dos contadores diários.
func (d DailyBreakdown) Validate() error {
	if d.EmailsSent < 0 {
		return fmt.Errorf("emails_sent must be non-negative, got %d", d.EmailsSent)
	}
	if err := checkNonNegative("browsing_hours", d.BrowsingHours); err != nil {
		return err
	}
	return checkNonNegative("cloud_storage", d.CloudStorageGB)
}

// Validate aceita total ausente, mas rejeita valores negativos ou não finitos.
func (t TotalCO2) Validate() error {
	if t.Total == nil {
		return nil
	}
	return checkNonNegative("total", *t.Total)
}

// Validate verifica se o score é um número finito.
func (g GamificationStatus) Validate() error {
	if math.IsNaN(g.Score) || math.IsInf(g.Score, 0) {
		return errors.New("score must be a finite number")
	}
	return nil
}

// Validate verifica nome e valor de uma categoria.
func (c CategoryDatum) Validate() error {
	if c.Name == "" {
		return errors.New("category name is required")
	}
	return checkNonNegative(fmt.Sprintf("value of %q", c.Name), c.Value)
}

// Validate verifica o rótulo e o valor de um dia da série semanal.
func (w WeeklyDatum) Validate() error {
	if w.Day == "" {
		return errors.New("day label is required")
	}
	if math.IsNaN(w.Value) || math.IsInf(w.Value, 0) {
		return fmt.Errorf("value of %q must be a finite number", w.Day)
	}
	return nil
}

func checkNonNegative(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s must be a finite number", field)
	}
	if v < 0 {
		return fmt.Errorf("%s must be non-negative, got %v", field, v)
	}
	return nil
}
