package models

import "time"

// Category is one of the four quadrants a task can land in. The labels are
// part of the wire contract with both the UI and the categorization prompt.
type Category string

const (
	CategoryDoItNow                   Category = "Do It Now"
	CategoryFocus                     Category = "Focus"
	CategoryProductiveProcrastination Category = "Productive Procrastination"
	CategoryEasyWins                  Category = "Easy Wins"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryDoItNow, CategoryFocus, CategoryProductiveProcrastination, CategoryEasyWins:
		return true
	}
	return false
}

type Urgency string

const (
	UrgencyUrgent    Urgency = "urgent"
	UrgencyNotUrgent Urgency = "not_urgent"
)

func (u Urgency) Valid() bool {
	return u == UrgencyUrgent || u == UrgencyNotUrgent
}

type EnergyLevel string

const (
	EnergyHigh EnergyLevel = "high"
	EnergyLow  EnergyLevel = "low"
)

func (e EnergyLevel) Valid() bool {
	return e == EnergyHigh || e == EnergyLow
}

// Task is a single item parsed out of a brain dump. Rows are created only in
// batches, mutated only via the completed flag, and deleted only all at once
// per user.
type Task struct {
	ID          int64       `json:"id"`
	UserID      int64       `json:"-"`
	Content     string      `json:"content"`
	Category    Category    `json:"category"`
	Urgency     Urgency     `json:"urgency"`
	EnergyLevel EnergyLevel `json:"energy_level"`
	Completed   bool        `json:"completed"`
	CreatedAt   time.Time   `json:"created_at"`
}

// ParsedTask is the validated shape returned by the dump parser before
// persistence; it carries no identity or ownership yet.
type ParsedTask struct {
	Content     string      `json:"content"`
	Category    Category    `json:"category"`
	Urgency     Urgency     `json:"urgency"`
	EnergyLevel EnergyLevel `json:"energy_level"`
}

// Valid reports whether all three labels are members of their enumerations
// and the content is non-empty.
func (p ParsedTask) Valid() bool {
	return p.Content != "" && p.Category.Valid() && p.Urgency.Valid() && p.EnergyLevel.Valid()
}
