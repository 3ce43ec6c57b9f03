package model

import (
	"time"
)

// TypeStats is one per-scenario-type bucket of a progress report. Every
// report carries exactly the three fixed buckets, zero-valued when unused.
type TypeStats struct {
	Total       int     `json:"total"`
	Correct     int     `json:"correct"`
	SuccessRate float64 `json:"successRate"`
}

// ProgressStats is recomputed on demand from the attempt log; it is never
// persisted.
type ProgressStats struct {
	Total       int                        `json:"total"`
	Correct     int                        `json:"correct"`
	Incorrect   int                        `json:"incorrect"`
	SuccessRate float64                    `json:"successRate"`
	ByType      map[ScenarioType]TypeStats `json:"byType"`
}

type RecentAttempt struct {
	ID            uint         `json:"id"`
	ScenarioTitle string       `json:"scenarioTitle"`
	Type          ScenarioType `json:"type"`
	IsCorrect     bool         `json:"isCorrect"`
	Date          time.Time    `json:"date"`
}

// swagger:model UserProgressReport
type UserProgressReport struct {
	Stats          ProgressStats   `json:"stats"`
	RecentAttempts []RecentAttempt `json:"recentAttempts"`
}

// DepartmentStats extends the stat triple with the member headcount of the
// department, counted over the whole organization directory. A department
// with members but no attempts still shows up with zeroed stats.
type DepartmentStats struct {
	Total       int     `json:"total"`
	Correct     int     `json:"correct"`
	SuccessRate float64 `json:"successRate"`
	UserCount   int     `json:"userCount"`
}

// swagger:model OrganizationReport
type OrganizationReport struct {
	TotalUsers      int                        `json:"totalUsers"`
	ActiveUsers     int                        `json:"activeUsers"`
	TotalAttempts   int                        `json:"totalAttempts"`
	CorrectAttempts int                        `json:"correctAttempts"`
	SuccessRate     float64                    `json:"successRate"`
	ByType          map[ScenarioType]TypeStats `json:"byType"`
	ByDepartment    map[string]DepartmentStats `json:"byDepartment"`
}

// SimulationResult is one row of the per-type detailed results view.
type SimulationResult struct {
	ID            uint                 `json:"id"`
	UUID          string               `json:"uuid"`
	ScenarioTitle string               `json:"scenarioTitle"`
	Difficulty    Difficulty           `json:"difficulty"`
	IsCorrect     bool                 `json:"isCorrect"`
	Action        string               `json:"action,omitempty"`
	Data          *PasswordAttemptData `json:"data,omitempty"`
	TimeSpent     int                  `json:"timeSpent,omitempty"`
	Date          time.Time            `json:"date"`
	Indicators    []string             `json:"indicators,omitempty"`
}

type UserSummary struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Department   string `json:"department"`
	Organization string `json:"organization"`
}

// UserReport is the exportable composition of user metadata and stats.
type UserReport struct {
	User           UserSummary     `json:"user"`
	Statistics     ProgressStats   `json:"statistics"`
	RecentAttempts []RecentAttempt `json:"recentAttempts"`
}
