package service

import (
	"fmt"
	"testing"
	"time"

	"secaware_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioIndexOf(scenarios ...*model.Scenario) map[uint]*model.Scenario {
	index := make(map[uint]*model.Scenario, len(scenarios))
	for _, s := range scenarios {
		index[s.ID] = s
	}
	return index
}

func attempt(id, userID, scenarioID uint, correct bool, completedAt time.Time) model.SimulationAttempt {
	a := model.SimulationAttempt{
		UserID:      userID,
		ScenarioID:  scenarioID,
		IsCorrect:   correct,
		CompletedAt: completedAt,
	}
	a.ID = id
	return a
}

func TestAggregateProgressEmpty(t *testing.T) {
	stats := AggregateProgress(nil, map[uint]*model.Scenario{})

	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, 0, stats.Correct)
	assert.Equal(t, 0, stats.Incorrect)
	assert.Equal(t, 0.0, stats.SuccessRate)

	// The three type buckets are always present, zero-valued.
	require.Len(t, stats.ByType, 3)
	for _, scenarioType := range model.ScenarioTypes {
		ts, ok := stats.ByType[scenarioType]
		require.True(t, ok, "missing bucket for %s", scenarioType)
		assert.Equal(t, model.TypeStats{}, ts)
	}
}

func TestAggregateProgress(t *testing.T) {
	phishing := &model.Scenario{Type: model.ScenarioPhishing}
	phishing.ID = 1
	password := &model.Scenario{Type: model.ScenarioPassword}
	password.ID = 2
	index := scenarioIndexOf(phishing, password)

	now := time.Now()
	attempts := []model.SimulationAttempt{
		attempt(1, 7, 1, true, now),
		attempt(2, 7, 1, false, now),
		attempt(3, 7, 2, true, now),
	}

	stats := AggregateProgress(attempts, index)

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.Correct)
	assert.Equal(t, 1, stats.Incorrect)
	assert.Equal(t, 66.7, stats.SuccessRate)

	assert.Equal(t, model.TypeStats{Total: 2, Correct: 1, SuccessRate: 50}, stats.ByType[model.ScenarioPhishing])
	assert.Equal(t, model.TypeStats{Total: 1, Correct: 1, SuccessRate: 100}, stats.ByType[model.ScenarioPassword])
	assert.Equal(t, model.TypeStats{}, stats.ByType[model.ScenarioSocial])
}

func TestAggregateProgressUnresolvedScenario(t *testing.T) {
	phishing := &model.Scenario{Type: model.ScenarioPhishing}
	phishing.ID = 1
	index := scenarioIndexOf(phishing)

	now := time.Now()
	attempts := []model.SimulationAttempt{
		attempt(1, 7, 1, true, now),
		attempt(2, 7, 99, true, now), // scenario 99 was deleted
	}

	stats := AggregateProgress(attempts, index)

	// The dangling attempt counts in the overall totals but in no type
	// bucket, so bucket totals may sum below the overall total.
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 2, stats.Correct)
	assert.Equal(t, 100.0, stats.SuccessRate)

	bucketTotal := 0
	for _, ts := range stats.ByType {
		bucketTotal += ts.Total
	}
	assert.Equal(t, 1, bucketTotal)
}

func TestAggregateProgressRounding(t *testing.T) {
	phishing := &model.Scenario{Type: model.ScenarioPhishing}
	phishing.ID = 1
	index := scenarioIndexOf(phishing)

	now := time.Now()
	attempts := []model.SimulationAttempt{
		attempt(1, 7, 1, true, now),
		attempt(2, 7, 1, false, now),
		attempt(3, 7, 1, false, now),
	}

	stats := AggregateProgress(attempts, index)
	assert.Equal(t, 33.3, stats.SuccessRate)
	assert.Equal(t, 33.3, stats.ByType[model.ScenarioPhishing].SuccessRate)
}

func TestAggregateProgressIdempotent(t *testing.T) {
	phishing := &model.Scenario{Type: model.ScenarioPhishing}
	phishing.ID = 1
	index := scenarioIndexOf(phishing)

	now := time.Now()
	attempts := []model.SimulationAttempt{
		attempt(1, 7, 1, true, now),
		attempt(2, 7, 1, false, now),
	}

	first := AggregateProgress(attempts, index)
	second := AggregateProgress(attempts, index)
	assert.Equal(t, first, second)
}

func orgUser(id uint, department string) model.User {
	u := model.User{Department: department, Organization: "Acme"}
	u.ID = id
	return u
}

func TestAggregateOrganization(t *testing.T) {
	phishing := &model.Scenario{Type: model.ScenarioPhishing}
	phishing.ID = 1
	index := scenarioIndexOf(phishing)

	users := []model.User{
		orgUser(1, "Engineering"),
		orgUser(2, "Engineering"),
		orgUser(3, "Finance"),
		orgUser(4, "Finance"),
		orgUser(5, ""), // no department assigned
	}

	now := time.Now()
	attempts := []model.SimulationAttempt{
		attempt(1, 1, 1, true, now),
		attempt(2, 1, 1, false, now),
		attempt(3, 5, 1, true, now),
		attempt(4, 3, 99, true, now), // scenario 99 was deleted
	}

	report := AggregateOrganization(attempts, index, users)

	assert.Equal(t, 5, report.TotalUsers)
	assert.Equal(t, 3, report.ActiveUsers)
	assert.Equal(t, 4, report.TotalAttempts)
	assert.Equal(t, 3, report.CorrectAttempts)
	assert.Equal(t, 75.0, report.SuccessRate)

	// The dangling attempt counts above but is absent from every breakdown.
	assert.Equal(t, model.TypeStats{Total: 3, Correct: 2, SuccessRate: 66.7}, report.ByType[model.ScenarioPhishing])

	engineering := report.ByDepartment["Engineering"]
	assert.Equal(t, 2, engineering.Total)
	assert.Equal(t, 1, engineering.Correct)
	assert.Equal(t, 50.0, engineering.SuccessRate)
	assert.Equal(t, 2, engineering.UserCount)

	// Finance has members, and its only attempt references a deleted
	// scenario; its stats stay zeroed.
	finance := report.ByDepartment["Finance"]
	assert.Equal(t, 0, finance.Total)
	assert.Equal(t, 0, finance.Correct)
	assert.Equal(t, 0.0, finance.SuccessRate)
	assert.Equal(t, 2, finance.UserCount)

	unassigned := report.ByDepartment[model.DepartmentUnassigned]
	assert.Equal(t, 1, unassigned.Total)
	assert.Equal(t, 1, unassigned.UserCount)

	departmentTotal := 0
	for _, ds := range report.ByDepartment {
		departmentTotal += ds.Total
	}
	assert.Equal(t, 3, departmentTotal, "department totals may sum below the overall total")
}

func TestAggregateOrganizationEmpty(t *testing.T) {
	report := AggregateOrganization(nil, map[uint]*model.Scenario{}, nil)

	assert.Equal(t, 0, report.TotalUsers)
	assert.Equal(t, 0, report.ActiveUsers)
	assert.Equal(t, 0.0, report.SuccessRate)
	require.Len(t, report.ByType, 3)
	assert.Empty(t, report.ByDepartment)
}

func TestRecentAttempts(t *testing.T) {
	phishing := &model.Scenario{Title: "Urgent invoice", Type: model.ScenarioPhishing}
	phishing.ID = 1
	index := scenarioIndexOf(phishing)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	var attempts []model.SimulationAttempt
	for i := 0; i < 15; i++ {
		attempts = append(attempts, attempt(uint(i+1), 7, 1, true, base.Add(time.Duration(i)*time.Minute)))
	}
	// One dangling attempt, newer than everything else; it must be skipped.
	attempts = append(attempts, attempt(99, 7, 42, true, base.Add(time.Hour)))

	recent := RecentAttempts(attempts, index, RecentAttemptsLimit)

	require.Len(t, recent, RecentAttemptsLimit)
	assert.Equal(t, uint(15), recent[0].ID)
	assert.Equal(t, "Urgent invoice", recent[0].ScenarioTitle)
	for i := 1; i < len(recent); i++ {
		assert.False(t, recent[i].Date.After(recent[i-1].Date), "recent attempts must be newest first")
	}
}

func TestAssembleUserReport(t *testing.T) {
	user := &model.User{
		Name:         "Ada",
		Email:        "ada@acme.test",
		Department:   "Engineering",
		Organization: "Acme",
	}
	progress := &model.UserProgressReport{
		Stats: model.ProgressStats{Total: 4, Correct: 3, Incorrect: 1, SuccessRate: 75, ByType: map[model.ScenarioType]model.TypeStats{}},
		RecentAttempts: []model.RecentAttempt{
			{ID: 1, ScenarioTitle: "Urgent invoice", Type: model.ScenarioPhishing, IsCorrect: true},
		},
	}

	report := AssembleUserReport(user, progress)

	assert.Equal(t, model.UserSummary{
		Name:         "Ada",
		Email:        "ada@acme.test",
		Department:   "Engineering",
		Organization: "Acme",
	}, report.User)
	assert.Equal(t, progress.Stats, report.Statistics)
	assert.Equal(t, progress.RecentAttempts, report.RecentAttempts)
}

func TestSuccessRateTable(t *testing.T) {
	testCases := []struct {
		correct, total int
		expected       float64
	}{
		{0, 0, 0},
		{1, 2, 50},
		{1, 3, 33.3},
		{2, 3, 66.7},
		{1, 8, 12.5},
		{7, 9, 77.8},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%d/%d", tc.correct, tc.total), func(t *testing.T) {
			assert.Equal(t, tc.expected, successRate(tc.correct, tc.total))
		})
	}
}
