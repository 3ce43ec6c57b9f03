package service

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"secaware_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleUserReport() *model.UserReport {
	return &model.UserReport{
		User: model.UserSummary{
			Name:         "Ada",
			Email:        "ada@acme.test",
			Department:   "Engineering",
			Organization: "Acme",
		},
		Statistics: model.ProgressStats{
			Total:       3,
			Correct:     2,
			Incorrect:   1,
			SuccessRate: 66.7,
			ByType: map[model.ScenarioType]model.TypeStats{
				model.ScenarioPhishing: {Total: 2, Correct: 1, SuccessRate: 50},
				model.ScenarioPassword: {Total: 1, Correct: 1, SuccessRate: 100},
				model.ScenarioSocial:   {},
			},
		},
		RecentAttempts: []model.RecentAttempt{
			{
				ID:            42,
				ScenarioTitle: "Urgent invoice",
				Type:          model.ScenarioPhishing,
				IsCorrect:     true,
				Date:          time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC),
			},
		},
	}
}

func sampleOrgReport() *model.OrganizationReport {
	return &model.OrganizationReport{
		TotalUsers:      5,
		ActiveUsers:     2,
		TotalAttempts:   3,
		CorrectAttempts: 2,
		SuccessRate:     66.7,
		ByType: map[model.ScenarioType]model.TypeStats{
			model.ScenarioPhishing: {Total: 3, Correct: 2, SuccessRate: 66.7},
			model.ScenarioPassword: {},
			model.ScenarioSocial:   {},
		},
		ByDepartment: map[string]model.DepartmentStats{
			"Engineering":               {Total: 2, Correct: 1, SuccessRate: 50, UserCount: 2},
			"Finance":                   {UserCount: 2},
			model.DepartmentUnassigned: {Total: 1, Correct: 1, SuccessRate: 100, UserCount: 1},
		},
	}
}

// valueOf finds the value cell for a section/metric pair in flattened rows.
func valueOf(t *testing.T, rows [][]string, section, metric string) string {
	t.Helper()
	for _, row := range rows {
		if len(row) == 3 && row[0] == section && row[1] == metric {
			return row[2]
		}
	}
	t.Fatalf("no row for %s/%s", section, metric)
	return ""
}

func TestParseExportFormat(t *testing.T) {
	testCases := []struct {
		input    string
		expected ExportFormat
		wantErr  bool
	}{
		{"json", FormatJSON, false},
		{"csv", FormatCSV, false},
		{"xlsx", FormatXLSX, false},
		{"", FormatJSON, false},
		{"pdf", "", true},
		{"CSV", "", true},
	}

	for _, tc := range testCases {
		format, err := ParseExportFormat(tc.input)
		if tc.wantErr {
			assert.Error(t, err, "input %q", tc.input)
			continue
		}
		require.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.expected, format)
	}
}

func TestUserReportCSV(t *testing.T) {
	payload, err := NewExportService().UserReportCSV(sampleUserReport())
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(payload)).ReadAll()
	require.NoError(t, err)

	require.NotEmpty(t, rows)
	assert.Equal(t, []string{"section", "metric", "value"}, rows[0])

	assert.Equal(t, "Ada", valueOf(t, rows, "user", "name"))
	assert.Equal(t, "ada@acme.test", valueOf(t, rows, "user", "email"))
	assert.Equal(t, "3", valueOf(t, rows, "statistics", "total"))
	assert.Equal(t, "66.7", valueOf(t, rows, "statistics", "successRate"))
	assert.Equal(t, "50.0", valueOf(t, rows, "byType.phishing", "successRate"))
	assert.Equal(t, "1", valueOf(t, rows, "byType.password", "correct"))
	assert.Equal(t, "0", valueOf(t, rows, "byType.social", "total"))
	assert.Equal(t, "Urgent invoice", valueOf(t, rows, "recentAttempts.42", "scenarioTitle"))
	assert.Equal(t, "true", valueOf(t, rows, "recentAttempts.42", "isCorrect"))
	assert.Equal(t, "2026-03-01 12:30:00", valueOf(t, rows, "recentAttempts.42", "date"))
}

func TestOrganizationReportCSV(t *testing.T) {
	payload, err := NewExportService().OrganizationReportCSV("Acme", sampleOrgReport())
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(payload)).ReadAll()
	require.NoError(t, err)

	assert.Equal(t, "Acme", valueOf(t, rows, "organization", "name"))
	assert.Equal(t, "5", valueOf(t, rows, "organization", "totalUsers"))
	assert.Equal(t, "2", valueOf(t, rows, "organization", "activeUsers"))
	assert.Equal(t, "66.7", valueOf(t, rows, "organization", "successRate"))
	assert.Equal(t, "2", valueOf(t, rows, "byDepartment.Engineering", "userCount"))
	assert.Equal(t, "0", valueOf(t, rows, "byDepartment.Finance", "total"))
	assert.Equal(t, "2", valueOf(t, rows, "byDepartment.Finance", "userCount"))
	assert.Equal(t, "100.0", valueOf(t, rows, "byDepartment.Unassigned", "successRate"))

	// Department sections come out alphabetically.
	var departments []string
	for _, row := range rows {
		if len(row) == 3 && row[1] == "userCount" {
			departments = append(departments, row[0])
		}
	}
	assert.Equal(t, []string{
		"byDepartment.Engineering",
		"byDepartment.Finance",
		"byDepartment.Unassigned",
	}, departments)
}

func TestUserReportXLSX(t *testing.T) {
	payload, err := NewExportService().UserReportXLSX(sampleUserReport())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(payload))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("User Report")
	require.NoError(t, err)

	require.NotEmpty(t, rows)
	assert.Equal(t, []string{"section", "metric", "value"}, rows[0])
	assert.Equal(t, "Ada", valueOf(t, rows, "user", "name"))
	assert.Equal(t, "66.7", valueOf(t, rows, "statistics", "successRate"))
	assert.Equal(t, "Urgent invoice", valueOf(t, rows, "recentAttempts.42", "scenarioTitle"))
}

func TestOrganizationReportXLSX(t *testing.T) {
	payload, err := NewExportService().OrganizationReportXLSX("Acme", sampleOrgReport())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(payload))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Organization Report")
	require.NoError(t, err)

	assert.Equal(t, "Acme", valueOf(t, rows, "organization", "name"))
	assert.Equal(t, "2", valueOf(t, rows, "byDepartment.Engineering", "userCount"))
}
