package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"

	"secaware_backend/internal/model"
	"secaware_backend/internal/util"

	"github.com/xuri/excelize/v2"
)

type ExportFormat string

const (
	FormatJSON ExportFormat = "json"
	FormatCSV  ExportFormat = "csv"
	FormatXLSX ExportFormat = "xlsx"
)

func ParseExportFormat(s string) (ExportFormat, error) {
	switch ExportFormat(s) {
	case FormatJSON, FormatCSV, FormatXLSX:
		return ExportFormat(s), nil
	case "":
		return FormatJSON, nil
	}
	return "", util.ErrInvalidExportFormat
}

// ExportService serializes assembled reports. It adds no computation; every
// field of the structured report appears in each output form.
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

func formatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', 1, 64)
}

// userReportRows flattens a user report to section/metric/value rows shared
// by the CSV and XLSX forms.
func userReportRows(report *model.UserReport) [][]string {
	rows := [][]string{
		{"section", "metric", "value"},
		{"user", "name", report.User.Name},
		{"user", "email", report.User.Email},
		{"user", "department", report.User.Department},
		{"user", "organization", report.User.Organization},
		{"statistics", "total", strconv.Itoa(report.Statistics.Total)},
		{"statistics", "correct", strconv.Itoa(report.Statistics.Correct)},
		{"statistics", "incorrect", strconv.Itoa(report.Statistics.Incorrect)},
		{"statistics", "successRate", formatRate(report.Statistics.SuccessRate)},
	}

	for _, t := range model.ScenarioTypes {
		ts := report.Statistics.ByType[t]
		section := fmt.Sprintf("byType.%s", t)
		rows = append(rows,
			[]string{section, "total", strconv.Itoa(ts.Total)},
			[]string{section, "correct", strconv.Itoa(ts.Correct)},
			[]string{section, "successRate", formatRate(ts.SuccessRate)},
		)
	}

	for _, a := range report.RecentAttempts {
		section := fmt.Sprintf("recentAttempts.%d", a.ID)
		rows = append(rows,
			[]string{section, "scenarioTitle", a.ScenarioTitle},
			[]string{section, "type", string(a.Type)},
			[]string{section, "isCorrect", strconv.FormatBool(a.IsCorrect)},
			[]string{section, "date", a.Date.Format("2006-01-02 15:04:05")},
		)
	}

	return rows
}

// orgReportRows flattens an organization report. Department order is
// alphabetical so exports are stable.
func orgReportRows(organization string, report *model.OrganizationReport) [][]string {
	rows := [][]string{
		{"section", "metric", "value"},
		{"organization", "name", organization},
		{"organization", "totalUsers", strconv.Itoa(report.TotalUsers)},
		{"organization", "activeUsers", strconv.Itoa(report.ActiveUsers)},
		{"organization", "totalAttempts", strconv.Itoa(report.TotalAttempts)},
		{"organization", "correctAttempts", strconv.Itoa(report.CorrectAttempts)},
		{"organization", "successRate", formatRate(report.SuccessRate)},
	}

	for _, t := range model.ScenarioTypes {
		ts := report.ByType[t]
		section := fmt.Sprintf("byType.%s", t)
		rows = append(rows,
			[]string{section, "total", strconv.Itoa(ts.Total)},
			[]string{section, "correct", strconv.Itoa(ts.Correct)},
			[]string{section, "successRate", formatRate(ts.SuccessRate)},
		)
	}

	departments := make([]string, 0, len(report.ByDepartment))
	for d := range report.ByDepartment {
		departments = append(departments, d)
	}
	sort.Strings(departments)

	for _, d := range departments {
		ds := report.ByDepartment[d]
		section := fmt.Sprintf("byDepartment.%s", d)
		rows = append(rows,
			[]string{section, "total", strconv.Itoa(ds.Total)},
			[]string{section, "correct", strconv.Itoa(ds.Correct)},
			[]string{section, "successRate", formatRate(ds.SuccessRate)},
			[]string{section, "userCount", strconv.Itoa(ds.UserCount)},
		)
	}

	return rows
}

func writeCSV(rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeXLSX(sheet string, rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *ExportService) UserReportCSV(report *model.UserReport) ([]byte, error) {
	return writeCSV(userReportRows(report))
}

func (s *ExportService) UserReportXLSX(report *model.UserReport) ([]byte, error) {
	return writeXLSX("User Report", userReportRows(report))
}

func (s *ExportService) OrganizationReportCSV(organization string, report *model.OrganizationReport) ([]byte, error) {
	return writeCSV(orgReportRows(organization, report))
}

func (s *ExportService) OrganizationReportXLSX(organization string, report *model.OrganizationReport) ([]byte, error) {
	return writeXLSX("Organization Report", orgReportRows(organization, report))
}
