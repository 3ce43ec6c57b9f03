package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"secaware_backend/internal/model"
	"secaware_backend/internal/repository"
	"secaware_backend/internal/util"
	"secaware_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RecentAttemptsLimit bounds the recent-attempts prefix in user reports.
// Aggregate statistics always run over the full record set.
const RecentAttemptsLimit = 10

// ReportService rolls attempt records up into user and organization
// reports. All aggregation is a pure pass over an attempt snapshot; the
// service only fetches the snapshot and caches the result.
type ReportService struct {
	AttemptRepo  *repository.AttemptRepository
	ScenarioRepo *repository.ScenarioRepository
	UserRepo     *repository.UserRepository
	Redis        *redis.Client
	CacheTTL     time.Duration
}

func NewReportService(
	attemptRepo *repository.AttemptRepository,
	scenarioRepo *repository.ScenarioRepository,
	userRepo *repository.UserRepository,
	rdb *redis.Client,
	cacheTTL time.Duration,
) *ReportService {
	return &ReportService{
		AttemptRepo:  attemptRepo,
		ScenarioRepo: scenarioRepo,
		UserRepo:     userRepo,
		Redis:        rdb,
		CacheTTL:     cacheTTL,
	}
}

// round1 rounds to one decimal place, half away from zero.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// successRate is the correct/total percentage rounded to one decimal, 0
// for an empty set.
func successRate(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return round1(float64(correct) / float64(total) * 100)
}

func emptyTypeStats() map[model.ScenarioType]model.TypeStats {
	byType := make(map[model.ScenarioType]model.TypeStats, len(model.ScenarioTypes))
	for _, t := range model.ScenarioTypes {
		byType[t] = model.TypeStats{}
	}
	return byType
}

// AggregateProgress reduces an attempt snapshot to overall and per-type
// statistics. Overall totals count every attempt; the type breakdown only
// counts attempts whose scenario resolves in the index, so the breakdown
// totals may sum to less than the overall total. All three type buckets are
// always present.
func AggregateProgress(attempts []model.SimulationAttempt, index map[uint]*model.Scenario) model.ProgressStats {
	stats := model.ProgressStats{
		Total:  len(attempts),
		ByType: emptyTypeStats(),
	}

	for _, a := range attempts {
		if a.IsCorrect {
			stats.Correct++
		}

		scenario, ok := index[a.ScenarioID]
		if !ok {
			continue
		}
		ts := stats.ByType[scenario.Type]
		ts.Total++
		if a.IsCorrect {
			ts.Correct++
		}
		stats.ByType[scenario.Type] = ts
	}

	stats.Incorrect = stats.Total - stats.Correct
	stats.SuccessRate = successRate(stats.Correct, stats.Total)

	for t, ts := range stats.ByType {
		ts.SuccessRate = successRate(ts.Correct, ts.Total)
		stats.ByType[t] = ts
	}

	return stats
}

// AggregateOrganization reduces an organization's attempt snapshot to
// overall, per-type and per-department statistics. Department userCount is
// the directory headcount for that department, independent of attempts, so
// departments with members but no attempts still appear with zeroed stats.
func AggregateOrganization(attempts []model.SimulationAttempt, index map[uint]*model.Scenario, users []model.User) model.OrganizationReport {
	report := model.OrganizationReport{
		TotalUsers:    len(users),
		TotalAttempts: len(attempts),
		ByType:        emptyTypeStats(),
		ByDepartment:  make(map[string]model.DepartmentStats),
	}

	departmentByUser := make(map[uint]string, len(users))
	for i := range users {
		departmentByUser[users[i].ID] = users[i].DepartmentOrDefault()
	}

	activeUsers := make(map[uint]struct{})

	for _, a := range attempts {
		activeUsers[a.UserID] = struct{}{}
		if a.IsCorrect {
			report.CorrectAttempts++
		}

		scenario, ok := index[a.ScenarioID]
		if !ok {
			continue
		}

		ts := report.ByType[scenario.Type]
		ts.Total++
		if a.IsCorrect {
			ts.Correct++
		}
		report.ByType[scenario.Type] = ts

		department, ok := departmentByUser[a.UserID]
		if !ok {
			department = model.DepartmentUnassigned
		}
		ds := report.ByDepartment[department]
		ds.Total++
		if a.IsCorrect {
			ds.Correct++
		}
		report.ByDepartment[department] = ds
	}

	report.ActiveUsers = len(activeUsers)
	report.SuccessRate = successRate(report.CorrectAttempts, report.TotalAttempts)

	for t, ts := range report.ByType {
		ts.SuccessRate = successRate(ts.Correct, ts.Total)
		report.ByType[t] = ts
	}

	// Every department with members appears, attempts or not.
	for i := range users {
		department := users[i].DepartmentOrDefault()
		ds := report.ByDepartment[department]
		ds.UserCount++
		report.ByDepartment[department] = ds
	}

	for d, ds := range report.ByDepartment {
		ds.SuccessRate = successRate(ds.Correct, ds.Total)
		report.ByDepartment[d] = ds
	}

	return report
}

// RecentAttempts produces the bounded newest-first summary view. Attempts
// whose scenario no longer resolves are omitted.
func RecentAttempts(attempts []model.SimulationAttempt, index map[uint]*model.Scenario, limit int) []model.RecentAttempt {
	sorted := make([]model.SimulationAttempt, len(attempts))
	copy(sorted, attempts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CompletedAt.After(sorted[j].CompletedAt)
	})

	recent := []model.RecentAttempt{}
	for _, a := range sorted {
		if len(recent) >= limit {
			break
		}
		scenario, ok := index[a.ScenarioID]
		if !ok {
			continue
		}
		recent = append(recent, model.RecentAttempt{
			ID:            a.ID,
			ScenarioTitle: scenario.Title,
			Type:          scenario.Type,
			IsCorrect:     a.IsCorrect,
			Date:          a.CompletedAt,
		})
	}
	return recent
}

// scenarioIndex resolves the scenarios referenced by a set of attempts.
func (s *ReportService) scenarioIndex(attempts []model.SimulationAttempt) (map[uint]*model.Scenario, error) {
	seen := make(map[uint]struct{}, len(attempts))
	ids := make([]uint, 0, len(attempts))
	for _, a := range attempts {
		if _, ok := seen[a.ScenarioID]; ok {
			continue
		}
		seen[a.ScenarioID] = struct{}{}
		ids = append(ids, a.ScenarioID)
	}

	scenarios, err := s.ScenarioRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}

	index := make(map[uint]*model.Scenario, len(scenarios))
	for i := range scenarios {
		index[scenarios[i].ID] = &scenarios[i]
	}
	return index, nil
}

// GetUserProgress builds a user's progress report from their full attempt
// log.
func (s *ReportService) GetUserProgress(userID uint) (*model.UserProgressReport, error) {
	attempts, err := s.AttemptRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	index, err := s.scenarioIndex(attempts)
	if err != nil {
		return nil, err
	}

	return &model.UserProgressReport{
		Stats:          AggregateProgress(attempts, index),
		RecentAttempts: RecentAttempts(attempts, index, RecentAttemptsLimit),
	}, nil
}

// GetOrganizationReport builds the organization-wide report, served from a
// short-lived Redis cache when available.
func (s *ReportService) GetOrganizationReport(ctx context.Context, organization string) (*model.OrganizationReport, error) {
	cacheKey := fmt.Sprintf("report:org:%s", organization)

	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, cacheKey).Result(); err == nil {
			var report model.OrganizationReport
			if err := json.Unmarshal([]byte(cached), &report); err == nil {
				return &report, nil
			}
		}
	}

	users, err := s.UserRepo.FindByOrganization(organization)
	if err != nil {
		return nil, err
	}

	userIDs := make([]uint, len(users))
	for i := range users {
		userIDs[i] = users[i].ID
	}

	attempts, err := s.AttemptRepo.FindByUsers(userIDs)
	if err != nil {
		return nil, err
	}

	index, err := s.scenarioIndex(attempts)
	if err != nil {
		return nil, err
	}

	report := AggregateOrganization(attempts, index, users)

	if s.Redis != nil {
		if payload, err := json.Marshal(&report); err == nil {
			if err := s.Redis.Set(ctx, cacheKey, payload, s.CacheTTL).Err(); err != nil {
				logger.Log.Warn("Failed to cache organization report", zap.Error(err))
			}
		}
	}

	return &report, nil
}

// GetSimulationResults lists a user's detailed results for one simulation
// type, newest first.
func (s *ReportService) GetSimulationResults(userID uint, t model.ScenarioType) ([]model.SimulationResult, error) {
	if !t.Valid() {
		return nil, util.ErrInvalidScenarioType
	}

	attempts, err := s.AttemptRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	index, err := s.scenarioIndex(attempts)
	if err != nil {
		return nil, err
	}

	results := []model.SimulationResult{}
	for _, a := range attempts {
		scenario, ok := index[a.ScenarioID]
		if !ok || scenario.Type != t {
			continue
		}
		results = append(results, model.SimulationResult{
			ID:            a.ID,
			UUID:          a.UUID,
			ScenarioTitle: scenario.Title,
			Difficulty:    scenario.Difficulty,
			IsCorrect:     a.IsCorrect,
			Action:        a.Action,
			Data:          a.Data,
			TimeSpent:     a.TimeSpent,
			Date:          a.CompletedAt,
			Indicators:    scenario.Indicators,
		})
	}
	return results, nil
}

// AssembleUserReport composes user metadata with their progress report.
// Pure composition, no new computation.
func AssembleUserReport(user *model.User, progress *model.UserProgressReport) *model.UserReport {
	return &model.UserReport{
		User: model.UserSummary{
			Name:         user.Name,
			Email:        user.Email,
			Department:   user.Department,
			Organization: user.Organization,
		},
		Statistics:     progress.Stats,
		RecentAttempts: progress.RecentAttempts,
	}
}

// GetUserReport builds the exportable report for a user. Requesting another
// user's report requires the admin or trainer role.
func (s *ReportService) GetUserReport(requester *util.Claims, userID uint) (*model.UserReport, error) {
	if userID != requester.UserID && requester.Role != model.RoleAdmin && requester.Role != model.RoleTrainer {
		return nil, util.ErrPermissionDenied
	}

	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	progress, err := s.GetUserProgress(userID)
	if err != nil {
		return nil, err
	}

	return AssembleUserReport(user, progress), nil
}
