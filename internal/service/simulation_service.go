package service

import (
	"errors"
	"time"

	"secaware_backend/internal/model"
	"secaware_backend/internal/repository"
	"secaware_backend/internal/util"
	"secaware_backend/pkg/monitoring"

	"gorm.io/gorm"
)

// Fixed feedback for password judging; unlike phishing/social feedback it
// is not scenario-authored.
const (
	passwordPassFeedback = "This password meets the security requirements."
	passwordFailFeedback = "This password does not meet the security requirements."
)

// SimulationService judges submissions and records them as immutable
// attempts.
type SimulationService struct {
	ScenarioRepo *repository.ScenarioRepository
	AttemptRepo  *repository.AttemptRepository
}

func NewSimulationService(scenarioRepo *repository.ScenarioRepository, attemptRepo *repository.AttemptRepository) *SimulationService {
	return &SimulationService{
		ScenarioRepo: scenarioRepo,
		AttemptRepo:  attemptRepo,
	}
}

func (s *SimulationService) ListScenarios(t model.ScenarioType) ([]model.Scenario, error) {
	if !t.Valid() {
		return nil, util.ErrInvalidScenarioType
	}
	return s.ScenarioRepo.FindByType(t)
}

// JudgeAction decides a phishing or social submission. Matching is exact
// and case-sensitive: the original behavior offers no normalization, and
// relaxing it would silently change scoring outcomes.
func JudgeAction(scenario *model.Scenario, action string) model.Verdict {
	isCorrect := scenario.CorrectAction == action

	message := scenario.IncorrectFeedback
	if isCorrect {
		message = scenario.CorrectFeedback
	}

	return model.Verdict{
		Correct:    isCorrect,
		Message:    message,
		Indicators: scenario.Indicators,
	}
}

// JudgePassword decides a password submission: pass when the rubric score
// reaches the scenario's required strength.
func JudgePassword(scenario *model.Scenario, password string) model.Verdict {
	strength := EvaluatePasswordStrength(password)
	isCorrect := strength >= scenario.RequiredStrength()

	message := passwordFailFeedback
	if isCorrect {
		message = passwordPassFeedback
	}

	return model.Verdict{
		Correct:      isCorrect,
		Message:      message,
		Strength:     &strength,
		Improvements: PasswordImprovements(password),
	}
}

// SubmitAction judges and records a phishing or social response.
func (s *SimulationService) SubmitAction(userID, scenarioID uint, action string, timeSpent int) (*model.Verdict, error) {
	scenario, err := s.findScenario(scenarioID)
	if err != nil {
		return nil, err
	}

	switch scenario.Type {
	case model.ScenarioPhishing, model.ScenarioSocial:
	case model.ScenarioPassword:
		return nil, util.ErrInvalidSubmission
	default:
		return nil, util.ErrInvalidScenarioType
	}

	verdict := JudgeAction(scenario, action)

	attempt := &model.SimulationAttempt{
		UserID:      userID,
		ScenarioID:  scenario.ID,
		Action:      action,
		IsCorrect:   verdict.Correct,
		TimeSpent:   timeSpent,
		CompletedAt: time.Now(),
	}
	if err := s.AttemptRepo.Create(attempt); err != nil {
		return nil, err
	}

	monitoring.CountAttempt(string(scenario.Type), verdict.Correct)
	return &verdict, nil
}

// SubmitPassword judges and records a password-challenge response. The
// candidate password and its score are retained as the attempt payload.
func (s *SimulationService) SubmitPassword(userID, scenarioID uint, password string, timeSpent int) (*model.Verdict, error) {
	scenario, err := s.findScenario(scenarioID)
	if err != nil {
		return nil, err
	}

	switch scenario.Type {
	case model.ScenarioPassword:
	case model.ScenarioPhishing, model.ScenarioSocial:
		return nil, util.ErrInvalidSubmission
	default:
		return nil, util.ErrInvalidScenarioType
	}

	verdict := JudgePassword(scenario, password)

	attempt := &model.SimulationAttempt{
		UserID:     userID,
		ScenarioID: scenario.ID,
		Data: &model.PasswordAttemptData{
			Password: password,
			Strength: *verdict.Strength,
		},
		IsCorrect:   verdict.Correct,
		TimeSpent:   timeSpent,
		CompletedAt: time.Now(),
	}
	if err := s.AttemptRepo.Create(attempt); err != nil {
		return nil, err
	}

	monitoring.CountAttempt(string(scenario.Type), verdict.Correct)
	return &verdict, nil
}

func (s *SimulationService) findScenario(id uint) (*model.Scenario, error) {
	scenario, err := s.ScenarioRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrScenarioNotFound
		}
		return nil, err
	}
	return scenario, nil
}
