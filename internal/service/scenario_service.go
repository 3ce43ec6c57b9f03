package service

import (
	"errors"
	"fmt"

	"secaware_backend/internal/model"
	"secaware_backend/internal/repository"
	"secaware_backend/internal/util"

	"gorm.io/gorm"
)

// ScenarioService is the authoring side of the scenario catalog, used by
// trainers and admins.
type ScenarioService struct {
	ScenarioRepo *repository.ScenarioRepository
}

func NewScenarioService(scenarioRepo *repository.ScenarioRepository) *ScenarioService {
	return &ScenarioService{ScenarioRepo: scenarioRepo}
}

// validateScenario checks that the scenario's answer key is interpretable
// by the judge for its type.
func validateScenario(scenario *model.Scenario) error {
	if !scenario.Type.Valid() {
		return util.ErrInvalidScenarioType
	}
	if scenario.CorrectAction == "" {
		return fmt.Errorf("correctAction is required")
	}
	if scenario.CorrectFeedback == "" || scenario.IncorrectFeedback == "" {
		return fmt.Errorf("correct and incorrect feedback are required")
	}

	if scenario.Type == model.ScenarioPassword {
		if scenario.PasswordContext == nil {
			return fmt.Errorf("password scenarios require a password context")
		}
		required := scenario.PasswordContext.RequiredStrength
		if required < 0 || required > MaxPasswordStrength {
			return fmt.Errorf("requiredStrength must be between 0 and %d", MaxPasswordStrength)
		}
	}

	return nil
}

func (s *ScenarioService) Create(scenario *model.Scenario) error {
	if err := validateScenario(scenario); err != nil {
		return err
	}
	return s.ScenarioRepo.Create(scenario)
}

func (s *ScenarioService) GetByID(id uint) (*model.Scenario, error) {
	scenario, err := s.ScenarioRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrScenarioNotFound
		}
		return nil, err
	}
	return scenario, nil
}

func (s *ScenarioService) List(page, limit int) ([]model.Scenario, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.ScenarioRepo.List(page, limit)
}

func (s *ScenarioService) Update(id uint, updated *model.Scenario) (*model.Scenario, error) {
	scenario, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	scenario.Title = updated.Title
	scenario.Description = updated.Description
	scenario.Type = updated.Type
	scenario.Difficulty = updated.Difficulty
	scenario.Email = updated.Email
	scenario.PasswordContext = updated.PasswordContext
	scenario.SocialContext = updated.SocialContext
	scenario.CorrectAction = updated.CorrectAction
	scenario.CorrectFeedback = updated.CorrectFeedback
	scenario.IncorrectFeedback = updated.IncorrectFeedback
	scenario.Indicators = updated.Indicators
	scenario.Tags = updated.Tags
	scenario.IsActive = updated.IsActive

	if err := validateScenario(scenario); err != nil {
		return nil, err
	}

	if err := s.ScenarioRepo.Update(scenario); err != nil {
		return nil, err
	}
	return scenario, nil
}

func (s *ScenarioService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.ScenarioRepo.Delete(id)
}
