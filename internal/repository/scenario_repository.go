package repository

import (
	"secaware_backend/internal/model"

	"gorm.io/gorm"
)

type ScenarioRepository struct {
	DB *gorm.DB
}

func NewScenarioRepository(db *gorm.DB) *ScenarioRepository {
	return &ScenarioRepository{DB: db}
}

func (r *ScenarioRepository) Create(scenario *model.Scenario) error {
	return r.DB.Create(scenario).Error
}

func (r *ScenarioRepository) FindByID(id uint) (*model.Scenario, error) {
	var scenario model.Scenario
	err := r.DB.First(&scenario, id).Error
	return &scenario, err
}

// FindByType lists active scenarios of one kind for trainees to work
// through.
func (r *ScenarioRepository) FindByType(t model.ScenarioType) ([]model.Scenario, error) {
	var scenarios []model.Scenario
	err := r.DB.Where("type = ? AND is_active = ?", t, true).Find(&scenarios).Error
	return scenarios, err
}

// FindByIDs resolves a set of scenario references in one query. Deleted
// scenarios are simply absent from the result.
func (r *ScenarioRepository) FindByIDs(ids []uint) ([]model.Scenario, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var scenarios []model.Scenario
	err := r.DB.Where("id IN ?", ids).Find(&scenarios).Error
	return scenarios, err
}

func (r *ScenarioRepository) List(page, limit int) ([]model.Scenario, int64, error) {
	var scenarios []model.Scenario
	var total int64

	if err := r.DB.Model(&model.Scenario{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.DB.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&scenarios).Error
	return scenarios, total, err
}

func (r *ScenarioRepository) Update(scenario *model.Scenario) error {
	return r.DB.Save(scenario).Error
}

func (r *ScenarioRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Scenario{}, id).Error
}
