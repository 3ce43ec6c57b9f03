package repository

import (
	"secaware_backend/internal/model"

	"gorm.io/gorm"
)

type AttemptRepository struct {
	DB *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{DB: db}
}

// Create appends one attempt row. Attempts are facts: there is no update
// path, and duplicate submissions insert fresh rows.
func (r *AttemptRepository) Create(attempt *model.SimulationAttempt) error {
	return r.DB.Create(attempt).Error
}

// FindByUser returns all of a user's attempts, newest first.
func (r *AttemptRepository) FindByUser(userID uint) ([]model.SimulationAttempt, error) {
	var attempts []model.SimulationAttempt
	err := r.DB.Where("user_id = ?", userID).
		Order("completed_at DESC").
		Find(&attempts).Error
	return attempts, err
}

// FindByUsers returns the attempts of a set of users, newest first. Used
// for organization-wide aggregation.
func (r *AttemptRepository) FindByUsers(userIDs []uint) ([]model.SimulationAttempt, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var attempts []model.SimulationAttempt
	err := r.DB.Where("user_id IN ?", userIDs).
		Order("completed_at DESC").
		Find(&attempts).Error
	return attempts, err
}
