package model

import (
	"time"

	"gorm.io/gorm"
)

// PasswordAttemptData is the kind-specific payload stored for password
// attempts. Phishing and social attempts carry no payload beyond the action.
type PasswordAttemptData struct {
	Password string `json:"password"`
	Strength int    `json:"strength"`
}

// SimulationAttempt is the immutable record of one judged submission. Rows
// are only ever inserted; resubmitting the same scenario creates a new row.
type SimulationAttempt struct {
	BaseModel
	UUID        string               `gorm:"type:varchar(36);uniqueIndex" json:"uuid"`
	UserID      uint                 `gorm:"index;not null" json:"userId"`
	ScenarioID  uint                 `gorm:"index;not null" json:"scenarioId"`
	Action      string               `gorm:"size:100" json:"action,omitempty"`
	Data        *PasswordAttemptData `gorm:"serializer:json;type:json" json:"data,omitempty"`
	IsCorrect   bool                 `gorm:"not null" json:"isCorrect"`
	TimeSpent   int                  `json:"timeSpent,omitempty"` // seconds, 0 when unreported
	CompletedAt time.Time            `gorm:"index" json:"completedAt"`
}

func (SimulationAttempt) TableName() string {
	return "simulation_attempts"
}

// BeforeCreate assigns the external attempt identifier. The numeric primary
// key stays internal; exports and result views reference the UUID.
func (a *SimulationAttempt) BeforeCreate(tx *gorm.DB) error {
	if a.UUID == "" {
		a.UUID = GenerateUUID()
	}
	return nil
}

// Verdict is the judged outcome of a single response.
type Verdict struct {
	Correct      bool     `json:"correct"`
	Message      string   `json:"message"`
	Indicators   []string `json:"indicators,omitempty"`
	Strength     *int     `json:"strength,omitempty"`
	Improvements []string `json:"improvements,omitempty"`
}
