package model

type ScenarioType string

const (
	ScenarioPhishing ScenarioType = "phishing"
	ScenarioPassword ScenarioType = "password"
	ScenarioSocial   ScenarioType = "social"
)

// ScenarioTypes is the closed set of scenario kinds, in the order reports
// present them. Adding a kind means touching every switch on ScenarioType.
var ScenarioTypes = []ScenarioType{ScenarioPhishing, ScenarioPassword, ScenarioSocial}

func (t ScenarioType) Valid() bool {
	switch t {
	case ScenarioPhishing, ScenarioPassword, ScenarioSocial:
		return true
	}
	return false
}

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

type EmailAttachment struct {
	Filename string `json:"filename"`
	Type     string `json:"type"`
	Size     string `json:"size"`
}

// EmailPayload carries the simulated message shown for phishing scenarios.
type EmailPayload struct {
	From        string            `json:"from"`
	To          string            `json:"to"`
	Subject     string            `json:"subject"`
	Date        string            `json:"date"`
	Body        string            `json:"body"`
	Attachments []EmailAttachment `json:"attachments,omitempty"`
}

// PasswordContext describes a password-creation challenge. RequiredStrength
// is the rubric score (0-5) a candidate password must reach to pass.
type PasswordContext struct {
	SystemName       string   `json:"systemName"`
	Requirements     []string `json:"requirements,omitempty"`
	RequiredStrength int      `json:"requiredStrength"`
}

type SocialContext struct {
	Scenario string `json:"scenario"`
	Medium   string `json:"medium"` // phone, in-person, chat
	Script   string `json:"script"`
}

// swagger:model Scenario
type Scenario struct {
	BaseModel
	Title             string           `gorm:"size:255;not null" json:"title"`
	Description       string           `gorm:"type:text;not null" json:"description"`
	Type              ScenarioType     `gorm:"type:enum('phishing','password','social');not null;index" json:"type"`
	Difficulty        Difficulty       `gorm:"type:enum('beginner','intermediate','advanced');default:'beginner'" json:"difficulty"`
	Email             *EmailPayload    `gorm:"serializer:json;type:json" json:"email,omitempty"`
	PasswordContext   *PasswordContext `gorm:"serializer:json;type:json" json:"passwordContext,omitempty"`
	SocialContext     *SocialContext   `gorm:"serializer:json;type:json" json:"socialContext,omitempty"`
	CorrectAction     string           `gorm:"size:100;not null" json:"correctAction"`
	CorrectFeedback   string           `gorm:"type:text;not null" json:"correctFeedback"`
	IncorrectFeedback string           `gorm:"type:text;not null" json:"incorrectFeedback"`
	Indicators        []string         `gorm:"serializer:json;type:json" json:"indicators,omitempty"`
	Tags              []string         `gorm:"serializer:json;type:json" json:"tags,omitempty"`
	IsActive          bool             `gorm:"default:true" json:"isActive"`
}

func (Scenario) TableName() string {
	return "scenarios"
}

// RequiredStrength reads the pass threshold for password scenarios, 0 when
// no password context is attached.
func (s *Scenario) RequiredStrength() int {
	if s.PasswordContext == nil {
		return 0
	}
	return s.PasswordContext.RequiredStrength
}
