package database

import (
	"fmt"
	"log"

	"secaware_backend/internal/config"
	"secaware_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.Scenario{},
		&model.SimulationAttempt{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	seedScenarios(db)

	return db, nil
}

// seedScenarios inserts a starter scenario per type when the catalog is
// empty so a fresh deployment is usable before any authoring happens.
func seedScenarios(db *gorm.DB) {
	var count int64
	db.Model(&model.Scenario{}).Count(&count)
	if count > 0 {
		return
	}

	defaults := []model.Scenario{
		{
			Title:       "Urgent invoice from the CEO",
			Description: "An email pressures you to open an attached invoice immediately.",
			Type:        model.ScenarioPhishing,
			Difficulty:  model.DifficultyBeginner,
			Email: &model.EmailPayload{
				From:    "ceo@yourcompany-billing.com",
				To:      "you@yourcompany.com",
				Subject: "URGENT: overdue invoice - action required today",
				Body:    "Please review the attached invoice and settle it before noon.",
				Attachments: []model.EmailAttachment{
					{Filename: "invoice_2024.zip", Type: "application/zip", Size: "312 KB"},
				},
			},
			CorrectAction:     "report",
			CorrectFeedback:   "Well spotted. The sender domain and the artificial urgency are classic phishing signs.",
			IncorrectFeedback: "This message is a phishing attempt. Check the sender domain and resist urgency pressure.",
			Indicators:        []string{"Lookalike sender domain", "Artificial urgency", "Unexpected attachment"},
			IsActive:          true,
		},
		{
			Title:       "New VPN account password",
			Description: "Choose a password for your new VPN account.",
			Type:        model.ScenarioPassword,
			Difficulty:  model.DifficultyBeginner,
			PasswordContext: &model.PasswordContext{
				SystemName:       "Corporate VPN",
				Requirements:     []string{"At least 12 characters", "Mixed character classes"},
				RequiredStrength: 4,
			},
			CorrectAction:     "password",
			CorrectFeedback:   "This password meets the security requirements.",
			IncorrectFeedback: "This password does not meet the security requirements.",
			IsActive:          true,
		},
		{
			Title:       "Helpdesk caller asks for your login",
			Description: "A caller claiming to be IT helpdesk asks you to confirm your password.",
			Type:        model.ScenarioSocial,
			Difficulty:  model.DifficultyBeginner,
			SocialContext: &model.SocialContext{
				Scenario: "Unexpected phone call",
				Medium:   "phone",
				Script:   "Hi, this is IT. We detected an issue with your account and need your password to fix it.",
			},
			CorrectAction:     "refuse",
			CorrectFeedback:   "Correct. IT will never ask for your password over the phone.",
			IncorrectFeedback: "Never share credentials on a call you did not initiate, whoever the caller claims to be.",
			Indicators:        []string{"Unsolicited call", "Credential request", "Claimed authority"},
			IsActive:          true,
		},
	}

	for i := range defaults {
		db.Create(&defaults[i])
	}
}
