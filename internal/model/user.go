package model

import (
	"time"
)

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleTrainer UserRole = "trainer"
	RoleTrainee UserRole = "trainee"
)

// swagger:model User
type User struct {
	BaseModel
	Name         string   `gorm:"size:100;not null" json:"name"`
	Email        string   `gorm:"size:100;unique;not null" json:"email"`
	Password     string   `gorm:"size:100;not null" json:"-"`
	Role         UserRole `gorm:"type:enum('admin','trainer','trainee');default:'trainee'" json:"role"`
	Organization string   `gorm:"size:100;not null;index" json:"organization"`
	Department   string   `gorm:"size:100" json:"department"`
	IsActive     bool     `gorm:"default:true" json:"isActive"`
	LastLogin    time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
	LastSeen     time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}

// DepartmentOrDefault is the aggregation key used by organization reports.
// Members without an assigned department are grouped under "Unassigned".
func (u *User) DepartmentOrDefault() string {
	if u.Department == "" {
		return DepartmentUnassigned
	}
	return u.Department
}

const DepartmentUnassigned = "Unassigned"
