package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"unique;not null" json:"email"`
	Password string `gorm:"not null" json:"password,omitempty"`
	IsActive bool   `gorm:"default:true" json:"isActive"`
	IsStaff  bool   `gorm:"default:false" json:"isStaff"`
}
