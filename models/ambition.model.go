package models

import (
	"gorm.io/gorm"
)

// Ambition is a target college/course with one weight per ENEM subject area.
// Weights are positive integers, 1 by default, with no upper bound.
type Ambition struct {
	gorm.Model
	UserID             uint   `gorm:"not null;index" json:"userId"`
	User               User   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	City               string `gorm:"not null" json:"city"`
	Course             string `gorm:"not null" json:"course"`
	College            string `gorm:"not null" json:"college"`
	MathWeight         uint   `gorm:"default:1" json:"mathWeight"`
	LanguagesWeight    uint   `gorm:"default:1" json:"languagesWeight"`
	ScienceWeight      uint   `gorm:"default:1" json:"scienceWeight"`
	HumanScienceWeight uint   `gorm:"default:1" json:"humanScienceWeight"`
	EssayWeight        uint   `gorm:"default:1" json:"essayWeight"`
}
