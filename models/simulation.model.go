package models

import (
	"gorm.io/gorm"
)

// OfficialScore flag values
const (
	ScoreSimulation = 0 // self-reported simulation
	ScoreOfficial   = 1 // official recorded score
)

// Simulation is one scored attempt evaluated against one Ambition. FinalScore
// is the weighted mean computed at creation (or last update) time and is not
// recomputed when the ambition's weights later change.
type Simulation struct {
	gorm.Model
	UserID        uint     `gorm:"not null;index" json:"userId"`
	User          User     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	AmbitionID    uint     `gorm:"not null;index" json:"ambitionId"`
	Ambition      Ambition `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Name          string   `gorm:"not null" json:"name"`
	Math          float64  `gorm:"default:0" json:"math"`
	Languages     float64  `gorm:"default:0" json:"languages"`
	Science       float64  `gorm:"default:0" json:"science"`
	HumanScience  float64  `gorm:"default:0" json:"humanScience"`
	Essay         float64  `gorm:"default:0" json:"essay"`
	OfficialScore int      `gorm:"default:0" json:"officialScore"`
	FinalScore    float64  `gorm:"default:0" json:"finalScore"`
}
