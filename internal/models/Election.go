package models

import (
	"time"

	"gorm.io/gorm"
)

// Election lifecycle statuses. Transitions out of "scheduled" happen
// outside this service, the rows are only read here.
const (
	ElectionScheduled = "scheduled"
	ElectionActive    = "active"
	ElectionClosed    = "closed"
)

// Election is a single poll supervised by one supervisor account.
// Candidates apply into it and voters cast at most one vote each.
type Election struct {
	gorm.Model

	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	StartAt     *time.Time `json:"start_at"`
	EndAt       *time.Time `json:"end_at"`
	Status      string     `json:"status"` // "scheduled", "active", "closed"
	CreatedBy   uint       `json:"created_by"`

	Candidates []Candidate `gorm:"foreignKey:ElectionID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"candidates,omitempty"`
	Votes      []Vote      `gorm:"foreignKey:ElectionID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"votes,omitempty"`
}
