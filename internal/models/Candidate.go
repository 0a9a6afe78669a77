package models

import (
	"time"

	"gorm.io/gorm"
)

// Candidate application statuses.
const (
	CandidateDraft       = "draft"
	CandidateSubmitted   = "submitted"
	CandidateUnderReview = "under_review"
	CandidateApproved    = "approved"
	CandidateRejected    = "rejected"
)

// Candidate is one user's application to stand in one election.
// Approve/reject is a supervisor action; approved and rejected are final.
type Candidate struct {
	gorm.Model
	UserID     uint  `json:"user_id" gorm:"uniqueIndex:idx_candidate_user_election"`
	ElectionID *uint `json:"election_id" gorm:"uniqueIndex:idx_candidate_user_election"`

	RequestedSymbol string     `json:"requested_symbol"`
	ApprovedSymbol  string     `json:"approved_symbol"`
	Manifesto       string     `json:"manifesto"`
	IsApproved      bool       `json:"is_approved"`
	Status          string     `json:"status"` // "draft", "submitted", "under_review", "approved", "rejected"
	ApprovedAt      *time.Time `json:"approved_at"`

	User     User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Election *Election `gorm:"foreignKey:ElectionID" json:"election,omitempty"`
}
