package models

import (
	"time"

	"gorm.io/gorm"
)

// Vote is one ballot. The composite unique index enforces at most one
// vote per (election, voter) pair; the handler surfaces the violation
// as a conflict rather than pre-checking.
type Vote struct {
	gorm.Model
	ElectionID  uint      `json:"election_id" gorm:"uniqueIndex:idx_vote_election_voter"`
	VoterID     uint      `json:"voter_id" gorm:"uniqueIndex:idx_vote_election_voter"`
	CandidateID uint      `json:"candidate_id" gorm:"index"`
	Receipt     string    `json:"receipt" gorm:"uniqueIndex"`
	CastAt      time.Time `json:"cast_at"`

	Candidate Candidate `gorm:"foreignKey:CandidateID" json:"candidate,omitempty"`
	Election  Election  `gorm:"foreignKey:ElectionID" json:"election,omitempty"`
}
