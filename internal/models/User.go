package models

import "gorm.io/gorm"

// Role values accepted by registration and the role gate.
const (
	RoleSupervisor = "supervisor"
	RoleCandidate  = "candidate"
	RoleVoter      = "voter"
	RolePublic     = "public"
)

type User struct {
	gorm.Model
	Name         string `json:"name"`
	Email        string `json:"email" gorm:"uniqueIndex"`
	PasswordHash string `json:"-"`
	Dept         string `json:"dept"`
	DOB          string `json:"dob"`
	Role         string `json:"role"` // "supervisor", "candidate", "voter", "public"

	// Actor-specific relation
	Candidate *Candidate `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"candidate,omitempty"`
}
