package store

import (
	"gorm.io/gorm"

	"campuscast/internal/models"
)

type Votes struct {
	db *gorm.DB
}

func (s *Votes) List(filter Filter, orderBy string) ([]models.Vote, error) {
	var votes []models.Vote
	if err := apply(s.db, filter, orderBy).Find(&votes).Error; err != nil {
		return nil, translate(err)
	}
	return votes, nil
}

func (s *Votes) GetByID(id uint) (*models.Vote, error) {
	var vote models.Vote
	if err := s.db.First(&vote, id).Error; err != nil {
		return nil, translate(err)
	}
	return &vote, nil
}

// Insert writes one ballot. The (election_id, voter_id) unique index
// turns a double vote into ErrDuplicate; there is no read-then-write
// race to worry about.
func (s *Votes) Insert(vote *models.Vote) error {
	return translate(s.db.Create(vote).Error)
}

func (s *Votes) Update(id uint, patch map[string]any) error {
	res := s.db.Model(&models.Vote{}).Where("id = ?", id).Updates(patch)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Votes) ListByElection(electionID uint) ([]models.Vote, error) {
	return s.List(Filter{"election_id": electionID}, "")
}

// VotedElections returns the set of election ids a voter has already
// voted in, for marking dashboard cards.
func (s *Votes) VotedElections(voterID uint) (map[uint]bool, error) {
	var votes []models.Vote
	if err := s.db.Select("election_id").Where("voter_id = ?", voterID).Find(&votes).Error; err != nil {
		return nil, translate(err)
	}
	voted := make(map[uint]bool, len(votes))
	for _, v := range votes {
		voted[v.ElectionID] = true
	}
	return voted, nil
}
