package store

import (
	"gorm.io/gorm"

	"campuscast/internal/models"
)

type Candidates struct {
	db *gorm.DB
}

// List preloads the applying user and the target election, the two
// joins every application view needs.
func (s *Candidates) List(filter Filter, orderBy string) ([]models.Candidate, error) {
	var candidates []models.Candidate
	q := apply(s.db.Preload("User").Preload("Election"), filter, orderBy)
	if err := q.Find(&candidates).Error; err != nil {
		return nil, translate(err)
	}
	return candidates, nil
}

func (s *Candidates) GetByID(id uint) (*models.Candidate, error) {
	var candidate models.Candidate
	if err := s.db.Preload("User").Preload("Election").First(&candidate, id).Error; err != nil {
		return nil, translate(err)
	}
	return &candidate, nil
}

// GetByUser returns a user's own application, if any. Should a user
// ever hold several rows, the newest one wins deterministically.
func (s *Candidates) GetByUser(userID uint) (*models.Candidate, error) {
	var candidate models.Candidate
	err := s.db.Preload("User").Preload("Election").
		Where("user_id = ?", userID).Order("created_at DESC").First(&candidate).Error
	if err != nil {
		return nil, translate(err)
	}
	return &candidate, nil
}

func (s *Candidates) Insert(candidate *models.Candidate) error {
	return translate(s.db.Create(candidate).Error)
}

func (s *Candidates) Update(id uint, patch map[string]any) error {
	res := s.db.Model(&models.Candidate{}).Where("id = ?", id).Updates(patch)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Candidates) Count(filter Filter) (int64, error) {
	var n int64
	if err := apply(s.db.Model(&models.Candidate{}), filter, "").Count(&n).Error; err != nil {
		return 0, translate(err)
	}
	return n, nil
}
