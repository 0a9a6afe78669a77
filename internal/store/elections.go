package store

import (
	"gorm.io/gorm"

	"campuscast/internal/models"
)

type Elections struct {
	db *gorm.DB
}

func (s *Elections) List(filter Filter, orderBy string) ([]models.Election, error) {
	var elections []models.Election
	if err := apply(s.db, filter, orderBy).Find(&elections).Error; err != nil {
		return nil, translate(err)
	}
	return elections, nil
}

func (s *Elections) GetByID(id uint) (*models.Election, error) {
	var election models.Election
	if err := s.db.First(&election, id).Error; err != nil {
		return nil, translate(err)
	}
	return &election, nil
}

func (s *Elections) Insert(election *models.Election) error {
	return translate(s.db.Create(election).Error)
}

func (s *Elections) Update(id uint, patch map[string]any) error {
	res := s.db.Model(&models.Election{}).Where("id = ?", id).Updates(patch)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Elections) Count(filter Filter) (int64, error) {
	var n int64
	if err := apply(s.db.Model(&models.Election{}), filter, "").Count(&n).Error; err != nil {
		return 0, translate(err)
	}
	return n, nil
}
