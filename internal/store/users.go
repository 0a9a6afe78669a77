package store

import (
	"gorm.io/gorm"

	"campuscast/internal/models"
)

type Users struct {
	db *gorm.DB
}

func (s *Users) List(filter Filter, orderBy string) ([]models.User, error) {
	var users []models.User
	if err := apply(s.db, filter, orderBy).Find(&users).Error; err != nil {
		return nil, translate(err)
	}
	return users, nil
}

func (s *Users) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// GetByEmail looks a user up for login. The role and digest checks
// happen in the caller so a wrong role and a wrong password are
// indistinguishable to the client.
func (s *Users) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *Users) Insert(user *models.User) error {
	return translate(s.db.Create(user).Error)
}

func (s *Users) Update(id uint, patch map[string]any) error {
	res := s.db.Model(&models.User{}).Where("id = ?", id).Updates(patch)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Users) CountByRole(role string) (int64, error) {
	var n int64
	if err := s.db.Model(&models.User{}).Where("role = ?", role).Count(&n).Error; err != nil {
		return 0, translate(err)
	}
	return n, nil
}
