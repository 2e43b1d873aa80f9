package repositories

import (
	"errors"

	"github.com/translationdesk/platform-go/db"
	"github.com/translationdesk/platform-go/errs"
	"github.com/translationdesk/platform-go/models"
	"gorm.io/gorm"
)

type UserRepo interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	ListByRole(role models.UserRole) ([]models.User, error)
}

type DBUserRepo struct{}

func (r *DBUserRepo) Create(user *models.User) error {
	return db.DB.Create(user).Error
}

func (r *DBUserRepo) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := db.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *DBUserRepo) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := db.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *DBUserRepo) Update(user *models.User) error {
	return db.DB.Save(user).Error
}

func (r *DBUserRepo) ListByRole(role models.UserRole) ([]models.User, error) {
	var users []models.User
	err := db.DB.Where("role = ? AND active = ?", role, true).Order("last_name asc").Find(&users).Error
	return users, err
}
