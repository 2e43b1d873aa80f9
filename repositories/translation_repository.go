package repositories

import (
	"errors"

	"github.com/translationdesk/platform-go/db"
	"github.com/translationdesk/platform-go/errs"
	"github.com/translationdesk/platform-go/models"
	"gorm.io/gorm"
)

type TranslationRepo interface {
	Create(entry *models.Translation) error
	GetByID(id string) (*models.Translation, error)
	Update(entry *models.Translation) error
	Delete(id string) error
	NextSeq(ticketID string) (int, error)
	ListByTicket(ticketID string) ([]models.Translation, error)
}

type DBTranslationRepo struct{}

func (r *DBTranslationRepo) Create(entry *models.Translation) error {
	return db.DB.Create(entry).Error
}

func (r *DBTranslationRepo) GetByID(id string) (*models.Translation, error) {
	var entry models.Translation
	if err := db.DB.First(&entry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrTranslationNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *DBTranslationRepo) Update(entry *models.Translation) error {
	return db.DB.Save(entry).Error
}

func (r *DBTranslationRepo) Delete(id string) error {
	return db.DB.Delete(&models.Translation{}, "id = ?", id).Error
}

func (r *DBTranslationRepo) NextSeq(ticketID string) (int, error) {
	var max *int
	err := db.DB.Model(&models.Translation{}).
		Where("ticket_id = ?", ticketID).
		Select("MAX(seq)").Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return 0, nil
	}
	return *max + 1, nil
}

func (r *DBTranslationRepo) ListByTicket(ticketID string) ([]models.Translation, error) {
	var entries []models.Translation
	err := db.DB.Where("ticket_id = ?", ticketID).Order("seq asc").Find(&entries).Error
	return entries, err
}
