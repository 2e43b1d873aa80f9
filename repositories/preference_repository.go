package repositories

import (
	"errors"

	"github.com/translationdesk/platform-go/db"
	"github.com/translationdesk/platform-go/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PreferenceRepo interface {
	Get(userID uint, key string) (string, error)
	Set(userID uint, key, value string) error
	ListByUser(userID uint) ([]models.Preference, error)
}

type DBPreferenceRepo struct{}

func (r *DBPreferenceRepo) Get(userID uint, key string) (string, error) {
	var pref models.Preference
	err := db.DB.Where("user_id = ? AND key = ?", userID, key).First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return pref.Value, nil
}

func (r *DBPreferenceRepo) Set(userID uint, key, value string) error {
	pref := models.Preference{UserID: userID, Key: key, Value: value}
	return db.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&pref).Error
}

func (r *DBPreferenceRepo) ListByUser(userID uint) ([]models.Preference, error) {
	var prefs []models.Preference
	err := db.DB.Where("user_id = ?", userID).Find(&prefs).Error
	return prefs, err
}
