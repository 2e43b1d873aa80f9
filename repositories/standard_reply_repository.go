package repositories

import (
	"errors"

	"github.com/translationdesk/platform-go/db"
	"github.com/translationdesk/platform-go/errs"
	"github.com/translationdesk/platform-go/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StandardReplyRepo interface {
	Create(reply *models.StandardReply) error
	GetByID(id uint) (*models.StandardReply, error)
	Update(reply *models.StandardReply) error
	Delete(id uint) error
	ListByProject(projectID uint) ([]models.StandardReply, error)
}

type DBStandardReplyRepo struct{}

func (r *DBStandardReplyRepo) Create(reply *models.StandardReply) error {
	return db.DB.Create(reply).Error
}

func (r *DBStandardReplyRepo) GetByID(id uint) (*models.StandardReply, error) {
	var reply models.StandardReply
	if err := db.DB.First(&reply, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrReplyNotFound
		}
		return nil, err
	}
	return &reply, nil
}

func (r *DBStandardReplyRepo) Update(reply *models.StandardReply) error {
	return db.DB.Save(reply).Error
}

func (r *DBStandardReplyRepo) Delete(id uint) error {
	return db.DB.Delete(&models.StandardReply{}, id).Error
}

func (r *DBStandardReplyRepo) ListByProject(projectID uint) ([]models.StandardReply, error) {
	var replies []models.StandardReply
	err := db.DB.Where("project_id = ?", projectID).
		Order("sort_order asc, title asc").Find(&replies).Error
	return replies, err
}

type RejectionCategoryRepo interface {
	Upsert(category *models.RejectionCategory) error
	List() ([]models.RejectionCategory, error)
}

type DBRejectionCategoryRepo struct{}

func (r *DBRejectionCategoryRepo) Upsert(category *models.RejectionCategory) error {
	return db.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"label"}),
	}).Create(category).Error
}

func (r *DBRejectionCategoryRepo) List() ([]models.RejectionCategory, error) {
	var categories []models.RejectionCategory
	err := db.DB.Order("key asc").Find(&categories).Error
	return categories, err
}
