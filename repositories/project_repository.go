package repositories

import (
	"errors"

	"github.com/translationdesk/platform-go/db"
	"github.com/translationdesk/platform-go/errs"
	"github.com/translationdesk/platform-go/models"
	"gorm.io/gorm"
)

type ProjectRepo interface {
	Create(project *models.Project) error
	GetByID(id uint) (*models.Project, error)
	Update(project *models.Project) error
	ListByClient(clientID uint) ([]models.Project, error)
	ListActive() ([]models.Project, error)
	CreateClient(client *models.Client) error
	GetClientByID(id uint) (*models.Client, error)
	ListClients() ([]models.Client, error)
}

type DBProjectRepo struct{}

func (r *DBProjectRepo) Create(project *models.Project) error {
	return db.DB.Create(project).Error
}

func (r *DBProjectRepo) GetByID(id uint) (*models.Project, error) {
	var project models.Project
	if err := db.DB.Preload("Client").First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

func (r *DBProjectRepo) Update(project *models.Project) error {
	return db.DB.Save(project).Error
}

func (r *DBProjectRepo) ListByClient(clientID uint) ([]models.Project, error) {
	var projects []models.Project
	err := db.DB.Where("client_id = ?", clientID).Order("name asc").Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) ListActive() ([]models.Project, error) {
	var projects []models.Project
	err := db.DB.Where("active = ?", true).Preload("Client").Order("name asc").Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) CreateClient(client *models.Client) error {
	return db.DB.Create(client).Error
}

func (r *DBProjectRepo) GetClientByID(id uint) (*models.Client, error) {
	var client models.Client
	if err := db.DB.First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *DBProjectRepo) ListClients() ([]models.Client, error) {
	var clients []models.Client
	err := db.DB.Order("name asc").Find(&clients).Error
	return clients, err
}
