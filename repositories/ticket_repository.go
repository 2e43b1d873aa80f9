package repositories

import (
	"errors"

	"github.com/translationdesk/platform-go/db"
	"github.com/translationdesk/platform-go/errs"
	"github.com/translationdesk/platform-go/models"
	"gorm.io/gorm"
)

// SLA states a listing can be narrowed to. Near-deadline uses the
// project's near_deadline_minutes window, falling back to
// NearDeadlineDefault when the project has none.
const (
	SLANearDeadline = "nearDeadline"
	SLAOverdue      = "overdue"
)

// TicketFilter narrows ticket listings. Zero values mean "any".
type TicketFilter struct {
	Statuses            []models.TicketStatus
	ProjectID           uint
	ClientID            uint
	OriginalLanguage    string
	TargetLanguage      string
	AgentID             uint
	LanguageExpertID    uint
	Search              string
	SLAState            string // "" | SLANearDeadline | SLAOverdue
	NearDeadlineDefault int    // minutes
	SortBy              string // "deadline" or "created_at"
	Limit               int
	Offset              int
}

type TicketRepo interface {
	Create(ticket *models.Ticket) error
	GetByID(id string) (*models.Ticket, error)
	Update(ticket *models.Ticket) error
	UpdateFields(id string, changes map[string]interface{}) error
	List(filter TicketFilter) ([]models.Ticket, int64, error)
	Delete(id string) error
}

type DBTicketRepo struct{}

func (r *DBTicketRepo) Create(ticket *models.Ticket) error {
	return db.DB.Create(ticket).Error
}

func (r *DBTicketRepo) GetByID(id string) (*models.Ticket, error) {
	var ticket models.Ticket
	err := db.DB.
		Preload("Translations", func(tx *gorm.DB) *gorm.DB { return tx.Order("seq asc") }).
		Preload("Client").
		Preload("Project").
		Preload("Agent").
		Preload("LanguageExpert").
		First(&ticket, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrTicketNotFound
		}
		return nil, err
	}
	return &ticket, nil
}

func (r *DBTicketRepo) Update(ticket *models.Ticket) error {
	return db.DB.Save(ticket).Error
}

func (r *DBTicketRepo) UpdateFields(id string, changes map[string]interface{}) error {
	res := db.DB.Model(&models.Ticket{}).Where("id = ?", id).Updates(changes)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errs.ErrTicketNotFound
	}
	return nil
}

func (r *DBTicketRepo) List(filter TicketFilter) ([]models.Ticket, int64, error) {
	tx := db.DB.Model(&models.Ticket{})

	if len(filter.Statuses) > 0 {
		tx = tx.Where("status IN ?", filter.Statuses)
	}
	if filter.ProjectID != 0 {
		tx = tx.Where("project_id = ?", filter.ProjectID)
	}
	if filter.ClientID != 0 {
		tx = tx.Where("tickets.client_id = ?", filter.ClientID)
	}
	if filter.OriginalLanguage != "" {
		tx = tx.Where("original_language = ?", filter.OriginalLanguage)
	}
	if filter.TargetLanguage != "" {
		tx = tx.Where("tickets.id IN (?)",
			db.DB.Model(&models.Translation{}).Select("ticket_id").
				Where("target_language = ?", filter.TargetLanguage))
	}
	if filter.AgentID != 0 {
		tx = tx.Where("agent_id = ?", filter.AgentID)
	}
	if filter.LanguageExpertID != 0 {
		tx = tx.Where("language_expert_id = ?", filter.LanguageExpertID)
	}
	switch filter.SLAState {
	case SLANearDeadline:
		tx = tx.Select("tickets.*").
			Joins("JOIN projects ON projects.id = tickets.project_id").
			Where("tickets.deadline > now()").
			Where("tickets.deadline <= now() + COALESCE(NULLIF(projects.near_deadline_minutes, 0), ?) * interval '1 minute'",
				filter.NearDeadlineDefault)
	case SLAOverdue:
		tx = tx.Where("deadline IS NOT NULL AND deadline <= now()")
	}

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		tx = tx.Where("ticket_number ILIKE ? OR tickets.id IN (?)", like,
			db.DB.Model(&models.Translation{}).Select("ticket_id").
				Where("text ILIKE ? OR translated_text ILIKE ?", like, like))
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch filter.SortBy {
	case "deadline":
		tx = tx.Order("tickets.deadline asc NULLS LAST")
	default:
		tx = tx.Order("tickets.created_at desc")
	}
	if filter.Limit > 0 {
		tx = tx.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		tx = tx.Offset(filter.Offset)
	}

	var tickets []models.Ticket
	err := tx.
		Preload("Translations", func(q *gorm.DB) *gorm.DB { return q.Order("seq asc") }).
		Preload("Client").
		Preload("Project").
		Preload("Agent").
		Preload("LanguageExpert").
		Find(&tickets).Error
	return tickets, total, err
}

func (r *DBTicketRepo) Delete(id string) error {
	return db.DB.Delete(&models.Ticket{}, "id = ?", id).Error
}
