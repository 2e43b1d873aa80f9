package services

import (
	"github.com/translationdesk/platform-go/models"
)

// ProjectService serves the read side of clients and projects: the
// pickers shown when an agent starts a ticket. Management of either
// happens elsewhere.
type ProjectService struct {
	deps Deps
}

func NewProjectService(deps Deps) *ProjectService {
	return &ProjectService{deps: deps}
}

func (s *ProjectService) ListClients() ([]models.Client, error) {
	return s.deps.Repos.Project.ListClients()
}

func (s *ProjectService) GetProject(id uint) (*models.Project, error) {
	return s.deps.Repos.Project.GetByID(id)
}

// ListProjects returns active projects, narrowed to one client when
// clientID is non-zero.
func (s *ProjectService) ListProjects(clientID uint) ([]models.Project, error) {
	if clientID != 0 {
		return s.deps.Repos.Project.ListByClient(clientID)
	}
	return s.deps.Repos.Project.ListActive()
}
