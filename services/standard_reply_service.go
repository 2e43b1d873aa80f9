package services

import (
	"fmt"
	"os"

	"github.com/translationdesk/platform-go/dto"
	"github.com/translationdesk/platform-go/models"
	"gopkg.in/yaml.v2"
)

type StandardReplyService struct {
	deps Deps
}

func NewStandardReplyService(deps Deps) *StandardReplyService {
	return &StandardReplyService{deps: deps}
}

func (s *StandardReplyService) Create(input dto.CreateStandardReplyDTO) (*models.StandardReply, error) {
	reply := &models.StandardReply{
		ProjectID: input.ProjectID,
		Title:     input.Title,
		Text:      input.Text,
		Language:  input.Language,
		SortOrder: input.SortOrder,
	}
	return reply, s.deps.Repos.StandardReply.Create(reply)
}

func (s *StandardReplyService) Update(id uint, input dto.UpdateStandardReplyDTO) (*models.StandardReply, error) {
	reply, err := s.deps.Repos.StandardReply.GetByID(id)
	if err != nil {
		return nil, err
	}
	if input.Title != "" {
		reply.Title = input.Title
	}
	if input.Text != "" {
		reply.Text = input.Text
	}
	if input.Language != "" {
		reply.Language = input.Language
	}
	if input.SortOrder != nil {
		reply.SortOrder = *input.SortOrder
	}
	return reply, s.deps.Repos.StandardReply.Update(reply)
}

func (s *StandardReplyService) Delete(id uint) error {
	return s.deps.Repos.StandardReply.Delete(id)
}

func (s *StandardReplyService) ListByProject(projectID uint) ([]models.StandardReply, error) {
	return s.deps.Repos.StandardReply.ListByProject(projectID)
}

type seedFile struct {
	RejectionCategories []struct {
		Key   string `yaml:"key"`
		Label string `yaml:"label"`
	} `yaml:"rejectionCategories"`
	StandardReplies []struct {
		ProjectID uint   `yaml:"projectId"`
		Title     string `yaml:"title"`
		Text      string `yaml:"text"`
		Language  string `yaml:"language"`
		SortOrder int    `yaml:"sortOrder"`
	} `yaml:"standardReplies"`
}

// SeedFromYAML loads rejection categories and standard replies from a
// seed file. Categories are upserted so reruns are safe.
func (s *StandardReplyService) SeedFromYAML(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("seed: read %s: %w", path, err)
	}
	var seed seedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return fmt.Errorf("seed: parse %s: %w", path, err)
	}

	for _, c := range seed.RejectionCategories {
		if err := s.deps.Repos.RejectionCategory.Upsert(&models.RejectionCategory{Key: c.Key, Label: c.Label}); err != nil {
			return fmt.Errorf("seed: category %s: %w", c.Key, err)
		}
	}
	for _, r := range seed.StandardReplies {
		reply := &models.StandardReply{
			ProjectID: r.ProjectID,
			Title:     r.Title,
			Text:      r.Text,
			Language:  r.Language,
			SortOrder: r.SortOrder,
		}
		if err := s.deps.Repos.StandardReply.Create(reply); err != nil {
			return fmt.Errorf("seed: reply %q: %w", r.Title, err)
		}
	}
	return nil
}
