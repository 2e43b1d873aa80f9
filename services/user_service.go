package services

import (
	"time"

	"github.com/translationdesk/platform-go/dto"
	"github.com/translationdesk/platform-go/errs"
	"github.com/translationdesk/platform-go/middleware"
	"github.com/translationdesk/platform-go/models"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	deps Deps
}

func NewUserService(deps Deps) *UserService {
	return &UserService{deps: deps}
}

func (s *UserService) Register(input dto.CreateUserDTO) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:             input.Email,
		Password:          string(hashed),
		FirstName:         input.FirstName,
		LastName:          input.LastName,
		Role:              input.Role,
		PreferredLanguage: input.PreferredLanguage,
		Active:            true,
	}
	if err := s.deps.Repos.User.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Login(input dto.LoginDTO) (*dto.LoginResponse, error) {
	user, err := s.deps.Repos.User.GetByEmail(input.Email)
	if err != nil {
		return nil, errs.ErrInvalidCredentials
	}
	if !user.Active {
		return nil, errs.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(user.ID, user.Email, user.Role, 24*time.Hour)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *user}, nil
}

func (s *UserService) GetPreference(userID uint, key string) (string, error) {
	return s.deps.Repos.Preference.Get(userID, key)
}

func (s *UserService) SetPreference(userID uint, input dto.SetPreferenceDTO) error {
	return s.deps.Repos.Preference.Set(userID, input.Key, input.Value)
}

func (s *UserService) ListPreferences(userID uint) ([]models.Preference, error) {
	return s.deps.Repos.Preference.ListByUser(userID)
}
