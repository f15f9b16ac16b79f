package services

import (
	"strings"
	"time"

	"github.com/parodie/restaurantBack/entity"
	"github.com/parodie/restaurantBack/repository"
	"github.com/parodie/restaurantBack/utils"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles staff login and admin-side account management.
type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{userRepo: repo, jwtSecret: secret, jwtTTL: ttl}
}

// Login checks username/password and issues a staff token. Deactivated
// accounts fail exactly like wrong credentials.
func (s *AuthService) Login(username, password string) (string, *entity.User, error) {
	username = strings.TrimSpace(username)
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if !user.Active {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateStaffToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Register creates a staff account (admin-only endpoint).
func (s *AuthService) Register(username, password, role string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	role = strings.ToLower(strings.TrimSpace(role))
	if !entity.ValidRole(role) {
		return nil, ErrInvalidRole
	}

	count, err := s.userRepo.CountByUsername(username)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username: username,
		Password: string(hashed),
		Role:     role,
		Active:   true,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) UpdateUser(id uint, updates map[string]any) (*entity.User, error) {
	if role, ok := updates["role"].(string); ok && !entity.ValidRole(role) {
		return nil, ErrInvalidRole
	}
	if _, err := s.userRepo.FindByID(id); err != nil {
		return nil, wrapNotFound(err)
	}
	if err := s.userRepo.Update(id, updates); err != nil {
		return nil, err
	}
	return s.userRepo.FindByID(id)
}

func (s *AuthService) ChangePassword(id uint, newPassword string) error {
	if _, err := s.userRepo.FindByID(id); err != nil {
		return wrapNotFound(err)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.userRepo.Update(id, map[string]any{"password": string(hashed)})
}

// Deactivate is the delete operation: the row stays (order attribution),
// the account stops authenticating.
func (s *AuthService) Deactivate(id uint) error {
	if _, err := s.userRepo.FindByID(id); err != nil {
		return wrapNotFound(err)
	}
	return s.userRepo.Update(id, map[string]any{"active": false})
}

func (s *AuthService) GetProfile(id uint) (*entity.User, error) {
	u, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return u, nil
}

func (s *AuthService) ListStaff(role string) ([]entity.User, error) {
	if role != "" && !entity.ValidRole(role) {
		return nil, ErrInvalidRole
	}
	return s.userRepo.List(role)
}
