package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/spring-security-spring-cloud/auth-service/internal/models"
	"github.com/spring-security-spring-cloud/auth-service/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrInvalidCredentials covers both unknown users and wrong passwords
	// so callers cannot probe which usernames exist.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrEmailTaken         = errors.New("email is already in use")
	// ErrRoleNotFound means a catalog row is missing, which indicates a
	// broken deployment rather than a bad request.
	ErrRoleNotFound = errors.New("role is not found")
)

// LoginResponse is the payload returned after a successful signin.
type LoginResponse struct {
	Token string   `json:"token"`
	ID    int64    `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}

// AuthService orchestrates user registration and authentication.
type AuthService interface {
	Register(ctx context.Context, username, email, password string, roleNames []string) error
	Login(ctx context.Context, username, password string) (*LoginResponse, error)
}

type authService struct {
	userRepo   repository.UserRepository
	roleRepo   repository.RoleRepository
	jwtService JWTService
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(userRepo repository.UserRepository, roleRepo repository.RoleRepository, jwtService JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		roleRepo:   roleRepo,
		jwtService: jwtService,
	}
}

func (s *authService) Register(ctx context.Context, username, email, password string, roleNames []string) error {
	taken, err := s.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return err
	}
	if taken {
		return ErrUsernameTaken
	}

	taken, err = s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if taken {
		return ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	roles, err := s.resolveRoles(ctx, roleNames)
	if err != nil {
		return err
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Roles:        roles,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost a race against a concurrent signup. Check which unique
			// index fired so the caller gets the right duplicate error.
			if taken, checkErr := s.userRepo.ExistsByUsername(ctx, username); checkErr == nil && taken {
				return ErrUsernameTaken
			}
			return ErrEmailTaken
		}
		return err
	}

	return nil
}

// resolveRoles maps the requested role names to catalog rows. An empty
// request resolves to the base role; unrecognized names fall back to the
// base role rather than failing.
func (s *authService) resolveRoles(ctx context.Context, roleNames []string) ([]models.Role, error) {
	mapped := []string{models.RoleUser}
	if len(roleNames) > 0 {
		mapped = mapped[:0]
		seen := make(map[string]bool, len(roleNames))
		for _, requested := range roleNames {
			name := models.MapRoleName(requested)
			if !seen[name] {
				seen[name] = true
				mapped = append(mapped, name)
			}
		}
	}

	roles := make([]models.Role, 0, len(mapped))
	for _, name := range mapped {
		role, err := s.roleRepo.FindByName(ctx, name)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrRoleNotFound, name)
			}
			return nil, err
		}
		roles = append(roles, *role)
	}
	return roles, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Token: token,
		ID:    user.ID,
		Name:  user.Username,
		Email: user.Email,
		Roles: user.RoleNames(),
	}, nil
}
