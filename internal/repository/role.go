package repository

import (
	"context"
	"fmt"

	"github.com/spring-security-spring-cloud/auth-service/internal/models"
	"gorm.io/gorm"
)

// RoleRepository defines read access to the role catalog.
type RoleRepository interface {
	FindByName(ctx context.Context, name string) (*models.Role, error)
}

type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository creates a new RoleRepository instance.
func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) FindByName(ctx context.Context, name string) (*models.Role, error) {
	var role models.Role
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&role).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find role by name %s: %w", name, err)
	}
	return &role, nil
}
