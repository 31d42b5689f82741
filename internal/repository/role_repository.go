package repository

import (
	"gorm.io/gorm"

	"github.com/Gicotto/MyTaskApp/models"
)

// RoleRepository exposes lookups over the seeded roles.
type RoleRepository interface {
	List() ([]models.Role, error)
	// FindByNames returns the roles whose names appear in names.
	// Unknown names are simply absent from the result.
	FindByNames(names []string) ([]models.Role, error)
}

type roleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) List() ([]models.Role, error) {
	var roles []models.Role
	if err := r.db.Order("name").Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

func (r *roleRepository) FindByNames(names []string) ([]models.Role, error) {
	if len(names) == 0 {
		return nil, nil
	}
	var roles []models.Role
	if err := r.db.Where("name IN ?", names).Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}
