package repository

import (
	"github.com/solifood/foodlink/internal/apperr"
	"github.com/solifood/foodlink/internal/models"
	"gorm.io/gorm"
)

type RoleRepo struct{ DB *gorm.DB }

func NewRoleRepo(db *gorm.DB) *RoleRepo { return &RoleRepo{DB: db} }

func (r *RoleRepo) SelectOneByID(roleID uint) (*models.Role, error) {
	query := r.DB.Preload("Users").Where("id = ?", roleID)
	return selectOne[models.Role](query, "role", roleID)
}

func (r *RoleRepo) SelectAll() ([]models.Role, error) {
	return selectAll[models.Role](r.DB, "role")
}

func (r *RoleRepo) SelectPerPage(page int) (*Page[models.Role], error) {
	return selectPage[models.Role](r.DB, &models.Role{}, page, "role")
}

func (r *RoleRepo) SelectBySearch(page int, search string) (*Page[models.Role], error) {
	query := r.DB.Where("name LIKE ?", contains(search))
	return selectPage[models.Role](query, &models.Role{}, page, "role")
}

func (r *RoleRepo) Insert(newRole *models.Role) (uint, error) {
	if err := r.DB.Create(newRole).Error; err != nil {
		return 0, apperr.Access("role", nil, "creating", err)
	}
	return newRole.ID, nil
}

func (r *RoleRepo) Update(roleID uint, updateRole *models.Role) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var role models.Role
		if err := tx.Where("id = ?", roleID).First(&role).Error; err != nil {
			return err
		}
		role.Name = updateRole.Name
		return tx.Save(&role).Error
	})
	if err != nil {
		return apperr.Access("role", roleID, "updating", err)
	}
	return nil
}

func (r *RoleRepo) Delete(roleID uint) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Role{ID: roleID}).Association("Users").Clear(); err != nil {
			return err
		}
		return tx.Delete(&models.Role{}, roleID).Error
	})
	if err != nil {
		return apperr.Access("role", roleID, "deleting", err)
	}
	return nil
}
