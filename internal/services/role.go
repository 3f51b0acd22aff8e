package services

import (
	"github.com/solifood/foodlink/internal/apperr"
	"github.com/solifood/foodlink/internal/models"
	"github.com/solifood/foodlink/internal/repository"
)

type RoleService struct {
	Roles *repository.RoleRepo
}

func NewRoleService(roles *repository.RoleRepo) *RoleService {
	return &RoleService{Roles: roles}
}

func (s *RoleService) GetByID(roleID uint) (*models.Role, error) {
	role, err := s.Roles.SelectOneByID(roleID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, apperr.NotFound("Role", roleID)
	}
	return role, nil
}

func (s *RoleService) List() ([]models.Role, error) {
	return s.Roles.SelectAll()
}

func (s *RoleService) Page(page int) (*repository.Page[models.Role], error) {
	return s.Roles.SelectPerPage(page)
}

func (s *RoleService) Search(page int, search string) (*repository.Page[models.Role], error) {
	return s.Roles.SelectBySearch(page, search)
}

func (s *RoleService) Create(newRole *models.Role) (uint, error) {
	return s.Roles.Insert(newRole)
}

func (s *RoleService) Update(roleID uint, updateRole *models.Role) error {
	if _, err := s.GetByID(roleID); err != nil {
		return err
	}
	return s.Roles.Update(roleID, updateRole)
}

func (s *RoleService) Delete(roleID uint) error {
	if _, err := s.GetByID(roleID); err != nil {
		return err
	}
	return s.Roles.Delete(roleID)
}
