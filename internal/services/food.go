package services

import (
	"github.com/solifood/foodlink/internal/apperr"
	"github.com/solifood/foodlink/internal/models"
	"github.com/solifood/foodlink/internal/repository"
)

type FoodService struct {
	Foods      *repository.FoodRepo
	Categories *repository.CategoryRepo
}

func NewFoodService(foods *repository.FoodRepo, categories *repository.CategoryRepo) *FoodService {
	return &FoodService{Foods: foods, Categories: categories}
}

func (s *FoodService) GetByID(foodID uint) (*models.Food, error) {
	food, err := s.Foods.SelectOneByID(foodID)
	if err != nil {
		return nil, err
	}
	if food == nil {
		return nil, apperr.NotFound("Food", foodID)
	}
	return food, nil
}

func (s *FoodService) List() ([]models.Food, error) {
	return s.Foods.SelectAll()
}

func (s *FoodService) Page(page int) (*repository.Page[models.Food], error) {
	return s.Foods.SelectPerPage(page)
}

func (s *FoodService) Search(page int, search string) (*repository.Page[models.Food], error) {
	return s.Foods.SelectBySearch(page, search)
}

func (s *FoodService) Create(newFood *models.Food) (uint, error) {
	if err := s.checkCategory(newFood.CategoryID); err != nil {
		return 0, err
	}
	return s.Foods.Insert(newFood)
}

func (s *FoodService) Update(foodID uint, updateFood *models.Food) error {
	if _, err := s.GetByID(foodID); err != nil {
		return err
	}
	if err := s.checkCategory(updateFood.CategoryID); err != nil {
		return err
	}
	return s.Foods.Update(foodID, updateFood)
}

func (s *FoodService) Delete(foodID uint) error {
	if _, err := s.GetByID(foodID); err != nil {
		return err
	}
	return s.Foods.Delete(foodID)
}

func (s *FoodService) checkCategory(categoryID uint) error {
	category, err := s.Categories.SelectOneByID(categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return apperr.NotFound("Category", categoryID)
	}
	return nil
}

type CategoryService struct {
	Categories *repository.CategoryRepo
}

func NewCategoryService(categories *repository.CategoryRepo) *CategoryService {
	return &CategoryService{Categories: categories}
}

func (s *CategoryService) GetByID(categoryID uint) (*models.Category, error) {
	category, err := s.Categories.SelectOneByID(categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperr.NotFound("Category", categoryID)
	}
	return category, nil
}

func (s *CategoryService) List() ([]models.Category, error) {
	return s.Categories.SelectAll()
}

func (s *CategoryService) Page(page int) (*repository.Page[models.Category], error) {
	return s.Categories.SelectPerPage(page)
}

func (s *CategoryService) Search(page int, search string) (*repository.Page[models.Category], error) {
	return s.Categories.SelectBySearch(page, search)
}

func (s *CategoryService) Create(newCategory *models.Category) (uint, error) {
	return s.Categories.Insert(newCategory)
}

func (s *CategoryService) Update(categoryID uint, updateCategory *models.Category) error {
	if _, err := s.GetByID(categoryID); err != nil {
		return err
	}
	return s.Categories.Update(categoryID, updateCategory)
}

func (s *CategoryService) Delete(categoryID uint) error {
	if _, err := s.GetByID(categoryID); err != nil {
		return err
	}
	return s.Categories.Delete(categoryID)
}
