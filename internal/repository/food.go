package repository

import (
	"github.com/solifood/foodlink/internal/apperr"
	"github.com/solifood/foodlink/internal/models"
	"gorm.io/gorm"
)

type CategoryRepo struct{ DB *gorm.DB }

func NewCategoryRepo(db *gorm.DB) *CategoryRepo { return &CategoryRepo{DB: db} }

func (r *CategoryRepo) SelectOneByID(categoryID uint) (*models.Category, error) {
	query := r.DB.Preload("Foods").Where("id = ?", categoryID)
	return selectOne[models.Category](query, "category", categoryID)
}

func (r *CategoryRepo) SelectAll() ([]models.Category, error) {
	return selectAll[models.Category](r.DB.Preload("Foods"), "category")
}

func (r *CategoryRepo) SelectPerPage(page int) (*Page[models.Category], error) {
	return selectPage[models.Category](r.DB, &models.Category{}, page, "category", "Foods")
}

func (r *CategoryRepo) SelectBySearch(page int, search string) (*Page[models.Category], error) {
	query := r.DB.Where("name LIKE ?", contains(search))
	return selectPage[models.Category](query, &models.Category{}, page, "category", "Foods")
}

func (r *CategoryRepo) Insert(newCategory *models.Category) (uint, error) {
	if err := r.DB.Create(newCategory).Error; err != nil {
		return 0, apperr.Access("category", nil, "creating", err)
	}
	return newCategory.ID, nil
}

func (r *CategoryRepo) Update(categoryID uint, updateCategory *models.Category) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.Where("id = ?", categoryID).First(&category).Error; err != nil {
			return err
		}
		category.Name = updateCategory.Name
		return tx.Save(&category).Error
	})
	if err != nil {
		return apperr.Access("category", categoryID, "updating", err)
	}
	return nil
}

func (r *CategoryRepo) Delete(categoryID uint) error {
	if err := r.DB.Delete(&models.Category{}, categoryID).Error; err != nil {
		return apperr.Access("category", categoryID, "deleting", err)
	}
	return nil
}

type FoodRepo struct{ DB *gorm.DB }

func NewFoodRepo(db *gorm.DB) *FoodRepo { return &FoodRepo{DB: db} }

func (r *FoodRepo) SelectOneByID(foodID uint) (*models.Food, error) {
	query := r.DB.Preload("Category").Preload("Packages").Where("id = ?", foodID)
	return selectOne[models.Food](query, "food", foodID)
}

func (r *FoodRepo) SelectAll() ([]models.Food, error) {
	return selectAll[models.Food](r.DB.Preload("Category").Preload("Packages"), "food")
}

func (r *FoodRepo) SelectPerPage(page int) (*Page[models.Food], error) {
	return selectPage[models.Food](r.DB, &models.Food{}, page, "food", "Category", "Packages")
}

func (r *FoodRepo) SelectBySearch(page int, search string) (*Page[models.Food], error) {
	query := r.DB.Where("name LIKE ?", contains(search))
	return selectPage[models.Food](query, &models.Food{}, page, "food", "Category", "Packages")
}

func (r *FoodRepo) Insert(newFood *models.Food) (uint, error) {
	if err := r.DB.Create(newFood).Error; err != nil {
		return 0, apperr.Access("food", nil, "creating", err)
	}
	return newFood.ID, nil
}

func (r *FoodRepo) Update(foodID uint, updateFood *models.Food) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var food models.Food
		if err := tx.Where("id = ?", foodID).First(&food).Error; err != nil {
			return err
		}
		food.Name = updateFood.Name
		food.Description = updateFood.Description
		food.CategoryID = updateFood.CategoryID
		return tx.Save(&food).Error
	})
	if err != nil {
		return apperr.Access("food", foodID, "updating", err)
	}
	return nil
}

func (r *FoodRepo) Delete(foodID uint) error {
	if err := r.DB.Delete(&models.Food{}, foodID).Error; err != nil {
		return apperr.Access("food", foodID, "deleting", err)
	}
	return nil
}
