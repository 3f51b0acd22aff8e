package repository

import (
	"github.com/solifood/foodlink/internal/apperr"
	"github.com/solifood/foodlink/internal/models"
	"gorm.io/gorm"
)

type PackageRepo struct{ DB *gorm.DB }

func NewPackageRepo(db *gorm.DB) *PackageRepo { return &PackageRepo{DB: db} }

func (r *PackageRepo) SelectOneByID(packageID uint) (*models.Package, error) {
	query := r.DB.Preload("Food").Preload("Storage").Where("id = ?", packageID)
	return selectOne[models.Package](query, "package", packageID)
}

func (r *PackageRepo) SelectAll() ([]models.Package, error) {
	return selectAll[models.Package](r.DB.Preload("Food").Preload("Storage"), "package")
}

func (r *PackageRepo) SelectPerPage(page int) (*Page[models.Package], error) {
	return selectPage[models.Package](r.DB, &models.Package{}, page, "package", "Food", "Storage")
}

func (r *PackageRepo) SelectBySearch(page int, search string) (*Page[models.Package], error) {
	query := r.DB.Where("description LIKE ?", contains(search))
	return selectPage[models.Package](query, &models.Package{}, page, "package", "Food", "Storage")
}

func (r *PackageRepo) Insert(newPackage *models.Package) (uint, error) {
	if err := r.DB.Create(newPackage).Error; err != nil {
		return 0, apperr.Access("package", nil, "creating", err)
	}
	return newPackage.ID, nil
}

func (r *PackageRepo) Update(packageID uint, updatePackage *models.Package) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var pkg models.Package
		if err := tx.Where("id = ?", packageID).First(&pkg).Error; err != nil {
			return err
		}
		pkg.Weight = updatePackage.Weight
		pkg.Description = updatePackage.Description
		pkg.ExpirationDate = updatePackage.ExpirationDate
		pkg.FoodID = updatePackage.FoodID
		pkg.StorageID = updatePackage.StorageID
		return tx.Save(&pkg).Error
	})
	if err != nil {
		return apperr.Access("package", packageID, "updating", err)
	}
	return nil
}

func (r *PackageRepo) Delete(packageID uint) error {
	if err := r.DB.Delete(&models.Package{}, packageID).Error; err != nil {
		return apperr.Access("package", packageID, "deleting", err)
	}
	return nil
}
