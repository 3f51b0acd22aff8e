package services

import (
	"github.com/solifood/foodlink/internal/apperr"
	"github.com/solifood/foodlink/internal/models"
	"github.com/solifood/foodlink/internal/repository"
)

type PackageService struct {
	Packages *repository.PackageRepo
	Foods    *repository.FoodRepo
	Storages *repository.StorageRepo
}

func NewPackageService(packages *repository.PackageRepo, foods *repository.FoodRepo, storages *repository.StorageRepo) *PackageService {
	return &PackageService{Packages: packages, Foods: foods, Storages: storages}
}

func (s *PackageService) GetByID(packageID uint) (*models.Package, error) {
	pkg, err := s.Packages.SelectOneByID(packageID)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, apperr.NotFound("Package", packageID)
	}
	return pkg, nil
}

func (s *PackageService) List() ([]models.Package, error) {
	return s.Packages.SelectAll()
}

func (s *PackageService) Page(page int) (*repository.Page[models.Package], error) {
	return s.Packages.SelectPerPage(page)
}

func (s *PackageService) Search(page int, search string) (*repository.Page[models.Package], error) {
	return s.Packages.SelectBySearch(page, search)
}

func (s *PackageService) Create(newPackage *models.Package) (uint, error) {
	if err := s.checkRefs(newPackage); err != nil {
		return 0, err
	}
	return s.Packages.Insert(newPackage)
}

func (s *PackageService) Update(packageID uint, updatePackage *models.Package) error {
	if _, err := s.GetByID(packageID); err != nil {
		return err
	}
	if err := s.checkRefs(updatePackage); err != nil {
		return err
	}
	return s.Packages.Update(packageID, updatePackage)
}

func (s *PackageService) Delete(packageID uint) error {
	if _, err := s.GetByID(packageID); err != nil {
		return err
	}
	return s.Packages.Delete(packageID)
}

func (s *PackageService) checkRefs(pkg *models.Package) error {
	food, err := s.Foods.SelectOneByID(pkg.FoodID)
	if err != nil {
		return err
	}
	if food == nil {
		return apperr.NotFound("Food", pkg.FoodID)
	}
	storage, err := s.Storages.SelectOneByID(pkg.StorageID)
	if err != nil {
		return err
	}
	if storage == nil {
		return apperr.NotFound("Storage", pkg.StorageID)
	}
	return nil
}
