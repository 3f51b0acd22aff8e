package repository

import (
	"github.com/solifood/foodlink/internal/apperr"
	"github.com/solifood/foodlink/internal/models"
	"gorm.io/gorm"
)

type LocationRepo struct{ DB *gorm.DB }

func NewLocationRepo(db *gorm.DB) *LocationRepo { return &LocationRepo{DB: db} }

func (r *LocationRepo) SelectOneByID(locationID uint) (*models.Location, error) {
	query := r.DB.Preload("Deliveries").Where("id = ?", locationID)
	return selectOne[models.Location](query, "location", locationID)
}

func (r *LocationRepo) SelectAll() ([]models.Location, error) {
	return selectAll[models.Location](r.DB.Preload("Deliveries"), "location")
}

func (r *LocationRepo) SelectPerPage(page int) (*Page[models.Location], error) {
	return selectPage[models.Location](r.DB, &models.Location{}, page, "location", "Deliveries")
}

func (r *LocationRepo) SelectBySearch(page int, search string) (*Page[models.Location], error) {
	query := r.DB.Where("city LIKE ?", contains(search))
	return selectPage[models.Location](query, &models.Location{}, page, "location", "Deliveries")
}

func (r *LocationRepo) Insert(newLocation *models.Location) (uint, error) {
	if err := r.DB.Create(newLocation).Error; err != nil {
		return 0, apperr.Access("location", nil, "creating", err)
	}
	return newLocation.ID, nil
}

func (r *LocationRepo) Update(locationID uint, updateLocation *models.Location) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var location models.Location
		if err := tx.Where("id = ?", locationID).First(&location).Error; err != nil {
			return err
		}
		location.Address = updateLocation.Address
		location.PostalCode = updateLocation.PostalCode
		location.City = updateLocation.City
		location.Country = updateLocation.Country
		return tx.Save(&location).Error
	})
	if err != nil {
		return apperr.Access("location", locationID, "updating", err)
	}
	return nil
}

func (r *LocationRepo) Delete(locationID uint) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Location{ID: locationID}).Association("Deliveries").Clear(); err != nil {
			return err
		}
		return tx.Delete(&models.Location{}, locationID).Error
	})
	if err != nil {
		return apperr.Access("location", locationID, "deleting", err)
	}
	return nil
}

type CompanyRepo struct{ DB *gorm.DB }

func NewCompanyRepo(db *gorm.DB) *CompanyRepo { return &CompanyRepo{DB: db} }

func (r *CompanyRepo) SelectOneByID(companyID uint) (*models.Company, error) {
	query := r.DB.Preload("Shops").Where("id = ?", companyID)
	return selectOne[models.Company](query, "company", companyID)
}

func (r *CompanyRepo) SelectAll() ([]models.Company, error) {
	return selectAll[models.Company](r.DB.Preload("Shops"), "company")
}

func (r *CompanyRepo) SelectPerPage(page int) (*Page[models.Company], error) {
	return selectPage[models.Company](r.DB, &models.Company{}, page, "company", "Shops")
}

func (r *CompanyRepo) SelectBySearch(page int, search string) (*Page[models.Company], error) {
	query := r.DB.Where("name LIKE ?", contains(search))
	return selectPage[models.Company](query, &models.Company{}, page, "company", "Shops")
}

func (r *CompanyRepo) Insert(newCompany *models.Company) (uint, error) {
	if err := r.DB.Create(newCompany).Error; err != nil {
		return 0, apperr.Access("company", nil, "creating", err)
	}
	return newCompany.ID, nil
}

func (r *CompanyRepo) Update(companyID uint, updateCompany *models.Company) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var company models.Company
		if err := tx.Where("id = ?", companyID).First(&company).Error; err != nil {
			return err
		}
		company.Name = updateCompany.Name
		company.Siret = updateCompany.Siret
		company.Phone = updateCompany.Phone
		return tx.Save(&company).Error
	})
	if err != nil {
		return apperr.Access("company", companyID, "updating", err)
	}
	return nil
}

func (r *CompanyRepo) Delete(companyID uint) error {
	if err := r.DB.Delete(&models.Company{}, companyID).Error; err != nil {
		return apperr.Access("company", companyID, "deleting", err)
	}
	return nil
}

type ShopRepo struct{ DB *gorm.DB }

func NewShopRepo(db *gorm.DB) *ShopRepo { return &ShopRepo{DB: db} }

func (r *ShopRepo) SelectOneByID(shopID uint) (*models.Shop, error) {
	query := r.DB.Preload("Company").Preload("Location").Where("id = ?", shopID)
	return selectOne[models.Shop](query, "shop", shopID)
}

func (r *ShopRepo) SelectAll() ([]models.Shop, error) {
	return selectAll[models.Shop](r.DB.Preload("Company").Preload("Location"), "shop")
}

func (r *ShopRepo) SelectPerPage(page int) (*Page[models.Shop], error) {
	return selectPage[models.Shop](r.DB, &models.Shop{}, page, "shop", "Company", "Location")
}

func (r *ShopRepo) SelectBySearch(page int, search string) (*Page[models.Shop], error) {
	query := r.DB.Where("name LIKE ?", contains(search))
	return selectPage[models.Shop](query, &models.Shop{}, page, "shop", "Company", "Location")
}

func (r *ShopRepo) Insert(newShop *models.Shop) (uint, error) {
	if err := r.DB.Create(newShop).Error; err != nil {
		return 0, apperr.Access("shop", nil, "creating", err)
	}
	return newShop.ID, nil
}

func (r *ShopRepo) Update(shopID uint, updateShop *models.Shop) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var shop models.Shop
		if err := tx.Where("id = ?", shopID).First(&shop).Error; err != nil {
			return err
		}
		shop.Name = updateShop.Name
		shop.CompanyID = updateShop.CompanyID
		shop.LocationID = updateShop.LocationID
		return tx.Save(&shop).Error
	})
	if err != nil {
		return apperr.Access("shop", shopID, "updating", err)
	}
	return nil
}

func (r *ShopRepo) Delete(shopID uint) error {
	if err := r.DB.Delete(&models.Shop{}, shopID).Error; err != nil {
		return apperr.Access("shop", shopID, "deleting", err)
	}
	return nil
}

type WarehouseRepo struct{ DB *gorm.DB }

func NewWarehouseRepo(db *gorm.DB) *WarehouseRepo { return &WarehouseRepo{DB: db} }

func (r *WarehouseRepo) SelectOneByID(warehouseID uint) (*models.Warehouse, error) {
	query := r.DB.Preload("Location").Preload("Storages").Where("id = ?", warehouseID)
	return selectOne[models.Warehouse](query, "warehouse", warehouseID)
}

func (r *WarehouseRepo) SelectAll() ([]models.Warehouse, error) {
	return selectAll[models.Warehouse](r.DB.Preload("Location").Preload("Storages"), "warehouse")
}

func (r *WarehouseRepo) SelectPerPage(page int) (*Page[models.Warehouse], error) {
	return selectPage[models.Warehouse](r.DB, &models.Warehouse{}, page, "warehouse", "Location", "Storages")
}

func (r *WarehouseRepo) SelectBySearch(page int, search string) (*Page[models.Warehouse], error) {
	query := r.DB.Where("name LIKE ?", contains(search))
	return selectPage[models.Warehouse](query, &models.Warehouse{}, page, "warehouse", "Location", "Storages")
}

func (r *WarehouseRepo) Insert(newWarehouse *models.Warehouse) (uint, error) {
	if err := r.DB.Create(newWarehouse).Error; err != nil {
		return 0, apperr.Access("warehouse", nil, "creating", err)
	}
	return newWarehouse.ID, nil
}

func (r *WarehouseRepo) Update(warehouseID uint, updateWarehouse *models.Warehouse) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var warehouse models.Warehouse
		if err := tx.Where("id = ?", warehouseID).First(&warehouse).Error; err != nil {
			return err
		}
		warehouse.Name = updateWarehouse.Name
		warehouse.Capacity = updateWarehouse.Capacity
		warehouse.LocationID = updateWarehouse.LocationID
		return tx.Save(&warehouse).Error
	})
	if err != nil {
		return apperr.Access("warehouse", warehouseID, "updating", err)
	}
	return nil
}

func (r *WarehouseRepo) Delete(warehouseID uint) error {
	if err := r.DB.Delete(&models.Warehouse{}, warehouseID).Error; err != nil {
		return apperr.Access("warehouse", warehouseID, "deleting", err)
	}
	return nil
}

type StorageRepo struct{ DB *gorm.DB }

func NewStorageRepo(db *gorm.DB) *StorageRepo { return &StorageRepo{DB: db} }

func (r *StorageRepo) SelectOneByID(storageID uint) (*models.Storage, error) {
	query := r.DB.Preload("Warehouse").Preload("Packages").Where("id = ?", storageID)
	return selectOne[models.Storage](query, "storage", storageID)
}

func (r *StorageRepo) SelectAll() ([]models.Storage, error) {
	return selectAll[models.Storage](r.DB.Preload("Warehouse").Preload("Packages"), "storage")
}

func (r *StorageRepo) SelectPerPage(page int) (*Page[models.Storage], error) {
	return selectPage[models.Storage](r.DB, &models.Storage{}, page, "storage", "Warehouse", "Packages")
}

func (r *StorageRepo) SelectBySearch(page int, search string) (*Page[models.Storage], error) {
	query := r.DB.Where("name LIKE ?", contains(search))
	return selectPage[models.Storage](query, &models.Storage{}, page, "storage", "Warehouse", "Packages")
}

func (r *StorageRepo) Insert(newStorage *models.Storage) (uint, error) {
	if err := r.DB.Create(newStorage).Error; err != nil {
		return 0, apperr.Access("storage", nil, "creating", err)
	}
	return newStorage.ID, nil
}

func (r *StorageRepo) Update(storageID uint, updateStorage *models.Storage) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var storage models.Storage
		if err := tx.Where("id = ?", storageID).First(&storage).Error; err != nil {
			return err
		}
		storage.Name = updateStorage.Name
		storage.WarehouseID = updateStorage.WarehouseID
		return tx.Save(&storage).Error
	})
	if err != nil {
		return apperr.Access("storage", storageID, "updating", err)
	}
	return nil
}

func (r *StorageRepo) Delete(storageID uint) error {
	if err := r.DB.Delete(&models.Storage{}, storageID).Error; err != nil {
		return apperr.Access("storage", storageID, "deleting", err)
	}
	return nil
}
