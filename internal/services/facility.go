package services

import (
	"github.com/solifood/foodlink/internal/apperr"
	"github.com/solifood/foodlink/internal/models"
	"github.com/solifood/foodlink/internal/repository"
)

type LocationService struct {
	Locations *repository.LocationRepo
}

func NewLocationService(locations *repository.LocationRepo) *LocationService {
	return &LocationService{Locations: locations}
}

func (s *LocationService) GetByID(locationID uint) (*models.Location, error) {
	location, err := s.Locations.SelectOneByID(locationID)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, apperr.NotFound("Location", locationID)
	}
	return location, nil
}

func (s *LocationService) List() ([]models.Location, error) {
	return s.Locations.SelectAll()
}

func (s *LocationService) Page(page int) (*repository.Page[models.Location], error) {
	return s.Locations.SelectPerPage(page)
}

func (s *LocationService) Search(page int, search string) (*repository.Page[models.Location], error) {
	return s.Locations.SelectBySearch(page, search)
}

func (s *LocationService) Create(newLocation *models.Location) (uint, error) {
	return s.Locations.Insert(newLocation)
}

func (s *LocationService) Update(locationID uint, updateLocation *models.Location) error {
	if _, err := s.GetByID(locationID); err != nil {
		return err
	}
	return s.Locations.Update(locationID, updateLocation)
}

func (s *LocationService) Delete(locationID uint) error {
	if _, err := s.GetByID(locationID); err != nil {
		return err
	}
	return s.Locations.Delete(locationID)
}

type CompanyService struct {
	Companies *repository.CompanyRepo
}

func NewCompanyService(companies *repository.CompanyRepo) *CompanyService {
	return &CompanyService{Companies: companies}
}

func (s *CompanyService) GetByID(companyID uint) (*models.Company, error) {
	company, err := s.Companies.SelectOneByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, apperr.NotFound("Company", companyID)
	}
	return company, nil
}

func (s *CompanyService) List() ([]models.Company, error) {
	return s.Companies.SelectAll()
}

func (s *CompanyService) Page(page int) (*repository.Page[models.Company], error) {
	return s.Companies.SelectPerPage(page)
}

func (s *CompanyService) Search(page int, search string) (*repository.Page[models.Company], error) {
	return s.Companies.SelectBySearch(page, search)
}

func (s *CompanyService) Create(newCompany *models.Company) (uint, error) {
	return s.Companies.Insert(newCompany)
}

func (s *CompanyService) Update(companyID uint, updateCompany *models.Company) error {
	if _, err := s.GetByID(companyID); err != nil {
		return err
	}
	return s.Companies.Update(companyID, updateCompany)
}

func (s *CompanyService) Delete(companyID uint) error {
	if _, err := s.GetByID(companyID); err != nil {
		return err
	}
	return s.Companies.Delete(companyID)
}

type ShopService struct {
	Shops     *repository.ShopRepo
	Companies *repository.CompanyRepo
	Locations *repository.LocationRepo
}

func NewShopService(shops *repository.ShopRepo, companies *repository.CompanyRepo, locations *repository.LocationRepo) *ShopService {
	return &ShopService{Shops: shops, Companies: companies, Locations: locations}
}

func (s *ShopService) GetByID(shopID uint) (*models.Shop, error) {
	shop, err := s.Shops.SelectOneByID(shopID)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, apperr.NotFound("Shop", shopID)
	}
	return shop, nil
}

func (s *ShopService) List() ([]models.Shop, error) {
	return s.Shops.SelectAll()
}

func (s *ShopService) Page(page int) (*repository.Page[models.Shop], error) {
	return s.Shops.SelectPerPage(page)
}

func (s *ShopService) Search(page int, search string) (*repository.Page[models.Shop], error) {
	return s.Shops.SelectBySearch(page, search)
}

func (s *ShopService) Create(newShop *models.Shop) (uint, error) {
	if err := s.checkRefs(newShop); err != nil {
		return 0, err
	}
	return s.Shops.Insert(newShop)
}

func (s *ShopService) Update(shopID uint, updateShop *models.Shop) error {
	if _, err := s.GetByID(shopID); err != nil {
		return err
	}
	if err := s.checkRefs(updateShop); err != nil {
		return err
	}
	return s.Shops.Update(shopID, updateShop)
}

func (s *ShopService) Delete(shopID uint) error {
	if _, err := s.GetByID(shopID); err != nil {
		return err
	}
	return s.Shops.Delete(shopID)
}

func (s *ShopService) checkRefs(shop *models.Shop) error {
	company, err := s.Companies.SelectOneByID(shop.CompanyID)
	if err != nil {
		return err
	}
	if company == nil {
		return apperr.NotFound("Company", shop.CompanyID)
	}
	if shop.LocationID != nil {
		location, err := s.Locations.SelectOneByID(*shop.LocationID)
		if err != nil {
			return err
		}
		if location == nil {
			return apperr.NotFound("Location", *shop.LocationID)
		}
	}
	return nil
}

type WarehouseService struct {
	Warehouses *repository.WarehouseRepo
	Locations  *repository.LocationRepo
}

func NewWarehouseService(warehouses *repository.WarehouseRepo, locations *repository.LocationRepo) *WarehouseService {
	return &WarehouseService{Warehouses: warehouses, Locations: locations}
}

func (s *WarehouseService) GetByID(warehouseID uint) (*models.Warehouse, error) {
	warehouse, err := s.Warehouses.SelectOneByID(warehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, apperr.NotFound("Warehouse", warehouseID)
	}
	return warehouse, nil
}

func (s *WarehouseService) List() ([]models.Warehouse, error) {
	return s.Warehouses.SelectAll()
}

func (s *WarehouseService) Page(page int) (*repository.Page[models.Warehouse], error) {
	return s.Warehouses.SelectPerPage(page)
}

func (s *WarehouseService) Search(page int, search string) (*repository.Page[models.Warehouse], error) {
	return s.Warehouses.SelectBySearch(page, search)
}

func (s *WarehouseService) Create(newWarehouse *models.Warehouse) (uint, error) {
	if err := s.checkLocation(newWarehouse.LocationID); err != nil {
		return 0, err
	}
	return s.Warehouses.Insert(newWarehouse)
}

func (s *WarehouseService) Update(warehouseID uint, updateWarehouse *models.Warehouse) error {
	if _, err := s.GetByID(warehouseID); err != nil {
		return err
	}
	if err := s.checkLocation(updateWarehouse.LocationID); err != nil {
		return err
	}
	return s.Warehouses.Update(warehouseID, updateWarehouse)
}

func (s *WarehouseService) Delete(warehouseID uint) error {
	if _, err := s.GetByID(warehouseID); err != nil {
		return err
	}
	return s.Warehouses.Delete(warehouseID)
}

func (s *WarehouseService) checkLocation(locationID *uint) error {
	if locationID == nil {
		return nil
	}
	location, err := s.Locations.SelectOneByID(*locationID)
	if err != nil {
		return err
	}
	if location == nil {
		return apperr.NotFound("Location", *locationID)
	}
	return nil
}

type StorageService struct {
	Storages   *repository.StorageRepo
	Warehouses *repository.WarehouseRepo
}

func NewStorageService(storages *repository.StorageRepo, warehouses *repository.WarehouseRepo) *StorageService {
	return &StorageService{Storages: storages, Warehouses: warehouses}
}

func (s *StorageService) GetByID(storageID uint) (*models.Storage, error) {
	storage, err := s.Storages.SelectOneByID(storageID)
	if err != nil {
		return nil, err
	}
	if storage == nil {
		return nil, apperr.NotFound("Storage", storageID)
	}
	return storage, nil
}

func (s *StorageService) List() ([]models.Storage, error) {
	return s.Storages.SelectAll()
}

func (s *StorageService) Page(page int) (*repository.Page[models.Storage], error) {
	return s.Storages.SelectPerPage(page)
}

func (s *StorageService) Search(page int, search string) (*repository.Page[models.Storage], error) {
	return s.Storages.SelectBySearch(page, search)
}

func (s *StorageService) Create(newStorage *models.Storage) (uint, error) {
	if err := s.checkWarehouse(newStorage.WarehouseID); err != nil {
		return 0, err
	}
	return s.Storages.Insert(newStorage)
}

func (s *StorageService) Update(storageID uint, updateStorage *models.Storage) error {
	if _, err := s.GetByID(storageID); err != nil {
		return err
	}
	if err := s.checkWarehouse(updateStorage.WarehouseID); err != nil {
		return err
	}
	return s.Storages.Update(storageID, updateStorage)
}

func (s *StorageService) Delete(storageID uint) error {
	if _, err := s.GetByID(storageID); err != nil {
		return err
	}
	return s.Storages.Delete(storageID)
}

func (s *StorageService) checkWarehouse(warehouseID uint) error {
	warehouse, err := s.Warehouses.SelectOneByID(warehouseID)
	if err != nil {
		return err
	}
	if warehouse == nil {
		return apperr.NotFound("Warehouse", warehouseID)
	}
	return nil
}
