package services

import (
	"github.com/solifood/foodlink/internal/apperr"
	"github.com/solifood/foodlink/internal/models"
	"github.com/solifood/foodlink/internal/repository"
)

type VehicleService struct {
	Vehicles *repository.VehicleRepo
}

func NewVehicleService(vehicles *repository.VehicleRepo) *VehicleService {
	return &VehicleService{Vehicles: vehicles}
}

func (s *VehicleService) GetByID(vehicleID uint) (*models.Vehicle, error) {
	vehicle, err := s.Vehicles.SelectOneByID(vehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, apperr.NotFound("Vehicle", vehicleID)
	}
	return vehicle, nil
}

func (s *VehicleService) List() ([]models.Vehicle, error) {
	return s.Vehicles.SelectAll()
}

func (s *VehicleService) Page(page int) (*repository.Page[models.Vehicle], error) {
	return s.Vehicles.SelectPerPage(page)
}

func (s *VehicleService) Search(page int, search string) (*repository.Page[models.Vehicle], error) {
	return s.Vehicles.SelectBySearch(page, search)
}

func (s *VehicleService) Create(newVehicle *models.Vehicle) (uint, error) {
	return s.Vehicles.Insert(newVehicle)
}

func (s *VehicleService) Update(vehicleID uint, updateVehicle *models.Vehicle) error {
	if _, err := s.GetByID(vehicleID); err != nil {
		return err
	}
	return s.Vehicles.Update(vehicleID, updateVehicle)
}

func (s *VehicleService) Delete(vehicleID uint) error {
	if _, err := s.GetByID(vehicleID); err != nil {
		return err
	}
	return s.Vehicles.Delete(vehicleID)
}
