package services

import (
	"github.com/solifood/foodlink/internal/apperr"
	"github.com/solifood/foodlink/internal/models"
	"github.com/solifood/foodlink/internal/repository"
)

type DeliveryService struct {
	Deliveries *repository.DeliveryRepo
	Vehicles   *repository.VehicleRepo
	Locations  *repository.LocationRepo
	Packages   *repository.PackageRepo
}

func NewDeliveryService(deliveries *repository.DeliveryRepo, vehicles *repository.VehicleRepo, locations *repository.LocationRepo, packages *repository.PackageRepo) *DeliveryService {
	return &DeliveryService{Deliveries: deliveries, Vehicles: vehicles, Locations: locations, Packages: packages}
}

func (s *DeliveryService) GetByID(deliveryID uint) (*models.Delivery, error) {
	delivery, err := s.Deliveries.SelectOneByID(deliveryID)
	if err != nil {
		return nil, err
	}
	if delivery == nil {
		return nil, apperr.NotFound("Delivery", deliveryID)
	}
	return delivery, nil
}

func (s *DeliveryService) List() ([]models.Delivery, error) {
	return s.Deliveries.SelectAll()
}

func (s *DeliveryService) Page(page int) (*repository.Page[models.Delivery], error) {
	return s.Deliveries.SelectPerPage(page)
}

func (s *DeliveryService) Search(page int, search string) (*repository.Page[models.Delivery], error) {
	return s.Deliveries.SelectBySearch(page, search)
}

func (s *DeliveryService) Create(newDelivery *models.Delivery) (uint, error) {
	if err := s.checkVehicle(newDelivery.VehicleID); err != nil {
		return 0, err
	}
	return s.Deliveries.Insert(newDelivery)
}

func (s *DeliveryService) Update(deliveryID uint, updateDelivery *models.Delivery) error {
	if _, err := s.GetByID(deliveryID); err != nil {
		return err
	}
	if err := s.checkVehicle(updateDelivery.VehicleID); err != nil {
		return err
	}
	return s.Deliveries.Update(deliveryID, updateDelivery)
}

func (s *DeliveryService) Delete(deliveryID uint) error {
	if _, err := s.GetByID(deliveryID); err != nil {
		return err
	}
	return s.Deliveries.Delete(deliveryID)
}

// AddLocation appends a stop to the run.
func (s *DeliveryService) AddLocation(deliveryID, locationID uint) error {
	delivery, err := s.GetByID(deliveryID)
	if err != nil {
		return err
	}
	location, err := s.Locations.SelectOneByID(locationID)
	if err != nil {
		return err
	}
	if location == nil {
		return apperr.NotFound("Location", locationID)
	}
	for _, l := range delivery.Locations {
		if l.ID == locationID {
			return apperr.Conflict("Delivery id '%d' already delivers to location id '%d'.", deliveryID, locationID)
		}
	}
	return s.Deliveries.InsertLocation(deliveryID, locationID)
}

func (s *DeliveryService) RemoveLocation(deliveryID, locationID uint) error {
	delivery, err := s.GetByID(deliveryID)
	if err != nil {
		return err
	}
	for _, l := range delivery.Locations {
		if l.ID == locationID {
			return s.Deliveries.DeleteLocation(deliveryID, locationID)
		}
	}
	return apperr.NotFoundMsg("Delivery id '%d' does not deliver to location id '%d'.", deliveryID, locationID)
}

// AttachPackage loads a free package onto the run.
func (s *DeliveryService) AttachPackage(deliveryID, packageID uint) error {
	if _, err := s.GetByID(deliveryID); err != nil {
		return err
	}
	pkg, err := s.Packages.SelectOneByID(packageID)
	if err != nil {
		return err
	}
	if pkg == nil {
		return apperr.NotFound("Package", packageID)
	}
	if pkg.DeliveryID != nil {
		return apperr.Conflict("Package id '%d' already belongs to delivery id '%d'.", packageID, *pkg.DeliveryID)
	}
	return s.Deliveries.AttachPackage(deliveryID, packageID)
}

func (s *DeliveryService) DetachPackage(deliveryID, packageID uint) error {
	if _, err := s.GetByID(deliveryID); err != nil {
		return err
	}
	pkg, err := s.Packages.SelectOneByID(packageID)
	if err != nil {
		return err
	}
	if pkg == nil {
		return apperr.NotFound("Package", packageID)
	}
	if pkg.DeliveryID == nil || *pkg.DeliveryID != deliveryID {
		return apperr.NotFoundMsg("Package id '%d' does not belong to delivery id '%d'.", packageID, deliveryID)
	}
	return s.Deliveries.DetachPackage(deliveryID, packageID)
}

// Roadmap loads the run with its stops for the roadmap projection.
func (s *DeliveryService) Roadmap(deliveryID uint) (*models.Delivery, error) {
	return s.GetByID(deliveryID)
}

func (s *DeliveryService) checkVehicle(vehicleID uint) error {
	vehicle, err := s.Vehicles.SelectOneByID(vehicleID)
	if err != nil {
		return err
	}
	if vehicle == nil {
		return apperr.NotFound("Vehicle", vehicleID)
	}
	return nil
}
