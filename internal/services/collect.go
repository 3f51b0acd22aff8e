package services

import (
	"github.com/solifood/foodlink/internal/apperr"
	"github.com/solifood/foodlink/internal/models"
	"github.com/solifood/foodlink/internal/repository"
)

type CollectService struct {
	Collects *repository.CollectRepo
	Vehicles *repository.VehicleRepo
	Storages *repository.StorageRepo
	Demands  *repository.DemandRepo
}

func NewCollectService(collects *repository.CollectRepo, vehicles *repository.VehicleRepo, storages *repository.StorageRepo, demands *repository.DemandRepo) *CollectService {
	return &CollectService{Collects: collects, Vehicles: vehicles, Storages: storages, Demands: demands}
}

func (s *CollectService) GetByID(collectID uint) (*models.Collect, error) {
	collect, err := s.Collects.SelectOneByID(collectID)
	if err != nil {
		return nil, err
	}
	if collect == nil {
		return nil, apperr.NotFound("Collect", collectID)
	}
	return collect, nil
}

func (s *CollectService) List() ([]models.Collect, error) {
	return s.Collects.SelectAll()
}

func (s *CollectService) Page(page int) (*repository.Page[models.Collect], error) {
	return s.Collects.SelectPerPage(page)
}

func (s *CollectService) Search(page int, search string) (*repository.Page[models.Collect], error) {
	return s.Collects.SelectBySearch(page, search)
}

// Create plans a run. Every referenced demand must exist and be free of any
// other run; a demand already attached elsewhere rejects the whole insert.
func (s *CollectService) Create(newCollect *models.Collect, demandIDs []uint) (uint, error) {
	if err := s.checkRefs(newCollect); err != nil {
		return 0, err
	}
	for _, demandID := range demandIDs {
		demand, err := s.Demands.SelectOneByID(demandID)
		if err != nil {
			return 0, err
		}
		if demand == nil {
			return 0, apperr.NotFound("Demand", demandID)
		}
		if demand.CollectID != nil {
			return 0, apperr.Conflict("Demand id '%d' already belongs to collect id '%d'.", demandID, *demand.CollectID)
		}
	}
	return s.Collects.Insert(newCollect, demandIDs)
}

func (s *CollectService) Update(collectID uint, updateCollect *models.Collect) error {
	if _, err := s.GetByID(collectID); err != nil {
		return err
	}
	if err := s.checkRefs(updateCollect); err != nil {
		return err
	}
	return s.Collects.Update(collectID, updateCollect)
}

func (s *CollectService) Delete(collectID uint) error {
	if _, err := s.GetByID(collectID); err != nil {
		return err
	}
	return s.Collects.Delete(collectID)
}

func (s *CollectService) AttachDemand(collectID, demandID uint) error {
	if _, err := s.GetByID(collectID); err != nil {
		return err
	}
	demand, err := s.Demands.SelectOneByID(demandID)
	if err != nil {
		return err
	}
	if demand == nil {
		return apperr.NotFound("Demand", demandID)
	}
	if demand.CollectID != nil {
		return apperr.Conflict("Demand id '%d' already belongs to collect id '%d'.", demandID, *demand.CollectID)
	}
	return s.Collects.AttachDemand(collectID, demandID)
}

func (s *CollectService) DetachDemand(collectID, demandID uint) error {
	if _, err := s.GetByID(collectID); err != nil {
		return err
	}
	demand, err := s.Demands.SelectOneByID(demandID)
	if err != nil {
		return err
	}
	if demand == nil {
		return apperr.NotFound("Demand", demandID)
	}
	if demand.CollectID == nil || *demand.CollectID != collectID {
		return apperr.NotFoundMsg("Demand id '%d' does not belong to collect id '%d'.", demandID, collectID)
	}
	return s.Collects.DetachDemand(collectID, demandID)
}

func (s *CollectService) checkRefs(collect *models.Collect) error {
	vehicle, err := s.Vehicles.SelectOneByID(collect.VehicleID)
	if err != nil {
		return err
	}
	if vehicle == nil {
		return apperr.NotFound("Vehicle", collect.VehicleID)
	}
	storage, err := s.Storages.SelectOneByID(collect.StorageID)
	if err != nil {
		return err
	}
	if storage == nil {
		return apperr.NotFound("Storage", collect.StorageID)
	}
	return nil
}
