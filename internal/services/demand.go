package services

import (
	"time"

	"github.com/solifood/foodlink/internal/apperr"
	"github.com/solifood/foodlink/internal/models"
	"github.com/solifood/foodlink/internal/repository"
)

type DemandService struct {
	Demands  *repository.DemandRepo
	Shops    *repository.ShopRepo
	Packages *repository.PackageRepo
}

func NewDemandService(demands *repository.DemandRepo, shops *repository.ShopRepo, packages *repository.PackageRepo) *DemandService {
	return &DemandService{Demands: demands, Shops: shops, Packages: packages}
}

func (s *DemandService) GetByID(demandID uint) (*models.Demand, error) {
	demand, err := s.Demands.SelectOneByID(demandID)
	if err != nil {
		return nil, err
	}
	if demand == nil {
		return nil, apperr.NotFound("Demand", demandID)
	}
	return demand, nil
}

func (s *DemandService) List() ([]models.Demand, error) {
	return s.Demands.SelectAll()
}

func (s *DemandService) Page(page int) (*repository.Page[models.Demand], error) {
	return s.Demands.SelectPerPage(page)
}

func (s *DemandService) Search(page int, search string) (*repository.Page[models.Demand], error) {
	return s.Demands.SelectBySearch(page, search)
}

func (s *DemandService) Create(newDemand *models.Demand) (uint, error) {
	if err := s.checkShop(newDemand.ShopID); err != nil {
		return 0, err
	}
	if newDemand.Status == models.DemandStatusSubmitted && newDemand.SubmittedDatetime == nil {
		now := time.Now()
		newDemand.SubmittedDatetime = &now
	}
	return s.Demands.Insert(newDemand)
}

// Update overwrites the demand. Moving into submitted status stamps the
// submission time once.
func (s *DemandService) Update(demandID uint, updateDemand *models.Demand) error {
	demand, err := s.GetByID(demandID)
	if err != nil {
		return err
	}
	if err := s.checkShop(updateDemand.ShopID); err != nil {
		return err
	}
	if updateDemand.Status >= models.DemandStatusSubmitted {
		if demand.SubmittedDatetime != nil {
			updateDemand.SubmittedDatetime = demand.SubmittedDatetime
		} else if updateDemand.SubmittedDatetime == nil {
			now := time.Now()
			updateDemand.SubmittedDatetime = &now
		}
	}
	return s.Demands.Update(demandID, updateDemand)
}

func (s *DemandService) Delete(demandID uint) error {
	if _, err := s.GetByID(demandID); err != nil {
		return err
	}
	return s.Demands.Delete(demandID)
}

// AttachPackage reserves a free package for the demand.
func (s *DemandService) AttachPackage(demandID, packageID uint) error {
	if _, err := s.GetByID(demandID); err != nil {
		return err
	}
	pkg, err := s.Packages.SelectOneByID(packageID)
	if err != nil {
		return err
	}
	if pkg == nil {
		return apperr.NotFound("Package", packageID)
	}
	if pkg.DemandID != nil {
		return apperr.Conflict("Package id '%d' already belongs to demand id '%d'.", packageID, *pkg.DemandID)
	}
	return s.Demands.AttachPackage(demandID, packageID)
}

func (s *DemandService) DetachPackage(demandID, packageID uint) error {
	if _, err := s.GetByID(demandID); err != nil {
		return err
	}
	pkg, err := s.Packages.SelectOneByID(packageID)
	if err != nil {
		return err
	}
	if pkg == nil {
		return apperr.NotFound("Package", packageID)
	}
	if pkg.DemandID == nil || *pkg.DemandID != demandID {
		return apperr.NotFoundMsg("Package id '%d' does not belong to demand id '%d'.", packageID, demandID)
	}
	return s.Demands.DetachPackage(demandID, packageID)
}

func (s *DemandService) checkShop(shopID uint) error {
	shop, err := s.Shops.SelectOneByID(shopID)
	if err != nil {
		return err
	}
	if shop == nil {
		return apperr.NotFound("Shop", shopID)
	}
	return nil
}
