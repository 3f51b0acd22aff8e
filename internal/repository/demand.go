package repository

import (
	"github.com/solifood/foodlink/internal/apperr"
	"github.com/solifood/foodlink/internal/models"
	"gorm.io/gorm"
)

type DemandRepo struct{ DB *gorm.DB }

func NewDemandRepo(db *gorm.DB) *DemandRepo { return &DemandRepo{DB: db} }

func (r *DemandRepo) SelectOneByID(demandID uint) (*models.Demand, error) {
	query := r.DB.Preload("Shop").Preload("Packages").Where("id = ?", demandID)
	return selectOne[models.Demand](query, "demand", demandID)
}

func (r *DemandRepo) SelectAll() ([]models.Demand, error) {
	return selectAll[models.Demand](r.DB.Preload("Shop").Preload("Packages"), "demand")
}

func (r *DemandRepo) SelectPerPage(page int) (*Page[models.Demand], error) {
	return selectPage[models.Demand](r.DB, &models.Demand{}, page, "demand", "Shop", "Packages")
}

func (r *DemandRepo) SelectBySearch(page int, search string) (*Page[models.Demand], error) {
	query := r.DB.Where("additional LIKE ?", contains(search))
	return selectPage[models.Demand](query, &models.Demand{}, page, "demand", "Shop", "Packages")
}

func (r *DemandRepo) Insert(newDemand *models.Demand) (uint, error) {
	if err := r.DB.Create(newDemand).Error; err != nil {
		return 0, apperr.Access("demand", nil, "creating", err)
	}
	return newDemand.ID, nil
}

func (r *DemandRepo) Update(demandID uint, updateDemand *models.Demand) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var demand models.Demand
		if err := tx.Where("id = ?", demandID).First(&demand).Error; err != nil {
			return err
		}
		demand.Status = updateDemand.Status
		demand.SubmittedDatetime = updateDemand.SubmittedDatetime
		demand.LimitDatetime = updateDemand.LimitDatetime
		demand.Additional = updateDemand.Additional
		demand.PDF = updateDemand.PDF
		demand.QRCode = updateDemand.QRCode
		demand.ShopID = updateDemand.ShopID
		return tx.Save(&demand).Error
	})
	if err != nil {
		return apperr.Access("demand", demandID, "updating", err)
	}
	return nil
}

// Delete detaches the demand's packages before removing the row so the
// packages stay available for a later demand.
func (r *DemandRepo) Delete(demandID uint) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Package{}).Where("demand_id = ?", demandID).Update("demand_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Demand{}, demandID).Error
	})
	if err != nil {
		return apperr.Access("demand", demandID, "deleting", err)
	}
	return nil
}

func (r *DemandRepo) AttachPackage(demandID, packageID uint) error {
	err := r.DB.Model(&models.Package{}).Where("id = ?", packageID).Update("demand_id", demandID).Error
	if err != nil {
		return apperr.Access("demand", demandID, "updating", err)
	}
	return nil
}

func (r *DemandRepo) DetachPackage(demandID, packageID uint) error {
	err := r.DB.Model(&models.Package{}).
		Where("id = ? AND demand_id = ?", packageID, demandID).
		Update("demand_id", nil).Error
	if err != nil {
		return apperr.Access("demand", demandID, "updating", err)
	}
	return nil
}
