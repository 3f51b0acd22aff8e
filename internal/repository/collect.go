package repository

import (
	"github.com/solifood/foodlink/internal/apperr"
	"github.com/solifood/foodlink/internal/models"
	"gorm.io/gorm"
)

type CollectRepo struct{ DB *gorm.DB }

func NewCollectRepo(db *gorm.DB) *CollectRepo { return &CollectRepo{DB: db} }

func (r *CollectRepo) SelectOneByID(collectID uint) (*models.Collect, error) {
	query := r.DB.
		Preload("Vehicle").Preload("Storage").Preload("Demands").Preload("Users").
		Where("id = ?", collectID)
	return selectOne[models.Collect](query, "collect", collectID)
}

func (r *CollectRepo) SelectAll() ([]models.Collect, error) {
	query := r.DB.Preload("Vehicle").Preload("Storage").Preload("Demands").Preload("Users")
	return selectAll[models.Collect](query, "collect")
}

func (r *CollectRepo) SelectPerPage(page int) (*Page[models.Collect], error) {
	return selectPage[models.Collect](r.DB, &models.Collect{}, page, "collect",
		"Vehicle", "Storage", "Demands", "Users")
}

func (r *CollectRepo) SelectBySearch(page int, search string) (*Page[models.Collect], error) {
	query := r.DB.Where("CAST(datetime AS TEXT) LIKE ?", contains(search))
	return selectPage[models.Collect](query, &models.Collect{}, page, "collect",
		"Vehicle", "Storage", "Demands", "Users")
}

// Insert creates the run and attaches the initial demands in one transaction.
// The service has already checked that none of them belongs to another run.
func (r *CollectRepo) Insert(newCollect *models.Collect, demandIDs []uint) (uint, error) {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(newCollect).Error; err != nil {
			return err
		}
		if len(demandIDs) == 0 {
			return nil
		}
		return tx.Model(&models.Demand{}).
			Where("id IN ?", demandIDs).
			Update("collect_id", newCollect.ID).Error
	})
	if err != nil {
		return 0, apperr.Access("collect", nil, "creating", err)
	}
	return newCollect.ID, nil
}

func (r *CollectRepo) Update(collectID uint, updateCollect *models.Collect) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var collect models.Collect
		if err := tx.Where("id = ?", collectID).First(&collect).Error; err != nil {
			return err
		}
		collect.Datetime = updateCollect.Datetime
		collect.Status = updateCollect.Status
		collect.VehicleID = updateCollect.VehicleID
		collect.StorageID = updateCollect.StorageID
		return tx.Save(&collect).Error
	})
	if err != nil {
		return apperr.Access("collect", collectID, "updating", err)
	}
	return nil
}

func (r *CollectRepo) Delete(collectID uint) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Demand{}).Where("collect_id = ?", collectID).Update("collect_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Collect{ID: collectID}).Association("Users").Clear(); err != nil {
			return err
		}
		return tx.Delete(&models.Collect{}, collectID).Error
	})
	if err != nil {
		return apperr.Access("collect", collectID, "deleting", err)
	}
	return nil
}

func (r *CollectRepo) AttachDemand(collectID, demandID uint) error {
	err := r.DB.Model(&models.Demand{}).Where("id = ?", demandID).Update("collect_id", collectID).Error
	if err != nil {
		return apperr.Access("collect", collectID, "updating", err)
	}
	return nil
}

func (r *CollectRepo) DetachDemand(collectID, demandID uint) error {
	err := r.DB.Model(&models.Demand{}).
		Where("id = ? AND collect_id = ?", demandID, collectID).
		Update("collect_id", nil).Error
	if err != nil {
		return apperr.Access("collect", collectID, "updating", err)
	}
	return nil
}
