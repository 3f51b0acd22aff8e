package repository

import (
	"github.com/solifood/foodlink/internal/apperr"
	"github.com/solifood/foodlink/internal/models"
	"gorm.io/gorm"
)

type DeliveryRepo struct{ DB *gorm.DB }

func NewDeliveryRepo(db *gorm.DB) *DeliveryRepo { return &DeliveryRepo{DB: db} }

func (r *DeliveryRepo) SelectOneByID(deliveryID uint) (*models.Delivery, error) {
	query := r.DB.
		Preload("Vehicle").Preload("Packages").Preload("Users").Preload("Locations").
		Where("id = ?", deliveryID)
	return selectOne[models.Delivery](query, "delivery", deliveryID)
}

func (r *DeliveryRepo) SelectAll() ([]models.Delivery, error) {
	query := r.DB.Preload("Vehicle").Preload("Packages").Preload("Users").Preload("Locations")
	return selectAll[models.Delivery](query, "delivery")
}

func (r *DeliveryRepo) SelectPerPage(page int) (*Page[models.Delivery], error) {
	return selectPage[models.Delivery](r.DB, &models.Delivery{}, page, "delivery",
		"Vehicle", "Packages", "Users", "Locations")
}

func (r *DeliveryRepo) SelectBySearch(page int, search string) (*Page[models.Delivery], error) {
	query := r.DB.Where("CAST(datetime AS TEXT) LIKE ?", contains(search))
	return selectPage[models.Delivery](query, &models.Delivery{}, page, "delivery",
		"Vehicle", "Packages", "Users", "Locations")
}

func (r *DeliveryRepo) Insert(newDelivery *models.Delivery) (uint, error) {
	if err := r.DB.Create(newDelivery).Error; err != nil {
		return 0, apperr.Access("delivery", nil, "creating", err)
	}
	return newDelivery.ID, nil
}

func (r *DeliveryRepo) Update(deliveryID uint, updateDelivery *models.Delivery) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var delivery models.Delivery
		if err := tx.Where("id = ?", deliveryID).First(&delivery).Error; err != nil {
			return err
		}
		delivery.Datetime = updateDelivery.Datetime
		delivery.Roadmap = updateDelivery.Roadmap
		delivery.PDF = updateDelivery.PDF
		delivery.Status = updateDelivery.Status
		delivery.VehicleID = updateDelivery.VehicleID
		return tx.Save(&delivery).Error
	})
	if err != nil {
		return apperr.Access("delivery", deliveryID, "updating", err)
	}
	return nil
}

func (r *DeliveryRepo) Delete(deliveryID uint) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Package{}).Where("delivery_id = ?", deliveryID).Update("delivery_id", nil).Error; err != nil {
			return err
		}
		delivery := models.Delivery{ID: deliveryID}
		for _, assoc := range []string{"Users", "Locations"} {
			if err := tx.Model(&delivery).Association(assoc).Clear(); err != nil {
				return err
			}
		}
		return tx.Delete(&models.Delivery{}, deliveryID).Error
	})
	if err != nil {
		return apperr.Access("delivery", deliveryID, "deleting", err)
	}
	return nil
}

func (r *DeliveryRepo) InsertLocation(deliveryID, locationID uint) error {
	err := r.DB.Model(&models.Delivery{ID: deliveryID}).
		Association("Locations").Append(&models.Location{ID: locationID})
	if err != nil {
		return apperr.Access("delivery", deliveryID, "creating", err)
	}
	return nil
}

func (r *DeliveryRepo) DeleteLocation(deliveryID, locationID uint) error {
	err := r.DB.Model(&models.Delivery{ID: deliveryID}).
		Association("Locations").Delete(&models.Location{ID: locationID})
	if err != nil {
		return apperr.Access("delivery", deliveryID, "deleting", err)
	}
	return nil
}

func (r *DeliveryRepo) AttachPackage(deliveryID, packageID uint) error {
	err := r.DB.Model(&models.Package{}).Where("id = ?", packageID).Update("delivery_id", deliveryID).Error
	if err != nil {
		return apperr.Access("delivery", deliveryID, "updating", err)
	}
	return nil
}

func (r *DeliveryRepo) DetachPackage(deliveryID, packageID uint) error {
	err := r.DB.Model(&models.Package{}).
		Where("id = ? AND delivery_id = ?", packageID, deliveryID).
		Update("delivery_id", nil).Error
	if err != nil {
		return apperr.Access("delivery", deliveryID, "updating", err)
	}
	return nil
}
