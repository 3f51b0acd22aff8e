package repository

import (
	"github.com/solifood/foodlink/internal/apperr"
	"github.com/solifood/foodlink/internal/models"
	"gorm.io/gorm"
)

type VehicleRepo struct{ DB *gorm.DB }

func NewVehicleRepo(db *gorm.DB) *VehicleRepo { return &VehicleRepo{DB: db} }

func (r *VehicleRepo) SelectOneByID(vehicleID uint) (*models.Vehicle, error) {
	return selectOne[models.Vehicle](r.DB.Where("id = ?", vehicleID), "vehicle", vehicleID)
}

func (r *VehicleRepo) SelectAll() ([]models.Vehicle, error) {
	return selectAll[models.Vehicle](r.DB, "vehicle")
}

func (r *VehicleRepo) SelectPerPage(page int) (*Page[models.Vehicle], error) {
	return selectPage[models.Vehicle](r.DB, &models.Vehicle{}, page, "vehicle")
}

func (r *VehicleRepo) SelectBySearch(page int, search string) (*Page[models.Vehicle], error) {
	query := r.DB.Where("registration LIKE ?", contains(search))
	return selectPage[models.Vehicle](query, &models.Vehicle{}, page, "vehicle")
}

func (r *VehicleRepo) Insert(newVehicle *models.Vehicle) (uint, error) {
	if err := r.DB.Create(newVehicle).Error; err != nil {
		return 0, apperr.Access("vehicle", nil, "creating", err)
	}
	return newVehicle.ID, nil
}

func (r *VehicleRepo) Update(vehicleID uint, updateVehicle *models.Vehicle) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var vehicle models.Vehicle
		if err := tx.Where("id = ?", vehicleID).First(&vehicle).Error; err != nil {
			return err
		}
		vehicle.Registration = updateVehicle.Registration
		vehicle.Brand = updateVehicle.Brand
		vehicle.Model = updateVehicle.Model
		vehicle.Capacity = updateVehicle.Capacity
		return tx.Save(&vehicle).Error
	})
	if err != nil {
		return apperr.Access("vehicle", vehicleID, "updating", err)
	}
	return nil
}

func (r *VehicleRepo) Delete(vehicleID uint) error {
	if err := r.DB.Delete(&models.Vehicle{}, vehicleID).Error; err != nil {
		return apperr.Access("vehicle", vehicleID, "deleting", err)
	}
	return nil
}
