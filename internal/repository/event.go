package repository

import (
	"github.com/solifood/foodlink/internal/apperr"
	"github.com/solifood/foodlink/internal/models"
	"gorm.io/gorm"
)

type EventRepo struct{ DB *gorm.DB }

func NewEventRepo(db *gorm.DB) *EventRepo { return &EventRepo{DB: db} }

func (r *EventRepo) SelectOneByID(eventID uint) (*models.Event, error) {
	query := r.DB.Preload("Type").Preload("Users").Where("id = ?", eventID)
	return selectOne[models.Event](query, "event", eventID)
}

func (r *EventRepo) SelectAll() ([]models.Event, error) {
	return selectAll[models.Event](r.DB.Preload("Type").Preload("Users"), "event")
}

func (r *EventRepo) SelectPerPage(page int) (*Page[models.Event], error) {
	return selectPage[models.Event](r.DB, &models.Event{}, page, "event", "Type", "Users")
}

func (r *EventRepo) SelectBySearch(page int, search string) (*Page[models.Event], error) {
	query := r.DB.Where("name LIKE ?", contains(search))
	return selectPage[models.Event](query, &models.Event{}, page, "event", "Type", "Users")
}

func (r *EventRepo) Insert(newEvent *models.Event) (uint, error) {
	if err := r.DB.Create(newEvent).Error; err != nil {
		return 0, apperr.Access("event", nil, "creating", err)
	}
	return newEvent.ID, nil
}

func (r *EventRepo) Update(eventID uint, updateEvent *models.Event) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var event models.Event
		if err := tx.Where("id = ?", eventID).First(&event).Error; err != nil {
			return err
		}
		event.Name = updateEvent.Name
		event.Datetime = updateEvent.Datetime
		event.Description = updateEvent.Description
		event.Capacity = updateEvent.Capacity
		event.Group = updateEvent.Group
		event.Place = updateEvent.Place
		event.TypeID = updateEvent.TypeID
		return tx.Save(&event).Error
	})
	if err != nil {
		return apperr.Access("event", eventID, "updating", err)
	}
	return nil
}

func (r *EventRepo) Delete(eventID uint) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Event{ID: eventID}).Association("Users").Clear(); err != nil {
			return err
		}
		return tx.Delete(&models.Event{}, eventID).Error
	})
	if err != nil {
		return apperr.Access("event", eventID, "deleting", err)
	}
	return nil
}

type EventTypeRepo struct{ DB *gorm.DB }

func NewEventTypeRepo(db *gorm.DB) *EventTypeRepo { return &EventTypeRepo{DB: db} }

func (r *EventTypeRepo) SelectOneByID(typeID uint) (*models.EventType, error) {
	return selectOne[models.EventType](r.DB.Where("id = ?", typeID), "type", typeID)
}

func (r *EventTypeRepo) SelectAll() ([]models.EventType, error) {
	return selectAll[models.EventType](r.DB, "type")
}

func (r *EventTypeRepo) SelectPerPage(page int) (*Page[models.EventType], error) {
	return selectPage[models.EventType](r.DB, &models.EventType{}, page, "type")
}

func (r *EventTypeRepo) SelectBySearch(page int, search string) (*Page[models.EventType], error) {
	query := r.DB.Where("name LIKE ?", contains(search))
	return selectPage[models.EventType](query, &models.EventType{}, page, "type")
}

func (r *EventTypeRepo) Insert(newType *models.EventType) (uint, error) {
	if err := r.DB.Create(newType).Error; err != nil {
		return 0, apperr.Access("type", nil, "creating", err)
	}
	return newType.ID, nil
}

func (r *EventTypeRepo) Update(typeID uint, updateType *models.EventType) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var eventType models.EventType
		if err := tx.Where("id = ?", typeID).First(&eventType).Error; err != nil {
			return err
		}
		eventType.Name = updateType.Name
		return tx.Save(&eventType).Error
	})
	if err != nil {
		return apperr.Access("type", typeID, "updating", err)
	}
	return nil
}

func (r *EventTypeRepo) Delete(typeID uint) error {
	if err := r.DB.Delete(&models.EventType{}, typeID).Error; err != nil {
		return apperr.Access("type", typeID, "deleting", err)
	}
	return nil
}
