package services

import (
	"github.com/solifood/foodlink/internal/apperr"
	"github.com/solifood/foodlink/internal/models"
	"github.com/solifood/foodlink/internal/repository"
)

type EventService struct {
	Events *repository.EventRepo
	Types  *repository.EventTypeRepo
}

func NewEventService(events *repository.EventRepo, types *repository.EventTypeRepo) *EventService {
	return &EventService{Events: events, Types: types}
}

func (s *EventService) GetByID(eventID uint) (*models.Event, error) {
	event, err := s.Events.SelectOneByID(eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, apperr.NotFound("Event", eventID)
	}
	return event, nil
}

func (s *EventService) List() ([]models.Event, error) {
	return s.Events.SelectAll()
}

func (s *EventService) Page(page int) (*repository.Page[models.Event], error) {
	return s.Events.SelectPerPage(page)
}

func (s *EventService) Search(page int, search string) (*repository.Page[models.Event], error) {
	return s.Events.SelectBySearch(page, search)
}

func (s *EventService) Create(newEvent *models.Event) (uint, error) {
	if err := s.checkType(newEvent.TypeID); err != nil {
		return 0, err
	}
	return s.Events.Insert(newEvent)
}

func (s *EventService) Update(eventID uint, updateEvent *models.Event) error {
	if _, err := s.GetByID(eventID); err != nil {
		return err
	}
	if err := s.checkType(updateEvent.TypeID); err != nil {
		return err
	}
	return s.Events.Update(eventID, updateEvent)
}

func (s *EventService) Delete(eventID uint) error {
	if _, err := s.GetByID(eventID); err != nil {
		return err
	}
	return s.Events.Delete(eventID)
}

func (s *EventService) checkType(typeID uint) error {
	eventType, err := s.Types.SelectOneByID(typeID)
	if err != nil {
		return err
	}
	if eventType == nil {
		return apperr.NotFound("Type", typeID)
	}
	return nil
}

type EventTypeService struct {
	Types *repository.EventTypeRepo
}

func NewEventTypeService(types *repository.EventTypeRepo) *EventTypeService {
	return &EventTypeService{Types: types}
}

func (s *EventTypeService) GetByID(typeID uint) (*models.EventType, error) {
	eventType, err := s.Types.SelectOneByID(typeID)
	if err != nil {
		return nil, err
	}
	if eventType == nil {
		return nil, apperr.NotFound("Type", typeID)
	}
	return eventType, nil
}

func (s *EventTypeService) List() ([]models.EventType, error) {
	return s.Types.SelectAll()
}

func (s *EventTypeService) Page(page int) (*repository.Page[models.EventType], error) {
	return s.Types.SelectPerPage(page)
}

func (s *EventTypeService) Search(page int, search string) (*repository.Page[models.EventType], error) {
	return s.Types.SelectBySearch(page, search)
}

func (s *EventTypeService) Create(newType *models.EventType) (uint, error) {
	return s.Types.Insert(newType)
}

func (s *EventTypeService) Update(typeID uint, updateType *models.EventType) error {
	if _, err := s.GetByID(typeID); err != nil {
		return err
	}
	return s.Types.Update(typeID, updateType)
}

func (s *EventTypeService) Delete(typeID uint) error {
	if _, err := s.GetByID(typeID); err != nil {
		return err
	}
	return s.Types.Delete(typeID)
}
