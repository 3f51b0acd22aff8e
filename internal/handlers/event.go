package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/solifood/foodlink/internal/httpx"
	"github.com/solifood/foodlink/internal/models"
	"github.com/solifood/foodlink/internal/services"
	"github.com/solifood/foodlink/internal/validation"
)

type EventHandler struct {
	Service *services.EventService
}

func NewEventHandler(service *services.EventService) *EventHandler {
	return &EventHandler{Service: service}
}

type eventRequest struct {
	Name        string `json:"name"`
	Datetime    string `json:"datetime"`
	Description string `json:"description"`
	Capacity    *int   `json:"capacity"`
	Group       string `json:"group"`
	Place       string `json:"place"`
	TypeID      *uint  `json:"type_id"`
}

func (req *eventRequest) validate() validation.Violations {
	v := validation.Violations{}
	validation.Required("name", req.Name, v)
	validation.Datetime("datetime", req.Datetime, v)
	if req.Description != "" {
		validation.Match("description", req.Description, validation.DescriptionPattern, v)
	}
	validation.RequiredInt("capacity", req.Capacity, v)
	validation.Required("place", req.Place, v)
	validation.RequiredID("type_id", req.TypeID, v)
	return v
}

func (req *eventRequest) model() *models.Event {
	datetime, _ := time.Parse(validation.DatetimeLayout, req.Datetime)
	return &models.Event{
		Name:        req.Name,
		Datetime:    datetime,
		Description: req.Description,
		Capacity:    *req.Capacity,
		Group:       req.Group,
		Place:       req.Place,
		TypeID:      *req.TypeID,
	}
}

func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(r, "event_id")
	if !ok {
		badParam(w, "event_id")
		return
	}
	event, err := h.Service.GetByID(eventID)
	if err != nil {
		respondErr(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, event.Full())
}

func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.Service.List()
	if err != nil {
		respondErr(w, err)
		return
	}
	if events == nil {
		noneFound(w, "events")
		return
	}
	views := make([]models.EventView, 0, len(events))
	for i := range events {
		views = append(views, events[i].Full())
	}
	httpx.JSON(w, http.StatusOK, listPayload("events", views))
}

func (h *EventHandler) Page(w http.ResponseWriter, r *http.Request) {
	page, ok := pathPage(r)
	if !ok {
		badParam(w, "page")
		return
	}
	result, err := h.Service.Page(page)
	if err != nil {
		respondErr(w, err)
		return
	}
	if result == nil {
		noneFound(w, "events")
		return
	}
	views := make([]models.EventView, 0, len(result.Items))
	for i := range result.Items {
		views = append(views, result.Items[i].Full())
	}
	httpx.JSON(w, http.StatusOK, pagePayload("events", result.MaxPages, views))
}

func (h *EventHandler) Search(w http.ResponseWriter, r *http.Request) {
	page, ok := pathPage(r)
	if !ok {
		badParam(w, "page")
		return
	}
	result, err := h.Service.Search(page, r.PathValue("search"))
	if err != nil {
		respondErr(w, err)
		return
	}
	if result == nil {
		noneFound(w, "events")
		return
	}
	views := make([]models.EventView, 0, len(result.Items))
	for i := range result.Items {
		views = append(views, result.Items[i].Full())
	}
	httpx.JSON(w, http.StatusOK, pagePayload("events", result.MaxPages, views))
}

func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := decode(r, &req); err != nil {
		badBody(w)
		return
	}
	if v := req.validate(); !v.Empty() {
		httpx.JSON(w, http.StatusBadRequest, v)
		return
	}
	id, err := h.Service.Create(req.model())
	if err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusCreated, fmt.Sprintf("Event '%d' successfully created.", id))
}

func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(r, "event_id")
	if !ok {
		badParam(w, "event_id")
		return
	}
	var req eventRequest
	if err := decode(r, &req); err != nil {
		badBody(w)
		return
	}
	if v := req.validate(); !v.Empty() {
		httpx.JSON(w, http.StatusBadRequest, v)
		return
	}
	if err := h.Service.Update(eventID, req.model()); err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusOK, fmt.Sprintf("Event '%d' successfully updated.", eventID))
}

func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(r, "event_id")
	if !ok {
		badParam(w, "event_id")
		return
	}
	if err := h.Service.Delete(eventID); err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusOK, fmt.Sprintf("Event '%d' successfully deleted.", eventID))
}

type EventTypeHandler struct {
	Service *services.EventTypeService
}

func NewEventTypeHandler(service *services.EventTypeService) *EventTypeHandler {
	return &EventTypeHandler{Service: service}
}

func (h *EventTypeHandler) Get(w http.ResponseWriter, r *http.Request) {
	typeID, ok := pathID(r, "type_id")
	if !ok {
		badParam(w, "type_id")
		return
	}
	eventType, err := h.Service.GetByID(typeID)
	if err != nil {
		respondErr(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, eventType.Full())
}

func (h *EventTypeHandler) List(w http.ResponseWriter, r *http.Request) {
	types, err := h.Service.List()
	if err != nil {
		respondErr(w, err)
		return
	}
	if types == nil {
		noneFound(w, "types")
		return
	}
	views := make([]models.EventTypeView, 0, len(types))
	for i := range types {
		views = append(views, types[i].Full())
	}
	httpx.JSON(w, http.StatusOK, listPayload("types", views))
}

func (h *EventTypeHandler) Page(w http.ResponseWriter, r *http.Request) {
	page, ok := pathPage(r)
	if !ok {
		badParam(w, "page")
		return
	}
	result, err := h.Service.Page(page)
	if err != nil {
		respondErr(w, err)
		return
	}
	if result == nil {
		noneFound(w, "types")
		return
	}
	views := make([]models.EventTypeView, 0, len(result.Items))
	for i := range result.Items {
		views = append(views, result.Items[i].Full())
	}
	httpx.JSON(w, http.StatusOK, pagePayload("types", result.MaxPages, views))
}

func (h *EventTypeHandler) Search(w http.ResponseWriter, r *http.Request) {
	page, ok := pathPage(r)
	if !ok {
		badParam(w, "page")
		return
	}
	result, err := h.Service.Search(page, r.PathValue("search"))
	if err != nil {
		respondErr(w, err)
		return
	}
	if result == nil {
		noneFound(w, "types")
		return
	}
	views := make([]models.EventTypeView, 0, len(result.Items))
	for i := range result.Items {
		views = append(views, result.Items[i].Full())
	}
	httpx.JSON(w, http.StatusOK, pagePayload("types", result.MaxPages, views))
}

func (h *EventTypeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req roleRequest
	if err := decode(r, &req); err != nil {
		badBody(w)
		return
	}
	v := validation.Violations{}
	validation.Required("name", req.Name, v)
	if !v.Empty() {
		httpx.JSON(w, http.StatusBadRequest, v)
		return
	}
	id, err := h.Service.Create(&models.EventType{Name: req.Name})
	if err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusCreated, fmt.Sprintf("Type '%d' successfully created.", id))
}

func (h *EventTypeHandler) Update(w http.ResponseWriter, r *http.Request) {
	typeID, ok := pathID(r, "type_id")
	if !ok {
		badParam(w, "type_id")
		return
	}
	var req roleRequest
	if err := decode(r, &req); err != nil {
		badBody(w)
		return
	}
	v := validation.Violations{}
	validation.Required("name", req.Name, v)
	if !v.Empty() {
		httpx.JSON(w, http.StatusBadRequest, v)
		return
	}
	if err := h.Service.Update(typeID, &models.EventType{Name: req.Name}); err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusOK, fmt.Sprintf("Type '%d' successfully updated.", typeID))
}

func (h *EventTypeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	typeID, ok := pathID(r, "type_id")
	if !ok {
		badParam(w, "type_id")
		return
	}
	if err := h.Service.Delete(typeID); err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusOK, fmt.Sprintf("Type '%d' successfully deleted.", typeID))
}
