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

type DeliveryHandler struct {
	Service *services.DeliveryService
}

func NewDeliveryHandler(service *services.DeliveryService) *DeliveryHandler {
	return &DeliveryHandler{Service: service}
}

type deliveryRequest struct {
	Datetime  string `json:"datetime"`
	Roadmap   string `json:"roadmap"`
	PDF       string `json:"pdf"`
	Status    int    `json:"status"`
	VehicleID *uint  `json:"vehicle_id"`
}

func (req *deliveryRequest) validate() validation.Violations {
	v := validation.Violations{}
	validation.Datetime("datetime", req.Datetime, v)
	validation.RequiredID("vehicle_id", req.VehicleID, v)
	return v
}

func (req *deliveryRequest) model() *models.Delivery {
	datetime, _ := time.Parse(validation.DatetimeLayout, req.Datetime)
	return &models.Delivery{
		Datetime:  datetime,
		Roadmap:   req.Roadmap,
		PDF:       req.PDF,
		Status:    req.Status,
		VehicleID: *req.VehicleID,
	}
}

func (h *DeliveryHandler) Get(w http.ResponseWriter, r *http.Request) {
	deliveryID, ok := pathID(r, "delivery_id")
	if !ok {
		badParam(w, "delivery_id")
		return
	}
	delivery, err := h.Service.GetByID(deliveryID)
	if err != nil {
		respondErr(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, delivery.Full())
}

func (h *DeliveryHandler) List(w http.ResponseWriter, r *http.Request) {
	deliveries, err := h.Service.List()
	if err != nil {
		respondErr(w, err)
		return
	}
	if deliveries == nil {
		noneFound(w, "deliveries")
		return
	}
	views := make([]models.DeliveryView, 0, len(deliveries))
	for i := range deliveries {
		views = append(views, deliveries[i].Full())
	}
	httpx.JSON(w, http.StatusOK, listPayload("deliveries", views))
}

func (h *DeliveryHandler) Page(w http.ResponseWriter, r *http.Request) {
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
		noneFound(w, "deliveries")
		return
	}
	views := make([]models.DeliveryView, 0, len(result.Items))
	for i := range result.Items {
		views = append(views, result.Items[i].Full())
	}
	httpx.JSON(w, http.StatusOK, pagePayload("deliveries", result.MaxPages, views))
}

func (h *DeliveryHandler) Search(w http.ResponseWriter, r *http.Request) {
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
		noneFound(w, "deliveries")
		return
	}
	views := make([]models.DeliveryView, 0, len(result.Items))
	for i := range result.Items {
		views = append(views, result.Items[i].Full())
	}
	httpx.JSON(w, http.StatusOK, pagePayload("deliveries", result.MaxPages, views))
}

func (h *DeliveryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req deliveryRequest
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
	httpx.Message(w, http.StatusCreated, fmt.Sprintf("Delivery '%d' successfully created.", id))
}

func (h *DeliveryHandler) Update(w http.ResponseWriter, r *http.Request) {
	deliveryID, ok := pathID(r, "delivery_id")
	if !ok {
		badParam(w, "delivery_id")
		return
	}
	var req deliveryRequest
	if err := decode(r, &req); err != nil {
		badBody(w)
		return
	}
	if v := req.validate(); !v.Empty() {
		httpx.JSON(w, http.StatusBadRequest, v)
		return
	}
	if err := h.Service.Update(deliveryID, req.model()); err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusOK, fmt.Sprintf("Delivery '%d' successfully updated.", deliveryID))
}

func (h *DeliveryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deliveryID, ok := pathID(r, "delivery_id")
	if !ok {
		badParam(w, "delivery_id")
		return
	}
	if err := h.Service.Delete(deliveryID); err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusOK, fmt.Sprintf("Delivery '%d' successfully deleted.", deliveryID))
}

func (h *DeliveryHandler) AddLocation(w http.ResponseWriter, r *http.Request) {
	deliveryID, locationID, ok := twoIDs(w, r, "delivery_id", "location_id")
	if !ok {
		return
	}
	if err := h.Service.AddLocation(deliveryID, locationID); err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusCreated, fmt.Sprintf("Delivery id '%d' successfully delivers to location id '%d'.", deliveryID, locationID))
}

func (h *DeliveryHandler) RemoveLocation(w http.ResponseWriter, r *http.Request) {
	deliveryID, locationID, ok := twoIDs(w, r, "delivery_id", "location_id")
	if !ok {
		return
	}
	if err := h.Service.RemoveLocation(deliveryID, locationID); err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusOK, fmt.Sprintf("Delivery id '%d' no longer delivers to location id '%d'.", deliveryID, locationID))
}

func (h *DeliveryHandler) AttachPackage(w http.ResponseWriter, r *http.Request) {
	deliveryID, packageID, ok := twoIDs(w, r, "delivery_id", "package_id")
	if !ok {
		return
	}
	if err := h.Service.AttachPackage(deliveryID, packageID); err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusCreated, fmt.Sprintf("Package id '%d' successfully added to delivery id '%d'.", packageID, deliveryID))
}

func (h *DeliveryHandler) DetachPackage(w http.ResponseWriter, r *http.Request) {
	deliveryID, packageID, ok := twoIDs(w, r, "delivery_id", "package_id")
	if !ok {
		return
	}
	if err := h.Service.DetachPackage(deliveryID, packageID); err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusOK, fmt.Sprintf("Package id '%d' successfully removed from delivery id '%d'.", packageID, deliveryID))
}

// Roadmap serves the run's paperwork plus its stops.
func (h *DeliveryHandler) Roadmap(w http.ResponseWriter, r *http.Request) {
	deliveryID, ok := pathID(r, "delivery_id")
	if !ok {
		badParam(w, "delivery_id")
		return
	}
	delivery, err := h.Service.Roadmap(deliveryID)
	if err != nil {
		respondErr(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, delivery.RoadmapFull())
}
