package handlers

import (
	"fmt"
	"net/http"

	"github.com/solifood/foodlink/internal/httpx"
	"github.com/solifood/foodlink/internal/models"
	"github.com/solifood/foodlink/internal/services"
	"github.com/solifood/foodlink/internal/validation"
)

type VehicleHandler struct {
	Service *services.VehicleService
}

func NewVehicleHandler(service *services.VehicleService) *VehicleHandler {
	return &VehicleHandler{Service: service}
}

type vehicleRequest struct {
	Registration string   `json:"registration"`
	Brand        string   `json:"brand"`
	Model        string   `json:"model"`
	Capacity     *float64 `json:"capacity"`
}

func (req *vehicleRequest) validate() validation.Violations {
	v := validation.Violations{}
	validation.Required("registration", req.Registration, v)
	validation.Required("brand", req.Brand, v)
	validation.Required("model", req.Model, v)
	if req.Capacity == nil || *req.Capacity <= 0 {
		v["capacity"] = "Invalid or missing parameter 'capacity'."
	}
	return v
}

func (req *vehicleRequest) model() *models.Vehicle {
	return &models.Vehicle{
		Registration: req.Registration,
		Brand:        req.Brand,
		Model:        req.Model,
		Capacity:     *req.Capacity,
	}
}

func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	vehicleID, ok := pathID(r, "vehicle_id")
	if !ok {
		badParam(w, "vehicle_id")
		return
	}
	vehicle, err := h.Service.GetByID(vehicleID)
	if err != nil {
		respondErr(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, vehicle.Full())
}

func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.Service.List()
	if err != nil {
		respondErr(w, err)
		return
	}
	if vehicles == nil {
		noneFound(w, "vehicles")
		return
	}
	views := make([]models.VehicleView, 0, len(vehicles))
	for i := range vehicles {
		views = append(views, vehicles[i].Full())
	}
	httpx.JSON(w, http.StatusOK, listPayload("vehicles", views))
}

func (h *VehicleHandler) Page(w http.ResponseWriter, r *http.Request) {
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
		noneFound(w, "vehicles")
		return
	}
	views := make([]models.VehicleView, 0, len(result.Items))
	for i := range result.Items {
		views = append(views, result.Items[i].Full())
	}
	httpx.JSON(w, http.StatusOK, pagePayload("vehicles", result.MaxPages, views))
}

func (h *VehicleHandler) Search(w http.ResponseWriter, r *http.Request) {
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
		noneFound(w, "vehicles")
		return
	}
	views := make([]models.VehicleView, 0, len(result.Items))
	for i := range result.Items {
		views = append(views, result.Items[i].Full())
	}
	httpx.JSON(w, http.StatusOK, pagePayload("vehicles", result.MaxPages, views))
}

func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req vehicleRequest
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
	httpx.Message(w, http.StatusCreated, fmt.Sprintf("Vehicle '%d' successfully created.", id))
}

func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	vehicleID, ok := pathID(r, "vehicle_id")
	if !ok {
		badParam(w, "vehicle_id")
		return
	}
	var req vehicleRequest
	if err := decode(r, &req); err != nil {
		badBody(w)
		return
	}
	if v := req.validate(); !v.Empty() {
		httpx.JSON(w, http.StatusBadRequest, v)
		return
	}
	if err := h.Service.Update(vehicleID, req.model()); err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusOK, fmt.Sprintf("Vehicle '%d' successfully updated.", vehicleID))
}

func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vehicleID, ok := pathID(r, "vehicle_id")
	if !ok {
		badParam(w, "vehicle_id")
		return
	}
	if err := h.Service.Delete(vehicleID); err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusOK, fmt.Sprintf("Vehicle '%d' successfully deleted.", vehicleID))
}
