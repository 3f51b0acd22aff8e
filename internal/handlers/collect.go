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

type CollectHandler struct {
	Service *services.CollectService
}

func NewCollectHandler(service *services.CollectService) *CollectHandler {
	return &CollectHandler{Service: service}
}

type collectRequest struct {
	Datetime  string `json:"datetime"`
	Status    int    `json:"status"`
	VehicleID *uint  `json:"vehicle_id"`
	StorageID *uint  `json:"storage_id"`
	DemandIDs []uint `json:"demand_ids"`
}

func (req *collectRequest) validate() validation.Violations {
	v := validation.Violations{}
	validation.Datetime("datetime", req.Datetime, v)
	validation.RequiredID("vehicle_id", req.VehicleID, v)
	validation.RequiredID("storage_id", req.StorageID, v)
	return v
}

func (req *collectRequest) model() *models.Collect {
	datetime, _ := time.Parse(validation.DatetimeLayout, req.Datetime)
	return &models.Collect{
		Datetime:  datetime,
		Status:    req.Status,
		VehicleID: *req.VehicleID,
		StorageID: *req.StorageID,
	}
}

func (h *CollectHandler) Get(w http.ResponseWriter, r *http.Request) {
	collectID, ok := pathID(r, "collect_id")
	if !ok {
		badParam(w, "collect_id")
		return
	}
	collect, err := h.Service.GetByID(collectID)
	if err != nil {
		respondErr(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, collect.Full())
}

func (h *CollectHandler) List(w http.ResponseWriter, r *http.Request) {
	collects, err := h.Service.List()
	if err != nil {
		respondErr(w, err)
		return
	}
	if collects == nil {
		noneFound(w, "collects")
		return
	}
	views := make([]models.CollectView, 0, len(collects))
	for i := range collects {
		views = append(views, collects[i].Full())
	}
	httpx.JSON(w, http.StatusOK, listPayload("collects", views))
}

func (h *CollectHandler) Page(w http.ResponseWriter, r *http.Request) {
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
		noneFound(w, "collects")
		return
	}
	views := make([]models.CollectView, 0, len(result.Items))
	for i := range result.Items {
		views = append(views, result.Items[i].Full())
	}
	httpx.JSON(w, http.StatusOK, pagePayload("collects", result.MaxPages, views))
}

func (h *CollectHandler) Search(w http.ResponseWriter, r *http.Request) {
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
		noneFound(w, "collects")
		return
	}
	views := make([]models.CollectView, 0, len(result.Items))
	for i := range result.Items {
		views = append(views, result.Items[i].Full())
	}
	httpx.JSON(w, http.StatusOK, pagePayload("collects", result.MaxPages, views))
}

// Create plans a run over the listed demands; a demand already booked by
// another run rejects the whole request.
func (h *CollectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req collectRequest
	if err := decode(r, &req); err != nil {
		badBody(w)
		return
	}
	if v := req.validate(); !v.Empty() {
		httpx.JSON(w, http.StatusBadRequest, v)
		return
	}
	id, err := h.Service.Create(req.model(), req.DemandIDs)
	if err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusCreated, fmt.Sprintf("Collect '%d' successfully created.", id))
}

func (h *CollectHandler) Update(w http.ResponseWriter, r *http.Request) {
	collectID, ok := pathID(r, "collect_id")
	if !ok {
		badParam(w, "collect_id")
		return
	}
	var req collectRequest
	if err := decode(r, &req); err != nil {
		badBody(w)
		return
	}
	if v := req.validate(); !v.Empty() {
		httpx.JSON(w, http.StatusBadRequest, v)
		return
	}
	if err := h.Service.Update(collectID, req.model()); err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusOK, fmt.Sprintf("Collect '%d' successfully updated.", collectID))
}

func (h *CollectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	collectID, ok := pathID(r, "collect_id")
	if !ok {
		badParam(w, "collect_id")
		return
	}
	if err := h.Service.Delete(collectID); err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusOK, fmt.Sprintf("Collect '%d' successfully deleted.", collectID))
}

func (h *CollectHandler) AttachDemand(w http.ResponseWriter, r *http.Request) {
	collectID, demandID, ok := twoIDs(w, r, "collect_id", "demand_id")
	if !ok {
		return
	}
	if err := h.Service.AttachDemand(collectID, demandID); err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusCreated, fmt.Sprintf("Demand id '%d' successfully added to collect id '%d'.", demandID, collectID))
}

func (h *CollectHandler) DetachDemand(w http.ResponseWriter, r *http.Request) {
	collectID, demandID, ok := twoIDs(w, r, "collect_id", "demand_id")
	if !ok {
		return
	}
	if err := h.Service.DetachDemand(collectID, demandID); err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusOK, fmt.Sprintf("Demand id '%d' successfully removed from collect id '%d'.", demandID, collectID))
}
