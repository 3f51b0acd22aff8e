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

type DemandHandler struct {
	Service *services.DemandService
}

func NewDemandHandler(service *services.DemandService) *DemandHandler {
	return &DemandHandler{Service: service}
}

type demandRequest struct {
	Status        int    `json:"status"`
	LimitDatetime string `json:"limit_datetime"`
	Additional    string `json:"additional"`
	PDF           string `json:"pdf"`
	QRCode        string `json:"qr_code"`
	ShopID        *uint  `json:"shop_id"`
	PackageIDs    []uint `json:"package_ids"`
}

func (req *demandRequest) validate() validation.Violations {
	v := validation.Violations{}
	validation.Datetime("limit_datetime", req.LimitDatetime, v)
	if req.Additional != "" {
		validation.Match("additional", req.Additional, validation.DescriptionPattern, v)
	}
	validation.RequiredID("shop_id", req.ShopID, v)
	return v
}

func (req *demandRequest) model() *models.Demand {
	limit, _ := time.Parse(validation.DatetimeLayout, req.LimitDatetime)
	return &models.Demand{
		Status:        req.Status,
		LimitDatetime: limit,
		Additional:    req.Additional,
		PDF:           req.PDF,
		QRCode:        req.QRCode,
		ShopID:        *req.ShopID,
	}
}

func (h *DemandHandler) Get(w http.ResponseWriter, r *http.Request) {
	demandID, ok := pathID(r, "demand_id")
	if !ok {
		badParam(w, "demand_id")
		return
	}
	demand, err := h.Service.GetByID(demandID)
	if err != nil {
		respondErr(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, demand.Full())
}

func (h *DemandHandler) List(w http.ResponseWriter, r *http.Request) {
	demands, err := h.Service.List()
	if err != nil {
		respondErr(w, err)
		return
	}
	if demands == nil {
		noneFound(w, "demands")
		return
	}
	views := make([]models.DemandView, 0, len(demands))
	for i := range demands {
		views = append(views, demands[i].Full())
	}
	httpx.JSON(w, http.StatusOK, listPayload("demands", views))
}

func (h *DemandHandler) Page(w http.ResponseWriter, r *http.Request) {
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
		noneFound(w, "demands")
		return
	}
	views := make([]models.DemandView, 0, len(result.Items))
	for i := range result.Items {
		views = append(views, result.Items[i].Full())
	}
	httpx.JSON(w, http.StatusOK, pagePayload("demands", result.MaxPages, views))
}

func (h *DemandHandler) Search(w http.ResponseWriter, r *http.Request) {
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
		noneFound(w, "demands")
		return
	}
	views := make([]models.DemandView, 0, len(result.Items))
	for i := range result.Items {
		views = append(views, result.Items[i].Full())
	}
	httpx.JSON(w, http.StatusOK, pagePayload("demands", result.MaxPages, views))
}

// Create opens a demand and reserves the listed packages for it.
func (h *DemandHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req demandRequest
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
	for _, packageID := range req.PackageIDs {
		if err := h.Service.AttachPackage(id, packageID); err != nil {
			respondErr(w, err)
			return
		}
	}
	httpx.Message(w, http.StatusCreated, fmt.Sprintf("Demand '%d' successfully created.", id))
}

func (h *DemandHandler) Update(w http.ResponseWriter, r *http.Request) {
	demandID, ok := pathID(r, "demand_id")
	if !ok {
		badParam(w, "demand_id")
		return
	}
	var req demandRequest
	if err := decode(r, &req); err != nil {
		badBody(w)
		return
	}
	if v := req.validate(); !v.Empty() {
		httpx.JSON(w, http.StatusBadRequest, v)
		return
	}
	if err := h.Service.Update(demandID, req.model()); err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusOK, fmt.Sprintf("Demand '%d' successfully updated.", demandID))
}

func (h *DemandHandler) Delete(w http.ResponseWriter, r *http.Request) {
	demandID, ok := pathID(r, "demand_id")
	if !ok {
		badParam(w, "demand_id")
		return
	}
	if err := h.Service.Delete(demandID); err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusOK, fmt.Sprintf("Demand '%d' successfully deleted.", demandID))
}

func (h *DemandHandler) AttachPackage(w http.ResponseWriter, r *http.Request) {
	demandID, packageID, ok := twoIDs(w, r, "demand_id", "package_id")
	if !ok {
		return
	}
	if err := h.Service.AttachPackage(demandID, packageID); err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusCreated, fmt.Sprintf("Package id '%d' successfully added to demand id '%d'.", packageID, demandID))
}

func (h *DemandHandler) DetachPackage(w http.ResponseWriter, r *http.Request) {
	demandID, packageID, ok := twoIDs(w, r, "demand_id", "package_id")
	if !ok {
		return
	}
	if err := h.Service.DetachPackage(demandID, packageID); err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusOK, fmt.Sprintf("Package id '%d' successfully removed from demand id '%d'.", packageID, demandID))
}
