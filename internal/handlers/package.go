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

type PackageHandler struct {
	Service *services.PackageService
}

func NewPackageHandler(service *services.PackageService) *PackageHandler {
	return &PackageHandler{Service: service}
}

type packageRequest struct {
	Weight         *float64 `json:"weight"`
	Description    string   `json:"description"`
	ExpirationDate string   `json:"expiration_date"`
	FoodID         *uint    `json:"food_id"`
	StorageID      *uint    `json:"storage_id"`
}

func (req *packageRequest) validate() validation.Violations {
	v := validation.Violations{}
	if req.Weight == nil || *req.Weight <= 0 {
		v["weight"] = "Invalid or missing parameter 'weight'."
	}
	if req.Description != "" {
		validation.Match("description", req.Description, validation.DescriptionPattern, v)
	}
	validation.Datetime("expiration_date", req.ExpirationDate, v)
	validation.RequiredID("food_id", req.FoodID, v)
	validation.RequiredID("storage_id", req.StorageID, v)
	return v
}

func (req *packageRequest) model() *models.Package {
	expiration, _ := time.Parse(validation.DatetimeLayout, req.ExpirationDate)
	return &models.Package{
		Weight:         *req.Weight,
		Description:    req.Description,
		ExpirationDate: expiration,
		FoodID:         *req.FoodID,
		StorageID:      *req.StorageID,
	}
}

func (h *PackageHandler) Get(w http.ResponseWriter, r *http.Request) {
	packageID, ok := pathID(r, "package_id")
	if !ok {
		badParam(w, "package_id")
		return
	}
	pkg, err := h.Service.GetByID(packageID)
	if err != nil {
		respondErr(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, pkg.Full())
}

func (h *PackageHandler) List(w http.ResponseWriter, r *http.Request) {
	packages, err := h.Service.List()
	if err != nil {
		respondErr(w, err)
		return
	}
	if packages == nil {
		noneFound(w, "packages")
		return
	}
	views := make([]models.PackageView, 0, len(packages))
	for i := range packages {
		views = append(views, packages[i].Full())
	}
	httpx.JSON(w, http.StatusOK, listPayload("packages", views))
}

func (h *PackageHandler) Page(w http.ResponseWriter, r *http.Request) {
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
		noneFound(w, "packages")
		return
	}
	views := make([]models.PackageView, 0, len(result.Items))
	for i := range result.Items {
		views = append(views, result.Items[i].Full())
	}
	httpx.JSON(w, http.StatusOK, pagePayload("packages", result.MaxPages, views))
}

func (h *PackageHandler) Search(w http.ResponseWriter, r *http.Request) {
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
		noneFound(w, "packages")
		return
	}
	views := make([]models.PackageView, 0, len(result.Items))
	for i := range result.Items {
		views = append(views, result.Items[i].Full())
	}
	httpx.JSON(w, http.StatusOK, pagePayload("packages", result.MaxPages, views))
}

func (h *PackageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req packageRequest
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
	httpx.Message(w, http.StatusCreated, fmt.Sprintf("Package '%d' successfully created.", id))
}

func (h *PackageHandler) Update(w http.ResponseWriter, r *http.Request) {
	packageID, ok := pathID(r, "package_id")
	if !ok {
		badParam(w, "package_id")
		return
	}
	var req packageRequest
	if err := decode(r, &req); err != nil {
		badBody(w)
		return
	}
	if v := req.validate(); !v.Empty() {
		httpx.JSON(w, http.StatusBadRequest, v)
		return
	}
	if err := h.Service.Update(packageID, req.model()); err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusOK, fmt.Sprintf("Package '%d' successfully updated.", packageID))
}

func (h *PackageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	packageID, ok := pathID(r, "package_id")
	if !ok {
		badParam(w, "package_id")
		return
	}
	if err := h.Service.Delete(packageID); err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusOK, fmt.Sprintf("Package '%d' successfully deleted.", packageID))
}
