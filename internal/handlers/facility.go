package handlers

import (
	"fmt"
	"net/http"

	"github.com/solifood/foodlink/internal/httpx"
	"github.com/solifood/foodlink/internal/models"
	"github.com/solifood/foodlink/internal/services"
	"github.com/solifood/foodlink/internal/validation"
)

type LocationHandler struct {
	Service *services.LocationService
}

func NewLocationHandler(service *services.LocationService) *LocationHandler {
	return &LocationHandler{Service: service}
}

type locationRequest struct {
	Address    string `json:"address"`
	PostalCode string `json:"postal_code"`
	City       string `json:"city"`
	Country    string `json:"country"`
}

func (req *locationRequest) validate() validation.Violations {
	v := validation.Violations{}
	validation.Required("address", req.Address, v)
	validation.Required("postal_code", req.PostalCode, v)
	validation.Required("city", req.City, v)
	validation.Required("country", req.Country, v)
	return v
}

func (req *locationRequest) model() *models.Location {
	return &models.Location{
		Address:    req.Address,
		PostalCode: req.PostalCode,
		City:       req.City,
		Country:    req.Country,
	}
}

func (h *LocationHandler) Get(w http.ResponseWriter, r *http.Request) {
	locationID, ok := pathID(r, "location_id")
	if !ok {
		badParam(w, "location_id")
		return
	}
	location, err := h.Service.GetByID(locationID)
	if err != nil {
		respondErr(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, location.Full())
}

func (h *LocationHandler) List(w http.ResponseWriter, r *http.Request) {
	locations, err := h.Service.List()
	if err != nil {
		respondErr(w, err)
		return
	}
	if locations == nil {
		noneFound(w, "locations")
		return
	}
	views := make([]models.LocationView, 0, len(locations))
	for i := range locations {
		views = append(views, locations[i].Full())
	}
	httpx.JSON(w, http.StatusOK, listPayload("locations", views))
}

func (h *LocationHandler) Page(w http.ResponseWriter, r *http.Request) {
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
		noneFound(w, "locations")
		return
	}
	views := make([]models.LocationView, 0, len(result.Items))
	for i := range result.Items {
		views = append(views, result.Items[i].Full())
	}
	httpx.JSON(w, http.StatusOK, pagePayload("locations", result.MaxPages, views))
}

func (h *LocationHandler) Search(w http.ResponseWriter, r *http.Request) {
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
		noneFound(w, "locations")
		return
	}
	views := make([]models.LocationView, 0, len(result.Items))
	for i := range result.Items {
		views = append(views, result.Items[i].Full())
	}
	httpx.JSON(w, http.StatusOK, pagePayload("locations", result.MaxPages, views))
}

func (h *LocationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req locationRequest
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
	httpx.Message(w, http.StatusCreated, fmt.Sprintf("Location '%d' successfully created.", id))
}

func (h *LocationHandler) Update(w http.ResponseWriter, r *http.Request) {
	locationID, ok := pathID(r, "location_id")
	if !ok {
		badParam(w, "location_id")
		return
	}
	var req locationRequest
	if err := decode(r, &req); err != nil {
		badBody(w)
		return
	}
	if v := req.validate(); !v.Empty() {
		httpx.JSON(w, http.StatusBadRequest, v)
		return
	}
	if err := h.Service.Update(locationID, req.model()); err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusOK, fmt.Sprintf("Location '%d' successfully updated.", locationID))
}

func (h *LocationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	locationID, ok := pathID(r, "location_id")
	if !ok {
		badParam(w, "location_id")
		return
	}
	if err := h.Service.Delete(locationID); err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusOK, fmt.Sprintf("Location '%d' successfully deleted.", locationID))
}

type CompanyHandler struct {
	Service *services.CompanyService
}

func NewCompanyHandler(service *services.CompanyService) *CompanyHandler {
	return &CompanyHandler{Service: service}
}

type companyRequest struct {
	Name  string `json:"name"`
	Siret string `json:"siret"`
	Phone string `json:"phone"`
}

func (req *companyRequest) validate() validation.Violations {
	v := validation.Violations{}
	validation.Required("name", req.Name, v)
	if req.Phone != "" {
		validation.Match("phone", req.Phone, validation.PhonePattern, v)
	}
	return v
}

func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	companyID, ok := pathID(r, "company_id")
	if !ok {
		badParam(w, "company_id")
		return
	}
	company, err := h.Service.GetByID(companyID)
	if err != nil {
		respondErr(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, company.Full())
}

func (h *CompanyHandler) List(w http.ResponseWriter, r *http.Request) {
	companies, err := h.Service.List()
	if err != nil {
		respondErr(w, err)
		return
	}
	if companies == nil {
		noneFound(w, "companies")
		return
	}
	views := make([]models.CompanyView, 0, len(companies))
	for i := range companies {
		views = append(views, companies[i].Full())
	}
	httpx.JSON(w, http.StatusOK, listPayload("companies", views))
}

func (h *CompanyHandler) Page(w http.ResponseWriter, r *http.Request) {
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
		noneFound(w, "companies")
		return
	}
	views := make([]models.CompanyView, 0, len(result.Items))
	for i := range result.Items {
		views = append(views, result.Items[i].Full())
	}
	httpx.JSON(w, http.StatusOK, pagePayload("companies", result.MaxPages, views))
}

func (h *CompanyHandler) Search(w http.ResponseWriter, r *http.Request) {
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
		noneFound(w, "companies")
		return
	}
	views := make([]models.CompanyView, 0, len(result.Items))
	for i := range result.Items {
		views = append(views, result.Items[i].Full())
	}
	httpx.JSON(w, http.StatusOK, pagePayload("companies", result.MaxPages, views))
}

func (h *CompanyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req companyRequest
	if err := decode(r, &req); err != nil {
		badBody(w)
		return
	}
	if v := req.validate(); !v.Empty() {
		httpx.JSON(w, http.StatusBadRequest, v)
		return
	}
	newCompany := &models.Company{Name: req.Name, Siret: req.Siret, Phone: req.Phone}
	id, err := h.Service.Create(newCompany)
	if err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusCreated, fmt.Sprintf("Company '%d' successfully created.", id))
}

func (h *CompanyHandler) Update(w http.ResponseWriter, r *http.Request) {
	companyID, ok := pathID(r, "company_id")
	if !ok {
		badParam(w, "company_id")
		return
	}
	var req companyRequest
	if err := decode(r, &req); err != nil {
		badBody(w)
		return
	}
	if v := req.validate(); !v.Empty() {
		httpx.JSON(w, http.StatusBadRequest, v)
		return
	}
	updateCompany := &models.Company{Name: req.Name, Siret: req.Siret, Phone: req.Phone}
	if err := h.Service.Update(companyID, updateCompany); err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusOK, fmt.Sprintf("Company '%d' successfully updated.", companyID))
}

func (h *CompanyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	companyID, ok := pathID(r, "company_id")
	if !ok {
		badParam(w, "company_id")
		return
	}
	if err := h.Service.Delete(companyID); err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusOK, fmt.Sprintf("Company '%d' successfully deleted.", companyID))
}

type ShopHandler struct {
	Service *services.ShopService
}

func NewShopHandler(service *services.ShopService) *ShopHandler {
	return &ShopHandler{Service: service}
}

type shopRequest struct {
	Name       string `json:"name"`
	CompanyID  *uint  `json:"company_id"`
	LocationID *uint  `json:"location_id"`
}

func (req *shopRequest) validate() validation.Violations {
	v := validation.Violations{}
	validation.Required("name", req.Name, v)
	validation.RequiredID("company_id", req.CompanyID, v)
	return v
}

func (req *shopRequest) model() *models.Shop {
	return &models.Shop{Name: req.Name, CompanyID: *req.CompanyID, LocationID: req.LocationID}
}

func (h *ShopHandler) Get(w http.ResponseWriter, r *http.Request) {
	shopID, ok := pathID(r, "shop_id")
	if !ok {
		badParam(w, "shop_id")
		return
	}
	shop, err := h.Service.GetByID(shopID)
	if err != nil {
		respondErr(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, shop.Full())
}

func (h *ShopHandler) List(w http.ResponseWriter, r *http.Request) {
	shops, err := h.Service.List()
	if err != nil {
		respondErr(w, err)
		return
	}
	if shops == nil {
		noneFound(w, "shops")
		return
	}
	views := make([]models.ShopView, 0, len(shops))
	for i := range shops {
		views = append(views, shops[i].Full())
	}
	httpx.JSON(w, http.StatusOK, listPayload("shops", views))
}

func (h *ShopHandler) Page(w http.ResponseWriter, r *http.Request) {
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
		noneFound(w, "shops")
		return
	}
	views := make([]models.ShopView, 0, len(result.Items))
	for i := range result.Items {
		views = append(views, result.Items[i].Full())
	}
	httpx.JSON(w, http.StatusOK, pagePayload("shops", result.MaxPages, views))
}

func (h *ShopHandler) Search(w http.ResponseWriter, r *http.Request) {
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
		noneFound(w, "shops")
		return
	}
	views := make([]models.ShopView, 0, len(result.Items))
	for i := range result.Items {
		views = append(views, result.Items[i].Full())
	}
	httpx.JSON(w, http.StatusOK, pagePayload("shops", result.MaxPages, views))
}

func (h *ShopHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req shopRequest
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
	httpx.Message(w, http.StatusCreated, fmt.Sprintf("Shop '%d' successfully created.", id))
}

func (h *ShopHandler) Update(w http.ResponseWriter, r *http.Request) {
	shopID, ok := pathID(r, "shop_id")
	if !ok {
		badParam(w, "shop_id")
		return
	}
	var req shopRequest
	if err := decode(r, &req); err != nil {
		badBody(w)
		return
	}
	if v := req.validate(); !v.Empty() {
		httpx.JSON(w, http.StatusBadRequest, v)
		return
	}
	if err := h.Service.Update(shopID, req.model()); err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusOK, fmt.Sprintf("Shop '%d' successfully updated.", shopID))
}

func (h *ShopHandler) Delete(w http.ResponseWriter, r *http.Request) {
	shopID, ok := pathID(r, "shop_id")
	if !ok {
		badParam(w, "shop_id")
		return
	}
	if err := h.Service.Delete(shopID); err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusOK, fmt.Sprintf("Shop '%d' successfully deleted.", shopID))
}

type WarehouseHandler struct {
	Service *services.WarehouseService
}

func NewWarehouseHandler(service *services.WarehouseService) *WarehouseHandler {
	return &WarehouseHandler{Service: service}
}

type warehouseRequest struct {
	Name       string `json:"name"`
	Capacity   *int   `json:"capacity"`
	LocationID *uint  `json:"location_id"`
}

func (req *warehouseRequest) validate() validation.Violations {
	v := validation.Violations{}
	validation.Required("name", req.Name, v)
	validation.RequiredInt("capacity", req.Capacity, v)
	return v
}

func (req *warehouseRequest) model() *models.Warehouse {
	return &models.Warehouse{Name: req.Name, Capacity: *req.Capacity, LocationID: req.LocationID}
}

func (h *WarehouseHandler) Get(w http.ResponseWriter, r *http.Request) {
	warehouseID, ok := pathID(r, "warehouse_id")
	if !ok {
		badParam(w, "warehouse_id")
		return
	}
	warehouse, err := h.Service.GetByID(warehouseID)
	if err != nil {
		respondErr(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, warehouse.Full())
}

func (h *WarehouseHandler) List(w http.ResponseWriter, r *http.Request) {
	warehouses, err := h.Service.List()
	if err != nil {
		respondErr(w, err)
		return
	}
	if warehouses == nil {
		noneFound(w, "warehouses")
		return
	}
	views := make([]models.WarehouseView, 0, len(warehouses))
	for i := range warehouses {
		views = append(views, warehouses[i].Full())
	}
	httpx.JSON(w, http.StatusOK, listPayload("warehouses", views))
}

func (h *WarehouseHandler) Page(w http.ResponseWriter, r *http.Request) {
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
		noneFound(w, "warehouses")
		return
	}
	views := make([]models.WarehouseView, 0, len(result.Items))
	for i := range result.Items {
		views = append(views, result.Items[i].Full())
	}
	httpx.JSON(w, http.StatusOK, pagePayload("warehouses", result.MaxPages, views))
}

func (h *WarehouseHandler) Search(w http.ResponseWriter, r *http.Request) {
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
		noneFound(w, "warehouses")
		return
	}
	views := make([]models.WarehouseView, 0, len(result.Items))
	for i := range result.Items {
		views = append(views, result.Items[i].Full())
	}
	httpx.JSON(w, http.StatusOK, pagePayload("warehouses", result.MaxPages, views))
}

func (h *WarehouseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req warehouseRequest
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
	httpx.Message(w, http.StatusCreated, fmt.Sprintf("Warehouse '%d' successfully created.", id))
}

func (h *WarehouseHandler) Update(w http.ResponseWriter, r *http.Request) {
	warehouseID, ok := pathID(r, "warehouse_id")
	if !ok {
		badParam(w, "warehouse_id")
		return
	}
	var req warehouseRequest
	if err := decode(r, &req); err != nil {
		badBody(w)
		return
	}
	if v := req.validate(); !v.Empty() {
		httpx.JSON(w, http.StatusBadRequest, v)
		return
	}
	if err := h.Service.Update(warehouseID, req.model()); err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusOK, fmt.Sprintf("Warehouse '%d' successfully updated.", warehouseID))
}

func (h *WarehouseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	warehouseID, ok := pathID(r, "warehouse_id")
	if !ok {
		badParam(w, "warehouse_id")
		return
	}
	if err := h.Service.Delete(warehouseID); err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusOK, fmt.Sprintf("Warehouse '%d' successfully deleted.", warehouseID))
}

type StorageHandler struct {
	Service *services.StorageService
}

func NewStorageHandler(service *services.StorageService) *StorageHandler {
	return &StorageHandler{Service: service}
}

type storageRequest struct {
	Name        string `json:"name"`
	WarehouseID *uint  `json:"warehouse_id"`
}

func (req *storageRequest) validate() validation.Violations {
	v := validation.Violations{}
	validation.Required("name", req.Name, v)
	validation.RequiredID("warehouse_id", req.WarehouseID, v)
	return v
}

func (h *StorageHandler) Get(w http.ResponseWriter, r *http.Request) {
	storageID, ok := pathID(r, "storage_id")
	if !ok {
		badParam(w, "storage_id")
		return
	}
	storage, err := h.Service.GetByID(storageID)
	if err != nil {
		respondErr(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, storage.Full())
}

func (h *StorageHandler) List(w http.ResponseWriter, r *http.Request) {
	storages, err := h.Service.List()
	if err != nil {
		respondErr(w, err)
		return
	}
	if storages == nil {
		noneFound(w, "storages")
		return
	}
	views := make([]models.StorageView, 0, len(storages))
	for i := range storages {
		views = append(views, storages[i].Full())
	}
	httpx.JSON(w, http.StatusOK, listPayload("storages", views))
}

func (h *StorageHandler) Page(w http.ResponseWriter, r *http.Request) {
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
		noneFound(w, "storages")
		return
	}
	views := make([]models.StorageView, 0, len(result.Items))
	for i := range result.Items {
		views = append(views, result.Items[i].Full())
	}
	httpx.JSON(w, http.StatusOK, pagePayload("storages", result.MaxPages, views))
}

func (h *StorageHandler) Search(w http.ResponseWriter, r *http.Request) {
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
		noneFound(w, "storages")
		return
	}
	views := make([]models.StorageView, 0, len(result.Items))
	for i := range result.Items {
		views = append(views, result.Items[i].Full())
	}
	httpx.JSON(w, http.StatusOK, pagePayload("storages", result.MaxPages, views))
}

func (h *StorageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req storageRequest
	if err := decode(r, &req); err != nil {
		badBody(w)
		return
	}
	if v := req.validate(); !v.Empty() {
		httpx.JSON(w, http.StatusBadRequest, v)
		return
	}
	newStorage := &models.Storage{Name: req.Name, WarehouseID: *req.WarehouseID}
	id, err := h.Service.Create(newStorage)
	if err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusCreated, fmt.Sprintf("Storage '%d' successfully created.", id))
}

func (h *StorageHandler) Update(w http.ResponseWriter, r *http.Request) {
	storageID, ok := pathID(r, "storage_id")
	if !ok {
		badParam(w, "storage_id")
		return
	}
	var req storageRequest
	if err := decode(r, &req); err != nil {
		badBody(w)
		return
	}
	if v := req.validate(); !v.Empty() {
		httpx.JSON(w, http.StatusBadRequest, v)
		return
	}
	updateStorage := &models.Storage{Name: req.Name, WarehouseID: *req.WarehouseID}
	if err := h.Service.Update(storageID, updateStorage); err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusOK, fmt.Sprintf("Storage '%d' successfully updated.", storageID))
}

func (h *StorageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	storageID, ok := pathID(r, "storage_id")
	if !ok {
		badParam(w, "storage_id")
		return
	}
	if err := h.Service.Delete(storageID); err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusOK, fmt.Sprintf("Storage '%d' successfully deleted.", storageID))
}
