package handlers

import (
	"fmt"
	"net/http"

	"github.com/solifood/foodlink/internal/httpx"
	"github.com/solifood/foodlink/internal/models"
	"github.com/solifood/foodlink/internal/services"
	"github.com/solifood/foodlink/internal/validation"
)

type FoodHandler struct {
	Service *services.FoodService
}

func NewFoodHandler(service *services.FoodService) *FoodHandler {
	return &FoodHandler{Service: service}
}

type foodRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	CategoryID  *uint  `json:"category_id"`
}

func (req *foodRequest) validate() validation.Violations {
	v := validation.Violations{}
	validation.Required("name", req.Name, v)
	if req.Description != "" {
		validation.Match("description", req.Description, validation.DescriptionPattern, v)
	}
	validation.RequiredID("category_id", req.CategoryID, v)
	return v
}

func (h *FoodHandler) Get(w http.ResponseWriter, r *http.Request) {
	foodID, ok := pathID(r, "food_id")
	if !ok {
		badParam(w, "food_id")
		return
	}
	food, err := h.Service.GetByID(foodID)
	if err != nil {
		respondErr(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, food.Full())
}

func (h *FoodHandler) List(w http.ResponseWriter, r *http.Request) {
	foods, err := h.Service.List()
	if err != nil {
		respondErr(w, err)
		return
	}
	if foods == nil {
		noneFound(w, "foods")
		return
	}
	views := make([]models.FoodView, 0, len(foods))
	for i := range foods {
		views = append(views, foods[i].Full())
	}
	httpx.JSON(w, http.StatusOK, listPayload("foods", views))
}

func (h *FoodHandler) Page(w http.ResponseWriter, r *http.Request) {
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
		noneFound(w, "foods")
		return
	}
	views := make([]models.FoodView, 0, len(result.Items))
	for i := range result.Items {
		views = append(views, result.Items[i].Full())
	}
	httpx.JSON(w, http.StatusOK, pagePayload("foods", result.MaxPages, views))
}

func (h *FoodHandler) Search(w http.ResponseWriter, r *http.Request) {
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
		noneFound(w, "foods")
		return
	}
	views := make([]models.FoodView, 0, len(result.Items))
	for i := range result.Items {
		views = append(views, result.Items[i].Full())
	}
	httpx.JSON(w, http.StatusOK, pagePayload("foods", result.MaxPages, views))
}

func (h *FoodHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req foodRequest
	if err := decode(r, &req); err != nil {
		badBody(w)
		return
	}
	if v := req.validate(); !v.Empty() {
		httpx.JSON(w, http.StatusBadRequest, v)
		return
	}
	newFood := &models.Food{Name: req.Name, Description: req.Description, CategoryID: *req.CategoryID}
	id, err := h.Service.Create(newFood)
	if err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusCreated, fmt.Sprintf("Food '%d' successfully created.", id))
}

func (h *FoodHandler) Update(w http.ResponseWriter, r *http.Request) {
	foodID, ok := pathID(r, "food_id")
	if !ok {
		badParam(w, "food_id")
		return
	}
	var req foodRequest
	if err := decode(r, &req); err != nil {
		badBody(w)
		return
	}
	if v := req.validate(); !v.Empty() {
		httpx.JSON(w, http.StatusBadRequest, v)
		return
	}
	updateFood := &models.Food{Name: req.Name, Description: req.Description, CategoryID: *req.CategoryID}
	if err := h.Service.Update(foodID, updateFood); err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusOK, fmt.Sprintf("Food '%d' successfully updated.", foodID))
}

func (h *FoodHandler) Delete(w http.ResponseWriter, r *http.Request) {
	foodID, ok := pathID(r, "food_id")
	if !ok {
		badParam(w, "food_id")
		return
	}
	if err := h.Service.Delete(foodID); err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusOK, fmt.Sprintf("Food '%d' successfully deleted.", foodID))
}

type CategoryHandler struct {
	Service *services.CategoryService
}

func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{Service: service}
}

func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := pathID(r, "category_id")
	if !ok {
		badParam(w, "category_id")
		return
	}
	category, err := h.Service.GetByID(categoryID)
	if err != nil {
		respondErr(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, category.Full())
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Service.List()
	if err != nil {
		respondErr(w, err)
		return
	}
	if categories == nil {
		noneFound(w, "categories")
		return
	}
	views := make([]models.CategoryView, 0, len(categories))
	for i := range categories {
		views = append(views, categories[i].Full())
	}
	httpx.JSON(w, http.StatusOK, listPayload("categories", views))
}

func (h *CategoryHandler) Page(w http.ResponseWriter, r *http.Request) {
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
		noneFound(w, "categories")
		return
	}
	views := make([]models.CategoryView, 0, len(result.Items))
	for i := range result.Items {
		views = append(views, result.Items[i].Full())
	}
	httpx.JSON(w, http.StatusOK, pagePayload("categories", result.MaxPages, views))
}

func (h *CategoryHandler) Search(w http.ResponseWriter, r *http.Request) {
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
		noneFound(w, "categories")
		return
	}
	views := make([]models.CategoryView, 0, len(result.Items))
	for i := range result.Items {
		views = append(views, result.Items[i].Full())
	}
	httpx.JSON(w, http.StatusOK, pagePayload("categories", result.MaxPages, views))
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
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
	id, err := h.Service.Create(&models.Category{Name: req.Name})
	if err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusCreated, fmt.Sprintf("Category '%d' successfully created.", id))
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := pathID(r, "category_id")
	if !ok {
		badParam(w, "category_id")
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
	if err := h.Service.Update(categoryID, &models.Category{Name: req.Name}); err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusOK, fmt.Sprintf("Category '%d' successfully updated.", categoryID))
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := pathID(r, "category_id")
	if !ok {
		badParam(w, "category_id")
		return
	}
	if err := h.Service.Delete(categoryID); err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusOK, fmt.Sprintf("Category '%d' successfully deleted.", categoryID))
}
