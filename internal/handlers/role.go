package handlers

import (
	"fmt"
	"net/http"

	"github.com/solifood/foodlink/internal/httpx"
	"github.com/solifood/foodlink/internal/models"
	"github.com/solifood/foodlink/internal/services"
	"github.com/solifood/foodlink/internal/validation"
)

type RoleHandler struct {
	Service *services.RoleService
}

func NewRoleHandler(service *services.RoleService) *RoleHandler {
	return &RoleHandler{Service: service}
}

type roleRequest struct {
	Name string `json:"name"`
}

func (h *RoleHandler) Get(w http.ResponseWriter, r *http.Request) {
	roleID, ok := pathID(r, "role_id")
	if !ok {
		badParam(w, "role_id")
		return
	}
	role, err := h.Service.GetByID(roleID)
	if err != nil {
		respondErr(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, role.Full())
}

func (h *RoleHandler) List(w http.ResponseWriter, r *http.Request) {
	roles, err := h.Service.List()
	if err != nil {
		respondErr(w, err)
		return
	}
	if roles == nil {
		noneFound(w, "roles")
		return
	}
	views := make([]models.RoleView, 0, len(roles))
	for i := range roles {
		views = append(views, roles[i].Full())
	}
	httpx.JSON(w, http.StatusOK, listPayload("roles", views))
}

func (h *RoleHandler) Page(w http.ResponseWriter, r *http.Request) {
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
		noneFound(w, "roles")
		return
	}
	views := make([]models.RoleView, 0, len(result.Items))
	for i := range result.Items {
		views = append(views, result.Items[i].Full())
	}
	httpx.JSON(w, http.StatusOK, pagePayload("roles", result.MaxPages, views))
}

func (h *RoleHandler) Search(w http.ResponseWriter, r *http.Request) {
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
		noneFound(w, "roles")
		return
	}
	views := make([]models.RoleView, 0, len(result.Items))
	for i := range result.Items {
		views = append(views, result.Items[i].Full())
	}
	httpx.JSON(w, http.StatusOK, pagePayload("roles", result.MaxPages, views))
}

func (h *RoleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req roleRequest
	if err := decode(r, &req); err != nil {
		badBody(w)
		return
	}
	v := validation.Violations{}
	validation.Match("name", req.Name, validation.NamePattern, v)
	if !v.Empty() {
		httpx.JSON(w, http.StatusBadRequest, v)
		return
	}
	id, err := h.Service.Create(&models.Role{Name: req.Name})
	if err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusCreated, fmt.Sprintf("Role '%d' successfully created.", id))
}

func (h *RoleHandler) Update(w http.ResponseWriter, r *http.Request) {
	roleID, ok := pathID(r, "role_id")
	if !ok {
		badParam(w, "role_id")
		return
	}
	var req roleRequest
	if err := decode(r, &req); err != nil {
		badBody(w)
		return
	}
	v := validation.Violations{}
	validation.Match("name", req.Name, validation.NamePattern, v)
	if !v.Empty() {
		httpx.JSON(w, http.StatusBadRequest, v)
		return
	}
	if err := h.Service.Update(roleID, &models.Role{Name: req.Name}); err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusOK, fmt.Sprintf("Role '%d' successfully updated.", roleID))
}

func (h *RoleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	roleID, ok := pathID(r, "role_id")
	if !ok {
		badParam(w, "role_id")
		return
	}
	if err := h.Service.Delete(roleID); err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusOK, fmt.Sprintf("Role '%d' successfully deleted.", roleID))
}
