package handlers

import (
	"fmt"
	"net/http"

	"github.com/solifood/foodlink/internal/httpx"
	"github.com/solifood/foodlink/internal/models"
	"github.com/solifood/foodlink/internal/services"
	"github.com/solifood/foodlink/internal/validation"
)

type UserHandler struct {
	Service *services.UserService
}

func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{Service: service}
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "user_id")
	if !ok {
		badParam(w, "user_id")
		return
	}
	user, err := h.Service.GetByID(userID)
	if err != nil {
		respondErr(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, user.Full())
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.List()
	if err != nil {
		respondErr(w, err)
		return
	}
	if users == nil {
		noneFound(w, "users")
		return
	}
	views := make([]models.UserView, 0, len(users))
	for i := range users {
		views = append(views, users[i].Full())
	}
	httpx.JSON(w, http.StatusOK, listPayload("users", views))
}

func (h *UserHandler) Page(w http.ResponseWriter, r *http.Request) {
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
		noneFound(w, "users")
		return
	}
	views := make([]models.UserView, 0, len(result.Items))
	for i := range result.Items {
		views = append(views, result.Items[i].Full())
	}
	httpx.JSON(w, http.StatusOK, pagePayload("users", result.MaxPages, views))
}

func (h *UserHandler) Search(w http.ResponseWriter, r *http.Request) {
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
		noneFound(w, "users")
		return
	}
	views := make([]models.UserView, 0, len(result.Items))
	for i := range result.Items {
		views = append(views, result.Items[i].Full())
	}
	httpx.JSON(w, http.StatusOK, pagePayload("users", result.MaxPages, views))
}

type updateUserRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Status    int    `json:"status"`
	Password  string `json:"password"`
}

// Update overwrites an account; only the owner or an administrator may call
// it. A missing password keeps the current one.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "user_id")
	if !ok {
		badParam(w, "user_id")
		return
	}
	if !selfOrAdmin(r, userID) {
		httpx.Message(w, http.StatusUnauthorized, "Unauthorized request.")
		return
	}
	var req updateUserRequest
	if err := decode(r, &req); err != nil {
		badBody(w)
		return
	}
	v := validation.Violations{}
	validation.Match("first_name", req.FirstName, validation.NamePattern, v)
	validation.Match("last_name", req.LastName, validation.NamePattern, v)
	validation.Match("email", req.Email, validation.EmailPattern, v)
	validation.Match("phone", req.Phone, validation.PhonePattern, v)
	if req.Password != "" {
		validation.Password("password", req.Password, v)
	}
	if !v.Empty() {
		httpx.JSON(w, http.StatusBadRequest, v)
		return
	}

	updateUser := &models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Status:    req.Status,
		Password:  req.Password,
	}
	if err := h.Service.Update(userID, updateUser); err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusOK, fmt.Sprintf("User '%d' successfully updated.", userID))
}

// Delete removes an account and its authored tickets; owner or administrator.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "user_id")
	if !ok {
		badParam(w, "user_id")
		return
	}
	if !selfOrAdmin(r, userID) {
		httpx.Message(w, http.StatusUnauthorized, "Unauthorized request.")
		return
	}
	if err := h.Service.Delete(userID); err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusOK, fmt.Sprintf("User '%d' successfully deleted.", userID))
}

// twoIDs parses the two path ids of an association endpoint.
func twoIDs(w http.ResponseWriter, r *http.Request, first, second string) (uint, uint, bool) {
	firstID, ok := pathID(r, first)
	if !ok {
		badParam(w, first)
		return 0, 0, false
	}
	secondID, ok := pathID(r, second)
	if !ok {
		badParam(w, second)
		return 0, 0, false
	}
	return firstID, secondID, true
}

func (h *UserHandler) AddRole(w http.ResponseWriter, r *http.Request) {
	userID, roleID, ok := twoIDs(w, r, "user_id", "role_id")
	if !ok {
		return
	}
	if err := h.Service.AddRole(userID, roleID); err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusCreated, fmt.Sprintf("Role id '%d' successfully assigned to user id '%d'.", roleID, userID))
}

func (h *UserHandler) RemoveRole(w http.ResponseWriter, r *http.Request) {
	userID, roleID, ok := twoIDs(w, r, "user_id", "role_id")
	if !ok {
		return
	}
	if err := h.Service.RemoveRole(userID, roleID); err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusOK, fmt.Sprintf("Role id '%d' successfully removed from user id '%d'.", roleID, userID))
}

func (h *UserHandler) AddEvent(w http.ResponseWriter, r *http.Request) {
	userID, eventID, ok := twoIDs(w, r, "user_id", "event_id")
	if !ok {
		return
	}
	if !selfOrAdmin(r, userID) {
		httpx.Message(w, http.StatusUnauthorized, "Unauthorized request.")
		return
	}
	if err := h.Service.AddEvent(userID, eventID); err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusCreated, fmt.Sprintf("User id '%d' successfully participates event id '%d'.", userID, eventID))
}

func (h *UserHandler) RemoveEvent(w http.ResponseWriter, r *http.Request) {
	userID, eventID, ok := twoIDs(w, r, "user_id", "event_id")
	if !ok {
		return
	}
	if !selfOrAdmin(r, userID) {
		httpx.Message(w, http.StatusUnauthorized, "Unauthorized request.")
		return
	}
	if err := h.Service.RemoveEvent(userID, eventID); err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusOK, fmt.Sprintf("User id '%d' no longer participates event id '%d'.", userID, eventID))
}

func (h *UserHandler) AddDelivery(w http.ResponseWriter, r *http.Request) {
	userID, deliveryID, ok := twoIDs(w, r, "user_id", "delivery_id")
	if !ok {
		return
	}
	if !selfOrAdmin(r, userID) {
		httpx.Message(w, http.StatusUnauthorized, "Unauthorized request.")
		return
	}
	if err := h.Service.AddDelivery(userID, deliveryID); err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusCreated, fmt.Sprintf("User id '%d' successfully delivers delivery id '%d'.", userID, deliveryID))
}

func (h *UserHandler) RemoveDelivery(w http.ResponseWriter, r *http.Request) {
	userID, deliveryID, ok := twoIDs(w, r, "user_id", "delivery_id")
	if !ok {
		return
	}
	if !selfOrAdmin(r, userID) {
		httpx.Message(w, http.StatusUnauthorized, "Unauthorized request.")
		return
	}
	if err := h.Service.RemoveDelivery(userID, deliveryID); err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusOK, fmt.Sprintf("User id '%d' no longer delivers delivery id '%d'.", userID, deliveryID))
}

func (h *UserHandler) AddCollect(w http.ResponseWriter, r *http.Request) {
	userID, collectID, ok := twoIDs(w, r, "user_id", "collect_id")
	if !ok {
		return
	}
	if !selfOrAdmin(r, userID) {
		httpx.Message(w, http.StatusUnauthorized, "Unauthorized request.")
		return
	}
	if err := h.Service.AddCollect(userID, collectID); err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusCreated, fmt.Sprintf("User id '%d' successfully collects collect id '%d'.", userID, collectID))
}

func (h *UserHandler) RemoveCollect(w http.ResponseWriter, r *http.Request) {
	userID, collectID, ok := twoIDs(w, r, "user_id", "collect_id")
	if !ok {
		return
	}
	if !selfOrAdmin(r, userID) {
		httpx.Message(w, http.StatusUnauthorized, "Unauthorized request.")
		return
	}
	if err := h.Service.RemoveCollect(userID, collectID); err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusOK, fmt.Sprintf("User id '%d' no longer collects collect id '%d'.", userID, collectID))
}

func (h *UserHandler) AddShop(w http.ResponseWriter, r *http.Request) {
	userID, shopID, ok := twoIDs(w, r, "user_id", "shop_id")
	if !ok {
		return
	}
	if err := h.Service.AddShop(userID, shopID); err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusCreated, fmt.Sprintf("User id '%d' successfully works in shop id '%d'.", userID, shopID))
}

func (h *UserHandler) RemoveShop(w http.ResponseWriter, r *http.Request) {
	userID, shopID, ok := twoIDs(w, r, "user_id", "shop_id")
	if !ok {
		return
	}
	if err := h.Service.RemoveShop(userID, shopID); err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusOK, fmt.Sprintf("User id '%d' no longer works in shop id '%d'.", userID, shopID))
}
