package handlers

import (
	"fmt"
	"net/http"

	"github.com/solifood/foodlink/internal/auth"
	"github.com/solifood/foodlink/internal/httpx"
	"github.com/solifood/foodlink/internal/models"
	"github.com/solifood/foodlink/internal/services"
	"github.com/solifood/foodlink/internal/validation"
)

type AuthHandler struct {
	Users  *services.UserService
	Tokens *auth.Manager
}

func NewAuthHandler(users *services.UserService, tokens *auth.Manager) *AuthHandler {
	return &AuthHandler{Users: users, Tokens: tokens}
}

type registerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
	RoleID    *uint  `json:"role_id"`
}

// Register creates a waiting account. The administrator role cannot be chosen.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decode(r, &req); err != nil {
		badBody(w)
		return
	}
	v := validation.Violations{}
	validation.Match("first_name", req.FirstName, validation.NamePattern, v)
	validation.Match("last_name", req.LastName, validation.NamePattern, v)
	validation.Match("email", req.Email, validation.EmailPattern, v)
	validation.Match("phone", req.Phone, validation.PhonePattern, v)
	validation.Password("password", req.Password, v)
	validation.RequiredID("role_id", req.RoleID, v)
	if !v.Empty() {
		httpx.JSON(w, http.StatusBadRequest, v)
		return
	}

	newUser := &models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  req.Password,
	}
	id, err := h.Users.Register(newUser, *req.RoleID)
	if err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusCreated, fmt.Sprintf("User '%d' successfully created.", id))
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// Login verifies the credentials and issues an access/refresh token pair.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decode(r, &req); err != nil {
		badBody(w)
		return
	}
	v := validation.Violations{}
	validation.Required("email", req.Email, v)
	validation.Required("password", req.Password, v)
	if !v.Empty() {
		httpx.JSON(w, http.StatusBadRequest, v)
		return
	}

	user, err := h.Users.Authenticate(req.Email, req.Password)
	if err != nil {
		respondErr(w, err)
		return
	}
	access, refresh, err := h.Tokens.GenerateTokens(user.ID, user.RoleIDs())
	if err != nil {
		httpx.Message(w, http.StatusInternalServerError, "Error while creating tokens.")
		return
	}
	httpx.JSON(w, http.StatusOK, tokenResponse{AccessToken: access, RefreshToken: refresh})
}

// Protected echoes the verified identity; a smoke endpoint for token checks.
func (h *AuthHandler) Protected(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		httpx.Message(w, http.StatusUnauthorized, "Unauthorized request.")
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"logged_in_as": claims.UserID,
		"roles":        claims.Roles,
	})
}

// Refresh exchanges a valid refresh token (sent as the bearer token) for a new
// access token.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	token, ok := auth.BearerToken(r)
	if !ok {
		httpx.Message(w, http.StatusUnauthorized, "Authorization header required.")
		return
	}
	claims, err := h.Tokens.ParseRefresh(token)
	if err != nil {
		httpx.Message(w, http.StatusUnauthorized, "Invalid or expired token.")
		return
	}
	access, err := h.Tokens.GenerateAccessToken(claims.UserID, claims.Roles)
	if err != nil {
		httpx.Message(w, http.StatusInternalServerError, "Error while creating tokens.")
		return
	}
	httpx.JSON(w, http.StatusOK, tokenResponse{AccessToken: access})
}
