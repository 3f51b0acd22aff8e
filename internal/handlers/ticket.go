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

type TicketHandler struct {
	Service *services.TicketService
}

func NewTicketHandler(service *services.TicketService) *TicketHandler {
	return &TicketHandler{Service: service}
}

type createTicketRequest struct {
	Subject     string `json:"subject"`
	Description string `json:"description"`
	Type        int    `json:"type"`
}

type updateTicketRequest struct {
	Subject     string `json:"subject"`
	Description string `json:"description"`
	Type        int    `json:"type"`
	Status      int    `json:"status"`
	AdminID     *uint  `json:"admin_id"`
}

// Get serves a ticket to its author or an administrator.
func (h *TicketHandler) Get(w http.ResponseWriter, r *http.Request) {
	ticketID, ok := pathID(r, "ticket_id")
	if !ok {
		badParam(w, "ticket_id")
		return
	}
	ticket, err := h.Service.GetByID(ticketID)
	if err != nil {
		respondErr(w, err)
		return
	}
	if !selfOrAdmin(r, ticket.AuthorID) {
		httpx.Message(w, http.StatusUnauthorized, "Unauthorized request.")
		return
	}
	httpx.JSON(w, http.StatusOK, ticket.Full())
}

func (h *TicketHandler) List(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.Service.List()
	if err != nil {
		respondErr(w, err)
		return
	}
	if tickets == nil {
		noneFound(w, "tickets")
		return
	}
	views := make([]models.TicketView, 0, len(tickets))
	for i := range tickets {
		views = append(views, tickets[i].Full())
	}
	httpx.JSON(w, http.StatusOK, listPayload("tickets", views))
}

// ListByUser serves the tickets one user authored; owner or administrator.
func (h *TicketHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "user_id")
	if !ok {
		badParam(w, "user_id")
		return
	}
	if !selfOrAdmin(r, userID) {
		httpx.Message(w, http.StatusUnauthorized, "Unauthorized request.")
		return
	}
	tickets, err := h.Service.ListByUser(userID)
	if err != nil {
		respondErr(w, err)
		return
	}
	if tickets == nil {
		noneFound(w, "tickets")
		return
	}
	views := make([]models.TicketView, 0, len(tickets))
	for i := range tickets {
		views = append(views, tickets[i].Full())
	}
	httpx.JSON(w, http.StatusOK, listPayload("tickets", views))
}

func (h *TicketHandler) Page(w http.ResponseWriter, r *http.Request) {
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
		noneFound(w, "tickets")
		return
	}
	views := make([]models.TicketView, 0, len(result.Items))
	for i := range result.Items {
		views = append(views, result.Items[i].Full())
	}
	httpx.JSON(w, http.StatusOK, pagePayload("tickets", result.MaxPages, views))
}

func (h *TicketHandler) Search(w http.ResponseWriter, r *http.Request) {
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
		noneFound(w, "tickets")
		return
	}
	views := make([]models.TicketView, 0, len(result.Items))
	for i := range result.Items {
		views = append(views, result.Items[i].Full())
	}
	httpx.JSON(w, http.StatusOK, pagePayload("tickets", result.MaxPages, views))
}

// Create opens a ticket authored by the caller.
func (h *TicketHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		httpx.Message(w, http.StatusUnauthorized, "Unauthorized request.")
		return
	}
	var req createTicketRequest
	if err := decode(r, &req); err != nil {
		badBody(w)
		return
	}
	v := validation.Violations{}
	validation.Required("subject", req.Subject, v)
	if req.Description != "" {
		validation.Match("description", req.Description, validation.DescriptionPattern, v)
	}
	if !v.Empty() {
		httpx.JSON(w, http.StatusBadRequest, v)
		return
	}

	newTicket := &models.Ticket{
		Subject:     req.Subject,
		Description: req.Description,
		Type:        req.Type,
		AuthorID:    claims.UserID,
	}
	id, err := h.Service.Create(newTicket)
	if err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusCreated, fmt.Sprintf("Ticket '%d' successfully created.", id))
}

// Update rewrites a ticket and optionally assigns an administrator.
func (h *TicketHandler) Update(w http.ResponseWriter, r *http.Request) {
	ticketID, ok := pathID(r, "ticket_id")
	if !ok {
		badParam(w, "ticket_id")
		return
	}
	var req updateTicketRequest
	if err := decode(r, &req); err != nil {
		badBody(w)
		return
	}
	v := validation.Violations{}
	validation.Required("subject", req.Subject, v)
	if req.Description != "" {
		validation.Match("description", req.Description, validation.DescriptionPattern, v)
	}
	if !v.Empty() {
		httpx.JSON(w, http.StatusBadRequest, v)
		return
	}

	updateTicket := &models.Ticket{
		Subject:     req.Subject,
		Description: req.Description,
		Type:        req.Type,
		Status:      req.Status,
		AdminID:     req.AdminID,
	}
	if err := h.Service.Update(ticketID, updateTicket); err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusOK, fmt.Sprintf("Ticket '%d' successfully updated.", ticketID))
}

// Delete removes a ticket; author or administrator.
func (h *TicketHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ticketID, ok := pathID(r, "ticket_id")
	if !ok {
		badParam(w, "ticket_id")
		return
	}
	ticket, err := h.Service.GetByID(ticketID)
	if err != nil {
		respondErr(w, err)
		return
	}
	if !selfOrAdmin(r, ticket.AuthorID) {
		httpx.Message(w, http.StatusUnauthorized, "Unauthorized request.")
		return
	}
	if err := h.Service.Delete(ticketID); err != nil {
		respondErr(w, err)
		return
	}
	httpx.Message(w, http.StatusOK, fmt.Sprintf("Ticket '%d' successfully deleted.", ticketID))
}
