package services

import (
	"github.com/solifood/foodlink/internal/apperr"
	"github.com/solifood/foodlink/internal/models"
	"github.com/solifood/foodlink/internal/repository"
)

type TicketService struct {
	Tickets *repository.TicketRepo
	Users   *repository.UserRepo
}

func NewTicketService(tickets *repository.TicketRepo, users *repository.UserRepo) *TicketService {
	return &TicketService{Tickets: tickets, Users: users}
}

func (s *TicketService) GetByID(ticketID uint) (*models.Ticket, error) {
	ticket, err := s.Tickets.SelectOneByID(ticketID)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, apperr.NotFound("Ticket", ticketID)
	}
	return ticket, nil
}

func (s *TicketService) List() ([]models.Ticket, error) {
	return s.Tickets.SelectAll()
}

// ListByUser returns the tickets authored by the user.
func (s *TicketService) ListByUser(userID uint) ([]models.Ticket, error) {
	user, err := s.Users.SelectOneByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("User", userID)
	}
	return s.Tickets.SelectAllByUserID(userID)
}

func (s *TicketService) Page(page int) (*repository.Page[models.Ticket], error) {
	return s.Tickets.SelectPerPage(page)
}

func (s *TicketService) Search(page int, search string) (*repository.Page[models.Ticket], error) {
	return s.Tickets.SelectBySearch(page, search)
}

// Create opens a ticket for an existing author. New tickets always start open
// and unassigned.
func (s *TicketService) Create(newTicket *models.Ticket) (uint, error) {
	author, err := s.Users.SelectOneByID(newTicket.AuthorID)
	if err != nil {
		return 0, err
	}
	if author == nil {
		return 0, apperr.NotFound("User", newTicket.AuthorID)
	}
	newTicket.Status = models.TicketStatusOpen
	newTicket.AdminID = nil
	return s.Tickets.Insert(newTicket)
}

// Update overwrites the ticket. An assigned admin must exist and hold the
// administrator role.
func (s *TicketService) Update(ticketID uint, updateTicket *models.Ticket) error {
	if _, err := s.GetByID(ticketID); err != nil {
		return err
	}
	if updateTicket.AdminID != nil {
		admin, err := s.Users.SelectOneByID(*updateTicket.AdminID)
		if err != nil {
			return err
		}
		if admin == nil {
			return apperr.NotFound("User", *updateTicket.AdminID)
		}
		isAdmin := false
		for _, role := range admin.Roles {
			if role.ID == AdminRoleID {
				isAdmin = true
				break
			}
		}
		if !isAdmin {
			return apperr.InvalidState("User id '%d' is not an administrator.", *updateTicket.AdminID)
		}
	}
	return s.Tickets.Update(ticketID, updateTicket)
}

func (s *TicketService) Delete(ticketID uint) error {
	if _, err := s.GetByID(ticketID); err != nil {
		return err
	}
	return s.Tickets.Delete(ticketID)
}
