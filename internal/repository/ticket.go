package repository

import (
	"github.com/solifood/foodlink/internal/apperr"
	"github.com/solifood/foodlink/internal/models"
	"gorm.io/gorm"
)

type TicketRepo struct{ DB *gorm.DB }

func NewTicketRepo(db *gorm.DB) *TicketRepo { return &TicketRepo{DB: db} }

func (r *TicketRepo) SelectOneByID(ticketID uint) (*models.Ticket, error) {
	query := r.DB.Preload("Author").Preload("Admin").Where("id = ?", ticketID)
	return selectOne[models.Ticket](query, "ticket", ticketID)
}

func (r *TicketRepo) SelectAll() ([]models.Ticket, error) {
	return selectAll[models.Ticket](r.DB.Preload("Author").Preload("Admin"), "ticket")
}

// SelectAllByUserID lists the tickets written by one author.
func (r *TicketRepo) SelectAllByUserID(userID uint) ([]models.Ticket, error) {
	query := r.DB.Preload("Author").Preload("Admin").Where("author_id = ?", userID)
	return selectAll[models.Ticket](query, "ticket")
}

func (r *TicketRepo) SelectPerPage(page int) (*Page[models.Ticket], error) {
	return selectPage[models.Ticket](r.DB, &models.Ticket{}, page, "ticket", "Author", "Admin")
}

func (r *TicketRepo) SelectBySearch(page int, search string) (*Page[models.Ticket], error) {
	query := r.DB.Where("subject LIKE ?", contains(search))
	return selectPage[models.Ticket](query, &models.Ticket{}, page, "ticket", "Author", "Admin")
}

func (r *TicketRepo) Insert(newTicket *models.Ticket) (uint, error) {
	if err := r.DB.Create(newTicket).Error; err != nil {
		return 0, apperr.Access("ticket", nil, "creating", err)
	}
	return newTicket.ID, nil
}

func (r *TicketRepo) Update(ticketID uint, updateTicket *models.Ticket) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var ticket models.Ticket
		if err := tx.Where("id = ?", ticketID).First(&ticket).Error; err != nil {
			return err
		}
		ticket.Subject = updateTicket.Subject
		ticket.Description = updateTicket.Description
		ticket.Type = updateTicket.Type
		ticket.Status = updateTicket.Status
		ticket.AdminID = updateTicket.AdminID
		return tx.Save(&ticket).Error
	})
	if err != nil {
		return apperr.Access("ticket", ticketID, "updating", err)
	}
	return nil
}

func (r *TicketRepo) Delete(ticketID uint) error {
	if err := r.DB.Delete(&models.Ticket{}, ticketID).Error; err != nil {
		return apperr.Access("ticket", ticketID, "deleting", err)
	}
	return nil
}
