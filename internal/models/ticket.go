package models

import "time"

// Ticket statuses.
const (
	TicketStatusOpen     = 0
	TicketStatusAssigned = 1
	TicketStatusClosed   = 2
)

// Ticket is a support request written by a user. An administrator may be
// assigned to it later.
type Ticket struct {
	ID          uint   `gorm:"primaryKey"`
	Subject     string `gorm:"size:100;not null"`
	Description string `gorm:"type:text"`
	Type        int
	Status      int
	AuthorID    uint `gorm:"not null"`
	Author      User `gorm:"foreignKey:AuthorID"`
	AdminID     *uint
	Admin       *User `gorm:"foreignKey:AdminID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type TicketView struct {
	ID          uint     `json:"id"`
	Subject     string   `json:"subject"`
	Description string   `json:"description"`
	Type        int      `json:"type"`
	Status      int      `json:"status"`
	Author      UserRef  `json:"author"`
	Admin       *UserRef `json:"admin"`
}

type TicketRef struct {
	URL     string `json:"url"`
	ID      uint   `json:"id"`
	Subject string `json:"subject"`
	Status  int    `json:"status"`
}

func (t *Ticket) Full() TicketView {
	view := TicketView{
		ID:          t.ID,
		Subject:     t.Subject,
		Description: t.Description,
		Type:        t.Type,
		Status:      t.Status,
		Author:      t.Author.Ref(),
	}
	if t.Admin != nil {
		ref := t.Admin.Ref()
		view.Admin = &ref
	}
	return view
}

func (t *Ticket) Ref() TicketRef {
	return TicketRef{URL: resourceURL("ticket", t.ID), ID: t.ID, Subject: t.Subject, Status: t.Status}
}
