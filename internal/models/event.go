package models

import "time"

// EventType categorizes events (collection day, awareness campaign, ...).
// Exposed as the /api/type resource.
type EventType struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:50;unique;not null"`
}

type EventTypeView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type EventTypeRef struct {
	URL  string `json:"url"`
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func (t *EventType) Full() EventTypeView {
	return EventTypeView{ID: t.ID, Name: t.Name}
}

func (t *EventType) Ref() EventTypeRef {
	return EventTypeRef{URL: resourceURL("type", t.ID), ID: t.ID, Name: t.Name}
}

type Event struct {
	ID          uint      `gorm:"primaryKey"`
	Name        string    `gorm:"size:50;not null"`
	Datetime    time.Time `gorm:"not null"`
	Description string    `gorm:"type:text"`
	Capacity    int
	Group       string `gorm:"size:50"`
	Place       string `gorm:"size:100"`
	TypeID      uint   `gorm:"not null"`
	Type        EventType

	Users []User `gorm:"many2many:user_participates_event"`
}

type EventView struct {
	ID          uint         `json:"id"`
	Name        string       `json:"name"`
	Datetime    string       `json:"datetime"`
	Description string       `json:"description"`
	Capacity    int          `json:"capacity"`
	Group       string       `json:"group"`
	Place       string       `json:"place"`
	Type        EventTypeRef `json:"type"`
	Users       []UserRef    `json:"users"`
}

type EventRef struct {
	URL      string `json:"url"`
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Datetime string `json:"datetime"`
	Place    string `json:"place"`
}

func (e *Event) Full() EventView {
	users := make([]UserRef, 0, len(e.Users))
	for _, user := range e.Users {
		users = append(users, user.Ref())
	}
	return EventView{
		ID:          e.ID,
		Name:        e.Name,
		Datetime:    formatTime(e.Datetime),
		Description: e.Description,
		Capacity:    e.Capacity,
		Group:       e.Group,
		Place:       e.Place,
		Type:        e.Type.Ref(),
		Users:       users,
	}
}

func (e *Event) Ref() EventRef {
	return EventRef{
		URL:      resourceURL("event", e.ID),
		ID:       e.ID,
		Name:     e.Name,
		Datetime: formatTime(e.Datetime),
		Place:    e.Place,
	}
}
