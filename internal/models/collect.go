package models

import "time"

// Collect statuses.
const (
	CollectStatusPlanned = 0
	CollectStatusRunning = 1
	CollectStatusDone    = 2
)

// Collect is a pickup run gathering the packages of one or more demands into
// a storage, using one vehicle.
type Collect struct {
	ID        uint      `gorm:"primaryKey"`
	Datetime  time.Time `gorm:"not null"`
	Status    int
	VehicleID uint `gorm:"not null"`
	Vehicle   Vehicle
	StorageID uint `gorm:"not null"`
	Storage   Storage

	Demands []Demand `gorm:"foreignKey:CollectID"`
	Users   []User   `gorm:"many2many:user_collects"`
}

type CollectView struct {
	ID       uint        `json:"id"`
	Datetime string      `json:"datetime"`
	Status   int         `json:"status"`
	Vehicle  VehicleRef  `json:"vehicle"`
	Storage  StorageRef  `json:"storage"`
	Demands  []DemandRef `json:"demands"`
	Users    []UserRef   `json:"users"`
}

type CollectRef struct {
	URL      string `json:"url"`
	ID       uint   `json:"id"`
	Datetime string `json:"datetime"`
	Status   int    `json:"status"`
}

func (c *Collect) Full() CollectView {
	demands := make([]DemandRef, 0, len(c.Demands))
	for _, demand := range c.Demands {
		demands = append(demands, demand.Ref())
	}
	users := make([]UserRef, 0, len(c.Users))
	for _, user := range c.Users {
		users = append(users, user.Ref())
	}
	return CollectView{
		ID:       c.ID,
		Datetime: formatTime(c.Datetime),
		Status:   c.Status,
		Vehicle:  c.Vehicle.Ref(),
		Storage:  c.Storage.Ref(),
		Demands:  demands,
		Users:    users,
	}
}

func (c *Collect) Ref() CollectRef {
	return CollectRef{
		URL:      resourceURL("collect", c.ID),
		ID:       c.ID,
		Datetime: formatTime(c.Datetime),
		Status:   c.Status,
	}
}
