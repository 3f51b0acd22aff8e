package models

import "time"

// Delivery statuses.
const (
	DeliveryStatusPlanned = 0
	DeliveryStatusRunning = 1
	DeliveryStatusDone    = 2
)

// Delivery is a drop-off run: drivers (users) take packages to locations with
// one vehicle, following a roadmap.
type Delivery struct {
	ID        uint      `gorm:"primaryKey"`
	Datetime  time.Time `gorm:"not null"`
	Roadmap   string    `gorm:"size:200"`
	PDF       string    `gorm:"size:200"`
	Status    int
	VehicleID uint `gorm:"not null"`
	Vehicle   Vehicle

	Packages  []Package  `gorm:"foreignKey:DeliveryID"`
	Users     []User     `gorm:"many2many:user_delivers"`
	Locations []Location `gorm:"many2many:delivers_to_location"`
}

type DeliveryView struct {
	ID        uint          `json:"id"`
	Datetime  string        `json:"datetime"`
	Roadmap   string        `json:"roadmap"`
	PDF       string        `json:"pdf"`
	Status    int           `json:"status"`
	Vehicle   VehicleRef    `json:"vehicle"`
	Users     []UserRef     `json:"users"`
	Locations []LocationRef `json:"locations"`
	Packages  []PackageRef  `json:"packages"`
}

type DeliveryRef struct {
	URL      string `json:"url"`
	ID       uint   `json:"id"`
	Datetime string `json:"datetime"`
	Roadmap  string `json:"roadmap"`
	PDF      string `json:"pdf"`
	Status   int    `json:"status"`
}

func (d *Delivery) Full() DeliveryView {
	users := make([]UserRef, 0, len(d.Users))
	for _, user := range d.Users {
		users = append(users, user.Ref())
	}
	locations := make([]LocationRef, 0, len(d.Locations))
	for _, location := range d.Locations {
		locations = append(locations, location.Ref())
	}
	packages := make([]PackageRef, 0, len(d.Packages))
	for _, pkg := range d.Packages {
		packages = append(packages, pkg.Ref())
	}
	return DeliveryView{
		ID:        d.ID,
		Datetime:  formatTime(d.Datetime),
		Roadmap:   d.Roadmap,
		PDF:       d.PDF,
		Status:    d.Status,
		Vehicle:   d.Vehicle.Ref(),
		Users:     users,
		Locations: locations,
		Packages:  packages,
	}
}

func (d *Delivery) Ref() DeliveryRef {
	return DeliveryRef{
		URL:      resourceURL("delivery", d.ID),
		ID:       d.ID,
		Datetime: formatTime(d.Datetime),
		Roadmap:  d.Roadmap,
		PDF:      d.PDF,
		Status:   d.Status,
	}
}

// RoadmapView is the dedicated projection served by the roadmap endpoint:
// the run's paperwork plus its ordered stops.
type RoadmapView struct {
	ID        uint          `json:"id"`
	Datetime  string        `json:"datetime"`
	Roadmap   string        `json:"roadmap"`
	PDF       string        `json:"pdf"`
	Vehicle   VehicleRef    `json:"vehicle"`
	Locations []LocationRef `json:"locations"`
}

func (d *Delivery) RoadmapFull() RoadmapView {
	locations := make([]LocationRef, 0, len(d.Locations))
	for _, location := range d.Locations {
		locations = append(locations, location.Ref())
	}
	return RoadmapView{
		ID:        d.ID,
		Datetime:  formatTime(d.Datetime),
		Roadmap:   d.Roadmap,
		PDF:       d.PDF,
		Vehicle:   d.Vehicle.Ref(),
		Locations: locations,
	}
}
