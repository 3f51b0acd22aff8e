package models

import "time"

// Package is a donated batch of one food kept in one storage. A package may
// later be attached to a demand and to a delivery.
type Package struct {
	ID             uint    `gorm:"primaryKey"`
	Weight         float64 `gorm:"not null"` // kilograms
	Description    string  `gorm:"type:text"`
	ExpirationDate time.Time
	FoodID         uint `gorm:"not null"`
	Food           Food
	StorageID      uint `gorm:"not null"`
	Storage        Storage
	DemandID       *uint
	DeliveryID     *uint
}

type PackageView struct {
	ID             uint       `json:"id"`
	Weight         float64    `json:"weight"`
	Description    string     `json:"description"`
	ExpirationDate string     `json:"expiration_date"`
	Food           FoodRef    `json:"food"`
	Storage        StorageRef `json:"storage"`
}

type PackageRef struct {
	URL            string  `json:"url"`
	ID             uint    `json:"id"`
	Weight         float64 `json:"weight"`
	Description    string  `json:"description"`
	ExpirationDate string  `json:"expiration_date"`
}

func (p *Package) Full() PackageView {
	return PackageView{
		ID:             p.ID,
		Weight:         p.Weight,
		Description:    p.Description,
		ExpirationDate: formatTime(p.ExpirationDate),
		Food:           p.Food.Ref(),
		Storage:        p.Storage.Ref(),
	}
}

func (p *Package) Ref() PackageRef {
	return PackageRef{
		URL:            resourceURL("package", p.ID),
		ID:             p.ID,
		Weight:         p.Weight,
		Description:    p.Description,
		ExpirationDate: formatTime(p.ExpirationDate),
	}
}
