package models

import "time"

// Demand statuses.
const (
	DemandStatusDraft     = 0
	DemandStatusSubmitted = 1
	DemandStatusPlanned   = 2
	DemandStatusFulfilled = 3
)

// Demand is a shop's request for packages. A demand belongs to at most one
// collect run; attaching it twice is a conflict.
type Demand struct {
	ID                uint `gorm:"primaryKey"`
	Status            int
	SubmittedDatetime *time.Time
	LimitDatetime     time.Time `gorm:"not null"`
	Additional        string    `gorm:"type:text"`
	PDF               string    `gorm:"size:200"`
	QRCode            string    `gorm:"size:200"`
	ShopID            uint      `gorm:"not null"`
	Shop              Shop
	CollectID         *uint

	Packages []Package `gorm:"foreignKey:DemandID"`
}

type DemandView struct {
	ID                uint         `json:"id"`
	Status            int          `json:"status"`
	SubmittedDatetime string       `json:"submitted_datetime"`
	LimitDatetime     string       `json:"limit_datetime"`
	Additional        string       `json:"additional"`
	PDF               string       `json:"pdf"`
	QRCode            string       `json:"qr_code"`
	Shop              ShopRef      `json:"shop"`
	Packages          []PackageRef `json:"packages"`
}

type DemandRef struct {
	URL           string `json:"url"`
	ID            uint   `json:"id"`
	Status        int    `json:"status"`
	LimitDatetime string `json:"limit_datetime"`
}

func (d *Demand) Full() DemandView {
	packages := make([]PackageRef, 0, len(d.Packages))
	for _, pkg := range d.Packages {
		packages = append(packages, pkg.Ref())
	}
	return DemandView{
		ID:                d.ID,
		Status:            d.Status,
		SubmittedDatetime: formatTimePtr(d.SubmittedDatetime),
		LimitDatetime:     formatTime(d.LimitDatetime),
		Additional:        d.Additional,
		PDF:               d.PDF,
		QRCode:            d.QRCode,
		Shop:              d.Shop.Ref(),
		Packages:          packages,
	}
}

func (d *Demand) Ref() DemandRef {
	return DemandRef{
		URL:           resourceURL("demand", d.ID),
		ID:            d.ID,
		Status:        d.Status,
		LimitDatetime: formatTime(d.LimitDatetime),
	}
}
