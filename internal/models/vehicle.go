package models

type Vehicle struct {
	ID           uint   `gorm:"primaryKey"`
	Registration string `gorm:"size:20;unique;not null"`
	Brand        string `gorm:"size:50"`
	Model        string `gorm:"size:50"`
	Capacity     float64 // kilograms
}

type VehicleView struct {
	ID           uint    `json:"id"`
	Registration string  `json:"registration"`
	Brand        string  `json:"brand"`
	Model        string  `json:"model"`
	Capacity     float64 `json:"capacity"`
}

type VehicleRef struct {
	URL          string `json:"url"`
	ID           uint   `json:"id"`
	Registration string `json:"registration"`
}

func (v *Vehicle) Full() VehicleView {
	return VehicleView{
		ID:           v.ID,
		Registration: v.Registration,
		Brand:        v.Brand,
		Model:        v.Model,
		Capacity:     v.Capacity,
	}
}

func (v *Vehicle) Ref() VehicleRef {
	return VehicleRef{URL: resourceURL("vehicle", v.ID), ID: v.ID, Registration: v.Registration}
}
