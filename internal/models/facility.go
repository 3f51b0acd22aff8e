package models

// Facility entities: the hierarchy of places food moves through.
// Shop belongs to a Company; Storage belongs to a Warehouse; Shops and
// Warehouses sit at Locations; Deliveries stop at Locations.

type Location struct {
	ID         uint   `gorm:"primaryKey"`
	Address    string `gorm:"size:200;not null"`
	PostalCode string `gorm:"size:10"`
	City       string `gorm:"size:100"`
	Country    string `gorm:"size:100"`

	Deliveries []Delivery `gorm:"many2many:delivers_to_location"`
}

type LocationView struct {
	ID         uint          `json:"id"`
	Address    string        `json:"address"`
	PostalCode string        `json:"postal_code"`
	City       string        `json:"city"`
	Country    string        `json:"country"`
	Deliveries []DeliveryRef `json:"deliveries"`
}

type LocationRef struct {
	URL        string `json:"url"`
	ID         uint   `json:"id"`
	Address    string `json:"address"`
	PostalCode string `json:"postal_code"`
	City       string `json:"city"`
}

func (l *Location) Full() LocationView {
	deliveries := make([]DeliveryRef, 0, len(l.Deliveries))
	for _, delivery := range l.Deliveries {
		deliveries = append(deliveries, delivery.Ref())
	}
	return LocationView{
		ID:         l.ID,
		Address:    l.Address,
		PostalCode: l.PostalCode,
		City:       l.City,
		Country:    l.Country,
		Deliveries: deliveries,
	}
}

func (l *Location) Ref() LocationRef {
	return LocationRef{
		URL:        resourceURL("location", l.ID),
		ID:         l.ID,
		Address:    l.Address,
		PostalCode: l.PostalCode,
		City:       l.City,
	}
}

type Company struct {
	ID    uint   `gorm:"primaryKey"`
	Name  string `gorm:"size:100;not null"`
	Siret string `gorm:"size:14"`
	Phone string `gorm:"size:50"`

	Shops []Shop `gorm:"foreignKey:CompanyID"`
}

type CompanyView struct {
	ID    uint      `json:"id"`
	Name  string    `json:"name"`
	Siret string    `json:"siret"`
	Phone string    `json:"phone"`
	Shops []ShopRef `json:"shops"`
}

type CompanyRef struct {
	URL  string `json:"url"`
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func (c *Company) Full() CompanyView {
	shops := make([]ShopRef, 0, len(c.Shops))
	for _, shop := range c.Shops {
		shops = append(shops, shop.Ref())
	}
	return CompanyView{ID: c.ID, Name: c.Name, Siret: c.Siret, Phone: c.Phone, Shops: shops}
}

func (c *Company) Ref() CompanyRef {
	return CompanyRef{URL: resourceURL("company", c.ID), ID: c.ID, Name: c.Name}
}

type Shop struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"size:100;not null"`
	CompanyID  uint   `gorm:"not null"`
	Company    Company
	LocationID *uint
	Location   *Location
}

type ShopView struct {
	ID       uint         `json:"id"`
	Name     string       `json:"name"`
	Company  CompanyRef   `json:"company"`
	Location *LocationRef `json:"location"`
}

type ShopRef struct {
	URL  string `json:"url"`
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func (s *Shop) Full() ShopView {
	view := ShopView{ID: s.ID, Name: s.Name, Company: s.Company.Ref()}
	if s.Location != nil {
		ref := s.Location.Ref()
		view.Location = &ref
	}
	return view
}

func (s *Shop) Ref() ShopRef {
	return ShopRef{URL: resourceURL("shop", s.ID), ID: s.ID, Name: s.Name}
}

type Warehouse struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"size:100;not null"`
	Capacity   int
	LocationID *uint
	Location   *Location

	Storages []Storage `gorm:"foreignKey:WarehouseID"`
}

type WarehouseView struct {
	ID       uint         `json:"id"`
	Name     string       `json:"name"`
	Capacity int          `json:"capacity"`
	Location *LocationRef `json:"location"`
	Storages []StorageRef `json:"storages"`
}

type WarehouseRef struct {
	URL  string `json:"url"`
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func (w *Warehouse) Full() WarehouseView {
	storages := make([]StorageRef, 0, len(w.Storages))
	for _, storage := range w.Storages {
		storages = append(storages, storage.Ref())
	}
	view := WarehouseView{ID: w.ID, Name: w.Name, Capacity: w.Capacity, Storages: storages}
	if w.Location != nil {
		ref := w.Location.Ref()
		view.Location = &ref
	}
	return view
}

func (w *Warehouse) Ref() WarehouseRef {
	return WarehouseRef{URL: resourceURL("warehouse", w.ID), ID: w.ID, Name: w.Name}
}

type Storage struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null"`
	WarehouseID uint   `gorm:"not null"`
	Warehouse   Warehouse

	Packages []Package `gorm:"foreignKey:StorageID"`
}

type StorageView struct {
	ID        uint         `json:"id"`
	Name      string       `json:"name"`
	Warehouse WarehouseRef `json:"warehouse"`
	Packages  []PackageRef `json:"packages"`
}

type StorageRef struct {
	URL  string `json:"url"`
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func (s *Storage) Full() StorageView {
	packages := make([]PackageRef, 0, len(s.Packages))
	for _, pkg := range s.Packages {
		packages = append(packages, pkg.Ref())
	}
	return StorageView{ID: s.ID, Name: s.Name, Warehouse: s.Warehouse.Ref(), Packages: packages}
}

func (s *Storage) Ref() StorageRef {
	return StorageRef{URL: resourceURL("storage", s.ID), ID: s.ID, Name: s.Name}
}
