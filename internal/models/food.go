package models

// Category groups foods (dry goods, dairy, produce, ...).
type Category struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:50;unique;not null"`

	Foods []Food `gorm:"foreignKey:CategoryID"`
}

type CategoryView struct {
	ID    uint      `json:"id"`
	Name  string    `json:"name"`
	Foods []FoodRef `json:"foods"`
}

type CategoryRef struct {
	URL  string `json:"url"`
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func (c *Category) Full() CategoryView {
	foods := make([]FoodRef, 0, len(c.Foods))
	for _, food := range c.Foods {
		foods = append(foods, food.Ref())
	}
	return CategoryView{ID: c.ID, Name: c.Name, Foods: foods}
}

func (c *Category) Ref() CategoryRef {
	return CategoryRef{URL: resourceURL("category", c.ID), ID: c.ID, Name: c.Name}
}

type Food struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:50;not null"`
	Description string `gorm:"type:text"`
	CategoryID  uint   `gorm:"not null"`
	Category    Category

	Packages []Package `gorm:"foreignKey:FoodID"`
}

type FoodView struct {
	ID          uint         `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Category    CategoryRef  `json:"category"`
	Packages    []PackageRef `json:"packages"`
}

type FoodRef struct {
	URL  string `json:"url"`
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func (f *Food) Full() FoodView {
	packages := make([]PackageRef, 0, len(f.Packages))
	for _, pkg := range f.Packages {
		packages = append(packages, pkg.Ref())
	}
	return FoodView{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		Category:    f.Category.Ref(),
		Packages:    packages,
	}
}

func (f *Food) Ref() FoodRef {
	return FoodRef{URL: resourceURL("food", f.ID), ID: f.ID, Name: f.Name}
}
