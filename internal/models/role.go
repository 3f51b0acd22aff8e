package models

type Role struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:50;unique;not null"`

	Users []User `gorm:"many2many:user_is_role"`
}

type RoleView struct {
	ID    uint      `json:"id"`
	Name  string    `json:"name"`
	Users []UserRef `json:"users"`
}

type RoleRef struct {
	URL  string `json:"url"`
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func (r *Role) Full() RoleView {
	users := make([]UserRef, 0, len(r.Users))
	for _, user := range r.Users {
		users = append(users, user.Ref())
	}
	return RoleView{ID: r.ID, Name: r.Name, Users: users}
}

func (r *Role) Ref() RoleRef {
	return RoleRef{URL: resourceURL("role", r.ID), ID: r.ID, Name: r.Name}
}
