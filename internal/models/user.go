package models

import "time"

// User statuses.
const (
	UserStatusWaiting   = 0
	UserStatusValidated = 1
)

type User struct {
	ID        uint   `gorm:"primaryKey"`
	FirstName string `gorm:"size:30"`
	LastName  string `gorm:"size:30"`
	Email     string `gorm:"size:320;uniqueIndex;not null"` // stored lower-case
	Phone     string `gorm:"size:50"`
	Password  string `gorm:"size:100;not null"` // bcrypt hash, never serialized
	Status    int    // 0 = waiting, 1 = validated
	ShopID    *uint
	Shop      *Shop `gorm:"foreignKey:ShopID"`

	Roles      []Role     `gorm:"many2many:user_is_role"`
	Events     []Event    `gorm:"many2many:user_participates_event"`
	Deliveries []Delivery `gorm:"many2many:user_delivers"`
	Collects   []Collect  `gorm:"many2many:user_collects"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RoleIDs returns the ids of the user's roles, embedded as token claims.
func (u *User) RoleIDs() []uint {
	ids := make([]uint, 0, len(u.Roles))
	for _, role := range u.Roles {
		ids = append(ids, role.ID)
	}
	return ids
}

// UserView is the full projection used when the user is the subject of the
// response. Related entities appear in their reference forms only.
type UserView struct {
	ID        uint       `json:"id"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Email     string     `json:"email"`
	Status    int        `json:"status"`
	Phone     string     `json:"phone"`
	Roles     []RoleRef  `json:"roles"`
	Events    []EventRef `json:"events"`
}

// UserRef is the minimal projection embedded in other entities' views.
type UserRef struct {
	URL       string `json:"url"`
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

func (u *User) Full() UserView {
	roles := make([]RoleRef, 0, len(u.Roles))
	for _, role := range u.Roles {
		roles = append(roles, role.Ref())
	}
	events := make([]EventRef, 0, len(u.Events))
	for _, event := range u.Events {
		events = append(events, event.Ref())
	}
	return UserView{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Status:    u.Status,
		Phone:     u.Phone,
		Roles:     roles,
		Events:    events,
	}
}

func (u *User) Ref() UserRef {
	return UserRef{
		URL:       resourceURL("user", u.ID),
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}
