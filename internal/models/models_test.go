package models

import (
	"testing"
	"time"
)

func TestUser_RoleIDs(t *testing.T) {
	user := &User{Roles: []Role{{ID: 2}, {ID: 4}}}
	got := user.RoleIDs()
	if len(got) != 2 || got[0] != 2 || got[1] != 4 {
		t.Errorf("RoleIDs() = %v, want [2 4]", got)
	}
}

func TestResourceURL(t *testing.T) {
	defer SetAPIPath("/api")

	role := &Role{ID: 3, Name: "driver"}
	if got := role.Ref().URL; got != "/api/role/3" {
		t.Errorf("Ref().URL = %q, want /api/role/3", got)
	}

	SetAPIPath("/v1/api")
	if got := role.Ref().URL; got != "/v1/api/role/3" {
		t.Errorf("Ref().URL = %q, want /v1/api/role/3", got)
	}

	// an empty override keeps the current prefix
	SetAPIPath("")
	if got := role.Ref().URL; got != "/v1/api/role/3" {
		t.Errorf("Ref().URL = %q, want /v1/api/role/3", got)
	}
}

func TestUser_Full(t *testing.T) {
	user := &User{
		ID:        7,
		FirstName: "Anna",
		LastName:  "Martin",
		Email:     "anna@example.com",
		Status:    UserStatusValidated,
		Roles:     []Role{{ID: 2, Name: "volunteer"}},
		Events:    []Event{{ID: 5, Name: "collection day"}},
	}
	view := user.Full()
	if view.ID != 7 || view.Email != "anna@example.com" {
		t.Errorf("unexpected view %#v", view)
	}
	if len(view.Roles) != 1 || view.Roles[0].Name != "volunteer" {
		t.Errorf("unexpected roles %#v", view.Roles)
	}
	if len(view.Events) != 1 || view.Events[0].ID != 5 {
		t.Errorf("unexpected events %#v", view.Events)
	}
}

func TestDelivery_DatetimeFormat(t *testing.T) {
	when := time.Date(2026, 3, 1, 14, 30, 0, 0, time.UTC)
	delivery := &Delivery{ID: 1, Datetime: when, Vehicle: Vehicle{ID: 2}}
	if got := delivery.Ref().Datetime; got != "2026-03-01 14:30:00" {
		t.Errorf("Ref().Datetime = %q", got)
	}
}

func TestDelivery_RoadmapFull(t *testing.T) {
	delivery := &Delivery{
		ID:      4,
		Roadmap: "north loop",
		Vehicle: Vehicle{ID: 2, Registration: "AB-123-CD"},
		Locations: []Location{
			{ID: 1, City: "Lille"},
			{ID: 2, City: "Roubaix"},
		},
		Users:    []User{{ID: 9}},
		Packages: []Package{{ID: 3}},
	}
	view := delivery.RoadmapFull()
	if view.Roadmap != "north loop" || view.Vehicle.Registration != "AB-123-CD" {
		t.Errorf("unexpected roadmap view %#v", view)
	}
	// the roadmap keeps only the stops, not crew or cargo
	if len(view.Locations) != 2 {
		t.Errorf("expected 2 stops, got %d", len(view.Locations))
	}
}

func TestDemand_SubmittedDatetime(t *testing.T) {
	demand := &Demand{ID: 1, Status: DemandStatusDraft, LimitDatetime: time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)}
	if got := demand.Full().SubmittedDatetime; got != "" {
		t.Errorf("draft demand SubmittedDatetime = %q, want empty", got)
	}

	when := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	demand.Status = DemandStatusSubmitted
	demand.SubmittedDatetime = &when
	if got := demand.Full().SubmittedDatetime; got != "2026-03-15 09:00:00" {
		t.Errorf("SubmittedDatetime = %q", got)
	}
}
