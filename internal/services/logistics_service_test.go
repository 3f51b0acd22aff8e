package services

import (
	"testing"
	"time"

	"github.com/solifood/foodlink/internal/apperr"
	"github.com/solifood/foodlink/internal/models"
	"github.com/solifood/foodlink/internal/repository"
	"gorm.io/gorm"
)

// seedLogistics inserts the reference rows the flow entities hang off:
// one shop, one storage, one vehicle and one food.
func seedLogistics(t *testing.T, conn *gorm.DB) (shop models.Shop, storage models.Storage, vehicle models.Vehicle, food models.Food) {
	t.Helper()
	company := models.Company{Name: "Epicerie Nord"}
	if err := conn.Create(&company).Error; err != nil {
		t.Fatalf("company: %v", err)
	}
	shop = models.Shop{Name: "Corner", CompanyID: company.ID}
	if err := conn.Create(&shop).Error; err != nil {
		t.Fatalf("shop: %v", err)
	}
	warehouse := models.Warehouse{Name: "Central", Capacity: 500}
	if err := conn.Create(&warehouse).Error; err != nil {
		t.Fatalf("warehouse: %v", err)
	}
	storage = models.Storage{Name: "Cold room", WarehouseID: warehouse.ID}
	if err := conn.Create(&storage).Error; err != nil {
		t.Fatalf("storage: %v", err)
	}
	vehicle = models.Vehicle{Registration: "AB-123-CD", Brand: "Renault", Capacity: 800}
	if err := conn.Create(&vehicle).Error; err != nil {
		t.Fatalf("vehicle: %v", err)
	}
	category := models.Category{Name: "test produce"}
	if err := conn.Create(&category).Error; err != nil {
		t.Fatalf("category: %v", err)
	}
	food = models.Food{Name: "Apples", CategoryID: category.ID}
	if err := conn.Create(&food).Error; err != nil {
		t.Fatalf("food: %v", err)
	}
	return
}

func newDemandService(conn *gorm.DB) *DemandService {
	return NewDemandService(repository.NewDemandRepo(conn), repository.NewShopRepo(conn), repository.NewPackageRepo(conn))
}

func newCollectService(conn *gorm.DB) *CollectService {
	return NewCollectService(repository.NewCollectRepo(conn), repository.NewVehicleRepo(conn), repository.NewStorageRepo(conn), repository.NewDemandRepo(conn))
}

func newDeliveryService(conn *gorm.DB) *DeliveryService {
	return NewDeliveryService(repository.NewDeliveryRepo(conn), repository.NewVehicleRepo(conn), repository.NewLocationRepo(conn), repository.NewPackageRepo(conn))
}

func TestDemandCreateStampsSubmission(t *testing.T) {
	conn := setupTestDB(t)
	shop, _, _, _ := seedLogistics(t, conn)
	svc := newDemandService(conn)

	limit := time.Now().Add(48 * time.Hour)

	draftID, err := svc.Create(&models.Demand{Status: models.DemandStatusDraft, LimitDatetime: limit, ShopID: shop.ID})
	if err != nil {
		t.Fatalf("create draft: %v", err)
	}
	draft, _ := svc.GetByID(draftID)
	if draft.SubmittedDatetime != nil {
		t.Errorf("draft got a submission time")
	}

	submittedID, err := svc.Create(&models.Demand{Status: models.DemandStatusSubmitted, LimitDatetime: limit, ShopID: shop.ID})
	if err != nil {
		t.Fatalf("create submitted: %v", err)
	}
	submitted, _ := svc.GetByID(submittedID)
	if submitted.SubmittedDatetime == nil {
		t.Errorf("submitted demand missing submission time")
	}

	// the stamp survives later updates
	first := *submitted.SubmittedDatetime
	if err := svc.Update(submittedID, &models.Demand{Status: models.DemandStatusPlanned, LimitDatetime: limit, ShopID: shop.ID}); err != nil {
		t.Fatalf("update: %v", err)
	}
	updated, _ := svc.GetByID(submittedID)
	if updated.SubmittedDatetime == nil || !updated.SubmittedDatetime.Equal(first) {
		t.Errorf("submission time changed on update: %v -> %v", first, updated.SubmittedDatetime)
	}
}

func TestDemandCreateUnknownShop(t *testing.T) {
	conn := setupTestDB(t)
	svc := newDemandService(conn)

	_, err := svc.Create(&models.Demand{LimitDatetime: time.Now(), ShopID: 99})
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDemandPackageAttachment(t *testing.T) {
	conn := setupTestDB(t)
	shop, storage, _, food := seedLogistics(t, conn)
	svc := newDemandService(conn)

	limit := time.Now().Add(48 * time.Hour)
	firstID, err := svc.Create(&models.Demand{LimitDatetime: limit, ShopID: shop.ID})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	secondID, err := svc.Create(&models.Demand{LimitDatetime: limit, ShopID: shop.ID})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	pkg := models.Package{Weight: 12.5, FoodID: food.ID, StorageID: storage.ID, ExpirationDate: limit}
	if err := conn.Create(&pkg).Error; err != nil {
		t.Fatalf("package: %v", err)
	}

	if err := svc.AttachPackage(firstID, pkg.ID); err != nil {
		t.Fatalf("attach: %v", err)
	}
	// a package belongs to at most one demand
	if err := svc.AttachPackage(secondID, pkg.ID); !apperr.Is(err, apperr.KindConflict) {
		t.Errorf("expected conflict, got %v", err)
	}
	// detaching from the wrong demand reports the association missing
	if err := svc.DetachPackage(secondID, pkg.ID); !apperr.Is(err, apperr.KindNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
	if err := svc.DetachPackage(firstID, pkg.ID); err != nil {
		t.Fatalf("detach: %v", err)
	}
	if err := svc.AttachPackage(secondID, pkg.ID); err != nil {
		t.Errorf("attach after detach: %v", err)
	}
}

func TestCollectCreateBooksDemands(t *testing.T) {
	conn := setupTestDB(t)
	shop, storage, vehicle, _ := seedLogistics(t, conn)
	demands := newDemandService(conn)
	svc := newCollectService(conn)

	limit := time.Now().Add(48 * time.Hour)
	demandID, err := demands.Create(&models.Demand{LimitDatetime: limit, ShopID: shop.ID})
	if err != nil {
		t.Fatalf("demand: %v", err)
	}

	collectID, err := svc.Create(&models.Collect{Datetime: limit, VehicleID: vehicle.ID, StorageID: storage.ID}, []uint{demandID})
	if err != nil {
		t.Fatalf("collect: %v", err)
	}

	// the demand is now booked; a second run cannot take it
	_, err = svc.Create(&models.Collect{Datetime: limit, VehicleID: vehicle.ID, StorageID: storage.ID}, []uint{demandID})
	if !apperr.Is(err, apperr.KindConflict) {
		t.Errorf("expected conflict, got %v", err)
	}
	if err := svc.AttachDemand(collectID, demandID); !apperr.Is(err, apperr.KindConflict) {
		t.Errorf("expected conflict on re-attach, got %v", err)
	}

	if err := svc.DetachDemand(collectID, demandID); err != nil {
		t.Fatalf("detach: %v", err)
	}
	if err := svc.AttachDemand(collectID, demandID); err != nil {
		t.Errorf("attach after detach: %v", err)
	}

	// deleting the run frees its demands
	if err := svc.Delete(collectID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	demand, err := demands.GetByID(demandID)
	if err != nil {
		t.Fatalf("demand after delete: %v", err)
	}
	if demand.CollectID != nil {
		t.Errorf("demand still booked by collect %d", *demand.CollectID)
	}
}

func TestPackageCreateUnknownFood(t *testing.T) {
	conn := setupTestDB(t)
	_, storage, _, _ := seedLogistics(t, conn)
	svc := NewPackageService(repository.NewPackageRepo(conn), repository.NewFoodRepo(conn), repository.NewStorageRepo(conn))

	_, err := svc.Create(&models.Package{Weight: 5, FoodID: 99, StorageID: storage.ID, ExpirationDate: time.Now()})
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	// the failed insert left nothing behind
	var count int64
	if err := conn.Model(&models.Package{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("expected no package rows, found %d", count)
	}
}

func TestCollectCreateUnknownVehicle(t *testing.T) {
	conn := setupTestDB(t)
	_, storage, _, _ := seedLogistics(t, conn)
	svc := newCollectService(conn)

	_, err := svc.Create(&models.Collect{Datetime: time.Now(), VehicleID: 99, StorageID: storage.ID}, nil)
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeliveryStops(t *testing.T) {
	conn := setupTestDB(t)
	_, _, vehicle, _ := seedLogistics(t, conn)
	svc := newDeliveryService(conn)

	deliveryID, err := svc.Create(&models.Delivery{Datetime: time.Now(), VehicleID: vehicle.ID})
	if err != nil {
		t.Fatalf("delivery: %v", err)
	}
	location := models.Location{Address: "1 rue des Halles", City: "Lille"}
	if err := conn.Create(&location).Error; err != nil {
		t.Fatalf("location: %v", err)
	}

	if err := svc.AddLocation(deliveryID, location.ID); err != nil {
		t.Fatalf("add stop: %v", err)
	}
	if err := svc.AddLocation(deliveryID, location.ID); !apperr.Is(err, apperr.KindConflict) {
		t.Errorf("expected conflict, got %v", err)
	}

	roadmap, err := svc.Roadmap(deliveryID)
	if err != nil {
		t.Fatalf("roadmap: %v", err)
	}
	if len(roadmap.Locations) != 1 || roadmap.Locations[0].ID != location.ID {
		t.Errorf("roadmap stops = %#v", roadmap.Locations)
	}

	if err := svc.RemoveLocation(deliveryID, location.ID); err != nil {
		t.Fatalf("remove stop: %v", err)
	}
	if err := svc.RemoveLocation(deliveryID, location.ID); !apperr.Is(err, apperr.KindNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestTicketAssigneeMustBeAdmin(t *testing.T) {
	conn := setupTestDB(t)
	users := newUserService(conn)
	svc := NewTicketService(repository.NewTicketRepo(conn), repository.NewUserRepo(conn))

	authorID := registerUser(t, users, "author2@example.com", 2)
	ticketID, err := svc.Create(&models.Ticket{Subject: "lost package", AuthorID: authorID, Status: models.TicketStatusClosed, AdminID: &authorID})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	ticket, _ := svc.GetByID(ticketID)
	if ticket.Status != models.TicketStatusOpen || ticket.AdminID != nil {
		t.Errorf("new ticket not reset to open/unassigned: %#v", ticket)
	}

	// the author holds role 2 only, so assigning them is rejected
	err = svc.Update(ticketID, &models.Ticket{Subject: "lost package", AdminID: &authorID})
	if !apperr.Is(err, apperr.KindInvalidState) {
		t.Errorf("expected invalid state, got %v", err)
	}

	// promote and retry
	if err := users.AddRole(authorID, 1); err != nil {
		t.Fatalf("promote: %v", err)
	}
	err = svc.Update(ticketID, &models.Ticket{Subject: "lost package", Status: models.TicketStatusAssigned, AdminID: &authorID})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	ticket, _ = svc.GetByID(ticketID)
	if ticket.AdminID == nil || *ticket.AdminID != authorID {
		t.Errorf("assignee not stored: %#v", ticket)
	}
}
