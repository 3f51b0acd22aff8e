package services

import (
	"fmt"
	"testing"

	"github.com/solifood/foodlink/internal/apperr"
	"github.com/solifood/foodlink/internal/db"
	"github.com/solifood/foodlink/internal/models"
	"github.com/solifood/foodlink/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// unique in-memory DB per test name to avoid leakage via shared cache
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := db.Seed(conn); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return conn
}

func newUserService(conn *gorm.DB) *UserService {
	return NewUserService(
		repository.NewUserRepo(conn),
		repository.NewRoleRepo(conn),
		repository.NewEventRepo(conn),
		repository.NewDeliveryRepo(conn),
		repository.NewCollectRepo(conn),
		repository.NewShopRepo(conn),
	)
}

func registerUser(t *testing.T, svc *UserService, email string, roleID uint) uint {
	t.Helper()
	id, err := svc.Register(&models.User{
		FirstName: "Jean",
		LastName:  "Dupont",
		Email:     email,
		Password:  "Str0ng!pass",
	}, roleID)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	return id
}

func TestRegisterDefaults(t *testing.T) {
	conn := setupTestDB(t)
	svc := newUserService(conn)

	id, err := svc.Register(&models.User{
		FirstName: "Jean",
		LastName:  "Dupont",
		Email:     "Jean.Dupont@Example.COM",
		Password:  "Str0ng!pass",
		Status:    models.UserStatusValidated, // must be ignored
	}, 2)
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	user, err := svc.GetByID(id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if user.Email != "jean.dupont@example.com" {
		t.Errorf("email stored as %q, want lower-case", user.Email)
	}
	if user.Status != models.UserStatusWaiting {
		t.Errorf("status = %d, want waiting", user.Status)
	}
	if user.Password == "Str0ng!pass" {
		t.Errorf("password stored in clear")
	}
	if len(user.Roles) != 1 || user.Roles[0].ID != 2 {
		t.Errorf("roles = %#v, want the requested role only", user.Roles)
	}
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	conn := setupTestDB(t)
	svc := newUserService(conn)

	_, err := svc.Register(&models.User{Email: "a@example.com", Password: "Str0ng!pass"}, 1)
	if !apperr.Is(err, apperr.KindUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	conn := setupTestDB(t)
	svc := newUserService(conn)
	registerUser(t, svc, "dup@example.com", 2)

	// the duplicate check is case-insensitive through lower-casing
	_, err := svc.Register(&models.User{Email: "DUP@example.com", Password: "Str0ng!pass"}, 3)
	if !apperr.Is(err, apperr.KindConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	conn := setupTestDB(t)
	svc := newUserService(conn)
	registerUser(t, svc, "login@example.com", 2)

	user, err := svc.Authenticate("Login@Example.com", "Str0ng!pass")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if len(user.Roles) != 1 {
		t.Errorf("expected roles loaded, got %#v", user.Roles)
	}

	if _, err := svc.Authenticate("login@example.com", "wrong"); !apperr.Is(err, apperr.KindUnauthorized) {
		t.Errorf("wrong password: expected unauthorized, got %v", err)
	}
	if _, err := svc.Authenticate("nobody@example.com", "Str0ng!pass"); !apperr.Is(err, apperr.KindUnauthorized) {
		t.Errorf("unknown email: expected unauthorized, got %v", err)
	}
}

func TestRoleAssignment(t *testing.T) {
	conn := setupTestDB(t)
	svc := newUserService(conn)
	userID := registerUser(t, svc, "roles@example.com", 2)

	// duplicate assignment
	if err := svc.AddRole(userID, 2); !apperr.Is(err, apperr.KindConflict) {
		t.Errorf("expected conflict, got %v", err)
	}
	// unknown role
	if err := svc.AddRole(userID, 99); !apperr.Is(err, apperr.KindNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
	// removing a role the user does not hold
	if err := svc.RemoveRole(userID, 3); !apperr.Is(err, apperr.KindNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
	// the last role cannot be removed
	if err := svc.RemoveRole(userID, 2); !apperr.Is(err, apperr.KindInvalidState) {
		t.Errorf("expected invalid state, got %v", err)
	}

	if err := svc.AddRole(userID, 3); err != nil {
		t.Fatalf("add role: %v", err)
	}
	if err := svc.RemoveRole(userID, 2); err != nil {
		t.Fatalf("remove role: %v", err)
	}
	user, _ := svc.GetByID(userID)
	if len(user.Roles) != 1 || user.Roles[0].ID != 3 {
		t.Errorf("roles = %#v, want role 3 only", user.Roles)
	}
}

func TestUpdateKeepsPasswordWhenEmpty(t *testing.T) {
	conn := setupTestDB(t)
	svc := newUserService(conn)
	userID := registerUser(t, svc, "update@example.com", 2)

	err := svc.Update(userID, &models.User{
		FirstName: "Paul",
		LastName:  "Martin",
		Email:     "update@example.com",
		Password:  "",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	// old password still authenticates
	if _, err := svc.Authenticate("update@example.com", "Str0ng!pass"); err != nil {
		t.Errorf("authenticate after update: %v", err)
	}
}

func TestUpdateRejectsTakenEmail(t *testing.T) {
	conn := setupTestDB(t)
	svc := newUserService(conn)
	registerUser(t, svc, "first@example.com", 2)
	secondID := registerUser(t, svc, "second@example.com", 2)

	err := svc.Update(secondID, &models.User{Email: "first@example.com"})
	if !apperr.Is(err, apperr.KindConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestDeleteCascadesTickets(t *testing.T) {
	conn := setupTestDB(t)
	svc := newUserService(conn)
	userID := registerUser(t, svc, "author@example.com", 2)

	tickets := NewTicketService(repository.NewTicketRepo(conn), repository.NewUserRepo(conn))
	ticketID, err := tickets.Create(&models.Ticket{Subject: "account issue", AuthorID: userID})
	if err != nil {
		t.Fatalf("create ticket: %v", err)
	}

	if err := svc.Delete(userID); err != nil {
		t.Fatalf("delete user: %v", err)
	}
	if _, err := svc.GetByID(userID); !apperr.Is(err, apperr.KindNotFound) {
		t.Errorf("expected user gone, got %v", err)
	}
	if _, err := tickets.GetByID(ticketID); !apperr.Is(err, apperr.KindNotFound) {
		t.Errorf("expected authored ticket gone, got %v", err)
	}
}

func TestDeleteKeepsAssignedTickets(t *testing.T) {
	// foreign keys on, so a dangling admin_id would make the delete fail
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := db.Seed(conn); err != nil {
		t.Fatalf("seed: %v", err)
	}
	svc := newUserService(conn)
	tickets := NewTicketService(repository.NewTicketRepo(conn), repository.NewUserRepo(conn))

	authorID := registerUser(t, svc, "reporter@example.com", 2)
	assigneeID := registerUser(t, svc, "handler@example.com", 2)
	if err := svc.AddRole(assigneeID, 1); err != nil {
		t.Fatalf("promote: %v", err)
	}

	ticketID, err := tickets.Create(&models.Ticket{Subject: "cold chain broken", AuthorID: authorID})
	if err != nil {
		t.Fatalf("create ticket: %v", err)
	}
	if err := tickets.Update(ticketID, &models.Ticket{Subject: "cold chain broken", Status: models.TicketStatusAssigned, AdminID: &assigneeID}); err != nil {
		t.Fatalf("assign: %v", err)
	}

	if err := svc.Delete(assigneeID); err != nil {
		t.Fatalf("delete assignee: %v", err)
	}

	// the assigned ticket stays, merely unassigned; the author is untouched
	ticket, err := tickets.GetByID(ticketID)
	if err != nil {
		t.Fatalf("ticket after delete: %v", err)
	}
	if ticket.AdminID != nil {
		t.Errorf("ticket still assigned to %d", *ticket.AdminID)
	}
	if _, err := svc.GetByID(authorID); err != nil {
		t.Errorf("author gone: %v", err)
	}
}

func TestShopAssignment(t *testing.T) {
	conn := setupTestDB(t)
	svc := newUserService(conn)
	userID := registerUser(t, svc, "keeper@example.com", 4)

	company := models.Company{Name: "Epicerie Nord"}
	if err := conn.Create(&company).Error; err != nil {
		t.Fatalf("company: %v", err)
	}
	shop := models.Shop{Name: "Corner", CompanyID: company.ID}
	if err := conn.Create(&shop).Error; err != nil {
		t.Fatalf("shop: %v", err)
	}

	if err := svc.AddShop(userID, 99); !apperr.Is(err, apperr.KindNotFound) {
		t.Errorf("unknown shop: expected not found, got %v", err)
	}
	if err := svc.RemoveShop(userID, shop.ID); !apperr.Is(err, apperr.KindNotFound) {
		t.Errorf("not assigned yet: expected not found, got %v", err)
	}

	if err := svc.AddShop(userID, shop.ID); err != nil {
		t.Fatalf("add shop: %v", err)
	}
	if err := svc.AddShop(userID, shop.ID); !apperr.Is(err, apperr.KindConflict) {
		t.Errorf("expected conflict, got %v", err)
	}
	if err := svc.RemoveShop(userID, shop.ID); err != nil {
		t.Fatalf("remove shop: %v", err)
	}

	user, _ := svc.GetByID(userID)
	if user.ShopID != nil {
		t.Errorf("ShopID = %v, want nil", *user.ShopID)
	}
}
