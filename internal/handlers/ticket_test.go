package handlers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/solifood/foodlink/internal/auth"
	"github.com/solifood/foodlink/internal/models"
	"github.com/solifood/foodlink/internal/repository"
	"github.com/solifood/foodlink/internal/services"
	"gorm.io/gorm"
)

func newTicketHandler(conn *gorm.DB) *TicketHandler {
	return NewTicketHandler(services.NewTicketService(repository.NewTicketRepo(conn), repository.NewUserRepo(conn)))
}

func seedTicketFixtures(t *testing.T, conn *gorm.DB) (author models.User, ticket models.Ticket) {
	t.Helper()
	author = models.User{Email: "author@example.com", Password: "hash"}
	if err := conn.Create(&author).Error; err != nil {
		t.Fatalf("author: %v", err)
	}
	ticket = models.Ticket{Subject: "missing delivery", AuthorID: author.ID}
	if err := conn.Create(&ticket).Error; err != nil {
		t.Fatalf("ticket: %v", err)
	}
	return
}

func asUser(req *http.Request, userID uint, roles ...uint) *http.Request {
	claims := &auth.Claims{UserID: userID, Roles: roles}
	return req.WithContext(auth.WithClaims(req.Context(), claims))
}

func TestTicketGetOwnership(t *testing.T) {
	conn := setupHandlerTestDB(t)
	h := newTicketHandler(conn)
	author, ticket := seedTicketFixtures(t, conn)

	path := "/api/ticket/" + strconv.Itoa(int(ticket.ID))
	id := strconv.Itoa(int(ticket.ID))

	// the author reads their own ticket
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.SetPathValue("ticket_id", id)
	w := httptest.NewRecorder()
	h.Get(w, asUser(req, author.ID, 2))
	if w.Code != http.StatusOK {
		t.Fatalf("author expected 200 got %d body=%s", w.Code, w.Body.String())
	}

	// another user does not
	req = httptest.NewRequest(http.MethodGet, path, nil)
	req.SetPathValue("ticket_id", id)
	w = httptest.NewRecorder()
	h.Get(w, asUser(req, author.ID+1, 2))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("stranger expected 401 got %d", w.Code)
	}

	// an administrator does
	req = httptest.NewRequest(http.MethodGet, path, nil)
	req.SetPathValue("ticket_id", id)
	w = httptest.NewRecorder()
	h.Get(w, asUser(req, author.ID+1, 1))
	if w.Code != http.StatusOK {
		t.Fatalf("admin expected 200 got %d", w.Code)
	}
}

func TestTicketCreateAuthoredByCaller(t *testing.T) {
	conn := setupHandlerTestDB(t)
	h := newTicketHandler(conn)
	author, _ := seedTicketFixtures(t, conn)

	body := `{"subject":"wrong address","description":"The drop-off moved.","type":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/ticket", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Create(w, asUser(req, author.ID, 2))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d body=%s", w.Code, w.Body.String())
	}

	var stored models.Ticket
	if err := conn.Where("subject = ?", "wrong address").First(&stored).Error; err != nil {
		t.Fatalf("stored ticket: %v", err)
	}
	if stored.AuthorID != author.ID {
		t.Errorf("AuthorID = %d, want %d", stored.AuthorID, author.ID)
	}
	if stored.Status != models.TicketStatusOpen || stored.AdminID != nil {
		t.Errorf("new ticket not open/unassigned: %#v", stored)
	}
}

func TestTicketDeleteOwnership(t *testing.T) {
	conn := setupHandlerTestDB(t)
	h := newTicketHandler(conn)
	author, ticket := seedTicketFixtures(t, conn)

	id := strconv.Itoa(int(ticket.ID))
	req := httptest.NewRequest(http.MethodDelete, "/api/ticket/"+id, nil)
	req.SetPathValue("ticket_id", id)
	w := httptest.NewRecorder()
	h.Delete(w, asUser(req, author.ID+1, 2))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("stranger expected 401 got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/ticket/"+id, nil)
	req.SetPathValue("ticket_id", id)
	w = httptest.NewRecorder()
	h.Delete(w, asUser(req, author.ID, 2))
	if w.Code != http.StatusOK {
		t.Fatalf("author expected 200 got %d body=%s", w.Code, w.Body.String())
	}
}
