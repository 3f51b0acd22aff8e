package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/solifood/foodlink/internal/db"
	"github.com/solifood/foodlink/internal/repository"
	"github.com/solifood/foodlink/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// unique in-memory DB per test name to avoid leakage via shared cache
func setupHandlerTestDB(t *testing.T) *gorm.DB {
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

func newEventHandler(conn *gorm.DB) *EventHandler {
	return NewEventHandler(services.NewEventService(repository.NewEventRepo(conn), repository.NewEventTypeRepo(conn)))
}

func TestEventCreateValidation(t *testing.T) {
	conn := setupHandlerTestDB(t)
	h := newEventHandler(conn)

	body := `{"name":"","datetime":"tomorrow","place":"","type_id":0}`
	req := httptest.NewRequest(http.MethodPost, "/api/event", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Create(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
	var violations map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &violations); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, field := range []string{"name", "datetime", "place", "capacity", "type_id"} {
		if violations[field] == "" {
			t.Errorf("missing violation for %q: %#v", field, violations)
		}
	}
}

func TestEventCreateUnknownType(t *testing.T) {
	conn := setupHandlerTestDB(t)
	h := newEventHandler(conn)

	body := `{"name":"Spring drive","datetime":"2026-04-01 09:00:00","capacity":40,"place":"Town hall","type_id":99}`
	req := httptest.NewRequest(http.MethodPost, "/api/event", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Create(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Type id '99' not found.") {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestEventCRUD(t *testing.T) {
	conn := setupHandlerTestDB(t)
	h := newEventHandler(conn)

	body := `{"name":"Spring drive","datetime":"2026-04-01 09:00:00","description":"Annual food drive","capacity":40,"group":"north","place":"Town hall","type_id":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/event", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Create(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("create expected 201 got %d body=%s", w.Code, w.Body.String())
	}

	// the confirmation carries the new id
	var created struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	var id int
	if _, err := fmt.Sscanf(created.Message, "Event '%d' successfully created.", &id); err != nil {
		t.Fatalf("unexpected message %q", created.Message)
	}

	getReq := httptest.NewRequest(http.MethodGet, "/api/event/"+strconv.Itoa(id), nil)
	getReq.SetPathValue("event_id", strconv.Itoa(id))
	getW := httptest.NewRecorder()
	h.Get(getW, getReq)
	if getW.Code != http.StatusOK {
		t.Fatalf("get expected 200 got %d", getW.Code)
	}
	var view struct {
		Name     string `json:"name"`
		Datetime string `json:"datetime"`
		Type     struct {
			ID uint `json:"id"`
		} `json:"type"`
	}
	if err := json.Unmarshal(getW.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode view: %v", err)
	}
	if view.Name != "Spring drive" || view.Datetime != "2026-04-01 09:00:00" || view.Type.ID != 1 {
		t.Fatalf("unexpected view %#v", view)
	}

	update := `{"name":"Autumn drive","datetime":"2026-10-01 09:00:00","capacity":60,"place":"Town hall","type_id":2}`
	putReq := httptest.NewRequest(http.MethodPut, "/api/event/"+strconv.Itoa(id), strings.NewReader(update))
	putReq.SetPathValue("event_id", strconv.Itoa(id))
	putW := httptest.NewRecorder()
	h.Update(putW, putReq)
	if putW.Code != http.StatusOK {
		t.Fatalf("update expected 200 got %d body=%s", putW.Code, putW.Body.String())
	}

	delReq := httptest.NewRequest(http.MethodDelete, "/api/event/"+strconv.Itoa(id), nil)
	delReq.SetPathValue("event_id", strconv.Itoa(id))
	delW := httptest.NewRecorder()
	h.Delete(delW, delReq)
	if delW.Code != http.StatusOK {
		t.Fatalf("delete expected 200 got %d", delW.Code)
	}

	getW = httptest.NewRecorder()
	h.Get(getW, getReq)
	if getW.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", getW.Code)
	}
}

func TestEventGetBadID(t *testing.T) {
	conn := setupHandlerTestDB(t)
	h := newEventHandler(conn)

	req := httptest.NewRequest(http.MethodGet, "/api/event/abc", nil)
	req.SetPathValue("event_id", "abc")
	w := httptest.NewRecorder()
	h.Get(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid or missing parameter 'event_id'.") {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}
