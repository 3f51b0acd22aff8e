package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/solifood/foodlink/internal/auth"
	"github.com/solifood/foodlink/internal/db"
	"github.com/solifood/foodlink/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestApp(t *testing.T) (*App, *gorm.DB, *auth.Manager) {
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
	tokens := auth.NewManager("e2e-secret", time.Hour, 24*time.Hour)
	return NewApp(conn, tokens), conn, tokens
}

func doJSON(t *testing.T, app *App, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	app.ServeHTTP(w, req)
	return w
}

// registerAndLogin creates a volunteer account through the public endpoints
// and returns the access and refresh tokens.
func registerAndLogin(t *testing.T, app *App, email string) (access, refresh string) {
	t.Helper()
	body := `{"first_name":"Jean","last_name":"Dupont","email":"` + email + `","phone":"+33612345678","password":"Str0ng!pass","role_id":2}`
	w := doJSON(t, app, http.MethodPost, "/api/register", body, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("register expected 201 got %d body=%s", w.Code, w.Body.String())
	}
	login := doJSON(t, app, http.MethodPost, "/api/login", `{"email":"`+email+`","password":"Str0ng!pass"}`, "")
	if login.Code != http.StatusOK {
		t.Fatalf("login expected 200 got %d body=%s", login.Code, login.Body.String())
	}
	var tokensResp struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.Unmarshal(login.Body.Bytes(), &tokensResp); err != nil {
		t.Fatalf("decode login: %v", err)
	}
	return tokensResp.AccessToken, tokensResp.RefreshToken
}

// adminToken promotes the user behind email to administrator and logs in again
// so the new role lands in the claims.
func adminToken(t *testing.T, app *App, conn *gorm.DB, email string) string {
	t.Helper()
	registerAndLogin(t, app, email)
	var user models.User
	if err := conn.Where("email = ?", email).First(&user).Error; err != nil {
		t.Fatalf("find user: %v", err)
	}
	if err := conn.Model(&user).Association("Roles").Append(&models.Role{ID: 1}); err != nil {
		t.Fatalf("promote: %v", err)
	}
	login := doJSON(t, app, http.MethodPost, "/api/login", `{"email":"`+email+`","password":"Str0ng!pass"}`, "")
	var tokensResp struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(login.Body.Bytes(), &tokensResp); err != nil {
		t.Fatalf("decode login: %v", err)
	}
	return tokensResp.AccessToken
}

func TestRegisterLoginProtectedFlow(t *testing.T) {
	app, _, _ := setupTestApp(t)
	access, refresh := registerAndLogin(t, app, "flow@example.com")

	// no token
	w := doJSON(t, app, http.MethodGet, "/api/protected", "", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", w.Code)
	}

	// access token
	w = doJSON(t, app, http.MethodGet, "/api/protected", "", access)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", w.Code, w.Body.String())
	}
	var identity struct {
		LoggedInAs uint   `json:"logged_in_as"`
		Roles      []uint `json:"roles"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &identity); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if identity.LoggedInAs == 0 || len(identity.Roles) != 1 || identity.Roles[0] != 2 {
		t.Fatalf("unexpected identity %#v", identity)
	}

	// a refresh token cannot authenticate a request
	w = doJSON(t, app, http.MethodGet, "/api/protected", "", refresh)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with refresh token, got %d", w.Code)
	}

	// but it buys a new access token
	w = doJSON(t, app, http.MethodPost, "/api/token/refresh", "", refresh)
	if w.Code != http.StatusOK {
		t.Fatalf("refresh expected 200 got %d body=%s", w.Code, w.Body.String())
	}
	var refreshed struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &refreshed); err != nil {
		t.Fatalf("decode refresh: %v", err)
	}
	w = doJSON(t, app, http.MethodGet, "/api/protected", "", refreshed.AccessToken)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with refreshed token, got %d", w.Code)
	}
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	app, _, _ := setupTestApp(t)
	body := `{"first_name":"Eve","last_name":"Martin","email":"eve@example.com","phone":"+33612345678","password":"Str0ng!pass","role_id":1}`
	w := doJSON(t, app, http.MethodPost, "/api/register", body, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d body=%s", w.Code, w.Body.String())
	}
}

func TestRegisterValidation(t *testing.T) {
	app, _, _ := setupTestApp(t)
	body := `{"first_name":"Eve","last_name":"Martin","email":"not-an-email","phone":"+33612345678","password":"weak","role_id":2}`
	w := doJSON(t, app, http.MethodPost, "/api/register", body, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
	var violations map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &violations); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if violations["email"] == "" || violations["password"] == "" {
		t.Fatalf("expected email and password violations, got %#v", violations)
	}
}

func TestAdminOnlyRoutes(t *testing.T) {
	app, conn, _ := setupTestApp(t)
	access, _ := registerAndLogin(t, app, "volunteer@example.com")

	// a volunteer cannot create roles
	w := doJSON(t, app, http.MethodPost, "/api/role", `{"name":"auditor"}`, access)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d body=%s", w.Code, w.Body.String())
	}

	admin := adminToken(t, app, conn, "admin@example.com")
	w = doJSON(t, app, http.MethodPost, "/api/role", `{"name":"auditor"}`, admin)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d body=%s", w.Code, w.Body.String())
	}
}

func TestEmptyListWording(t *testing.T) {
	app, _, _ := setupTestApp(t)
	access, _ := registerAndLogin(t, app, "empty@example.com")

	// an empty listing is not an error
	w := doJSON(t, app, http.MethodGet, "/api/event", "", access)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	var msg struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &msg); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if msg.Message != "No events found." {
		t.Fatalf("message = %q", msg.Message)
	}
}

func TestVehiclePagination(t *testing.T) {
	app, conn, _ := setupTestApp(t)
	access, _ := registerAndLogin(t, app, "pages@example.com")

	for i := 0; i < 9; i++ {
		vehicle := models.Vehicle{Registration: fmt.Sprintf("AA-%03d-AA", i), Capacity: 500}
		if err := conn.Create(&vehicle).Error; err != nil {
			t.Fatalf("vehicle: %v", err)
		}
	}

	w := doJSON(t, app, http.MethodGet, "/api/vehicle/page/1", "", access)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", w.Code, w.Body.String())
	}
	var page struct {
		MaxPages int              `json:"max_pages"`
		Vehicles []map[string]any `json:"vehicles"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &page); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if page.MaxPages != 2 || len(page.Vehicles) != 8 {
		t.Fatalf("page 1: max_pages=%d items=%d", page.MaxPages, len(page.Vehicles))
	}

	w = doJSON(t, app, http.MethodGet, "/api/vehicle/page/2", "", access)
	if w.Code != http.StatusOK {
		t.Fatalf("page 2 expected 200 got %d", w.Code)
	}
	if err := json.Unmarshal(w.Body.Bytes(), &page); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(page.Vehicles) != 1 {
		t.Fatalf("page 2: items=%d", len(page.Vehicles))
	}

	// out of range pages read as empty, not as an error
	w = doJSON(t, app, http.MethodGet, "/api/vehicle/page/3", "", access)
	if w.Code != http.StatusOK {
		t.Fatalf("page 3 expected 200 got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "No vehicles found.") {
		t.Fatalf("page 3 body = %s", w.Body.String())
	}

	// search narrows by registration
	w = doJSON(t, app, http.MethodGet, "/api/vehicle/page/1/search/008", "", access)
	if w.Code != http.StatusOK {
		t.Fatalf("search expected 200 got %d body=%s", w.Code, w.Body.String())
	}
	if err := json.Unmarshal(w.Body.Bytes(), &page); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(page.Vehicles) != 1 {
		t.Fatalf("search: items=%d", len(page.Vehicles))
	}
}

func TestSelfOrAdminOnUserUpdate(t *testing.T) {
	app, conn, _ := setupTestApp(t)
	first, _ := registerAndLogin(t, app, "one@example.com")
	registerAndLogin(t, app, "two@example.com")

	var other models.User
	if err := conn.Where("email = ?", "two@example.com").First(&other).Error; err != nil {
		t.Fatalf("find user: %v", err)
	}

	body := `{"first_name":"Paul","last_name":"Martin","email":"two@example.com","phone":"+33612345678","password":"","status":0}`
	w := doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/user/%d", other.ID), body, first)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d body=%s", w.Code, w.Body.String())
	}

	admin := adminToken(t, app, conn, "boss@example.com")
	w = doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/user/%d", other.ID), body, admin)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", w.Code, w.Body.String())
	}
}

func TestUserRoleAssociationRoutes(t *testing.T) {
	app, conn, _ := setupTestApp(t)
	registerAndLogin(t, app, "member@example.com")
	admin := adminToken(t, app, conn, "chief@example.com")

	var member models.User
	if err := conn.Where("email = ?", "member@example.com").First(&member).Error; err != nil {
		t.Fatalf("find user: %v", err)
	}

	path := fmt.Sprintf("/api/user/%d/role/3", member.ID)
	w := doJSON(t, app, http.MethodPost, path, "", admin)
	if w.Code != http.StatusCreated {
		t.Fatalf("assign expected 201 got %d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "successfully assigned") {
		t.Fatalf("unexpected body %s", w.Body.String())
	}

	// duplicate assignment is a conflict
	w = doJSON(t, app, http.MethodPost, path, "", admin)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate expected 400 got %d", w.Code)
	}

	w = doJSON(t, app, http.MethodDelete, path, "", admin)
	if w.Code != http.StatusOK {
		t.Fatalf("remove expected 200 got %d body=%s", w.Code, w.Body.String())
	}
}

func TestDemandRoutesRequireShopkeeper(t *testing.T) {
	app, conn, _ := setupTestApp(t)
	volunteer, _ := registerAndLogin(t, app, "helper@example.com")

	w := doJSON(t, app, http.MethodGet, "/api/demand", "", volunteer)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("volunteer expected 401 got %d", w.Code)
	}

	// a shopkeeper account
	body := `{"first_name":"Lea","last_name":"Bernard","email":"keeper@example.com","phone":"+33612345678","password":"Str0ng!pass","role_id":4}`
	if w := doJSON(t, app, http.MethodPost, "/api/register", body, ""); w.Code != http.StatusCreated {
		t.Fatalf("register keeper: %d %s", w.Code, w.Body.String())
	}
	login := doJSON(t, app, http.MethodPost, "/api/login", `{"email":"keeper@example.com","password":"Str0ng!pass"}`, "")
	var tokensResp struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(login.Body.Bytes(), &tokensResp); err != nil {
		t.Fatalf("decode login: %v", err)
	}
	keeper := tokensResp.AccessToken

	company := models.Company{Name: "Epicerie Nord"}
	if err := conn.Create(&company).Error; err != nil {
		t.Fatalf("company: %v", err)
	}
	shop := models.Shop{Name: "Corner", CompanyID: company.ID}
	if err := conn.Create(&shop).Error; err != nil {
		t.Fatalf("shop: %v", err)
	}

	demand := fmt.Sprintf(`{"status":1,"limit_datetime":"2026-09-20 12:00:00","additional":"before noon","shop_id":%d}`, shop.ID)
	w = doJSON(t, app, http.MethodPost, "/api/demand", demand, keeper)
	if w.Code != http.StatusCreated {
		t.Fatalf("demand expected 201 got %d body=%s", w.Code, w.Body.String())
	}
}

func TestDeliveryRoadmapRoute(t *testing.T) {
	// NewApp registers both the roadmap and the page patterns; they must
	// coexist on the mux
	app, _, _ := setupTestApp(t)
	access, _ := registerAndLogin(t, app, "routes@example.com")

	w := doJSON(t, app, http.MethodGet, "/api/delivery/page/1", "", access)
	if w.Code != http.StatusOK {
		t.Fatalf("page expected 200 got %d body=%s", w.Code, w.Body.String())
	}

	w = doJSON(t, app, http.MethodGet, "/api/delivery/roadmap/42", "", access)
	if w.Code != http.StatusNotFound {
		t.Fatalf("roadmap expected 404 got %d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Delivery id '42' not found.") {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestUnknownEntityWording(t *testing.T) {
	app, _, _ := setupTestApp(t)
	access, _ := registerAndLogin(t, app, "missing@example.com")

	w := doJSON(t, app, http.MethodGet, "/api/food/42", "", access)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Food id '42' not found.") {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}
