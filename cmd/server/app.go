package main

import (
	"net/http"

	"github.com/solifood/foodlink/internal/auth"
	"github.com/solifood/foodlink/internal/handlers"
	"github.com/solifood/foodlink/internal/repository"
	"github.com/solifood/foodlink/internal/services"
	"gorm.io/gorm"
)

// shopkeeperRoleID matches the seeded shopkeeper role, allowed on the demand
// endpoints alongside administrators.
const shopkeeperRoleID uint = 4

// App is the main application handler that sets up all routes.
type App struct {
	mux    *http.ServeMux
	db     *gorm.DB
	tokens *auth.Manager

	authH      *handlers.AuthHandler
	userH      *handlers.UserHandler
	roleH      *handlers.RoleHandler
	eventH     *handlers.EventHandler
	typeH      *handlers.EventTypeHandler
	categoryH  *handlers.CategoryHandler
	foodH      *handlers.FoodHandler
	packageH   *handlers.PackageHandler
	storageH   *handlers.StorageHandler
	warehouseH *handlers.WarehouseHandler
	companyH   *handlers.CompanyHandler
	shopH      *handlers.ShopHandler
	locationH  *handlers.LocationHandler
	demandH    *handlers.DemandHandler
	collectH   *handlers.CollectHandler
	deliveryH  *handlers.DeliveryHandler
	vehicleH   *handlers.VehicleHandler
	ticketH    *handlers.TicketHandler
}

// NewApp wires repositories, services and handlers over the database
// connection and configures all routes.
func NewApp(db *gorm.DB, tokens *auth.Manager) *App {
	userRepo := repository.NewUserRepo(db)
	roleRepo := repository.NewRoleRepo(db)
	eventRepo := repository.NewEventRepo(db)
	typeRepo := repository.NewEventTypeRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	foodRepo := repository.NewFoodRepo(db)
	packageRepo := repository.NewPackageRepo(db)
	storageRepo := repository.NewStorageRepo(db)
	warehouseRepo := repository.NewWarehouseRepo(db)
	companyRepo := repository.NewCompanyRepo(db)
	shopRepo := repository.NewShopRepo(db)
	locationRepo := repository.NewLocationRepo(db)
	demandRepo := repository.NewDemandRepo(db)
	collectRepo := repository.NewCollectRepo(db)
	deliveryRepo := repository.NewDeliveryRepo(db)
	vehicleRepo := repository.NewVehicleRepo(db)
	ticketRepo := repository.NewTicketRepo(db)

	userService := services.NewUserService(userRepo, roleRepo, eventRepo, deliveryRepo, collectRepo, shopRepo)

	app := &App{
		mux:    http.NewServeMux(),
		db:     db,
		tokens: tokens,

		authH:      handlers.NewAuthHandler(userService, tokens),
		userH:      handlers.NewUserHandler(userService),
		roleH:      handlers.NewRoleHandler(services.NewRoleService(roleRepo)),
		eventH:     handlers.NewEventHandler(services.NewEventService(eventRepo, typeRepo)),
		typeH:      handlers.NewEventTypeHandler(services.NewEventTypeService(typeRepo)),
		categoryH:  handlers.NewCategoryHandler(services.NewCategoryService(categoryRepo)),
		foodH:      handlers.NewFoodHandler(services.NewFoodService(foodRepo, categoryRepo)),
		packageH:   handlers.NewPackageHandler(services.NewPackageService(packageRepo, foodRepo, storageRepo)),
		storageH:   handlers.NewStorageHandler(services.NewStorageService(storageRepo, warehouseRepo)),
		warehouseH: handlers.NewWarehouseHandler(services.NewWarehouseService(warehouseRepo, locationRepo)),
		companyH:   handlers.NewCompanyHandler(services.NewCompanyService(companyRepo)),
		shopH:      handlers.NewShopHandler(services.NewShopService(shopRepo, companyRepo, locationRepo)),
		locationH:  handlers.NewLocationHandler(services.NewLocationService(locationRepo)),
		demandH:    handlers.NewDemandHandler(services.NewDemandService(demandRepo, shopRepo, packageRepo)),
		collectH:   handlers.NewCollectHandler(services.NewCollectService(collectRepo, vehicleRepo, storageRepo, demandRepo)),
		deliveryH:  handlers.NewDeliveryHandler(services.NewDeliveryService(deliveryRepo, vehicleRepo, locationRepo, packageRepo)),
		vehicleH:   handlers.NewVehicleHandler(services.NewVehicleService(vehicleRepo)),
		ticketH:    handlers.NewTicketHandler(services.NewTicketService(ticketRepo, userRepo)),
	}
	app.setupRoutes()
	return app
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.mux.ServeHTTP(w, r)
}

// protect requires a valid access token.
func (a *App) protect(h http.HandlerFunc) http.Handler {
	return a.tokens.RequireAuth(h)
}

// admin requires a valid access token carrying the administrator role.
func (a *App) admin(h http.HandlerFunc) http.Handler {
	return a.tokens.RequireAuth(auth.RolesRequired(auth.AdminRoleID)(h))
}

// roles requires a valid access token carrying one of the given roles.
func (a *App) roles(h http.HandlerFunc, roleIDs ...uint) http.Handler {
	return a.tokens.RequireAuth(auth.RolesRequired(roleIDs...)(h))
}

// setupRoutes configures all application routes.
func (a *App) setupRoutes() {
	// ─────────────────────────────────────────────────────────────────────────
	// Auth (public except /protected)
	// ─────────────────────────────────────────────────────────────────────────
	a.mux.HandleFunc("POST /api/register", a.authH.Register)
	a.mux.HandleFunc("POST /api/login", a.authH.Login)
	a.mux.HandleFunc("POST /api/token/refresh", a.authH.Refresh)
	a.mux.Handle("GET /api/protected", a.protect(a.authH.Protected))

	// ─────────────────────────────────────────────────────────────────────────
	// Users (self-or-admin checks inside the handler)
	// ─────────────────────────────────────────────────────────────────────────
	a.mux.Handle("GET /api/user/{user_id}", a.protect(a.userH.Get))
	a.mux.Handle("GET /api/user", a.protect(a.userH.List))
	a.mux.Handle("GET /api/user/page/{page}", a.protect(a.userH.Page))
	a.mux.Handle("GET /api/user/page/{page}/search/{search}", a.protect(a.userH.Search))
	a.mux.Handle("POST /api/user", a.admin(a.authH.Register))
	a.mux.Handle("PUT /api/user/{user_id}", a.protect(a.userH.Update))
	a.mux.Handle("DELETE /api/user/{user_id}", a.protect(a.userH.Delete))

	a.mux.Handle("POST /api/user/{user_id}/role/{role_id}", a.admin(a.userH.AddRole))
	a.mux.Handle("DELETE /api/user/{user_id}/role/{role_id}", a.admin(a.userH.RemoveRole))
	a.mux.Handle("POST /api/user/{user_id}/event/{event_id}", a.protect(a.userH.AddEvent))
	a.mux.Handle("DELETE /api/user/{user_id}/event/{event_id}", a.protect(a.userH.RemoveEvent))
	a.mux.Handle("POST /api/user/{user_id}/delivery/{delivery_id}", a.protect(a.userH.AddDelivery))
	a.mux.Handle("DELETE /api/user/{user_id}/delivery/{delivery_id}", a.protect(a.userH.RemoveDelivery))
	a.mux.Handle("POST /api/user/{user_id}/collect/{collect_id}", a.protect(a.userH.AddCollect))
	a.mux.Handle("DELETE /api/user/{user_id}/collect/{collect_id}", a.protect(a.userH.RemoveCollect))
	a.mux.Handle("POST /api/user/{user_id}/shop/{shop_id}", a.admin(a.userH.AddShop))
	a.mux.Handle("DELETE /api/user/{user_id}/shop/{shop_id}", a.admin(a.userH.RemoveShop))

	// ─────────────────────────────────────────────────────────────────────────
	// Roles (administrator only)
	// ─────────────────────────────────────────────────────────────────────────
	a.mux.Handle("GET /api/role/{role_id}", a.admin(a.roleH.Get))
	a.mux.Handle("GET /api/role", a.admin(a.roleH.List))
	a.mux.Handle("GET /api/role/page/{page}", a.admin(a.roleH.Page))
	a.mux.Handle("GET /api/role/page/{page}/search/{search}", a.admin(a.roleH.Search))
	a.mux.Handle("POST /api/role", a.admin(a.roleH.Create))
	a.mux.Handle("PUT /api/role/{role_id}", a.admin(a.roleH.Update))
	a.mux.Handle("DELETE /api/role/{role_id}", a.admin(a.roleH.Delete))

	// ─────────────────────────────────────────────────────────────────────────
	// Events and event types
	// ─────────────────────────────────────────────────────────────────────────
	a.mux.Handle("GET /api/event/{event_id}", a.protect(a.eventH.Get))
	a.mux.Handle("GET /api/event", a.protect(a.eventH.List))
	a.mux.Handle("GET /api/event/page/{page}", a.protect(a.eventH.Page))
	a.mux.Handle("GET /api/event/page/{page}/search/{search}", a.protect(a.eventH.Search))
	a.mux.Handle("POST /api/event", a.admin(a.eventH.Create))
	a.mux.Handle("PUT /api/event/{event_id}", a.admin(a.eventH.Update))
	a.mux.Handle("DELETE /api/event/{event_id}", a.admin(a.eventH.Delete))

	a.mux.Handle("GET /api/type/{type_id}", a.protect(a.typeH.Get))
	a.mux.Handle("GET /api/type", a.protect(a.typeH.List))
	a.mux.Handle("GET /api/type/page/{page}", a.protect(a.typeH.Page))
	a.mux.Handle("GET /api/type/page/{page}/search/{search}", a.protect(a.typeH.Search))
	a.mux.Handle("POST /api/type", a.admin(a.typeH.Create))
	a.mux.Handle("PUT /api/type/{type_id}", a.admin(a.typeH.Update))
	a.mux.Handle("DELETE /api/type/{type_id}", a.admin(a.typeH.Delete))

	// ─────────────────────────────────────────────────────────────────────────
	// Foods and categories
	// ─────────────────────────────────────────────────────────────────────────
	a.mux.Handle("GET /api/category/{category_id}", a.protect(a.categoryH.Get))
	a.mux.Handle("GET /api/category", a.protect(a.categoryH.List))
	a.mux.Handle("GET /api/category/page/{page}", a.protect(a.categoryH.Page))
	a.mux.Handle("GET /api/category/page/{page}/search/{search}", a.protect(a.categoryH.Search))
	a.mux.Handle("POST /api/category", a.admin(a.categoryH.Create))
	a.mux.Handle("PUT /api/category/{category_id}", a.admin(a.categoryH.Update))
	a.mux.Handle("DELETE /api/category/{category_id}", a.admin(a.categoryH.Delete))

	a.mux.Handle("GET /api/food/{food_id}", a.protect(a.foodH.Get))
	a.mux.Handle("GET /api/food", a.protect(a.foodH.List))
	a.mux.Handle("GET /api/food/page/{page}", a.protect(a.foodH.Page))
	a.mux.Handle("GET /api/food/page/{page}/search/{search}", a.protect(a.foodH.Search))
	a.mux.Handle("POST /api/food", a.protect(a.foodH.Create))
	a.mux.Handle("PUT /api/food/{food_id}", a.protect(a.foodH.Update))
	a.mux.Handle("DELETE /api/food/{food_id}", a.admin(a.foodH.Delete))

	// ─────────────────────────────────────────────────────────────────────────
	// Packages
	// ─────────────────────────────────────────────────────────────────────────
	a.mux.Handle("GET /api/package/{package_id}", a.protect(a.packageH.Get))
	a.mux.Handle("GET /api/package", a.protect(a.packageH.List))
	a.mux.Handle("GET /api/package/page/{page}", a.protect(a.packageH.Page))
	a.mux.Handle("GET /api/package/page/{page}/search/{search}", a.protect(a.packageH.Search))
	a.mux.Handle("POST /api/package", a.protect(a.packageH.Create))
	a.mux.Handle("PUT /api/package/{package_id}", a.protect(a.packageH.Update))
	a.mux.Handle("DELETE /api/package/{package_id}", a.admin(a.packageH.Delete))

	// ─────────────────────────────────────────────────────────────────────────
	// Storages, warehouses, companies, shops, locations
	// ─────────────────────────────────────────────────────────────────────────
	a.mux.Handle("GET /api/storage/{storage_id}", a.protect(a.storageH.Get))
	a.mux.Handle("GET /api/storage", a.protect(a.storageH.List))
	a.mux.Handle("GET /api/storage/page/{page}", a.protect(a.storageH.Page))
	a.mux.Handle("GET /api/storage/page/{page}/search/{search}", a.protect(a.storageH.Search))
	a.mux.Handle("POST /api/storage", a.admin(a.storageH.Create))
	a.mux.Handle("PUT /api/storage/{storage_id}", a.admin(a.storageH.Update))
	a.mux.Handle("DELETE /api/storage/{storage_id}", a.admin(a.storageH.Delete))

	a.mux.Handle("GET /api/warehouse/{warehouse_id}", a.protect(a.warehouseH.Get))
	a.mux.Handle("GET /api/warehouse", a.protect(a.warehouseH.List))
	a.mux.Handle("GET /api/warehouse/page/{page}", a.protect(a.warehouseH.Page))
	a.mux.Handle("GET /api/warehouse/page/{page}/search/{search}", a.protect(a.warehouseH.Search))
	a.mux.Handle("POST /api/warehouse", a.admin(a.warehouseH.Create))
	a.mux.Handle("PUT /api/warehouse/{warehouse_id}", a.admin(a.warehouseH.Update))
	a.mux.Handle("DELETE /api/warehouse/{warehouse_id}", a.admin(a.warehouseH.Delete))

	a.mux.Handle("GET /api/company/{company_id}", a.protect(a.companyH.Get))
	a.mux.Handle("GET /api/company", a.protect(a.companyH.List))
	a.mux.Handle("GET /api/company/page/{page}", a.protect(a.companyH.Page))
	a.mux.Handle("GET /api/company/page/{page}/search/{search}", a.protect(a.companyH.Search))
	a.mux.Handle("POST /api/company", a.admin(a.companyH.Create))
	a.mux.Handle("PUT /api/company/{company_id}", a.admin(a.companyH.Update))
	a.mux.Handle("DELETE /api/company/{company_id}", a.admin(a.companyH.Delete))

	a.mux.Handle("GET /api/shop/{shop_id}", a.protect(a.shopH.Get))
	a.mux.Handle("GET /api/shop", a.protect(a.shopH.List))
	a.mux.Handle("GET /api/shop/page/{page}", a.protect(a.shopH.Page))
	a.mux.Handle("GET /api/shop/page/{page}/search/{search}", a.protect(a.shopH.Search))
	a.mux.Handle("POST /api/shop", a.admin(a.shopH.Create))
	a.mux.Handle("PUT /api/shop/{shop_id}", a.admin(a.shopH.Update))
	a.mux.Handle("DELETE /api/shop/{shop_id}", a.admin(a.shopH.Delete))

	a.mux.Handle("GET /api/location/{location_id}", a.protect(a.locationH.Get))
	a.mux.Handle("GET /api/location", a.protect(a.locationH.List))
	a.mux.Handle("GET /api/location/page/{page}", a.protect(a.locationH.Page))
	a.mux.Handle("GET /api/location/page/{page}/search/{search}", a.protect(a.locationH.Search))
	a.mux.Handle("POST /api/location", a.protect(a.locationH.Create))
	a.mux.Handle("PUT /api/location/{location_id}", a.protect(a.locationH.Update))
	a.mux.Handle("DELETE /api/location/{location_id}", a.admin(a.locationH.Delete))

	// ─────────────────────────────────────────────────────────────────────────
	// Demands (administrators and shopkeepers)
	// ─────────────────────────────────────────────────────────────────────────
	a.mux.Handle("GET /api/demand/{demand_id}", a.roles(a.demandH.Get, auth.AdminRoleID, shopkeeperRoleID))
	a.mux.Handle("GET /api/demand", a.roles(a.demandH.List, auth.AdminRoleID, shopkeeperRoleID))
	a.mux.Handle("GET /api/demand/page/{page}", a.roles(a.demandH.Page, auth.AdminRoleID, shopkeeperRoleID))
	a.mux.Handle("GET /api/demand/page/{page}/search/{search}", a.roles(a.demandH.Search, auth.AdminRoleID, shopkeeperRoleID))
	a.mux.Handle("POST /api/demand", a.roles(a.demandH.Create, auth.AdminRoleID, shopkeeperRoleID))
	a.mux.Handle("PUT /api/demand/{demand_id}", a.roles(a.demandH.Update, auth.AdminRoleID, shopkeeperRoleID))
	a.mux.Handle("DELETE /api/demand/{demand_id}", a.roles(a.demandH.Delete, auth.AdminRoleID, shopkeeperRoleID))
	a.mux.Handle("POST /api/demand/{demand_id}/package/{package_id}", a.roles(a.demandH.AttachPackage, auth.AdminRoleID, shopkeeperRoleID))
	a.mux.Handle("DELETE /api/demand/{demand_id}/package/{package_id}", a.roles(a.demandH.DetachPackage, auth.AdminRoleID, shopkeeperRoleID))

	// ─────────────────────────────────────────────────────────────────────────
	// Collects (mutation is administrator only)
	// ─────────────────────────────────────────────────────────────────────────
	a.mux.Handle("GET /api/collect/{collect_id}", a.protect(a.collectH.Get))
	a.mux.Handle("GET /api/collect", a.protect(a.collectH.List))
	a.mux.Handle("GET /api/collect/page/{page}", a.protect(a.collectH.Page))
	a.mux.Handle("GET /api/collect/page/{page}/search/{search}", a.protect(a.collectH.Search))
	a.mux.Handle("POST /api/collect", a.admin(a.collectH.Create))
	a.mux.Handle("PUT /api/collect/{collect_id}", a.admin(a.collectH.Update))
	a.mux.Handle("DELETE /api/collect/{collect_id}", a.admin(a.collectH.Delete))
	a.mux.Handle("POST /api/collect/{collect_id}/demand/{demand_id}", a.admin(a.collectH.AttachDemand))
	a.mux.Handle("DELETE /api/collect/{collect_id}/demand/{demand_id}", a.admin(a.collectH.DetachDemand))

	// ─────────────────────────────────────────────────────────────────────────
	// Deliveries
	// ─────────────────────────────────────────────────────────────────────────
	a.mux.Handle("GET /api/delivery/{delivery_id}", a.protect(a.deliveryH.Get))
	a.mux.Handle("GET /api/delivery", a.protect(a.deliveryH.List))
	a.mux.Handle("GET /api/delivery/page/{page}", a.protect(a.deliveryH.Page))
	a.mux.Handle("GET /api/delivery/page/{page}/search/{search}", a.protect(a.deliveryH.Search))
	a.mux.Handle("POST /api/delivery", a.admin(a.deliveryH.Create))
	a.mux.Handle("PUT /api/delivery/{delivery_id}", a.admin(a.deliveryH.Update))
	a.mux.Handle("DELETE /api/delivery/{delivery_id}", a.admin(a.deliveryH.Delete))
	a.mux.Handle("POST /api/delivery/{delivery_id}/location/{location_id}", a.admin(a.deliveryH.AddLocation))
	a.mux.Handle("DELETE /api/delivery/{delivery_id}/location/{location_id}", a.admin(a.deliveryH.RemoveLocation))
	a.mux.Handle("POST /api/delivery/{delivery_id}/package/{package_id}", a.admin(a.deliveryH.AttachPackage))
	a.mux.Handle("DELETE /api/delivery/{delivery_id}/package/{package_id}", a.admin(a.deliveryH.DetachPackage))
	// literal "roadmap" segment first: "{delivery_id}/roadmap" would be
	// ambiguous with "page/{page}" under the mux's precedence rules
	a.mux.Handle("GET /api/delivery/roadmap/{delivery_id}", a.protect(a.deliveryH.Roadmap))

	// ─────────────────────────────────────────────────────────────────────────
	// Vehicles (mutation is administrator only)
	// ─────────────────────────────────────────────────────────────────────────
	a.mux.Handle("GET /api/vehicle/{vehicle_id}", a.protect(a.vehicleH.Get))
	a.mux.Handle("GET /api/vehicle", a.protect(a.vehicleH.List))
	a.mux.Handle("GET /api/vehicle/page/{page}", a.protect(a.vehicleH.Page))
	a.mux.Handle("GET /api/vehicle/page/{page}/search/{search}", a.protect(a.vehicleH.Search))
	a.mux.Handle("POST /api/vehicle", a.admin(a.vehicleH.Create))
	a.mux.Handle("PUT /api/vehicle/{vehicle_id}", a.admin(a.vehicleH.Update))
	a.mux.Handle("DELETE /api/vehicle/{vehicle_id}", a.admin(a.vehicleH.Delete))

	// ─────────────────────────────────────────────────────────────────────────
	// Tickets (author-or-admin checks inside the handler)
	// ─────────────────────────────────────────────────────────────────────────
	a.mux.Handle("GET /api/ticket/{ticket_id}", a.protect(a.ticketH.Get))
	a.mux.Handle("GET /api/ticket", a.admin(a.ticketH.List))
	a.mux.Handle("GET /api/ticket/page/{page}", a.admin(a.ticketH.Page))
	a.mux.Handle("GET /api/ticket/page/{page}/search/{search}", a.admin(a.ticketH.Search))
	a.mux.Handle("GET /api/ticket/user/{user_id}", a.protect(a.ticketH.ListByUser))
	a.mux.Handle("POST /api/ticket", a.protect(a.ticketH.Create))
	a.mux.Handle("PUT /api/ticket/{ticket_id}", a.admin(a.ticketH.Update))
	a.mux.Handle("DELETE /api/ticket/{ticket_id}", a.protect(a.ticketH.Delete))
}
