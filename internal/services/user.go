// Package services holds the business rules between handlers and
// repositories: existence checks on referenced entities, duplicate-association
// conflicts, status transitions and cascades. Services return models; handlers
// project them into views.
package services

import (
	"strings"

	"github.com/solifood/foodlink/internal/apperr"
	"github.com/solifood/foodlink/internal/models"
	"github.com/solifood/foodlink/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// AdminRoleID is the seeded administrator role.
const AdminRoleID uint = 1

type UserService struct {
	Users      *repository.UserRepo
	Roles      *repository.RoleRepo
	Events     *repository.EventRepo
	Deliveries *repository.DeliveryRepo
	Collects   *repository.CollectRepo
	Shops      *repository.ShopRepo
}

func NewUserService(
	users *repository.UserRepo,
	roles *repository.RoleRepo,
	events *repository.EventRepo,
	deliveries *repository.DeliveryRepo,
	collects *repository.CollectRepo,
	shops *repository.ShopRepo,
) *UserService {
	return &UserService{
		Users:      users,
		Roles:      roles,
		Events:     events,
		Deliveries: deliveries,
		Collects:   collects,
		Shops:      shops,
	}
}

func hashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Register creates a new account. The administrator role cannot be
// self-assigned and every new account starts in waiting status.
func (s *UserService) Register(newUser *models.User, roleID uint) (uint, error) {
	if roleID == AdminRoleID {
		return 0, apperr.Unauthorized()
	}
	role, err := s.Roles.SelectOneByID(roleID)
	if err != nil {
		return 0, err
	}
	if role == nil {
		return 0, apperr.NotFound("Role", roleID)
	}

	newUser.Email = strings.ToLower(newUser.Email)
	existing, err := s.Users.SelectByEmail(newUser.Email)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, apperr.Conflict("Email '%s' already exists.", newUser.Email)
	}

	hashed, err := hashPassword(newUser.Password)
	if err != nil {
		return 0, apperr.Access("user", nil, "creating", err)
	}
	newUser.Password = hashed
	newUser.Status = models.UserStatusWaiting
	return s.Users.Insert(newUser, roleID)
}

// Authenticate checks the credentials and returns the user with roles loaded.
// Wrong email and wrong password are indistinguishable to the caller.
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	user, err := s.Users.SelectOneByEmail(strings.ToLower(email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.Unauthorized()
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, apperr.Unauthorized()
	}
	return user, nil
}

func (s *UserService) GetByID(userID uint) (*models.User, error) {
	user, err := s.Users.SelectOneByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("User", userID)
	}
	return user, nil
}

func (s *UserService) List() ([]models.User, error) {
	return s.Users.SelectAll()
}

func (s *UserService) Page(page int) (*repository.Page[models.User], error) {
	return s.Users.SelectPerPage(page)
}

func (s *UserService) Search(page int, search string) (*repository.Page[models.User], error) {
	return s.Users.SelectBySearch(page, search)
}

// Update overwrites the account fields. The new email must not belong to a
// different user; an empty password keeps the current one.
func (s *UserService) Update(userID uint, updateUser *models.User) error {
	user, err := s.GetByID(userID)
	if err != nil {
		return err
	}

	updateUser.Email = strings.ToLower(updateUser.Email)
	if updateUser.Email != user.Email {
		holders, err := s.Users.SelectByEmail(updateUser.Email)
		if err != nil {
			return err
		}
		if len(holders) > 0 {
			return apperr.Conflict("Email '%s' already exists.", updateUser.Email)
		}
	}

	if updateUser.Password != "" {
		hashed, err := hashPassword(updateUser.Password)
		if err != nil {
			return apperr.Access("user", userID, "updating", err)
		}
		updateUser.Password = hashed
	}
	return s.Users.Update(userID, updateUser)
}

// Delete removes the account together with its authored tickets and
// association rows; the repository runs the whole cascade in one transaction.
func (s *UserService) Delete(userID uint) error {
	if _, err := s.GetByID(userID); err != nil {
		return err
	}
	return s.Users.Delete(userID)
}

func (s *UserService) AddRole(userID, roleID uint) error {
	user, err := s.GetByID(userID)
	if err != nil {
		return err
	}
	role, err := s.Roles.SelectOneByID(roleID)
	if err != nil {
		return err
	}
	if role == nil {
		return apperr.NotFound("Role", roleID)
	}
	for _, r := range user.Roles {
		if r.ID == roleID {
			return apperr.Conflict("User id '%d' already has role id '%d'.", userID, roleID)
		}
	}
	return s.Users.InsertRole(userID, roleID)
}

// RemoveRole detaches a role; a user always keeps at least one.
func (s *UserService) RemoveRole(userID, roleID uint) error {
	user, err := s.GetByID(userID)
	if err != nil {
		return err
	}
	found := false
	for _, r := range user.Roles {
		if r.ID == roleID {
			found = true
			break
		}
	}
	if !found {
		return apperr.NotFoundMsg("User id '%d' does not have role id '%d'.", userID, roleID)
	}
	if len(user.Roles) == 1 {
		return apperr.InvalidState("User id '%d' must keep at least one role.", userID)
	}
	return s.Users.DeleteRole(userID, roleID)
}

func (s *UserService) AddEvent(userID, eventID uint) error {
	user, err := s.GetByID(userID)
	if err != nil {
		return err
	}
	event, err := s.Events.SelectOneByID(eventID)
	if err != nil {
		return err
	}
	if event == nil {
		return apperr.NotFound("Event", eventID)
	}
	for _, e := range user.Events {
		if e.ID == eventID {
			return apperr.Conflict("User id '%d' already participates event id '%d'.", userID, eventID)
		}
	}
	return s.Users.InsertEvent(userID, eventID)
}

func (s *UserService) RemoveEvent(userID, eventID uint) error {
	user, err := s.GetByID(userID)
	if err != nil {
		return err
	}
	for _, e := range user.Events {
		if e.ID == eventID {
			return s.Users.DeleteEvent(userID, eventID)
		}
	}
	return apperr.NotFoundMsg("User id '%d' does not participate event id '%d'.", userID, eventID)
}

func (s *UserService) AddDelivery(userID, deliveryID uint) error {
	user, err := s.GetByID(userID)
	if err != nil {
		return err
	}
	delivery, err := s.Deliveries.SelectOneByID(deliveryID)
	if err != nil {
		return err
	}
	if delivery == nil {
		return apperr.NotFound("Delivery", deliveryID)
	}
	for _, d := range user.Deliveries {
		if d.ID == deliveryID {
			return apperr.Conflict("User id '%d' already delivers delivery id '%d'.", userID, deliveryID)
		}
	}
	return s.Users.InsertDelivery(userID, deliveryID)
}

func (s *UserService) RemoveDelivery(userID, deliveryID uint) error {
	user, err := s.GetByID(userID)
	if err != nil {
		return err
	}
	for _, d := range user.Deliveries {
		if d.ID == deliveryID {
			return s.Users.DeleteDelivery(userID, deliveryID)
		}
	}
	return apperr.NotFoundMsg("User id '%d' does not deliver delivery id '%d'.", userID, deliveryID)
}

func (s *UserService) AddCollect(userID, collectID uint) error {
	user, err := s.GetByID(userID)
	if err != nil {
		return err
	}
	collect, err := s.Collects.SelectOneByID(collectID)
	if err != nil {
		return err
	}
	if collect == nil {
		return apperr.NotFound("Collect", collectID)
	}
	for _, c := range user.Collects {
		if c.ID == collectID {
			return apperr.Conflict("User id '%d' already collects collect id '%d'.", userID, collectID)
		}
	}
	return s.Users.InsertCollect(userID, collectID)
}

func (s *UserService) RemoveCollect(userID, collectID uint) error {
	user, err := s.GetByID(userID)
	if err != nil {
		return err
	}
	for _, c := range user.Collects {
		if c.ID == collectID {
			return s.Users.DeleteCollect(userID, collectID)
		}
	}
	return apperr.NotFoundMsg("User id '%d' does not collect collect id '%d'.", userID, collectID)
}

func (s *UserService) AddShop(userID, shopID uint) error {
	user, err := s.GetByID(userID)
	if err != nil {
		return err
	}
	shop, err := s.Shops.SelectOneByID(shopID)
	if err != nil {
		return err
	}
	if shop == nil {
		return apperr.NotFound("Shop", shopID)
	}
	if user.ShopID != nil && *user.ShopID == shopID {
		return apperr.Conflict("User id '%d' already works in shop id '%d'.", userID, shopID)
	}
	return s.Users.InsertShop(userID, shopID)
}

func (s *UserService) RemoveShop(userID, shopID uint) error {
	user, err := s.GetByID(userID)
	if err != nil {
		return err
	}
	if user.ShopID == nil || *user.ShopID != shopID {
		return apperr.NotFoundMsg("User id '%d' does not work in shop id '%d'.", userID, shopID)
	}
	return s.Users.DeleteShop(userID)
}
