package repository

import (
	"github.com/solifood/foodlink/internal/apperr"
	"github.com/solifood/foodlink/internal/models"
	"gorm.io/gorm"
)

type UserRepo struct{ DB *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{DB: db} }

func (r *UserRepo) SelectOneByID(userID uint) (*models.User, error) {
	query := r.DB.
		Preload("Roles").Preload("Events").Preload("Deliveries").Preload("Collects").
		Where("id = ?", userID)
	return selectOne[models.User](query, "user", userID)
}

// SelectOneByEmail matches the stored (lower-cased) email exactly.
func (r *UserRepo) SelectOneByEmail(email string) (*models.User, error) {
	query := r.DB.Preload("Roles").Where("email = ?", email)
	return selectOne[models.User](query, "user", nil)
}

// SelectByEmail returns every user holding the email; used by the update path
// to detect that the new address belongs to somebody else.
func (r *UserRepo) SelectByEmail(email string) ([]models.User, error) {
	return selectAll[models.User](r.DB.Where("email = ?", email), "user")
}

func (r *UserRepo) SelectAll() ([]models.User, error) {
	return selectAll[models.User](r.DB.Preload("Roles").Preload("Events"), "user")
}

func (r *UserRepo) SelectPerPage(page int) (*Page[models.User], error) {
	return selectPage[models.User](r.DB, &models.User{}, page, "user", "Roles", "Events")
}

func (r *UserRepo) SelectBySearch(page int, search string) (*Page[models.User], error) {
	query := r.DB.Where("last_name LIKE ?", contains(search))
	return selectPage[models.User](query, &models.User{}, page, "user", "Roles", "Events")
}

// Insert creates the user row and the initial role association in one
// transaction; the caller has already validated the role id.
func (r *UserRepo) Insert(newUser *models.User, roleID uint) (uint, error) {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(newUser).Error; err != nil {
			return err
		}
		return tx.Model(newUser).Association("Roles").Append(&models.Role{ID: roleID})
	})
	if err != nil {
		return 0, apperr.Access("user", nil, "creating", err)
	}
	return newUser.ID, nil
}

// Update overwrites the mutable columns. An empty password means "keep the
// current hash".
func (r *UserRepo) Update(userID uint, updateUser *models.User) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Where("id = ?", userID).First(&user).Error; err != nil {
			return err
		}
		user.FirstName = updateUser.FirstName
		user.LastName = updateUser.LastName
		user.Email = updateUser.Email
		user.Phone = updateUser.Phone
		user.Status = updateUser.Status
		if updateUser.Password != "" {
			user.Password = updateUser.Password
		}
		return tx.Save(&user).Error
	})
	if err != nil {
		return apperr.Access("user", userID, "updating", err)
	}
	return nil
}

// Delete removes the account and its dependents in one transaction: the
// join-table rows, the tickets the user authored, and the assignee reference
// on tickets merely assigned to them (those tickets stay, unassigned). The
// admin_id foreign key would otherwise block the row delete.
func (r *UserRepo) Delete(userID uint) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		user := models.User{ID: userID}
		for _, assoc := range []string{"Roles", "Events", "Deliveries", "Collects"} {
			if err := tx.Model(&user).Association(assoc).Clear(); err != nil {
				return err
			}
		}
		if err := tx.Where("author_id = ?", userID).Delete(&models.Ticket{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Ticket{}).Where("admin_id = ?", userID).Update("admin_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, userID).Error
	})
	if err != nil {
		return apperr.Access("user", userID, "deleting", err)
	}
	return nil
}

func (r *UserRepo) InsertRole(userID, roleID uint) error {
	err := r.DB.Model(&models.User{ID: userID}).Association("Roles").Append(&models.Role{ID: roleID})
	if err != nil {
		return apperr.Access("user", userID, "creating", err)
	}
	return nil
}

func (r *UserRepo) DeleteRole(userID, roleID uint) error {
	err := r.DB.Model(&models.User{ID: userID}).Association("Roles").Delete(&models.Role{ID: roleID})
	if err != nil {
		return apperr.Access("user", userID, "deleting", err)
	}
	return nil
}

func (r *UserRepo) InsertEvent(userID, eventID uint) error {
	err := r.DB.Model(&models.User{ID: userID}).Association("Events").Append(&models.Event{ID: eventID})
	if err != nil {
		return apperr.Access("user", userID, "creating", err)
	}
	return nil
}

func (r *UserRepo) DeleteEvent(userID, eventID uint) error {
	err := r.DB.Model(&models.User{ID: userID}).Association("Events").Delete(&models.Event{ID: eventID})
	if err != nil {
		return apperr.Access("user", userID, "deleting", err)
	}
	return nil
}

func (r *UserRepo) InsertDelivery(userID, deliveryID uint) error {
	err := r.DB.Model(&models.User{ID: userID}).Association("Deliveries").Append(&models.Delivery{ID: deliveryID})
	if err != nil {
		return apperr.Access("user", userID, "creating", err)
	}
	return nil
}

func (r *UserRepo) DeleteDelivery(userID, deliveryID uint) error {
	err := r.DB.Model(&models.User{ID: userID}).Association("Deliveries").Delete(&models.Delivery{ID: deliveryID})
	if err != nil {
		return apperr.Access("user", userID, "deleting", err)
	}
	return nil
}

func (r *UserRepo) InsertCollect(userID, collectID uint) error {
	err := r.DB.Model(&models.User{ID: userID}).Association("Collects").Append(&models.Collect{ID: collectID})
	if err != nil {
		return apperr.Access("user", userID, "creating", err)
	}
	return nil
}

func (r *UserRepo) DeleteCollect(userID, collectID uint) error {
	err := r.DB.Model(&models.User{ID: userID}).Association("Collects").Delete(&models.Collect{ID: collectID})
	if err != nil {
		return apperr.Access("user", userID, "deleting", err)
	}
	return nil
}

func (r *UserRepo) InsertShop(userID, shopID uint) error {
	err := r.DB.Model(&models.User{}).Where("id = ?", userID).Update("shop_id", shopID).Error
	if err != nil {
		return apperr.Access("user", userID, "creating", err)
	}
	return nil
}

func (r *UserRepo) DeleteShop(userID uint) error {
	err := r.DB.Model(&models.User{}).Where("id = ?", userID).Update("shop_id", nil).Error
	if err != nil {
		return apperr.Access("user", userID, "deleting", err)
	}
	return nil
}
