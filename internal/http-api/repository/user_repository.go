package repository

import (
	"time"

	"storehub/internal/http-api/models"

	"gorm.io/gorm"
)

// UserView is a listing row for the admin surface. OwnerRating carries the
// average rating across the stores a store_owner owns, null for other roles.
type UserView struct {
	ID          uint        `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Address     string      `json:"address"`
	Role        models.Role `json:"role"`
	CreatedAt   time.Time   `json:"created_at"`
	OwnerRating *float64    `json:"ownerRating"`
}

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(user *models.User) error
	FindByID(id uint) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Search(q string, role models.Role) ([]UserView, error)
	ViewByID(id uint) (*UserView, error)
	Count() (int64, error)
}

// userRepository is the GORM implementation of UserRepository.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository in a GORM implementation
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		// return nil rather than a zero-value struct so callers can
		// distinguish "not found" from a real row
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ownerRatingExpr computes the average rating over all stores owned by the
// user, one decimal, null for users who are not store owners.
const ownerRatingExpr = `CASE WHEN users.role = 'store_owner' THEN (
	SELECT ROUND(COALESCE(AVG(r.rating), 0), 1)
	FROM ratings r
	JOIN stores s ON s.id = r.store_id
	WHERE s.owner_id = users.id
) ELSE NULL END AS owner_rating`

// Search lists users filtered by an optional role and an optional
// case-insensitive substring over name, email and address. All predicates are
// parameterized; user input never reaches the query text.
func (r *userRepository) Search(q string, role models.Role) ([]UserView, error) {
	query := r.db.Model(&models.User{}).
		Select("users.id, users.name, users.email, users.address, users.role, users.created_at, " + ownerRatingExpr)

	if role != "" {
		query = query.Where("users.role = ?", role)
	}
	if q != "" {
		like := "%" + q + "%"
		query = query.Where(
			"LOWER(users.name) LIKE LOWER(?) OR LOWER(users.email) LIKE LOWER(?) OR LOWER(users.address) LIKE LOWER(?)",
			like, like, like,
		)
	}

	var views []UserView
	if err := query.Order("users.created_at DESC, users.id DESC").Scan(&views).Error; err != nil {
		return nil, err
	}
	return views, nil
}

func (r *userRepository) ViewByID(id uint) (*UserView, error) {
	var view UserView
	err := r.db.Model(&models.User{}).
		Select("users.id, users.name, users.email, users.address, users.role, users.created_at, "+ownerRatingExpr).
		Where("users.id = ?", id).
		First(&view).Error
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (r *userRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Count(&count).Error
	return count, err
}
