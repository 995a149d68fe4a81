package repository

import (
	"time"

	"storehub/internal/http-api/models"

	"gorm.io/gorm"
)

// StoreView is one row of a store listing with its aggregate attached.
// UserRating is the calling user's own rating, 0 when anonymous or unrated.
type StoreView struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Address      string    `json:"address"`
	ImageURL     string    `json:"image_url"`
	OwnerID      *uint     `json:"owner_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	AvgRating    float64   `json:"avgRating"`
	RatingsCount int64     `json:"ratingsCount"`
	UserRating   int       `json:"userRating,omitempty"`
}

// StoreRepository defines the interface for store data operations.
type StoreRepository interface {
	Create(store *models.Store) error
	FindByID(id uint) (*models.Store, error)
	// OwnedBy reports whether the store exists and belongs to ownerID. It is
	// a single read executed immediately before any owner-scoped query;
	// ownership is never cached.
	OwnedBy(storeID, ownerID uint) (bool, error)
	ListWithAggregates(callerID uint, q string) ([]StoreView, error)
	ListOwnedWithAggregates(ownerID uint) ([]StoreView, error)
	Count() (int64, error)
}

// storeRepository is the GORM implementation of StoreRepository.
type storeRepository struct {
	db *gorm.DB
}

func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &storeRepository{db: db}
}

func (r *storeRepository) Create(store *models.Store) error {
	return r.db.Create(store).Error
}

func (r *storeRepository) FindByID(id uint) (*models.Store, error) {
	var store models.Store
	if err := r.db.First(&store, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *storeRepository) OwnedBy(storeID, ownerID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Store{}).
		Where("id = ? AND owner_id = ?", storeID, ownerID).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListWithAggregates returns every store matching the optional search term,
// with its aggregate and the caller's own rating attached in one grouped
// query. callerID 0 means anonymous: the user_rating column stays 0.
func (r *storeRepository) ListWithAggregates(callerID uint, q string) ([]StoreView, error) {
	query := r.db.Model(&models.Store{}).
		Select(`stores.id, stores.name, stores.email, stores.address, stores.image_url,
			stores.created_at, stores.updated_at,
			ROUND(COALESCE(AVG(r.rating), 0), 1) AS avg_rating,
			COUNT(r.id) AS ratings_count,
			COALESCE(MAX(CASE WHEN r.user_id = ? THEN r.rating END), 0) AS user_rating`, callerID).
		Joins("LEFT JOIN ratings r ON r.store_id = stores.id")

	if q != "" {
		like := "%" + q + "%"
		query = query.Where("LOWER(stores.name) LIKE LOWER(?) OR LOWER(stores.address) LIKE LOWER(?)", like, like)
	}

	var views []StoreView
	err := query.
		Group("stores.id, stores.name, stores.email, stores.address, stores.image_url, stores.created_at, stores.updated_at").
		Order("stores.created_at DESC, stores.id DESC").
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (r *storeRepository) ListOwnedWithAggregates(ownerID uint) ([]StoreView, error) {
	var views []StoreView
	err := r.db.Model(&models.Store{}).
		Select(`stores.id, stores.name, stores.email, stores.address, stores.image_url,
			stores.created_at, stores.updated_at,
			ROUND(COALESCE(AVG(r.rating), 0), 1) AS avg_rating,
			COUNT(r.id) AS ratings_count`).
		Joins("LEFT JOIN ratings r ON r.store_id = stores.id").
		Where("stores.owner_id = ?", ownerID).
		Group("stores.id, stores.name, stores.email, stores.address, stores.image_url, stores.created_at, stores.updated_at").
		Order("stores.created_at DESC, stores.id DESC").
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (r *storeRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Store{}).Count(&count).Error
	return count, err
}
