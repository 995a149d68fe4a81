package repository

import (
	"time"

	"storehub/internal/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Rater is one row of an owner's rater listing.
type Rater struct {
	UserID    uint      `json:"userId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

// RatingRepository defines the interface for rating data operations.
type RatingRepository interface {
	// Upsert inserts the rating or, when a row for (store_id, user_id)
	// already exists, overwrites its value and refreshes updated_at. The
	// unique index makes concurrent first-time ratings collapse to one row.
	Upsert(rating *models.Rating) error
	GetByUserAndStore(userID, storeID uint) (*models.Rating, error)
	// AggregateFor returns the unrounded mean and the row count for a store.
	// Both are 0 when the store has no ratings.
	AggregateFor(storeID uint) (float64, int64, error)
	RatersFor(storeID uint, limit int) ([]Rater, error)
	Count() (int64, error)
}

// ratingRepository is the GORM implementation of RatingRepository.
type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) Upsert(rating *models.Rating) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "store_id"}, {Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"rating":     rating.Rating,
			"updated_at": time.Now(),
		}),
	}).Create(rating).Error
}

func (r *ratingRepository) GetByUserAndStore(userID, storeID uint) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.Where("user_id = ? AND store_id = ?", userID, storeID).First(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *ratingRepository) AggregateFor(storeID uint) (float64, int64, error) {
	var agg struct {
		Average float64
		Total   int64
	}

	err := r.db.Model(&models.Rating{}).
		Select("COALESCE(AVG(rating), 0) AS average, COUNT(*) AS total").
		Where("store_id = ?", storeID).
		Scan(&agg).Error
	if err != nil {
		return 0, 0, err
	}

	return agg.Average, agg.Total, nil
}

func (r *ratingRepository) RatersFor(storeID uint, limit int) ([]Rater, error) {
	var raters []Rater
	err := r.db.Model(&models.Rating{}).
		Select("users.id AS user_id, users.name, users.email, ratings.rating, ratings.created_at").
		Joins("INNER JOIN users ON users.id = ratings.user_id").
		Where("ratings.store_id = ?", storeID).
		Order("ratings.created_at DESC").
		Limit(limit).
		Scan(&raters).Error
	if err != nil {
		return nil, err
	}
	return raters, nil
}

func (r *ratingRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Rating{}).Count(&count).Error
	return count, err
}
