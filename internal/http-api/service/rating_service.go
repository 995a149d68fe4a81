package service

import (
	"errors"

	"storehub/internal/http-api/dto"
	"storehub/internal/http-api/models"
	"storehub/internal/http-api/repository"
)

var (
	ErrInvalidStoreID     = errors.New("invalid store id")
	ErrInvalidRatingValue = errors.New("rating must be 1-5")
)

type RatingService interface {
	// UpsertRating records the caller's rating for a store, overwriting any
	// prior value, and returns the recomputed aggregate.
	UpsertRating(userID uint, storeID int64, value int) (*dto.RatingAggregateResponse, error)
	AggregateFor(storeID uint) (float64, int64, error)
}

type ratingService struct {
	ratingRepo repository.RatingRepository
}

func NewRatingService(ratingRepo repository.RatingRepository) RatingService {
	return &ratingService{ratingRepo: ratingRepo}
}

// UpsertRating validates inputs, performs the atomic insert-or-update keyed
// on (store_id, user_id), then recomputes the store aggregate from the full
// current rating set. Recomputing from scratch keeps the numbers correct
// under concurrent writers.
func (s *ratingService) UpsertRating(userID uint, storeID int64, value int) (*dto.RatingAggregateResponse, error) {
	if storeID <= 0 {
		return nil, ErrInvalidStoreID
	}
	if value < 1 || value > 5 {
		return nil, ErrInvalidRatingValue
	}

	rating := &models.Rating{
		StoreID: uint(storeID),
		UserID:  userID,
		Rating:  value,
	}
	if err := s.ratingRepo.Upsert(rating); err != nil {
		return nil, err
	}

	avg, count, err := s.AggregateFor(uint(storeID))
	if err != nil {
		return nil, err
	}

	return &dto.RatingAggregateResponse{
		StoreID:      uint(storeID),
		UserRating:   value,
		AvgRating:    avg,
		RatingsCount: count,
	}, nil
}

// AggregateFor returns the one-decimal mean and count for a store, 0.0 and 0
// when it has no ratings. Never null, never NaN.
func (s *ratingService) AggregateFor(storeID uint) (float64, int64, error) {
	avg, count, err := s.ratingRepo.AggregateFor(storeID)
	if err != nil {
		return 0, 0, err
	}
	if count == 0 {
		return 0, 0, nil
	}
	return Round1(avg), count, nil
}
