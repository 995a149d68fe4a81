package service

import (
	"errors"
	"strings"

	"storehub/internal/http-api/repository"
)

// ErrNotStoreOwner means the store exists under someone else's ownership, or
// not at all; the caller gets the same answer either way.
var ErrNotStoreOwner = errors.New("not owner of this store")

// ratersLimit caps an owner's rater listing.
const ratersLimit = 200

type StoreService interface {
	// ListStores is the public browse: every store matching the optional
	// search term with aggregates, personalized with the caller's own rating
	// when callerID is non-zero.
	ListStores(callerID uint, q string) ([]repository.StoreView, error)
	ListOwnedStores(ownerID uint) ([]repository.StoreView, error)
	// RatersFor lists who rated an owned store. The ownership read runs
	// immediately before the rater query on every call.
	RatersFor(ownerID uint, storeID int64) ([]repository.Rater, error)
}

type storeService struct {
	storeRepo  repository.StoreRepository
	ratingRepo repository.RatingRepository
}

func NewStoreService(storeRepo repository.StoreRepository, ratingRepo repository.RatingRepository) StoreService {
	return &storeService{
		storeRepo:  storeRepo,
		ratingRepo: ratingRepo,
	}
}

func (s *storeService) ListStores(callerID uint, q string) ([]repository.StoreView, error) {
	return s.storeRepo.ListWithAggregates(callerID, strings.TrimSpace(q))
}

func (s *storeService) ListOwnedStores(ownerID uint) ([]repository.StoreView, error) {
	return s.storeRepo.ListOwnedWithAggregates(ownerID)
}

func (s *storeService) RatersFor(ownerID uint, storeID int64) ([]repository.Rater, error) {
	if storeID <= 0 {
		return nil, ErrInvalidStoreID
	}

	owned, err := s.storeRepo.OwnedBy(uint(storeID), ownerID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, ErrNotStoreOwner
	}

	return s.ratingRepo.RatersFor(uint(storeID), ratersLimit)
}
