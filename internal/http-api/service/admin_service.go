package service

import (
	"errors"
	"strings"

	"storehub/internal/config"
	"storehub/internal/http-api/dto"
	"storehub/internal/http-api/models"
	"storehub/internal/http-api/repository"
	"storehub/internal/middleware/auth"

	"gorm.io/gorm"
)

var (
	ErrInvalidUserID      = errors.New("invalid user id")
	ErrStoreNameRequired  = errors.New("store name required")
	ErrInvalidOwnerID     = errors.New("invalid owner_id")
	ErrOwnerNotFound      = errors.New("owner user not found")
	ErrOwnerNotStoreOwner = errors.New("owner_id must be a store_owner")
)

type AdminService interface {
	Stats() (*dto.StatsResponse, error)
	// ListUsers filters by an optional public role name and free-text term.
	ListUsers(q, publicRole string) ([]repository.UserView, error)
	GetUser(id int64) (*repository.UserView, error)
	// CreateUser registers a user under the looser admin password policy.
	CreateUser(name, email, password, address, publicRole string) (*models.User, error)
	ListStores(q string) ([]repository.StoreView, error)
	CreateStore(name, email, address string, ownerID *int64, imageURL string) (*models.Store, error)
}

type adminService struct {
	userRepo   repository.UserRepository
	storeRepo  repository.StoreRepository
	ratingRepo repository.RatingRepository
	bcryptCost int
}

func NewAdminService(
	userRepo repository.UserRepository,
	storeRepo repository.StoreRepository,
	ratingRepo repository.RatingRepository,
	cfg *config.Config,
) AdminService {
	return &adminService{
		userRepo:   userRepo,
		storeRepo:  storeRepo,
		ratingRepo: ratingRepo,
		bcryptCost: cfg.BcryptCost,
	}
}

func (s *adminService) Stats() (*dto.StatsResponse, error) {
	users, err := s.userRepo.Count()
	if err != nil {
		return nil, err
	}
	stores, err := s.storeRepo.Count()
	if err != nil {
		return nil, err
	}
	ratings, err := s.ratingRepo.Count()
	if err != nil {
		return nil, err
	}
	return &dto.StatsResponse{
		TotalUsers:   users,
		TotalStores:  stores,
		TotalRatings: ratings,
	}, nil
}

func (s *adminService) ListUsers(q, publicRole string) ([]repository.UserView, error) {
	var role models.Role
	if publicRole != "" {
		if !models.PublicRoles[publicRole] {
			return nil, ErrInvalidRole
		}
		role = models.RoleFromPublic(publicRole)
	}
	return s.userRepo.Search(strings.TrimSpace(q), role)
}

func (s *adminService) GetUser(id int64) (*repository.UserView, error) {
	if id <= 0 {
		return nil, ErrInvalidUserID
	}
	view, err := s.userRepo.ViewByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return view, nil
}

// CreateUser shares the name/email rules with signup but applies the looser
// admin password policy; the role must come from the closed public set.
func (s *adminService) CreateUser(name, email, password, address, publicRole string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if !ValidName(name) {
		return nil, ErrInvalidName
	}
	if !ValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	if !ValidAdminPassword(password) {
		return nil, ErrInvalidPassword
	}
	if publicRole != "" && !models.PublicRoles[publicRole] {
		return nil, ErrInvalidRole
	}

	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, ErrEmailInUse
	}

	hashedPassword, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: hashedPassword,
		Address:  strings.TrimSpace(address),
		Role:     models.RoleFromPublic(publicRole),
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *adminService) ListStores(q string) ([]repository.StoreView, error) {
	// callerID 0: the admin catalog has no personal rating column
	return s.storeRepo.ListWithAggregates(0, strings.TrimSpace(q))
}

// CreateStore validates the owner reference at creation time only; a later
// role change is an accepted consistency gap, not continuously enforced.
func (s *adminService) CreateStore(name, email, address string, ownerID *int64, imageURL string) (*models.Store, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrStoreNameRequired
	}
	email = strings.TrimSpace(email)
	if email != "" && !ValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	var ownerToSet *uint
	if ownerID != nil {
		if *ownerID <= 0 {
			return nil, ErrInvalidOwnerID
		}
		owner, err := s.userRepo.FindByID(uint(*ownerID))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrOwnerNotFound
			}
			return nil, err
		}
		if owner.Role != models.RoleStoreOwner {
			return nil, ErrOwnerNotStoreOwner
		}
		id := owner.ID
		ownerToSet = &id
	}

	store := &models.Store{
		Name:     name,
		Email:    email,
		Address:  strings.TrimSpace(address),
		ImageURL: strings.TrimSpace(imageURL),
		OwnerID:  ownerToSet,
	}

	if err := s.storeRepo.Create(store); err != nil {
		return nil, err
	}
	return store, nil
}
