package handler

import (
	"storehub/internal/http-api/dto"
	"storehub/internal/http-api/models"
	"storehub/internal/http-api/repository"
	"storehub/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// authenticated fakes the auth middleware for handler tests.
func authenticated(userID uint, role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Set("role", role)
		c.Next()
	}
}

// MockAuthService mocks service.AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(name, email, password, address, publicRole string) (*models.User, string, error) {
	args := m.Called(name, email, password, address, publicRole)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Login(email, password, roleHint string) (*models.User, string, error) {
	args := m.Called(email, password, roleHint)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Me(userID uint) (*models.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) IssueToken(user *models.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Claims), args.Error(1)
}

// MockStoreService mocks service.StoreService
type MockStoreService struct {
	mock.Mock
}

func (m *MockStoreService) ListStores(callerID uint, q string) ([]repository.StoreView, error) {
	args := m.Called(callerID, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.StoreView), args.Error(1)
}

func (m *MockStoreService) ListOwnedStores(ownerID uint) ([]repository.StoreView, error) {
	args := m.Called(ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.StoreView), args.Error(1)
}

func (m *MockStoreService) RatersFor(ownerID uint, storeID int64) ([]repository.Rater, error) {
	args := m.Called(ownerID, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.Rater), args.Error(1)
}

// MockRatingService mocks service.RatingService
type MockRatingService struct {
	mock.Mock
}

func (m *MockRatingService) UpsertRating(userID uint, storeID int64, value int) (*dto.RatingAggregateResponse, error) {
	args := m.Called(userID, storeID, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RatingAggregateResponse), args.Error(1)
}

func (m *MockRatingService) AggregateFor(storeID uint) (float64, int64, error) {
	args := m.Called(storeID)
	return args.Get(0).(float64), args.Get(1).(int64), args.Error(2)
}

// MockAdminService mocks service.AdminService
type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) Stats() (*dto.StatsResponse, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.StatsResponse), args.Error(1)
}

func (m *MockAdminService) ListUsers(q, publicRole string) ([]repository.UserView, error) {
	args := m.Called(q, publicRole)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.UserView), args.Error(1)
}

func (m *MockAdminService) GetUser(id int64) (*repository.UserView, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.UserView), args.Error(1)
}

func (m *MockAdminService) CreateUser(name, email, password, address, publicRole string) (*models.User, error) {
	args := m.Called(name, email, password, address, publicRole)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAdminService) ListStores(q string) ([]repository.StoreView, error) {
	args := m.Called(q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.StoreView), args.Error(1)
}

func (m *MockAdminService) CreateStore(name, email, address string, ownerID *int64, imageURL string) (*models.Store, error) {
	args := m.Called(name, email, address, ownerID, imageURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Store), args.Error(1)
}
