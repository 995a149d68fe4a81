package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"storehub/internal/http-api/dto"
	"storehub/internal/http-api/models"
	"storehub/internal/http-api/repository"
	"storehub/internal/http-api/service"

	"github.com/stretchr/testify/assert"
)

func TestStats(t *testing.T) {
	mockAdmin := new(MockAdminService)
	h := NewAdminHandler(mockAdmin)
	router := setupRouter()
	router.GET("/admin/stats", authenticated(1, models.RoleAdmin), h.Stats)

	mockAdmin.On("Stats").Return(&dto.StatsResponse{TotalUsers: 10, TotalStores: 3, TotalRatings: 25}, nil)

	req, _ := http.NewRequest("GET", "/admin/stats", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var stats dto.StatsResponse
	json.Unmarshal(w.Body.Bytes(), &stats)
	assert.Equal(t, int64(10), stats.TotalUsers)
	assert.Equal(t, int64(25), stats.TotalRatings)
}

func TestAdminCreateUser_Conflict(t *testing.T) {
	mockAdmin := new(MockAdminService)
	h := NewAdminHandler(mockAdmin)
	router := setupRouter()
	router.POST("/admin/users", authenticated(1, models.RoleAdmin), h.CreateUser)

	mockAdmin.On("CreateUser", "Ann Example", "ann@example.com", "secret1234", "", "user").
		Return(nil, service.ErrEmailInUse)

	body, _ := json.Marshal(dto.CreateUserRequest{
		Name:     "Ann Example",
		Email:    "ann@example.com",
		Password: "secret1234",
		Role:     "user",
	})
	req, _ := http.NewRequest("POST", "/admin/users", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAdminCreateUser_Success(t *testing.T) {
	mockAdmin := new(MockAdminService)
	h := NewAdminHandler(mockAdmin)
	router := setupRouter()
	router.POST("/admin/users", authenticated(1, models.RoleAdmin), h.CreateUser)

	created := &models.User{ID: 11, Name: "Olive Owner", Email: "olive@example.com", Role: models.RoleStoreOwner}
	mockAdmin.On("CreateUser", "Olive Owner", "olive@example.com", "secret", "", "owner").
		Return(created, nil)

	body, _ := json.Marshal(dto.CreateUserRequest{
		Name:     "Olive Owner",
		Email:    "olive@example.com",
		Password: "secret",
		Role:     "owner",
	})
	req, _ := http.NewRequest("POST", "/admin/users", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, uint(11), resp.ID)
	assert.Equal(t, "owner", resp.Role)
}

func TestAdminListUsers_RoleFilterRejected(t *testing.T) {
	mockAdmin := new(MockAdminService)
	h := NewAdminHandler(mockAdmin)
	router := setupRouter()
	router.GET("/admin/users", authenticated(1, models.RoleAdmin), h.ListUsers)

	mockAdmin.On("ListUsers", "", "wizard").Return(nil, service.ErrInvalidRole)

	req, _ := http.NewRequest("GET", "/admin/users?role=wizard", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminListUsers_PublicRoleNames(t *testing.T) {
	mockAdmin := new(MockAdminService)
	h := NewAdminHandler(mockAdmin)
	router := setupRouter()
	router.GET("/admin/users", authenticated(1, models.RoleAdmin), h.ListUsers)

	rating := 4.2
	mockAdmin.On("ListUsers", "", "").Return([]repository.UserView{
		{ID: 1, Name: "Olive Owner", Role: models.RoleStoreOwner, OwnerRating: &rating},
		{ID: 2, Name: "Ann Example", Role: models.RoleUser},
	}, nil)

	req, _ := http.NewRequest("GET", "/admin/users", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var views []dto.AdminUserView
	json.Unmarshal(w.Body.Bytes(), &views)
	assert.Len(t, views, 2)
	assert.Equal(t, "owner", views[0].Role)
	assert.NotNil(t, views[0].OwnerRating)
	assert.Equal(t, 4.2, *views[0].OwnerRating)
	assert.Equal(t, "user", views[1].Role)
	assert.Nil(t, views[1].OwnerRating)
}

func TestAdminCreateStore_OwnerNotFound(t *testing.T) {
	mockAdmin := new(MockAdminService)
	h := NewAdminHandler(mockAdmin)
	router := setupRouter()
	router.POST("/admin/stores", authenticated(1, models.RoleAdmin), h.CreateStore)

	ownerID := int64(44)
	mockAdmin.On("CreateStore", "Corner Shop", "", "", &ownerID, "").
		Return(nil, service.ErrOwnerNotFound)

	body, _ := json.Marshal(dto.CreateStoreRequest{Name: "Corner Shop", OwnerID: &ownerID})
	req, _ := http.NewRequest("POST", "/admin/stores", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminCreateStore_Success(t *testing.T) {
	mockAdmin := new(MockAdminService)
	h := NewAdminHandler(mockAdmin)
	router := setupRouter()
	router.POST("/admin/stores", authenticated(1, models.RoleAdmin), h.CreateStore)

	mockAdmin.On("CreateStore", "Corner Shop", "shop@example.com", "5 High St", (*int64)(nil), "").
		Return(&models.Store{ID: 3, Name: "Corner Shop"}, nil)

	body, _ := json.Marshal(dto.CreateStoreRequest{
		Name:    "Corner Shop",
		Email:   "shop@example.com",
		Address: "5 High St",
	})
	req, _ := http.NewRequest("POST", "/admin/stores", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var store models.Store
	json.Unmarshal(w.Body.Bytes(), &store)
	assert.Equal(t, uint(3), store.ID)
}
