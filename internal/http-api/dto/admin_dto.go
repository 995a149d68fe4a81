package dto

import (
	"time"

	"storehub/internal/http-api/repository"
)

// AdminUserView is a user listing row with the role translated to the public
// vocabulary and, for store owners, the average rating across their stores.
type AdminUserView struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Address     string    `json:"address"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
	OwnerRating *float64  `json:"ownerRating"`
}

// FromRepoUserView converts a repository listing row to its API shape.
func FromRepoUserView(v *repository.UserView) AdminUserView {
	return AdminUserView{
		ID:          v.ID,
		Name:        v.Name,
		Email:       v.Email,
		Address:     v.Address,
		Role:        v.Role.PublicName(),
		CreatedAt:   v.CreatedAt,
		OwnerRating: v.OwnerRating,
	}
}

// FromRepoUserViews converts a listing batch.
func FromRepoUserViews(views []repository.UserView) []AdminUserView {
	out := make([]AdminUserView, 0, len(views))
	for i := range views {
		out = append(out, FromRepoUserView(&views[i]))
	}
	return out
}

// CreateUserRequest: payload for admin user creation. The password rule here
// (length 6-64) is deliberately looser than the signup one; both are named
// predicates in the service layer.
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Address  string `json:"address"`
	Role     string `json:"role"`
}

// CreateStoreRequest: payload for admin store creation. OwnerID, when given,
// must reference an existing store_owner user.
type CreateStoreRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	OwnerID  *int64 `json:"owner_id"`
	ImageURL string `json:"image_url"`
}

// StatsResponse: global platform totals for the admin dashboard
type StatsResponse struct {
	TotalUsers   int64 `json:"totalUsers"`
	TotalStores  int64 `json:"totalStores"`
	TotalRatings int64 `json:"totalRatings"`
}
