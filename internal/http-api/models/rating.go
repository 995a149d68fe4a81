package models

import "time"

// Rating holds one user's score for one store. The (store_id, user_id) pair
// is unique: a repeated submission overwrites the row instead of adding one.
type Rating struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	StoreID   uint      `gorm:"not null;uniqueIndex:idx_ratings_store_user" json:"store_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_ratings_store_user" json:"user_id"`
	Rating    int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Associations
	User  User  `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Store Store `json:"store,omitempty" gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE;"`
}

func (Rating) TableName() string {
	return "ratings"
}
