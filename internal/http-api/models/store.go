package models

import "time"

type Store struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	ImageURL  string    `gorm:"column:image_url" json:"image_url"`
	OwnerID   *uint     `gorm:"index" json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Associations
	Owner *User `json:"-" gorm:"foreignKey:OwnerID;constraint:OnDelete:SET NULL;"`
}

func (Store) TableName() string {
	return "stores"
}
