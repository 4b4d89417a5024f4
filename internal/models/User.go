package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Email       string `json:"email" gorm:"unique;not null"`
	Password    string `json:"-"` // bcrypt hash, never serialized
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	Phone       string `json:"phone,omitempty"`

	Trips    []Trip    `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"trips,omitempty"`
	Expenses []Expense `gorm:"foreignKey:UserID" json:"expenses,omitempty"`
}
