package models

import "time"

type Users struct {
	ID        int64     `gorm:"column:id;primary_key" json:"id"`
	Mobile    string    `gorm:"column:mobile;type:varchar(20);not null;uniqueIndex:uk_mobile" json:"mobile"`
	Nickname  string    `gorm:"column:nickname;type:varchar(64);not null;default:''" json:"nickname"`
	Password  string    `gorm:"column:password;type:varchar(255);not null" json:"-"`
	Avatar    string    `gorm:"column:avatar;type:varchar(255);not null;default:''" json:"avatar"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Users) TableName() string {
	return "users"
}
