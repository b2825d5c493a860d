package dao

import (
	"Pulse/models"
	"context"

	"gorm.io/gorm"
)

type UsersDAO struct {
	Repo[models.Users]
}

func NewUsersDAO(db *gorm.DB) *UsersDAO {
	return &UsersDAO{Repo: NewRepo[models.Users](db)}
}

func (u *UsersDAO) GetByMobile(ctx context.Context, mobile string) (*models.Users, error) {
	return u.Repo.FindByWhere(ctx, "mobile = ?", mobile)
}

func (u *UsersDAO) MobileExists(ctx context.Context, mobile string) (bool, error) {
	return u.Repo.IsExist(ctx, "mobile = ?", mobile)
}
