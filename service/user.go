package service

import (
	"Pulse/config"
	"Pulse/dao"
	"Pulse/models"
	"Pulse/pkg/jwt"
	"Pulse/pkg/snowflake"
	"Pulse/types"
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*types.LoginResponse, error)
	Login(ctx context.Context, req *types.LoginRequest) (*types.LoginResponse, error)
	// DeleteAccount 注销账号：清掉该用户的全部互动记录
	DeleteAccount(ctx context.Context, userID int64) error
}

type UserService struct {
	Config          *config.Config
	UsersDAO        *dao.UsersDAO
	LikeService     ILikeService
	BookmarkService IBookmarkService
}

func (s *UserService) Register(ctx context.Context, req *types.RegisterRequest) (*types.LoginResponse, error) {
	exist, err := s.UsersDAO.MobileExists(ctx, req.Mobile)
	if err != nil {
		return nil, err
	}
	if exist {
		return nil, errors.New("手机号已注册")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.Users{
		ID:       snowflake.GenID(),
		Mobile:   req.Mobile,
		Nickname: req.Nickname,
		Password: string(hashed),
	}
	if err := s.UsersDAO.Create(ctx, user); err != nil {
		return nil, err
	}
	return s.issueToken(user)
}

func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.LoginResponse, error) {
	user, err := s.UsersDAO.GetByMobile(ctx, req.Mobile)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("账号或密码错误")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, errors.New("账号或密码错误")
	}
	return s.issueToken(user)
}

func (s *UserService) DeleteAccount(ctx context.Context, userID int64) error {
	if err := s.LikeService.ClearAllForUser(ctx, userID); err != nil {
		return err
	}
	return s.BookmarkService.ClearAllForUser(ctx, userID)
}

func (s *UserService) issueToken(user *models.Users) (*types.LoginResponse, error) {
	expire := time.Duration(s.Config.Jwt.ExpiresTime) * time.Second
	token, err := jwt.GenerateToken([]byte(s.Config.Jwt.Secret), user.ID, "access", expire)
	if err != nil {
		return nil, err
	}
	return &types.LoginResponse{
		UserID:      user.ID,
		Nickname:    user.Nickname,
		AccessToken: token,
	}, nil
}
