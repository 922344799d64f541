package service

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/utils"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type LoginUserRequest struct {
	Email    string
	Password string
}

type LoginUserService struct {
	ctx   context.Context
	users UserStore
}

func NewLoginUserService(ctx context.Context, users UserStore) *LoginUserService {
	return &LoginUserService{ctx: ctx, users: users}
}

func (s *LoginUserService) LoginUser(ctx context.Context, req *LoginUserRequest) (*model.User, error) {
	if req.Email == "" || req.Password == "" {
		return nil, errno.ParamErr.WithMessage("email and password are required")
	}
	user, err := s.users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.AuthErr.WithMessage("wrong email or password")
		}
		return nil, errors.WithMessage(errno.MysqlErr, err.Error())
	}
	if !utils.VerifyPassword(req.Password, user.Password) {
		return nil, errno.AuthErr.WithMessage("wrong email or password")
	}
	return user, nil
}
