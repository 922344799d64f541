package service

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/errno"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type UserGetter interface {
	GetUserById(ctx context.Context, userId int64) (*model.User, error)
}

type CurrentUserService struct {
	ctx   context.Context
	users UserGetter
}

func NewCurrentUserService(ctx context.Context, users UserGetter) *CurrentUserService {
	return &CurrentUserService{ctx: ctx, users: users}
}

// CurrentUser resolves the authenticated caller's own profile. A token whose
// subject no longer exists in the store is treated as unauthenticated.
func (s *CurrentUserService) CurrentUser(ctx context.Context, userId int64) (*model.UserLite, error) {
	if userId <= 0 {
		return nil, errno.AuthErr
	}
	user, err := s.users.GetUserById(ctx, userId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.AuthErr.WithMessage("user does not exist")
		}
		return nil, errors.WithMessage(errno.MysqlErr, err.Error())
	}
	return user.Lite(), nil
}
