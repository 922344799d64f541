package service

import (
	"context"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/utils"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByName(ctx context.Context, username string) (*model.User, error)
}

type CreateUserRequest struct {
	UserName string
	FullName string
	Email    string
	Password string
}

type CreateUserService struct {
	ctx   context.Context
	users UserStore
}

func NewCreateUserService(ctx context.Context, users UserStore) *CreateUserService {
	return &CreateUserService{ctx: ctx, users: users}
}

// CreateUser registers an actor. Only the bcrypt hash is persisted; token
// minting lives entirely in the API boundary.
func (s *CreateUserService) CreateUser(ctx context.Context, req *CreateUserRequest) (*model.User, error) {
	if req.UserName == "" || req.Email == "" || req.Password == "" {
		return nil, errno.ParamErr.WithMessage("username, email and password are required")
	}
	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, errors.WithMessage(errno.ServiceErr, err.Error())
	}

	now := time.Now().Format(constants.DataFormate)
	user := &model.User{
		UserId:    utils.GenerateID(),
		UserName:  req.UserName,
		FullName:  req.FullName,
		Email:     req.Email,
		Password:  hashed,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errno.ConflictErr.WithMessage("username or email already taken")
		}
		return nil, errors.WithMessage(errno.MysqlErr, err.Error())
	}
	return user, nil
}
