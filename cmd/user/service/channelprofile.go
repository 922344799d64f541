package service

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/errno"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type SubscriptionCounter interface {
	CountSubscribers(ctx context.Context, channelId int64) (int64, error)
	CountSubscribed(ctx context.Context, subscriberId int64) (int64, error)
	Exists(ctx context.Context, subscriberId, channelId int64) (bool, error)
}

type ChannelProfileService struct {
	ctx   context.Context
	users UserStore
	subs  SubscriptionCounter
}

func NewChannelProfileService(ctx context.Context, users UserStore, subs SubscriptionCounter) *ChannelProfileService {
	return &ChannelProfileService{ctx: ctx, users: users, subs: subs}
}

// ChannelProfile joins the actor row with both subscription directions.
// requestingUserId may be zero (anonymous): isSubscribed is then false.
func (s *ChannelProfileService) ChannelProfile(ctx context.Context, username string, requestingUserId int64) (*model.ChannelProfile, error) {
	if username == "" {
		return nil, errno.ParamErr.WithMessage("username is missing")
	}
	user, err := s.users.GetUserByName(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessage("channel does not exist")
		}
		return nil, errors.WithMessage(errno.MysqlErr, err.Error())
	}

	subscribers, err := s.subs.CountSubscribers(ctx, user.UserId)
	if err != nil {
		return nil, errors.WithMessage(errno.MysqlErr, err.Error())
	}
	subscribed, err := s.subs.CountSubscribed(ctx, user.UserId)
	if err != nil {
		return nil, errors.WithMessage(errno.MysqlErr, err.Error())
	}

	isSubscribed := false
	if requestingUserId > 0 {
		isSubscribed, err = s.subs.Exists(ctx, requestingUserId, user.UserId)
		if err != nil {
			return nil, errors.WithMessage(errno.MysqlErr, err.Error())
		}
	}

	return &model.ChannelProfile{
		UserId:           user.UserId,
		UserName:         user.UserName,
		FullName:         user.FullName,
		Email:            user.Email,
		AvatarUrl:        user.AvatarUrl,
		CoverUrl:         user.CoverUrl,
		SubscribersCount: subscribers,
		SubscribedCount:  subscribed,
		IsSubscribed:     isSubscribed,
	}, nil
}
