package service

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/pagination"
	"github.com/pkg/errors"
)

type SubscriptionLister interface {
	ListSubscribers(ctx context.Context, channelId int64, offset, limit int) ([]int64, error)
	ListSubscribed(ctx context.Context, subscriberId int64, offset, limit int) ([]int64, error)
	CountSubscribers(ctx context.Context, channelId int64) (int64, error)
	CountSubscribed(ctx context.Context, subscriberId int64) (int64, error)
}

type UserReader interface {
	FindUsersByIds(ctx context.Context, userIds []int64) ([]*model.User, error)
}

type SubscriberListResponse struct {
	Usernames []string `json:"usernames"`
	Count     int64    `json:"count"`
}

type SubscriberListService struct {
	ctx   context.Context
	store SubscriptionLister
	users UserReader
}

func NewSubscriberListService(ctx context.Context, store SubscriptionLister, users UserReader) *SubscriberListService {
	return &SubscriberListService{ctx: ctx, store: store, users: users}
}

// SubscriberList returns the usernames subscribed to a channel. Edges whose
// subscriber row has vanished are dropped from the name list; the count
// still reflects the raw edges.
func (s *SubscriberListService) SubscriberList(ctx context.Context, channelId int64, page pagination.Param) (*SubscriberListResponse, error) {
	if channelId <= 0 {
		return nil, errno.ParamErr.WithMessage("channel id is required")
	}
	page = page.Normalize()

	ids, err := s.store.ListSubscribers(ctx, channelId, page.Offset(), page.Size())
	if err != nil {
		return nil, errors.WithMessage(errno.MysqlErr, err.Error())
	}
	count, err := s.store.CountSubscribers(ctx, channelId)
	if err != nil {
		return nil, errors.WithMessage(errno.MysqlErr, err.Error())
	}
	names, err := s.resolveNames(ctx, ids)
	if err != nil {
		return nil, err
	}
	return &SubscriberListResponse{Usernames: names, Count: count}, nil
}

// SubscribedChannelList returns the usernames of channels the user follows.
func (s *SubscriberListService) SubscribedChannelList(ctx context.Context, subscriberId int64, page pagination.Param) (*SubscriberListResponse, error) {
	if subscriberId <= 0 {
		return nil, errno.ParamErr.WithMessage("subscriber id is required")
	}
	page = page.Normalize()

	ids, err := s.store.ListSubscribed(ctx, subscriberId, page.Offset(), page.Size())
	if err != nil {
		return nil, errors.WithMessage(errno.MysqlErr, err.Error())
	}
	count, err := s.store.CountSubscribed(ctx, subscriberId)
	if err != nil {
		return nil, errors.WithMessage(errno.MysqlErr, err.Error())
	}
	names, err := s.resolveNames(ctx, ids)
	if err != nil {
		return nil, err
	}
	return &SubscriberListResponse{Usernames: names, Count: count}, nil
}

func (s *SubscriberListService) resolveNames(ctx context.Context, ids []int64) ([]string, error) {
	users, err := s.users.FindUsersByIds(ctx, ids)
	if err != nil {
		return nil, errors.WithMessage(errno.MysqlErr, err.Error())
	}
	byId := make(map[int64]*model.User, len(users))
	for _, u := range users {
		byId[u.UserId] = u
	}
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if u, ok := byId[id]; ok {
			names = append(names, u.UserName)
		}
	}
	return names, nil
}
