package service

import (
	"context"
	"fmt"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/lock"
	"VidTube.com/pkg/utils"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// SubscriptionStore is the slice of the relation DAL this service needs.
type SubscriptionStore interface {
	CreateSubscription(ctx context.Context, sub *model.Subscription) error
	DeleteSubscription(ctx context.Context, subscriberId, channelId int64) (int64, error)
	Exists(ctx context.Context, subscriberId, channelId int64) (bool, error)
}

type UserChecker interface {
	ExistsById(ctx context.Context, userId int64) (bool, error)
}

type ToggleSubscriptionRequest struct {
	SubscriberId int64
	ChannelId    int64
}

type RelationService struct {
	ctx    context.Context
	store  SubscriptionStore
	users  UserChecker
	locker lock.KeyLocker
}

func NewRelationService(ctx context.Context, store SubscriptionStore, users UserChecker, locker lock.KeyLocker) *RelationService {
	return &RelationService{ctx: ctx, store: store, users: users, locker: locker}
}

// ToggleSubscription removes the edge if present, creates it otherwise, and
// reports whether the caller is now subscribed. The whole decision runs under
// a per-(subscriber, channel) lock; the unique index on the pair catches
// anything that still slips through across processes.
func (s *RelationService) ToggleSubscription(ctx context.Context, req *ToggleSubscriptionRequest) (bool, error) {
	if req.SubscriberId <= 0 || req.ChannelId <= 0 {
		return false, errno.ParamErr.WithMessage("subscriber id and channel id are required")
	}
	if req.SubscriberId == req.ChannelId {
		return false, errno.ParamErr.WithMessage("cannot subscribe to your own channel")
	}

	ok, err := s.users.ExistsById(ctx, req.SubscriberId)
	if err != nil {
		return false, errors.WithMessage(errno.MysqlErr, err.Error())
	}
	if !ok {
		return false, errno.AuthErr.WithMessage("subscriber does not exist")
	}
	ok, err = s.users.ExistsById(ctx, req.ChannelId)
	if err != nil {
		return false, errors.WithMessage(errno.MysqlErr, err.Error())
	}
	if !ok {
		return false, errno.NotFoundErr.WithMessage("channel does not exist")
	}

	key := fmt.Sprintf("sub:%d:%d", req.SubscriberId, req.ChannelId)
	unlock, err := s.locker.Lock(ctx, key)
	if err != nil {
		return false, errors.WithMessage(errno.RedisErr, err.Error())
	}
	defer unlock()

	deleted, err := s.store.DeleteSubscription(ctx, req.SubscriberId, req.ChannelId)
	if err != nil {
		return false, errors.WithMessage(errno.MysqlErr, err.Error())
	}
	if deleted > 0 {
		return false, nil
	}

	err = s.store.CreateSubscription(ctx, &model.Subscription{
		SubscriptionId: utils.GenerateID(),
		SubscriberId:   req.SubscriberId,
		ChannelId:      req.ChannelId,
		CreatedAt:      time.Now().Format(constants.DataFormate),
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// a concurrent toggle created it first, the edge is active either way
			return true, nil
		}
		return false, errors.WithMessage(errno.MysqlErr, err.Error())
	}
	return true, nil
}
