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

// LikeStore is the slice of the like DAL the toggle path needs.
type LikeStore interface {
	DeleteLike(ctx context.Context, userId int64, targetType string, targetId int64) (int64, error)
	CreateLike(ctx context.Context, like *model.Like) error
}

type VideoChecker interface {
	ExistsById(ctx context.Context, videoId int64) (bool, error)
}

type UserChecker interface {
	ExistsById(ctx context.Context, userId int64) (bool, error)
}

type LikeActionRequest struct {
	UserId int64
	Target model.LikeTarget
}

type LikeActionService struct {
	ctx    context.Context
	likes  LikeStore
	videos VideoChecker
	users  UserChecker
	locker lock.KeyLocker
}

func NewLikeActionService(ctx context.Context, likes LikeStore, videos VideoChecker, users UserChecker, locker lock.KeyLocker) *LikeActionService {
	return &LikeActionService{ctx: ctx, likes: likes, videos: videos, users: users, locker: locker}
}

// ToggleLike flips the like edge for one (user, target) key and reports
// whether the edge is now active. Delete-then-create runs under a per-key
// lock so two concurrent toggles cannot both insert; the composite unique
// index backs the lock up across processes, and a duplicate-key insert is
// read as "already active", not an error. No counters are touched here;
// every like count in the system is recomputed at read time.
func (s *LikeActionService) ToggleLike(ctx context.Context, req *LikeActionRequest) (bool, error) {
	if !req.Target.Valid() {
		return false, errno.ParamErr.WithMessage("like target is missing or malformed")
	}
	if req.UserId <= 0 {
		return false, errno.AuthErr
	}
	ok, err := s.users.ExistsById(ctx, req.UserId)
	if err != nil {
		return false, errors.WithMessage(errno.MysqlErr, err.Error())
	}
	if !ok {
		return false, errno.AuthErr.WithMessage("user does not exist")
	}
	if req.Target.Kind() == model.TargetVideo {
		ok, err := s.videos.ExistsById(ctx, req.Target.Id())
		if err != nil {
			return false, errors.WithMessage(errno.MysqlErr, err.Error())
		}
		if !ok {
			return false, errno.NotFoundErr.WithMessage("video does not exist")
		}
	}

	key := fmt.Sprintf("like:%d:%s:%d", req.UserId, req.Target.Kind(), req.Target.Id())
	unlock, err := s.locker.Lock(ctx, key)
	if err != nil {
		return false, errors.WithMessage(errno.RedisErr, err.Error())
	}
	defer unlock()

	deleted, err := s.likes.DeleteLike(ctx, req.UserId, req.Target.Kind(), req.Target.Id())
	if err != nil {
		return false, errors.WithMessage(errno.MysqlErr, err.Error())
	}
	if deleted > 0 {
		return false, nil
	}

	err = s.likes.CreateLike(ctx, &model.Like{
		LikeId:     utils.GenerateID(),
		UserId:     req.UserId,
		TargetType: req.Target.Kind(),
		TargetId:   req.Target.Id(),
		CreatedAt:  time.Now().Format(constants.DataFormate),
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return true, nil
		}
		return false, errors.WithMessage(errno.MysqlErr, err.Error())
	}
	return true, nil
}
