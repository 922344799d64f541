package service

import (
	"context"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/utils"
	"github.com/pkg/errors"
)

type VisitStore interface {
	IncrVisit(ctx context.Context, videoId int64) (int64, error)
}

type WatchRecorder interface {
	AddWatchRecord(ctx context.Context, record *model.WatchRecord) error
}

type VisitService struct {
	ctx    context.Context
	videos VisitStore
	watch  WatchRecorder
}

func NewVisitService(ctx context.Context, videos VisitStore, watch WatchRecorder) *VisitService {
	return &VisitService{ctx: ctx, videos: videos, watch: watch}
}

// Visit bumps the view counter in a single relative update and appends the
// video to the viewer's watch history. Anonymous visits (userId == 0) count
// views but record no history.
func (s *VisitService) Visit(ctx context.Context, videoId, userId int64) error {
	if videoId <= 0 {
		return errno.ParamErr.WithMessage("video id is missing")
	}
	rows, err := s.videos.IncrVisit(ctx, videoId)
	if err != nil {
		return errors.WithMessage(errno.MysqlErr, err.Error())
	}
	if rows == 0 {
		return errno.NotFoundErr.WithMessage("video does not exist")
	}
	if userId > 0 {
		if err := s.watch.AddWatchRecord(ctx, &model.WatchRecord{
			WatchRecordId: utils.GenerateID(),
			UserId:        userId,
			VideoId:       videoId,
			WatchedAt:     time.Now().Format(constants.DataFormate),
		}); err != nil {
			return errors.WithMessage(errno.MysqlErr, err.Error())
		}
	}
	return nil
}
