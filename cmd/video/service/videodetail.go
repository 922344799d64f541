package service

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/errno"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type VideoGetter interface {
	GetVideoById(ctx context.Context, videoId int64) (*model.Video, error)
}

type LikeCounter interface {
	CountByTarget(ctx context.Context, targetType string, targetId int64) (int64, error)
}

type VideoDetail struct {
	model.VideoWithOwner
	LikeCount int64 `json:"like_count"`
}

type VideoDetailService struct {
	ctx    context.Context
	videos VideoGetter
	users  UserReader
	likes  LikeCounter
}

func NewVideoDetailService(ctx context.Context, videos VideoGetter, users UserReader, likes LikeCounter) *VideoDetailService {
	return &VideoDetailService{ctx: ctx, videos: videos, users: users, likes: likes}
}

// GetVideo joins the video with its owner projection and the current like
// count. The count is recomputed on every call; a missing owner row leaves
// the owner nil rather than failing the read.
func (s *VideoDetailService) GetVideo(ctx context.Context, videoId int64) (*VideoDetail, error) {
	if videoId <= 0 {
		return nil, errno.ParamErr.WithMessage("video id is missing")
	}
	video, err := s.videos.GetVideoById(ctx, videoId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessage("video does not exist")
		}
		return nil, errors.WithMessage(errno.MysqlErr, err.Error())
	}

	detail := &VideoDetail{VideoWithOwner: model.VideoWithOwner{Video: *video}}

	owners, err := s.users.FindUsersByIds(ctx, []int64{video.UserId})
	if err != nil {
		return nil, errors.WithMessage(errno.MysqlErr, err.Error())
	}
	if len(owners) > 0 {
		detail.Owner = owners[0].Lite()
	}

	count, err := s.likes.CountByTarget(ctx, model.TargetVideo, videoId)
	if err != nil {
		return nil, errors.WithMessage(errno.MysqlErr, err.Error())
	}
	detail.LikeCount = count
	return detail, nil
}
