package service

import (
	"context"
	"fmt"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/oss"
	"VidTube.com/pkg/utils"
	"github.com/pkg/errors"
)

// MediaStore is the media collaborator surface: upload returns a reference
// string (plus probed duration for videos), delete revokes one.
type MediaStore interface {
	UploadVideo(ctx context.Context, localPath string, objectName string) (*oss.MediaRef, error)
	UploadImage(ctx context.Context, localPath string, objectName string) (string, error)
	Delete(ctx context.Context, ref string) error
}

type VideoStore interface {
	CreateVideo(ctx context.Context, video *model.Video) error
	GetVideoById(ctx context.Context, videoId int64) (*model.Video, error)
	GetOwned(ctx context.Context, videoId, userId int64) (*model.Video, error)
	UpdateOwned(ctx context.Context, videoId, userId int64, updates map[string]interface{}) (int64, error)
	DeleteOwned(ctx context.Context, videoId, userId int64) (int64, error)
	TogglePublishOwned(ctx context.Context, videoId, userId int64) (int64, error)
	ListByUser(ctx context.Context, userId int64) ([]*model.Video, error)
}

type PublishVideoRequest struct {
	UserId        int64
	Title         string
	Description   string
	VideoPath     string
	ThumbnailPath string
}

type PublishService struct {
	ctx    context.Context
	videos VideoStore
	media  MediaStore
}

func NewPublishService(ctx context.Context, videos VideoStore, media MediaStore) *PublishService {
	return &PublishService{ctx: ctx, videos: videos, media: media}
}

// Publish uploads the media pair, takes the probed duration from the
// collaborator and persists only the returned references.
func (s *PublishService) Publish(ctx context.Context, req *PublishVideoRequest) (*model.Video, error) {
	if req.UserId <= 0 {
		return nil, errno.AuthErr
	}
	if req.Title == "" || req.Description == "" {
		return nil, errno.ParamErr.WithMessage("title or description is missing")
	}
	if req.VideoPath == "" || req.ThumbnailPath == "" {
		return nil, errno.ParamErr.WithMessage("video and thumbnail are required")
	}

	videoId := utils.GenerateID()
	media, err := s.media.UploadVideo(ctx, req.VideoPath, fmt.Sprintf("video/%d.mp4", videoId))
	if err != nil {
		return nil, errors.WithMessage(errno.OssErr, err.Error())
	}
	coverUrl, err := s.media.UploadImage(ctx, req.ThumbnailPath, fmt.Sprintf("thumbnail/%d.jpg", videoId))
	if err != nil {
		return nil, errors.WithMessage(errno.OssErr, err.Error())
	}

	now := time.Now().Format(constants.DataFormate)
	video := &model.Video{
		VideoId:     videoId,
		UserId:      req.UserId,
		Title:       req.Title,
		Description: req.Description,
		VideoUrl:    media.Url,
		CoverUrl:    coverUrl,
		Duration:    media.Duration,
		IsPublished: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.videos.CreateVideo(ctx, video); err != nil {
		return nil, errors.WithMessage(errno.MysqlErr, err.Error())
	}
	return video, nil
}
