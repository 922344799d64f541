package service

import (
	"context"
	"fmt"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type UpdateVideoRequest struct {
	UserId        int64
	VideoId       int64
	Title         string
	Description   string
	ThumbnailPath string // optional replacement
}

type VideoService struct {
	ctx    context.Context
	videos VideoStore
	media  MediaStore
}

func NewVideoService(ctx context.Context, videos VideoStore, media MediaStore) *VideoService {
	return &VideoService{ctx: ctx, videos: videos, media: media}
}

// UpdateVideo edits title/description through the ownership-scoped
// conditional write; a no-op edit of identical values is treated as success.
// A replacement thumbnail goes through the media collaborator and the old
// asset is revoked best-effort.
func (s *VideoService) UpdateVideo(ctx context.Context, req *UpdateVideoRequest) (*model.Video, error) {
	if req.VideoId <= 0 {
		return nil, errno.ParamErr.WithMessage("video id is missing")
	}
	if req.Title == "" && req.Description == "" && req.ThumbnailPath == "" {
		return nil, errno.ParamErr.WithMessage("nothing to update")
	}

	updates := map[string]interface{}{
		"updated_at": time.Now().Format(constants.DataFormate),
	}
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}

	var oldCover string
	if req.ThumbnailPath != "" {
		current, err := s.videos.GetOwned(ctx, req.VideoId, req.UserId)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errno.NotFoundOrForbiddenErr
			}
			return nil, errors.WithMessage(errno.MysqlErr, err.Error())
		}
		oldCover = current.CoverUrl
		coverUrl, err := s.media.UploadImage(ctx, req.ThumbnailPath, fmt.Sprintf("thumbnail/%d.jpg", req.VideoId))
		if err != nil {
			return nil, errors.WithMessage(errno.OssErr, err.Error())
		}
		updates["cover_url"] = coverUrl
	}

	rows, err := s.videos.UpdateOwned(ctx, req.VideoId, req.UserId, updates)
	if err != nil {
		return nil, errors.WithMessage(errno.MysqlErr, err.Error())
	}
	if rows == 0 {
		// values may have been identical; only a missing/foreign row is an error
		if _, err := s.videos.GetOwned(ctx, req.VideoId, req.UserId); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errno.NotFoundOrForbiddenErr
			}
			return nil, errors.WithMessage(errno.MysqlErr, err.Error())
		}
	}
	if oldCover != "" {
		if err := s.media.Delete(ctx, oldCover); err != nil {
			hlog.Warnf("failed to delete old thumbnail: %v", err)
		}
	}
	return s.videos.GetOwned(ctx, req.VideoId, req.UserId)
}

// DeleteVideo removes the row through the conditional write and then revokes
// the media assets. Comments and like edges pointing at the video are left
// in place; the read views tolerate the dangling references.
func (s *VideoService) DeleteVideo(ctx context.Context, videoId, userId int64) error {
	if videoId <= 0 {
		return errno.ParamErr.WithMessage("video id is missing")
	}
	video, err := s.videos.GetOwned(ctx, videoId, userId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errno.NotFoundOrForbiddenErr
		}
		return errors.WithMessage(errno.MysqlErr, err.Error())
	}

	rows, err := s.videos.DeleteOwned(ctx, videoId, userId)
	if err != nil {
		return errors.WithMessage(errno.MysqlErr, err.Error())
	}
	if rows == 0 {
		return errno.NotFoundOrForbiddenErr
	}

	if err := s.media.Delete(ctx, video.VideoUrl); err != nil {
		hlog.Warnf("failed to delete video asset: %v", err)
	}
	if err := s.media.Delete(ctx, video.CoverUrl); err != nil {
		hlog.Warnf("failed to delete thumbnail asset: %v", err)
	}
	return nil
}

// MyVideos lists the caller's own uploads newest first, drafts included.
func (s *VideoService) MyVideos(ctx context.Context, userId int64) ([]*model.Video, error) {
	if userId <= 0 {
		return nil, errno.AuthErr
	}
	videos, err := s.videos.ListByUser(ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(errno.MysqlErr, err.Error())
	}
	return videos, nil
}

func (s *VideoService) TogglePublish(ctx context.Context, videoId, userId int64) (*model.Video, error) {
	if videoId <= 0 {
		return nil, errno.ParamErr.WithMessage("video id is missing")
	}
	rows, err := s.videos.TogglePublishOwned(ctx, videoId, userId)
	if err != nil {
		return nil, errors.WithMessage(errno.MysqlErr, err.Error())
	}
	if rows == 0 {
		return nil, errno.NotFoundOrForbiddenErr
	}
	return s.videos.GetOwned(ctx, videoId, userId)
}
