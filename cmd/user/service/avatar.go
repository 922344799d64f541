package service

import (
	"context"
	"fmt"

	"VidTube.com/pkg/errno"
	"github.com/pkg/errors"
)

type ImageUploader interface {
	UploadImage(ctx context.Context, localPath string, objectName string) (string, error)
}

type AvatarStore interface {
	UpdateAvatar(ctx context.Context, userId int64, avatarUrl string) error
	UpdateCover(ctx context.Context, userId int64, coverUrl string) error
}

type UpdateAvatarService struct {
	ctx      context.Context
	users    AvatarStore
	uploader ImageUploader
}

func NewUpdateAvatarService(ctx context.Context, users AvatarStore, uploader ImageUploader) *UpdateAvatarService {
	return &UpdateAvatarService{ctx: ctx, users: users, uploader: uploader}
}

func (s *UpdateAvatarService) UpdateAvatar(ctx context.Context, userId int64, localPath string) (string, error) {
	if userId <= 0 {
		return "", errno.AuthErr
	}
	url, err := s.uploader.UploadImage(ctx, localPath, fmt.Sprintf("avatar/%d.jpg", userId))
	if err != nil {
		return "", errors.WithMessage(errno.OssErr, err.Error())
	}
	if err := s.users.UpdateAvatar(ctx, userId, url); err != nil {
		return "", errors.WithMessage(errno.MysqlErr, err.Error())
	}
	return url, nil
}

func (s *UpdateAvatarService) UpdateCover(ctx context.Context, userId int64, localPath string) (string, error) {
	if userId <= 0 {
		return "", errno.AuthErr
	}
	url, err := s.uploader.UploadImage(ctx, localPath, fmt.Sprintf("cover/%d.jpg", userId))
	if err != nil {
		return "", errors.WithMessage(errno.OssErr, err.Error())
	}
	if err := s.users.UpdateCover(ctx, userId, url); err != nil {
		return "", errors.WithMessage(errno.MysqlErr, err.Error())
	}
	return url, nil
}
