package db

import (
	"context"

	"VidTube.com/cmd/model"
	"gorm.io/gorm"
)

type LikeDB struct {
	db *gorm.DB
}

func NewLikeDB(db *gorm.DB) *LikeDB {
	return &LikeDB{db: db}
}

// DeleteLike removes the edge for one (user, target) key and reports how many
// rows went away; zero means the edge was already absent.
func (l *LikeDB) DeleteLike(ctx context.Context, userId int64, targetType string, targetId int64) (int64, error) {
	result := l.db.WithContext(ctx).
		Where("user_id = ? AND target_type = ? AND target_id = ?", userId, targetType, targetId).
		Delete(&model.Like{})
	return result.RowsAffected, result.Error
}

// CreateLike inserts the edge. A concurrent insert for the same key trips the
// composite unique index and comes back as gorm.ErrDuplicatedKey.
func (l *LikeDB) CreateLike(ctx context.Context, like *model.Like) error {
	return l.db.WithContext(ctx).Create(like).Error
}

func (l *LikeDB) CountByTarget(ctx context.Context, targetType string, targetId int64) (int64, error) {
	var count int64
	if err := l.db.WithContext(ctx).Model(&model.Like{}).
		Where("target_type = ? AND target_id = ?", targetType, targetId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ListVideoIdsLikedBy returns the video ids behind a user's video likes; some
// may point at deleted videos, the view layer drops those.
func (l *LikeDB) ListVideoIdsLikedBy(ctx context.Context, userId int64) ([]int64, error) {
	ids := make([]int64, 0)
	if err := l.db.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND target_type = ?", userId, model.TargetVideo).
		Order("like_id asc").Select("target_id").Scan(&ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// CountVideoLikesByOwner sums likes across all videos a channel owns.
func (l *LikeDB) CountVideoLikesByOwner(ctx context.Context, ownerId int64) (int64, error) {
	var count int64
	if err := l.db.WithContext(ctx).Model(&model.Like{}).
		Where(`target_type = ? AND target_id IN (
	select video_id from videos where user_id = ?)`, model.TargetVideo, ownerId).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
