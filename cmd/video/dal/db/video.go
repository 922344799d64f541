package db

import (
	"context"
	"fmt"

	"VidTube.com/cmd/model"
	"gorm.io/gorm"
)

type VideoDB struct {
	db *gorm.DB
}

func NewVideoDB(db *gorm.DB) *VideoDB {
	return &VideoDB{db: db}
}

func (v *VideoDB) CreateVideo(ctx context.Context, video *model.Video) error {
	return v.db.WithContext(ctx).Create(video).Error
}

func (v *VideoDB) GetVideoById(ctx context.Context, videoId int64) (*model.Video, error) {
	video := &model.Video{}
	if err := v.db.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).First(video).Error; err != nil {
		return nil, err
	}
	return video, nil
}

func (v *VideoDB) FindVideosByIds(ctx context.Context, videoIds []int64) ([]*model.Video, error) {
	videos := make([]*model.Video, 0, len(videoIds))
	if len(videoIds) == 0 {
		return videos, nil
	}
	if err := v.db.WithContext(ctx).Model(&model.Video{}).Where("video_id IN (?)", videoIds).Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

func (v *VideoDB) ExistsById(ctx context.Context, videoId int64) (bool, error) {
	var count int64
	if err := v.db.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FeedList filters published videos by a case-insensitive substring over
// title or description, sorts, then pages. sortBy and order are validated by
// the service before they reach the query string.
func (v *VideoDB) FeedList(ctx context.Context, filter, sortBy, order string, offset, limit int) ([]*model.Video, int64, error) {
	videos := make([]*model.Video, 0)
	var count int64

	q := v.db.WithContext(ctx).Model(&model.Video{}).Where("is_published = ?", true)
	if filter != "" {
		pattern := "%" + filter + "%"
		q = q.Where("title LIKE ? OR description LIKE ?", pattern, pattern)
	}
	if err := q.Count(&count).Error; err != nil {
		return nil, 0, err
	}
	if err := q.Order(fmt.Sprintf("%s %s", sortBy, order)).
		Offset(offset).Limit(limit).Find(&videos).Error; err != nil {
		return nil, 0, err
	}
	return videos, count, nil
}

func (v *VideoDB) ListByUser(ctx context.Context, userId int64) ([]*model.Video, error) {
	videos := make([]*model.Video, 0)
	if err := v.db.WithContext(ctx).Model(&model.Video{}).Where("user_id = ?", userId).
		Order("created_at desc").Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

func (v *VideoDB) CountByUser(ctx context.Context, userId int64) (int64, error) {
	var count int64
	if err := v.db.WithContext(ctx).Model(&model.Video{}).Where("user_id = ?", userId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (v *VideoDB) SumViewsByUser(ctx context.Context, userId int64) (int64, error) {
	var total int64
	if err := v.db.WithContext(ctx).Model(&model.Video{}).Where("user_id = ?", userId).
		Select("IFNULL(SUM(visit_count), 0)").Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// UpdateOwned is the ownership-scoped conditional write: zero affected rows
// means missing or not owned, and the caller must not distinguish the two.
func (v *VideoDB) UpdateOwned(ctx context.Context, videoId, userId int64, updates map[string]interface{}) (int64, error) {
	result := v.db.WithContext(ctx).Model(&model.Video{}).
		Where("video_id = ? AND user_id = ?", videoId, userId).Updates(updates)
	return result.RowsAffected, result.Error
}

func (v *VideoDB) DeleteOwned(ctx context.Context, videoId, userId int64) (int64, error) {
	result := v.db.WithContext(ctx).Where("video_id = ? AND user_id = ?", videoId, userId).Delete(&model.Video{})
	return result.RowsAffected, result.Error
}

func (v *VideoDB) GetOwned(ctx context.Context, videoId, userId int64) (*model.Video, error) {
	video := &model.Video{}
	if err := v.db.WithContext(ctx).Model(&model.Video{}).
		Where("video_id = ? AND user_id = ?", videoId, userId).First(video).Error; err != nil {
		return nil, err
	}
	return video, nil
}

func (v *VideoDB) TogglePublishOwned(ctx context.Context, videoId, userId int64) (int64, error) {
	result := v.db.WithContext(ctx).Model(&model.Video{}).
		Where("video_id = ? AND user_id = ?", videoId, userId).
		Update("is_published", gorm.Expr("NOT is_published"))
	return result.RowsAffected, result.Error
}

func (v *VideoDB) IncrVisit(ctx context.Context, videoId int64) (int64, error) {
	result := v.db.WithContext(ctx).Model(&model.Video{}).
		Where("video_id = ?", videoId).
		UpdateColumn("visit_count", gorm.Expr("visit_count + 1"))
	return result.RowsAffected, result.Error
}
