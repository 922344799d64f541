package db

import (
	"context"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/constants"
	"gorm.io/gorm"
)

type CommentDB struct {
	db *gorm.DB
}

func NewCommentDB(db *gorm.DB) *CommentDB {
	return &CommentDB{db: db}
}

func (c *CommentDB) CreateComment(ctx context.Context, comment *model.Comment) error {
	return c.db.WithContext(ctx).Create(comment).Error
}

func (c *CommentDB) DeleteOwned(ctx context.Context, commentId, userId int64) (int64, error) {
	result := c.db.WithContext(ctx).
		Where("comment_id = ? AND user_id = ?", commentId, userId).Delete(&model.Comment{})
	return result.RowsAffected, result.Error
}

// UpdateContentOwned changes the content only when the row is owned by the
// caller AND the content actually differs. Zero affected rows is ambiguous
// (missing, foreign, or identical content); GetOwned disambiguates.
func (c *CommentDB) UpdateContentOwned(ctx context.Context, commentId, userId int64, content string) (int64, error) {
	result := c.db.WithContext(ctx).Model(&model.Comment{}).
		Where("comment_id = ? AND user_id = ? AND content <> ?", commentId, userId, content).
		Updates(map[string]interface{}{
			"content":    content,
			"updated_at": time.Now().Format(constants.DataFormate),
		})
	return result.RowsAffected, result.Error
}

func (c *CommentDB) GetOwned(ctx context.Context, commentId, userId int64) (*model.Comment, error) {
	comment := &model.Comment{}
	if err := c.db.WithContext(ctx).Model(&model.Comment{}).
		Where("comment_id = ? AND user_id = ?", commentId, userId).First(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// ListByVideo pages through a video's comments in creation order, with the
// id as a deterministic tiebreak.
func (c *CommentDB) ListByVideo(ctx context.Context, videoId int64, offset, limit int) ([]*model.Comment, error) {
	comments := make([]*model.Comment, 0)
	if err := c.db.WithContext(ctx).Model(&model.Comment{}).Where("video_id = ?", videoId).
		Order("created_at asc, comment_id asc").
		Offset(offset).Limit(limit).Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (c *CommentDB) CountByVideo(ctx context.Context, videoId int64) (int64, error) {
	var count int64
	if err := c.db.WithContext(ctx).Model(&model.Comment{}).Where("video_id = ?", videoId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByVideoOwner sums comments across all videos a channel owns.
func (c *CommentDB) CountByVideoOwner(ctx context.Context, ownerId int64) (int64, error) {
	var count int64
	if err := c.db.WithContext(ctx).Model(&model.Comment{}).
		Where(`video_id IN (
	select video_id from videos where user_id = ?)`, ownerId).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (c *CommentDB) ExistsById(ctx context.Context, commentId int64) (bool, error) {
	var count int64
	if err := c.db.WithContext(ctx).Model(&model.Comment{}).Where("comment_id = ?", commentId).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
