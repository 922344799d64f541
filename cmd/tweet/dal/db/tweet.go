package db

import (
	"context"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/constants"
	"gorm.io/gorm"
)

type TweetDB struct {
	db *gorm.DB
}

func NewTweetDB(db *gorm.DB) *TweetDB {
	return &TweetDB{db: db}
}

func (t *TweetDB) CreateTweet(ctx context.Context, tweet *model.Tweet) error {
	return t.db.WithContext(ctx).Create(tweet).Error
}

func (t *TweetDB) UpdateContentOwned(ctx context.Context, tweetId, userId int64, content string) (int64, error) {
	result := t.db.WithContext(ctx).Model(&model.Tweet{}).
		Where("tweet_id = ? AND user_id = ? AND content <> ?", tweetId, userId, content).
		Updates(map[string]interface{}{
			"content":    content,
			"updated_at": time.Now().Format(constants.DataFormate),
		})
	return result.RowsAffected, result.Error
}

func (t *TweetDB) GetOwned(ctx context.Context, tweetId, userId int64) (*model.Tweet, error) {
	tweet := &model.Tweet{}
	if err := t.db.WithContext(ctx).Model(&model.Tweet{}).
		Where("tweet_id = ? AND user_id = ?", tweetId, userId).First(tweet).Error; err != nil {
		return nil, err
	}
	return tweet, nil
}

func (t *TweetDB) DeleteOwned(ctx context.Context, tweetId, userId int64) (int64, error) {
	result := t.db.WithContext(ctx).
		Where("tweet_id = ? AND user_id = ?", tweetId, userId).Delete(&model.Tweet{})
	return result.RowsAffected, result.Error
}

func (t *TweetDB) ListByUser(ctx context.Context, userId int64) ([]*model.Tweet, error) {
	tweets := make([]*model.Tweet, 0)
	if err := t.db.WithContext(ctx).Model(&model.Tweet{}).
		Where("user_id = ?", userId).Order("created_at desc, tweet_id desc").
		Find(&tweets).Error; err != nil {
		return nil, err
	}
	return tweets, nil
}

func (t *TweetDB) ExistsById(ctx context.Context, tweetId int64) (bool, error) {
	var count int64
	if err := t.db.WithContext(ctx).Model(&model.Tweet{}).Where("tweet_id = ?", tweetId).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
