package db

import (
	"context"

	"VidTube.com/cmd/model"
	"gorm.io/gorm"
)

type SubscriptionDB struct {
	db *gorm.DB
}

func NewSubscriptionDB(db *gorm.DB) *SubscriptionDB {
	return &SubscriptionDB{db: db}
}

func (s *SubscriptionDB) CreateSubscription(ctx context.Context, sub *model.Subscription) error {
	return s.db.WithContext(ctx).Create(sub).Error
}

func (s *SubscriptionDB) DeleteSubscription(ctx context.Context, subscriberId, channelId int64) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("subscriber_id = ? AND channel_id = ?", subscriberId, channelId).
		Delete(&model.Subscription{})
	return result.RowsAffected, result.Error
}

func (s *SubscriptionDB) Exists(ctx context.Context, subscriberId, channelId int64) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscriber_id = ? AND channel_id = ?", subscriberId, channelId).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListSubscribers returns the ids of users subscribed to the channel.
func (s *SubscriptionDB) ListSubscribers(ctx context.Context, channelId int64, offset, limit int) ([]int64, error) {
	ids := make([]int64, 0)
	if err := s.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("channel_id = ?", channelId).Select("subscriber_id").
		Order("subscription_id asc").Offset(offset).Limit(limit).Scan(&ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// ListSubscribed returns the ids of channels the user subscribed to.
func (s *SubscriptionDB) ListSubscribed(ctx context.Context, subscriberId int64, offset, limit int) ([]int64, error) {
	ids := make([]int64, 0)
	if err := s.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscriber_id = ?", subscriberId).Select("channel_id").
		Order("subscription_id asc").Offset(offset).Limit(limit).Scan(&ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *SubscriptionDB) CountSubscribers(ctx context.Context, channelId int64) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("channel_id = ?", channelId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (s *SubscriptionDB) CountSubscribed(ctx context.Context, subscriberId int64) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscriber_id = ?", subscriberId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
