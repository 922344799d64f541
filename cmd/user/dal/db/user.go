package db

import (
	"context"
	"strings"

	"VidTube.com/cmd/model"
	"gorm.io/gorm"
)

type UserDB struct {
	db *gorm.DB
}

func NewUserDB(db *gorm.DB) *UserDB {
	return &UserDB{db: db}
}

func (u *UserDB) CreateUser(ctx context.Context, user *model.User) error {
	return u.db.WithContext(ctx).Create(user).Error
}

func (u *UserDB) GetUserById(ctx context.Context, userId int64) (*model.User, error) {
	user := &model.User{}
	if err := u.db.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userId).First(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByName matches the username exactly but case-insensitively.
func (u *UserDB) GetUserByName(ctx context.Context, username string) (*model.User, error) {
	user := &model.User{}
	if err := u.db.WithContext(ctx).Model(&model.User{}).
		Where("LOWER(user_name) = ?", strings.ToLower(username)).First(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (u *UserDB) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	user := &model.User{}
	if err := u.db.WithContext(ctx).Model(&model.User{}).Where("email = ?", email).First(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (u *UserDB) FindUsersByIds(ctx context.Context, userIds []int64) ([]*model.User, error) {
	users := make([]*model.User, 0, len(userIds))
	if len(userIds) == 0 {
		return users, nil
	}
	if err := u.db.WithContext(ctx).Model(&model.User{}).Where("user_id IN (?)", userIds).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (u *UserDB) ExistsById(ctx context.Context, userId int64) (bool, error) {
	var count int64
	if err := u.db.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userId).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (u *UserDB) UpdateAvatar(ctx context.Context, userId int64, avatarUrl string) error {
	return u.db.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userId).
		Update("avatar_url", avatarUrl).Error
}

func (u *UserDB) UpdateCover(ctx context.Context, userId int64, coverUrl string) error {
	return u.db.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userId).
		Update("cover_url", coverUrl).Error
}

func (u *UserDB) AddWatchRecord(ctx context.Context, record *model.WatchRecord) error {
	return u.db.WithContext(ctx).Create(record).Error
}

// ListWatchRecords returns the full history in insertion order.
func (u *UserDB) ListWatchRecords(ctx context.Context, userId int64) ([]*model.WatchRecord, error) {
	records := make([]*model.WatchRecord, 0)
	if err := u.db.WithContext(ctx).Model(&model.WatchRecord{}).Where("user_id = ?", userId).
		Order("watch_record_id asc").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
