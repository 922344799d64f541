package model

type User struct {
	UserId    int64  `json:"user_id" gorm:"primaryKey"`
	UserName  string `json:"user_name" gorm:"uniqueIndex;size:64"`
	FullName  string `json:"full_name"`
	Email     string `json:"email" gorm:"uniqueIndex;size:128"`
	Password  string `json:"-"`
	AvatarUrl string `json:"avatar_url"`
	CoverUrl  string `json:"cover_url"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// WatchRecord is one entry of a user's watch history. The primary key is a
// snowflake id, so ordering by it reproduces insertion order.
type WatchRecord struct {
	WatchRecordId int64  `json:"watch_record_id" gorm:"primaryKey"`
	UserId        int64  `json:"user_id" gorm:"index"`
	VideoId       int64  `json:"video_id"`
	WatchedAt     string `json:"watched_at"`
}
