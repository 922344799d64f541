package model

type Comment struct {
	CommentId int64  `json:"comment_id" gorm:"primaryKey"`
	VideoId   int64  `json:"video_id" gorm:"index"`
	UserId    int64  `json:"user_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
