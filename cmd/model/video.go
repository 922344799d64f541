package model

type Video struct {
	VideoId     int64  `json:"video_id" gorm:"primaryKey"`
	UserId      int64  `json:"user_id" gorm:"index"`
	Title       string `json:"title"`
	Description string `json:"description"`
	VideoUrl    string `json:"video_url"`
	CoverUrl    string `json:"cover_url"`
	Duration    int64  `json:"duration"` // seconds
	VisitCount  int64  `json:"visit_count"`
	IsPublished bool   `json:"is_published"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}
