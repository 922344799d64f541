package model

type Playlist struct {
	PlaylistId  int64  `json:"playlist_id" gorm:"primaryKey"`
	UserId      int64  `json:"user_id" gorm:"index"`
	Name        string `json:"name" gorm:"uniqueIndex;size:128"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// PlaylistVideo is one membership row. The pair is unique, which gives the
// playlist set semantics: re-adding a present video is a no-op.
type PlaylistVideo struct {
	PlaylistVideoId int64 `json:"playlist_video_id" gorm:"primaryKey"`
	PlaylistId      int64 `json:"playlist_id" gorm:"uniqueIndex:idx_playlist_video"`
	VideoId         int64 `json:"video_id" gorm:"uniqueIndex:idx_playlist_video"`
}
