package model

// Read-side projections. None of these are persisted; they are composed from
// the entity and edge tables at read time.

type UserLite struct {
	UserId    int64  `json:"user_id"`
	UserName  string `json:"user_name"`
	FullName  string `json:"full_name"`
	AvatarUrl string `json:"avatar_url"`
}

func (u *User) Lite() *UserLite {
	return &UserLite{
		UserId:    u.UserId,
		UserName:  u.UserName,
		FullName:  u.FullName,
		AvatarUrl: u.AvatarUrl,
	}
}

type VideoWithOwner struct {
	Video
	Owner *UserLite `json:"owner"`
}

type CommentWithOwner struct {
	Comment
	Owner *UserLite `json:"owner"`
}

type ChannelProfile struct {
	UserId           int64  `json:"user_id"`
	UserName         string `json:"user_name"`
	FullName         string `json:"full_name"`
	Email            string `json:"email"`
	AvatarUrl        string `json:"avatar_url"`
	CoverUrl         string `json:"cover_url"`
	SubscribersCount int64  `json:"subscribers_count"`
	SubscribedCount  int64  `json:"subscribed_count"`
	IsSubscribed     bool   `json:"is_subscribed"`
}

type ChannelStats struct {
	TotalVideos      int64 `json:"total_videos"`
	TotalViews       int64 `json:"total_views"`
	TotalVideoLikes  int64 `json:"total_video_likes"`
	TotalComments    int64 `json:"total_comments"`
	TotalSubscribers int64 `json:"total_subscribers"`
}
