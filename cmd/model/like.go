package model

// Target kinds persisted in the likes table.
const (
	TargetVideo   = "video"
	TargetComment = "comment"
	TargetTweet   = "tweet"
)

// LikeTarget identifies exactly one likeable entity. The fields are
// unexported so a target with zero or several kinds is unrepresentable;
// construct through VideoTarget, CommentTarget or TweetTarget.
type LikeTarget struct {
	kind string
	id   int64
}

func VideoTarget(id int64) LikeTarget   { return LikeTarget{kind: TargetVideo, id: id} }
func CommentTarget(id int64) LikeTarget { return LikeTarget{kind: TargetComment, id: id} }
func TweetTarget(id int64) LikeTarget   { return LikeTarget{kind: TargetTweet, id: id} }

func (t LikeTarget) Kind() string { return t.kind }
func (t LikeTarget) Id() int64    { return t.id }

func (t LikeTarget) Valid() bool {
	if t.id <= 0 {
		return false
	}
	switch t.kind {
	case TargetVideo, TargetComment, TargetTweet:
		return true
	}
	return false
}

// Like is the persisted edge row. At most one row exists per
// (user_id, target_type, target_id) key, enforced by the composite unique
// index; the toggle path depends on that.
type Like struct {
	LikeId     int64  `json:"like_id" gorm:"primaryKey"`
	UserId     int64  `json:"user_id" gorm:"uniqueIndex:idx_like_key"`
	TargetType string `json:"target_type" gorm:"uniqueIndex:idx_like_key;size:16"`
	TargetId   int64  `json:"target_id" gorm:"uniqueIndex:idx_like_key"`
	CreatedAt  string `json:"created_at"`
}
