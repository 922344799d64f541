package db

import "gorm.io/gorm"

var (
	Like    *LikeDB
	Comment *CommentDB
)

func Init(gdb *gorm.DB) {
	Like = NewLikeDB(gdb)
	Comment = NewCommentDB(gdb)
}
