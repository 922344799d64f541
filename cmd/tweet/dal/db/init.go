package db

import "gorm.io/gorm"

var Tweet *TweetDB

func Init(gdb *gorm.DB) {
	Tweet = NewTweetDB(gdb)
}
