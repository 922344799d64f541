package db

import "gorm.io/gorm"

var User *UserDB

func Init(gdb *gorm.DB) {
	User = NewUserDB(gdb)
}
