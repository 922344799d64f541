package db

import "gorm.io/gorm"

var Video *VideoDB

func Init(gdb *gorm.DB) {
	Video = NewVideoDB(gdb)
}
