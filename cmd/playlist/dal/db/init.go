package db

import "gorm.io/gorm"

var Playlist *PlaylistDB

func Init(gdb *gorm.DB) {
	Playlist = NewPlaylistDB(gdb)
}
