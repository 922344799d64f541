package database

import (
	"VidTube.com/cmd/model"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormopentracing "gorm.io/plugin/opentracing"
)

var DB *gorm.DB

// Init opens the shared MySQL handle. TranslateError is on so unique-index
// violations surface as gorm.ErrDuplicatedKey, which the toggle and
// playlist-name paths rely on.
func Init() {
	var err error
	dsn := utils.GetMysqlDsn()
	DB, err = gorm.Open(mysql.Open(dsn),
		&gorm.Config{
			PrepareStmt:            true,
			SkipDefaultTransaction: true,
			TranslateError:         true,
		},
	)
	if err != nil {
		panic(err)
	}
	if err = DB.Use(gormopentracing.New()); err != nil {
		panic(err)
	}

	if err = DB.AutoMigrate(
		&model.User{},
		&model.WatchRecord{},
		&model.Video{},
		&model.Comment{},
		&model.Tweet{},
		&model.Playlist{},
		&model.PlaylistVideo{},
		&model.Like{},
		&model.Subscription{},
	); err != nil {
		hlog.Errorf("auto migrate failed: %v", err)
	}
}
