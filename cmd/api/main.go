package main

import (
	"context"
	"fmt"

	interactiondb "VidTube.com/cmd/interaction/dal/db"
	playlistdb "VidTube.com/cmd/playlist/dal/db"
	relationdb "VidTube.com/cmd/relation/dal/db"
	tweetdb "VidTube.com/cmd/tweet/dal/db"
	userdb "VidTube.com/cmd/user/dal/db"
	videodb "VidTube.com/cmd/video/dal/db"
	"VidTube.com/config"
	jwt "VidTube.com/pkg"
	"VidTube.com/pkg/cache"
	"VidTube.com/pkg/database"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/lock"
	"VidTube.com/pkg/oss"
	"VidTube.com/pkg/utils"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/cors"
)

func Init() {
	config.Init()
	database.Init()

	userdb.Init(database.DB)
	videodb.Init(database.DB)
	interactiondb.Init(database.DB)
	relationdb.Init(database.DB)
	playlistdb.Init(database.DB)
	tweetdb.Init(database.DB)

	cache.Load()
	if client := cache.Client(); client != nil {
		lock.Init(client)
	}
	if err := oss.InitMinio(); err != nil {
		hlog.Fatalf("minio init failed: %v", err)
	}
	if err := utils.InitSnowflake(1, 1); err != nil {
		hlog.Fatalf("snowflake init failed: %v", err)
	}

	initFlowControl()
}

func main() {
	Init()
	r := server.New(
		server.WithHostPorts(config.ConfigInfo.Server.Addr),
		server.WithHandleMethodNotAllowed(true),
		server.WithMaxRequestBodySize(16*1024*1024*1024),
	)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:8870", "http://localhost:8888"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	jwt.AccessTokenJwtInit()
	jwt.RefreshTokenJwtInit()

	r.Use(recovery.Recovery(recovery.WithRecoveryHandler(
		func(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte) {
			hlog.SystemLogger().CtxErrorf(ctx, "[Recovery] err=%v\nstack=%s", err, stack)
			c.JSON(consts.StatusInternalServerError, map[string]interface{}{
				"code":    errno.ServiceErrCode,
				"message": fmt.Sprintf("[Recovery] err=%v", err),
			})
		})))

	register(r)

	r.Spin()
}
