package handlers

import (
	"context"

	"VidTube.com/cmd/user/dal/db"
	"VidTube.com/cmd/user/service"
	videodb "VidTube.com/cmd/video/dal/db"
	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

func WatchHistory(ctx context.Context, c *app.RequestContext) {
	userId, err := currentUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	items, err := service.NewWatchHistoryService(ctx, db.User, videodb.Video).WatchHistory(ctx, userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, items)
}
