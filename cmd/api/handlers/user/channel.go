package handlers

import (
	"context"

	interactiondb "VidTube.com/cmd/interaction/dal/db"
	relationdb "VidTube.com/cmd/relation/dal/db"
	userdb "VidTube.com/cmd/user/dal/db"
	"VidTube.com/cmd/user/service"
	videodb "VidTube.com/cmd/video/dal/db"
	"VidTube.com/pkg/cache"
	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

// ChannelProfile is public: a valid token only adds the is_subscribed flag.
func ChannelProfile(ctx context.Context, c *app.RequestContext) {
	var param ChannelProfileParam
	if err := c.Bind(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	viewerId, err := currentUserId(ctx, c)
	if err != nil {
		viewerId = 0
	}
	profile, err := service.NewChannelProfileService(ctx, userdb.User, relationdb.Subscription).
		ChannelProfile(ctx, param.UserName, viewerId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, profile)
}

func ChannelStats(ctx context.Context, c *app.RequestContext) {
	userId, err := currentUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	stats, err := service.NewChannelStatsService(ctx, videodb.Video, interactiondb.Like,
		interactiondb.Comment, relationdb.Subscription, cache.Stats{}).ChannelStats(ctx, userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, stats)
}
