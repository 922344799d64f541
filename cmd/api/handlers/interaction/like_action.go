package handlers

import (
	"context"

	"VidTube.com/cmd/interaction/dal/db"
	"VidTube.com/cmd/interaction/service"
	"VidTube.com/cmd/model"
	userdb "VidTube.com/cmd/user/dal/db"
	videodb "VidTube.com/cmd/video/dal/db"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/lock"
	"github.com/cloudwego/hertz/pkg/app"
)

func likeTarget(kind string, id int64) model.LikeTarget {
	switch kind {
	case model.TargetVideo:
		return model.VideoTarget(id)
	case model.TargetComment:
		return model.CommentTarget(id)
	case model.TargetTweet:
		return model.TweetTarget(id)
	}
	return model.LikeTarget{}
}

func LikeAction(ctx context.Context, c *app.RequestContext) {
	var likeVar LikeParam
	if err := c.Bind(&likeVar); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId, err := currentUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	liked, err := service.NewLikeActionService(ctx, db.Like, videodb.Video, userdb.User, lock.Default).
		ToggleLike(ctx, &service.LikeActionRequest{
			UserId: userId,
			Target: likeTarget(likeVar.TargetType, likeVar.TargetId),
		})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]bool{"liked": liked})
}

func LikedVideos(ctx context.Context, c *app.RequestContext) {
	userId, err := currentUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	videos, err := service.NewLikedVideosService(ctx, db.Like, videodb.Video).LikedVideos(ctx, userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, videos)
}
