package handlers

import (
	"context"
	"os"

	interactiondb "VidTube.com/cmd/interaction/dal/db"
	userdb "VidTube.com/cmd/user/dal/db"
	"VidTube.com/cmd/video/dal/db"
	"VidTube.com/cmd/video/service"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/oss"
	"github.com/cloudwego/hertz/pkg/app"
)

func GetVideo(ctx context.Context, c *app.RequestContext) {
	var param VideoIdParam
	if err := c.Bind(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	video, err := service.NewVideoDetailService(ctx, db.Video, userdb.User, interactiondb.Like).GetVideo(ctx, param.VideoId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, video)
}

func UpdateVideo(ctx context.Context, c *app.RequestContext) {
	var updateVar UpdateVideoParam
	if err := c.Bind(&updateVar); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId, err := currentUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	// thumbnail replacement is optional on this endpoint
	thumbnailPath := ""
	if _, err := c.FormFile("thumbnail"); err == nil {
		thumbnailPath, err = saveUpload(c, "thumbnail")
		if err != nil {
			SendResponse(c, errno.ConvertErr(err), nil)
			return
		}
		defer os.Remove(thumbnailPath)
	}

	video, err := service.NewVideoService(ctx, db.Video, oss.NewClient()).UpdateVideo(ctx, &service.UpdateVideoRequest{
		UserId:        userId,
		VideoId:       updateVar.VideoId,
		Title:         updateVar.Title,
		Description:   updateVar.Description,
		ThumbnailPath: thumbnailPath,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, video)
}

func DeleteVideo(ctx context.Context, c *app.RequestContext) {
	var param VideoIdParam
	if err := c.Bind(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId, err := currentUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if err := service.NewVideoService(ctx, db.Video, oss.NewClient()).DeleteVideo(ctx, param.VideoId, userId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

// MyVideos returns the caller's uploads including unpublished drafts.
func MyVideos(ctx context.Context, c *app.RequestContext) {
	userId, err := currentUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	videos, err := service.NewVideoService(ctx, db.Video, oss.NewClient()).MyVideos(ctx, userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, videos)
}

func TogglePublish(ctx context.Context, c *app.RequestContext) {
	var param VideoIdParam
	if err := c.Bind(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId, err := currentUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	video, err := service.NewVideoService(ctx, db.Video, oss.NewClient()).TogglePublish(ctx, param.VideoId, userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, video)
}
