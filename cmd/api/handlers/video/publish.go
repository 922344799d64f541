package handlers

import (
	"context"
	"os"

	"VidTube.com/cmd/video/dal/db"
	"VidTube.com/cmd/video/service"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/oss"
	"github.com/cloudwego/hertz/pkg/app"
)

func PublishVideo(ctx context.Context, c *app.RequestContext) {
	var publishVar PublishParam
	if err := c.Bind(&publishVar); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId, err := currentUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	videoPath, err := saveUpload(c, "video")
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	defer os.Remove(videoPath)
	thumbnailPath, err := saveUpload(c, "thumbnail")
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	defer os.Remove(thumbnailPath)

	video, err := service.NewPublishService(ctx, db.Video, oss.NewClient()).Publish(ctx, &service.PublishVideoRequest{
		UserId:        userId,
		Title:         publishVar.Title,
		Description:   publishVar.Description,
		VideoPath:     videoPath,
		ThumbnailPath: thumbnailPath,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, video)
}
