package handlers

import (
	"context"

	"VidTube.com/cmd/interaction/dal/db"
	"VidTube.com/cmd/interaction/service"
	userdb "VidTube.com/cmd/user/dal/db"
	videodb "VidTube.com/cmd/video/dal/db"
	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

func CreateComment(ctx context.Context, c *app.RequestContext) {
	var commentVar CreateCommentParam
	if err := c.Bind(&commentVar); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId, err := currentUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	comment, err := service.NewCommentService(ctx, db.Comment, videodb.Video, userdb.User).
		AddComment(ctx, &service.AddCommentRequest{
			UserId:  userId,
			VideoId: commentVar.VideoId,
			Content: commentVar.Content,
		})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, comment)
}

func UpdateComment(ctx context.Context, c *app.RequestContext) {
	var commentVar UpdateCommentParam
	if err := c.Bind(&commentVar); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId, err := currentUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	comment, err := service.NewCommentService(ctx, db.Comment, videodb.Video, userdb.User).
		UpdateComment(ctx, &service.UpdateCommentRequest{
			UserId:    userId,
			CommentId: commentVar.CommentId,
			Content:   commentVar.Content,
		})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, comment)
}

func DeleteComment(ctx context.Context, c *app.RequestContext) {
	var param CommentIdParam
	if err := c.Bind(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId, err := currentUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if err := service.NewCommentService(ctx, db.Comment, videodb.Video, userdb.User).
		DeleteComment(ctx, param.CommentId, userId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}
