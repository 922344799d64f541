package handlers

import (
	"context"

	"VidTube.com/cmd/interaction/dal/db"
	"VidTube.com/cmd/interaction/service"
	userdb "VidTube.com/cmd/user/dal/db"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/pagination"
	"github.com/cloudwego/hertz/pkg/app"
)

func CommentList(ctx context.Context, c *app.RequestContext) {
	var listVar ListCommentParam
	if err := c.Bind(&listVar); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	resp, err := service.NewCommentListService(ctx, db.Comment, userdb.User).
		VideoComments(ctx, listVar.VideoId, pagination.Param{Page: listVar.PageNum, Limit: listVar.PageSize})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}
