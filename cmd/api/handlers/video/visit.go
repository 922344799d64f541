package handlers

import (
	"context"

	userdb "VidTube.com/cmd/user/dal/db"
	"VidTube.com/cmd/video/dal/db"
	"VidTube.com/cmd/video/service"
	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

// Visit counts the view for everyone; watch history is only appended for a
// logged-in caller.
func Visit(ctx context.Context, c *app.RequestContext) {
	var param VideoIdParam
	if err := c.Bind(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId, err := currentUserId(ctx, c)
	if err != nil {
		userId = 0
	}
	if err := service.NewVisitService(ctx, db.Video, userdb.User).Visit(ctx, param.VideoId, userId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}
