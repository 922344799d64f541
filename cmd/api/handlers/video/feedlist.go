package handlers

import (
	"context"

	userdb "VidTube.com/cmd/user/dal/db"
	"VidTube.com/cmd/video/dal/db"
	"VidTube.com/cmd/video/service"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/pagination"
	"github.com/cloudwego/hertz/pkg/app"
)

func FeedList(ctx context.Context, c *app.RequestContext) {
	var feedVar FeedListParam
	if err := c.Bind(&feedVar); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	resp, err := service.NewFeedListService(ctx, db.Video, userdb.User).FeedList(ctx, &service.FeedListRequest{
		Filter:    feedVar.Filter,
		SortBy:    feedVar.SortBy,
		SortOrder: feedVar.SortOrder,
		UserId:    feedVar.UserId,
		Page:      pagination.Param{Page: feedVar.PageNum, Limit: feedVar.PageSize},
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}
