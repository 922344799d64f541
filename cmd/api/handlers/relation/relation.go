package handlers

import (
	"context"

	"VidTube.com/cmd/relation/dal/db"
	"VidTube.com/cmd/relation/service"
	userdb "VidTube.com/cmd/user/dal/db"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/lock"
	"VidTube.com/pkg/pagination"
	"github.com/cloudwego/hertz/pkg/app"
)

func ToggleSubscription(ctx context.Context, c *app.RequestContext) {
	var subVar SubscribeParam
	if err := c.Bind(&subVar); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId, err := currentUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	subscribed, err := service.NewRelationService(ctx, db.Subscription, userdb.User, lock.Default).
		ToggleSubscription(ctx, &service.ToggleSubscriptionRequest{
			SubscriberId: userId,
			ChannelId:    subVar.ChannelId,
		})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]bool{"subscribed": subscribed})
}

func SubscriberList(ctx context.Context, c *app.RequestContext) {
	var listVar SubscriberListParam
	if err := c.Bind(&listVar); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	resp, err := service.NewSubscriberListService(ctx, db.Subscription, userdb.User).
		SubscriberList(ctx, listVar.ChannelId, pagination.Param{Page: listVar.PageNum, Limit: listVar.PageSize})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}

func SubscribedChannelList(ctx context.Context, c *app.RequestContext) {
	var listVar SubscribedListParam
	if err := c.Bind(&listVar); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	resp, err := service.NewSubscriberListService(ctx, db.Subscription, userdb.User).
		SubscribedChannelList(ctx, listVar.SubscriberId, pagination.Param{Page: listVar.PageNum, Limit: listVar.PageSize})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}
