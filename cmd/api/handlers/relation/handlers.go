package handlers

import (
	"context"

	jwt "VidTube.com/pkg"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Response struct {
	Code    int64       `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// SendResponse pack response
func SendResponse(c *app.RequestContext, err error, data interface{}) {
	Err := errno.ConvertErr(err)
	c.JSON(consts.StatusOK, Response{
		Code:    Err.ErrCode,
		Message: Err.ErrMsg,
		Data:    data,
	})
}

func currentUserId(ctx context.Context, c *app.RequestContext) (int64, error) {
	v, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		return 0, err
	}
	return utils.Transfer(v), nil
}

type SubscribeParam struct {
	ChannelId int64 `path:"channel_id" form:"channel_id"`
}

type SubscriberListParam struct {
	ChannelId int64 `path:"channel_id" query:"channel_id"`
	PageNum   int64 `query:"page_num" form:"page_num"`
	PageSize  int64 `query:"page_size" form:"page_size"`
}

type SubscribedListParam struct {
	SubscriberId int64 `path:"subscriber_id" query:"subscriber_id"`
	PageNum      int64 `query:"page_num" form:"page_num"`
	PageSize     int64 `query:"page_size" form:"page_size"`
}
