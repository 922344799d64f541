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

type CreateTweetParam struct {
	Content string `form:"content" json:"content"`
}

type UpdateTweetParam struct {
	TweetId int64  `path:"tweet_id" form:"tweet_id"`
	Content string `form:"content" json:"content"`
}

type TweetIdParam struct {
	TweetId int64 `path:"tweet_id" form:"tweet_id"`
}

type UserTweetsParam struct {
	UserId int64 `path:"user_id" query:"user_id"`
}
