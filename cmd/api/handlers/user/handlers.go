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

type RegisterParam struct {
	UserName string `form:"user_name" json:"user_name"`
	FullName string `form:"full_name" json:"full_name"`
	Email    string `form:"email" json:"email"`
	PassWord string `form:"password" json:"password"`
}

type LoginParam struct {
	Email    string `form:"email" json:"email"`
	PassWord string `form:"password" json:"password"`
}

type ChannelProfileParam struct {
	UserName string `path:"username" query:"username"`
}
