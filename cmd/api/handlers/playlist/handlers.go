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

type CreatePlaylistParam struct {
	Name        string `form:"name" json:"name"`
	Description string `form:"description" json:"description"`
}

type PlaylistIdParam struct {
	PlaylistId int64 `path:"playlist_id" query:"playlist_id" form:"playlist_id"`
}

type PlaylistVideoParam struct {
	PlaylistId int64 `path:"playlist_id" form:"playlist_id"`
	VideoId    int64 `path:"video_id" form:"video_id"`
}

type UpdatePlaylistParam struct {
	PlaylistId  int64  `path:"playlist_id" form:"playlist_id"`
	Name        string `form:"name" json:"name"`
	Description string `form:"description" json:"description"`
}

type UserPlaylistsParam struct {
	UserId int64 `path:"user_id" query:"user_id"`
}
