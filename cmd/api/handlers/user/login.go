package handlers

import (
	"context"

	"VidTube.com/cmd/user/dal/db"
	"VidTube.com/cmd/user/service"
	jwt "VidTube.com/pkg"
	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

func LoginUser(ctx context.Context, c *app.RequestContext) {
	var loginVar LoginParam
	if err := c.Bind(&loginVar); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	user, err := service.NewLoginUserService(ctx, db.User).LoginUser(ctx, &service.LoginUserRequest{
		Email:    loginVar.Email,
		Password: loginVar.PassWord,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	c.Set(jwt.IdentityKey, user.UserId)
	jwt.AccessTokenJwtMiddleware.LoginHandler(ctx, c)
	jwt.RefreshTokenJwtMiddleware.LoginHandler(ctx, c)

	SendResponse(c, errno.Success, map[string]interface{}{
		"user":          user.Lite(),
		"token":         c.GetString("Access-Token"),
		"refresh_token": c.GetString("Refresh-Token"),
	})
}
