package handlers

import (
	"context"

	"VidTube.com/cmd/user/dal/db"
	"VidTube.com/cmd/user/service"
	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

func RegisterUser(ctx context.Context, c *app.RequestContext) {
	var registerVar RegisterParam
	if err := c.Bind(&registerVar); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	user, err := service.NewCreateUserService(ctx, db.User).CreateUser(ctx, &service.CreateUserRequest{
		UserName: registerVar.UserName,
		FullName: registerVar.FullName,
		Email:    registerVar.Email,
		Password: registerVar.PassWord,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, user.Lite())
}
