package authfunc

import (
	"context"

	handlers "VidTube.com/cmd/api/handlers/interaction"
	jwt "VidTube.com/pkg"
	"VidTube.com/pkg/errno"

	"github.com/cloudwego/hertz/pkg/app"
)

func Auth() []app.HandlerFunc {
	return append(make([]app.HandlerFunc, 0),
		DoubleTokenAuthFunc(),
	)
}

// DoubleTokenAuthFunc accepts a live access token, or a live refresh token
// from which it mints a replacement access token on the fly.
func DoubleTokenAuthFunc() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		if !jwt.IsAccessTokenAvailable(ctx, c) {
			if !jwt.IsRefreshTokenAvailable(ctx, c) {
				handlers.SendResponse(c, errno.ConvertErr(errno.AuthErr), nil)
				c.Abort()
				return
			}
			jwt.GenerateAccessToken(ctx, c)
		}
		c.Next(ctx)
	}
}
