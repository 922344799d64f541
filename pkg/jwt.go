package jwt

import (
	"context"
	"strconv"
	"time"

	"VidTube.com/config"
	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/hertz-contrib/jwt"
)

var (
	AccessTokenJwtMiddleware  *jwt.HertzJWTMiddleware
	RefreshTokenJwtMiddleware *jwt.HertzJWTMiddleware
)

const IdentityKey = "user_id"

// The user id is stored in the claims as a decimal string: snowflake ids do
// not survive the json float64 round trip intact.
func payloadFunc(data interface{}) jwt.MapClaims {
	switch v := data.(type) {
	case int64:
		return jwt.MapClaims{IdentityKey: strconv.FormatInt(v, 10)}
	case string:
		return jwt.MapClaims{IdentityKey: v}
	}
	return jwt.MapClaims{}
}

// The login handler verifies credentials itself and parks the user id on the
// request context before invoking LoginHandler, so the authenticator only
// picks it back up.
func authenticator(ctx context.Context, c *app.RequestContext) (interface{}, error) {
	userId, ok := c.Get(IdentityKey)
	if !ok {
		return nil, errno.AuthErr
	}
	return userId, nil
}

func newMiddleware(timeout time.Duration, tokenLookup, outKey string) *jwt.HertzJWTMiddleware {
	mw, err := jwt.New(&jwt.HertzJWTMiddleware{
		Realm:         "vidtube",
		Key:           []byte(config.ConfigInfo.Jwt.Secret),
		Timeout:       timeout,
		MaxRefresh:    timeout,
		IdentityKey:   IdentityKey,
		TokenLookup:   tokenLookup,
		PayloadFunc:   payloadFunc,
		Authenticator: authenticator,
		LoginResponse: func(ctx context.Context, c *app.RequestContext, code int, token string, expire time.Time) {
			c.Set(outKey, token)
		},
	})
	if err != nil {
		hlog.Fatalf("jwt middleware init failed: %v", err)
	}
	return mw
}

func AccessTokenJwtInit() {
	AccessTokenJwtMiddleware = newMiddleware(time.Hour,
		"header: Authorization, query: token", "Access-Token")
}

func RefreshTokenJwtInit() {
	RefreshTokenJwtMiddleware = newMiddleware(72*time.Hour,
		"header: Refresh-Token", "Refresh-Token")
}

func claimsAvailable(ctx context.Context, c *app.RequestContext, mw *jwt.HertzJWTMiddleware) bool {
	claims, err := mw.GetClaimsFromJWT(ctx, c)
	if err != nil {
		return false
	}
	exp, ok := claims["exp"].(float64)
	if !ok || int64(exp) < time.Now().Unix() {
		return false
	}
	if v, ok := claims[IdentityKey]; ok {
		c.Set(IdentityKey, v)
	}
	return true
}

func IsAccessTokenAvailable(ctx context.Context, c *app.RequestContext) bool {
	return claimsAvailable(ctx, c, AccessTokenJwtMiddleware)
}

func IsRefreshTokenAvailable(ctx context.Context, c *app.RequestContext) bool {
	return claimsAvailable(ctx, c, RefreshTokenJwtMiddleware)
}

// GenerateAccessToken mints a fresh access token from a valid refresh token
// and hands it back in a response header.
func GenerateAccessToken(ctx context.Context, c *app.RequestContext) {
	claims, err := RefreshTokenJwtMiddleware.GetClaimsFromJWT(ctx, c)
	if err != nil {
		return
	}
	userId, ok := claims[IdentityKey].(string)
	if !ok {
		return
	}
	token, _, err := AccessTokenJwtMiddleware.TokenGenerator(userId)
	if err != nil {
		hlog.Warnf("failed to mint access token: %v", err)
		return
	}
	c.Header("New-Access-Token", token)
	c.Set(IdentityKey, userId)
}

// ConvertJWTPayloadToString returns the token's user id claim as a string.
func ConvertJWTPayloadToString(ctx context.Context, c *app.RequestContext) (string, error) {
	if v, ok := c.Get(IdentityKey); ok {
		if s, ok := v.(string); ok {
			return s, nil
		}
	}
	claims, err := AccessTokenJwtMiddleware.GetClaimsFromJWT(ctx, c)
	if err != nil {
		return "", errno.AuthErr
	}
	v, ok := claims[IdentityKey].(string)
	if !ok {
		return "", errno.AuthErr
	}
	return v, nil
}
