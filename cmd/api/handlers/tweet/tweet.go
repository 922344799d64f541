package handlers

import (
	"context"

	"VidTube.com/cmd/tweet/dal/db"
	"VidTube.com/cmd/tweet/service"
	userdb "VidTube.com/cmd/user/dal/db"
	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

func CreateTweet(ctx context.Context, c *app.RequestContext) {
	var tweetVar CreateTweetParam
	if err := c.Bind(&tweetVar); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId, err := currentUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	tweet, err := service.NewTweetService(ctx, db.Tweet, userdb.User).CreateTweet(ctx, userId, tweetVar.Content)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, tweet)
}

func UpdateTweet(ctx context.Context, c *app.RequestContext) {
	var tweetVar UpdateTweetParam
	if err := c.Bind(&tweetVar); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId, err := currentUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	tweet, err := service.NewTweetService(ctx, db.Tweet, userdb.User).
		UpdateTweet(ctx, tweetVar.TweetId, userId, tweetVar.Content)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, tweet)
}

func DeleteTweet(ctx context.Context, c *app.RequestContext) {
	var param TweetIdParam
	if err := c.Bind(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId, err := currentUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if err := service.NewTweetService(ctx, db.Tweet, userdb.User).DeleteTweet(ctx, param.TweetId, userId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func UserTweets(ctx context.Context, c *app.RequestContext) {
	var param UserTweetsParam
	if err := c.Bind(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	tweets, err := service.NewTweetService(ctx, db.Tweet, userdb.User).UserTweets(ctx, param.UserId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, tweets)
}
