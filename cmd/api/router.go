package main

import (
	interaction "VidTube.com/cmd/api/handlers/interaction"
	playlist "VidTube.com/cmd/api/handlers/playlist"
	relation "VidTube.com/cmd/api/handlers/relation"
	tweet "VidTube.com/cmd/api/handlers/tweet"
	user "VidTube.com/cmd/api/handlers/user"
	video "VidTube.com/cmd/api/handlers/video"
	"VidTube.com/cmd/api/router/authfunc"
	"github.com/cloudwego/hertz/pkg/app/server"
)

func register(r *server.Hertz) {
	api := r.Group("/api/v1")

	users := api.Group("/users")
	users.POST("/register", user.RegisterUser)
	users.POST("/login", user.LoginUser)
	users.GET("/channel/:username", user.ChannelProfile)
	usersAuthed := users.Group("/", authfunc.Auth()...)
	usersAuthed.GET("/me", user.CurrentUser)
	usersAuthed.GET("/stats", user.ChannelStats)
	usersAuthed.GET("/history", user.WatchHistory)
	usersAuthed.PATCH("/avatar", user.UpdateAvatar)
	usersAuthed.PATCH("/cover", user.UpdateCover)

	videos := api.Group("/videos")
	videos.GET("/", video.FeedList)
	videos.GET("/:video_id", video.GetVideo)
	videos.POST("/:video_id/visit", video.Visit)
	videosAuthed := videos.Group("/", authfunc.Auth()...)
	videosAuthed.POST("/", video.PublishVideo)
	videosAuthed.GET("/mine", video.MyVideos)
	videosAuthed.PATCH("/:video_id", video.UpdateVideo)
	videosAuthed.DELETE("/:video_id", video.DeleteVideo)
	videosAuthed.PATCH("/:video_id/publish", video.TogglePublish)

	likes := api.Group("/likes", authfunc.Auth()...)
	likes.POST("/toggle", toggleFlowLimit(), interaction.LikeAction)
	likes.GET("/videos", interaction.LikedVideos)

	comments := api.Group("/comments")
	comments.GET("/video/:video_id", interaction.CommentList)
	commentsAuthed := comments.Group("/", authfunc.Auth()...)
	commentsAuthed.POST("/", interaction.CreateComment)
	commentsAuthed.PATCH("/:comment_id", interaction.UpdateComment)
	commentsAuthed.DELETE("/:comment_id", interaction.DeleteComment)

	subs := api.Group("/subscriptions")
	subs.GET("/channel/:channel_id", relation.SubscriberList)
	subs.GET("/user/:subscriber_id", relation.SubscribedChannelList)
	subsAuthed := subs.Group("/", authfunc.Auth()...)
	subsAuthed.POST("/toggle/:channel_id", toggleFlowLimit(), relation.ToggleSubscription)

	playlists := api.Group("/playlists")
	playlists.GET("/:playlist_id", playlist.GetPlaylist)
	playlists.GET("/user/:user_id", playlist.ListPlaylists)
	playlistsAuthed := playlists.Group("/", authfunc.Auth()...)
	playlistsAuthed.POST("/", playlist.CreatePlaylist)
	playlistsAuthed.PATCH("/:playlist_id", playlist.UpdatePlaylist)
	playlistsAuthed.DELETE("/:playlist_id", playlist.DeletePlaylist)
	playlistsAuthed.POST("/:playlist_id/videos/:video_id", playlist.AddVideoToPlaylist)
	playlistsAuthed.DELETE("/:playlist_id/videos/:video_id", playlist.RemoveVideoFromPlaylist)

	tweets := api.Group("/tweets")
	tweets.GET("/user/:user_id", tweet.UserTweets)
	tweetsAuthed := tweets.Group("/", authfunc.Auth()...)
	tweetsAuthed.POST("/", tweet.CreateTweet)
	tweetsAuthed.PATCH("/:tweet_id", tweet.UpdateTweet)
	tweetsAuthed.DELETE("/:tweet_id", tweet.DeleteTweet)
}
