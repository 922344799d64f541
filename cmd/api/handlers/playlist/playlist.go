package handlers

import (
	"context"

	"VidTube.com/cmd/playlist/dal/db"
	"VidTube.com/cmd/playlist/service"
	videodb "VidTube.com/cmd/video/dal/db"
	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

func newService(ctx context.Context) *service.PlaylistService {
	return service.NewPlaylistService(ctx, db.Playlist, videodb.Video, videodb.Video)
}

func CreatePlaylist(ctx context.Context, c *app.RequestContext) {
	var createVar CreatePlaylistParam
	if err := c.Bind(&createVar); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId, err := currentUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	playlist, err := newService(ctx).CreatePlaylist(ctx, &service.CreatePlaylistRequest{
		UserId:      userId,
		Name:        createVar.Name,
		Description: createVar.Description,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, playlist)
}

func GetPlaylist(ctx context.Context, c *app.RequestContext) {
	var param PlaylistIdParam
	if err := c.Bind(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	detail, err := newService(ctx).GetPlaylist(ctx, param.PlaylistId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, detail)
}

func ListPlaylists(ctx context.Context, c *app.RequestContext) {
	var param UserPlaylistsParam
	if err := c.Bind(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	playlists, err := newService(ctx).ListPlaylists(ctx, param.UserId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, playlists)
}

func AddVideoToPlaylist(ctx context.Context, c *app.RequestContext) {
	var param PlaylistVideoParam
	if err := c.Bind(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId, err := currentUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if err := newService(ctx).AddVideo(ctx, param.PlaylistId, param.VideoId, userId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func RemoveVideoFromPlaylist(ctx context.Context, c *app.RequestContext) {
	var param PlaylistVideoParam
	if err := c.Bind(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId, err := currentUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if err := newService(ctx).RemoveVideo(ctx, param.PlaylistId, param.VideoId, userId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func UpdatePlaylist(ctx context.Context, c *app.RequestContext) {
	var updateVar UpdatePlaylistParam
	if err := c.Bind(&updateVar); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId, err := currentUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	playlist, err := newService(ctx).UpdatePlaylist(ctx, updateVar.PlaylistId, userId, updateVar.Name, updateVar.Description)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, playlist)
}

func DeletePlaylist(ctx context.Context, c *app.RequestContext) {
	var param PlaylistIdParam
	if err := c.Bind(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId, err := currentUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if err := newService(ctx).DeletePlaylist(ctx, param.PlaylistId, userId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}
