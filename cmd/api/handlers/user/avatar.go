package handlers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"VidTube.com/cmd/user/dal/db"
	"VidTube.com/cmd/user/service"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/oss"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/google/uuid"
)

func saveUpload(c *app.RequestContext, field string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", errno.ParamErr.WithMessage(fmt.Sprintf("%s file is missing", field))
	}
	localPath := tempUploadPath(file.Filename)
	if err := c.SaveUploadedFile(file, localPath); err != nil {
		return "", err
	}
	return localPath, nil
}

// tempUploadPath derives a fresh scratch name under the temp dir; the
// client-supplied filename contributes only its extension, never a path.
func tempUploadPath(filename string) string {
	return filepath.Join(os.TempDir(), fmt.Sprintf("upload-%s%s", uuid.New().String(), filepath.Ext(filename)))
}

func CurrentUser(ctx context.Context, c *app.RequestContext) {
	userId, err := currentUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	user, err := service.NewCurrentUserService(ctx, db.User).CurrentUser(ctx, userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, user)
}

func UpdateAvatar(ctx context.Context, c *app.RequestContext) {
	userId, err := currentUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	localPath, err := saveUpload(c, "avatar")
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	defer os.Remove(localPath)

	url, err := service.NewUpdateAvatarService(ctx, db.User, oss.NewClient()).UpdateAvatar(ctx, userId, localPath)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]string{"avatar_url": url})
}

func UpdateCover(ctx context.Context, c *app.RequestContext) {
	userId, err := currentUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	localPath, err := saveUpload(c, "cover")
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	defer os.Remove(localPath)

	url, err := service.NewUpdateAvatarService(ctx, db.User, oss.NewClient()).UpdateCover(ctx, userId, localPath)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]string{"cover_url": url})
}
