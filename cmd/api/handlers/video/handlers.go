package handlers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	jwt "VidTube.com/pkg"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/google/uuid"
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

// tempUploadPath derives a fresh scratch name under the temp dir. The
// client-supplied filename contributes only its extension, never a path, so
// concurrent uploads cannot clobber each other and "../" cannot escape.
func tempUploadPath(filename string) string {
	return filepath.Join(os.TempDir(), fmt.Sprintf("upload-%s%s", uuid.New().String(), filepath.Ext(filename)))
}

type PublishParam struct {
	Title       string `form:"title"`
	Description string `form:"description"`
}

type FeedListParam struct {
	Filter    string `query:"query" form:"query"`
	SortBy    string `query:"sort_by" form:"sort_by"`
	SortOrder string `query:"sort_order" form:"sort_order"`
	UserId    int64  `query:"user_id" form:"user_id"`
	PageNum   int64  `query:"page_num" form:"page_num"`
	PageSize  int64  `query:"page_size" form:"page_size"`
}

type VideoIdParam struct {
	VideoId int64 `path:"video_id" query:"video_id" form:"video_id"`
}

type UpdateVideoParam struct {
	VideoId     int64  `path:"video_id" form:"video_id"`
	Title       string `form:"title"`
	Description string `form:"description"`
}
