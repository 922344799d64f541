package service

import (
	"context"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/utils"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type CommentStore interface {
	CreateComment(ctx context.Context, comment *model.Comment) error
	UpdateContentOwned(ctx context.Context, commentId, userId int64, content string) (int64, error)
	GetOwned(ctx context.Context, commentId, userId int64) (*model.Comment, error)
	DeleteOwned(ctx context.Context, commentId, userId int64) (int64, error)
}

type AddCommentRequest struct {
	UserId  int64
	VideoId int64
	Content string
}

type UpdateCommentRequest struct {
	UserId    int64
	CommentId int64
	Content   string
}

type CommentService struct {
	ctx      context.Context
	comments CommentStore
	videos   VideoChecker
	users    UserChecker
}

func NewCommentService(ctx context.Context, comments CommentStore, videos VideoChecker, users UserChecker) *CommentService {
	return &CommentService{ctx: ctx, comments: comments, videos: videos, users: users}
}

func (s *CommentService) AddComment(ctx context.Context, req *AddCommentRequest) (*model.Comment, error) {
	if req.VideoId <= 0 {
		return nil, errno.ParamErr.WithMessage("video id is missing")
	}
	if req.Content == "" {
		return nil, errno.ParamErr.WithMessage("empty comment")
	}
	ok, err := s.users.ExistsById(ctx, req.UserId)
	if err != nil {
		return nil, errors.WithMessage(errno.MysqlErr, err.Error())
	}
	if !ok {
		return nil, errno.AuthErr.WithMessage("user does not exist")
	}
	ok, err = s.videos.ExistsById(ctx, req.VideoId)
	if err != nil {
		return nil, errors.WithMessage(errno.MysqlErr, err.Error())
	}
	if !ok {
		return nil, errno.NotFoundErr.WithMessage("video does not exist")
	}

	now := time.Now().Format(constants.DataFormate)
	comment := &model.Comment{
		CommentId: utils.GenerateID(),
		VideoId:   req.VideoId,
		UserId:    req.UserId,
		Content:   req.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.comments.CreateComment(ctx, comment); err != nil {
		return nil, errors.WithMessage(errno.MysqlErr, err.Error())
	}
	return comment, nil
}

// UpdateComment edits owned content through one conditional write. When the
// write matches nothing we look once more at the owned row purely to pick
// the right error: an identical content edit is a Conflict by business rule,
// everything else is the merged not-found-or-forbidden.
func (s *CommentService) UpdateComment(ctx context.Context, req *UpdateCommentRequest) (*model.Comment, error) {
	if req.CommentId <= 0 {
		return nil, errno.ParamErr.WithMessage("comment id is missing")
	}
	if req.Content == "" {
		return nil, errno.ParamErr.WithMessage("empty comment")
	}

	rows, err := s.comments.UpdateContentOwned(ctx, req.CommentId, req.UserId, req.Content)
	if err != nil {
		return nil, errors.WithMessage(errno.MysqlErr, err.Error())
	}
	if rows == 0 {
		if _, err := s.comments.GetOwned(ctx, req.CommentId, req.UserId); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errno.NotFoundOrForbiddenErr
			}
			return nil, errors.WithMessage(errno.MysqlErr, err.Error())
		}
		return nil, errno.ConflictErr.WithMessage("no change in comment")
	}

	comment, err := s.comments.GetOwned(ctx, req.CommentId, req.UserId)
	if err != nil {
		return nil, errors.WithMessage(errno.MysqlErr, err.Error())
	}
	return comment, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, commentId, userId int64) error {
	if commentId <= 0 {
		return errno.ParamErr.WithMessage("comment id is missing")
	}
	rows, err := s.comments.DeleteOwned(ctx, commentId, userId)
	if err != nil {
		return errors.WithMessage(errno.MysqlErr, err.Error())
	}
	if rows == 0 {
		return errno.NotFoundOrForbiddenErr
	}
	return nil
}
