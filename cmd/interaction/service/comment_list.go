package service

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/pagination"
	"github.com/pkg/errors"
)

type CommentLister interface {
	ListByVideo(ctx context.Context, videoId int64, offset, limit int) ([]*model.Comment, error)
	CountByVideo(ctx context.Context, videoId int64) (int64, error)
}

type UserReader interface {
	FindUsersByIds(ctx context.Context, userIds []int64) ([]*model.User, error)
}

type CommentListResponse struct {
	Items []*model.CommentWithOwner `json:"items"`
	Total int64                     `json:"total"`
}

type CommentListService struct {
	ctx      context.Context
	comments CommentLister
	users    UserReader
}

func NewCommentListService(ctx context.Context, comments CommentLister, users UserReader) *CommentListService {
	return &CommentListService{ctx: ctx, comments: comments, users: users}
}

// VideoComments pages a video's comments in creation order and joins each
// with its commenter projection. A comment whose author row has been removed
// keeps a nil owner rather than disappearing from the feed.
func (s *CommentListService) VideoComments(ctx context.Context, videoId int64, page pagination.Param) (*CommentListResponse, error) {
	if videoId <= 0 {
		return nil, errno.ParamErr.WithMessage("video id is missing")
	}
	page = page.Normalize()

	comments, err := s.comments.ListByVideo(ctx, videoId, page.Offset(), page.Size())
	if err != nil {
		return nil, errors.WithMessage(errno.MysqlErr, err.Error())
	}
	total, err := s.comments.CountByVideo(ctx, videoId)
	if err != nil {
		return nil, errors.WithMessage(errno.MysqlErr, err.Error())
	}

	ownerIds := make([]int64, 0, len(comments))
	seen := make(map[int64]bool, len(comments))
	for _, c := range comments {
		if !seen[c.UserId] {
			seen[c.UserId] = true
			ownerIds = append(ownerIds, c.UserId)
		}
	}
	owners, err := s.users.FindUsersByIds(ctx, ownerIds)
	if err != nil {
		return nil, errors.WithMessage(errno.MysqlErr, err.Error())
	}
	ownerById := make(map[int64]*model.UserLite, len(owners))
	for _, u := range owners {
		ownerById[u.UserId] = u.Lite()
	}

	items := make([]*model.CommentWithOwner, 0, len(comments))
	for _, c := range comments {
		items = append(items, &model.CommentWithOwner{
			Comment: *c,
			Owner:   ownerById[c.UserId],
		})
	}
	return &CommentListResponse{Items: items, Total: total}, nil
}
