package service

import (
	"context"
	"strings"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/pagination"
	"github.com/pkg/errors"
)

type FeedStore interface {
	FeedList(ctx context.Context, filter, sortBy, order string, offset, limit int) ([]*model.Video, int64, error)
}

type UserReader interface {
	FindUsersByIds(ctx context.Context, userIds []int64) ([]*model.User, error)
}

// Whitelisted sort fields; anything else falls back to created_at so caller
// input never reaches the ORDER BY clause raw.
var feedSortFields = map[string]string{
	"created_at":  "created_at",
	"visit_count": "visit_count",
	"duration":    "duration",
	"title":       "title",
}

type FeedListRequest struct {
	Filter    string
	SortBy    string
	SortOrder string
	// UserId scopes nothing today; it is accepted for forward compatibility
	// with a personalized feed and deliberately not required.
	UserId int64
	Page   pagination.Param
}

type FeedListResponse struct {
	Items []*model.VideoWithOwner `json:"items"`
	Total int64                   `json:"total"`
}

type FeedListService struct {
	ctx    context.Context
	videos FeedStore
	users  UserReader
}

func NewFeedListService(ctx context.Context, videos FeedStore, users UserReader) *FeedListService {
	return &FeedListService{ctx: ctx, videos: videos, users: users}
}

// FeedList filters published videos by substring, joins each with its owner
// projection, sorts and pages. Filtering and sorting happen before the
// offset is applied.
func (s *FeedListService) FeedList(ctx context.Context, req *FeedListRequest) (*FeedListResponse, error) {
	sortBy, ok := feedSortFields[req.SortBy]
	if !ok {
		sortBy = "created_at"
	}
	order := "desc"
	if strings.EqualFold(req.SortOrder, "asc") {
		order = "asc"
	}
	page := req.Page.Normalize()

	videos, total, err := s.videos.FeedList(ctx, req.Filter, sortBy, order, page.Offset(), page.Size())
	if err != nil {
		return nil, errors.WithMessage(errno.MysqlErr, err.Error())
	}

	ownerIds := make([]int64, 0, len(videos))
	seen := make(map[int64]bool, len(videos))
	for _, v := range videos {
		if !seen[v.UserId] {
			seen[v.UserId] = true
			ownerIds = append(ownerIds, v.UserId)
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

	items := make([]*model.VideoWithOwner, 0, len(videos))
	for _, v := range videos {
		items = append(items, &model.VideoWithOwner{Video: *v, Owner: ownerById[v.UserId]})
	}
	return &FeedListResponse{Items: items, Total: total}, nil
}
