package service

import (
	"context"
	"sort"
	"strings"
	"testing"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/pagination"
)

type fakeFeedStore struct {
	videos []*model.Video
}

// FeedList applies the same pipeline as the DAL: published only, substring
// filter, sort, count before the window, then offset/limit.
func (f *fakeFeedStore) FeedList(ctx context.Context, filter, sortBy, order string, offset, limit int) ([]*model.Video, int64, error) {
	matched := make([]*model.Video, 0)
	for _, v := range f.videos {
		if !v.IsPublished {
			continue
		}
		if filter != "" && !strings.Contains(v.Title, filter) && !strings.Contains(v.Description, filter) {
			continue
		}
		matched = append(matched, v)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		var less bool
		switch sortBy {
		case "visit_count":
			less = matched[i].VisitCount < matched[j].VisitCount
		case "title":
			less = matched[i].Title < matched[j].Title
		default:
			less = matched[i].CreatedAt < matched[j].CreatedAt
		}
		if order == "desc" {
			return !less
		}
		return less
	})
	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

type fakeOwnerReader struct {
	users map[int64]*model.User
}

func (f *fakeOwnerReader) FindUsersByIds(ctx context.Context, userIds []int64) ([]*model.User, error) {
	out := make([]*model.User, 0, len(userIds))
	for _, id := range userIds {
		if u, ok := f.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func feedFixture() (*fakeFeedStore, *fakeOwnerReader) {
	videos := []*model.Video{
		{VideoId: 1, UserId: 7, Title: "go tutorial", VisitCount: 50, IsPublished: true, CreatedAt: "2025-01-01 10:00:00"},
		{VideoId: 2, UserId: 7, Title: "rust tutorial", VisitCount: 90, IsPublished: true, CreatedAt: "2025-01-02 10:00:00"},
		{VideoId: 3, UserId: 8, Title: "go advanced", VisitCount: 10, IsPublished: true, CreatedAt: "2025-01-03 10:00:00"},
		{VideoId: 4, UserId: 8, Title: "go secret draft", VisitCount: 999, IsPublished: false, CreatedAt: "2025-01-04 10:00:00"},
	}
	users := &fakeOwnerReader{users: map[int64]*model.User{
		7: {UserId: 7, UserName: "alice"},
		8: {UserId: 8, UserName: "bob"},
	}}
	return &fakeFeedStore{videos: videos}, users
}

func TestFeedList(t *testing.T) {
	ctx := context.Background()

	t.Run("filter excludes non-matching and unpublished", func(t *testing.T) {
		store, users := feedFixture()
		svc := NewFeedListService(ctx, store, users)
		resp, err := svc.FeedList(ctx, &FeedListRequest{Filter: "go"})
		if err != nil {
			t.Fatalf("FeedList: %v", err)
		}
		if resp.Total != 2 {
			t.Errorf("total=%d, want 2 (draft and rust excluded)", resp.Total)
		}
		for _, item := range resp.Items {
			if !item.IsPublished {
				t.Errorf("unpublished video %d leaked into the feed", item.VideoId)
			}
		}
	})

	t.Run("sort by views descending by default", func(t *testing.T) {
		store, users := feedFixture()
		svc := NewFeedListService(ctx, store, users)
		resp, err := svc.FeedList(ctx, &FeedListRequest{SortBy: "visit_count"})
		if err != nil {
			t.Fatalf("FeedList: %v", err)
		}
		if resp.Items[0].VideoId != 2 {
			t.Errorf("first item is video %d, want 2 (most views)", resp.Items[0].VideoId)
		}
	})

	t.Run("unknown sort field falls back to created_at", func(t *testing.T) {
		store, users := feedFixture()
		svc := NewFeedListService(ctx, store, users)
		resp, err := svc.FeedList(ctx, &FeedListRequest{SortBy: "; drop table videos"})
		if err != nil {
			t.Fatalf("FeedList: %v", err)
		}
		if resp.Items[0].VideoId != 3 {
			t.Errorf("first item is video %d, want 3 (newest)", resp.Items[0].VideoId)
		}
	})

	t.Run("owners joined onto each item", func(t *testing.T) {
		store, users := feedFixture()
		svc := NewFeedListService(ctx, store, users)
		resp, err := svc.FeedList(ctx, &FeedListRequest{})
		if err != nil {
			t.Fatalf("FeedList: %v", err)
		}
		for _, item := range resp.Items {
			if item.Owner == nil {
				t.Errorf("video %d has no owner joined", item.VideoId)
			}
		}
	})

	t.Run("pagination windows after filter and sort", func(t *testing.T) {
		store, users := feedFixture()
		svc := NewFeedListService(ctx, store, users)
		resp, err := svc.FeedList(ctx, &FeedListRequest{
			SortOrder: "asc",
			Page:      pagination.Param{Page: 2, Limit: 2},
		})
		if err != nil {
			t.Fatalf("FeedList: %v", err)
		}
		if resp.Total != 3 {
			t.Errorf("total=%d, want 3", resp.Total)
		}
		if len(resp.Items) != 1 || resp.Items[0].VideoId != 3 {
			t.Errorf("page 2 of limit 2 should hold only the newest video, got %v", resp.Items)
		}
	})
}
