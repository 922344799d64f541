package service

import (
	"context"
	"testing"

	"VidTube.com/cmd/model"
)

type fakeHistoryStore struct {
	records []*model.WatchRecord
	users   map[int64]*model.User
}

func (f *fakeHistoryStore) ListWatchRecords(ctx context.Context, userId int64) ([]*model.WatchRecord, error) {
	out := make([]*model.WatchRecord, 0, len(f.records))
	for _, r := range f.records {
		if r.UserId == userId {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeHistoryStore) FindUsersByIds(ctx context.Context, userIds []int64) ([]*model.User, error) {
	out := make([]*model.User, 0, len(userIds))
	for _, id := range userIds {
		if u, ok := f.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

type fakeHistoryVideos struct {
	videos map[int64]*model.Video
}

func (f *fakeHistoryVideos) FindVideosByIds(ctx context.Context, videoIds []int64) ([]*model.Video, error) {
	// reversed on purpose: an IN query guarantees no order
	out := make([]*model.Video, 0, len(videoIds))
	for i := len(videoIds) - 1; i >= 0; i-- {
		if v, ok := f.videos[videoIds[i]]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func TestWatchHistory(t *testing.T) {
	ctx := context.Background()
	store := &fakeHistoryStore{
		records: []*model.WatchRecord{
			{WatchRecordId: 1, UserId: 1, VideoId: 3},
			{WatchRecordId: 2, UserId: 1, VideoId: 1},
			{WatchRecordId: 3, UserId: 1, VideoId: 2},
		},
		users: map[int64]*model.User{7: {UserId: 7, UserName: "creator"}},
	}
	videos := &fakeHistoryVideos{videos: map[int64]*model.Video{
		1: {VideoId: 1, UserId: 7, Title: "one"},
		2: {VideoId: 2, UserId: 7, Title: "two"},
		3: {VideoId: 3, UserId: 7, Title: "three"},
	}}
	svc := NewWatchHistoryService(ctx, store, videos)

	t.Run("exact watch order preserved", func(t *testing.T) {
		history, err := svc.WatchHistory(ctx, 1)
		if err != nil {
			t.Fatalf("WatchHistory: %v", err)
		}
		if len(history) != 3 {
			t.Fatalf("got %d entries, want 3", len(history))
		}
		wantOrder := []int64{3, 1, 2}
		for i, want := range wantOrder {
			if history[i].VideoId != want {
				t.Errorf("entry %d is video %d, want %d", i, history[i].VideoId, want)
			}
		}
		if history[0].Owner == nil || history[0].Owner.UserName != "creator" {
			t.Errorf("owner not joined: %+v", history[0].Owner)
		}
	})

	t.Run("deleted video drops out without reordering", func(t *testing.T) {
		delete(videos.videos, 1)
		defer func() {
			videos.videos[1] = &model.Video{VideoId: 1, UserId: 7, Title: "one"}
		}()

		history, err := svc.WatchHistory(ctx, 1)
		if err != nil {
			t.Fatalf("WatchHistory: %v", err)
		}
		if len(history) != 2 || history[0].VideoId != 3 || history[1].VideoId != 2 {
			t.Errorf("got %v, want [3 2]", historyIds(history))
		}
	})
}

func historyIds(items []*model.VideoWithOwner) []int64 {
	ids := make([]int64, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.VideoId)
	}
	return ids
}
