package service

import (
	"context"
	"sync"
	"testing"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/lock"
	"VidTube.com/pkg/pagination"
	"gorm.io/gorm"
)

type fakeSubStore struct {
	mu    sync.Mutex
	edges map[[2]int64]bool
	ids   map[int64]bool
}

func newFakeSubStore() *fakeSubStore {
	return &fakeSubStore{edges: make(map[[2]int64]bool), ids: make(map[int64]bool)}
}

func (f *fakeSubStore) CreateSubscription(ctx context.Context, sub *model.Subscription) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	// a reused row id bounces off the primary key first, and no row is written
	if f.ids[sub.SubscriptionId] {
		return gorm.ErrDuplicatedKey
	}
	key := [2]int64{sub.SubscriberId, sub.ChannelId}
	if f.edges[key] {
		return gorm.ErrDuplicatedKey
	}
	f.ids[sub.SubscriptionId] = true
	f.edges[key] = true
	return nil
}

func (f *fakeSubStore) DeleteSubscription(ctx context.Context, subscriberId, channelId int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := [2]int64{subscriberId, channelId}
	if f.edges[key] {
		delete(f.edges, key)
		return 1, nil
	}
	return 0, nil
}

func (f *fakeSubStore) Exists(ctx context.Context, subscriberId, channelId int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.edges[[2]int64{subscriberId, channelId}], nil
}

type fakeUserChecker struct {
	ids map[int64]bool
}

func (f *fakeUserChecker) ExistsById(ctx context.Context, userId int64) (bool, error) {
	return f.ids[userId], nil
}

func TestToggleSubscription(t *testing.T) {
	ctx := context.Background()
	users := &fakeUserChecker{ids: map[int64]bool{1: true, 2: true}}

	t.Run("toggle pair flips on then off", func(t *testing.T) {
		store := newFakeSubStore()
		svc := NewRelationService(ctx, store, users, lock.NewKeyedMutex())
		req := &ToggleSubscriptionRequest{SubscriberId: 1, ChannelId: 2}

		subscribed, err := svc.ToggleSubscription(ctx, req)
		if err != nil {
			t.Fatalf("first toggle: %v", err)
		}
		if !subscribed {
			t.Error("first toggle should report subscribed")
		}
		subscribed, err = svc.ToggleSubscription(ctx, req)
		if err != nil {
			t.Fatalf("second toggle: %v", err)
		}
		if subscribed {
			t.Error("second toggle should report unsubscribed")
		}
		if ok, _ := store.Exists(ctx, 1, 2); ok {
			t.Error("edge should be gone after toggle pair")
		}
	})

	t.Run("self subscription rejected", func(t *testing.T) {
		svc := NewRelationService(ctx, newFakeSubStore(), users, lock.NewKeyedMutex())
		_, err := svc.ToggleSubscription(ctx, &ToggleSubscriptionRequest{SubscriberId: 1, ChannelId: 1})
		if errno.ConvertErr(err).ErrCode != errno.ParamErrCode {
			t.Errorf("got %v, want param error", err)
		}
	})

	t.Run("missing channel is not found", func(t *testing.T) {
		svc := NewRelationService(ctx, newFakeSubStore(), users, lock.NewKeyedMutex())
		_, err := svc.ToggleSubscription(ctx, &ToggleSubscriptionRequest{SubscriberId: 1, ChannelId: 99})
		if errno.ConvertErr(err).ErrCode != errno.NotFoundErrCode {
			t.Errorf("got %v, want not found", err)
		}
	})

	t.Run("missing subscriber is auth error", func(t *testing.T) {
		svc := NewRelationService(ctx, newFakeSubStore(), users, lock.NewKeyedMutex())
		_, err := svc.ToggleSubscription(ctx, &ToggleSubscriptionRequest{SubscriberId: 42, ChannelId: 2})
		if errno.ConvertErr(err).ErrCode != errno.AuthErrCode {
			t.Errorf("got %v, want auth error", err)
		}
	})
}

func TestToggleSubscriptionConcurrent(t *testing.T) {
	ctx := context.Background()
	users := &fakeUserChecker{ids: map[int64]bool{1: true, 2: true}}
	store := newFakeSubStore()
	svc := NewRelationService(ctx, store, users, lock.NewKeyedMutex())
	req := &ToggleSubscriptionRequest{SubscriberId: 1, ChannelId: 2}

	const toggles = 20
	results := make([]bool, toggles)
	var wg sync.WaitGroup
	for i := 0; i < toggles; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			subscribed, err := svc.ToggleSubscription(ctx, req)
			if err != nil {
				t.Errorf("toggle %d: %v", i, err)
				return
			}
			results[i] = subscribed
		}(i)
	}
	wg.Wait()

	// toggles strictly alternate under the per-key lock, so an even count
	// lands back on "not subscribed" with equal flips each way
	on := 0
	for _, r := range results {
		if r {
			on++
		}
	}
	if on != toggles/2 {
		t.Errorf("%d of %d toggles reported subscribed, want %d", on, toggles, toggles/2)
	}
	if ok, _ := store.Exists(ctx, 1, 2); ok {
		t.Error("edge should be absent after an even number of toggles")
	}
}

// A reported subscription must always mean a written edge: a colliding row
// id raises the same duplicate-key error as the composite index and would be
// misread as "already subscribed" while nothing was stored.
func TestToggleSubscriptionRowIds(t *testing.T) {
	ctx := context.Background()
	ids := map[int64]bool{1: true}
	for ch := int64(100); ch < 130; ch++ {
		ids[ch] = true
	}
	store := newFakeSubStore()
	svc := NewRelationService(ctx, store, &fakeUserChecker{ids: ids}, lock.NewKeyedMutex())

	for ch := int64(100); ch < 130; ch++ {
		subscribed, err := svc.ToggleSubscription(ctx, &ToggleSubscriptionRequest{SubscriberId: 1, ChannelId: ch})
		if err != nil || !subscribed {
			t.Fatalf("toggle channel %d: subscribed=%v err=%v", ch, subscribed, err)
		}
		if ok, _ := store.Exists(ctx, 1, ch); !ok {
			t.Fatalf("toggle channel %d reported subscribed but stored no edge", ch)
		}
	}
	if len(store.ids) != 30 {
		t.Errorf("minted %d distinct row ids, want 30", len(store.ids))
	}
}

type fakeSubLister struct {
	subscribers map[int64][]int64
	subscribed  map[int64][]int64
}

func (f *fakeSubLister) ListSubscribers(ctx context.Context, channelId int64, offset, limit int) ([]int64, error) {
	return pageIds(f.subscribers[channelId], offset, limit), nil
}

func (f *fakeSubLister) ListSubscribed(ctx context.Context, subscriberId int64, offset, limit int) ([]int64, error) {
	return pageIds(f.subscribed[subscriberId], offset, limit), nil
}

func (f *fakeSubLister) CountSubscribers(ctx context.Context, channelId int64) (int64, error) {
	return int64(len(f.subscribers[channelId])), nil
}

func (f *fakeSubLister) CountSubscribed(ctx context.Context, subscriberId int64) (int64, error) {
	return int64(len(f.subscribed[subscriberId])), nil
}

func pageIds(ids []int64, offset, limit int) []int64 {
	if offset >= len(ids) {
		return nil
	}
	end := offset + limit
	if end > len(ids) {
		end = len(ids)
	}
	return ids[offset:end]
}

type fakeUserReader struct {
	users map[int64]*model.User
}

func (f *fakeUserReader) FindUsersByIds(ctx context.Context, userIds []int64) ([]*model.User, error) {
	out := make([]*model.User, 0, len(userIds))
	for _, id := range userIds {
		if u, ok := f.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func TestSubscriberList(t *testing.T) {
	ctx := context.Background()
	lister := &fakeSubLister{
		subscribers: map[int64][]int64{10: {1, 2, 3}},
		subscribed:  map[int64][]int64{1: {10, 11}},
	}
	// user 3 has been deleted but the edge remains
	reader := &fakeUserReader{users: map[int64]*model.User{
		1:  {UserId: 1, UserName: "alice"},
		2:  {UserId: 2, UserName: "bob"},
		10: {UserId: 10, UserName: "channel_ten"},
		11: {UserId: 11, UserName: "channel_eleven"},
	}}
	svc := NewSubscriberListService(ctx, lister, reader)

	t.Run("dangling subscriber dropped from names, kept in count", func(t *testing.T) {
		resp, err := svc.SubscriberList(ctx, 10, pagination.Param{})
		if err != nil {
			t.Fatalf("SubscriberList: %v", err)
		}
		if resp.Count != 3 {
			t.Errorf("count=%d, want 3", resp.Count)
		}
		if len(resp.Usernames) != 2 || resp.Usernames[0] != "alice" || resp.Usernames[1] != "bob" {
			t.Errorf("usernames=%v, want [alice bob]", resp.Usernames)
		}
	})

	t.Run("subscribed channels resolve in edge order", func(t *testing.T) {
		resp, err := svc.SubscribedChannelList(ctx, 1, pagination.Param{})
		if err != nil {
			t.Fatalf("SubscribedChannelList: %v", err)
		}
		if len(resp.Usernames) != 2 || resp.Usernames[0] != "channel_ten" {
			t.Errorf("usernames=%v, want channel_ten first", resp.Usernames)
		}
	})

	t.Run("invalid channel id rejected", func(t *testing.T) {
		_, err := svc.SubscriberList(ctx, 0, pagination.Param{})
		if errno.ConvertErr(err).ErrCode != errno.ParamErrCode {
			t.Errorf("got %v, want param error", err)
		}
	})
}
