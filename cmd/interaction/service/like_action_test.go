package service

import (
	"context"
	"sync"
	"testing"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/lock"
	"gorm.io/gorm"
)

type likeKey struct {
	userId     int64
	targetType string
	targetId   int64
}

type fakeLikeStore struct {
	mu    sync.Mutex
	edges map[likeKey]bool
	ids   map[int64]bool
}

func newFakeLikeStore() *fakeLikeStore {
	return &fakeLikeStore{edges: make(map[likeKey]bool), ids: make(map[int64]bool)}
}

func (f *fakeLikeStore) CreateLike(ctx context.Context, like *model.Like) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	// a reused row id bounces off the primary key before the composite index,
	// and the row is not written
	if f.ids[like.LikeId] {
		return gorm.ErrDuplicatedKey
	}
	key := likeKey{like.UserId, like.TargetType, like.TargetId}
	if f.edges[key] {
		return gorm.ErrDuplicatedKey
	}
	f.ids[like.LikeId] = true
	f.edges[key] = true
	return nil
}

func (f *fakeLikeStore) DeleteLike(ctx context.Context, userId int64, targetType string, targetId int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := likeKey{userId, targetType, targetId}
	if f.edges[key] {
		delete(f.edges, key)
		return 1, nil
	}
	return 0, nil
}

func (f *fakeLikeStore) active(userId int64, targetType string, targetId int64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.edges[likeKey{userId, targetType, targetId}]
}

type fakeIdSet struct {
	ids map[int64]bool
}

func (f *fakeIdSet) ExistsById(ctx context.Context, id int64) (bool, error) {
	return f.ids[id], nil
}

func TestToggleLike(t *testing.T) {
	ctx := context.Background()
	users := &fakeIdSet{ids: map[int64]bool{1: true}}
	videos := &fakeIdSet{ids: map[int64]bool{100: true}}

	t.Run("toggle pair returns to inactive", func(t *testing.T) {
		store := newFakeLikeStore()
		svc := NewLikeActionService(ctx, store, videos, users, lock.NewKeyedMutex())
		req := &LikeActionRequest{UserId: 1, Target: model.VideoTarget(100)}

		liked, err := svc.ToggleLike(ctx, req)
		if err != nil || !liked {
			t.Fatalf("first toggle: liked=%v err=%v", liked, err)
		}
		liked, err = svc.ToggleLike(ctx, req)
		if err != nil || liked {
			t.Fatalf("second toggle: liked=%v err=%v", liked, err)
		}
		if store.active(1, model.TargetVideo, 100) {
			t.Error("edge should be inactive after toggle pair")
		}
	})

	t.Run("self like on own comment allowed", func(t *testing.T) {
		store := newFakeLikeStore()
		svc := NewLikeActionService(ctx, store, videos, users, lock.NewKeyedMutex())
		liked, err := svc.ToggleLike(ctx, &LikeActionRequest{UserId: 1, Target: model.CommentTarget(7)})
		if err != nil || !liked {
			t.Fatalf("comment like: liked=%v err=%v", liked, err)
		}
	})

	t.Run("invalid target rejected", func(t *testing.T) {
		svc := NewLikeActionService(ctx, newFakeLikeStore(), videos, users, lock.NewKeyedMutex())
		_, err := svc.ToggleLike(ctx, &LikeActionRequest{UserId: 1})
		if errno.ConvertErr(err).ErrCode != errno.ParamErrCode {
			t.Errorf("got %v, want param error", err)
		}
	})

	t.Run("missing video target is not found", func(t *testing.T) {
		svc := NewLikeActionService(ctx, newFakeLikeStore(), videos, users, lock.NewKeyedMutex())
		_, err := svc.ToggleLike(ctx, &LikeActionRequest{UserId: 1, Target: model.VideoTarget(999)})
		if errno.ConvertErr(err).ErrCode != errno.NotFoundErrCode {
			t.Errorf("got %v, want not found", err)
		}
	})

	t.Run("unknown user is auth error", func(t *testing.T) {
		svc := NewLikeActionService(ctx, newFakeLikeStore(), videos, users, lock.NewKeyedMutex())
		_, err := svc.ToggleLike(ctx, &LikeActionRequest{UserId: 5, Target: model.VideoTarget(100)})
		if errno.ConvertErr(err).ErrCode != errno.AuthErrCode {
			t.Errorf("got %v, want auth error", err)
		}
	})
}

func TestToggleLikeConcurrent(t *testing.T) {
	ctx := context.Background()
	users := &fakeIdSet{ids: map[int64]bool{1: true}}
	videos := &fakeIdSet{ids: map[int64]bool{100: true}}
	store := newFakeLikeStore()
	svc := NewLikeActionService(ctx, store, videos, users, lock.NewKeyedMutex())
	req := &LikeActionRequest{UserId: 1, Target: model.VideoTarget(100)}

	const toggles = 30
	var wg sync.WaitGroup
	var mu sync.Mutex
	on := 0
	for i := 0; i < toggles; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			liked, err := svc.ToggleLike(ctx, req)
			if err != nil {
				t.Errorf("toggle: %v", err)
				return
			}
			if liked {
				mu.Lock()
				on++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if on != toggles/2 {
		t.Errorf("%d of %d toggles reported liked, want %d", on, toggles, toggles/2)
	}
	if store.active(1, model.TargetVideo, 100) {
		t.Error("edge should be inactive after an even number of toggles")
	}
}

// Every reported like must correspond to a written edge: a colliding row id
// would surface as the same duplicate-key error the composite index produces
// and be misread as "already active" while nothing was stored.
func TestToggleLikeRowIds(t *testing.T) {
	ctx := context.Background()
	users := &fakeIdSet{ids: map[int64]bool{1: true}}
	videos := &fakeIdSet{ids: map[int64]bool{}}
	store := newFakeLikeStore()
	svc := NewLikeActionService(ctx, store, videos, users, lock.NewKeyedMutex())

	const edges = 40
	for i := int64(1); i <= edges; i++ {
		liked, err := svc.ToggleLike(ctx, &LikeActionRequest{UserId: 1, Target: model.CommentTarget(i)})
		if err != nil || !liked {
			t.Fatalf("toggle %d: liked=%v err=%v", i, liked, err)
		}
		if !store.active(1, model.TargetComment, i) {
			t.Fatalf("toggle %d reported liked but stored no edge", i)
		}
	}
	if len(store.ids) != edges {
		t.Errorf("minted %d distinct row ids, want %d", len(store.ids), edges)
	}
}

type fakeLikedLister struct {
	likedBy map[int64][]int64
}

func (f *fakeLikedLister) ListVideoIdsLikedBy(ctx context.Context, userId int64) ([]int64, error) {
	return f.likedBy[userId], nil
}

type fakeVideoReader struct {
	videos map[int64]*model.Video
}

func (f *fakeVideoReader) FindVideosByIds(ctx context.Context, videoIds []int64) ([]*model.Video, error) {
	// deliberately shuffled relative to the requested order, like an IN query
	out := make([]*model.Video, 0, len(videoIds))
	for i := len(videoIds) - 1; i >= 0; i-- {
		if v, ok := f.videos[videoIds[i]]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func TestLikedVideos(t *testing.T) {
	ctx := context.Background()
	lister := &fakeLikedLister{likedBy: map[int64][]int64{1: {30, 10, 20}}}
	// video 20 was deleted; its like edge dangles
	reader := &fakeVideoReader{videos: map[int64]*model.Video{
		10: {VideoId: 10, Title: "ten"},
		30: {VideoId: 30, Title: "thirty"},
	}}
	svc := NewLikedVideosService(ctx, lister, reader)

	videos, err := svc.LikedVideos(ctx, 1)
	if err != nil {
		t.Fatalf("LikedVideos: %v", err)
	}
	if len(videos) != 2 {
		t.Fatalf("got %d videos, want 2", len(videos))
	}
	if videos[0].VideoId != 30 || videos[1].VideoId != 10 {
		t.Errorf("order=[%d %d], want like-edge order [30 10]", videos[0].VideoId, videos[1].VideoId)
	}
}
