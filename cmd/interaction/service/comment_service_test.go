package service

import (
	"context"
	"fmt"
	"testing"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/pagination"
	"gorm.io/gorm"
)

type fakeCommentStore struct {
	comments map[int64]*model.Comment
}

func newFakeCommentStore() *fakeCommentStore {
	return &fakeCommentStore{comments: make(map[int64]*model.Comment)}
}

func (f *fakeCommentStore) CreateComment(ctx context.Context, comment *model.Comment) error {
	f.comments[comment.CommentId] = comment
	return nil
}

// UpdateContentOwned mirrors the conditional UPDATE: identical content
// matches zero rows just like mysql's changed-rows accounting.
func (f *fakeCommentStore) UpdateContentOwned(ctx context.Context, commentId, userId int64, content string) (int64, error) {
	c, ok := f.comments[commentId]
	if !ok || c.UserId != userId || c.Content == content {
		return 0, nil
	}
	c.Content = content
	return 1, nil
}

func (f *fakeCommentStore) GetOwned(ctx context.Context, commentId, userId int64) (*model.Comment, error) {
	c, ok := f.comments[commentId]
	if !ok || c.UserId != userId {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (f *fakeCommentStore) DeleteOwned(ctx context.Context, commentId, userId int64) (int64, error) {
	c, ok := f.comments[commentId]
	if !ok || c.UserId != userId {
		return 0, nil
	}
	delete(f.comments, commentId)
	return 1, nil
}

func TestCommentService(t *testing.T) {
	ctx := context.Background()
	users := &fakeIdSet{ids: map[int64]bool{1: true, 2: true}}
	videos := &fakeIdSet{ids: map[int64]bool{100: true}}

	t.Run("add then update", func(t *testing.T) {
		store := newFakeCommentStore()
		svc := NewCommentService(ctx, store, videos, users)

		comment, err := svc.AddComment(ctx, &AddCommentRequest{UserId: 1, VideoId: 100, Content: "first"})
		if err != nil {
			t.Fatalf("AddComment: %v", err)
		}
		updated, err := svc.UpdateComment(ctx, &UpdateCommentRequest{UserId: 1, CommentId: comment.CommentId, Content: "edited"})
		if err != nil {
			t.Fatalf("UpdateComment: %v", err)
		}
		if updated.Content != "edited" {
			t.Errorf("content=%q, want edited", updated.Content)
		}
	})

	t.Run("identical edit is a conflict", func(t *testing.T) {
		store := newFakeCommentStore()
		svc := NewCommentService(ctx, store, videos, users)
		comment, _ := svc.AddComment(ctx, &AddCommentRequest{UserId: 1, VideoId: 100, Content: "same"})

		_, err := svc.UpdateComment(ctx, &UpdateCommentRequest{UserId: 1, CommentId: comment.CommentId, Content: "same"})
		if errno.ConvertErr(err).ErrCode != errno.ConflictErrCode {
			t.Errorf("got %v, want conflict", err)
		}
	})

	t.Run("foreign comment update merges into not-found-or-forbidden", func(t *testing.T) {
		store := newFakeCommentStore()
		svc := NewCommentService(ctx, store, videos, users)
		comment, _ := svc.AddComment(ctx, &AddCommentRequest{UserId: 1, VideoId: 100, Content: "mine"})

		_, err := svc.UpdateComment(ctx, &UpdateCommentRequest{UserId: 2, CommentId: comment.CommentId, Content: "theirs"})
		if errno.ConvertErr(err).ErrCode != errno.NotFoundOrForbiddenErrCode {
			t.Errorf("update by non-owner: got %v, want merged error", err)
		}

		err = svc.DeleteComment(ctx, comment.CommentId, 2)
		if errno.ConvertErr(err).ErrCode != errno.NotFoundOrForbiddenErrCode {
			t.Errorf("delete by non-owner: got %v, want merged error", err)
		}
	})

	t.Run("missing comment merges into not-found-or-forbidden", func(t *testing.T) {
		svc := NewCommentService(ctx, newFakeCommentStore(), videos, users)
		_, err := svc.UpdateComment(ctx, &UpdateCommentRequest{UserId: 1, CommentId: 12345, Content: "x"})
		if errno.ConvertErr(err).ErrCode != errno.NotFoundOrForbiddenErrCode {
			t.Errorf("got %v, want merged error", err)
		}
	})

	t.Run("comment on missing video is not found", func(t *testing.T) {
		svc := NewCommentService(ctx, newFakeCommentStore(), videos, users)
		_, err := svc.AddComment(ctx, &AddCommentRequest{UserId: 1, VideoId: 404, Content: "x"})
		if errno.ConvertErr(err).ErrCode != errno.NotFoundErrCode {
			t.Errorf("got %v, want not found", err)
		}
	})
}

type fakeCommentLister struct {
	byVideo map[int64][]*model.Comment
}

func (f *fakeCommentLister) ListByVideo(ctx context.Context, videoId int64, offset, limit int) ([]*model.Comment, error) {
	comments := f.byVideo[videoId]
	if offset >= len(comments) {
		return nil, nil
	}
	end := offset + limit
	if end > len(comments) {
		end = len(comments)
	}
	return comments[offset:end], nil
}

func (f *fakeCommentLister) CountByVideo(ctx context.Context, videoId int64) (int64, error) {
	return int64(len(f.byVideo[videoId])), nil
}

func TestVideoComments(t *testing.T) {
	ctx := context.Background()
	comments := make([]*model.Comment, 0, 12)
	for i := 0; i < 12; i++ {
		authorId := int64(1)
		if i == 6 {
			authorId = 99 // deleted author
		}
		comments = append(comments, &model.Comment{
			CommentId: int64(i + 1),
			VideoId:   100,
			UserId:    authorId,
			Content:   fmt.Sprintf("comment %d", i+1),
		})
	}
	lister := &fakeCommentLister{byVideo: map[int64][]*model.Comment{100: comments}}
	reader := &fakeUserReaderI{users: map[int64]*model.User{1: {UserId: 1, UserName: "alice"}}}
	svc := NewCommentListService(ctx, lister, reader)

	t.Run("page two of limit five covers items six through ten", func(t *testing.T) {
		resp, err := svc.VideoComments(ctx, 100, pagination.Param{Page: 2, Limit: 5})
		if err != nil {
			t.Fatalf("VideoComments: %v", err)
		}
		if resp.Total != 12 {
			t.Errorf("total=%d, want 12", resp.Total)
		}
		if len(resp.Items) != 5 {
			t.Fatalf("got %d items, want 5", len(resp.Items))
		}
		if resp.Items[0].Comment.CommentId != 6 || resp.Items[4].Comment.CommentId != 10 {
			t.Errorf("window covers %d..%d, want 6..10",
				resp.Items[0].Comment.CommentId, resp.Items[4].Comment.CommentId)
		}
	})

	t.Run("deleted author leaves a nil owner", func(t *testing.T) {
		resp, err := svc.VideoComments(ctx, 100, pagination.Param{Page: 2, Limit: 5})
		if err != nil {
			t.Fatalf("VideoComments: %v", err)
		}
		// comment 7 (index 1 of this page) belongs to the deleted user
		if resp.Items[1].Owner != nil {
			t.Errorf("owner=%v, want nil for deleted author", resp.Items[1].Owner)
		}
		if resp.Items[0].Owner == nil || resp.Items[0].Owner.UserName != "alice" {
			t.Errorf("live author should resolve, got %v", resp.Items[0].Owner)
		}
	})
}

type fakeUserReaderI struct {
	users map[int64]*model.User
}

func (f *fakeUserReaderI) FindUsersByIds(ctx context.Context, userIds []int64) ([]*model.User, error) {
	out := make([]*model.User, 0, len(userIds))
	for _, id := range userIds {
		if u, ok := f.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}
