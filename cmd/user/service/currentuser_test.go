package service

import (
	"context"
	"testing"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/errno"
	"gorm.io/gorm"
)

type fakeUserGetter struct {
	users map[int64]*model.User
}

func (f *fakeUserGetter) GetUserById(ctx context.Context, userId int64) (*model.User, error) {
	u, ok := f.users[userId]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func TestCurrentUser(t *testing.T) {
	ctx := context.Background()
	svc := NewCurrentUserService(ctx, &fakeUserGetter{users: map[int64]*model.User{
		1: {UserId: 1, UserName: "alice"},
	}})

	t.Run("resolves own profile", func(t *testing.T) {
		user, err := svc.CurrentUser(ctx, 1)
		if err != nil {
			t.Fatalf("CurrentUser: %v", err)
		}
		if user.UserName != "alice" {
			t.Errorf("username=%q, want alice", user.UserName)
		}
	})

	t.Run("stale token subject is unauthenticated", func(t *testing.T) {
		_, err := svc.CurrentUser(ctx, 2)
		if errno.ConvertErr(err).ErrCode != errno.AuthErrCode {
			t.Errorf("got %v, want auth error", err)
		}
	})
}
