package service

import (
	"context"
	"strings"
	"testing"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/errno"
	"gorm.io/gorm"
)

type fakeUserStore struct {
	users map[int64]*model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int64]*model.User)}
}

func (f *fakeUserStore) CreateUser(ctx context.Context, user *model.User) error {
	for _, u := range f.users {
		if strings.EqualFold(u.UserName, user.UserName) || strings.EqualFold(u.Email, user.Email) {
			return gorm.ErrDuplicatedKey
		}
	}
	f.users[user.UserId] = user
	return nil
}

func (f *fakeUserStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserStore) GetUserByName(ctx context.Context, username string) (*model.User, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.UserName, username) {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("register then login", func(t *testing.T) {
		store := newFakeUserStore()
		user, err := NewCreateUserService(ctx, store).CreateUser(ctx, &CreateUserRequest{
			UserName: "alice", FullName: "Alice A", Email: "alice@example.com", Password: "secret123",
		})
		if err != nil {
			t.Fatalf("CreateUser: %v", err)
		}
		if user.Password == "secret123" {
			t.Error("password stored in clear")
		}

		logged, err := NewLoginUserService(ctx, store).LoginUser(ctx, &LoginUserRequest{
			Email: "alice@example.com", Password: "secret123",
		})
		if err != nil {
			t.Fatalf("LoginUser: %v", err)
		}
		if logged.UserId != user.UserId {
			t.Errorf("logged in as %d, want %d", logged.UserId, user.UserId)
		}
	})

	t.Run("duplicate username is a conflict", func(t *testing.T) {
		store := newFakeUserStore()
		svc := NewCreateUserService(ctx, store)
		if _, err := svc.CreateUser(ctx, &CreateUserRequest{
			UserName: "bob", Email: "bob@example.com", Password: "pw123456",
		}); err != nil {
			t.Fatalf("first create: %v", err)
		}
		_, err := svc.CreateUser(ctx, &CreateUserRequest{
			UserName: "BOB", Email: "other@example.com", Password: "pw123456",
		})
		if errno.ConvertErr(err).ErrCode != errno.ConflictErrCode {
			t.Errorf("got %v, want conflict", err)
		}
	})

	t.Run("wrong password is auth error", func(t *testing.T) {
		store := newFakeUserStore()
		_, _ = NewCreateUserService(ctx, store).CreateUser(ctx, &CreateUserRequest{
			UserName: "carol", Email: "carol@example.com", Password: "rightpass",
		})
		_, err := NewLoginUserService(ctx, store).LoginUser(ctx, &LoginUserRequest{
			Email: "carol@example.com", Password: "wrongpass",
		})
		if errno.ConvertErr(err).ErrCode != errno.AuthErrCode {
			t.Errorf("got %v, want auth error", err)
		}
	})

	t.Run("unknown email is auth error", func(t *testing.T) {
		_, err := NewLoginUserService(ctx, newFakeUserStore()).LoginUser(ctx, &LoginUserRequest{
			Email: "ghost@example.com", Password: "whatever",
		})
		if errno.ConvertErr(err).ErrCode != errno.AuthErrCode {
			t.Errorf("got %v, want auth error", err)
		}
	})
}
