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

type TweetStore interface {
	CreateTweet(ctx context.Context, tweet *model.Tweet) error
	UpdateContentOwned(ctx context.Context, tweetId, userId int64, content string) (int64, error)
	GetOwned(ctx context.Context, tweetId, userId int64) (*model.Tweet, error)
	DeleteOwned(ctx context.Context, tweetId, userId int64) (int64, error)
	ListByUser(ctx context.Context, userId int64) ([]*model.Tweet, error)
}

type UserChecker interface {
	ExistsById(ctx context.Context, userId int64) (bool, error)
}

type TweetService struct {
	ctx    context.Context
	tweets TweetStore
	users  UserChecker
}

func NewTweetService(ctx context.Context, tweets TweetStore, users UserChecker) *TweetService {
	return &TweetService{ctx: ctx, tweets: tweets, users: users}
}

func (s *TweetService) CreateTweet(ctx context.Context, userId int64, content string) (*model.Tweet, error) {
	if content == "" {
		return nil, errno.ParamErr.WithMessage("content is empty")
	}
	ok, err := s.users.ExistsById(ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(errno.MysqlErr, err.Error())
	}
	if !ok {
		return nil, errno.AuthErr.WithMessage("user does not exist")
	}

	now := time.Now().Format(constants.DataFormate)
	tweet := &model.Tweet{
		TweetId:   utils.GenerateID(),
		UserId:    userId,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.tweets.CreateTweet(ctx, tweet); err != nil {
		return nil, errors.WithMessage(errno.MysqlErr, err.Error())
	}
	return tweet, nil
}

// UpdateTweet runs the ownership-scoped conditional write. Unlike comments,
// re-submitting identical content is not a business error here: it reads as
// success and returns the unchanged row.
func (s *TweetService) UpdateTweet(ctx context.Context, tweetId, userId int64, content string) (*model.Tweet, error) {
	if tweetId <= 0 {
		return nil, errno.ParamErr.WithMessage("tweet id is missing")
	}
	if content == "" {
		return nil, errno.ParamErr.WithMessage("content is empty")
	}
	rows, err := s.tweets.UpdateContentOwned(ctx, tweetId, userId, content)
	if err != nil {
		return nil, errors.WithMessage(errno.MysqlErr, err.Error())
	}
	if rows == 0 {
		tweet, err := s.tweets.GetOwned(ctx, tweetId, userId)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errno.NotFoundOrForbiddenErr
			}
			return nil, errors.WithMessage(errno.MysqlErr, err.Error())
		}
		return tweet, nil
	}
	return s.tweets.GetOwned(ctx, tweetId, userId)
}

func (s *TweetService) DeleteTweet(ctx context.Context, tweetId, userId int64) error {
	if tweetId <= 0 {
		return errno.ParamErr.WithMessage("tweet id is missing")
	}
	rows, err := s.tweets.DeleteOwned(ctx, tweetId, userId)
	if err != nil {
		return errors.WithMessage(errno.MysqlErr, err.Error())
	}
	if rows == 0 {
		return errno.NotFoundOrForbiddenErr
	}
	return nil
}

func (s *TweetService) UserTweets(ctx context.Context, userId int64) ([]*model.Tweet, error) {
	if userId <= 0 {
		return nil, errno.ParamErr.WithMessage("user id is missing")
	}
	tweets, err := s.tweets.ListByUser(ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(errno.MysqlErr, err.Error())
	}
	return tweets, nil
}
