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

type PlaylistStore interface {
	CreatePlaylist(ctx context.Context, playlist *model.Playlist) error
	GetById(ctx context.Context, playlistId int64) (*model.Playlist, error)
	GetOwned(ctx context.Context, playlistId, userId int64) (*model.Playlist, error)
	ListByUser(ctx context.Context, userId int64) ([]*model.Playlist, error)
	UpdateOwned(ctx context.Context, playlistId, userId int64, updates map[string]interface{}) (int64, error)
	DeleteOwned(ctx context.Context, playlistId, userId int64) (int64, error)
	AddVideoOwned(ctx context.Context, rowId, playlistId, videoId, userId int64) (int64, error)
	RemoveVideoOwned(ctx context.Context, playlistId, videoId, userId int64) (int64, error)
	ListVideoIds(ctx context.Context, playlistId int64) ([]int64, error)
}

type VideoChecker interface {
	ExistsById(ctx context.Context, videoId int64) (bool, error)
}

type VideoReader interface {
	FindVideosByIds(ctx context.Context, videoIds []int64) ([]*model.Video, error)
}

type CreatePlaylistRequest struct {
	UserId      int64
	Name        string
	Description string
}

type PlaylistDetail struct {
	Playlist *model.Playlist `json:"playlist"`
	Videos   []*model.Video  `json:"videos"`
}

type PlaylistService struct {
	ctx       context.Context
	playlists PlaylistStore
	videos    VideoChecker
	reader    VideoReader
}

func NewPlaylistService(ctx context.Context, playlists PlaylistStore, videos VideoChecker, reader VideoReader) *PlaylistService {
	return &PlaylistService{ctx: ctx, playlists: playlists, videos: videos, reader: reader}
}

// CreatePlaylist persists the playlist; the name is globally unique and a
// clash is a Conflict, exactly as a same-name insert race resolves.
func (s *PlaylistService) CreatePlaylist(ctx context.Context, req *CreatePlaylistRequest) (*model.Playlist, error) {
	if req.UserId <= 0 {
		return nil, errno.AuthErr
	}
	if req.Name == "" {
		return nil, errno.ParamErr.WithMessage("name of playlist is required")
	}
	now := time.Now().Format(constants.DataFormate)
	playlist := &model.Playlist{
		PlaylistId:  utils.GenerateID(),
		UserId:      req.UserId,
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.playlists.CreatePlaylist(ctx, playlist); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errno.ConflictErr.WithMessage("playlist with same name exists")
		}
		return nil, errors.WithMessage(errno.MysqlErr, err.Error())
	}
	return playlist, nil
}

// AddVideo inserts a membership row under the ownership condition. Zero
// affected rows means either the playlist is not the caller's (the merged
// error) or the video is already a member, which is the set no-op.
func (s *PlaylistService) AddVideo(ctx context.Context, playlistId, videoId, userId int64) error {
	if playlistId <= 0 || videoId <= 0 {
		return errno.ParamErr.WithMessage("video id or playlist id is missing")
	}
	ok, err := s.videos.ExistsById(ctx, videoId)
	if err != nil {
		return errors.WithMessage(errno.MysqlErr, err.Error())
	}
	if !ok {
		return errno.NotFoundErr.WithMessage("video does not exist")
	}

	rows, err := s.playlists.AddVideoOwned(ctx, utils.GenerateID(), playlistId, videoId, userId)
	if err != nil {
		return errors.WithMessage(errno.MysqlErr, err.Error())
	}
	if rows == 0 {
		if _, err := s.playlists.GetOwned(ctx, playlistId, userId); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errno.NotFoundOrForbiddenErr
			}
			return errors.WithMessage(errno.MysqlErr, err.Error())
		}
		// already a member: no-op by set semantics
	}
	return nil
}

// RemoveVideo mirrors AddVideo: removing an absent member is a no-op,
// touching someone else's playlist is the merged error.
func (s *PlaylistService) RemoveVideo(ctx context.Context, playlistId, videoId, userId int64) error {
	if playlistId <= 0 || videoId <= 0 {
		return errno.ParamErr.WithMessage("video id or playlist id is missing")
	}
	rows, err := s.playlists.RemoveVideoOwned(ctx, playlistId, videoId, userId)
	if err != nil {
		return errors.WithMessage(errno.MysqlErr, err.Error())
	}
	if rows == 0 {
		if _, err := s.playlists.GetOwned(ctx, playlistId, userId); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errno.NotFoundOrForbiddenErr
			}
			return errors.WithMessage(errno.MysqlErr, err.Error())
		}
	}
	return nil
}

// GetPlaylist resolves the membership set into videos, dropping ids whose
// video rows have been deleted.
func (s *PlaylistService) GetPlaylist(ctx context.Context, playlistId int64) (*PlaylistDetail, error) {
	if playlistId <= 0 {
		return nil, errno.ParamErr.WithMessage("playlist id is missing")
	}
	playlist, err := s.playlists.GetById(ctx, playlistId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessage("playlist does not exist")
		}
		return nil, errors.WithMessage(errno.MysqlErr, err.Error())
	}
	ids, err := s.playlists.ListVideoIds(ctx, playlistId)
	if err != nil {
		return nil, errors.WithMessage(errno.MysqlErr, err.Error())
	}
	videos, err := s.reader.FindVideosByIds(ctx, ids)
	if err != nil {
		return nil, errors.WithMessage(errno.MysqlErr, err.Error())
	}
	byId := make(map[int64]*model.Video, len(videos))
	for _, v := range videos {
		byId[v.VideoId] = v
	}
	ordered := make([]*model.Video, 0, len(ids))
	for _, id := range ids {
		if v, ok := byId[id]; ok {
			ordered = append(ordered, v)
		}
	}
	return &PlaylistDetail{Playlist: playlist, Videos: ordered}, nil
}

func (s *PlaylistService) ListPlaylists(ctx context.Context, userId int64) ([]*model.Playlist, error) {
	if userId <= 0 {
		return nil, errno.ParamErr.WithMessage("user id is missing")
	}
	playlists, err := s.playlists.ListByUser(ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(errno.MysqlErr, err.Error())
	}
	return playlists, nil
}

// UpdatePlaylist renames the playlist under the ownership condition; an
// identical-value edit is a no-op success like the video update path.
func (s *PlaylistService) UpdatePlaylist(ctx context.Context, playlistId, userId int64, name, description string) (*model.Playlist, error) {
	if playlistId <= 0 {
		return nil, errno.ParamErr.WithMessage("playlist id is missing")
	}
	if name == "" && description == "" {
		return nil, errno.ParamErr.WithMessage("nothing to update")
	}
	updates := map[string]interface{}{
		"updated_at": time.Now().Format(constants.DataFormate),
	}
	if name != "" {
		updates["name"] = name
	}
	if description != "" {
		updates["description"] = description
	}
	rows, err := s.playlists.UpdateOwned(ctx, playlistId, userId, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errno.ConflictErr.WithMessage("playlist with same name exists")
		}
		return nil, errors.WithMessage(errno.MysqlErr, err.Error())
	}
	if rows == 0 {
		playlist, err := s.playlists.GetOwned(ctx, playlistId, userId)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errno.NotFoundOrForbiddenErr
			}
			return nil, errors.WithMessage(errno.MysqlErr, err.Error())
		}
		return playlist, nil
	}
	return s.playlists.GetOwned(ctx, playlistId, userId)
}

func (s *PlaylistService) DeletePlaylist(ctx context.Context, playlistId, userId int64) error {
	if playlistId <= 0 {
		return errno.ParamErr.WithMessage("playlist id is missing")
	}
	rows, err := s.playlists.DeleteOwned(ctx, playlistId, userId)
	if err != nil {
		return errors.WithMessage(errno.MysqlErr, err.Error())
	}
	if rows == 0 {
		return errno.NotFoundOrForbiddenErr
	}
	return nil
}
