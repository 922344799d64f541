package db

import (
	"context"

	"VidTube.com/cmd/model"
	"gorm.io/gorm"
)

type PlaylistDB struct {
	db *gorm.DB
}

func NewPlaylistDB(db *gorm.DB) *PlaylistDB {
	return &PlaylistDB{db: db}
}

// CreatePlaylist relies on the unique name index; a duplicate name comes
// back as gorm.ErrDuplicatedKey.
func (p *PlaylistDB) CreatePlaylist(ctx context.Context, playlist *model.Playlist) error {
	return p.db.WithContext(ctx).Create(playlist).Error
}

func (p *PlaylistDB) GetById(ctx context.Context, playlistId int64) (*model.Playlist, error) {
	playlist := &model.Playlist{}
	if err := p.db.WithContext(ctx).Model(&model.Playlist{}).
		Where("playlist_id = ?", playlistId).First(playlist).Error; err != nil {
		return nil, err
	}
	return playlist, nil
}

func (p *PlaylistDB) GetOwned(ctx context.Context, playlistId, userId int64) (*model.Playlist, error) {
	playlist := &model.Playlist{}
	if err := p.db.WithContext(ctx).Model(&model.Playlist{}).
		Where("playlist_id = ? AND user_id = ?", playlistId, userId).First(playlist).Error; err != nil {
		return nil, err
	}
	return playlist, nil
}

func (p *PlaylistDB) ListByUser(ctx context.Context, userId int64) ([]*model.Playlist, error) {
	playlists := make([]*model.Playlist, 0)
	if err := p.db.WithContext(ctx).Model(&model.Playlist{}).
		Where("user_id = ?", userId).Find(&playlists).Error; err != nil {
		return nil, err
	}
	return playlists, nil
}

func (p *PlaylistDB) UpdateOwned(ctx context.Context, playlistId, userId int64, updates map[string]interface{}) (int64, error) {
	result := p.db.WithContext(ctx).Model(&model.Playlist{}).
		Where("playlist_id = ? AND user_id = ?", playlistId, userId).Updates(updates)
	return result.RowsAffected, result.Error
}

func (p *PlaylistDB) DeleteOwned(ctx context.Context, playlistId, userId int64) (int64, error) {
	result := p.db.WithContext(ctx).
		Where("playlist_id = ? AND user_id = ?", playlistId, userId).Delete(&model.Playlist{})
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected > 0 {
		// membership rows go with the playlist itself (not a cross-entity cascade)
		if err := p.db.WithContext(ctx).
			Where("playlist_id = ?", playlistId).Delete(&model.PlaylistVideo{}).Error; err != nil {
			return result.RowsAffected, err
		}
	}
	return result.RowsAffected, nil
}

// AddVideoOwned inserts a membership row only when the caller owns the
// playlist, in one statement. Zero affected rows means not owned OR already
// present; the service disambiguates through GetOwned.
func (p *PlaylistDB) AddVideoOwned(ctx context.Context, rowId, playlistId, videoId, userId int64) (int64, error) {
	result := p.db.WithContext(ctx).Exec(
		`INSERT IGNORE INTO playlist_videos (playlist_video_id, playlist_id, video_id)
	select ?, playlist_id, ? from playlists where playlist_id = ? and user_id = ?`,
		rowId, videoId, playlistId, userId)
	return result.RowsAffected, result.Error
}

// RemoveVideoOwned deletes a membership row only when the caller owns the
// playlist. Zero affected rows means not owned OR already absent.
func (p *PlaylistDB) RemoveVideoOwned(ctx context.Context, playlistId, videoId, userId int64) (int64, error) {
	result := p.db.WithContext(ctx).Exec(
		`DELETE pv FROM playlist_videos pv
	join playlists pl on pl.playlist_id = pv.playlist_id
	where pv.playlist_id = ? and pv.video_id = ? and pl.user_id = ?`,
		playlistId, videoId, userId)
	return result.RowsAffected, result.Error
}

// ListVideoIds returns the member video ids in insertion order.
func (p *PlaylistDB) ListVideoIds(ctx context.Context, playlistId int64) ([]int64, error) {
	ids := make([]int64, 0)
	if err := p.db.WithContext(ctx).Model(&model.PlaylistVideo{}).
		Where("playlist_id = ?", playlistId).Select("video_id").
		Order("playlist_video_id asc").Scan(&ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
