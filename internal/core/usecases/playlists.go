package usecases

import (
	"context"
	"fmt"

	"github.com/Butseraentjes/butseraen-music/internal/core/domain"
	"github.com/Butseraentjes/butseraen-music/internal/core/normalize"
)

// ListPlaylists returns the channel's playlists.
func (uc *discoveryUseCase) ListPlaylists(ctx context.Context) ([]domain.Playlist, error) {
	items, err := uc.gateway.ListPlaylists(ctx)
	if err != nil {
		uc.log.Error("failed to list playlists", err)
		return nil, err
	}

	playlists := make([]domain.Playlist, 0, len(items))
	for _, item := range items {
		playlist, err := normalize.FromPlaylist(item)
		if err != nil {
			return nil, err
		}
		playlists = append(playlists, playlist)
	}
	return playlists, nil
}

// ListPlaylistVideos pages through one playlist, joining statistics the
// same way the latest listing does. The provider's playlist order is the
// curated order, so no re-sort happens here.
func (uc *discoveryUseCase) ListPlaylistVideos(ctx context.Context, playlistID, pageToken string, pageSize int64) (domain.VideoPage, error) {
	if playlistID == "" {
		return domain.VideoPage{}, fmt.Errorf("%w: empty playlist id", domain.ErrInvalidArgument)
	}
	pageSize = normalizePageSize(pageSize)

	result, err := uc.gateway.ListPlaylistItems(ctx, playlistID, pageSize, pageToken)
	if err != nil {
		return domain.VideoPage{}, err
	}

	videos := make([]domain.Video, 0, len(result.Items))
	for _, item := range result.Items {
		video, err := normalize.FromPlaylistItem(item)
		if err != nil {
			return domain.VideoPage{}, err
		}
		videos = append(videos, video)
	}

	if err := uc.joinDetails(ctx, videos); err != nil {
		return domain.VideoPage{}, err
	}
	if uc.cfg.ClassifyPlaylistItems {
		classifyAll(videos)
	}

	return domain.VideoPage{
		Videos:        videos,
		NextPageToken: result.NextPageToken,
		TotalResults:  result.TotalResults,
	}, nil
}
