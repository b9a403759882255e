package ports

import (
	"context"
	"time"

	"google.golang.org/api/youtube/v3"
)

// SearchQuery bundles the parameters of a channel-scoped video search.
// Zero values are omitted from the upstream call.
type SearchQuery struct {
	Query          string
	Order          string
	PublishedAfter time.Time
	MaxResults     int64
	PageToken      string
}

// SearchPage is a raw page from the search endpoint. The token and total
// are provider-issued and passed through untouched.
type SearchPage struct {
	Items         []*youtube.SearchResult
	NextPageToken string
	TotalResults  int64
}

// PlaylistItemPage is a raw page of items within one playlist.
type PlaylistItemPage struct {
	Items         []*youtube.PlaylistItem
	NextPageToken string
	TotalResults  int64
}

// VideoGateway is the upstream metadata provider, scoped to the one
// configured channel. Implementations wrap every transport or provider
// failure in domain.ErrUpstreamUnavailable.
type VideoGateway interface {
	// SearchVideos lists channel videos via the search endpoint.
	SearchVideos(ctx context.Context, q SearchQuery) (SearchPage, error)

	// ListActivities returns the channel's recent activity since the
	// given time. Callers filter for upload-type entries themselves.
	ListActivities(ctx context.Context, publishedAfter time.Time, maxResults int64) ([]*youtube.Activity, error)

	// ListVideoDetails fetches statistics and content metadata for a
	// batch of video ids. Unknown ids are simply absent from the result.
	ListVideoDetails(ctx context.Context, ids []string) ([]*youtube.Video, error)

	// ListPlaylists returns the channel's playlists.
	ListPlaylists(ctx context.Context) ([]*youtube.Playlist, error)

	// ListPlaylistItems pages through one playlist in provider order.
	ListPlaylistItems(ctx context.Context, playlistID string, maxResults int64, pageToken string) (PlaylistItemPage, error)

	// ChannelInfo fetches the channel's snippet and statistics, returning
	// domain.ErrNotFound when the provider reports zero channels.
	ChannelInfo(ctx context.Context) (*youtube.Channel, error)
}
