package usecases

import (
	"context"
	"time"

	"google.golang.org/api/youtube/v3"

	"github.com/Butseraentjes/butseraen-music/internal/core/ports"
)

type nopLogger struct{}

func (nopLogger) Info(string)         {}
func (nopLogger) Error(string, error) {}
func (nopLogger) Warning(string)      {}
func (nopLogger) Close()              {}

// fakeGateway scripts upstream responses and records the calls made.
type fakeGateway struct {
	searchFunc        func(q ports.SearchQuery) (ports.SearchPage, error)
	activitiesFunc    func(publishedAfter time.Time, maxResults int64) ([]*youtube.Activity, error)
	detailsFunc       func(ids []string) ([]*youtube.Video, error)
	playlistsFunc     func() ([]*youtube.Playlist, error)
	playlistItemsFunc func(playlistID string, maxResults int64, pageToken string) (ports.PlaylistItemPage, error)
	channelFunc       func() (*youtube.Channel, error)

	searchCalls     int
	activityCalls   int
	detailsCalls    int
	lastSearchQuery ports.SearchQuery
}

func (f *fakeGateway) SearchVideos(_ context.Context, q ports.SearchQuery) (ports.SearchPage, error) {
	f.searchCalls++
	f.lastSearchQuery = q
	if f.searchFunc == nil {
		return ports.SearchPage{}, nil
	}
	return f.searchFunc(q)
}

func (f *fakeGateway) ListActivities(_ context.Context, publishedAfter time.Time, maxResults int64) ([]*youtube.Activity, error) {
	f.activityCalls++
	if f.activitiesFunc == nil {
		return nil, nil
	}
	return f.activitiesFunc(publishedAfter, maxResults)
}

func (f *fakeGateway) ListVideoDetails(_ context.Context, ids []string) ([]*youtube.Video, error) {
	f.detailsCalls++
	if f.detailsFunc == nil {
		return nil, nil
	}
	return f.detailsFunc(ids)
}

func (f *fakeGateway) ListPlaylists(_ context.Context) ([]*youtube.Playlist, error) {
	if f.playlistsFunc == nil {
		return nil, nil
	}
	return f.playlistsFunc()
}

func (f *fakeGateway) ListPlaylistItems(_ context.Context, playlistID string, maxResults int64, pageToken string) (ports.PlaylistItemPage, error) {
	if f.playlistItemsFunc == nil {
		return ports.PlaylistItemPage{}, nil
	}
	return f.playlistItemsFunc(playlistID, maxResults, pageToken)
}

func (f *fakeGateway) ChannelInfo(_ context.Context) (*youtube.Channel, error) {
	if f.channelFunc == nil {
		return nil, nil
	}
	return f.channelFunc()
}

func newTestUseCase(gateway *fakeGateway, cfg DiscoveryConfig) *discoveryUseCase {
	uc := NewDiscoveryUseCase(gateway, nopLogger{}, cfg).(*discoveryUseCase)
	uc.now = func() time.Time {
		return time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	}
	return uc
}

func publishedOn(day int) string {
	return time.Date(2024, time.May, day, 10, 0, 0, 0, time.UTC).Format(time.RFC3339)
}

func uploadActivity(videoID, title string, day int) *youtube.Activity {
	return &youtube.Activity{
		Snippet: &youtube.ActivitySnippet{
			Type:        "upload",
			Title:       title,
			PublishedAt: publishedOn(day),
		},
		ContentDetails: &youtube.ActivityContentDetails{
			Upload: &youtube.ActivityContentDetailsUpload{VideoId: videoID},
		},
	}
}

func searchHit(videoID, title string, day int) *youtube.SearchResult {
	return &youtube.SearchResult{
		Id: &youtube.ResourceId{VideoId: videoID},
		Snippet: &youtube.SearchResultSnippet{
			Title:       title,
			PublishedAt: publishedOn(day),
		},
	}
}

func videoDetail(videoID string, views, likes uint64) *youtube.Video {
	return &youtube.Video{
		Id:             videoID,
		Statistics:     &youtube.VideoStatistics{ViewCount: views, LikeCount: likes},
		ContentDetails: &youtube.VideoContentDetails{Duration: "PT2M"},
	}
}
