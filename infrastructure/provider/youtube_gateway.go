package provider

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/Butseraentjes/butseraen-music/internal/core/domain"
	"github.com/Butseraentjes/butseraen-music/internal/core/ports"
)

// maxResultsCap is the provider's per-call list limit.
const maxResultsCap = 50

type youtubeGateway struct {
	service   *youtube.Service
	channelID string
	log       ports.LoggerPort
}

// NewYoutubeGateway builds the gateway for one channel, authenticated
// with an API key. Read-only public metadata needs no OAuth consent.
func NewYoutubeGateway(ctx context.Context, apiKey, channelID string, logger ports.LoggerPort) (ports.VideoGateway, error) {
	service, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("error while create youtube service: %w", err)
	}

	return &youtubeGateway{
		service:   service,
		channelID: channelID,
		log:       logger,
	}, nil
}

func (g *youtubeGateway) SearchVideos(ctx context.Context, q ports.SearchQuery) (ports.SearchPage, error) {
	call := g.service.Search.List([]string{"snippet"}).
		ChannelId(g.channelID).
		Type("video").
		Context(ctx)

	if q.Query != "" {
		call = call.Q(q.Query)
	}
	if q.Order != "" {
		call = call.Order(q.Order)
	}
	if !q.PublishedAfter.IsZero() {
		call = call.PublishedAfter(q.PublishedAfter.UTC().Format(time.RFC3339))
	}
	if q.MaxResults > 0 {
		call = call.MaxResults(clampMaxResults(q.MaxResults))
	}
	if q.PageToken != "" {
		call = call.PageToken(q.PageToken)
	}

	response, err := call.Do()
	if err != nil {
		g.log.Error("search call failed", err)
		return ports.SearchPage{}, fmt.Errorf("%w: search videos: %v", domain.ErrUpstreamUnavailable, err)
	}

	page := ports.SearchPage{
		Items:         response.Items,
		NextPageToken: response.NextPageToken,
	}
	if response.PageInfo != nil {
		page.TotalResults = response.PageInfo.TotalResults
	}
	return page, nil
}

func (g *youtubeGateway) ListActivities(ctx context.Context, publishedAfter time.Time, maxResults int64) ([]*youtube.Activity, error) {
	call := g.service.Activities.List([]string{"snippet", "contentDetails"}).
		ChannelId(g.channelID).
		Context(ctx)

	if !publishedAfter.IsZero() {
		call = call.PublishedAfter(publishedAfter.UTC().Format(time.RFC3339))
	}
	if maxResults > 0 {
		call = call.MaxResults(clampMaxResults(maxResults))
	}

	response, err := call.Do()
	if err != nil {
		g.log.Error("activities call failed", err)
		return nil, fmt.Errorf("%w: list activities: %v", domain.ErrUpstreamUnavailable, err)
	}
	return response.Items, nil
}

func (g *youtubeGateway) ListVideoDetails(ctx context.Context, ids []string) ([]*youtube.Video, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	call := g.service.Videos.List([]string{"snippet", "statistics", "contentDetails"}).
		Id(ids...).
		Context(ctx)

	response, err := call.Do()
	if err != nil {
		g.log.Error("video details call failed", err)
		return nil, fmt.Errorf("%w: video details: %v", domain.ErrUpstreamUnavailable, err)
	}
	return response.Items, nil
}

func (g *youtubeGateway) ListPlaylists(ctx context.Context) ([]*youtube.Playlist, error) {
	call := g.service.Playlists.List([]string{"id", "snippet", "contentDetails"}).
		ChannelId(g.channelID).
		MaxResults(maxResultsCap).
		Context(ctx)

	response, err := call.Do()
	if err != nil {
		g.log.Error("playlists call failed", err)
		return nil, fmt.Errorf("%w: list playlists: %v", domain.ErrUpstreamUnavailable, err)
	}
	return response.Items, nil
}

func (g *youtubeGateway) ListPlaylistItems(ctx context.Context, playlistID string, maxResults int64, pageToken string) (ports.PlaylistItemPage, error) {
	call := g.service.PlaylistItems.List([]string{"snippet", "contentDetails"}).
		PlaylistId(playlistID).
		Context(ctx)

	if maxResults > 0 {
		call = call.MaxResults(clampMaxResults(maxResults))
	}
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}

	response, err := call.Do()
	if err != nil {
		g.log.Error("playlist items call failed", err)
		return ports.PlaylistItemPage{}, fmt.Errorf("%w: list playlist items: %v", domain.ErrUpstreamUnavailable, err)
	}

	page := ports.PlaylistItemPage{
		Items:         response.Items,
		NextPageToken: response.NextPageToken,
	}
	if response.PageInfo != nil {
		page.TotalResults = response.PageInfo.TotalResults
	}
	return page, nil
}

func (g *youtubeGateway) ChannelInfo(ctx context.Context) (*youtube.Channel, error) {
	call := g.service.Channels.List([]string{"snippet", "statistics"}).
		Id(g.channelID).
		Context(ctx)

	response, err := call.Do()
	if err != nil {
		g.log.Error("channel call failed", err)
		return nil, fmt.Errorf("%w: channel info: %v", domain.ErrUpstreamUnavailable, err)
	}
	if len(response.Items) == 0 {
		return nil, fmt.Errorf("%w: channel %s", domain.ErrNotFound, g.channelID)
	}
	return response.Items[0], nil
}

func clampMaxResults(v int64) int64 {
	if v > maxResultsCap {
		return maxResultsCap
	}
	return v
}
