package usecases

import (
	"context"
	"time"

	"github.com/Butseraentjes/butseraen-music/internal/core/domain"
	"github.com/Butseraentjes/butseraen-music/internal/core/ports"
)

const (
	defaultPageSize         = 12
	defaultActivityLookback = 365 * 24 * time.Hour
	defaultSearchLookback   = 2 * 365 * 24 * time.Hour
	defaultSearchOverfetch  = 2
)

// DiscoveryConfig tunes the listing heuristics. The lookback windows and
// the over-fetch multiplier compensate for the provider's unreliable
// date ordering; the defaults match what worked against the live channel.
type DiscoveryConfig struct {
	// ActivityLookback bounds the recent-activity attempt on a fresh listing.
	ActivityLookback time.Duration

	// SearchLookback bounds the date-ordered search fallback.
	SearchLookback time.Duration

	// SearchOverfetch multiplies the requested page size on the fallback
	// path, so sorting the over-fetched set still fills a full page.
	SearchOverfetch int64

	// ClassifyPlaylistItems also labels playlist-sourced and single-video
	// lookups with a category. Latest and search listings are always labeled.
	ClassifyPlaylistItems bool
}

func (c DiscoveryConfig) withDefaults() DiscoveryConfig {
	if c.ActivityLookback <= 0 {
		c.ActivityLookback = defaultActivityLookback
	}
	if c.SearchLookback <= 0 {
		c.SearchLookback = defaultSearchLookback
	}
	if c.SearchOverfetch <= 0 {
		c.SearchOverfetch = defaultSearchOverfetch
	}
	return c
}

// DiscoveryUseCase is the pipeline behind every listing the site shows:
// it decides which upstream calls to make, joins details, classifies and
// orders the results, and hands back provider cursors untouched.
type DiscoveryUseCase interface {
	ListLatest(ctx context.Context, pageToken string, pageSize int64) (domain.VideoPage, error)
	Search(ctx context.Context, query string, pageSize int64) (domain.VideoPage, error)
	ListPlaylists(ctx context.Context) ([]domain.Playlist, error)
	ListPlaylistVideos(ctx context.Context, playlistID, pageToken string, pageSize int64) (domain.VideoPage, error)
	GetVideo(ctx context.Context, id string) (domain.Video, error)
	ChannelStats(ctx context.Context) (domain.ChannelStats, error)
}

type discoveryUseCase struct {
	gateway ports.VideoGateway
	log     ports.LoggerPort
	cfg     DiscoveryConfig
	now     func() time.Time
}

func NewDiscoveryUseCase(gateway ports.VideoGateway, logger ports.LoggerPort, cfg DiscoveryConfig) DiscoveryUseCase {
	return &discoveryUseCase{
		gateway: gateway,
		log:     logger,
		cfg:     cfg.withDefaults(),
		now:     time.Now,
	}
}

func normalizePageSize(pageSize int64) int64 {
	if pageSize <= 0 {
		return defaultPageSize
	}
	return pageSize
}
