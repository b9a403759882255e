package usecases

import (
	"context"
	"fmt"

	"github.com/Butseraentjes/butseraen-music/internal/core/domain"
	"github.com/Butseraentjes/butseraen-music/internal/core/normalize"
)

// GetVideo fetches one video's full record, including tags and statistics.
func (uc *discoveryUseCase) GetVideo(ctx context.Context, id string) (domain.Video, error) {
	if id == "" {
		return domain.Video{}, fmt.Errorf("%w: empty video id", domain.ErrInvalidArgument)
	}

	details, err := uc.gateway.ListVideoDetails(ctx, []string{id})
	if err != nil {
		return domain.Video{}, err
	}
	if len(details) == 0 {
		return domain.Video{}, fmt.Errorf("%w: video %s", domain.ErrNotFound, id)
	}

	video, err := normalize.FromVideoDetails(details[0])
	if err != nil {
		return domain.Video{}, err
	}
	if uc.cfg.ClassifyPlaylistItems {
		video.Category = domain.Classify(video.Title, video.Description)
	}
	return video, nil
}

// ChannelStats fetches the channel's aggregate counters.
func (uc *discoveryUseCase) ChannelStats(ctx context.Context) (domain.ChannelStats, error) {
	channel, err := uc.gateway.ChannelInfo(ctx)
	if err != nil {
		uc.log.Error("failed to fetch channel stats", err)
		return domain.ChannelStats{}, err
	}
	return normalize.FromChannel(channel)
}
