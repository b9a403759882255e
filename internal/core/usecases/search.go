package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/Butseraentjes/butseraen-music/internal/core/domain"
	"github.com/Butseraentjes/butseraen-music/internal/core/normalize"
	"github.com/Butseraentjes/butseraen-music/internal/core/ports"
)

// Search returns channel videos matching a free-text query. Search hits
// are served without a details join, so their statistics stay at zero;
// the single-video lookup fills them in when a result is opened.
func (uc *discoveryUseCase) Search(ctx context.Context, query string, pageSize int64) (domain.VideoPage, error) {
	if strings.TrimSpace(query) == "" {
		return domain.VideoPage{}, fmt.Errorf("%w: empty search query", domain.ErrInvalidArgument)
	}
	pageSize = normalizePageSize(pageSize)

	result, err := uc.gateway.SearchVideos(ctx, ports.SearchQuery{
		Query:      query,
		MaxResults: pageSize,
	})
	if err != nil {
		return domain.VideoPage{}, err
	}

	videos := make([]domain.Video, 0, len(result.Items))
	for _, item := range result.Items {
		video, err := normalize.FromSearchResult(item)
		if err != nil {
			return domain.VideoPage{}, err
		}
		videos = append(videos, video)
	}

	videos = domain.DedupeByID(videos)
	classifyAll(videos)

	return domain.VideoPage{
		Videos:        videos,
		NextPageToken: result.NextPageToken,
		TotalResults:  result.TotalResults,
	}, nil
}
