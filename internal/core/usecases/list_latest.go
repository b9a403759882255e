package usecases

import (
	"context"
	"fmt"

	"github.com/Butseraentjes/butseraen-music/internal/core/domain"
	"github.com/Butseraentjes/butseraen-music/internal/core/normalize"
	"github.com/Butseraentjes/butseraen-music/internal/core/ports"
)

// ListLatest returns the channel's videos newest-first.
//
// On a fresh listing (no page token) it first tries the recent-activity
// feed, which is fresher than search but has no forward pagination here.
// When that feed has no uploads in the lookback window, or the call
// itself fails, it falls back to a date-ordered channel search. A page
// token always goes straight to the search path, since only that path
// issued it.
func (uc *discoveryUseCase) ListLatest(ctx context.Context, pageToken string, pageSize int64) (domain.VideoPage, error) {
	pageSize = normalizePageSize(pageSize)

	if pageToken == "" {
		page, ok, err := uc.latestFromActivities(ctx, pageSize)
		if err != nil {
			return domain.VideoPage{}, err
		}
		if ok {
			return page, nil
		}
	}

	return uc.latestFromSearch(ctx, pageToken, pageSize)
}

// latestFromActivities attempts the activity-feed path. The second return
// reports whether the feed produced a usable page; a false with nil error
// means the caller should fall through to search. Errors past the initial
// list call (the details join) are real failures, not fallback triggers.
func (uc *discoveryUseCase) latestFromActivities(ctx context.Context, pageSize int64) (domain.VideoPage, bool, error) {
	since := uc.now().Add(-uc.cfg.ActivityLookback)

	activities, err := uc.gateway.ListActivities(ctx, since, pageSize)
	if err != nil {
		uc.log.Warning(fmt.Sprintf("activity feed unavailable, falling back to search: %v", err))
		return domain.VideoPage{}, false, nil
	}

	videos := make([]domain.Video, 0, len(activities))
	for _, activity := range activities {
		if activity == nil || activity.Snippet == nil || activity.Snippet.Type != "upload" {
			continue
		}
		video, err := normalize.FromActivity(activity)
		if err != nil {
			return domain.VideoPage{}, false, err
		}
		videos = append(videos, video)
	}
	if len(videos) == 0 {
		uc.log.Info("activity feed returned no uploads, falling back to search")
		return domain.VideoPage{}, false, nil
	}

	if err := uc.joinDetails(ctx, videos); err != nil {
		return domain.VideoPage{}, false, err
	}

	videos = domain.DedupeByID(videos)
	classifyAll(videos)
	domain.SortByNewest(videos)

	// The activity feed paginates differently from search, so a page built
	// from it carries no continuation token.
	return domain.VideoPage{
		Videos:       videos,
		TotalResults: int64(len(videos)),
	}, true, nil
}

// latestFromSearch is the fallback: a date-ordered channel search that
// over-fetches, re-sorts, and trims, because the provider's date order is
// only approximate.
func (uc *discoveryUseCase) latestFromSearch(ctx context.Context, pageToken string, pageSize int64) (domain.VideoPage, error) {
	since := uc.now().Add(-uc.cfg.SearchLookback)

	result, err := uc.gateway.SearchVideos(ctx, ports.SearchQuery{
		Order:          "date",
		PublishedAfter: since,
		MaxResults:     pageSize * uc.cfg.SearchOverfetch,
		PageToken:      pageToken,
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

	if err := uc.joinDetails(ctx, videos); err != nil {
		return domain.VideoPage{}, err
	}

	videos = domain.DedupeByID(videos)
	classifyAll(videos)
	domain.SortByNewest(videos)
	if int64(len(videos)) > pageSize {
		videos = videos[:pageSize]
	}

	return domain.VideoPage{
		Videos:        videos,
		NextPageToken: result.NextPageToken,
		TotalResults:  result.TotalResults,
	}, nil
}

// joinDetails attaches statistics and durations to the given records in
// one batch call. A failing details call fails the whole operation: a
// page of silently zeroed counts would be indistinguishable from videos
// that genuinely have none.
func (uc *discoveryUseCase) joinDetails(ctx context.Context, videos []domain.Video) error {
	if len(videos) == 0 {
		return nil
	}
	ids := make([]string, len(videos))
	for i, v := range videos {
		ids[i] = v.ID
	}

	details, err := uc.gateway.ListVideoDetails(ctx, ids)
	if err != nil {
		return fmt.Errorf("joining video details: %w", err)
	}

	byID := normalize.DetailsByID(details)
	for i := range videos {
		normalize.AttachDetails(&videos[i], byID)
	}
	return nil
}

func classifyAll(videos []domain.Video) {
	for i := range videos {
		videos[i].Category = domain.Classify(videos[i].Title, videos[i].Description)
	}
}
