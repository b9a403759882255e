// Package normalize converts the provider's heterogeneous item shapes
// into the canonical domain records. Each upstream endpoint nests the
// video id and snippet differently; everything funnels through here so
// the rest of the core only ever sees domain.Video.
package normalize

import (
	"fmt"
	"time"

	"github.com/sosodev/duration"
	"google.golang.org/api/youtube/v3"

	"github.com/Butseraentjes/butseraen-music/internal/core/domain"
)

// FromSearchResult builds a record from a search hit. Search responses
// carry no statistics; those stay zero until details are joined.
func FromSearchResult(item *youtube.SearchResult) (domain.Video, error) {
	if item == nil || item.Snippet == nil || item.Id == nil || item.Id.VideoId == "" {
		return domain.Video{}, fmt.Errorf("%w: search result without id or snippet", domain.ErrMalformedUpstream)
	}
	publishedAt, err := parsePublishedAt(item.Snippet.PublishedAt)
	if err != nil {
		return domain.Video{}, err
	}
	return domain.Video{
		ID:          item.Id.VideoId,
		Title:       item.Snippet.Title,
		Description: item.Snippet.Description,
		Thumbnail:   mediumThumbnail(item.Snippet.Thumbnails),
		PublishedAt: publishedAt,
	}, nil
}

// FromActivity builds a record from an upload-type activity entry.
func FromActivity(item *youtube.Activity) (domain.Video, error) {
	if item == nil || item.Snippet == nil ||
		item.ContentDetails == nil || item.ContentDetails.Upload == nil ||
		item.ContentDetails.Upload.VideoId == "" {
		return domain.Video{}, fmt.Errorf("%w: activity without upload reference", domain.ErrMalformedUpstream)
	}
	publishedAt, err := parsePublishedAt(item.Snippet.PublishedAt)
	if err != nil {
		return domain.Video{}, err
	}
	return domain.Video{
		ID:          item.ContentDetails.Upload.VideoId,
		Title:       item.Snippet.Title,
		Description: item.Snippet.Description,
		Thumbnail:   mediumThumbnail(item.Snippet.Thumbnails),
		PublishedAt: publishedAt,
	}, nil
}

// FromPlaylistItem builds a record from an item inside a playlist. The
// actual video id sits behind the snippet's resource reference.
func FromPlaylistItem(item *youtube.PlaylistItem) (domain.Video, error) {
	if item == nil || item.Snippet == nil ||
		item.Snippet.ResourceId == nil || item.Snippet.ResourceId.VideoId == "" {
		return domain.Video{}, fmt.Errorf("%w: playlist item without video reference", domain.ErrMalformedUpstream)
	}
	publishedAt, err := parsePublishedAt(item.Snippet.PublishedAt)
	if err != nil {
		return domain.Video{}, err
	}
	return domain.Video{
		ID:          item.Snippet.ResourceId.VideoId,
		Title:       item.Snippet.Title,
		Description: item.Snippet.Description,
		Thumbnail:   mediumThumbnail(item.Snippet.Thumbnails),
		PublishedAt: publishedAt,
	}, nil
}

// FromVideoDetails builds a complete record from a full video lookup,
// preferring the high resolution thumbnail. Tags default to an empty
// slice so the serialized record always carries the field.
func FromVideoDetails(item *youtube.Video) (domain.Video, error) {
	if item == nil || item.Snippet == nil || item.Id == "" {
		return domain.Video{}, fmt.Errorf("%w: video details without id or snippet", domain.ErrMalformedUpstream)
	}
	publishedAt, err := parsePublishedAt(item.Snippet.PublishedAt)
	if err != nil {
		return domain.Video{}, err
	}
	video := domain.Video{
		ID:          item.Id,
		Title:       item.Snippet.Title,
		Description: item.Snippet.Description,
		Thumbnail:   highThumbnail(item.Snippet.Thumbnails),
		PublishedAt: publishedAt,
		Tags:        item.Snippet.Tags,
	}
	if video.Tags == nil {
		video.Tags = []string{}
	}
	applyDetails(&video, item)
	return video, nil
}

// DetailsByID indexes a batch of detail records by video id, so a list of
// N items joins against M details without nested loops.
func DetailsByID(details []*youtube.Video) map[string]*youtube.Video {
	byID := make(map[string]*youtube.Video, len(details))
	for _, d := range details {
		if d != nil && d.Id != "" {
			byID[d.Id] = d
		}
	}
	return byID
}

// AttachDetails copies statistics and duration from the detail record
// sharing the video's id. Ids absent from the map keep zero counts: that
// is a video the details call legitimately did not return, not an error.
func AttachDetails(video *domain.Video, byID map[string]*youtube.Video) {
	detail, ok := byID[video.ID]
	if !ok {
		return
	}
	applyDetails(video, detail)
}

// FromPlaylist builds a playlist record.
func FromPlaylist(item *youtube.Playlist) (domain.Playlist, error) {
	if item == nil || item.Snippet == nil || item.Id == "" {
		return domain.Playlist{}, fmt.Errorf("%w: playlist without id or snippet", domain.ErrMalformedUpstream)
	}
	publishedAt, err := parsePublishedAt(item.Snippet.PublishedAt)
	if err != nil {
		return domain.Playlist{}, err
	}
	playlist := domain.Playlist{
		ID:          item.Id,
		Title:       item.Snippet.Title,
		Description: item.Snippet.Description,
		Thumbnail:   mediumThumbnail(item.Snippet.Thumbnails),
		PublishedAt: publishedAt,
	}
	if item.ContentDetails != nil {
		playlist.ItemCount = item.ContentDetails.ItemCount
	}
	return playlist, nil
}

// FromChannel builds the channel's aggregate stats record.
func FromChannel(item *youtube.Channel) (domain.ChannelStats, error) {
	if item == nil || item.Snippet == nil {
		return domain.ChannelStats{}, fmt.Errorf("%w: channel without snippet", domain.ErrMalformedUpstream)
	}
	stats := domain.ChannelStats{
		Title:       item.Snippet.Title,
		Description: item.Snippet.Description,
	}
	if item.Statistics != nil {
		stats.VideoCount = item.Statistics.VideoCount
		stats.ViewCount = item.Statistics.ViewCount
		stats.SubscriberCount = item.Statistics.SubscriberCount
	}
	return stats, nil
}

func applyDetails(video *domain.Video, detail *youtube.Video) {
	if detail.Statistics != nil {
		video.ViewCount = detail.Statistics.ViewCount
		video.LikeCount = detail.Statistics.LikeCount
	}
	if detail.ContentDetails != nil && detail.ContentDetails.Duration != "" {
		video.Duration = detail.ContentDetails.Duration
		if parsed, err := duration.Parse(detail.ContentDetails.Duration); err == nil {
			video.Runtime = parsed.ToTimeDuration()
		}
	}
}

func parsePublishedAt(value string) (time.Time, error) {
	publishedAt, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad publish time %q", domain.ErrMalformedUpstream, value)
	}
	return publishedAt, nil
}

// mediumThumbnail prefers the medium resolution, falling back to default.
func mediumThumbnail(thumbnails *youtube.ThumbnailDetails) string {
	if thumbnails == nil {
		return ""
	}
	if thumbnails.Medium != nil && thumbnails.Medium.Url != "" {
		return thumbnails.Medium.Url
	}
	if thumbnails.Default != nil {
		return thumbnails.Default.Url
	}
	return ""
}

// highThumbnail prefers the high resolution, used for single-video lookups.
func highThumbnail(thumbnails *youtube.ThumbnailDetails) string {
	if thumbnails == nil {
		return ""
	}
	if thumbnails.High != nil && thumbnails.High.Url != "" {
		return thumbnails.High.Url
	}
	return mediumThumbnail(thumbnails)
}
