package domain

import (
	"sort"
	"time"
)

// Video is the canonical record for a channel video, regardless of which
// upstream endpoint produced it. Lightweight sources (search results,
// activity items) leave the statistics at zero until a details lookup is
// joined in.
type Video struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Thumbnail   string    `json:"thumbnail"`
	PublishedAt time.Time `json:"publishedAt"`
	ViewCount   uint64    `json:"viewCount"`
	LikeCount   uint64    `json:"likeCount"`

	// Duration is the provider-formatted ISO 8601 string, kept verbatim.
	// Runtime is the parsed equivalent, zero when parsing was not possible.
	Duration string        `json:"duration,omitempty"`
	Runtime  time.Duration `json:"-"`

	Tags     []string `json:"tags,omitempty"`
	Category Category `json:"category,omitempty"`
}

// VideoPage is one page of a listing plus the cursor to continue it.
// NextPageToken is issued by the provider and carried verbatim; an empty
// token means there are no further pages.
type VideoPage struct {
	Videos        []Video `json:"videos"`
	NextPageToken string  `json:"nextPageToken,omitempty"`
	TotalResults  int64   `json:"totalResults"`
}

// SortByNewest orders videos by publish time, newest first. Ties keep
// their relative order so repeated sorts are stable.
func SortByNewest(videos []Video) {
	sort.SliceStable(videos, func(i, j int) bool {
		return videos[i].PublishedAt.After(videos[j].PublishedAt)
	})
}

// DedupeByID removes repeated video ids, keeping the first occurrence.
// Merged upstream listings may report the same upload twice.
func DedupeByID(videos []Video) []Video {
	seen := make(map[string]struct{}, len(videos))
	out := videos[:0]
	for _, v := range videos {
		if _, ok := seen[v.ID]; ok {
			continue
		}
		seen[v.ID] = struct{}{}
		out = append(out, v)
	}
	return out
}
