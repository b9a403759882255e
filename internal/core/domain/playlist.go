package domain

import "time"

// Playlist describes one of the channel's playlists. Videos are listed
// separately, a page at a time, through the discovery pipeline.
type Playlist struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Thumbnail   string    `json:"thumbnail"`
	ItemCount   int64     `json:"itemCount"`
	PublishedAt time.Time `json:"publishedAt"`
}

// ChannelStats carries the channel's aggregate counters. The presentation
// layer renders the numbers with K/M suffixes; the core keeps them raw.
type ChannelStats struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	VideoCount      uint64 `json:"videoCount"`
	ViewCount       uint64 `json:"viewCount"`
	SubscriberCount uint64 `json:"subscriberCount"`
}
