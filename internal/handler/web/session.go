package web

import (
	"github.com/gin-gonic/gin"

	"github.com/Butseraentjes/butseraen-music/internal/core/domain"
)

// ListingMode selects which pipeline operation a session drives.
type ListingMode string

const (
	ModeLatest   ListingMode = "latest"
	ModeSearch   ListingMode = "search"
	ModePlaylist ListingMode = "playlist"
)

// ListingSession is the immutable "where am I in this listing" value the
// browser echoes back between requests. The server derives it from query
// parameters, advances it, and returns it alongside each page; it holds
// no server-side state.
type ListingSession struct {
	Mode       ListingMode     `json:"mode"`
	Query      string          `json:"query,omitempty"`
	PlaylistID string          `json:"playlistId,omitempty"`
	Category   domain.Category `json:"category,omitempty"`
	PageToken  string          `json:"pageToken,omitempty"`
}

// Advance returns a copy of the session pointing at the next page.
func (s ListingSession) Advance(nextPageToken string) ListingSession {
	s.PageToken = nextPageToken
	return s
}

// WithCategory returns a copy of the session filtered to one category.
func (s ListingSession) WithCategory(category domain.Category) ListingSession {
	s.Category = category
	return s
}

func sessionFromQuery(c *gin.Context, mode ListingMode) ListingSession {
	session := ListingSession{
		Mode:       mode,
		Query:      c.Query("q"),
		PlaylistID: c.Param("id"),
		PageToken:  c.Query("pageToken"),
	}
	if category, ok := domain.ParseCategory(c.Query("category")); ok {
		session.Category = category
	}
	return session
}
