package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Butseraentjes/butseraen-music/internal/core/domain"
)

// emptyReasonCategory distinguishes "the category filter removed every
// video of this page" from a listing that was empty to begin with, so the
// UI can render a category-specific empty state.
const emptyReasonCategory = "category"

type listingResponse struct {
	Videos        []domain.Video `json:"videos"`
	NextPageToken string         `json:"nextPageToken,omitempty"`
	TotalResults  int64          `json:"totalResults"`
	Session       ListingSession `json:"session"`
	EmptyReason   string         `json:"emptyReason,omitempty"`
}

type playlistsResponse struct {
	Playlists []domain.Playlist `json:"playlists"`
}

func (s *Server) listVideos(c *gin.Context) {
	session := sessionFromQuery(c, ModeLatest)
	pageSize := intQuery(c, "maxResults", 12)

	page, err := s.discovery.ListLatest(c.Request.Context(), session.PageToken, pageSize)
	if err != nil {
		s.renderError(c, err)
		return
	}
	s.renderListing(c, page, session)
}

func (s *Server) searchVideos(c *gin.Context) {
	session := sessionFromQuery(c, ModeSearch)
	pageSize := intQuery(c, "maxResults", 10)

	page, err := s.discovery.Search(c.Request.Context(), session.Query, pageSize)
	if err != nil {
		s.renderError(c, err)
		return
	}
	s.renderListing(c, page, session)
}

func (s *Server) getVideo(c *gin.Context) {
	video, err := s.discovery.GetVideo(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, video)
}

func (s *Server) listPlaylists(c *gin.Context) {
	playlists, err := s.discovery.ListPlaylists(c.Request.Context())
	if err != nil {
		s.renderError(c, err)
		return
	}
	if playlists == nil {
		playlists = []domain.Playlist{}
	}
	c.JSON(http.StatusOK, playlistsResponse{Playlists: playlists})
}

func (s *Server) listPlaylistVideos(c *gin.Context) {
	session := sessionFromQuery(c, ModePlaylist)
	pageSize := intQuery(c, "maxResults", 12)

	page, err := s.discovery.ListPlaylistVideos(c.Request.Context(), session.PlaylistID, session.PageToken, pageSize)
	if err != nil {
		s.renderError(c, err)
		return
	}
	s.renderListing(c, page, session)
}

func (s *Server) channelStats(c *gin.Context) {
	stats, err := s.discovery.ChannelStats(c.Request.Context())
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// renderListing applies the session's category filter (a pure in-memory
// step, no extra upstream call) and serializes the page.
func (s *Server) renderListing(c *gin.Context, page domain.VideoPage, session ListingSession) {
	response := listingResponse{
		Videos:        page.Videos,
		NextPageToken: page.NextPageToken,
		TotalResults:  page.TotalResults,
		Session:       session.Advance(page.NextPageToken),
	}

	if session.Category != "" {
		filtered := domain.FilterByCategory(page.Videos, session.Category)
		if len(filtered) == 0 && len(page.Videos) > 0 {
			response.EmptyReason = emptyReasonCategory
		}
		response.Videos = filtered
	}
	if response.Videos == nil {
		response.Videos = []domain.Video{}
	}

	c.JSON(http.StatusOK, response)
}

func (s *Server) renderError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError {
		s.log.Error("request failed", err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func intQuery(c *gin.Context, name string, def int64) int64 {
	v := c.Query(name)
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
