package web

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Butseraentjes/butseraen-music/internal/core/ports"
	"github.com/Butseraentjes/butseraen-music/internal/core/usecases"
)

// Server serves the JSON API and the static browser UI.
type Server struct {
	router    *gin.Engine
	discovery usecases.DiscoveryUseCase
	log       ports.LoggerPort
	publicDir string
}

// NewServer wires the routes. corsOrigin restricts browsers to the
// configured site; "*" keeps local development painless.
func NewServer(discovery usecases.DiscoveryUseCase, logger ports.LoggerPort, corsOrigin, publicDir string) *Server {
	if publicDir == "" {
		publicDir = "./public"
	}

	s := &Server{
		router:    gin.Default(),
		discovery: discovery,
		log:       logger,
		publicDir: publicDir,
	}

	corsConfig := cors.DefaultConfig()
	if corsOrigin == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = []string{corsOrigin}
	}
	corsConfig.AllowMethods = []string{"GET"}
	s.router.Use(cors.New(corsConfig))

	api := s.router.Group("/api")
	{
		api.GET("/videos", s.listVideos)
		api.GET("/video/:id", s.getVideo)
		api.GET("/search", s.searchVideos)
		api.GET("/playlists", s.listPlaylists)
		api.GET("/playlists/:id/videos", s.listPlaylistVideos)
		api.GET("/channel-stats", s.channelStats)
	}

	s.router.StaticFile("/", s.publicDir+"/index.html")
	s.router.Static("/css", s.publicDir+"/css")
	s.router.Static("/js", s.publicDir+"/js")
	s.router.NoRoute(func(c *gin.Context) {
		c.File(s.publicDir + "/index.html")
	})

	return s
}

// Run blocks serving on the given address.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Router exposes the underlying engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
