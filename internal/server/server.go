package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	"github.com/mxcd/fittracker-download/internal/artifact"
	"github.com/rs/zerolog/log"
)

const downloadPath = "/download"

type ServerOptions struct {
	DevMode bool
	Port    int
	// TargetFilePath is the archive served on /download.
	TargetFilePath string
	// DisplayName is the filename the client saves the archive under.
	DisplayName string
}

type Server struct {
	Options    *ServerOptions
	Engine     *gin.Engine
	HttpServer *http.Server
	Artifact   *artifact.Artifact
}

func NewServer(options *ServerOptions) (*Server, error) {
	if options == nil {
		return nil, fmt.Errorf("server options cannot be nil")
	}
	if options.TargetFilePath == "" {
		return nil, fmt.Errorf("server options TargetFilePath cannot be empty")
	}
	if options.DisplayName == "" {
		return nil, fmt.Errorf("server options DisplayName cannot be empty")
	}

	server := &Server{
		Options:  options,
		Artifact: artifact.New(options.TargetFilePath, options.DisplayName),
	}

	if !server.Options.DevMode {
		log.Info().Msg("Running Gin in production mode")
		gin.SetMode(gin.ReleaseMode)
	} else {
		log.Info().Msg("Running Gin in development mode")
	}

	engine := gin.New()
	// Unknown paths are answered with the landing page, never redirected.
	engine.RedirectTrailingSlash = false
	engine.RedirectFixedPath = false
	server.Engine = engine
	// requestLogger wraps Recovery so panicking requests are still logged.
	server.Engine.Use(requestLogger(), gin.Recovery())

	server.HttpServer = &http.Server{
		Addr:    fmt.Sprintf(":%d", options.Port),
		Handler: engine,
	}

	return server, nil
}

func (s *Server) RegisterRoutes() error {
	s.Engine.GET(downloadPath, s.downloadHandler())

	// Everything else, including other methods on /download, lands here.
	s.Engine.NoRoute(getOnly(), s.landingPageHandler())
	return nil
}

// CheckArtifact logs the state of the download target. The file is owned by the
// deployment and may appear after startup, so problems are reported, not fatal.
func (s *Server) CheckArtifact() {
	info, err := s.Artifact.Inspect()
	if err != nil {
		log.Warn().Err(err).Str("path", s.Artifact.Path).Msg("download target not available yet")
		return
	}
	if !info.IsGzip() {
		log.Warn().Str("path", s.Artifact.Path).Str("detected_type", info.DetectedType).Msg("download target is not a gzip archive")
		return
	}
	log.Info().Str("path", s.Artifact.Path).Str("size", humanize.Bytes(uint64(info.Size))).Msg("download target ready")
}

func (s *Server) Run() error {
	log.Info().Str("addr", s.HttpServer.Addr).Msg("download server listening")
	if err := s.HttpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.HttpServer.Shutdown(ctx)
}
