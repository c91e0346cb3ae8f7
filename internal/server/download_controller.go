package server

import (
	"errors"
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	"github.com/mxcd/fittracker-download/internal/artifact"
	"github.com/rs/zerolog/log"
)

// downloadHandler returns the archive download handler.
// GET /download
//
// Returns:
//   - 200 with the archive as an attachment and an exact Content-Length
//   - 404 with a plain-text body when the file is absent
//   - 500 on any other I/O failure
func (s *Server) downloadHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		f, size, err := s.Artifact.Open()
		if errors.Is(err, artifact.ErrNotFound) {
			c.String(http.StatusNotFound, "File not found")
			return
		}
		if err != nil {
			log.Error().Err(err).Str("path", s.Artifact.Path).Msg("download: failed to open file")
			c.String(http.StatusInternalServerError, "Internal Server Error")
			return
		}
		defer f.Close()

		log.Debug().Str("path", s.Artifact.Path).Str("size", humanize.Bytes(uint64(size))).Msg("download: serving file")
		c.DataFromReader(http.StatusOK, size, s.Artifact.ContentType, f, map[string]string{
			"Content-Disposition": s.Artifact.ContentDisposition(),
		})
	}
}
